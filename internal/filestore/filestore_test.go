// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package filestore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hamour/internal/models"
)

// fixedClock returns a clock frozen at t.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// openTemp opens a store on a fresh file in a temporary directory.
func openTemp(t *testing.T, opts ...Option) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data", "db.json"), opts...)
	require.NoError(t, err)
	return s
}

func TestOpen_CreatesDocumentWithDefaults(t *testing.T) {
	s := openTemp(t)

	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Contains(t, doc, "settings")
	assert.JSONEq(t, `[]`, string(doc["news"]))
	assert.JSONEq(t, `[]`, string(doc["tickets"]))

	settings, err := s.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)
}

func TestOpen_KeepsExistingDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"settings":{"siteTitle":"Kept"},"news":[],"tickets":[]}`), 0o644))

	s, err := Open(path)
	require.NoError(t, err)

	settings, err := s.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Kept", settings.SiteTitle)
	// Keys missing from the file come from the defaults.
	assert.Equal(t, "assets/logo.svg", settings.LogoURL)
}

func TestGetSettings_CorruptDocument(t *testing.T) {
	s := openTemp(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte(`{not json`), 0o644))

	_, err := s.GetSettings(context.Background())
	assert.Error(t, err)
}

func TestUpdateSettings_SequentialPatches(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	_, err := s.UpdateSettings(ctx, models.SettingsPatch{IsMaintenanceMode: models.Bool(true)})
	require.NoError(t, err)
	merged, err := s.UpdateSettings(ctx, models.SettingsPatch{MaintenanceMessage: models.String("x")})
	require.NoError(t, err)

	assert.True(t, merged.IsMaintenanceMode)
	assert.Equal(t, "x", merged.MaintenanceMessage)

	stored, err := s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, merged, stored)
}

func TestUpdateSettings_NestedPatchDropsUnspreadKeys(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	merged, err := s.UpdateSettings(ctx, models.SettingsPatch{
		ShowcaseImages: &models.ShowcaseImages{Store: "uploads/store.png"},
	})
	require.NoError(t, err)

	assert.Equal(t, "uploads/store.png", merged.ShowcaseImages.Store)
	assert.Empty(t, merged.ShowcaseImages.Map)
}

func TestAddNews_ScenarioFromDefaults(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 10, 17, 8, 30, 0, 0, time.UTC)
	s := openTemp(t, WithClock(fixedClock(at)))

	created, err := s.AddNews(ctx, models.NewsDraft{Title: "A", Excerpt: "B", ThumbnailURL: "x.png", Category: "c"})
	require.NoError(t, err)

	list, err := s.ListNews(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	got := list[0]
	assert.Equal(t, created, got)
	assert.Equal(t, "1792225800000", got.ID)
	assert.Equal(t, "١٧‏/١٠‏/٢٠٢٦", got.Date)
	assert.Equal(t, "A", got.Title)
	assert.Equal(t, "B", got.Excerpt)
	assert.Equal(t, "x.png", got.ThumbnailURL)
	assert.Equal(t, "c", got.Category)
}

func TestAddNews_NewestFirstAndUniqueIDs(t *testing.T) {
	ctx := context.Background()
	at := time.UnixMilli(1_800_000_000_000)
	s := openTemp(t, WithClock(fixedClock(at)))

	first, err := s.AddNews(ctx, models.NewsDraft{Title: "first", ThumbnailURL: "1.png"})
	require.NoError(t, err)
	second, err := s.AddNews(ctx, models.NewsDraft{Title: "second", ThumbnailURL: "2.png"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	list, err := s.ListNews(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Title)
	assert.Equal(t, "first", list[1].Title)
}

func TestAddNews_DateLocale(t *testing.T) {
	ctx := context.Background()
	tag, err := models.ParseLocale("en-US")
	require.NoError(t, err)
	s := openTemp(t, WithClock(fixedClock(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))), WithDateLocale(tag))

	item, err := s.AddNews(ctx, models.NewsDraft{ThumbnailURL: "x.png"})
	require.NoError(t, err)
	assert.Equal(t, "1/2/2026", item.Date)
}

func TestDeleteNews(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	item, err := s.AddNews(ctx, models.NewsDraft{Title: "gone", ThumbnailURL: "x.png"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteNews(ctx, "does-not-exist"))
	list, err := s.ListNews(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, s.DeleteNews(ctx, item.ID))
	list, err = s.ListNews(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSubmitAndDeleteTicket(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	ticket, err := s.SubmitTicket(ctx, models.TicketDraft{Name: "n", Email: "e", Subject: "s", Message: "m"})
	require.NoError(t, err)
	assert.NotZero(t, ticket.ID)
	assert.NotZero(t, ticket.CreatedAt)

	list, err := s.ListTickets(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, ticket, list[0])

	require.NoError(t, s.DeleteTicket(ctx, ticket.ID))
	list, err = s.ListTickets(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDeleteTicket_UnknownIDSucceeds(t *testing.T) {
	s := openTemp(t)
	assert.NoError(t, s.DeleteTicket(context.Background(), 12345))
}

func TestSubmitTicket_SameMillisecondGetsDistinctIDs(t *testing.T) {
	ctx := context.Background()
	at := time.UnixMilli(1_700_000_000_000)
	s := openTemp(t, WithClock(fixedClock(at)))

	a, err := s.SubmitTicket(ctx, models.TicketDraft{Name: "a"})
	require.NoError(t, err)
	b, err := s.SubmitTicket(ctx, models.TicketDraft{Name: "b"})
	require.NoError(t, err)

	assert.Equal(t, int64(1_700_000_000_000), a.ID)
	assert.Equal(t, int64(1_700_000_000_001), b.ID)

	// Deleting one leaves the other.
	require.NoError(t, s.DeleteTicket(ctx, a.ID))
	list, err := s.ListTickets(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "b", list[0].Name)
}

// TestLostUpdate documents the single-writer assumption: two stores on the
// same file that read before either writes end with only the later write.
func TestLostUpdate(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "db.json")
	a, err := Open(path)
	require.NoError(t, err)
	b, err := Open(path)
	require.NoError(t, err)

	docA, err := a.load()
	require.NoError(t, err)

	_, err = b.AddNews(ctx, models.NewsDraft{Title: "from b", ThumbnailURL: "b.png"})
	require.NoError(t, err)

	// a writes the document it read before b's insert.
	require.NoError(t, a.save(docA))

	list, err := a.ListNews(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
