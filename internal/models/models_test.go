// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSocialLinksVisible(t *testing.T) {
	l := DefaultSettings().SocialLinks
	assert.Empty(t, l.Visible(), "no URLs configured yet")

	require.True(t, l.SetURL(PlatformTelegram, "https://t.me/hamour"))
	require.True(t, l.SetURL(PlatformDiscord, "https://discord.gg/hamour"))
	require.True(t, l.SetActive(PlatformDiscord, false))

	assert.Equal(t, []SocialLink{{Platform: PlatformTelegram, URL: "https://t.me/hamour"}}, l.Visible())

	l.ShowSocials = false
	assert.Empty(t, l.Visible())
}

func TestSocialLinksUnknownPlatform(t *testing.T) {
	var l SocialLinks
	assert.False(t, l.SetURL("myspace", "x"))
	assert.False(t, l.SetActive("myspace", true))
	assert.Equal(t, "", l.URL("myspace"))
}

func TestShowcaseWithSlotUnknown(t *testing.T) {
	s := DefaultSettings().ShowcaseImages
	got, ok := s.WithSlot("garage", "x.png")
	assert.False(t, ok)
	assert.Equal(t, s, got)
	assert.Len(t, s.Slots(), 6)
}

func TestNewsDraftValidate(t *testing.T) {
	assert.ErrorIs(t, NewsDraft{Title: "A"}.Validate(), ErrMissingThumbnail)
	assert.ErrorIs(t, NewsDraft{ThumbnailURL: "   "}.Validate(), ErrMissingThumbnail)
	assert.NoError(t, NewsDraft{ThumbnailURL: "x.png"}.Validate())
}

func TestTicketDraftTicket(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tk := TicketDraft{Name: "n", Email: "e", Subject: "s", Message: "m"}.Ticket(42, at)

	assert.Equal(t, int64(42), tk.ID)
	assert.Equal(t, at.UnixMilli(), tk.CreatedAt)
	assert.True(t, tk.Created().Equal(at))
	assert.Equal(t, "m", tk.Message)
}

func TestNextID(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)

	assert.Equal(t, int64(1_700_000_000_000), NextID(now, 0))
	assert.Equal(t, int64(1_700_000_000_001), NextID(now, 1_700_000_000_000))
	assert.Equal(t, int64(1_800_000_000_001), NextID(now, 1_800_000_000_000))
}

func TestFormatDate(t *testing.T) {
	at := time.Date(2026, 10, 7, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		locale string
		want   string
	}{
		{"ar-EG", "٧‏/١٠‏/٢٠٢٦"},
		{"en-US", "10/7/2026"},
		{"en-GB", "7/10/2026"},
		{"fr-FR", "7/10/2026"},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			tag, err := ParseLocale(tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.want, FormatDate(at, tag))
		})
	}
}

func TestParseLocaleInvalid(t *testing.T) {
	_, err := ParseLocale("not a locale!")
	assert.Error(t, err)
}
