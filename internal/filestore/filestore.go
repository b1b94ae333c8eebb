// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package filestore keeps the whole site dataset in one JSON document on
// local disk. Every read parses the full document and every write rewrites
// it; there is no locking, so the store assumes a single writer. Two
// overlapping writers can lose updates: the later write wins.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"golang.org/x/text/language"

	"hamour/internal/models"
)

// Document is the on-disk layout.
type Document struct {
	Settings json.RawMessage        `json:"settings"`
	News     []models.NewsItem      `json:"news"`
	Tickets  []models.SupportTicket `json:"tickets"`
}

// Store implements gateway.Records against a JSON file.
type Store struct {
	path       string
	dateLocale language.Tag
	now        func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithDateLocale sets the locale news dates are formatted in.
func WithDateLocale(tag language.Tag) Option {
	return func(s *Store) { s.dateLocale = tag }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open returns a Store for path, creating the document with default
// settings and empty lists when the file does not exist yet.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{
		path:       path,
		dateLocale: language.MustParse(models.DefaultDateLocale),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("filestore mkdir: %w", err)
			}
		}
		if err := s.initialize(); err != nil {
			return nil, err
		}
		slog.Info("data file created", "path", path)
	} else if err != nil {
		return nil, fmt.Errorf("filestore stat: %w", err)
	}

	return s, nil
}

// Path returns the document location.
func (s *Store) Path() string { return s.path }

func (s *Store) initialize() error {
	settings, err := json.Marshal(models.DefaultSettings())
	if err != nil {
		return fmt.Errorf("filestore marshal defaults: %w", err)
	}
	return s.save(&Document{
		Settings: settings,
		News:     []models.NewsItem{},
		Tickets:  []models.SupportTicket{},
	})
}

// load reads and parses the whole document.
func (s *Store) load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("filestore read: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("filestore parse %s: %w", s.path, err)
	}
	if doc.News == nil {
		doc.News = []models.NewsItem{}
	}
	if doc.Tickets == nil {
		doc.Tickets = []models.SupportTicket{}
	}
	return &doc, nil
}

// save rewrites the whole document.
func (s *Store) save(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("filestore marshal: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("filestore write: %w", err)
	}
	return nil
}

// settings decodes the settings object of doc over the defaults.
func settingsOf(doc *Document) (models.SiteSettings, error) {
	if len(doc.Settings) == 0 || string(doc.Settings) == "null" {
		return models.DefaultSettings(), nil
	}
	return models.DecodeSettings(doc.Settings)
}

// GetSettings returns the settings document.
func (s *Store) GetSettings(_ context.Context) (models.SiteSettings, error) {
	doc, err := s.load()
	if err != nil {
		return models.SiteSettings{}, err
	}
	return settingsOf(doc)
}

// UpdateSettings shallow-merges patch into the stored settings.
func (s *Store) UpdateSettings(_ context.Context, patch models.SettingsPatch) (models.SiteSettings, error) {
	doc, err := s.load()
	if err != nil {
		return models.SiteSettings{}, err
	}
	current, err := settingsOf(doc)
	if err != nil {
		return models.SiteSettings{}, err
	}

	merged := current.Apply(patch)
	raw, err := json.Marshal(merged)
	if err != nil {
		return models.SiteSettings{}, fmt.Errorf("filestore marshal settings: %w", err)
	}
	doc.Settings = raw

	if err := s.save(doc); err != nil {
		return models.SiteSettings{}, err
	}
	return merged, nil
}

// ListNews returns the news list as stored, newest first.
func (s *Store) ListNews(_ context.Context) ([]models.NewsItem, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.News, nil
}

// AddNews assigns a time-based id and a formatted date and inserts the item
// at the head of the list.
func (s *Store) AddNews(_ context.Context, draft models.NewsDraft) (models.NewsItem, error) {
	doc, err := s.load()
	if err != nil {
		return models.NewsItem{}, err
	}

	now := s.now()
	var last int64
	for _, n := range doc.News {
		if v, err := strconv.ParseInt(n.ID, 10, 64); err == nil && v > last {
			last = v
		}
	}
	id := models.NextID(now, last)
	item := draft.Item(strconv.FormatInt(id, 10), models.FormatDate(now, s.dateLocale))

	doc.News = append([]models.NewsItem{item}, doc.News...)
	if err := s.save(doc); err != nil {
		return models.NewsItem{}, err
	}
	return item, nil
}

// DeleteNews removes every item with the given id. Absent ids succeed.
func (s *Store) DeleteNews(_ context.Context, id string) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	kept := doc.News[:0]
	for _, n := range doc.News {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	doc.News = kept
	return s.save(doc)
}

// ListTickets returns the ticket list as stored, newest first.
func (s *Store) ListTickets(_ context.Context) ([]models.SupportTicket, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.Tickets, nil
}

// SubmitTicket assigns a time-based id and timestamp and inserts the ticket
// at the head of the list.
func (s *Store) SubmitTicket(_ context.Context, draft models.TicketDraft) (models.SupportTicket, error) {
	doc, err := s.load()
	if err != nil {
		return models.SupportTicket{}, err
	}

	now := s.now()
	var last int64
	for _, t := range doc.Tickets {
		if t.ID > last {
			last = t.ID
		}
	}
	ticket := draft.Ticket(models.NextID(now, last), now)

	doc.Tickets = append([]models.SupportTicket{ticket}, doc.Tickets...)
	if err := s.save(doc); err != nil {
		return models.SupportTicket{}, err
	}
	return ticket, nil
}

// DeleteTicket removes every ticket with the given id. Absent ids succeed.
func (s *Store) DeleteTicket(_ context.Context, id int64) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	kept := doc.Tickets[:0]
	for _, t := range doc.Tickets {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	doc.Tickets = kept
	return s.save(doc)
}
