// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content holds the working copy of site content for one admin or
// visitor session. It hydrates from a gateway, applies settings changes
// locally before forwarding them, and re-fetches lists after every write so
// server-assigned fields are picked up.
package content

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"hamour/internal/auth"
	"hamour/internal/config"
	"hamour/internal/gateway"
	"hamour/internal/models"
)

// Page is the navigation target of the session.
type Page string

const (
	PageSite  Page = "site"
	PageAdmin Page = "admin"
	PageLogin Page = "login"
)

// Snapshot is a copy of the store state handed to subscribers.
type Snapshot struct {
	Settings      models.SiteSettings
	News          []models.NewsItem
	Tickets       []models.SupportTicket
	Loading       bool
	Uploading     bool
	Authenticated bool
	Lang          models.Language
	Page          Page
}

// Option configures a Store.
type Option func(*Store)

// WithAuthenticator replaces the default shared-secret check.
func WithAuthenticator(a auth.Authenticator) Option {
	return func(s *Store) { s.authn = a }
}

// WithSessionMarker sets where the authenticated flag is persisted.
func WithSessionMarker(m SessionMarker) Option {
	return func(s *Store) { s.marker = m }
}

// WithLanguage sets the initial language.
func WithLanguage(lang models.Language) Option {
	return func(s *Store) { s.lang = lang }
}

// Store is the client-side content state. It is safe for concurrent use.
type Store struct {
	gw     gateway.Gateway
	authn  auth.Authenticator
	marker SessionMarker

	mu            sync.RWMutex
	settings      models.SiteSettings
	news          []models.NewsItem
	tickets       []models.SupportTicket
	loading       bool
	uploading     bool
	authenticated bool
	lang          models.Language
	page          Page

	subMu   sync.Mutex
	subs    map[int]func(Snapshot)
	nextSub int
}

// New creates a store in the loading state with default settings. The
// authenticated flag is restored from the session marker.
func New(gw gateway.Gateway, opts ...Option) *Store {
	s := &Store{
		gw:       gw,
		authn:    auth.SharedSecret(config.DefaultAdminSecret),
		marker:   &MemoryMarker{},
		settings: models.DefaultSettings(),
		loading:  true,
		lang:     models.FallbackLanguage,
		page:     PageSite,
		subs:     make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(s)
	}

	present, err := s.marker.Present()
	if err != nil {
		slog.Warn("session marker unreadable", "error", err)
	}
	s.authenticated = present
	return s
}

// Hydrate fetches settings, news and tickets concurrently. A failed fetch
// leaves that resource at its default and is logged; Hydrate itself never
// fails.
func (s *Store) Hydrate(ctx context.Context) {
	var (
		g        errgroup.Group
		settings = models.DefaultSettings()
		news     []models.NewsItem
		tickets  []models.SupportTicket
	)

	g.Go(func() error {
		got, err := s.gw.GetSettings(ctx)
		if err != nil {
			slog.Warn("settings unavailable, using defaults", "error", err)
			return nil
		}
		settings = got
		return nil
	})
	g.Go(func() error {
		got, err := s.gw.ListNews(ctx)
		if err != nil {
			slog.Warn("news unavailable", "error", err)
			return nil
		}
		news = got
		return nil
	})
	g.Go(func() error {
		got, err := s.gw.ListTickets(ctx)
		if err != nil {
			slog.Warn("tickets unavailable", "error", err)
			return nil
		}
		tickets = got
		return nil
	})
	g.Wait()

	s.mu.Lock()
	s.settings = settings
	s.news = news
	s.tickets = tickets
	s.loading = false
	s.mu.Unlock()
	s.notify()
}

// Loading reports whether hydration is still running.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Uploading reports whether an image upload is in flight.
func (s *Store) Uploading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.uploading
}

// Settings returns a copy of the local settings.
func (s *Store) Settings() models.SiteSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Clone()
}

// News returns a copy of the local news list, newest first.
func (s *Store) News() []models.NewsItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.news)
}

// Tickets returns a copy of the local ticket list, newest first.
func (s *Store) Tickets() []models.SupportTicket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tickets)
}

// Snapshot returns a copy of the whole state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Settings:      s.settings.Clone(),
		News:          slices.Clone(s.news),
		Tickets:       slices.Clone(s.tickets),
		Loading:       s.loading,
		Uploading:     s.uploading,
		Authenticated: s.authenticated,
		Lang:          s.lang,
		Page:          s.page,
	}
}

// Subscribe registers fn to be called with a fresh snapshot after every
// state change. The returned function removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) (cancel func()) {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	if len(fns) == 0 {
		return
	}

	snap := s.Snapshot()
	for _, fn := range fns {
		fn(snap)
	}
}

// UpdateSettings applies patch to the local copy, notifies subscribers, and
// then forwards the patch to the gateway. When the gateway fails the local
// copy is kept as is and the error is returned. Nested objects in patch
// replace the stored ones whole.
func (s *Store) UpdateSettings(ctx context.Context, patch models.SettingsPatch) (models.SiteSettings, error) {
	s.mu.Lock()
	s.settings = s.settings.Apply(patch)
	local := s.settings.Clone()
	s.mu.Unlock()
	s.notify()

	if _, err := s.gw.UpdateSettings(ctx, patch); err != nil {
		slog.Error("settings update not saved", "error", err)
		return local, err
	}
	return local, nil
}

// AddNews validates draft, stores it, and reloads the news list.
func (s *Store) AddNews(ctx context.Context, draft models.NewsDraft) (models.NewsItem, error) {
	if err := draft.Validate(); err != nil {
		return models.NewsItem{}, gateway.Fail(gateway.ErrValidation, "add news", err)
	}
	item, err := s.gw.AddNews(ctx, draft)
	if err != nil {
		slog.Error("add news failed", "error", err)
		return models.NewsItem{}, err
	}
	s.refreshNews(ctx)
	return item, nil
}

// DeleteNews removes a news item and reloads the news list.
func (s *Store) DeleteNews(ctx context.Context, id string) error {
	if err := s.gw.DeleteNews(ctx, id); err != nil {
		slog.Error("delete news failed", "id", id, "error", err)
		return err
	}
	s.refreshNews(ctx)
	return nil
}

// AddTicket submits a support ticket and reloads the ticket list.
func (s *Store) AddTicket(ctx context.Context, draft models.TicketDraft) (models.SupportTicket, error) {
	ticket, err := s.gw.SubmitTicket(ctx, draft)
	if err != nil {
		slog.Error("submit ticket failed", "error", err)
		return models.SupportTicket{}, err
	}
	s.refreshTickets(ctx)
	return ticket, nil
}

// DeleteTicket removes a ticket and reloads the ticket list.
func (s *Store) DeleteTicket(ctx context.Context, id int64) error {
	if err := s.gw.DeleteTicket(ctx, id); err != nil {
		slog.Error("delete ticket failed", "id", id, "error", err)
		return err
	}
	s.refreshTickets(ctx)
	return nil
}

// refreshNews reloads the news list. A failed reload keeps the old list;
// the write it follows has already succeeded.
func (s *Store) refreshNews(ctx context.Context) {
	news, err := s.gw.ListNews(ctx)
	if err != nil {
		slog.Warn("news reload failed", "error", err)
		return
	}
	s.mu.Lock()
	s.news = news
	s.mu.Unlock()
	s.notify()
}

func (s *Store) refreshTickets(ctx context.Context) {
	tickets, err := s.gw.ListTickets(ctx)
	if err != nil {
		slog.Warn("ticket reload failed", "error", err)
		return
	}
	s.mu.Lock()
	s.tickets = tickets
	s.mu.Unlock()
	s.notify()
}

// UploadImage stores an image through the gateway. Uploading reports true
// while the call runs.
func (s *Store) UploadImage(ctx context.Context, data []byte, filename, folder string) (string, error) {
	s.setUploading(true)
	defer s.setUploading(false)

	url, err := s.gw.UploadImage(ctx, data, filename, folder)
	if err != nil {
		slog.Error("image upload failed", "filename", filename, "error", err)
		return "", err
	}
	return url, nil
}

func (s *Store) setUploading(v bool) {
	s.mu.Lock()
	s.uploading = v
	s.mu.Unlock()
	s.notify()
}
