// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store is the hosted PostgreSQL persistence adapter. Each table
// has its own store; Hosted composes them into a gateway.Records.
package store

import (
	"context"
	"database/sql"

	"golang.org/x/text/language"

	"hamour/internal/gateway"
	"hamour/internal/models"
)

// Hosted implements gateway.Records on PostgreSQL.
type Hosted struct {
	Settings *SettingsStore
	News     *NewsStore
	Tickets  *TicketStore
}

// NewHosted wires the table stores on one connection pool.
func NewHosted(db *sql.DB, dateLocale language.Tag) *Hosted {
	return &Hosted{
		Settings: NewSettingsStore(db),
		News:     NewNewsStore(db, dateLocale),
		Tickets:  NewTicketStore(db),
	}
}

var _ gateway.Records = (*Hosted)(nil)

func (h *Hosted) GetSettings(ctx context.Context) (models.SiteSettings, error) {
	return h.Settings.Get(ctx)
}

func (h *Hosted) UpdateSettings(ctx context.Context, patch models.SettingsPatch) (models.SiteSettings, error) {
	return h.Settings.Update(ctx, patch)
}

func (h *Hosted) ListNews(ctx context.Context) ([]models.NewsItem, error) {
	return h.News.List(ctx)
}

func (h *Hosted) AddNews(ctx context.Context, draft models.NewsDraft) (models.NewsItem, error) {
	return h.News.Create(ctx, draft)
}

func (h *Hosted) DeleteNews(ctx context.Context, id string) error {
	return h.News.Delete(ctx, id)
}

func (h *Hosted) ListTickets(ctx context.Context) ([]models.SupportTicket, error) {
	return h.Tickets.List(ctx)
}

func (h *Hosted) SubmitTicket(ctx context.Context, draft models.TicketDraft) (models.SupportTicket, error) {
	return h.Tickets.Create(ctx, draft)
}

func (h *Hosted) DeleteTicket(ctx context.Context, id int64) error {
	return h.Tickets.Delete(ctx, id)
}
