// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package gateway is the boundary between site state and durable storage.
// Records adapters (JSON file, PostgreSQL) and image stores (disk, S3,
// Cloudinary) plug into a Service, which validates input, names uploaded
// objects, and reports every failure as one of a small set of kinds.
package gateway

import (
	"context"

	"hamour/internal/models"
)

// Records is implemented by persistence adapters.
//
// Deleting an id that does not exist succeeds. GetSettings returns
// ErrNotFound when the backend holds no settings record. Lists are ordered
// newest first.
type Records interface {
	GetSettings(ctx context.Context) (models.SiteSettings, error)
	UpdateSettings(ctx context.Context, patch models.SettingsPatch) (models.SiteSettings, error)

	ListNews(ctx context.Context) ([]models.NewsItem, error)
	AddNews(ctx context.Context, draft models.NewsDraft) (models.NewsItem, error)
	DeleteNews(ctx context.Context, id string) error

	ListTickets(ctx context.Context) ([]models.SupportTicket, error)
	SubmitTicket(ctx context.Context, draft models.TicketDraft) (models.SupportTicket, error)
	DeleteTicket(ctx context.Context, id int64) error
}

// Gateway is the full content contract consumed by the HTTP API and by the
// client content store.
type Gateway interface {
	Records

	// UploadImage stores data under a generated name inside folder and
	// returns a public URL for it.
	UploadImage(ctx context.Context, data []byte, filename, folder string) (string, error)
}

// ImageStore persists uploaded image bytes under a key and returns the URL
// the object is publicly reachable at.
type ImageStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}
