// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"hamour/internal/models"
)

// NewsStore manages news items in the database.
type NewsStore struct {
	db         *sql.DB
	dateLocale language.Tag
	now        func() time.Time
}

// NewNewsStore returns a new NewsStore. Dates are formatted in dateLocale.
func NewNewsStore(db *sql.DB, dateLocale language.Tag) *NewsStore {
	return &NewsStore{db: db, dateLocale: dateLocale, now: time.Now}
}

// List returns every news item, newest first.
func (s *NewsStore) List(ctx context.Context) ([]models.NewsItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, excerpt, date, thumbnail_url, category
		FROM news
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	defer rows.Close()

	items := []models.NewsItem{}
	for rows.Next() {
		var n models.NewsItem
		if err := rows.Scan(&n.ID, &n.Title, &n.Excerpt, &n.Date, &n.ThumbnailURL, &n.Category); err != nil {
			return nil, fmt.Errorf("scan news: %w", err)
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

// Create inserts a news item with a generated UUID and today's date.
func (s *NewsStore) Create(ctx context.Context, draft models.NewsDraft) (models.NewsItem, error) {
	now := s.now()
	item := draft.Item(uuid.NewString(), models.FormatDate(now, s.dateLocale))

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO news (id, title, excerpt, date, thumbnail_url, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		item.ID, item.Title, item.Excerpt, item.Date, item.ThumbnailURL, item.Category, now,
	)
	if err != nil {
		return models.NewsItem{}, fmt.Errorf("create news: %w", err)
	}
	return item, nil
}

// Delete removes a news item by id. Unknown ids are not an error.
func (s *NewsStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM news WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	return nil
}
