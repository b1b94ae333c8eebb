// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"errors"
	"strings"
)

// ErrMissingThumbnail is returned by NewsDraft.Validate when no thumbnail
// has been uploaded yet.
var ErrMissingThumbnail = errors.New("news thumbnail is required")

// NewsItem is a published news post. Items are never edited after
// creation; they are only deleted.
type NewsItem struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Excerpt      string `json:"excerpt"`
	Date         string `json:"date"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Category     string `json:"category"`
}

// NewsDraft is what an admin submits. The backend assigns ID and Date.
type NewsDraft struct {
	Title        string `json:"title"`
	Excerpt      string `json:"excerpt"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Category     string `json:"category"`
}

// Validate checks the fields a draft needs before it may be stored.
func (d NewsDraft) Validate() error {
	if strings.TrimSpace(d.ThumbnailURL) == "" {
		return ErrMissingThumbnail
	}
	return nil
}

// Item builds the stored record from the draft and the server-assigned fields.
func (d NewsDraft) Item(id, date string) NewsItem {
	return NewsItem{
		ID:           id,
		Title:        d.Title,
		Excerpt:      d.Excerpt,
		Date:         date,
		ThumbnailURL: d.ThumbnailURL,
		Category:     d.Category,
	}
}
