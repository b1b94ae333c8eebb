// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"unicode/utf8"

	"hamour/internal/models"
)

// Validation limits for news and ticket fields.
const (
	maxTitleLen    = 300
	maxExcerptLen  = 2_000
	maxCategoryLen = 100
	maxURLLen      = 2_048
	maxNameLen     = 200
	maxEmailLen    = 320
	maxSubjectLen  = 300
	maxMessageLen  = 10_000
)

// validateNews checks field lengths of a news draft and returns the first
// error found. The thumbnail requirement is enforced by the gateway.
func validateNews(d models.NewsDraft) string {
	if utf8.RuneCountInString(d.Title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if utf8.RuneCountInString(d.Excerpt) > maxExcerptLen {
		return "Excerpt is too long (max 2,000 characters)."
	}
	if utf8.RuneCountInString(d.Category) > maxCategoryLen {
		return "Category is too long (max 100 characters)."
	}
	if len(d.ThumbnailURL) > maxURLLen {
		return "Thumbnail URL is too long (max 2,048 bytes)."
	}
	return ""
}

// validateTicket checks field lengths of a support ticket.
func validateTicket(d models.TicketDraft) string {
	if utf8.RuneCountInString(d.Name) > maxNameLen {
		return "Name is too long (max 200 characters)."
	}
	if utf8.RuneCountInString(d.Email) > maxEmailLen {
		return "Email is too long (max 320 characters)."
	}
	if utf8.RuneCountInString(d.Subject) > maxSubjectLen {
		return "Subject is too long (max 300 characters)."
	}
	if utf8.RuneCountInString(d.Message) > maxMessageLen {
		return "Message is too long (max 10,000 characters)."
	}
	return ""
}
