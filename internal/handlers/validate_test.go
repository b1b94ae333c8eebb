// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"testing"

	"hamour/internal/models"
)

func TestValidateNews(t *testing.T) {
	tests := []struct {
		name    string
		draft   models.NewsDraft
		wantErr bool
	}{
		{"valid", models.NewsDraft{Title: "Season 2", ThumbnailURL: "x.png"}, false},
		{"empty fields are allowed", models.NewsDraft{}, false},
		{"arabic title at the limit", models.NewsDraft{Title: strings.Repeat("ب", maxTitleLen)}, false},
		{"title too long", models.NewsDraft{Title: strings.Repeat("a", maxTitleLen+1)}, true},
		{"excerpt too long", models.NewsDraft{Excerpt: strings.Repeat("a", maxExcerptLen+1)}, true},
		{"category too long", models.NewsDraft{Category: strings.Repeat("a", maxCategoryLen+1)}, true},
		{"thumbnail too long", models.NewsDraft{ThumbnailURL: strings.Repeat("a", maxURLLen+1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validateNews(tt.draft)
			if (got != "") != tt.wantErr {
				t.Errorf("validateNews() = %q, wantErr %v", got, tt.wantErr)
			}
		})
	}
}

func TestValidateTicket(t *testing.T) {
	tests := []struct {
		name    string
		draft   models.TicketDraft
		wantErr bool
	}{
		{"valid", models.TicketDraft{Name: "n", Email: "e@x.io", Subject: "s", Message: "m"}, false},
		{"name too long", models.TicketDraft{Name: strings.Repeat("a", maxNameLen+1)}, true},
		{"email too long", models.TicketDraft{Email: strings.Repeat("a", maxEmailLen+1)}, true},
		{"subject too long", models.TicketDraft{Subject: strings.Repeat("a", maxSubjectLen+1)}, true},
		{"message too long", models.TicketDraft{Message: strings.Repeat("a", maxMessageLen+1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validateTicket(tt.draft)
			if (got != "") != tt.wantErr {
				t.Errorf("validateTicket() = %q, wantErr %v", got, tt.wantErr)
			}
		})
	}
}
