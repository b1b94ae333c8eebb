// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hamour/internal/models"
)

// ListNews returns every news item, newest first.
func (a *API) ListNews(w http.ResponseWriter, r *http.Request) {
	items, err := a.gw.ListNews(r.Context())
	if err != nil {
		writeGatewayError(w, err)
		return
	}
	if items == nil {
		items = []models.NewsItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

// AddNews stores a news draft and returns the created item.
func (a *API) AddNews(w http.ResponseWriter, r *http.Request) {
	var draft models.NewsDraft
	if err := a.decodeJSON(w, r, &draft); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := validateNews(draft); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	item, err := a.gw.AddNews(r.Context(), draft)
	if err != nil {
		writeGatewayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// DeleteNews removes a news item. Unknown ids succeed.
func (a *API) DeleteNews(w http.ResponseWriter, r *http.Request) {
	if err := a.gw.DeleteNews(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeGatewayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
