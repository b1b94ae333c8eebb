// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hamour/internal/models"
)

// ListTickets returns every support ticket, newest first.
func (a *API) ListTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := a.gw.ListTickets(r.Context())
	if err != nil {
		writeGatewayError(w, err)
		return
	}
	if tickets == nil {
		tickets = []models.SupportTicket{}
	}
	writeJSON(w, http.StatusOK, tickets)
}

// SubmitTicket stores a support ticket and returns the created record.
func (a *API) SubmitTicket(w http.ResponseWriter, r *http.Request) {
	var draft models.TicketDraft
	if err := a.decodeJSON(w, r, &draft); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := validateTicket(draft); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	ticket, err := a.gw.SubmitTicket(r.Context(), draft)
	if err != nil {
		writeGatewayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}

// DeleteTicket removes a ticket. A non-numeric id matches nothing and
// still succeeds.
func (a *API) DeleteTicket(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err == nil {
		if err := a.gw.DeleteTicket(r.Context(), id); err != nil {
			writeGatewayError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
