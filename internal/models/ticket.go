// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// SupportTicket is a message sent through the public support form.
// CreatedAt is a Unix timestamp in milliseconds.
type SupportTicket struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	CreatedAt int64  `json:"createdAt"`
}

// Created returns CreatedAt as a time.Time.
func (t SupportTicket) Created() time.Time {
	return time.UnixMilli(t.CreatedAt)
}

// TicketDraft is what a visitor submits. The backend assigns ID and CreatedAt.
type TicketDraft struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Ticket builds the stored record from the draft and the server-assigned fields.
func (d TicketDraft) Ticket(id int64, created time.Time) SupportTicket {
	return SupportTicket{
		ID:        id,
		Name:      d.Name,
		Email:     d.Email,
		Subject:   d.Subject,
		Message:   d.Message,
		CreatedAt: created.UnixMilli(),
	}
}
