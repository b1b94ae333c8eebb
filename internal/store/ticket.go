// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"hamour/internal/models"
)

// TicketStore manages support tickets in the database.
type TicketStore struct {
	db *sql.DB
}

// NewTicketStore returns a new TicketStore.
func NewTicketStore(db *sql.DB) *TicketStore {
	return &TicketStore{db: db}
}

// List returns every ticket, newest first.
func (s *TicketStore) List(ctx context.Context) ([]models.SupportTicket, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, subject, message, created_at
		FROM tickets
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	tickets := []models.SupportTicket{}
	for rows.Next() {
		var (
			t       models.SupportTicket
			created time.Time
		)
		if err := rows.Scan(&t.ID, &t.Name, &t.Email, &t.Subject, &t.Message, &created); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		t.CreatedAt = created.UnixMilli()
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

// Create inserts a ticket. The database assigns id and created_at.
func (s *TicketStore) Create(ctx context.Context, draft models.TicketDraft) (models.SupportTicket, error) {
	var (
		id      int64
		created time.Time
	)
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO tickets (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		draft.Name, draft.Email, draft.Subject, draft.Message,
	).Scan(&id, &created)
	if err != nil {
		return models.SupportTicket{}, fmt.Errorf("create ticket: %w", err)
	}
	return draft.Ticket(id, created), nil
}

// Delete removes a ticket by id. Unknown ids are not an error.
func (s *TicketStore) Delete(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM tickets WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}
	return nil
}
