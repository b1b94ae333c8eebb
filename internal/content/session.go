// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"log/slog"

	"hamour/internal/models"
)

// Authenticated reports whether the session holds admin rights.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// Login checks secret. On success the flag is set, the marker persisted,
// and the session moves to the admin page.
func (s *Store) Login(ctx context.Context, secret string) bool {
	ok, err := s.authn.Authenticate(ctx, secret)
	if err != nil {
		slog.Error("admin login check failed", "error", err)
		return false
	}
	if !ok {
		return false
	}

	if err := s.marker.Set(); err != nil {
		slog.Warn("session marker not saved", "error", err)
	}
	s.mu.Lock()
	s.authenticated = true
	s.page = PageAdmin
	s.mu.Unlock()
	s.notify()
	return true
}

// Logout clears the flag and the marker and returns to the site.
func (s *Store) Logout() {
	if err := s.marker.Clear(); err != nil {
		slog.Warn("session marker not cleared", "error", err)
	}
	s.mu.Lock()
	s.authenticated = false
	s.page = PageSite
	s.mu.Unlock()
	s.notify()
}

// Page returns the current navigation target.
func (s *Store) Page() Page {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.page
}

// Navigate moves to p and returns where the session actually landed:
// the admin page needs a login first.
func (s *Store) Navigate(p Page) Page {
	s.mu.Lock()
	if p == PageAdmin && !s.authenticated {
		p = PageLogin
	}
	s.page = p
	s.mu.Unlock()
	s.notify()
	return p
}

// MaintenanceActive reports whether visitors should see the maintenance
// screen. Authenticated sessions bypass it.
func (s *Store) MaintenanceActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.IsMaintenanceMode && !s.authenticated
}

// Lang returns the active language.
func (s *Store) Lang() models.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

// SetLang switches the active language.
func (s *Store) SetLang(lang models.Language) {
	s.mu.Lock()
	s.lang = lang
	s.mu.Unlock()
	s.notify()
}

// T returns the translation table of the active language, or the Arabic
// table when the language has none. The map must not be modified.
func (s *Store) T() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Translations.Table(s.lang)
}

// Translate looks key up in the active table and returns key itself when
// it is missing.
func (s *Store) Translate(key string) string {
	if v, ok := s.T()[key]; ok {
		return v
	}
	return key
}
