// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"hamour/internal/auth"
	"hamour/internal/middleware"
	"hamour/internal/session"
)

// maxLoginBody caps the login request body.
const maxLoginBody = 4 << 10

// Auth groups the admin login endpoints. sessions may be nil, in which
// case a successful login is reported but no cookie is issued.
type Auth struct {
	authn    auth.Authenticator
	sessions *session.Store
}

// NewAuth creates the login handler group.
func NewAuth(authn auth.Authenticator, sessions *session.Store) *Auth {
	return &Auth{authn: authn, sessions: sessions}
}

type loginRequest struct {
	Secret string `json:"secret"`
}

type loginResponse struct {
	Success bool `json:"success"`
}

// Login checks {"secret"} and answers {"success": bool}. A wrong secret is
// a 401.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxLoginBody)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	ok, err := a.authn.Authenticate(r.Context(), req.Secret)
	if err != nil {
		slog.Error("admin authentication failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if !ok {
		slog.Warn("admin login rejected", "remote", r.RemoteAddr)
		writeJSON(w, http.StatusUnauthorized, loginResponse{Success: false})
		return
	}

	if a.sessions != nil {
		if _, err := a.sessions.Create(r.Context(), w, &session.Data{Admin: true, RemoteAddr: r.RemoteAddr}); err != nil {
			slog.Error("session create failed", "error", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	slog.Info("admin logged in", "remote", r.RemoteAddr)
	writeJSON(w, http.StatusOK, loginResponse{Success: true})
}

// Logout destroys the admin session.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if a.sessions != nil {
		if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
			slog.Error("session destroy failed", "error", err)
		}
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// Session reports whether the request carries an admin session.
func (a *Auth) Session(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	writeJSON(w, http.StatusOK, map[string]bool{"authenticated": sess != nil && sess.Admin})
}
