// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up the HTTP routes and middleware chains of the
// content server: the JSON API under /api, uploaded files, and the static
// site with its SPA fallback.
package router

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"hamour/internal/handlers"
	"hamour/internal/middleware"
)

// Options carries everything New wires together. Sessions, the limiters
// and the upload directory are optional.
type Options struct {
	API    *handlers.API
	Auth   *handlers.Auth
	Static http.Handler

	Sessions      middleware.SessionLoader
	LoginLimiter  *middleware.RateLimiter
	TicketLimiter *middleware.RateLimiter

	CORSOrigins  []string
	UploadDir    string
	UploadPrefix string
}

// New creates and returns the configured chi router.
func New(opts Options) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(corsHandler(opts.CORSOrigins))
	if opts.Sessions != nil {
		r.Use(middleware.LoadSession(opts.Sessions))
	}

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/settings", opts.API.GetSettings)
		r.Post("/settings", opts.API.UpdateSettings)

		r.Get("/news", opts.API.ListNews)
		r.Post("/news", opts.API.AddNews)
		r.Delete("/news/{id}", opts.API.DeleteNews)

		r.Get("/tickets", opts.API.ListTickets)
		r.With(limit(opts.TicketLimiter)).Post("/tickets", opts.API.SubmitTicket)
		r.Delete("/tickets/{id}", opts.API.DeleteTicket)

		r.Post("/upload", opts.API.UploadImage)
		r.Get("/qr.png", opts.API.QRCode)

		r.Route("/auth", func(r chi.Router) {
			r.With(limit(opts.LoginLimiter)).Post("/login", opts.Auth.Login)
			r.Post("/logout", opts.Auth.Logout)
			r.Get("/session", opts.Auth.Session)
		})

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"not found"}`))
		})
	})

	if opts.UploadDir != "" && opts.UploadPrefix != "" {
		prefix := "/" + strings.Trim(opts.UploadPrefix, "/")
		r.Handle(prefix+"/*", http.StripPrefix(prefix, noListing(http.FileServer(http.Dir(opts.UploadDir)))))
	}

	if opts.Static != nil {
		r.NotFound(opts.Static.ServeHTTP)
	}

	return r
}

// corsHandler allows the given origins. Credentials are only allowed for
// an explicit origin list.
func corsHandler(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	wildcard := len(origins) == 1 && origins[0] == "*"
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: !wildcard,
		MaxAge:           300,
	})
}

// limit applies rl when it is configured.
func limit(rl *middleware.RateLimiter) func(http.Handler) http.Handler {
	if rl == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return rl.Middleware
}

// noListing hides directory listings.
func noListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
