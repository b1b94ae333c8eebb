// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router tests verify the HTTP routing configuration, middleware
// chains, and the health endpoint.
package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"hamour/internal/auth"
	"hamour/internal/filestore"
	"hamour/internal/gateway"
	"hamour/internal/handlers"
	"hamour/internal/middleware"
	"hamour/internal/storage"
)

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health", nil)

	healthHandler(w, r)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}

	ct := resp.Header.Get("Content-Type")
	if ct != "application/json" {
		t.Errorf("content-type: got %q, want %q", ct, "application/json")
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field: got %q, want %q", body["status"], "ok")
	}
}

// newTestRouter wires the full router over a JSON file store and a disk
// image store in a temporary directory.
func newTestRouter(t *testing.T, origins []string, ticketLimit int) (http.Handler, string) {
	t.Helper()
	dir := t.TempDir()

	files, err := filestore.Open(filepath.Join(dir, "db.json"))
	if err != nil {
		t.Fatalf("open file store: %v", err)
	}
	uploads := filepath.Join(dir, "uploads")
	disk, err := storage.NewDisk(uploads, "/uploads")
	if err != nil {
		t.Fatalf("disk store: %v", err)
	}

	site := filepath.Join(dir, "site")
	if err := os.MkdirAll(site, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(site, "index.html"), []byte("<p>site</p>"), 0o644); err != nil {
		t.Fatal(err)
	}

	var tickets *middleware.RateLimiter
	if ticketLimit > 0 {
		tickets = middleware.NewRateLimiter(ticketLimit, time.Minute)
		t.Cleanup(tickets.Stop)
	}

	h := New(Options{
		API:           handlers.NewAPI(gateway.New(files, disk), handlers.DefaultMaxBodyBytes),
		Auth:          handlers.NewAuth(auth.SharedSecret("admin123"), nil),
		Static:        handlers.NewStatic(site, fstest.MapFS{"index.html": {Data: []byte("<p>fallback</p>")}}),
		TicketLimiter: tickets,
		CORSOrigins:   origins,
		UploadDir:     uploads,
		UploadPrefix:  "/uploads",
	})
	return h, uploads
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRouter_APIRoutes(t *testing.T) {
	h, _ := newTestRouter(t, nil, 0)

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/settings", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("GET /api/settings: got %d, want 200", rr.Code)
	}
	var settings map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &settings); err != nil {
		t.Fatalf("decode settings: %v", err)
	}
	if _, ok := settings["siteTitle"]; !ok {
		t.Error("settings response has no siteTitle")
	}

	rr = serve(h, httptest.NewRequest(http.MethodGet, "/api/news", nil))
	if rr.Code != http.StatusOK || strings.TrimSpace(rr.Body.String()) != "[]" {
		t.Errorf("GET /api/news: got %d %q", rr.Code, rr.Body.String())
	}

	rr = serve(h, httptest.NewRequest(http.MethodGet, "/api/auth/session", nil))
	if rr.Code != http.StatusOK {
		t.Errorf("GET /api/auth/session: got %d, want 200", rr.Code)
	}
}

func TestRouter_UnknownAPIPathIsJSON404(t *testing.T) {
	h, _ := newTestRouter(t, nil, 0)

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("content-type: got %q", ct)
	}
}

func TestRouter_SPAFallback(t *testing.T) {
	h, _ := newTestRouter(t, nil, 0)

	for _, path := range []string{"/", "/news", "/admin/settings"} {
		rr := serve(h, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusOK || rr.Body.String() != "<p>site</p>" {
			t.Errorf("GET %s: got %d %q", path, rr.Code, rr.Body.String())
		}
	}
}

func TestRouter_ServesUploads(t *testing.T) {
	h, uploads := newTestRouter(t, nil, 0)

	if err := os.MkdirAll(filepath.Join(uploads, "news"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(uploads, "news", "a.png"), []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/uploads/news/a.png", nil))
	if rr.Code != http.StatusOK || rr.Body.String() != "png" {
		t.Errorf("GET upload: got %d %q", rr.Code, rr.Body.String())
	}

	rr = serve(h, httptest.NewRequest(http.MethodGet, "/uploads/news/", nil))
	if rr.Code != http.StatusNotFound {
		t.Errorf("directory listing: got %d, want 404", rr.Code)
	}
}

func TestRouter_SecurityHeaders(t *testing.T) {
	h, _ := newTestRouter(t, nil, 0)

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/health", nil))
	if got := rr.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options: got %q, want nosniff", got)
	}
}

func TestRouter_CORS(t *testing.T) {
	h, _ := newTestRouter(t, []string{"https://site.example"}, 0)

	req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	req.Header.Set("Origin", "https://site.example")
	rr := serve(h, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://site.example" {
		t.Errorf("allowed origin: got %q", got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("allow credentials: got %q, want true", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/news", nil)
	req.Header.Set("Origin", "https://evil.example")
	rr = serve(h, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("foreign origin allowed: %q", got)
	}
}

func TestRouter_TicketRateLimit(t *testing.T) {
	h, _ := newTestRouter(t, nil, 1)

	body := `{"name":"n","email":"e@x.io","subject":"s","message":"m"}`
	submit := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/tickets", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		return serve(h, req).Code
	}

	if code := submit(); code != http.StatusOK {
		t.Fatalf("first submit: got %d, want 200", code)
	}
	if code := submit(); code != http.StatusTooManyRequests {
		t.Errorf("second submit: got %d, want 429", code)
	}
}
