// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure: every handler test
// runs against a JSON file store in a temporary directory and a disk image
// store, wired through the real gateway service.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"hamour/internal/filestore"
	"hamour/internal/gateway"
	"hamour/internal/models"
	"hamour/internal/storage"
)

// testEnv holds the dependencies of one handler test.
type testEnv struct {
	api     *API
	files   *filestore.Store
	uploads string
	router  chi.Router
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()

	files, err := filestore.Open(filepath.Join(dir, "db.json"))
	require.NoError(t, err)

	uploads := filepath.Join(dir, "uploads")
	disk, err := storage.NewDisk(uploads, "/uploads")
	require.NoError(t, err)

	api := NewAPI(gateway.New(files, disk), 1<<20)

	r := chi.NewRouter()
	r.Get("/api/settings", api.GetSettings)
	r.Post("/api/settings", api.UpdateSettings)
	r.Get("/api/news", api.ListNews)
	r.Post("/api/news", api.AddNews)
	r.Delete("/api/news/{id}", api.DeleteNews)
	r.Get("/api/tickets", api.ListTickets)
	r.Post("/api/tickets", api.SubmitTicket)
	r.Delete("/api/tickets/{id}", api.DeleteTicket)
	r.Post("/api/upload", api.UploadImage)
	r.Get("/api/qr.png", api.QRCode)

	return &testEnv{api: api, files: files, uploads: uploads, router: r}
}

// do sends a request with an optional JSON body.
func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

// decode unmarshals the recorded body into v.
func decode(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v), rr.Body.String())
}

// errorGateway fails the calls it overrides with err.
type errorGateway struct {
	gateway.Gateway
	err error
}

func (g errorGateway) UploadImage(context.Context, []byte, string, string) (string, error) {
	return "", g.err
}

func (g errorGateway) GetSettings(context.Context) (models.SiteSettings, error) {
	return models.SiteSettings{}, g.err
}
