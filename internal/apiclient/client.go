// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package apiclient implements gateway.Gateway over the content server's
// JSON API, so the admin CLI can drive a running server.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"hamour/internal/gateway"
	"hamour/internal/models"
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 10 << 20

// Client talks to one content server.
type Client struct {
	baseURL string
	client  *http.Client
}

// New creates a client for the server at baseURL (for example
// "http://localhost:5000"). A nil httpClient gets a 30 second timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), client: httpClient}
}

var _ gateway.Gateway = (*Client)(nil)

// apiError is the error body the server sends on failure.
type apiError struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

func (e *apiError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.Status)
	}
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// request describes one API call. kind is the failure kind reported for
// transport errors and unexpected statuses.
type request struct {
	op          string
	method      string
	path        string
	body        io.Reader
	contentType string
	kind        error
}

// do performs r and returns the raw response body of a 2xx answer.
func (c *Client) do(ctx context.Context, r request) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, r.body)
	if err != nil {
		return nil, gateway.Fail(r.kind, r.op, err)
	}
	req.Header.Set("Accept", "application/json")
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, gateway.Fail(r.kind, r.op, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, gateway.Fail(r.kind, r.op, fmt.Errorf("read body: %w", err))
	}

	if resp.StatusCode/100 != 2 {
		apiErr := &apiError{Status: resp.StatusCode}
		json.Unmarshal(respBody, apiErr)
		return nil, gateway.Fail(kindForStatus(resp.StatusCode, r.kind), r.op, apiErr)
	}
	return respBody, nil
}

// kindForStatus maps the server's status codes back to failure kinds.
func kindForStatus(status int, fallback error) error {
	switch status {
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge:
		return gateway.ErrValidation
	case http.StatusNotFound:
		return gateway.ErrNotFound
	case http.StatusBadGateway:
		return gateway.ErrUpload
	default:
		return fallback
	}
}

// doJSON sends in as JSON (when non-nil) and decodes the answer into out
// (when non-nil).
func (c *Client) doJSON(ctx context.Context, r request, in, out any) error {
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return gateway.Fail(r.kind, r.op, fmt.Errorf("marshal: %w", err))
		}
		r.body = bytes.NewReader(payload)
		r.contentType = "application/json"
	}

	respBody, err := c.do(ctx, r)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return gateway.Fail(r.kind, r.op, fmt.Errorf("unmarshal: %w", err))
	}
	return nil
}

// GetSettings fetches the settings, overlaid on the defaults.
func (c *Client) GetSettings(ctx context.Context) (models.SiteSettings, error) {
	r := request{op: "get settings", method: http.MethodGet, path: "/api/settings", kind: gateway.ErrRead}
	respBody, err := c.do(ctx, r)
	if err != nil {
		return models.SiteSettings{}, err
	}
	s, err := models.DecodeSettings(respBody)
	if err != nil {
		return models.SiteSettings{}, gateway.Fail(gateway.ErrRead, r.op, err)
	}
	return s, nil
}

// UpdateSettings sends patch and returns the merged settings.
func (c *Client) UpdateSettings(ctx context.Context, patch models.SettingsPatch) (models.SiteSettings, error) {
	var merged models.SiteSettings
	r := request{op: "update settings", method: http.MethodPost, path: "/api/settings", kind: gateway.ErrWrite}
	if err := c.doJSON(ctx, r, patch, &merged); err != nil {
		return models.SiteSettings{}, err
	}
	return merged, nil
}

func (c *Client) ListNews(ctx context.Context) ([]models.NewsItem, error) {
	var news []models.NewsItem
	r := request{op: "list news", method: http.MethodGet, path: "/api/news", kind: gateway.ErrRead}
	if err := c.doJSON(ctx, r, nil, &news); err != nil {
		return nil, err
	}
	return news, nil
}

func (c *Client) AddNews(ctx context.Context, draft models.NewsDraft) (models.NewsItem, error) {
	var item models.NewsItem
	r := request{op: "add news", method: http.MethodPost, path: "/api/news", kind: gateway.ErrWrite}
	if err := c.doJSON(ctx, r, draft, &item); err != nil {
		return models.NewsItem{}, err
	}
	return item, nil
}

func (c *Client) DeleteNews(ctx context.Context, id string) error {
	r := request{op: "delete news", method: http.MethodDelete, path: "/api/news/" + url.PathEscape(id), kind: gateway.ErrWrite}
	return c.doJSON(ctx, r, nil, nil)
}

func (c *Client) ListTickets(ctx context.Context) ([]models.SupportTicket, error) {
	var tickets []models.SupportTicket
	r := request{op: "list tickets", method: http.MethodGet, path: "/api/tickets", kind: gateway.ErrRead}
	if err := c.doJSON(ctx, r, nil, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

func (c *Client) SubmitTicket(ctx context.Context, draft models.TicketDraft) (models.SupportTicket, error) {
	var ticket models.SupportTicket
	r := request{op: "submit ticket", method: http.MethodPost, path: "/api/tickets", kind: gateway.ErrWrite}
	if err := c.doJSON(ctx, r, draft, &ticket); err != nil {
		return models.SupportTicket{}, err
	}
	return ticket, nil
}

func (c *Client) DeleteTicket(ctx context.Context, id int64) error {
	r := request{op: "delete ticket", method: http.MethodDelete, path: "/api/tickets/" + strconv.FormatInt(id, 10), kind: gateway.ErrWrite}
	return c.doJSON(ctx, r, nil, nil)
}

// UploadImage posts data as a multipart form and returns the stored URL.
func (c *Client) UploadImage(ctx context.Context, data []byte, filename, folder string) (string, error) {
	const op = "upload image"

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("folder", folder); err != nil {
		return "", gateway.Fail(gateway.ErrUpload, op, err)
	}
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", gateway.Fail(gateway.ErrUpload, op, err)
	}
	if _, err := part.Write(data); err != nil {
		return "", gateway.Fail(gateway.ErrUpload, op, err)
	}
	if err := mw.Close(); err != nil {
		return "", gateway.Fail(gateway.ErrUpload, op, err)
	}

	respBody, err := c.do(ctx, request{
		op:          op,
		method:      http.MethodPost,
		path:        "/api/upload",
		body:        &buf,
		contentType: mw.FormDataContentType(),
		kind:        gateway.ErrUpload,
	})
	if err != nil {
		return "", err
	}

	var result struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", gateway.Fail(gateway.ErrUpload, op, fmt.Errorf("unmarshal: %w", err))
	}
	return result.URL, nil
}

// CheckSecret asks the server whether secret is the admin secret. It
// implements auth.SecretChecker.
func (c *Client) CheckSecret(ctx context.Context, secret string) (bool, error) {
	payload, err := json.Marshal(map[string]string{"secret": secret})
	if err != nil {
		return false, fmt.Errorf("marshal login: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/login", bytes.NewReader(payload))
	if err != nil {
		return false, fmt.Errorf("login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("login http: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var result struct {
			Success bool `json:"success"`
		}
		if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&result); err != nil {
			return false, fmt.Errorf("login unmarshal: %w", err)
		}
		return result.Success, nil
	case http.StatusUnauthorized:
		return false, nil
	default:
		return false, fmt.Errorf("login: server returned %d", resp.StatusCode)
	}
}
