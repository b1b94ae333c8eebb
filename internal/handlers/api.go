// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON content API over a gateway.Gateway,
// admin login endpoints, and the static site fallback.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"hamour/internal/gateway"
)

// DefaultMaxBodyBytes caps request bodies when no limit is configured.
const DefaultMaxBodyBytes = 100 << 20

// API groups the content endpoints.
type API struct {
	gw      gateway.Gateway
	maxBody int64
}

// NewAPI creates the content API. maxBody caps JSON and multipart bodies;
// zero means DefaultMaxBodyBytes.
func NewAPI(gw gateway.Gateway, maxBody int64) *API {
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}
	return &API{gw: gw, maxBody: maxBody}
}

// successResponse is the body of delete endpoints.
type successResponse struct {
	Success bool `json:"success"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError sends {"error": msg}.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeGatewayError maps a gateway failure kind to a status code.
// Backend details stay in the log; validation messages reach the client.
func writeGatewayError(w http.ResponseWriter, err error) {
	switch gateway.KindOf(err) {
	case gateway.ErrValidation:
		writeError(w, http.StatusBadRequest, err.Error())
	case gateway.ErrNotFound:
		writeError(w, http.StatusNotFound, "not found")
	case gateway.ErrUpload:
		writeError(w, http.StatusBadGateway, "upload failed")
	default:
		slog.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads a size-capped JSON body into dst.
func (a *API) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, a.maxBody)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return fmt.Errorf("request body exceeds %d bytes", maxErr.Limit)
		}
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}
