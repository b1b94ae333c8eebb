// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	qrcode "github.com/skip2/go-qrcode"
)

// QR code size bounds in pixels.
const (
	defaultQRSize = 256
	minQRSize     = 64
	maxQRSize     = 1024
)

// QRCode renders the download QR code as PNG. A custom QR image configured
// in settings wins through a redirect; otherwise the code encodes qrData,
// falling back to the Android store link.
func (a *API) QRCode(w http.ResponseWriter, r *http.Request) {
	settings, err := a.gw.GetSettings(r.Context())
	if err != nil {
		writeGatewayError(w, err)
		return
	}

	if settings.CustomQRURL != "" {
		http.Redirect(w, r, settings.CustomQRURL, http.StatusFound)
		return
	}

	payload := settings.QRPayload()
	if payload == "" {
		writeError(w, http.StatusNotFound, "no QR data configured")
		return
	}

	size := defaultQRSize
	if v, err := strconv.Atoi(r.URL.Query().Get("size")); err == nil {
		size = min(max(v, minQRSize), maxQRSize)
	}

	png, err := qrcode.Encode(payload, qrcode.Medium, size)
	if err != nil {
		slog.Error("qr encode failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(png)
}
