// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"hamour/internal/models"
)

// GetSettings returns the stored settings document.
func (a *API) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := a.gw.GetSettings(r.Context())
	if err != nil {
		writeGatewayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// UpdateSettings shallow-merges the body into the stored settings and
// returns the merged document. Nested objects in the body replace the
// stored ones whole.
func (a *API) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var patch models.SettingsPatch
	if err := a.decodeJSON(w, r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	merged, err := a.gw.UpdateSettings(r.Context(), patch)
	if err != nil {
		writeGatewayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, merged)
}
