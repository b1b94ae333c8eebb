// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"hamour/internal/gateway"
	"hamour/internal/models"
)

// SettingsStore manages the singleton settings row.
type SettingsStore struct {
	db *sql.DB
}

// NewSettingsStore returns a new SettingsStore backed by the given database.
func NewSettingsStore(db *sql.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// settingsRowID is the primary key of the only settings row.
const settingsRowID = 1

const settingsColumns = `logo_url, hero_bg_url, site_bg_color, primary_color, secondary_color,
	site_title, android_url, ios_url, is_maintenance_mode, maintenance_message,
	qr_data, custom_qr_url, showcase_images, translations, social_links`

// scanSettings scans a settings row. Nested objects are stored as JSONB.
func scanSettings(scanner interface{ Scan(...any) error }) (models.SiteSettings, error) {
	var s models.SiteSettings
	var showcase, translations, social []byte
	err := scanner.Scan(
		&s.LogoURL, &s.HeroBgURL, &s.SiteBgColor, &s.PrimaryColor, &s.SecondaryColor,
		&s.SiteTitle, &s.AndroidURL, &s.IOSURL, &s.IsMaintenanceMode, &s.MaintenanceMessage,
		&s.QRData, &s.CustomQRURL, &showcase, &translations, &social,
	)
	if err != nil {
		return models.SiteSettings{}, err
	}
	if err := json.Unmarshal(showcase, &s.ShowcaseImages); err != nil {
		return models.SiteSettings{}, fmt.Errorf("decode showcase images: %w", err)
	}
	if err := json.Unmarshal(translations, &s.Translations); err != nil {
		return models.SiteSettings{}, fmt.Errorf("decode translations: %w", err)
	}
	if err := json.Unmarshal(social, &s.SocialLinks); err != nil {
		return models.SiteSettings{}, fmt.Errorf("decode social links: %w", err)
	}
	return s, nil
}

// Get returns the settings row, or gateway.ErrNotFound when it was never
// seeded.
func (s *SettingsStore) Get(ctx context.Context) (models.SiteSettings, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+settingsColumns+` FROM settings WHERE id = $1`, settingsRowID)
	settings, err := scanSettings(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SiteSettings{}, gateway.ErrNotFound
	}
	if err != nil {
		return models.SiteSettings{}, fmt.Errorf("get settings: %w", err)
	}
	return settings, nil
}

// Update locks the settings row, applies patch with a shallow merge, and
// writes every column back in the same transaction.
func (s *SettingsStore) Update(ctx context.Context, patch models.SettingsPatch) (models.SiteSettings, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.SiteSettings{}, fmt.Errorf("begin settings update: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx,
		`SELECT `+settingsColumns+` FROM settings WHERE id = $1 FOR UPDATE`, settingsRowID)
	current, err := scanSettings(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SiteSettings{}, gateway.ErrNotFound
	}
	if err != nil {
		return models.SiteSettings{}, fmt.Errorf("lock settings: %w", err)
	}

	merged := current.Apply(patch)

	showcase, err := json.Marshal(merged.ShowcaseImages)
	if err != nil {
		return models.SiteSettings{}, fmt.Errorf("encode showcase images: %w", err)
	}
	translations, err := json.Marshal(merged.Translations)
	if err != nil {
		return models.SiteSettings{}, fmt.Errorf("encode translations: %w", err)
	}
	social, err := json.Marshal(merged.SocialLinks)
	if err != nil {
		return models.SiteSettings{}, fmt.Errorf("encode social links: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE settings SET
			logo_url = $1, hero_bg_url = $2, site_bg_color = $3, primary_color = $4,
			secondary_color = $5, site_title = $6, android_url = $7, ios_url = $8,
			is_maintenance_mode = $9, maintenance_message = $10, qr_data = $11,
			custom_qr_url = $12, showcase_images = $13, translations = $14,
			social_links = $15, updated_at = NOW()
		WHERE id = $16`,
		merged.LogoURL, merged.HeroBgURL, merged.SiteBgColor, merged.PrimaryColor,
		merged.SecondaryColor, merged.SiteTitle, merged.AndroidURL, merged.IOSURL,
		merged.IsMaintenanceMode, merged.MaintenanceMessage, merged.QRData,
		merged.CustomQRURL, showcase, translations, social, settingsRowID,
	)
	if err != nil {
		return models.SiteSettings{}, fmt.Errorf("update settings: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.SiteSettings{}, fmt.Errorf("commit settings: %w", err)
	}
	return merged, nil
}
