// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"hamour/internal/models"
)

// Seed inserts the default settings row when the settings table is empty.
// Calling it again leaves an existing row untouched.
func Seed(db *sql.DB) error {
	d := models.DefaultSettings()

	showcase, err := json.Marshal(d.ShowcaseImages)
	if err != nil {
		return fmt.Errorf("seed marshal showcase: %w", err)
	}
	translations, err := json.Marshal(d.Translations)
	if err != nil {
		return fmt.Errorf("seed marshal translations: %w", err)
	}
	social, err := json.Marshal(d.SocialLinks)
	if err != nil {
		return fmt.Errorf("seed marshal social links: %w", err)
	}

	res, err := db.Exec(`
		INSERT INTO settings (
			id, logo_url, hero_bg_url, site_bg_color, primary_color, secondary_color,
			site_title, android_url, ios_url, is_maintenance_mode, maintenance_message,
			qr_data, custom_qr_url, showcase_images, translations, social_links
		) VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (id) DO NOTHING`,
		d.LogoURL, d.HeroBgURL, d.SiteBgColor, d.PrimaryColor, d.SecondaryColor,
		d.SiteTitle, d.AndroidURL, d.IOSURL, d.IsMaintenanceMode, d.MaintenanceMessage,
		d.QRData, d.CustomQRURL, showcase, translations, social,
	)
	if err != nil {
		return fmt.Errorf("seed insert settings: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		slog.Info("settings already seeded, skipping")
		return nil
	}
	slog.Info("database seeded with default settings")
	return nil
}
