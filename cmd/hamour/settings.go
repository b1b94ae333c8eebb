// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"hamour/internal/content"
	"hamour/internal/models"
)

// stringSetting binds one plain string flag to a settings field.
type stringSetting struct {
	flag  string
	usage string
	set   func(p *models.SettingsPatch, v *string)
}

var stringSettings = []stringSetting{
	{"title", "site title", func(p *models.SettingsPatch, v *string) { p.SiteTitle = v }},
	{"logo-url", "logo image URL", func(p *models.SettingsPatch, v *string) { p.LogoURL = v }},
	{"hero-bg-url", "hero background image URL", func(p *models.SettingsPatch, v *string) { p.HeroBgURL = v }},
	{"bg-color", "site background colour", func(p *models.SettingsPatch, v *string) { p.SiteBgColor = v }},
	{"primary-color", "primary colour", func(p *models.SettingsPatch, v *string) { p.PrimaryColor = v }},
	{"secondary-color", "secondary colour", func(p *models.SettingsPatch, v *string) { p.SecondaryColor = v }},
	{"android-url", "Google Play link", func(p *models.SettingsPatch, v *string) { p.AndroidURL = v }},
	{"ios-url", "App Store link", func(p *models.SettingsPatch, v *string) { p.IOSURL = v }},
	{"maintenance-message", "text shown while in maintenance", func(p *models.SettingsPatch, v *string) { p.MaintenanceMessage = v }},
	{"qr-data", "payload of the download QR code", func(p *models.SettingsPatch, v *string) { p.QRData = v }},
	{"custom-qr-url", "custom QR image URL", func(p *models.SettingsPatch, v *string) { p.CustomQRURL = v }},
}

func newSettingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change site settings",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the current settings as JSON",
		Args:  cobra.NoArgs,
		RunE: adminRun(func(cmd *cobra.Command, s *content.Store, _ []string) error {
			settings := s.Settings()
			for lang, keys := range settings.Translations.MissingKeys() {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s translations lack %s\n", lang, strings.Join(keys, ", "))
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(settings)
		}),
	}

	set := &cobra.Command{
		Use:   "set",
		Short: "Change settings",
		Long: `Change one or more settings. Nested values (showcase images, social
links, translations) are copied from the current settings and edited, so keys
not named on the command line keep their value.`,
		Example: `  hamour admin settings set --maintenance --maintenance-message "Back soon"
  hamour admin settings set --social telegram=https://t.me/hamour --hide-social tiktok
  hamour admin settings set --showcase map=https://cdn.example.com/map.png
  hamour admin settings set --text en:heroHeadline="Rule the seas"`,
		Args: cobra.NoArgs,
		RunE: adminRun(func(cmd *cobra.Command, s *content.Store, _ []string) error {
			patch, err := buildPatch(cmd.Flags(), s.Settings())
			if err != nil {
				return err
			}
			if patch.Empty() {
				return errors.New("nothing to change")
			}
			if _, err := s.UpdateSettings(cmd.Context(), patch); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "settings saved")
			return nil
		}),
	}
	addSettingsFlags(set.Flags())

	cmd.AddCommand(show, set)
	return cmd
}

func addSettingsFlags(f *pflag.FlagSet) {
	for _, s := range stringSettings {
		f.String(s.flag, "", s.usage)
	}
	f.Bool("maintenance", false, "switch maintenance mode on or off")
	f.Bool("show-socials", false, "show or hide the whole social block")
	f.StringArray("showcase", nil, "showcase slot image as slot=url (map, rank, tasks, chat, store, warehouse)")
	f.StringArray("social", nil, "social link as platform=url; also makes it visible")
	f.StringArray("hide-social", nil, "hide a social platform")
	f.StringArray("show-social", nil, "show a social platform")
	f.StringArray("text", nil, "translation as lang:key=value")
}

// buildPatch turns the changed flags into a patch. Nested objects start
// from a copy of current so the whole-object replacement keeps the other
// keys.
func buildPatch(f *pflag.FlagSet, current models.SiteSettings) (models.SettingsPatch, error) {
	var patch models.SettingsPatch
	current = current.Clone()

	for _, s := range stringSettings {
		if !f.Changed(s.flag) {
			continue
		}
		v, err := f.GetString(s.flag)
		if err != nil {
			return patch, err
		}
		s.set(&patch, &v)
	}

	if f.Changed("maintenance") {
		v, _ := f.GetBool("maintenance")
		patch.IsMaintenanceMode = &v
	}

	if f.Changed("showcase") {
		showcase := current.ShowcaseImages
		entries, _ := f.GetStringArray("showcase")
		for _, e := range entries {
			slot, url, ok := strings.Cut(e, "=")
			if !ok {
				return patch, fmt.Errorf("--showcase %q: want slot=url", e)
			}
			if showcase, ok = showcase.WithSlot(slot, url); !ok {
				return patch, fmt.Errorf("--showcase: unknown slot %q", slot)
			}
		}
		patch.ShowcaseImages = &showcase
	}

	social := current.SocialLinks
	socialChanged := false
	if f.Changed("show-socials") {
		social.ShowSocials, _ = f.GetBool("show-socials")
		socialChanged = true
	}
	links, _ := f.GetStringArray("social")
	for _, e := range links {
		platform, url, ok := strings.Cut(e, "=")
		if !ok {
			return patch, fmt.Errorf("--social %q: want platform=url", e)
		}
		if !social.SetURL(platform, url) {
			return patch, fmt.Errorf("--social: unknown platform %q", platform)
		}
		social.SetActive(platform, true)
		socialChanged = true
	}
	for flag, active := range map[string]bool{"show-social": true, "hide-social": false} {
		platforms, _ := f.GetStringArray(flag)
		for _, p := range platforms {
			if !social.SetActive(p, active) {
				return patch, fmt.Errorf("--%s: unknown platform %q", flag, p)
			}
			socialChanged = true
		}
	}
	if socialChanged {
		patch.SocialLinks = &social
	}

	if f.Changed("text") {
		translations := current.Translations
		if translations == nil {
			translations = models.Translations{}
		}
		entries, _ := f.GetStringArray("text")
		for _, e := range entries {
			lang, rest, ok := strings.Cut(e, ":")
			key, value, ok2 := strings.Cut(rest, "=")
			if !ok || !ok2 || key == "" {
				return patch, fmt.Errorf("--text %q: want lang:key=value", e)
			}
			tbl := translations[models.Language(lang)]
			if tbl == nil {
				tbl = make(map[string]string)
				translations[models.Language(lang)] = tbl
			}
			tbl[key] = value
		}
		patch.Translations = translations
	}

	return patch, nil
}
