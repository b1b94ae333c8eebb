// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the records persisted by the site backend: the
// singleton settings document, news items, and support tickets.
package models

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Language is a translation table identifier.
type Language string

const (
	LangEN Language = "en"
	LangAR Language = "ar"
)

// FallbackLanguage is used whenever the active language has no table.
const FallbackLanguage = LangAR

// ShowcaseImages maps the six fixed showcase slots to image references.
type ShowcaseImages struct {
	Map       string `json:"map"`
	Rank      string `json:"rank"`
	Tasks     string `json:"tasks"`
	Chat      string `json:"chat"`
	Store     string `json:"store"`
	Warehouse string `json:"warehouse"`
}

// Slots returns the showcase images keyed by slot name.
func (s ShowcaseImages) Slots() map[string]string {
	return map[string]string{
		"map":       s.Map,
		"rank":      s.Rank,
		"tasks":     s.Tasks,
		"chat":      s.Chat,
		"store":     s.Store,
		"warehouse": s.Warehouse,
	}
}

// WithSlot returns a copy with one slot replaced. Unknown slot names leave
// the value unchanged and report false.
func (s ShowcaseImages) WithSlot(slot, url string) (ShowcaseImages, bool) {
	switch slot {
	case "map":
		s.Map = url
	case "rank":
		s.Rank = url
	case "tasks":
		s.Tasks = url
	case "chat":
		s.Chat = url
	case "store":
		s.Store = url
	case "warehouse":
		s.Warehouse = url
	default:
		return s, false
	}
	return s, true
}

// Translations maps a language to its flat key → string table.
type Translations map[Language]map[string]string

// Table returns the table for lang, falling back to Arabic when lang has
// no table. The returned map must not be modified.
func (t Translations) Table(lang Language) map[string]string {
	if tbl, ok := t[lang]; ok && tbl != nil {
		return tbl
	}
	return t[FallbackLanguage]
}

// MissingKeys reports, per language, the keys that some other language
// defines but this one does not. Languages with nothing missing are omitted.
func (t Translations) MissingKeys() map[Language][]string {
	all := make(map[string]struct{})
	for _, tbl := range t {
		for k := range tbl {
			all[k] = struct{}{}
		}
	}

	missing := make(map[Language][]string)
	for lang, tbl := range t {
		for k := range all {
			if _, ok := tbl[k]; !ok {
				missing[lang] = append(missing[lang], k)
			}
		}
		sort.Strings(missing[lang])
	}
	for lang, keys := range missing {
		if len(keys) == 0 {
			delete(missing, lang)
		}
	}
	return missing
}

// clone deep-copies the translation tables.
func (t Translations) clone() Translations {
	if t == nil {
		return nil
	}
	out := make(Translations, len(t))
	for lang, tbl := range t {
		c := make(map[string]string, len(tbl))
		for k, v := range tbl {
			c[k] = v
		}
		out[lang] = c
	}
	return out
}

// SiteSettings is the singleton configuration document.
type SiteSettings struct {
	LogoURL            string         `json:"logoUrl"`
	HeroBgURL          string         `json:"heroBgUrl"`
	SiteBgColor        string         `json:"siteBgColor"`
	PrimaryColor       string         `json:"primaryColor"`
	SecondaryColor     string         `json:"secondaryColor"`
	SiteTitle          string         `json:"siteTitle"`
	AndroidURL         string         `json:"androidUrl"`
	IOSURL             string         `json:"iosUrl"`
	IsMaintenanceMode  bool           `json:"isMaintenanceMode"`
	MaintenanceMessage string         `json:"maintenanceMessage"`
	QRData             string         `json:"qrData"`
	CustomQRURL        string         `json:"customQrUrl"`
	ShowcaseImages     ShowcaseImages `json:"showcaseImages"`
	Translations       Translations   `json:"translations"`
	SocialLinks        SocialLinks    `json:"socialLinks"`
}

// Clone returns a copy that shares no maps with s.
func (s SiteSettings) Clone() SiteSettings {
	s.Translations = s.Translations.clone()
	s.SocialLinks = s.SocialLinks.clone()
	return s
}

// QRPayload returns what the download QR code should encode: the explicit
// QR data when set, otherwise the Android store link.
func (s SiteSettings) QRPayload() string {
	if s.QRData != "" {
		return s.QRData
	}
	return s.AndroidURL
}

// SettingsPatch is a partial settings update. A nil field is left alone;
// a non-nil field replaces the stored value wholesale, including nested
// objects. Callers that want to change one key of ShowcaseImages,
// SocialLinks, or Translations must copy the current nested value first.
type SettingsPatch struct {
	LogoURL            *string         `json:"logoUrl,omitempty"`
	HeroBgURL          *string         `json:"heroBgUrl,omitempty"`
	SiteBgColor        *string         `json:"siteBgColor,omitempty"`
	PrimaryColor       *string         `json:"primaryColor,omitempty"`
	SecondaryColor     *string         `json:"secondaryColor,omitempty"`
	SiteTitle          *string         `json:"siteTitle,omitempty"`
	AndroidURL         *string         `json:"androidUrl,omitempty"`
	IOSURL             *string         `json:"iosUrl,omitempty"`
	IsMaintenanceMode  *bool           `json:"isMaintenanceMode,omitempty"`
	MaintenanceMessage *string         `json:"maintenanceMessage,omitempty"`
	QRData             *string         `json:"qrData,omitempty"`
	CustomQRURL        *string         `json:"customQrUrl,omitempty"`
	ShowcaseImages     *ShowcaseImages `json:"showcaseImages,omitempty"`
	Translations       Translations    `json:"translations,omitempty"`
	SocialLinks        *SocialLinks    `json:"socialLinks,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p SettingsPatch) Empty() bool {
	return p.LogoURL == nil && p.HeroBgURL == nil && p.SiteBgColor == nil &&
		p.PrimaryColor == nil && p.SecondaryColor == nil && p.SiteTitle == nil &&
		p.AndroidURL == nil && p.IOSURL == nil && p.IsMaintenanceMode == nil &&
		p.MaintenanceMessage == nil && p.QRData == nil && p.CustomQRURL == nil &&
		p.ShowcaseImages == nil && p.Translations == nil && p.SocialLinks == nil
}

// Apply returns s with the patch merged in. The merge is shallow: only
// top-level fields are considered, and nested objects are replaced rather
// than merged key by key.
func (s SiteSettings) Apply(p SettingsPatch) SiteSettings {
	out := s.Clone()
	setString(&out.LogoURL, p.LogoURL)
	setString(&out.HeroBgURL, p.HeroBgURL)
	setString(&out.SiteBgColor, p.SiteBgColor)
	setString(&out.PrimaryColor, p.PrimaryColor)
	setString(&out.SecondaryColor, p.SecondaryColor)
	setString(&out.SiteTitle, p.SiteTitle)
	setString(&out.AndroidURL, p.AndroidURL)
	setString(&out.IOSURL, p.IOSURL)
	setString(&out.MaintenanceMessage, p.MaintenanceMessage)
	setString(&out.QRData, p.QRData)
	setString(&out.CustomQRURL, p.CustomQRURL)
	if p.IsMaintenanceMode != nil {
		out.IsMaintenanceMode = *p.IsMaintenanceMode
	}
	if p.ShowcaseImages != nil {
		out.ShowcaseImages = *p.ShowcaseImages
	}
	if p.Translations != nil {
		out.Translations = p.Translations.clone()
	}
	if p.SocialLinks != nil {
		out.SocialLinks = p.SocialLinks.clone()
	}
	return out
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// DecodeSettings parses a stored or transmitted settings document and
// overlays it on the defaults. Keys present in data win, keys absent from
// data keep their default value.
func DecodeSettings(data []byte) (SiteSettings, error) {
	var p SettingsPatch
	if err := json.Unmarshal(data, &p); err != nil {
		return SiteSettings{}, fmt.Errorf("decode settings: %w", err)
	}
	return DefaultSettings().Apply(p), nil
}

// String returns a pointer to v, for building patches.
func String(v string) *string { return &v }

// Bool returns a pointer to v, for building patches.
func Bool(v bool) *bool { return &v }
