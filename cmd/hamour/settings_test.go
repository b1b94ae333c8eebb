// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hamour/internal/models"
)

func parseSettingsFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	f := pflag.NewFlagSet("set", pflag.ContinueOnError)
	addSettingsFlags(f)
	require.NoError(t, f.Parse(args))
	return f
}

func TestBuildPatch_PlainFields(t *testing.T) {
	f := parseSettingsFlags(t, "--title", "Hamour", "--maintenance", "--maintenance-message", "")
	patch, err := buildPatch(f, models.DefaultSettings())
	require.NoError(t, err)

	require.NotNil(t, patch.SiteTitle)
	assert.Equal(t, "Hamour", *patch.SiteTitle)
	require.NotNil(t, patch.IsMaintenanceMode)
	assert.True(t, *patch.IsMaintenanceMode)
	require.NotNil(t, patch.MaintenanceMessage)
	assert.Empty(t, *patch.MaintenanceMessage)

	assert.Nil(t, patch.LogoURL)
	assert.Nil(t, patch.SocialLinks)
	assert.Nil(t, patch.ShowcaseImages)
}

func TestBuildPatch_MaintenanceOff(t *testing.T) {
	f := parseSettingsFlags(t, "--maintenance=false")
	patch, err := buildPatch(f, models.DefaultSettings())
	require.NoError(t, err)
	require.NotNil(t, patch.IsMaintenanceMode)
	assert.False(t, *patch.IsMaintenanceMode)
}

func TestBuildPatch_NothingChanged(t *testing.T) {
	patch, err := buildPatch(parseSettingsFlags(t), models.DefaultSettings())
	require.NoError(t, err)
	assert.True(t, patch.Empty())
}

func TestBuildPatch_ShowcaseKeepsOtherSlots(t *testing.T) {
	current := models.DefaultSettings()
	f := parseSettingsFlags(t, "--showcase", "store=https://cdn.example.com/store.png")

	patch, err := buildPatch(f, current)
	require.NoError(t, err)
	require.NotNil(t, patch.ShowcaseImages)
	assert.Equal(t, "https://cdn.example.com/store.png", patch.ShowcaseImages.Store)
	assert.Equal(t, current.ShowcaseImages.Map, patch.ShowcaseImages.Map)

	merged := current.Apply(patch)
	assert.Equal(t, current.ShowcaseImages.Map, merged.ShowcaseImages.Map)
}

func TestBuildPatch_SocialSpreadsCurrentValue(t *testing.T) {
	current := models.DefaultSettings()
	current.SocialLinks.SetURL(models.PlatformDiscord, "https://discord.gg/x")
	current.SocialLinks.SetActive(models.PlatformDiscord, true)

	f := parseSettingsFlags(t,
		"--social", "telegram=https://t.me/hamour",
		"--hide-social", "discord",
	)
	patch, err := buildPatch(f, current)
	require.NoError(t, err)
	require.NotNil(t, patch.SocialLinks)

	links := *patch.SocialLinks
	assert.Equal(t, "https://t.me/hamour", links.Telegram)
	assert.True(t, links.Active(models.PlatformTelegram))
	assert.Equal(t, "https://discord.gg/x", links.Discord)
	assert.False(t, links.Active(models.PlatformDiscord))

	// current itself is untouched.
	assert.True(t, current.SocialLinks.Active(models.PlatformDiscord))
}

func TestBuildPatch_Text(t *testing.T) {
	current := models.DefaultSettings()
	f := parseSettingsFlags(t, "--text", "en:heroHeadline=Rule the seas")

	patch, err := buildPatch(f, current)
	require.NoError(t, err)
	assert.Equal(t, "Rule the seas", patch.Translations[models.LangEN]["heroHeadline"])
	assert.Equal(t, current.Translations[models.LangEN]["navHome"], patch.Translations[models.LangEN]["navHome"])
	assert.NotEqual(t, "Rule the seas", current.Translations[models.LangEN]["heroHeadline"])
}

func TestBuildPatch_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"showcase without url", []string{"--showcase", "map"}},
		{"unknown slot", []string{"--showcase", "lobby=x.png"}},
		{"unknown platform", []string{"--social", "myspace=x"}},
		{"hide unknown platform", []string{"--hide-social", "myspace"}},
		{"text without language", []string{"--text", "heroHeadline=x"}},
		{"text without key", []string{"--text", "en:=x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildPatch(parseSettingsFlags(t, tt.args...), models.DefaultSettings())
			assert.Error(t, err)
		})
	}
}
