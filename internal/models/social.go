// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Social platform identifiers, in display order.
const (
	PlatformWhatsApp      = "whatsapp"
	PlatformWhatsAppGroup = "whatsappGroup"
	PlatformTelegram      = "telegram"
	PlatformDiscord       = "discord"
	PlatformInstagram     = "instagram"
	PlatformTwitter       = "twitter"
	PlatformYouTube       = "youtube"
	PlatformFacebook      = "facebook"
	PlatformTikTok        = "tiktok"
	PlatformSnapchat      = "snapchat"
)

// Platforms lists every supported social platform.
var Platforms = []string{
	PlatformWhatsApp, PlatformWhatsAppGroup, PlatformTelegram, PlatformDiscord,
	PlatformInstagram, PlatformTwitter, PlatformYouTube, PlatformFacebook,
	PlatformTikTok, PlatformSnapchat,
}

// SocialLinks holds one URL per platform, a per-platform visibility flag,
// and a global switch for the whole social block.
type SocialLinks struct {
	ShowSocials   bool            `json:"showSocials"`
	WhatsApp      string          `json:"whatsapp"`
	WhatsAppGroup string          `json:"whatsappGroup"`
	Telegram      string          `json:"telegram"`
	Discord       string          `json:"discord"`
	Instagram     string          `json:"instagram"`
	Twitter       string          `json:"twitter"`
	YouTube       string          `json:"youtube"`
	Facebook      string          `json:"facebook"`
	TikTok        string          `json:"tiktok"`
	Snapchat      string          `json:"snapchat"`
	ActiveLinks   map[string]bool `json:"activeLinks"`
}

// SocialLink is one platform entry as shown on the public site.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

func (l *SocialLinks) field(platform string) *string {
	switch platform {
	case PlatformWhatsApp:
		return &l.WhatsApp
	case PlatformWhatsAppGroup:
		return &l.WhatsAppGroup
	case PlatformTelegram:
		return &l.Telegram
	case PlatformDiscord:
		return &l.Discord
	case PlatformInstagram:
		return &l.Instagram
	case PlatformTwitter:
		return &l.Twitter
	case PlatformYouTube:
		return &l.YouTube
	case PlatformFacebook:
		return &l.Facebook
	case PlatformTikTok:
		return &l.TikTok
	case PlatformSnapchat:
		return &l.Snapchat
	}
	return nil
}

// URL returns the link configured for platform.
func (l SocialLinks) URL(platform string) string {
	if f := l.field(platform); f != nil {
		return *f
	}
	return ""
}

// SetURL sets the link for platform. It reports false for unknown platforms.
func (l *SocialLinks) SetURL(platform, url string) bool {
	f := l.field(platform)
	if f == nil {
		return false
	}
	*f = url
	return true
}

// Active reports the visibility flag of platform. A platform missing from
// ActiveLinks is hidden.
func (l SocialLinks) Active(platform string) bool {
	return l.ActiveLinks[platform]
}

// SetActive sets the visibility flag of platform.
func (l *SocialLinks) SetActive(platform string, active bool) bool {
	if l.field(platform) == nil {
		return false
	}
	if l.ActiveLinks == nil {
		l.ActiveLinks = make(map[string]bool, len(Platforms))
	}
	l.ActiveLinks[platform] = active
	return true
}

// Visible returns the links the public site shows: nothing when the block
// is switched off, otherwise every active platform that has a URL.
func (l SocialLinks) Visible() []SocialLink {
	if !l.ShowSocials {
		return nil
	}
	var out []SocialLink
	for _, p := range Platforms {
		if u := l.URL(p); u != "" && l.Active(p) {
			out = append(out, SocialLink{Platform: p, URL: u})
		}
	}
	return out
}

func (l SocialLinks) clone() SocialLinks {
	if l.ActiveLinks != nil {
		active := make(map[string]bool, len(l.ActiveLinks))
		for k, v := range l.ActiveLinks {
			active[k] = v
		}
		l.ActiveLinks = active
	}
	return l
}
