// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug turns free-form folder hints into safe storage path segments.
package slug

import (
	"strings"
	"unicode"
)

// maxSegmentLen caps a single path segment.
const maxSegmentLen = 64

// Folder converts a folder hint such as "Showcase Images" or "../identity"
// into a lower-case path of hyphenated segments ("showcase-images",
// "identity"). Letters of any script and digits are kept; everything else
// separates words. Returns "" when nothing usable remains.
func Folder(hint string) string {
	var parts []string
	for _, raw := range strings.Split(hint, "/") {
		if seg := segment(raw); seg != "" {
			parts = append(parts, seg)
		}
	}
	return strings.Join(parts, "/")
}

// segment slugs one path element. "." and ".." collapse to "".
func segment(s string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	out := b.String()
	if len(out) > maxSegmentLen {
		out = strings.TrimRight(truncateRunes(out, maxSegmentLen), "-")
	}
	return out
}

// truncateRunes cuts s to at most n bytes without splitting a rune.
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func utf8RuneStart(b byte) bool { return b&0xC0 != 0x80 }
