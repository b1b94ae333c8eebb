// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// DefaultDateLocale is the locale news dates are formatted in.
const DefaultDateLocale = "ar-EG"

// NextID returns a time-based identifier (Unix milliseconds) that is
// strictly greater than last. Two records created within the same
// millisecond therefore never share an id.
func NextID(now time.Time, last int64) int64 {
	id := now.UnixMilli()
	if id <= last {
		id = last + 1
	}
	return id
}

// ParseLocale parses a BCP 47 tag such as "ar-EG" or "en-US".
func ParseLocale(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("parse locale %q: %w", s, err)
	}
	return tag, nil
}

var arabic = language.MustParse("ar")

// arabicDigits maps ASCII digits to Arabic-Indic digits.
var arabicDigits = strings.NewReplacer(
	"0", "٠", "1", "١", "2", "٢", "3", "٣", "4", "٤",
	"5", "٥", "6", "٦", "7", "٧", "8", "٨", "9", "٩",
)

// rlm is the right-to-left mark placed before each separator in Arabic dates.
const rlm = "‏"

// FormatDate renders t as a short numeric date in the given locale.
// Arabic locales get day/month/year with Arabic-Indic digits, American
// English gets month/day/year, everything else day/month/year.
func FormatDate(t time.Time, tag language.Tag) string {
	base, _ := tag.Base()
	region, _ := tag.Region()

	switch {
	case base == mustBase(arabic):
		s := fmt.Sprintf("%d%s/%d%s/%d", t.Day(), rlm, int(t.Month()), rlm, t.Year())
		return arabicDigits.Replace(s)
	case base.String() == "en" && (region.String() == "US" || region.String() == "ZZ"):
		return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
	default:
		return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
	}
}

func mustBase(tag language.Tag) language.Base {
	b, _ := tag.Base()
	return b
}
