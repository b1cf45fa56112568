// Package dateutil formats dates and times for Arabic display.
package dateutil

import (
	"fmt"
	"strings"
	"time"
)

var arabicDigits = strings.NewReplacer(
	"0", "٠", "1", "١", "2", "٢", "3", "٣", "4", "٤",
	"5", "٥", "6", "٦", "7", "٧", "8", "٨", "9", "٩",
)

// Digits rewrites ASCII digits in s as Arabic-Indic digits.
func Digits(s string) string {
	return arabicDigits.Replace(s)
}

// FormatDate renders t as day/month/year, e.g. ١٧/١٠/٢٠٢٦.
func FormatDate(t time.Time) string {
	return Digits(fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year()))
}

// FormatTime renders t on a 12-hour clock with a morning/evening marker,
// e.g. ٠٩:٠٥ ص.
func FormatTime(t time.Time) string {
	h := t.Hour()
	marker := "ص"
	if h >= 12 {
		marker = "م"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return Digits(fmt.Sprintf("%02d:%02d", h, t.Minute())) + " " + marker
}

// FormatRelative describes how long ago t was relative to now. Anything
// older than 30 days falls back to FormatDate.
func FormatRelative(t, now time.Time) string {
	d := now.Sub(t)
	secs := int(d / time.Second)
	mins := secs / 60
	hours := mins / 60
	days := hours / 24

	switch {
	case secs < 60:
		return "الآن"
	case mins < 60:
		return Digits(fmt.Sprintf("منذ %d دقيقة", mins))
	case hours < 24:
		return Digits(fmt.Sprintf("منذ %d ساعة", hours))
	case days < 30:
		return Digits(fmt.Sprintf("منذ %d يوم", days))
	default:
		return FormatDate(t)
	}
}
