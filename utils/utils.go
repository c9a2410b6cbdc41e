package utils

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/jinzhu/now"
	"github.com/lithammer/shortuuid/v4"
)

// Slugify converts a human-readable title into a URL-safe slug: lowercase,
// alphanumeric runs joined by single hyphens, truncated to maxLen. Deriving a
// slug from the same title always yields the same value.
func Slugify(title string, maxLen int) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen

	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	if maxLen > 0 && len(slug) > maxLen {
		// Back up to a rune boundary so a multibyte letter is never split.
		cut := maxLen
		for cut > 0 && !utf8.RuneStart(slug[cut]) {
			cut--
		}
		slug = strings.Trim(slug[:cut], "-")
	}
	return slug
}

// NewPID generates a short public identifier for externally shareable links.
func NewPID() string {
	return shortuuid.New()
}

// SplitRecipients parses a comma-separated recipient list, trimming whitespace
// and dropping empty entries.
func SplitRecipients(raw string) []string {
	var recipients []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			recipients = append(recipients, trimmed)
		}
	}
	return recipients
}

// ParseTravelDate parses a visitor-supplied travel date leniently. Accepted
// layouts follow what the date widget and plain typing produce.
func ParseTravelDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	parsed, err := now.Parse(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q: %w", raw, err)
	}
	return parsed, nil
}

// Truncate shortens s to at most n bytes, used when embedding untrusted
// provider responses in error messages.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
