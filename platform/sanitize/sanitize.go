// Package sanitize cleans configured display text before it reaches clients.
package sanitize

import (
	"regexp"
	"strings"
	"unicode"
)

var htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

var entityReplacer = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&amp;", "&",
	"&quot;", "\"",
	"&#39;", "'",
)

// StripHTML removes all HTML tags from a string, making it safe for text-only display.
func StripHTML(s string) string {
	result := htmlTagRegex.ReplaceAllString(s, "")
	result = entityReplacer.Replace(result)
	// Re-strip after entity decode to catch encoded tags
	result = htmlTagRegex.ReplaceAllString(result, "")
	return strings.TrimSpace(result)
}

// StripControl drops control characters and collapses runs of whitespace to a
// single space.
func StripControl(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			if !space {
				b.WriteByte(' ')
			}
			space = true
		case unicode.IsControl(r):
		default:
			b.WriteRune(r)
			space = false
		}
	}
	return strings.TrimSpace(b.String())
}

// Text sanitizes a display string: HTML is stripped and whitespace normalized.
// Use for leader names, popup text and anything else loaded from files.
func Text(s string) string {
	return StripControl(StripHTML(s))
}
