// File: /utils/slug.go
package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugSeparators = regexp.MustCompile(`[\s_-]+`)
	slugInvalid    = regexp.MustCompile(`[^a-z0-9-]+`)
)

// GenerateSlug converts a free-text name into a canonical URL-safe
// identifier: diacritics are stripped ("São José" -> "sao-jose"), runs of
// whitespace/underscores/hyphens collapse to a single hyphen, and anything
// that is not a lowercase word character or hyphen is dropped.
//
// Returns "" when nothing survives (pure punctuation, emoji). Callers must
// treat an empty slug as a validation failure, never persist it.
func GenerateSlug(name string) string {
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	ascii, _, err := transform.String(stripMarks, name)
	if err != nil {
		ascii = name
	}

	slug := strings.ToLower(strings.TrimSpace(ascii))
	slug = slugSeparators.ReplaceAllString(slug, "-")
	slug = slugInvalid.ReplaceAllString(slug, "")
	return strings.Trim(slug, "-")
}
