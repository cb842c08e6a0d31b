// Package route derives every output path and public URL in the site from a
// language and a list of logical path segments. Keeping all path algebra in
// one place guarantees that the URL of a page and its location on disk can
// never drift apart.
package route

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// slugKeepRe matches runs of characters that do not survive slugging:
// everything except ASCII word characters and CJK Unified Ideographs.
// Keeping the ideograph range means Chinese category and tag names produce
// readable slugs instead of collapsing to a bare hyphen.
var slugKeepRe = regexp.MustCompile(`[^0-9A-Za-z_\x{4e00}-\x{9fa5}]+`)

// Slugify converts a display string into a URL-safe, lowercase, hyphenated
// slug. Accented Latin letters are folded to their base form; runs of
// punctuation and whitespace collapse to a single hyphen; leading and
// trailing hyphens are trimmed. Slugify is idempotent: slugging a slug
// returns it unchanged.
func Slugify(value string) string {
	if value == "" {
		return ""
	}

	// Decompose and drop combining marks so "café" slugs as "cafe".
	var b strings.Builder
	for _, r := range norm.NFD.String(value) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}

	s := slugKeepRe.ReplaceAllString(b.String(), "-")
	s = strings.Trim(s, "-")
	return strings.ToLower(s)
}

// SplitSegments splits each value on slashes (forward or back), trims the
// parts, and returns the non-empty segments in order. It is the shared
// tokenizer for every URL and output-path builder.
func SplitSegments(values ...string) []string {
	var segments []string
	for _, value := range values {
		for _, part := range strings.FieldsFunc(value, func(r rune) bool {
			return r == '/' || r == '\\'
		}) {
			part = strings.TrimSpace(part)
			if part != "" {
				segments = append(segments, part)
			}
		}
	}
	return segments
}
