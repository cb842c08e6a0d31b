package i18n

import (
	"fmt"
	"regexp"
	"strings"
)

// lookup resolves a dotted key ("nav.filter") against a nested translation
// map. It returns the value and whether every path component resolved.
func lookup(translations map[string]any, key string) (any, bool) {
	if key == "" {
		return nil, false
	}
	var current any = translations
	for _, part := range strings.Split(key, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Translate resolves key in the language's translation table. A missing or
// non-string value yields fallback, or the raw key when fallback is empty.
// Replacements substitute {{name}} placeholders (surrounding whitespace in
// the braces is tolerated).
func Translate(lang *Language, key, fallback string, replacements map[string]any) string {
	text := fallback
	if text == "" {
		text = key
	}
	if lang != nil {
		if v, ok := lookup(lang.Translations, key); ok {
			if s, ok := v.(string); ok {
				text = s
			}
		}
	}
	for name, value := range replacements {
		pattern := regexp.MustCompile(`\{\{\s*` + regexp.QuoteMeta(name) + `\s*\}\}`)
		text = pattern.ReplaceAllString(text, fmt.Sprintf("%v", value))
	}
	return text
}
