package content

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Frontmatter delimiters.
var (
	yamlDelimiter = []byte("---")
	tomlDelimiter = []byte("+++")
)

// ParseFrontmatter detects and parses front matter from raw content bytes.
// It supports YAML (--- delimiters) and TOML (+++ delimiters).
// It returns the parsed metadata as a map, the remaining body content, and
// any error encountered during parsing.
//
// If no front-matter delimiters are found, it returns nil metadata, the full
// content as body, and no error.
func ParseFrontmatter(raw []byte) (metadata map[string]any, body []byte, err error) {
	trimmed := bytes.TrimLeft(raw, " \t\n\r")

	var delimiter []byte
	var format string

	switch {
	case bytes.HasPrefix(trimmed, yamlDelimiter):
		delimiter = yamlDelimiter
		format = "yaml"
	case bytes.HasPrefix(trimmed, tomlDelimiter):
		delimiter = tomlDelimiter
		format = "toml"
	default:
		// No front matter found.
		return nil, raw, nil
	}

	// Find the end of the opening delimiter line.
	rest := trimmed[len(delimiter):]
	nlIdx := bytes.IndexByte(rest, '\n')
	if nlIdx == -1 {
		// Only the opening delimiter, no closing one.
		return nil, raw, nil
	}
	rest = rest[nlIdx+1:]

	// Find the closing delimiter.
	before, after, ok := bytes.Cut(rest, delimiter)
	if !ok {
		return nil, raw, fmt.Errorf("closing frontmatter delimiter %q not found", string(delimiter))
	}

	frontmatterContent := before

	// Skip to end of closing delimiter line.
	nlIdx = bytes.IndexByte(after, '\n')
	if nlIdx == -1 {
		body = nil
	} else {
		body = after[nlIdx+1:]
	}

	// Handle empty front matter.
	if len(bytes.TrimSpace(frontmatterContent)) == 0 {
		return make(map[string]any), body, nil
	}

	metadata = make(map[string]any)

	switch format {
	case "yaml":
		if err := yaml.Unmarshal(frontmatterContent, &metadata); err != nil {
			return nil, nil, fmt.Errorf("failed to parse YAML frontmatter: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(frontmatterContent, &metadata); err != nil {
			return nil, nil, fmt.Errorf("failed to parse TOML frontmatter: %w", err)
		}
	}

	return metadata, body, nil
}

// ParseAttributes converts a parsed front-matter map into the typed
// Attributes structure, normalizing tags, category, and SEO keywords in the
// process. Unknown keys are ignored; missing keys leave zero values.
func ParseAttributes(metadata map[string]any) Attributes {
	attrs := Attributes{
		Title:       stringValue(metadata["title"]),
		Date:        dateString(metadata["date"]),
		Tags:        NormalizeTags(metadata["tags"]),
		Category:    NormalizeCategory(metadata["category"]),
		SEOKeywords: NormalizeSEOKeywords(metadata["seo"]),
		CoverImage:  stringValue(metadata["coverImage"]),
		LangCode:    stringValue(metadata["lang"]),
	}
	return attrs
}

// stringValue returns the trimmed string form of a front-matter value, or
// empty for non-strings.
func stringValue(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// dateString keeps the raw string form of a date value. TOML datetimes (and
// YAML documents decoded into typed structs) can arrive as time.Time, which
// is folded back to RFC 3339 so downstream parsing stays uniform.
func dateString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return ""
	}
}
