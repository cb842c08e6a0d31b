// Package content holds the document model and every pure derivation over
// the corpus: normalization, tag/category aggregation, navigation grouping,
// pagination, and recommendation ranking. Nothing in this package touches
// the file system or mutates a structure owned by a caller.
package content

import (
	"sort"
	"strings"
	"time"

	"glossa/internal/i18n"
)

// Attributes is the strictly typed form of a document's front matter,
// normalized once at ingestion and never re-validated downstream.
type Attributes struct {
	Title       string
	Date        string // raw front-matter value; parsed on demand
	Tags        []string
	Category    string
	SEOKeywords []string
	CoverImage  string
	LangCode    string
}

// Document is one parsed Markdown source file. RelativePath is the logical
// path with the system marker and language directory stripped; HTML is the
// rendered body with the first H1 removed.
type Document struct {
	SourcePath   string
	RelativePath string
	Attributes   Attributes
	HTML         string
	TOC          string
	Lang         *i18n.Language
	IsSystemPage bool
}

// dateFormats lists the layouts accepted for front-matter date fields.
var dateFormats = []string{
	"2006-01-02",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05-07:00",
	time.RFC3339,
}

// ParseDate parses a front-matter date string. Missing or unparseable dates
// return the zero time, which sorts as oldest and displays as blank.
func ParseDate(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Time returns the document's parsed date, zero when absent or invalid.
func (d *Document) Time() time.Time {
	return ParseDate(d.Attributes.Date)
}

// FormattedDate holds the two display forms of a document date.
type FormattedDate struct {
	Formatted string // locale-styled long date, blank when the date is absent
	ISO       string // RFC 3339, blank when the date is absent
}

// FormatDate renders a raw date string for the given language. Chinese
// locales get the native year-month-day form; everything else gets the
// English long form. The ISO field is the authoritative machine-readable
// value either way.
func FormatDate(value string, lang *i18n.Language) FormattedDate {
	t := ParseDate(value)
	if t.IsZero() {
		return FormattedDate{}
	}

	iso := t.UTC().Format(time.RFC3339)

	base, _ := lang.Tag().Base()
	if base.String() == "zh" {
		return FormattedDate{
			Formatted: t.Format("2006年1月2日"),
			ISO:       iso,
		}
	}
	return FormattedDate{
		Formatted: t.Format("January 2, 2006"),
		ISO:       iso,
	}
}

// SortByDate stable-sorts documents newest first. Documents without a
// parseable date carry the zero time and therefore end up last.
func SortByDate(docs []*Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].Time().After(docs[j].Time())
	})
}

// NormalizeTags converts a raw front-matter tags value (string list or
// comma-separated string) into a trimmed, non-empty list. Duplicate strings
// are removed, preserving first occurrence order.
func NormalizeTags(value any) []string {
	var raw []string
	switch v := value.(type) {
	case nil:
		return nil
	case []string:
		raw = v
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				raw = append(raw, s)
			}
		}
	case string:
		raw = strings.Split(v, ",")
	default:
		return nil
	}

	seen := make(map[string]bool, len(raw))
	var tags []string
	for _, tag := range raw {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

// NormalizeCategory trims a raw category value; anything that is not a
// string collapses to empty (the default category fills it in later for
// posts).
func NormalizeCategory(value any) string {
	s, ok := value.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// NormalizeSEOKeywords accepts the same shapes as NormalizeTags but keeps
// duplicates, matching how keyword lists are emitted verbatim into meta
// tags.
func NormalizeSEOKeywords(value any) []string {
	var raw []string
	switch v := value.(type) {
	case nil:
		return nil
	case []string:
		raw = v
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				raw = append(raw, s)
			}
		}
	case string:
		raw = strings.Split(v, ",")
	default:
		return nil
	}

	var keywords []string
	for _, kw := range raw {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}
