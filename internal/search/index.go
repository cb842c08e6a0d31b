// Package search builds the client-side search index emitted as
// search.json per language.
package search

import (
	"encoding/json"
	"fmt"
	"time"
)

// TagLink is one tag reference on an indexed post.
type TagLink struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
	URL  string `json:"url"`
}

// Category identifies the category of an indexed post.
type Category struct {
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	URL             string `json:"url"`
	BackgroundImage string `json:"backgroundImage"`
}

// Post is one indexed document. Content carries the full plain text of the
// rendered body so the client can match against it.
type Post struct {
	Title         string    `json:"title"`
	URL           string    `json:"url"`
	Excerpt       string    `json:"excerpt"`
	Tags          []string  `json:"tags"`
	TagLinks      []TagLink `json:"tagLinks"`
	Date          string    `json:"date"`
	DateFormatted string    `json:"dateFormatted"`
	DateISO       string    `json:"dateISO"`
	CoverImage    string    `json:"coverImage"`
	Category      *Category `json:"category"`
	Content       string    `json:"content"`
}

// Index is the serialized form of one language's search.json.
type Index struct {
	GeneratedAt string `json:"generatedAt"`
	Posts       []Post `json:"posts"`
}

// Generate serializes the index with a generation timestamp. A nil post
// slice still serializes as an empty array so clients can iterate
// unconditionally.
func Generate(posts []Post, now time.Time) ([]byte, error) {
	if now.IsZero() {
		now = time.Now()
	}
	if posts == nil {
		posts = []Post{}
	}
	idx := Index{
		GeneratedAt: now.UTC().Format(time.RFC3339),
		Posts:       posts,
	}
	out, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal search index: %w", err)
	}
	return out, nil
}
