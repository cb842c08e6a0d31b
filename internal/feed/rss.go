// Package feed renders RSS 2.0 documents for a language's post stream.
package feed

import (
	"encoding/xml"
	"fmt"
	"sort"
	"time"
)

// DefaultMaxItems caps the feed length when Options.MaxItems is unset.
const DefaultMaxItems = 20

// Options configures one feed document.
type Options struct {
	Title       string
	Description string
	Link        string // channel link, the language home page
	FeedURL     string // absolute URL of the feed itself, for atom:link
	Language    string // lowercased locale, e.g. "en-us"
	Author      string // per-item author; "Anonymous" when empty
	MaxItems    int
	Now         time.Time // lastBuildDate; time.Now() when zero
}

// Item is one feed entry before serialization.
type Item struct {
	Title       string
	Description string
	Link        string
	PubDate     time.Time
}

// CDATA wraps text so it serializes as a CDATA section.
type CDATA struct {
	Text string `xml:",cdata"`
}

type rssGUID struct {
	IsPermaLink string `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type rssItem struct {
	XMLName     xml.Name `xml:"item"`
	Title       CDATA    `xml:"title"`
	Description CDATA    `xml:"description"`
	Link        string   `xml:"link"`
	GUID        rssGUID  `xml:"guid"`
	PubDate     string   `xml:"pubDate"`
	Author      string   `xml:"author"`
}

type rssChannel struct {
	Title         CDATA     `xml:"title"`
	Description   CDATA     `xml:"description"`
	Link          string    `xml:"link"`
	AtomLink      *atomLink `xml:"atom:link,omitempty"`
	Language      string    `xml:"language,omitempty"`
	LastBuildDate string    `xml:"lastBuildDate"`
	PubDate       string    `xml:"pubDate"`
	TTL           int       `xml:"ttl"`
	Items         []rssItem `xml:"item"`
}

type rssDoc struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	XMLNS   string     `xml:"xmlns:atom,attr"`
	Channel rssChannel `xml:"channel"`
}

// Generate renders an RSS 2.0 document. Items are sorted newest first and
// truncated to the item cap; entries without a date sort last.
func Generate(opts Options, items []Item) ([]byte, error) {
	maxItems := opts.MaxItems
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}

	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PubDate.After(sorted[j].PubDate)
	})
	if len(sorted) > maxItems {
		sorted = sorted[:maxItems]
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	author := opts.Author
	if author == "" {
		author = "Anonymous"
	}

	channel := rssChannel{
		Title:         CDATA{Text: opts.Title},
		Description:   CDATA{Text: opts.Description},
		Link:          opts.Link,
		Language:      opts.Language,
		LastBuildDate: now.UTC().Format(time.RFC1123Z),
		PubDate:       now.UTC().Format(time.RFC1123Z),
		TTL:           1440,
	}
	if opts.FeedURL != "" {
		channel.AtomLink = &atomLink{
			Href: opts.FeedURL,
			Rel:  "self",
			Type: "application/rss+xml",
		}
	}

	for _, item := range sorted {
		pubDate := now.UTC().Format(time.RFC1123Z)
		if !item.PubDate.IsZero() {
			pubDate = item.PubDate.UTC().Format(time.RFC1123Z)
		}
		channel.Items = append(channel.Items, rssItem{
			Title:       CDATA{Text: item.Title},
			Description: CDATA{Text: item.Description},
			Link:        item.Link,
			GUID:        rssGUID{IsPermaLink: "true", Value: item.Link},
			PubDate:     pubDate,
			Author:      author,
		})
	}

	doc := rssDoc{
		Version: "2.0",
		XMLNS:   "http://www.w3.org/2005/Atom",
		Channel: channel,
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal rss: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}
