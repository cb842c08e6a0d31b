// Package seo produces the crawler-facing artifacts: sitemap.xml,
// robots.txt, and the AdSense ads.txt declaration.
package seo

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// SitemapEntry is one <url> element of a sitemap.
type SitemapEntry struct {
	Loc        string
	Lastmod    string
	ChangeFreq string
	Priority   float64
}

type sitemapURL struct {
	XMLName    xml.Name `xml:"url"`
	Loc        string   `xml:"loc"`
	Lastmod    string   `xml:"lastmod,omitempty"`
	ChangeFreq string   `xml:"changefreq,omitempty"`
	Priority   string   `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// GenerateSitemap serializes entries into a sitemap document. Entry order is
// preserved; priorities render with one decimal place.
func GenerateSitemap(entries []SitemapEntry) ([]byte, error) {
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, entry := range entries {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        entry.Loc,
			Lastmod:    entry.Lastmod,
			ChangeFreq: entry.ChangeFreq,
			Priority:   fmt.Sprintf("%.1f", entry.Priority),
		})
	}
	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

// GenerateRobots renders robots.txt allowing all crawlers and pointing at
// every per-language sitemap. Duplicate sitemap URLs collapse; when none were
// produced a single sitemap at the site root is assumed.
func GenerateRobots(sitemapURLs []string, siteURL string) []byte {
	seen := make(map[string]bool, len(sitemapURLs))
	var unique []string
	for _, u := range sitemapURLs {
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		unique = append(unique, u)
	}
	if len(unique) == 0 {
		unique = []string{strings.TrimRight(siteURL, "/") + "/sitemap.xml"}
	}

	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("\n")
	for _, u := range unique {
		fmt.Fprintf(&b, "Sitemap: %s\n", u)
	}
	return []byte(b.String())
}

// AdsTxt renders the ads.txt body for a Google AdSense publisher ID.
func AdsTxt(publisherID string) []byte {
	return []byte(fmt.Sprintf("# Google AdSense verification\ngoogle.com, %s, DIRECT, f08c47fec0942fa0\n", publisherID))
}
