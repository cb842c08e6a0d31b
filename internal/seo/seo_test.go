package seo

import (
	"strings"
	"testing"
)

func TestGenerateSitemap(t *testing.T) {
	out, err := GenerateSitemap([]SitemapEntry{
		{Loc: "https://example.com", Lastmod: "2024-06-01", ChangeFreq: "weekly", Priority: 1.0},
		{Loc: "https://example.com/post.html", Lastmod: "2024-03-01", ChangeFreq: "weekly", Priority: 0.6},
	})
	if err != nil {
		t.Fatalf("GenerateSitemap: %v", err)
	}

	xml := string(out)
	checks := []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`,
		`<loc>https://example.com</loc>`,
		`<priority>1.0</priority>`,
		`<priority>0.6</priority>`,
		`<changefreq>weekly</changefreq>`,
		`<lastmod>2024-03-01</lastmod>`,
	}
	for _, want := range checks {
		if !strings.Contains(xml, want) {
			t.Errorf("sitemap missing %q\n%s", want, xml)
		}
	}

	// Entry order is preserved.
	if strings.Index(xml, "example.com</loc>") > strings.Index(xml, "post.html") {
		t.Error("entries out of order")
	}
}

func TestGenerateRobots(t *testing.T) {
	out := GenerateRobots([]string{
		"https://example.com/sitemap.xml",
		"https://example.com/en/sitemap.xml",
		"https://example.com/sitemap.xml",
		"",
	}, "https://example.com")

	text := string(out)
	if !strings.HasPrefix(text, "User-agent: *\nAllow: /\n\n") {
		t.Errorf("header wrong:\n%s", text)
	}
	if strings.Count(text, "https://example.com/sitemap.xml") != 1 {
		t.Error("duplicate sitemap URLs must collapse")
	}
	if !strings.Contains(text, "Sitemap: https://example.com/en/sitemap.xml\n") {
		t.Error("second sitemap missing")
	}
	if !strings.HasSuffix(text, "\n") {
		t.Error("robots.txt must end with a newline")
	}
}

func TestGenerateRobotsFallback(t *testing.T) {
	out := GenerateRobots(nil, "https://example.com/")
	if !strings.Contains(string(out), "Sitemap: https://example.com/sitemap.xml\n") {
		t.Errorf("fallback sitemap missing:\n%s", out)
	}
}

func TestAdsTxt(t *testing.T) {
	got := string(AdsTxt("pub-1234567890"))
	want := "# Google AdSense verification\ngoogle.com, pub-1234567890, DIRECT, f08c47fec0942fa0\n"
	if got != want {
		t.Errorf("AdsTxt = %q, want %q", got, want)
	}
}
