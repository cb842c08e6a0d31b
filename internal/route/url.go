package route

import (
	"path"
	"path/filepath"
	"strings"

	"glossa/internal/i18n"
)

// BuildURL joins the language's URL-prefix segments and the given logical
// segments into a site-relative URL. An empty combined list maps to "/".
// When trailingSlash is set the result always ends in exactly one "/",
// regardless of what the last segment looks like. The function is a pure
// string transform: identical inputs always produce identical output.
func BuildURL(lang *i18n.Language, segments []string, trailingSlash bool) string {
	combined := append([]string{}, lang.PrefixSegments...)
	combined = append(combined, SplitSegments(segments...)...)
	if len(combined) == 0 {
		return "/"
	}
	url := "/" + strings.Join(combined, "/")
	if trailingSlash && !strings.HasSuffix(url, "/") {
		url += "/"
	}
	return url
}

// BuildOutputPath maps the same (language, segments) pair that BuildURL
// accepts onto a path under outDir. The segment algebra is shared with
// BuildURL so the on-disk layout always mirrors the public URL space.
func BuildOutputPath(outDir string, lang *i18n.Language, segments ...string) string {
	parts := []string{outDir}
	parts = append(parts, lang.PrefixSegments...)
	parts = append(parts, SplitSegments(segments...)...)
	return filepath.Join(parts...)
}

// documentSegments turns a document's language-relative source path
// ("posts/intro.md") into its output segments ("posts", "intro.html").
func documentSegments(relPath string) []string {
	relPath = filepath.ToSlash(relPath)
	dir := path.Dir(relPath)
	name := strings.TrimSuffix(path.Base(relPath), ".md")

	var segments []string
	if dir != "" && dir != "." && dir != "/" {
		segments = append(segments, SplitSegments(dir)...)
	}
	segments = append(segments, name+".html")
	return segments
}

// DocumentURL returns the site-relative URL of a document given its
// language-relative source path.
func DocumentURL(relPath string, lang *i18n.Language) string {
	return BuildURL(lang, documentSegments(relPath), false)
}

// DocumentOutputPath returns the on-disk output file for a document.
func DocumentOutputPath(outDir, relPath string, lang *i18n.Language) string {
	return BuildOutputPath(outDir, lang, documentSegments(relPath)...)
}

// SiteURL joins the site base URL (no trailing slash expected) with the
// language-relative URL for the given segments. The root path collapses onto
// the bare base URL unless a trailing slash is requested.
func SiteURL(baseURL string, lang *i18n.Language, segments []string, trailingSlash bool) string {
	base := strings.TrimRight(baseURL, "/")
	p := BuildURL(lang, segments, trailingSlash)
	if p == "/" {
		if trailingSlash {
			return base + "/"
		}
		return base
	}
	return base + p
}

// TagURL returns the listing URL for a tag name in the given language.
func TagURL(name string, lang *i18n.Language) string {
	return BuildURL(lang, []string{"tags", Slugify(name)}, true)
}

// CategoryURL returns the listing URL for a category name in the given
// language.
func CategoryURL(name string, lang *i18n.Language) string {
	return BuildURL(lang, []string{"categories", Slugify(name)}, true)
}
