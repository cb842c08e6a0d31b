package route

import (
	"path/filepath"
	"strings"

	"glossa/internal/i18n"
)

// SystemDir is the reserved content subtree holding system (non-post) pages
// such as "about". Documents under it bypass category, tag, and
// recommendation logic.
const SystemDir = "system"

// Resolver maps source files to languages and language-relative paths.
type Resolver struct {
	reg *i18n.Registry
}

// NewResolver creates a Resolver over the given language registry.
func NewResolver(reg *i18n.Registry) *Resolver {
	return &Resolver{reg: reg}
}

// ResolveLanguage determines the language of a document. Resolution order:
// an explicit front-matter code that matches a registered language wins;
// otherwise the relevant path segment (the first for ordinary documents, the
// second for system pages, the first being the system marker) is matched
// against registered codes and prefixes; otherwise the default language.
// The order is strict: a declaration always beats directory placement, and
// placement always beats the default.
func (r *Resolver) ResolveLanguage(relPath, declaredCode string, isSystemPage bool) *i18n.Language {
	if code := strings.TrimSpace(declaredCode); code != "" {
		if lang, ok := r.reg.ByCode(code); ok {
			return lang
		}
	}

	segments := SplitSegments(filepath.ToSlash(relPath))
	idx := 0
	if isSystemPage {
		idx = 1
	}
	if len(segments) > idx {
		if lang, ok := r.reg.BySegment(segments[idx]); ok {
			return lang
		}
	}

	return r.reg.Default()
}

// StripLanguageSegments removes the system marker segment (for system pages)
// and then at most one leading segment identifying the given language,
// returning the language-relative logical path. No more than one segment is
// removed per position, so "en/en-primer.md" keeps its file name.
func StripLanguageSegments(relPath string, lang *i18n.Language, isSystemPage bool) string {
	segments := SplitSegments(filepath.ToSlash(relPath))
	if isSystemPage && len(segments) > 0 {
		segments = segments[1:]
	}
	if len(segments) > 0 && lang.MatchesSegment(segments[0]) {
		segments = segments[1:]
	}
	return strings.Join(segments, "/")
}

// IsSystemPath reports whether a content-root-relative path lies in the
// reserved system subtree.
func IsSystemPath(relPath string) bool {
	segments := SplitSegments(filepath.ToSlash(relPath))
	return len(segments) > 0 && segments[0] == SystemDir
}
