// Package i18n implements the language registry: it loads the configured
// languages, layers each language's translations over the default language's,
// and exposes lookups used by routing and content aggregation.
package i18n

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"glossa/internal/config"
)

// SyntheticDefaultCode is the code assigned to the implicit language created
// when the configuration declares no languages at all.
const SyntheticDefaultCode = "default"

// NavDefaults holds the per-language navigation settings, already resolved
// against the global configuration.
type NavDefaults struct {
	MoreLabel           string
	DefaultCategoryName string
	TopLevel            []string
}

// Language is one site language. Exactly one language in a registry has
// IsDefault set; the default language has no URL prefix unless the
// configuration assigns one explicitly.
type Language struct {
	Code           string
	Label          string
	Locale         string
	IsDefault      bool
	RoutePrefix    string
	PrefixSegments []string
	Translations   map[string]any
	Nav            NavDefaults
}

// Registry holds all configured languages in deterministic (code-sorted)
// order with the default language first.
type Registry struct {
	languages []*Language
	byCode    map[string]*Language
	def       *Language
}

// Load builds a Registry from the i18n configuration. When no languages are
// declared a single synthetic default language with an empty prefix is
// returned. A defaultLanguage code that matches no declared language falls
// back to the first declared code (sorted order), silently.
func Load(cfg config.I18NConfig, nav config.CategoriesNav) *Registry {
	codes := make([]string, 0, len(cfg.Languages))
	for code := range cfg.Languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	defaultCode := strings.TrimSpace(cfg.DefaultLanguage)
	if defaultCode == "" {
		if len(codes) > 0 {
			defaultCode = codes[0]
		} else {
			defaultCode = SyntheticDefaultCode
		}
	}
	if len(codes) > 0 {
		found := false
		for _, code := range codes {
			if code == defaultCode {
				found = true
				break
			}
		}
		if !found {
			defaultCode = codes[0]
		}
	}

	var languages []*Language
	if len(codes) == 0 {
		languages = []*Language{normalizeLanguage(defaultCode, config.LanguageConfig{}, true, nav)}
	} else {
		languages = make([]*Language, 0, len(codes))
		for _, code := range codes {
			languages = append(languages, normalizeLanguage(code, cfg.Languages[code], code == defaultCode, nav))
		}
	}

	reg := &Registry{byCode: make(map[string]*Language, len(languages))}
	for _, lang := range languages {
		reg.byCode[lang.Code] = lang
		if lang.IsDefault {
			reg.def = lang
		}
	}
	if reg.def == nil {
		reg.def = languages[0]
		reg.def.IsDefault = true
	}

	// Layer every non-default language's translations over a clone of the
	// default's so that each key resolves in each language.
	for _, lang := range languages {
		if lang == reg.def {
			lang.Translations = MergeTranslations(nil, lang.Translations)
		} else {
			lang.Translations = MergeTranslations(reg.def.Translations, lang.Translations)
		}
	}

	// Default language first, remaining languages in code order.
	reg.languages = append(reg.languages, reg.def)
	for _, lang := range languages {
		if lang != reg.def {
			reg.languages = append(reg.languages, lang)
		}
	}

	return reg
}

// normalizeLanguage fills in the derived fields for one declared language.
func normalizeLanguage(code string, lc config.LanguageConfig, isDefault bool, nav config.CategoriesNav) *Language {
	label := strings.TrimSpace(lc.Label)
	if label == "" {
		label = strings.ToUpper(code)
	}

	locale := strings.TrimSpace(lc.Locale)
	if locale == "" {
		locale = "en-US"
	}

	prefix := strings.TrimSpace(lc.RoutePrefix)
	if prefix == "" && !isDefault {
		prefix = code
	}
	prefix = strings.Trim(prefix, "/")

	var segments []string
	for _, seg := range strings.Split(prefix, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}

	nd := NavDefaults{
		MoreLabel:           nav.MoreLabel,
		DefaultCategoryName: nav.DefaultCategoryName,
		TopLevel:            nav.TopLevel,
	}
	if nd.MoreLabel == "" {
		nd.MoreLabel = "More"
	}
	if nd.DefaultCategoryName == "" {
		nd.DefaultCategoryName = "Misc"
	}
	if lc.Navigation != nil {
		if lc.Navigation.MoreLabel != "" {
			nd.MoreLabel = lc.Navigation.MoreLabel
		}
		if lc.Navigation.DefaultCategoryName != "" {
			nd.DefaultCategoryName = lc.Navigation.DefaultCategoryName
		}
		if lc.Navigation.TopLevel != nil {
			nd.TopLevel = lc.Navigation.TopLevel
		}
	}

	return &Language{
		Code:           code,
		Label:          label,
		Locale:         locale,
		IsDefault:      isDefault,
		RoutePrefix:    prefix,
		PrefixSegments: segments,
		Translations:   lc.Translations,
		Nav:            nd,
	}
}

// Languages returns all registered languages, default first.
func (r *Registry) Languages() []*Language {
	return r.languages
}

// Default returns the default language.
func (r *Registry) Default() *Language {
	return r.def
}

// ByCode looks up a language by its exact code.
func (r *Registry) ByCode(code string) (*Language, bool) {
	lang, ok := r.byCode[code]
	return lang, ok
}

// BySegment looks up a language by a path segment: the segment matches a
// language when it equals its code, its route prefix, or the first segment
// of its URL prefix (case-insensitive).
func (r *Registry) BySegment(segment string) (*Language, bool) {
	for _, lang := range r.languages {
		if lang.MatchesSegment(segment) {
			return lang, true
		}
	}
	return nil, false
}

// MatchesSegment reports whether the path segment identifies this language.
func (l *Language) MatchesSegment(segment string) bool {
	s := strings.ToLower(strings.TrimSpace(segment))
	if s == "" {
		return false
	}
	if s == strings.ToLower(l.Code) {
		return true
	}
	if l.RoutePrefix != "" && s == strings.ToLower(l.RoutePrefix) {
		return true
	}
	if len(l.PrefixSegments) > 0 && s == strings.ToLower(l.PrefixSegments[0]) {
		return true
	}
	return false
}

// Tag returns the BCP 47 tag for the language's locale, falling back to the
// undetermined tag when the locale string does not parse.
func (l *Language) Tag() language.Tag {
	tag, err := language.Parse(l.Locale)
	if err != nil {
		return language.Und
	}
	return tag
}

// Collator returns a collator for the language's locale, used to order tag
// and category names the way a native reader expects.
func (l *Language) Collator() *collate.Collator {
	return collate.New(l.Tag())
}
