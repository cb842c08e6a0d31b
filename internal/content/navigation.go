package content

import (
	"glossa/internal/i18n"
	"glossa/internal/route"
)

// LanguageLink is one entry in the header language switcher.
type LanguageLink struct {
	Code   string
	Label  string
	URL    string
	Active bool
}

// Navigation is the fully resolved header state for one rendered page.
type Navigation struct {
	ActivePage          string
	ActiveCategorySlug  string
	Primary             []*Category
	More                []*Category
	MoreLabel           string
	HasCategories       bool
	DefaultCategoryName string
	HomeURL             string
	AboutURL            string
	FilterLabel         string
	ToggleMenuLabel     string
	Languages           []LanguageLink
	HasLanguageSwitcher bool
}

// NavOptions selects the active highlight for a rendered page.
type NavOptions struct {
	ActivePage         string
	ActiveCategorySlug string
}

// BuildNavigation splits a language's categories into the primary header row
// and the "More" dropdown. Categories named in the language's top-level list
// go primary, in list order, deduplicated by slug; everything else goes to
// More in input order. The default category always sinks to the end of More,
// and when nothing was promoted the first few More entries move up so the
// header is never empty.
func BuildNavigation(categories []*Category, lang *i18n.Language, reg *i18n.Registry, showSwitcher bool, opts NavOptions) *Navigation {
	usedSlugs := make(map[string]bool)
	var primary, more []*Category

	for _, name := range lang.Nav.TopLevel {
		for _, cat := range categories {
			if cat.Name == name && !usedSlugs[cat.Slug] {
				primary = append(primary, cat)
				usedSlugs[cat.Slug] = true
			}
		}
	}

	for _, cat := range categories {
		if usedSlugs[cat.Slug] {
			continue
		}
		more = append(more, cat)
		usedSlugs[cat.Slug] = true
	}

	for i, cat := range more {
		if cat.Name == lang.Nav.DefaultCategoryName {
			more = append(append(more[:i:i], more[i+1:]...), cat)
			break
		}
	}

	if len(primary) == 0 && len(more) > 0 {
		n := min(3, len(more))
		primary = more[:n]
		more = more[n:]
	}

	languages := buildLanguageSwitcher(lang, reg)
	hasSwitcher := showSwitcher && len(languages) > 1
	if !hasSwitcher && len(languages) > 1 {
		languages = languages[:1]
	}

	return &Navigation{
		ActivePage:          opts.ActivePage,
		ActiveCategorySlug:  opts.ActiveCategorySlug,
		Primary:             primary,
		More:                more,
		MoreLabel:           lang.Nav.MoreLabel,
		HasCategories:       len(primary) > 0 || len(more) > 0,
		DefaultCategoryName: lang.Nav.DefaultCategoryName,
		HomeURL:             route.BuildURL(lang, nil, true),
		AboutURL:            route.BuildURL(lang, []string{"about.html"}, false),
		FilterLabel:         i18n.Translate(lang, "nav.filter", "Filter", nil),
		ToggleMenuLabel:     i18n.Translate(lang, "nav.toggleMenu", "Toggle menu", nil),
		Languages:           languages,
		HasLanguageSwitcher: hasSwitcher,
	}
}

// buildLanguageSwitcher lists every registered language as a switcher link.
// A single-language site gets no switcher at all.
func buildLanguageSwitcher(current *i18n.Language, reg *i18n.Registry) []LanguageLink {
	all := reg.Languages()
	if len(all) <= 1 {
		return nil
	}
	links := make([]LanguageLink, 0, len(all))
	for _, lang := range all {
		links = append(links, LanguageLink{
			Code:   lang.Code,
			Label:  lang.Label,
			URL:    route.BuildURL(lang, nil, true),
			Active: lang.Code == current.Code,
		})
	}
	return links
}
