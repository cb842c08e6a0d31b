package i18n

import (
	"testing"

	"glossa/internal/config"
)

func TestLoadSyntheticDefault(t *testing.T) {
	reg := Load(config.I18NConfig{}, config.CategoriesNav{})

	langs := reg.Languages()
	if len(langs) != 1 {
		t.Fatalf("expected 1 language, got %d", len(langs))
	}
	def := reg.Default()
	if def.Code != SyntheticDefaultCode {
		t.Errorf("default code = %q, want %q", def.Code, SyntheticDefaultCode)
	}
	if !def.IsDefault {
		t.Error("synthetic language must be the default")
	}
	if len(def.PrefixSegments) != 0 {
		t.Errorf("synthetic default should have no URL prefix, got %v", def.PrefixSegments)
	}
}

func TestLoadDefaultResolution(t *testing.T) {
	langs := map[string]config.LanguageConfig{
		"zh": {Locale: "zh-CN"},
		"en": {Locale: "en-US"},
	}

	tests := []struct {
		name        string
		declared    string
		wantDefault string
	}{
		{"explicit match", "zh", "zh"},
		{"missing declaration falls back to first sorted", "", "en"},
		{"unknown declaration falls back to first sorted", "fr", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := Load(config.I18NConfig{DefaultLanguage: tt.declared, Languages: langs}, config.CategoriesNav{})
			if got := reg.Default().Code; got != tt.wantDefault {
				t.Errorf("default = %s, want %s", got, tt.wantDefault)
			}
			if reg.Languages()[0] != reg.Default() {
				t.Error("default language must be first in Languages()")
			}
		})
	}
}

func TestLoadPrefixes(t *testing.T) {
	reg := Load(config.I18NConfig{
		DefaultLanguage: "zh",
		Languages: map[string]config.LanguageConfig{
			"zh": {},
			"en": {},
			"fr": {RoutePrefix: "/lang/fr/"},
		},
	}, config.CategoriesNav{})

	zh, _ := reg.ByCode("zh")
	if zh.RoutePrefix != "" || len(zh.PrefixSegments) != 0 {
		t.Errorf("default language should have no prefix, got %q", zh.RoutePrefix)
	}

	en, _ := reg.ByCode("en")
	if en.RoutePrefix != "en" {
		t.Errorf("non-default prefix should default to code, got %q", en.RoutePrefix)
	}

	fr, _ := reg.ByCode("fr")
	if len(fr.PrefixSegments) != 2 || fr.PrefixSegments[0] != "lang" || fr.PrefixSegments[1] != "fr" {
		t.Errorf("multi-segment prefix parsed as %v", fr.PrefixSegments)
	}
	if lang, ok := reg.BySegment("lang"); !ok || lang.Code != "fr" {
		t.Error("first prefix segment should identify the language")
	}
}

func TestLoadTranslationLayering(t *testing.T) {
	reg := Load(config.I18NConfig{
		DefaultLanguage: "en",
		Languages: map[string]config.LanguageConfig{
			"en": {Translations: map[string]any{
				"nav": map[string]any{"filter": "Filter", "home": "Home"},
			}},
			"zh": {Translations: map[string]any{
				"nav": map[string]any{"filter": "筛选"},
			}},
		},
	}, config.CategoriesNav{})

	zh, _ := reg.ByCode("zh")
	if got := Translate(zh, "nav.filter", "", nil); got != "筛选" {
		t.Errorf("zh nav.filter = %q, want 筛选", got)
	}
	if got := Translate(zh, "nav.home", "", nil); got != "Home" {
		t.Errorf("zh nav.home = %q, want Home (inherited from default)", got)
	}
}

func TestLoadLabelFallback(t *testing.T) {
	reg := Load(config.I18NConfig{
		Languages: map[string]config.LanguageConfig{"en": {}},
	}, config.CategoriesNav{})

	en, _ := reg.ByCode("en")
	if en.Label != "EN" {
		t.Errorf("label = %q, want EN", en.Label)
	}
	if en.Locale != "en-US" {
		t.Errorf("locale = %q, want en-US", en.Locale)
	}
}

func TestNavOverrides(t *testing.T) {
	nav := config.CategoriesNav{
		MoreLabel:           "More",
		DefaultCategoryName: "Misc",
		TopLevel:            []string{"Tech"},
	}
	reg := Load(config.I18NConfig{
		DefaultLanguage: "zh",
		Languages: map[string]config.LanguageConfig{
			"zh": {Navigation: &config.LanguageNavConfig{
				MoreLabel:           "更多",
				DefaultCategoryName: "其它",
			}},
			"en": {},
		},
	}, nav)

	zh, _ := reg.ByCode("zh")
	if zh.Nav.MoreLabel != "更多" || zh.Nav.DefaultCategoryName != "其它" {
		t.Errorf("zh nav overrides not applied: %+v", zh.Nav)
	}
	if len(zh.Nav.TopLevel) != 1 || zh.Nav.TopLevel[0] != "Tech" {
		t.Errorf("zh should inherit global topLevel, got %v", zh.Nav.TopLevel)
	}

	en, _ := reg.ByCode("en")
	if en.Nav.MoreLabel != "More" || en.Nav.DefaultCategoryName != "Misc" {
		t.Errorf("en should use global nav settings, got %+v", en.Nav)
	}
}
