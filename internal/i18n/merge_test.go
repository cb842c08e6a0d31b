package i18n

import "testing"

func TestMergeTranslationsDeep(t *testing.T) {
	base := map[string]any{
		"nav": map[string]any{
			"filter": "Filter",
			"home":   "Home",
		},
		"messages": map[string]any{
			"rssDescription": "A blog",
		},
	}
	ext := map[string]any{
		"nav": map[string]any{
			"filter": "筛选",
		},
	}

	merged := MergeTranslations(base, ext)

	nav, ok := merged["nav"].(map[string]any)
	if !ok {
		t.Fatal("nav is not a map after merge")
	}
	if nav["filter"] != "筛选" {
		t.Errorf("nav.filter = %v, want 筛选", nav["filter"])
	}
	if nav["home"] != "Home" {
		t.Errorf("nav.home = %v, want Home (inherited)", nav["home"])
	}
	if msgs := merged["messages"].(map[string]any); msgs["rssDescription"] != "A blog" {
		t.Errorf("messages.rssDescription not inherited: %v", msgs["rssDescription"])
	}
}

func TestMergeTranslationsReplacesNonMaps(t *testing.T) {
	base := map[string]any{"items": []any{"a", "b"}, "n": 1}
	ext := map[string]any{"items": []any{"c"}, "n": 2}

	merged := MergeTranslations(base, ext)

	items := merged["items"].([]any)
	if len(items) != 1 || items[0] != "c" {
		t.Errorf("items = %v, want [c] (replaced, not concatenated)", items)
	}
	if merged["n"] != 2 {
		t.Errorf("n = %v, want 2", merged["n"])
	}
}

func TestMergeTranslationsDoesNotMutateBase(t *testing.T) {
	base := map[string]any{
		"nav": map[string]any{"filter": "Filter"},
	}
	ext := map[string]any{
		"nav": map[string]any{"filter": "筛选"},
	}

	_ = MergeTranslations(base, ext)

	if base["nav"].(map[string]any)["filter"] != "Filter" {
		t.Error("MergeTranslations mutated the base map")
	}
}
