package template

import (
	"strings"
	"testing"
)

func TestTranslateFunc(t *testing.T) {
	translations := map[string]any{
		"nav": map[string]any{
			"filter": "Filter",
		},
		"deep": map[string]any{
			"nested": map[string]any{"key": "value"},
		},
	}

	tests := []struct {
		key      string
		fallback []string
		want     string
	}{
		{"nav.filter", nil, "Filter"},
		{"deep.nested.key", nil, "value"},
		{"nav.missing", []string{"fb"}, "fb"},
		{"nav.missing", nil, "nav.missing"},
		{"nav", nil, "nav"},
	}
	for _, tt := range tests {
		if got := translateFunc(translations, tt.key, tt.fallback...); got != tt.want {
			t.Errorf("translateFunc(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestSeq(t *testing.T) {
	got := seq(1, 4)
	if len(got) != 4 || got[0] != 1 || got[3] != 4 {
		t.Errorf("seq(1,4) = %v", got)
	}
	if seq(3, 2) != nil {
		t.Error("inverted range yields nil")
	}
}

func TestJSONFunc(t *testing.T) {
	out, err := jsonFunc(map[string]int{"n": 1})
	if err != nil {
		t.Fatalf("jsonFunc: %v", err)
	}
	if string(out) != `{"n":1}` {
		t.Errorf("jsonFunc = %s", out)
	}
}

func TestSocialIcon(t *testing.T) {
	if SocialIcon("github") == "" {
		t.Error("github icon missing")
	}
	if SocialIcon("GitHub") == "" {
		t.Error("icon lookup should be case-insensitive")
	}
	if SocialIcon("twitter") != SocialIcon("x") {
		t.Error("twitter aliases x")
	}
	if SocialIcon("unknown") != "" {
		t.Error("unknown icon key yields empty markup")
	}
	if !strings.HasPrefix(SocialIcon("rss"), "<svg") {
		t.Error("icons are inline SVG")
	}
}

func TestSocialFallback(t *testing.T) {
	tests := []struct {
		label string
		url   string
		want  string
	}{
		{"github", "https://github.com/x", "G"},
		{"", "https://example.com", "E"},
		{"", "HTTP://example.com", "E"},
		{"中文", "https://x", "中"},
		{"", "", ""},
	}
	for _, tt := range tests {
		if got := SocialFallback(tt.label, tt.url); got != tt.want {
			t.Errorf("SocialFallback(%q, %q) = %q, want %q", tt.label, tt.url, got, tt.want)
		}
	}
}
