package content

import "testing"

func TestStripHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<p>Hello</p>", "Hello"},
		{"<p>a</p><p>b</p>", "ab"},
		{"no tags", "no tags"},
		{`<a href="/x">link</a> text`, "link text"},
		{"<p>unclosed", "unclosed"},
	}
	for _, tt := range tests {
		if got := StripHTML(tt.in); got != tt.want {
			t.Errorf("StripHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<p>Hello</p><p>World</p>", "Hello World"},
		{"<h2>Title</h2>\n<p>Body   text</p>", "Title Body text"},
		{"  spaced   out  ", "spaced out"},
	}
	for _, tt := range tests {
		if got := PlainText(tt.in); got != tt.want {
			t.Errorf("PlainText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExcerpt(t *testing.T) {
	if got := Excerpt("<p>short</p>", 100); got != "short" {
		t.Errorf("short excerpt = %q", got)
	}

	if got := Excerpt("<p>abcdefghij</p>", 4); got != "abcd..." {
		t.Errorf("truncated excerpt = %q, want abcd...", got)
	}

	// Rune-safe truncation.
	if got := Excerpt("<p>一二三四五</p>", 3); got != "一二三..." {
		t.Errorf("CJK excerpt = %q, want 一二三...", got)
	}

	if got := Excerpt("", 10); got != "" {
		t.Errorf("empty excerpt = %q", got)
	}
}
