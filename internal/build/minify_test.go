package build

import (
	"strings"
	"testing"
)

func TestMinifyHTMLCollapsesWhitespace(t *testing.T) {
	in := "<html>\n  <body>\n    <p>Hello   world</p>\n  </body>\n</html>\n"
	got := MinifyHTML(in)

	if strings.Contains(got, "\n") {
		t.Errorf("newlines survive: %q", got)
	}
	if strings.Contains(got, "> <") {
		t.Errorf("inter-tag whitespace survives: %q", got)
	}
	if !strings.Contains(got, "Hello world") {
		t.Errorf("inner runs must collapse to one space: %q", got)
	}
}

func TestMinifyHTMLPreservesPre(t *testing.T) {
	pre := "<pre>\n  indented\n    code\n</pre>"
	in := "<div>\n  before\n</div>" + pre + "<p>\n after\n</p>"
	got := MinifyHTML(in)

	if !strings.Contains(got, pre) {
		t.Errorf("pre content must survive byte for byte:\n%s", got)
	}
	if strings.Contains(got, "<div>\n") {
		t.Error("content outside pre should still minify")
	}
}

func TestMinifyHTMLPreservesScriptAndCode(t *testing.T) {
	script := "<script>\nvar x = 1;\n  var y = 2;\n</script>"
	code := `<code class="x">a  b</code>`
	in := "<p>\n text\n</p>" + script + code
	got := MinifyHTML(in)

	if !strings.Contains(got, script) {
		t.Errorf("script body altered:\n%s", got)
	}
	if !strings.Contains(got, code) {
		t.Errorf("code body altered:\n%s", got)
	}
}

func TestMinifyHTMLCodeInsidePre(t *testing.T) {
	block := "<pre><code>line one\nline two</code></pre>"
	got := MinifyHTML("<main>\n" + block + "\n</main>")
	if !strings.Contains(got, block) {
		t.Errorf("nested code block altered:\n%s", got)
	}
}

func TestMinifyHTMLEmpty(t *testing.T) {
	if got := MinifyHTML(""); got != "" {
		t.Errorf("empty input = %q", got)
	}
}
