package build

import (
	"fmt"
	"regexp"
	"strings"
)

// preserveRes match elements whose inner whitespace is significant and must
// survive minification. Each tag gets its own pattern, with pre handled
// first so code blocks nested inside it are captured whole.
var preserveRes = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<pre[\s>].*?</pre>`),
	regexp.MustCompile(`(?is)<code[\s>].*?</code>`),
	regexp.MustCompile(`(?is)<textarea[\s>].*?</textarea>`),
	regexp.MustCompile(`(?is)<script[\s>].*?</script>`),
}

var (
	newlineRunRe    = regexp.MustCompile(`\r?\n+`)
	betweenTagsRe   = regexp.MustCompile(`>\s+<`)
	aroundNewlineRe = regexp.MustCompile(`\s*\n\s*`)
	spaceRunRe      = regexp.MustCompile(`\s{2,}`)
)

// MinifyHTML collapses insignificant whitespace in an HTML document. Content
// inside pre, code, textarea, and script elements is swapped out for
// placeholder tokens first and restored verbatim at the end.
func MinifyHTML(html string) string {
	if html == "" {
		return ""
	}

	var preserved []string
	for _, re := range preserveRes {
		html = re.ReplaceAllStringFunc(html, func(match string) string {
			token := fmt.Sprintf("___HTML_PLACEHOLDER_%d___", len(preserved))
			preserved = append(preserved, match)
			return token
		})
	}

	html = newlineRunRe.ReplaceAllString(html, "\n")
	html = betweenTagsRe.ReplaceAllString(html, "><")
	html = aroundNewlineRe.ReplaceAllString(html, "")
	html = spaceRunRe.ReplaceAllString(html, " ")
	html = strings.TrimSpace(html)

	for i, content := range preserved {
		token := fmt.Sprintf("___HTML_PLACEHOLDER_%d___", i)
		html = strings.ReplaceAll(html, token, content)
	}

	return html
}
