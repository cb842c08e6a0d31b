package content

import "strings"

// StripHTML removes every HTML tag from the input, keeping the text between
// tags untouched. Unclosed trailing tags are dropped.
func StripHTML(html string) string {
	var b strings.Builder
	b.Grow(len(html))
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PlainText converts rendered HTML into searchable plain text: tags become
// spaces so adjacent block elements do not merge into one word, then runs of
// whitespace collapse to a single space.
func PlainText(html string) string {
	var b strings.Builder
	b.Grow(len(html))
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
			b.WriteByte(' ')
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Excerpt derives a short plain-text summary from rendered HTML, truncated
// to at most maxLen runes with an ellipsis appended when truncation occurs.
func Excerpt(html string, maxLen int) string {
	text := strings.TrimSpace(StripHTML(html))
	runes := []rune(text)
	if maxLen <= 0 || len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "..."
}
