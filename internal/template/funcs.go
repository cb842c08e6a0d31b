package template

import (
	"encoding/json"
	"html/template"
)

// FuncMap returns the functions available to all page templates.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"t":        translateFunc,
		"json":     jsonFunc,
		"seq":      seq,
		"safeHTML": safeHTML,
	}
}

// translateFunc looks up a dotted key in the page's translation map,
// returning fallback (or the key itself) when no string is found. Templates
// call it as {{t .Translations "nav.filter" "Filter"}}.
func translateFunc(translations map[string]any, key string, fallback ...string) string {
	fb := key
	if len(fallback) > 0 {
		fb = fallback[0]
	}

	current := any(translations)
	start := 0
	for i := 0; i <= len(key); i++ {
		if i < len(key) && key[i] != '.' {
			continue
		}
		m, ok := current.(map[string]any)
		if !ok {
			return fb
		}
		current, ok = m[key[start:i]]
		if !ok {
			return fb
		}
		start = i + 1
	}

	if s, ok := current.(string); ok {
		return s
	}
	return fb
}

// jsonFunc serializes a value for embedding in inline scripts.
func jsonFunc(v any) (template.JS, error) {
	out, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(out), nil
}

// seq returns the integers from start to end inclusive, for numbered
// pagination loops.
func seq(start, end int) []int {
	if end < start {
		return nil
	}
	nums := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		nums = append(nums, i)
	}
	return nums
}

func safeHTML(s string) template.HTML {
	return template.HTML(s)
}
