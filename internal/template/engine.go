// Package template loads and executes the site's page templates and defines
// the data shapes they consume.
package template

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
)

// Engine wraps Go's html/template with the site's custom functions. One
// logical template per .html file in the templates directory, addressed by
// file name without extension ("post", "index", "listing").
type Engine struct {
	templates *template.Template
}

// NewEngine loads every .html file from dir. Missing page templates surface
// later, at first Execute, so a site that only renders posts does not need a
// listing template.
func NewEngine(dir string) (*Engine, error) {
	root := template.New("").Funcs(FuncMap())

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading templates from %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", path, err)
		}
		name := strings.TrimSuffix(entry.Name(), ".html")
		if _, err := root.New(name).Parse(string(content)); err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", path, err)
		}
	}

	return &Engine{templates: root}, nil
}

// Execute renders the named template with the given data.
func (e *Engine) Execute(name string, data any) ([]byte, error) {
	t := e.templates.Lookup(name)
	if t == nil {
		return nil, fmt.Errorf("template %q not found", name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %q: %w", name, err)
	}
	return buf.Bytes(), nil
}
