package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Pagination.PageSize != 10 {
		t.Errorf("default pageSize = %d, want 10", cfg.Pagination.PageSize)
	}
	if cfg.SEO.ChangeFrequency != "weekly" {
		t.Errorf("default changeFrequency = %q, want weekly", cfg.SEO.ChangeFrequency)
	}
	if cfg.SEO.HomePriority != 1.0 || cfg.SEO.DefaultPriority != 0.6 {
		t.Errorf("default priorities = %v/%v, want 1.0/0.6", cfg.SEO.HomePriority, cfg.SEO.DefaultPriority)
	}
	if !cfg.I18N.ShowLanguageSwitcher {
		t.Error("language switcher should default to on")
	}
	if cfg.Dirs.Content != "pages" || cfg.Dirs.Output != "public" {
		t.Errorf("default dirs = %+v", cfg.Dirs)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "glossa.yaml", `
site:
  title: My Blog
  description: Notes
  url: https://example.com/
pagination:
  pageSize: 6
navigation:
  categories:
    topLevel: ["Tech", "Life"]
    defaultCategoryName: "其它"
    backgrounds:
      Tech: /img/tech.jpg
i18n:
  defaultLanguage: zh
  languages:
    zh:
      label: 中文
      locale: zh-CN
    en:
      label: English
      locale: en-US
advertising:
  publisherId: pub-1234
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Site.Title != "My Blog" {
		t.Errorf("site.title = %q", cfg.Site.Title)
	}
	if cfg.Pagination.PageSize != 6 {
		t.Errorf("pageSize = %d, want 6", cfg.Pagination.PageSize)
	}
	if cfg.BaseURL() != "https://example.com" {
		t.Errorf("BaseURL = %q, want trailing slash trimmed", cfg.BaseURL())
	}
	if len(cfg.I18N.Languages) != 2 {
		t.Errorf("languages = %d, want 2", len(cfg.I18N.Languages))
	}
	if cfg.Navigation.Categories.Backgrounds["Tech"] != "/img/tech.jpg" {
		t.Errorf("backgrounds = %v", cfg.Navigation.Categories.Backgrounds)
	}
	if cfg.Advertising.PublisherID != "pub-1234" {
		t.Errorf("publisherId = %q", cfg.Advertising.PublisherID)
	}
	// Unset sections keep defaults.
	if cfg.SEO.ChangeFrequency != "weekly" {
		t.Errorf("seo defaults lost: %q", cfg.SEO.ChangeFrequency)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "glossa.toml", `
[site]
title = "TOML Blog"
url = "https://example.org"

[pagination]
pageSize = 3
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Site.Title != "TOML Blog" {
		t.Errorf("site.title = %q", cfg.Site.Title)
	}
	if cfg.Pagination.PageSize != 3 {
		t.Errorf("pageSize = %d, want 3", cfg.Pagination.PageSize)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err == nil {
		t.Error("missing site.title should fail validation")
	}

	cfg.Site.Title = "Ok"
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	cfg.Pagination.PageSize = -1
	if err := cfg.Validate(); err == nil {
		t.Error("negative pageSize should fail validation")
	}
}

func TestBaseURLFallback(t *testing.T) {
	cfg := &SiteConfig{}
	if got := cfg.BaseURL(); got != "http://localhost:8080" {
		t.Errorf("BaseURL fallback = %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
