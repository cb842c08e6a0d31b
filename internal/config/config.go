// Package config handles loading, validating, and managing site configuration
// for the Glossa static blog generator.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// SiteConfig is the top-level configuration for a Glossa site.
type SiteConfig struct {
	Site        SiteMeta          `yaml:"site"        mapstructure:"site"`
	Pagination  PaginationConfig  `yaml:"pagination"  mapstructure:"pagination"`
	Navigation  NavigationConfig  `yaml:"navigation"  mapstructure:"navigation"`
	SEO         SEOConfig         `yaml:"seo"         mapstructure:"seo"`
	Advertising AdvertisingConfig `yaml:"advertising" mapstructure:"advertising"`
	Footer      FooterConfig      `yaml:"footer"      mapstructure:"footer"`
	Analytics   AnalyticsConfig   `yaml:"analytics"   mapstructure:"analytics"`
	I18N        I18NConfig        `yaml:"i18n"        mapstructure:"i18n"`
	Dirs        DirsConfig        `yaml:"dirs"        mapstructure:"dirs"`
}

// SiteMeta holds the site identity used across templates, feeds, and SEO files.
type SiteMeta struct {
	Title       string `yaml:"title"       mapstructure:"title"`
	Description string `yaml:"description" mapstructure:"description"`
	Author      string `yaml:"author"      mapstructure:"author"`
	URL         string `yaml:"url"         mapstructure:"url"`
}

// PaginationConfig controls how post lists are paginated.
type PaginationConfig struct {
	PageSize int `yaml:"pageSize" mapstructure:"pageSize"`
}

// NavigationConfig holds global navigation settings. Per-language overrides
// live on the language entries in I18NConfig.
type NavigationConfig struct {
	Categories CategoriesNav `yaml:"categories" mapstructure:"categories"`
}

// CategoriesNav configures how categories surface in the navigation bar.
type CategoriesNav struct {
	// TopLevel lists category display names shown directly in the bar,
	// in order. Categories not listed fall into the "more" dropdown.
	TopLevel []string `yaml:"topLevel" mapstructure:"topLevel"`
	// MoreLabel is the caption of the overflow dropdown.
	MoreLabel string `yaml:"moreLabel" mapstructure:"moreLabel"`
	// DefaultCategoryName is assigned to posts without a category.
	DefaultCategoryName string `yaml:"defaultCategoryName" mapstructure:"defaultCategoryName"`
	// Backgrounds maps category display names to header background images.
	Backgrounds map[string]string `yaml:"backgrounds" mapstructure:"backgrounds"`
}

// SEOConfig holds sitemap generation defaults.
type SEOConfig struct {
	ChangeFrequency string  `yaml:"changeFrequency" mapstructure:"changeFrequency"`
	HomePriority    float64 `yaml:"homePriority"    mapstructure:"homePriority"`
	DefaultPriority float64 `yaml:"defaultPriority" mapstructure:"defaultPriority"`
}

// AdvertisingConfig controls ads.txt generation.
type AdvertisingConfig struct {
	PublisherID string `yaml:"publisherId" mapstructure:"publisherId"`
	Disabled    bool   `yaml:"disabled"    mapstructure:"disabled"`
}

// FooterConfig holds footer content: ICP registration, a free-form note, and
// social links.
type FooterConfig struct {
	ICP    ICPConfig    `yaml:"icp"    mapstructure:"icp"`
	Note   string       `yaml:"note"   mapstructure:"note"`
	Social []SocialLink `yaml:"social" mapstructure:"social"`
}

// ICPConfig holds the ICP filing text and link shown in the footer.
type ICPConfig struct {
	Text string `yaml:"text" mapstructure:"text"`
	Link string `yaml:"link" mapstructure:"link"`
}

// SocialLink is a single footer social entry. Icon selects a built-in SVG by
// key (github, x, telegram, wechat, email, linkedin, rss).
type SocialLink struct {
	Label string `yaml:"label" mapstructure:"label"`
	URL   string `yaml:"url"   mapstructure:"url"`
	Icon  string `yaml:"icon"  mapstructure:"icon"`
}

// AnalyticsConfig holds raw HTML snippets injected into rendered pages.
type AnalyticsConfig struct {
	Head    string `yaml:"head"    mapstructure:"head"`
	BodyEnd string `yaml:"bodyEnd" mapstructure:"bodyEnd"`
}

// I18NConfig declares the site languages and their translation overrides.
type I18NConfig struct {
	DefaultLanguage      string                    `yaml:"defaultLanguage"      mapstructure:"defaultLanguage"`
	ShowLanguageSwitcher bool                      `yaml:"showLanguageSwitcher" mapstructure:"showLanguageSwitcher"`
	Languages            map[string]LanguageConfig `yaml:"languages"            mapstructure:"languages"`
}

// LanguageConfig configures a single declared language.
type LanguageConfig struct {
	Label        string             `yaml:"label"        mapstructure:"label"`
	Locale       string             `yaml:"locale"       mapstructure:"locale"`
	RoutePrefix  string             `yaml:"routePrefix"  mapstructure:"routePrefix"`
	Translations map[string]any     `yaml:"translations" mapstructure:"translations"`
	Navigation   *LanguageNavConfig `yaml:"navigation"   mapstructure:"navigation"`
}

// LanguageNavConfig overrides the global navigation settings for one
// language. A nil TopLevel means "use the global list".
type LanguageNavConfig struct {
	MoreLabel           string   `yaml:"moreLabel"           mapstructure:"moreLabel"`
	DefaultCategoryName string   `yaml:"defaultCategoryName" mapstructure:"defaultCategoryName"`
	TopLevel            []string `yaml:"topLevel"            mapstructure:"topLevel"`
}

// DirsConfig locates the source and output trees relative to the project root.
type DirsConfig struct {
	Content   string `yaml:"content"   mapstructure:"content"`
	Templates string `yaml:"templates" mapstructure:"templates"`
	Output    string `yaml:"output"    mapstructure:"output"`
	Static    string `yaml:"static"    mapstructure:"static"`
}

// Default returns a SiteConfig populated with sensible default values.
func Default() *SiteConfig {
	return &SiteConfig{
		Site: SiteMeta{
			URL: "http://localhost:8080",
		},
		Pagination: PaginationConfig{
			PageSize: 10,
		},
		Navigation: NavigationConfig{
			Categories: CategoriesNav{
				MoreLabel:           "More",
				DefaultCategoryName: "Misc",
			},
		},
		SEO: SEOConfig{
			ChangeFrequency: "weekly",
			HomePriority:    1.0,
			DefaultPriority: 0.6,
		},
		I18N: I18NConfig{
			ShowLanguageSwitcher: true,
		},
		Dirs: DirsConfig{
			Content:   "pages",
			Templates: "templates",
			Output:    "public",
			Static:    "styles",
		},
	}
}

// Load reads a configuration file from configPath (YAML or TOML) and returns
// a SiteConfig with defaults applied first and file values overlaid on top.
func Load(configPath string) (*SiteConfig, error) {
	cfg := Default()

	v := viper.New()

	// Determine format from extension.
	ext := strings.TrimPrefix(filepath.Ext(configPath), ".")
	switch ext {
	case "yaml", "yml":
		v.SetConfigType("yaml")
	case "toml":
		v.SetConfigType("toml")
	default:
		// Default to yaml if unrecognised.
		v.SetConfigType("yaml")
	}

	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks the SiteConfig for common errors.
func (c *SiteConfig) Validate() error {
	if strings.TrimSpace(c.Site.Title) == "" {
		return fmt.Errorf("config: site.title is required")
	}

	if c.Pagination.PageSize < 0 {
		return fmt.Errorf("config: pagination.pageSize must not be negative (got %d)", c.Pagination.PageSize)
	}

	return nil
}

// BaseURL returns the site URL without a trailing slash.
func (c *SiteConfig) BaseURL() string {
	u := c.Site.URL
	if u == "" {
		u = "http://localhost:8080"
	}
	return strings.TrimRight(u, "/")
}
