package template

import (
	"html/template"
	"strings"

	"glossa/internal/config"
	"glossa/internal/content"
)

// LanguageData is the slim language descriptor exposed to templates.
type LanguageData struct {
	Code   string
	Locale string
	Label  string
}

// AssetLinks holds the language-scoped URLs of generated side artifacts.
type AssetLinks struct {
	RSS     string
	Sitemap string
	Search  string
}

// ICPData is the footer registration notice shown on mainland-hosted sites.
type ICPData struct {
	Text string
	Link string
}

// SocialLinkData is one resolved footer social link.
type SocialLinkData struct {
	Label    string
	URL      string
	Icon     template.HTML
	Fallback string
	IconKey  string
}

// FooterData groups the footer fields.
type FooterData struct {
	ICP    ICPData
	Note   string
	Social []SocialLinkData
}

// AnalyticsData carries raw analytics snippets injected verbatim.
type AnalyticsData struct {
	Head    template.HTML
	BodyEnd template.HTML
}

// BaseData is the context shared by every rendered page.
type BaseData struct {
	Site          config.SiteMeta
	Navigation    *content.Navigation
	Language      LanguageData
	Translations  map[string]any
	AvailableTags []*content.Tag
	HasTagFilters bool
	Assets        AssetLinks
	Footer        FooterData
	Analytics     AnalyticsData
}

// TagLinkData is one tag chip rendered on posts and listing items.
type TagLinkData struct {
	Name string
	Slug string
	URL  string
}

// ListingItem is one post summary on an index or listing page.
type ListingItem struct {
	Title         string
	URL           string
	CoverImage    string
	Excerpt       string
	DateFormatted string
	DateISO       string
	Tags          []TagLinkData
	Category      *content.Category
}

// PostData is the context of a single post or system page.
type PostData struct {
	BaseData
	Title              string
	Date               string
	DateFormatted      string
	DateISO            string
	Tags               []TagLinkData
	CoverImage         string
	Content            template.HTML
	TOC                template.HTML
	Category           *content.Category
	SEOKeywords        []string
	RecommendedPosts   []ListingItem
	HasRecommendations bool
	MetaDescription    string
}

// IndexData is the context of one paginated home page.
type IndexData struct {
	BaseData
	Posts      []ListingItem
	Pagination *content.Pagination
	PageTitle  string
}

// ListingHeading describes the hero block of a tag or category listing.
type ListingHeading struct {
	Title           string
	Description     string
	Type            string // "tag" or "category"
	BackgroundImage string
}

// ListingData is the context of a tag or category listing page.
type ListingData struct {
	BaseData
	Heading   ListingHeading
	Posts     []ListingItem
	PageTitle string
}

// NewSocialLinks resolves configured footer links into renderable form,
// dropping entries without a URL.
func NewSocialLinks(raw []config.SocialLink) []SocialLinkData {
	var links []SocialLinkData
	for _, item := range raw {
		url := strings.TrimSpace(item.URL)
		if url == "" {
			continue
		}
		label := strings.TrimSpace(item.Label)
		iconKey := strings.ToLower(strings.TrimSpace(item.Icon))
		links = append(links, SocialLinkData{
			Label:    label,
			URL:      url,
			Icon:     template.HTML(SocialIcon(iconKey)),
			Fallback: SocialFallback(label, url),
			IconKey:  iconKey,
		})
	}
	return links
}
