// Package build orchestrates the full site generation pipeline: content
// discovery, markdown rendering, per-language aggregation, template
// execution, and file output.
package build

import (
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"glossa/internal/config"
	"glossa/internal/content"
	"glossa/internal/feed"
	"glossa/internal/i18n"
	"glossa/internal/route"
	"glossa/internal/search"
	"glossa/internal/seo"
	tmpl "glossa/internal/template"
)

// Result summarizes a completed build.
type Result struct {
	Posts       int
	SystemPages int
	Pages       int // HTML documents written
	Languages   int
	Duration    time.Duration
}

// Generator runs the build pipeline for one project root.
type Generator struct {
	cfg  *config.SiteConfig
	root string

	reg         *i18n.Registry
	resolver    *route.Resolver
	renderer    *content.Renderer
	engine      *tmpl.Engine
	backgrounds map[string]string

	outDir string
	result *Result
}

// NewGenerator creates a Generator for the project at root.
func NewGenerator(cfg *config.SiteConfig, root string) *Generator {
	return &Generator{cfg: cfg, root: root}
}

// languageContent buckets one language's documents by kind.
type languageContent struct {
	posts       []*content.Document
	systemPages []*content.Document
}

// Run executes the full pipeline:
//  1. Discover and parse every Markdown file under the content directory
//  2. Resolve each document's language and language-relative path
//  3. Per language: aggregate tags and categories, then render post pages,
//     system pages, paginated indexes, tag and category listings
//  4. Per language: emit rss.xml, search.json, and sitemap.xml
//  5. Emit robots.txt and ads.txt, and copy static assets
func (g *Generator) Run() (*Result, error) {
	start := time.Now()
	g.result = &Result{}

	g.outDir = filepath.Join(g.root, g.cfg.Dirs.Output)
	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	g.reg = i18n.Load(g.cfg.I18N, g.cfg.Navigation.Categories)
	g.resolver = route.NewResolver(g.reg)
	g.renderer = content.NewRenderer()
	g.backgrounds = categoryBackgrounds(g.cfg.Navigation.Categories.Backgrounds)

	engine, err := tmpl.NewEngine(filepath.Join(g.root, g.cfg.Dirs.Templates))
	if err != nil {
		return nil, err
	}
	g.engine = engine

	byLanguage, err := g.loadContent()
	if err != nil {
		return nil, err
	}

	var sitemapURLs []string
	for _, lang := range g.reg.Languages() {
		lc := byLanguage[lang.Code]
		if lc == nil {
			lc = &languageContent{}
		}
		sitemapURL, err := g.generateLanguage(lang, lc)
		if err != nil {
			return nil, fmt.Errorf("language %s: %w", lang.Code, err)
		}
		sitemapURLs = append(sitemapURLs, sitemapURL)
	}

	if err := WriteFile(filepath.Join(g.outDir, "robots.txt"), seo.GenerateRobots(sitemapURLs, g.cfg.BaseURL())); err != nil {
		return nil, err
	}
	if err := g.generateAdsTxt(); err != nil {
		return nil, err
	}
	if err := g.copyStatic(); err != nil {
		return nil, err
	}

	g.result.Languages = len(g.reg.Languages())
	g.result.Duration = time.Since(start)
	return g.result, nil
}

// loadContent walks the content tree, parses every Markdown file, and
// buckets the resulting documents by resolved language.
func (g *Generator) loadContent() (map[string]*languageContent, error) {
	contentDir := filepath.Join(g.root, g.cfg.Dirs.Content)
	byLanguage := make(map[string]*languageContent, len(g.reg.Languages()))
	for _, lang := range g.reg.Languages() {
		byLanguage[lang.Code] = &languageContent{}
	}

	err := filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		rel, err := filepath.Rel(contentDir, path)
		if err != nil {
			return err
		}

		doc, err := g.parseDocument(path, rel)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", rel, err)
		}

		lc := byLanguage[doc.Lang.Code]
		if lc == nil {
			lc = byLanguage[g.reg.Default().Code]
		}
		if doc.IsSystemPage {
			lc.systemPages = append(lc.systemPages, doc)
			g.result.SystemPages++
		} else {
			lc.posts = append(lc.posts, doc)
			g.result.Posts++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discovering content: %w", err)
	}
	return byLanguage, nil
}

// parseDocument reads one source file into a Document: front matter split
// off and normalized, body rendered, language and logical path resolved.
func (g *Generator) parseDocument(path, rel string) (*content.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	metadata, body, err := content.ParseFrontmatter(raw)
	if err != nil {
		return nil, err
	}
	attrs := content.ParseAttributes(metadata)

	isSystem := route.IsSystemPath(rel)
	lang := g.resolver.ResolveLanguage(rel, attrs.LangCode, isSystem)
	relPath := route.StripLanguageSegments(rel, lang, isSystem)
	if relPath == "" {
		relPath = filepath.Base(path)
	}

	html, toc, err := g.renderer.RenderWithTOC(body)
	if err != nil {
		return nil, err
	}

	attrs.LangCode = lang.Code
	if !isSystem && attrs.Category == "" {
		attrs.Category = lang.Nav.DefaultCategoryName
	}

	return &content.Document{
		SourcePath:   path,
		RelativePath: relPath,
		Attributes:   attrs,
		HTML:         string(html),
		TOC:          string(toc),
		Lang:         lang,
		IsSystemPage: isSystem,
	}, nil
}

// generateLanguage renders every output of one language and returns the
// absolute URL of its sitemap.
func (g *Generator) generateLanguage(lang *i18n.Language, lc *languageContent) (string, error) {
	posts := make([]*content.Document, len(lc.posts))
	copy(posts, lc.posts)
	content.SortByDate(posts)

	categories := content.CollectCategories(posts, lang, g.backgrounds)
	tags := content.CollectTags(posts, lang)

	pageSize := g.cfg.Pagination.PageSize
	if pageSize <= 0 {
		pageSize = 5
	}
	_, totalPages := content.Paginate(posts, 1, pageSize)

	for _, post := range posts {
		if err := g.generatePostPage(post, posts, categories, tags, lang); err != nil {
			return "", err
		}
	}
	for _, page := range lc.systemPages {
		if err := g.generateSystemPage(page, categories, tags, lang); err != nil {
			return "", err
		}
	}
	for page := 1; page <= totalPages; page++ {
		if err := g.generateIndexPage(posts, page, pageSize, tags, categories, lang); err != nil {
			return "", err
		}
	}
	if err := g.generateTagPages(tags, posts, categories, lang); err != nil {
		return "", err
	}
	if err := g.generateCategoryPages(categories, posts, tags, lang); err != nil {
		return "", err
	}
	if err := g.generateRSS(posts, lang); err != nil {
		return "", err
	}
	if err := g.generateSearchIndex(posts, lang); err != nil {
		return "", err
	}
	return g.generateSitemap(posts, lc.systemPages, categories, tags, totalPages, lang)
}

func (g *Generator) generatePostPage(post *content.Document, all []*content.Document, categories []*content.Category, tags []*content.Tag, lang *i18n.Language) error {
	category := g.categoryFor(post.Attributes.Category, lang)
	nav := content.BuildNavigation(categories, lang, g.reg, g.cfg.I18N.ShowLanguageSwitcher, content.NavOptions{
		ActiveCategorySlug: categorySlug(category),
	})

	recommended := content.Recommend(post, all, content.DefaultRecommendLimit)
	items := make([]tmpl.ListingItem, 0, len(recommended))
	for _, rec := range recommended {
		items = append(items, g.listingItem(rec, lang, false))
	}

	date := content.FormatDate(post.Attributes.Date, lang)
	data := tmpl.PostData{
		BaseData:           g.baseData(lang, nav, tags),
		Title:              g.titleOf(post, lang),
		Date:               post.Attributes.Date,
		DateFormatted:      date.Formatted,
		DateISO:            date.ISO,
		Tags:               g.tagLinks(post.Attributes.Tags, lang),
		CoverImage:         post.Attributes.CoverImage,
		Content:            template.HTML(post.HTML),
		TOC:                template.HTML(post.TOC),
		Category:           category,
		SEOKeywords:        post.Attributes.SEOKeywords,
		RecommendedPosts:   items,
		HasRecommendations: len(items) > 0,
		MetaDescription:    content.Excerpt(post.HTML, 160),
	}

	out, err := g.engine.Execute("post", data)
	if err != nil {
		return err
	}
	return g.writePage(route.DocumentOutputPath(g.outDir, post.RelativePath, lang), out)
}

func (g *Generator) generateSystemPage(page *content.Document, categories []*content.Category, tags []*content.Tag, lang *i18n.Language) error {
	active := strings.TrimSuffix(filepath.Base(page.RelativePath), ".md")
	nav := content.BuildNavigation(categories, lang, g.reg, g.cfg.I18N.ShowLanguageSwitcher, content.NavOptions{
		ActivePage: active,
	})

	date := content.FormatDate(page.Attributes.Date, lang)
	data := tmpl.PostData{
		BaseData:        g.baseData(lang, nav, tags),
		Title:           g.titleOf(page, lang),
		Date:            page.Attributes.Date,
		DateFormatted:   date.Formatted,
		DateISO:         date.ISO,
		Tags:            g.tagLinks(page.Attributes.Tags, lang),
		CoverImage:      page.Attributes.CoverImage,
		Content:         template.HTML(page.HTML),
		TOC:             template.HTML(page.TOC),
		MetaDescription: content.Excerpt(page.HTML, 160),
	}

	out, err := g.engine.Execute("post", data)
	if err != nil {
		return err
	}
	return g.writePage(route.DocumentOutputPath(g.outDir, page.RelativePath, lang), out)
}

func (g *Generator) generateIndexPage(posts []*content.Document, page, pageSize int, tags []*content.Tag, categories []*content.Category, lang *i18n.Language) error {
	pagePosts, totalPages := content.Paginate(posts, page, pageSize)

	active := ""
	if page == 1 {
		active = "home"
	}
	nav := content.BuildNavigation(categories, lang, g.reg, g.cfg.I18N.ShowLanguageSwitcher, content.NavOptions{ActivePage: active})

	items := make([]tmpl.ListingItem, 0, len(pagePosts))
	for _, post := range pagePosts {
		items = append(items, g.listingItem(post, lang, true))
	}

	data := tmpl.IndexData{
		BaseData:   g.baseData(lang, nav, tags),
		Posts:      items,
		Pagination: content.BuildPagination(page, totalPages, lang),
		PageTitle:  g.cfg.Site.Title,
	}

	out, err := g.engine.Execute("index", data)
	if err != nil {
		return err
	}

	var outPath string
	if page == 1 {
		outPath = route.BuildOutputPath(g.outDir, lang, "index.html")
	} else {
		outPath = route.BuildOutputPath(g.outDir, lang, "page", fmt.Sprint(page), "index.html")
	}
	return g.writePage(outPath, out)
}

func (g *Generator) generateTagPages(tags []*content.Tag, posts []*content.Document, categories []*content.Category, lang *i18n.Language) error {
	for _, tag := range tags {
		var tagged []*content.Document
		for _, post := range posts {
			for _, name := range post.Attributes.Tags {
				if name == tag.Name {
					tagged = append(tagged, post)
					break
				}
			}
		}
		if len(tagged) == 0 {
			continue
		}
		content.SortByDate(tagged)

		heading := tmpl.ListingHeading{
			Title:       "#" + tag.Name,
			Description: i18n.Translate(lang, "tags.description", fmt.Sprintf("%d posts", tag.Count), map[string]any{"count": tag.Count}),
			Type:        "tag",
		}
		suffix := i18n.Translate(lang, "tags.pageTitleSuffix", "Tags", nil)
		title := fmt.Sprintf("%s · %s · %s", tag.Name, suffix, g.cfg.Site.Title)
		nav := content.BuildNavigation(categories, lang, g.reg, g.cfg.I18N.ShowLanguageSwitcher, content.NavOptions{})
		outPath := route.BuildOutputPath(g.outDir, lang, "tags", tag.Slug, "index.html")

		if err := g.generateListingPage(title, heading, tagged, outPath, nav, tags, lang); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) generateCategoryPages(categories []*content.Category, posts []*content.Document, tags []*content.Tag, lang *i18n.Language) error {
	for _, category := range categories {
		var matched []*content.Document
		for _, post := range posts {
			if post.Attributes.Category == category.Name {
				matched = append(matched, post)
			}
		}
		if len(matched) == 0 {
			continue
		}
		content.SortByDate(matched)

		heading := tmpl.ListingHeading{
			Title:           category.Name,
			Description:     i18n.Translate(lang, "categories.description", fmt.Sprintf("%d posts", category.Count), map[string]any{"count": category.Count}),
			Type:            "category",
			BackgroundImage: category.BackgroundImage,
		}
		suffix := i18n.Translate(lang, "categories.pageTitleSuffix", "Categories", nil)
		title := fmt.Sprintf("%s · %s · %s", category.Name, suffix, g.cfg.Site.Title)
		nav := content.BuildNavigation(categories, lang, g.reg, g.cfg.I18N.ShowLanguageSwitcher, content.NavOptions{
			ActiveCategorySlug: category.Slug,
		})
		outPath := route.BuildOutputPath(g.outDir, lang, "categories", category.Slug, "index.html")

		if err := g.generateListingPage(title, heading, matched, outPath, nav, tags, lang); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) generateListingPage(title string, heading tmpl.ListingHeading, posts []*content.Document, outPath string, nav *content.Navigation, tags []*content.Tag, lang *i18n.Language) error {
	items := make([]tmpl.ListingItem, 0, len(posts))
	for _, post := range posts {
		items = append(items, g.listingItem(post, lang, true))
	}

	data := tmpl.ListingData{
		BaseData:  g.baseData(lang, nav, tags),
		Heading:   heading,
		Posts:     items,
		PageTitle: title,
	}

	out, err := g.engine.Execute("listing", data)
	if err != nil {
		return err
	}
	return g.writePage(outPath, out)
}

func (g *Generator) generateRSS(posts []*content.Document, lang *i18n.Language) error {
	description := g.cfg.Site.Description
	if description == "" {
		description = i18n.Translate(lang, "messages.rssDescription", "Static blog powered by Markdown", nil)
	}

	items := make([]feed.Item, 0, len(posts))
	for _, post := range posts {
		items = append(items, feed.Item{
			Title:       g.titleOf(post, lang),
			Description: content.Excerpt(post.HTML, 200),
			Link:        g.cfg.BaseURL() + route.DocumentURL(post.RelativePath, lang),
			PubDate:     post.Time(),
		})
	}

	out, err := feed.Generate(feed.Options{
		Title:       g.cfg.Site.Title,
		Description: description,
		Link:        route.SiteURL(g.cfg.BaseURL(), lang, nil, true),
		FeedURL:     route.SiteURL(g.cfg.BaseURL(), lang, []string{"rss.xml"}, false),
		Language:    strings.ToLower(lang.Locale),
		Author:      g.cfg.Site.Author,
	}, items)
	if err != nil {
		return err
	}
	return WriteFile(route.BuildOutputPath(g.outDir, lang, "rss.xml"), out)
}

func (g *Generator) generateSearchIndex(posts []*content.Document, lang *i18n.Language) error {
	indexed := make([]search.Post, 0, len(posts))
	for _, post := range posts {
		date := content.FormatDate(post.Attributes.Date, lang)

		tagLinks := make([]search.TagLink, 0, len(post.Attributes.Tags))
		for _, name := range post.Attributes.Tags {
			tagLinks = append(tagLinks, search.TagLink{
				Name: name,
				Slug: route.Slugify(name),
				URL:  route.TagURL(name, lang),
			})
		}

		var category *search.Category
		if cat := g.categoryFor(post.Attributes.Category, lang); cat != nil {
			category = &search.Category{
				Name:            cat.Name,
				Slug:            cat.Slug,
				URL:             cat.URL,
				BackgroundImage: cat.BackgroundImage,
			}
		}

		tags := post.Attributes.Tags
		if tags == nil {
			tags = []string{}
		}

		indexed = append(indexed, search.Post{
			Title:         g.titleOf(post, lang),
			URL:           route.DocumentURL(post.RelativePath, lang),
			Excerpt:       content.Excerpt(post.HTML, 220),
			Tags:          tags,
			TagLinks:      tagLinks,
			Date:          post.Attributes.Date,
			DateFormatted: date.Formatted,
			DateISO:       date.ISO,
			CoverImage:    post.Attributes.CoverImage,
			Category:      category,
			Content:       content.PlainText(post.HTML),
		})
	}

	out, err := search.Generate(indexed, time.Now())
	if err != nil {
		return err
	}
	return WriteFile(route.BuildOutputPath(g.outDir, lang, "search.json"), out)
}

func (g *Generator) generateSitemap(posts, systemPages []*content.Document, categories []*content.Category, tags []*content.Tag, totalPages int, lang *i18n.Language) (string, error) {
	base := g.cfg.BaseURL()
	changefreq := g.cfg.SEO.ChangeFrequency
	homePriority := g.cfg.SEO.HomePriority
	defaultPriority := g.cfg.SEO.DefaultPriority
	today := time.Now().UTC().Format("2006-01-02")

	// The default language's home collapses onto the bare base URL.
	homeLoc := base
	if homePath := route.BuildURL(lang, nil, true); homePath != "/" {
		homeLoc = base + homePath
	}

	var entries []seo.SitemapEntry
	entries = append(entries, seo.SitemapEntry{
		Loc:        homeLoc,
		Lastmod:    today,
		ChangeFreq: changefreq,
		Priority:   homePriority,
	})

	for page := 2; page <= totalPages; page++ {
		entries = append(entries, seo.SitemapEntry{
			Loc:        route.SiteURL(base, lang, []string{"page", fmt.Sprint(page)}, true),
			Lastmod:    today,
			ChangeFreq: changefreq,
			Priority:   defaultPriority,
		})
	}

	for _, post := range posts {
		lastmod := today
		if t := post.Time(); !t.IsZero() {
			lastmod = t.UTC().Format("2006-01-02")
		}
		entries = append(entries, seo.SitemapEntry{
			Loc:        base + route.DocumentURL(post.RelativePath, lang),
			Lastmod:    lastmod,
			ChangeFreq: changefreq,
			Priority:   defaultPriority,
		})
	}

	for _, category := range categories {
		entries = append(entries, seo.SitemapEntry{
			Loc:        base + category.URL,
			Lastmod:    today,
			ChangeFreq: changefreq,
			Priority:   defaultPriority,
		})
	}
	for _, tag := range tags {
		entries = append(entries, seo.SitemapEntry{
			Loc:        base + tag.URL,
			Lastmod:    today,
			ChangeFreq: changefreq,
			Priority:   defaultPriority,
		})
	}
	for _, page := range systemPages {
		entries = append(entries, seo.SitemapEntry{
			Loc:        base + route.DocumentURL(page.RelativePath, lang),
			Lastmod:    today,
			ChangeFreq: changefreq,
			Priority:   defaultPriority,
		})
	}

	out, err := seo.GenerateSitemap(entries)
	if err != nil {
		return "", err
	}
	if err := WriteFile(route.BuildOutputPath(g.outDir, lang, "sitemap.xml"), out); err != nil {
		return "", err
	}
	return route.SiteURL(base, lang, []string{"sitemap.xml"}, false), nil
}

// generateAdsTxt writes ads.txt when advertising is enabled and a publisher
// ID is configured, and removes a stale one otherwise.
func (g *Generator) generateAdsTxt() error {
	adsPath := filepath.Join(g.outDir, "ads.txt")
	publisherID := strings.TrimSpace(g.cfg.Advertising.PublisherID)

	if g.cfg.Advertising.Disabled || publisherID == "" {
		if err := os.Remove(adsPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing ads.txt: %w", err)
		}
		return nil
	}
	return WriteFile(adsPath, seo.AdsTxt(publisherID))
}

// copyStatic copies the static assets directory into the output tree under
// the same name. A missing source directory is not an error.
func (g *Generator) copyStatic() error {
	src := filepath.Join(g.root, g.cfg.Dirs.Static)
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return nil
	}
	return CopyDir(src, filepath.Join(g.outDir, g.cfg.Dirs.Static))
}

func (g *Generator) writePage(path string, html []byte) error {
	if err := WriteHTML(path, html); err != nil {
		return err
	}
	g.result.Pages++
	return nil
}

// baseData assembles the context shared by every page of one language.
func (g *Generator) baseData(lang *i18n.Language, nav *content.Navigation, tags []*content.Tag) tmpl.BaseData {
	return tmpl.BaseData{
		Site:       g.cfg.Site,
		Navigation: nav,
		Language: tmpl.LanguageData{
			Code:   lang.Code,
			Locale: lang.Locale,
			Label:  lang.Label,
		},
		Translations:  lang.Translations,
		AvailableTags: tags,
		HasTagFilters: len(tags) > 0,
		Assets: tmpl.AssetLinks{
			RSS:     route.BuildURL(lang, []string{"rss.xml"}, false),
			Sitemap: route.BuildURL(lang, []string{"sitemap.xml"}, false),
			Search:  route.BuildURL(lang, []string{"search.json"}, false),
		},
		Footer: tmpl.FooterData{
			ICP: tmpl.ICPData{
				Text: strings.TrimSpace(g.cfg.Footer.ICP.Text),
				Link: strings.TrimSpace(g.cfg.Footer.ICP.Link),
			},
			Note:   strings.TrimSpace(g.cfg.Footer.Note),
			Social: tmpl.NewSocialLinks(g.cfg.Footer.Social),
		},
		Analytics: tmpl.AnalyticsData{
			Head:    template.HTML(g.cfg.Analytics.Head),
			BodyEnd: template.HTML(g.cfg.Analytics.BodyEnd),
		},
	}
}

// listingItem converts a document into its listing summary.
func (g *Generator) listingItem(post *content.Document, lang *i18n.Language, includeExcerpt bool) tmpl.ListingItem {
	date := content.FormatDate(post.Attributes.Date, lang)
	excerpt := ""
	if includeExcerpt {
		excerpt = content.Excerpt(post.HTML, 200)
	}
	return tmpl.ListingItem{
		Title:         g.titleOf(post, lang),
		URL:           route.DocumentURL(post.RelativePath, lang),
		CoverImage:    post.Attributes.CoverImage,
		Excerpt:       excerpt,
		DateFormatted: date.Formatted,
		DateISO:       date.ISO,
		Tags:          g.tagLinks(post.Attributes.Tags, lang),
		Category:      g.categoryFor(post.Attributes.Category, lang),
	}
}

// tagLinks converts raw tag names into template tag links.
func (g *Generator) tagLinks(names []string, lang *i18n.Language) []tmpl.TagLinkData {
	links := make([]tmpl.TagLinkData, 0, len(names))
	for _, name := range names {
		links = append(links, tmpl.TagLinkData{
			Name: name,
			Slug: route.Slugify(name),
			URL:  route.TagURL(name, lang),
		})
	}
	return links
}

// categoryFor resolves a category name into its aggregate form, nil when the
// name is empty.
func (g *Generator) categoryFor(name string, lang *i18n.Language) *content.Category {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	slug := route.Slugify(name)
	return &content.Category{
		Name:            name,
		Slug:            slug,
		URL:             route.CategoryURL(name, lang),
		BackgroundImage: g.backgrounds[slug],
	}
}

// titleOf returns the document title, translated "Untitled" when absent.
func (g *Generator) titleOf(doc *content.Document, lang *i18n.Language) string {
	if doc.Attributes.Title != "" {
		return doc.Attributes.Title
	}
	return i18n.Translate(lang, "content.untitled", "Untitled", nil)
}

// categoryBackgrounds re-keys the configured background map by category slug.
func categoryBackgrounds(raw map[string]string) map[string]string {
	backgrounds := make(map[string]string, len(raw))
	for name, image := range raw {
		image = strings.TrimSpace(image)
		slug := route.Slugify(name)
		if slug == "" || image == "" {
			continue
		}
		backgrounds[slug] = image
	}
	return backgrounds
}

func categorySlug(category *content.Category) string {
	if category == nil {
		return ""
	}
	return category.Slug
}
