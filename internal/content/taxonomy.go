package content

import (
	"sort"

	"glossa/internal/i18n"
	"glossa/internal/route"
)

// Tag is a tag aggregated across one language's posts. Tags are identified
// by their exact trimmed name: "Go" and "go" are distinct tags even though
// their listing URLs collide.
type Tag struct {
	Name  string
	Slug  string
	URL   string
	Count int
}

// Category is a category aggregated across one language's posts. Unlike
// tags, categories are identified by slug: "Dev Ops" and "dev-ops" merge
// into one category carrying the first-seen display name.
type Category struct {
	Name            string
	Slug            string
	URL             string
	BackgroundImage string
	Count           int
}

// CollectTags aggregates the tags of the given documents, counting one
// occurrence per document per tag. The result is sorted by name under the
// language's collation.
func CollectTags(docs []*Document, lang *i18n.Language) []*Tag {
	byName := make(map[string]*Tag)
	for _, doc := range docs {
		for _, name := range doc.Attributes.Tags {
			tag, ok := byName[name]
			if !ok {
				tag = &Tag{
					Name: name,
					Slug: route.Slugify(name),
					URL:  route.TagURL(name, lang),
				}
				byName[name] = tag
			}
			tag.Count++
		}
	}

	tags := make([]*Tag, 0, len(byName))
	for _, tag := range byName {
		tags = append(tags, tag)
	}
	coll := lang.Collator()
	sort.Slice(tags, func(i, j int) bool {
		return coll.CompareString(tags[i].Name, tags[j].Name) < 0
	})
	return tags
}

// CollectCategories aggregates the categories of the given documents, keyed
// by slug. backgrounds maps category slugs to listing background images; a
// missing entry leaves the image empty. Sorted by display name under the
// language's collation.
func CollectCategories(docs []*Document, lang *i18n.Language, backgrounds map[string]string) []*Category {
	bySlug := make(map[string]*Category)
	for _, doc := range docs {
		name := doc.Attributes.Category
		if name == "" {
			continue
		}
		slug := route.Slugify(name)
		cat, ok := bySlug[slug]
		if !ok {
			cat = &Category{
				Name:            name,
				Slug:            slug,
				URL:             route.CategoryURL(name, lang),
				BackgroundImage: backgrounds[slug],
			}
			bySlug[slug] = cat
		}
		cat.Count++
	}

	categories := make([]*Category, 0, len(bySlug))
	for _, cat := range bySlug {
		categories = append(categories, cat)
	}
	coll := lang.Collator()
	sort.Slice(categories, func(i, j int) bool {
		return coll.CompareString(categories[i].Name, categories[j].Name) < 0
	})
	return categories
}
