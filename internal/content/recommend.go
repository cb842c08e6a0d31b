package content

import "sort"

// DefaultRecommendLimit is how many related posts a post page shows.
const DefaultRecommendLimit = 3

// Recommend picks up to limit posts related to current, ranked by shared
// tag count and then recency. When tag overlap cannot fill the quota the
// remainder is backfilled with the most recent unused posts. The current
// post, identified by source path, never recommends itself.
func Recommend(current *Document, all []*Document, limit int) []*Document {
	if limit <= 0 {
		limit = DefaultRecommendLimit
	}

	currentTags := make(map[string]bool, len(current.Attributes.Tags))
	for _, tag := range current.Attributes.Tags {
		currentTags[tag] = true
	}

	type candidate struct {
		doc     *Document
		overlap int
	}
	var candidates []candidate
	for _, doc := range all {
		if doc.SourcePath == current.SourcePath {
			continue
		}
		overlap := 0
		for _, tag := range doc.Attributes.Tags {
			if currentTags[tag] {
				overlap++
			}
		}
		candidates = append(candidates, candidate{doc: doc, overlap: overlap})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].overlap != candidates[j].overlap {
			return candidates[i].overlap > candidates[j].overlap
		}
		return candidates[i].doc.Time().After(candidates[j].doc.Time())
	})

	used := make(map[string]bool, limit)
	var recommended []*Document
	for _, c := range candidates {
		if len(recommended) >= limit {
			break
		}
		recommended = append(recommended, c.doc)
		used[c.doc.SourcePath] = true
	}

	if len(recommended) < limit {
		var rest []*Document
		for _, doc := range all {
			if doc.SourcePath == current.SourcePath || used[doc.SourcePath] {
				continue
			}
			rest = append(rest, doc)
		}
		SortByDate(rest)
		for _, doc := range rest {
			if len(recommended) >= limit {
				break
			}
			recommended = append(recommended, doc)
		}
	}

	return recommended
}
