package content

import (
	"strconv"

	"glossa/internal/i18n"
	"glossa/internal/route"
)

// defaultPageSize applies when the configured page size is missing or
// non-positive.
const defaultPageSize = 10

// Paginate returns the documents of the given 1-based page and the total
// page count. The total is never zero: an empty corpus still has one (empty)
// page so every language root renders an index. Pages past the end are
// empty.
func Paginate(docs []*Document, page, size int) ([]*Document, int) {
	if size <= 0 {
		size = defaultPageSize
	}

	totalPages := (len(docs) + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 || page > totalPages {
		return nil, totalPages
	}

	start := (page - 1) * size
	end := start + size
	if start >= len(docs) {
		return nil, totalPages
	}
	if end > len(docs) {
		end = len(docs)
	}
	return docs[start:end], totalPages
}

// IndexPageURL returns the URL of the Nth index page for a language. Page 1
// is the language root; later pages live under /page/N/.
func IndexPageURL(lang *i18n.Language, n int) string {
	if n <= 1 {
		return route.BuildURL(lang, nil, true)
	}
	return route.BuildURL(lang, []string{"page", strconv.Itoa(n)}, true)
}

// PageRef is one numbered link in a pagination control.
type PageRef struct {
	Number    int
	URL       string
	IsCurrent bool
}

// Pagination is the template-facing state of one index page.
type Pagination struct {
	CurrentPage int
	TotalPages  int
	HasPrev     bool
	HasNext     bool
	PrevURL     string
	NextURL     string
	Pages       []PageRef
}

// BuildPagination computes prev/next links and the full numbered page list
// for index page current of total in the given language.
func BuildPagination(current, total int, lang *i18n.Language) *Pagination {
	if total < 1 {
		total = 1
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	p := &Pagination{
		CurrentPage: current,
		TotalPages:  total,
		HasPrev:     current > 1,
		HasNext:     current < total,
	}
	if p.HasPrev {
		p.PrevURL = IndexPageURL(lang, current-1)
	}
	if p.HasNext {
		p.NextURL = IndexPageURL(lang, current+1)
	}
	p.Pages = make([]PageRef, 0, total)
	for n := 1; n <= total; n++ {
		p.Pages = append(p.Pages, PageRef{
			Number:    n,
			URL:       IndexPageURL(lang, n),
			IsCurrent: n == current,
		})
	}
	return p
}
