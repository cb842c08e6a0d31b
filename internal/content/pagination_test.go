package content

import (
	"fmt"
	"testing"
)

func makeDocs(n int) []*Document {
	docs := make([]*Document, n)
	for i := 0; i < n; i++ {
		docs[i] = &Document{SourcePath: fmt.Sprintf("post-%d.md", i+1)}
	}
	return docs
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		total     int
		page      int
		size      int
		wantLen   int
		wantPages int
	}{
		{10, 1, 3, 3, 4},
		{10, 4, 3, 1, 4},
		{10, 5, 3, 0, 4},
		{0, 1, 3, 0, 1},
		{3, 1, 10, 3, 1},
		{2, 1, 1, 1, 2},
		{2, 2, 1, 1, 2},
	}
	for _, tt := range tests {
		got, totalPages := Paginate(makeDocs(tt.total), tt.page, tt.size)
		if len(got) != tt.wantLen || totalPages != tt.wantPages {
			t.Errorf("Paginate(%d docs, page %d, size %d) = %d docs/%d pages, want %d/%d",
				tt.total, tt.page, tt.size, len(got), totalPages, tt.wantLen, tt.wantPages)
		}
	}
}

func TestPaginateCoversEveryPostOnce(t *testing.T) {
	docs := makeDocs(7)
	seen := map[string]int{}
	_, totalPages := Paginate(docs, 1, 3)
	for page := 1; page <= totalPages; page++ {
		pageDocs, _ := Paginate(docs, page, 3)
		for _, doc := range pageDocs {
			seen[doc.SourcePath]++
		}
	}
	if len(seen) != len(docs) {
		t.Fatalf("pages cover %d distinct posts, want %d", len(seen), len(docs))
	}
	for path, n := range seen {
		if n != 1 {
			t.Errorf("%s appears %d times across pages", path, n)
		}
	}
}

func TestPaginateDefaultSize(t *testing.T) {
	_, totalPages := Paginate(makeDocs(25), 1, 0)
	if totalPages != 3 {
		t.Errorf("size 0 should fall back to the default page size, got %d pages", totalPages)
	}
}

func TestIndexPageURL(t *testing.T) {
	reg, zh, en := testLanguages(t)
	_ = reg

	if got := IndexPageURL(zh, 1); got != "/" {
		t.Errorf("zh page 1 = %q, want /", got)
	}
	if got := IndexPageURL(zh, 2); got != "/page/2/" {
		t.Errorf("zh page 2 = %q", got)
	}
	if got := IndexPageURL(en, 1); got != "/en/" {
		t.Errorf("en page 1 = %q", got)
	}
	if got := IndexPageURL(en, 3); got != "/en/page/3/" {
		t.Errorf("en page 3 = %q", got)
	}
}

func TestBuildPagination(t *testing.T) {
	_, zh, _ := testLanguages(t)

	p := BuildPagination(2, 3, zh)
	if !p.HasPrev || !p.HasNext {
		t.Errorf("middle page: HasPrev=%v HasNext=%v", p.HasPrev, p.HasNext)
	}
	if p.PrevURL != "/" {
		t.Errorf("prev of page 2 is the root, got %q", p.PrevURL)
	}
	if p.NextURL != "/page/3/" {
		t.Errorf("next = %q", p.NextURL)
	}
	if len(p.Pages) != 3 {
		t.Fatalf("pages = %d, want 3", len(p.Pages))
	}
	if !p.Pages[1].IsCurrent || p.Pages[0].IsCurrent {
		t.Error("IsCurrent flag on wrong entry")
	}

	first := BuildPagination(1, 1, zh)
	if first.HasPrev || first.HasNext {
		t.Error("single page has no prev/next")
	}
	if first.PrevURL != "" || first.NextURL != "" {
		t.Error("absent neighbours have empty URLs")
	}
}

func TestTwoPostsTwoPages(t *testing.T) {
	_, zh, _ := testLanguages(t)

	docs := []*Document{
		{SourcePath: "new.md", Attributes: Attributes{Date: "2024-06-01"}},
		{SourcePath: "old.md", Attributes: Attributes{Date: "2024-01-01"}},
	}
	SortByDate(docs)

	page1, totalPages := Paginate(docs, 1, 1)
	if totalPages != 2 {
		t.Fatalf("totalPages = %d, want 2", totalPages)
	}
	if page1[0].SourcePath != "new.md" {
		t.Error("page 1 must hold the newer post")
	}
	page2, _ := Paginate(docs, 2, 1)
	if page2[0].SourcePath != "old.md" {
		t.Error("page 2 must hold the older post")
	}

	p := BuildPagination(2, totalPages, zh)
	if p.PrevURL != "/" {
		t.Errorf("page 2 prev = %q, want /", p.PrevURL)
	}
}
