package route

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"Go & Rust", "go-rust"},
		{"  spaced  out  ", "spaced-out"},
		{"Crème Brûlée", "creme-brulee"},
		{"中文标签", "中文标签"},
		{"Go语言", "go语言"},
		{"snake_case_stays", "snake_case_stays"},
		{"--already--dashed--", "already-dashed"},
		{"", ""},
		{"!!!", ""},
		{"C++", "c"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Hello World", "Crème Brûlée", "中文标签", "Go & Rust", "MIXED case"}
	for _, in := range inputs {
		once := Slugify(in)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestSplitSegments(t *testing.T) {
	tests := []struct {
		in   []string
		want []string
	}{
		{[]string{"a/b/c"}, []string{"a", "b", "c"}},
		{[]string{"a\\b", "c"}, []string{"a", "b", "c"}},
		{[]string{"/leading/", "//double//"}, []string{"leading", "double"}},
		{[]string{""}, nil},
		{nil, nil},
	}
	for _, tt := range tests {
		got := SplitSegments(tt.in...)
		if len(got) != len(tt.want) {
			t.Errorf("SplitSegments(%v) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("SplitSegments(%v) = %v, want %v", tt.in, got, tt.want)
				break
			}
		}
	}
}
