package spellbook

import (
	"testing"
)

func TestBuildTOC(t *testing.T) {
	t.Parallel()

	root, diags := BuildTOC([]TOCDocument{
		{Path: "c.md"},
		{Path: "a/b.md"},
		{Path: "a/index.md", Title: "Section A"},
	})
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	if len(root.Children) != 2 {
		t.Fatalf("root has %d children, want 2", len(root.Children))
	}
	a, c := root.Children[0], root.Children[1]
	if a.ID != "a" || c.ID != "c" {
		t.Fatalf("children = [%s %s], want [a c]", a.ID, c.ID)
	}
	if a.URL != "/a/" || a.Title != "Section A" {
		t.Errorf("a = {URL:%q Title:%q}, want {/a/ Section A}", a.URL, a.Title)
	}
	if len(a.Children) != 1 || a.Children[0].ID != "a/b" {
		t.Errorf("a children = %v, want [a/b]", a.Children)
	}

	var ids []string
	for _, e := range ActivePath(root, "a/b") {
		ids = append(ids, e.ID)
	}
	if len(ids) != 3 || ids[0] != "" || ids[1] != "a" || ids[2] != "a/b" {
		t.Errorf("ActivePath(a/b) = %q, want [\"\" a a/b]", ids)
	}

	// Navigation chains documents of one directory by file name.
	b := FindTOCEntry(root, "a/b")
	if b == nil {
		t.Fatal("FindTOCEntry(a/b) = nil")
	}
	if b.Next == nil || b.Next.ID != "a" {
		t.Errorf("a/b Next = %v, want the a index", b.Next)
	}
}

func TestBuildTOC_Options(t *testing.T) {
	t.Parallel()

	docs := []TOCDocument{
		{Path: "z.md"},
		{Path: "dir/home.md"},
		{Path: "dir/x.md"},
	}
	root, _ := BuildTOC(docs,
		WithTOCOrder(PagesFirst),
		WithIndexNames("home"),
		WithURLPrefix("/docs/"),
	)

	if root.Children[0].ID != "z" {
		t.Errorf("first child = %q, want z with PagesFirst", root.Children[0].ID)
	}
	dir := FindTOCEntry(root, "dir")
	if dir == nil || dir.URL != "/docs/dir/" {
		t.Errorf("dir entry = %+v, want URL /docs/dir/", dir)
	}
}

func TestBuildTOC_ReportsLinkDiagnostics(t *testing.T) {
	t.Parallel()

	_, diags := BuildTOC([]TOCDocument{
		{Path: "a.md", Next: "missing"},
		{Path: "a.md"},
	})
	if !hasDiagnostic(diags, CodeDuplicateDocument) {
		t.Errorf("expected %s, got %v", CodeDuplicateDocument, diags)
	}

	_, diags = BuildTOC([]TOCDocument{{Path: "a.md", Next: "missing"}})
	if !hasDiagnostic(diags, CodeUnresolvedLink) {
		t.Errorf("expected %s, got %v", CodeUnresolvedLink, diags)
	}
}

func TestNewTOCDocument(t *testing.T) {
	t.Parallel()

	fm := Frontmatter{
		Title: "Guide",
		Tags:  []string{"go"},
		Prev:  "intro",
		Custom: map[string]any{
			"weight": uint64(3),
			"icon":   "book",
		},
	}
	doc := NewTOCDocument("guide.md", fm)

	if doc.Path != "guide.md" || doc.Title != "Guide" || doc.Prev != "intro" {
		t.Errorf("doc = %+v", doc)
	}
	if doc.Weight != 3 {
		t.Errorf("Weight = %d, want 3", doc.Weight)
	}
	if doc.Meta["icon"] != "book" {
		t.Errorf("Meta[icon] = %v, want book", doc.Meta["icon"])
	}
	if _, ok := doc.Meta["tags"]; !ok {
		t.Error("Meta should carry tags")
	}

	if empty := NewTOCDocument("x.md", Frontmatter{}); empty.Meta != nil {
		t.Errorf("Meta = %v, want nil for bare frontmatter", empty.Meta)
	}
}

func TestIntValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   any
		want int
		ok   bool
	}{
		{int(2), 2, true},
		{int64(-1), -1, true},
		{uint64(7), 7, true},
		{float64(1.9), 1, true},
		{"3", 0, false},
		{nil, 0, false},
	}

	for _, tt := range tests {
		got, ok := intValue(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("intValue(%#v) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestWalkTOC(t *testing.T) {
	t.Parallel()

	root, _ := BuildTOC([]TOCDocument{{Path: "a.md"}, {Path: "b.md"}})

	n := 0
	WalkTOC(root, func(*TOCEntry) bool {
		n++
		return true
	})
	if n != 3 {
		t.Errorf("visited %d entries, want 3", n)
	}
}
