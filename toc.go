package spellbook

import (
	"github.com/alnah/go-spellbook/internal/diag"
	"github.com/alnah/go-spellbook/internal/toc"
)

// Public names for the navigation tree types.
type (
	// TOCEntry is a node of the navigation tree.
	TOCEntry = toc.Entry
	// TOCDocument is one compiled source as seen by BuildTOC.
	TOCDocument = toc.Document
	// TOCOrder selects whether directories or pages come first among siblings.
	TOCOrder = toc.Order
)

// Sibling orders.
const (
	DirsFirst  = toc.DirsFirst
	PagesFirst = toc.PagesFirst
)

// weightKey is the custom frontmatter field read as TOCDocument.Weight.
const weightKey = "weight"

// TOCOption configures BuildTOC.
type TOCOption func(*toc.Options)

// WithTOCOrder sets the sibling order (default DirsFirst).
func WithTOCOrder(o TOCOrder) TOCOption {
	return func(opts *toc.Options) {
		opts.Order = o
	}
}

// WithIndexNames sets the file stems merged into their directory entry
// (default "index").
func WithIndexNames(names ...string) TOCOption {
	return func(opts *toc.Options) {
		opts.IndexNames = names
	}
}

// WithURLPrefix prepends prefix to every URL (default "/").
func WithURLPrefix(prefix string) TOCOption {
	return func(opts *toc.Options) {
		opts.URLPrefix = prefix
	}
}

// BuildTOC assembles the navigation tree of docs and links prev/next
// navigation between documents. docs are not retained.
func BuildTOC(docs []TOCDocument, opts ...TOCOption) (*TOCEntry, []Diagnostic) {
	var o toc.Options
	for _, opt := range opts {
		opt(&o)
	}

	var diags diag.List
	root, buildDiags := toc.Build(docs, o)
	diags.Add(buildDiags...)
	diags.Add(toc.Link(root, o)...)
	return root, diags.Items()
}

// NewTOCDocument describes a compiled document at path (a slash path relative
// to the source root) for BuildTOC. Title, prev/next overrides and the custom
// "weight" field come from the frontmatter.
func NewTOCDocument(path string, fm Frontmatter) TOCDocument {
	doc := TOCDocument{
		Path:  path,
		Title: fm.Title,
		Prev:  fm.Prev,
		Next:  fm.Next,
	}
	if w, ok := intValue(fm.Custom[weightKey]); ok {
		doc.Weight = w
	}
	if len(fm.Custom) > 0 || len(fm.Tags) > 0 {
		doc.Meta = make(map[string]any, len(fm.Custom)+1)
		for k, v := range fm.Custom {
			doc.Meta[k] = v
		}
		if len(fm.Tags) > 0 {
			doc.Meta["tags"] = fm.Tags
		}
	}
	return doc
}

// intValue accepts the integer types a YAML decoder produces.
func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

// ActivePath returns the entries from root down to the entry with id, both
// included, or nil when id is not in the tree.
func ActivePath(root *TOCEntry, id string) []*TOCEntry {
	return toc.ActivePath(root, id)
}

// FindTOCEntry returns the entry with id, or nil.
func FindTOCEntry(root *TOCEntry, id string) *TOCEntry {
	return toc.Find(root, id)
}

// WalkTOC visits the tree depth-first until fn returns false.
func WalkTOC(root *TOCEntry, fn func(*TOCEntry) bool) {
	toc.Walk(root, fn)
}
