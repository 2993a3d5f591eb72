// Package toc builds the navigation tree of a set of documents.
//
// Documents are grouped by their slash-separated source path. A directory
// becomes a container entry; an index document ("index.md" by default) is
// merged into its directory's entry instead of becoming a child. A document
// "a.md" next to a directory "a/" is merged the same way.
package toc

import (
	"path"
	"sort"
	"strings"

	"github.com/alnah/go-spellbook/internal/diag"
)

// Order selects which sibling group comes first.
type Order int

const (
	// DirsFirst lists entries with children before leaf pages.
	DirsFirst Order = iota
	// PagesFirst lists leaf pages before entries with children.
	PagesFirst
)

// String returns the order name.
func (o Order) String() string {
	if o == PagesFirst {
		return "pages-first"
	}
	return "dirs-first"
}

// ParseOrder parses "dirs-first" or "pages-first".
func ParseOrder(s string) (Order, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dirs-first":
		return DirsFirst, true
	case "pages-first":
		return PagesFirst, true
	}
	return DirsFirst, false
}

// DefaultIndexNames are the file stems treated as directory index documents.
var DefaultIndexNames = []string{"index"}

// Options configures Build.
type Options struct {
	Order Order

	// IndexNames overrides DefaultIndexNames.
	IndexNames []string

	// URLPrefix is prepended to every URL (default "/").
	URLPrefix string
}

// Document is one compiled source as seen by the TOC builder.
type Document struct {
	Path  string // slash path relative to the source root, e.g. "guide/intro.md"
	Title string

	// Weight orders siblings ahead of the alphabetical rule; lower first.
	Weight int

	// Prev and Next override navigation links. They name another document
	// by ID ("guide/setup") or by path ("guide/setup.md").
	Prev string
	Next string

	Meta map[string]any
}

// Entry is a node of the navigation tree.
type Entry struct {
	ID       string
	Title    string
	URL      string // empty for pure containers
	Path     string // source path of the entry's document, if any
	Depth    int
	Weight   int
	Children []*Entry
	Meta     map[string]any

	Parent *Entry
	Prev   *Entry
	Next   *Entry

	prevRef string
	nextRef string
}

// IsContainer reports whether e has children.
func (e *Entry) IsContainer() bool {
	return len(e.Children) > 0
}

// HasDocument reports whether e is backed by a document.
func (e *Entry) HasDocument() bool {
	return e.Path != ""
}

// Build assembles the tree of docs. Documents with the same ID are reported
// as duplicates; the later one wins.
func Build(docs []Document, opts Options) (*Entry, []diag.Diagnostic) {
	b := &builder{
		opts:    opts,
		entries: make(map[string]*Entry),
		index:   indexSet(opts),
	}
	if b.opts.URLPrefix == "" {
		b.opts.URLPrefix = "/"
	}

	b.root = &Entry{}
	b.entries[""] = b.root

	for _, d := range docs {
		b.add(d)
	}
	finish(b.root, nil, 0, opts.Order)
	return b.root, b.diags.Items()
}

type builder struct {
	opts    Options
	root    *Entry
	entries map[string]*Entry
	index   map[string]bool
	diags   diag.List
}

func (b *builder) add(d Document) {
	p := cleanPath(d.Path)
	if p == "" {
		b.diags.Add(diag.Warnf(diag.CodeInvalidDocument, 0, "document %q has no usable path; skipped", d.Path))
		return
	}
	id := b.documentID(p)

	e := b.entry(id)
	if e.HasDocument() {
		b.diags.Add(diag.Warnf(diag.CodeDuplicateDocument, 0,
			"%s and %s both map to %q; keeping %s", e.Path, p, displayID(id), p))
	}

	e.Path = p
	e.URL = b.url(id)
	e.Weight = d.Weight
	e.Meta = d.Meta
	e.prevRef = d.Prev
	e.nextRef = d.Next
	if d.Title != "" {
		e.Title = d.Title
	}
}

// documentID returns the ID of a cleaned path: the path without extension,
// with a trailing index name folded into its directory.
func (b *builder) documentID(p string) string {
	id := strings.TrimSuffix(p, path.Ext(p))
	dir, stem := path.Split(id)
	if b.index[stem] {
		return strings.TrimSuffix(dir, "/")
	}
	return id
}

// entry returns the entry for id, creating it and its ancestors.
func (b *builder) entry(id string) *Entry {
	if e, ok := b.entries[id]; ok {
		return e
	}
	parentID := ""
	if i := strings.LastIndexByte(id, '/'); i >= 0 {
		parentID = id[:i]
	}
	parent := b.entry(parentID)
	e := &Entry{ID: id, Title: Titlefy(path.Base(id))}
	parent.Children = append(parent.Children, e)
	b.entries[id] = e
	return e
}

func (b *builder) url(id string) string {
	if id == "" {
		return b.opts.URLPrefix
	}
	return strings.TrimSuffix(b.opts.URLPrefix, "/") + "/" + CleanURL(id) + "/"
}

// finish sorts children and sets parent links and depths.
func finish(e, parent *Entry, depth int, order Order) {
	e.Parent = parent
	e.Depth = depth
	for _, c := range e.Children {
		finish(c, e, depth+1, order)
	}
	sortSiblings(e.Children, order)
}

func sortSiblings(entries []*Entry, order Order) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if ga, gb := group(a, order), group(b, order); ga != gb {
			return ga < gb
		}
		if a.Weight != b.Weight {
			return a.Weight < b.Weight
		}
		la, lb := strings.ToLower(a.ID), strings.ToLower(b.ID)
		if la != lb {
			return la < lb
		}
		return a.ID < b.ID
	})
}

func group(e *Entry, order Order) int {
	container := e.IsContainer()
	if order == PagesFirst {
		container = !container
	}
	if container {
		return 0
	}
	return 1
}

// cleanPath normalizes a document path to a relative slash path.
func cleanPath(p string) string {
	p = strings.ReplaceAll(strings.TrimSpace(p), "\\", "/")
	p = path.Clean("/" + p)
	return strings.TrimPrefix(p, "/")
}

// CleanURL drops leading dashes from every segment of a slash path, so
// "-drafts/-intro" becomes "drafts/intro".
func CleanURL(p string) string {
	parts := strings.Split(p, "/")
	for i, s := range parts {
		parts[i] = strings.TrimLeft(s, "-")
	}
	return strings.Join(parts, "/")
}

func displayID(id string) string {
	if id == "" {
		return "/"
	}
	return id
}

// ActivePath returns the chain from the root to the entry with id, both
// included, or nil when no entry has that ID. The tree is not modified.
func ActivePath(root *Entry, id string) []*Entry {
	e := Find(root, id)
	if e == nil {
		return nil
	}
	var chain []*Entry
	for ; e != nil; e = e.Parent {
		chain = append(chain, e)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// Find returns the entry with id, or nil.
func Find(root *Entry, id string) *Entry {
	var found *Entry
	Walk(root, func(e *Entry) bool {
		if e.ID == id {
			found = e
			return false
		}
		return true
	})
	return found
}

// Walk visits root and its descendants depth-first in tree order until fn
// returns false.
func Walk(root *Entry, fn func(*Entry) bool) {
	walk(root, fn)
}

func walk(e *Entry, fn func(*Entry) bool) bool {
	if e == nil {
		return true
	}
	if !fn(e) {
		return false
	}
	for _, c := range e.Children {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}
