package toc

import (
	"path"
	"sort"
	"strings"

	"github.com/alnah/go-spellbook/internal/diag"
)

// Link sets Prev and Next on every document entry. Documents are chained
// within their source directory, ordered by lower-cased file name. A
// document's own Prev/Next overrides win; an override that names no document
// is reported and the automatic link is kept. Tree position never changes.
func Link(root *Entry, opts Options) []diag.Diagnostic {
	groups := make(map[string][]*Entry)
	var dirs []string
	Walk(root, func(e *Entry) bool {
		if e.HasDocument() {
			dir := path.Dir(e.Path)
			if _, ok := groups[dir]; !ok {
				dirs = append(dirs, dir)
			}
			groups[dir] = append(groups[dir], e)
		}
		return true
	})

	for _, dir := range dirs {
		chain(groups[dir])
	}

	r := resolver{root: root, index: indexSet(opts)}
	var diags diag.List
	Walk(root, func(e *Entry) bool {
		if e.prevRef != "" {
			if target, ok := r.resolve(e.prevRef); ok {
				e.Prev = target
			} else {
				diags.Add(diag.Warnf(diag.CodeUnresolvedLink, 0, "%s: prev %q does not name a document", e.Path, e.prevRef))
			}
		}
		if e.nextRef != "" {
			if target, ok := r.resolve(e.nextRef); ok {
				e.Next = target
			} else {
				diags.Add(diag.Warnf(diag.CodeUnresolvedLink, 0, "%s: next %q does not name a document", e.Path, e.nextRef))
			}
		}
		return true
	})
	return diags.Items()
}

func chain(entries []*Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(path.Base(entries[i].Path)) < strings.ToLower(path.Base(entries[j].Path))
	})
	for i, e := range entries {
		e.Prev, e.Next = nil, nil
		if i > 0 {
			e.Prev = entries[i-1]
		}
		if i < len(entries)-1 {
			e.Next = entries[i+1]
		}
	}
}

type resolver struct {
	root  *Entry
	index map[string]bool
}

// resolve finds the document named by ref, an ID or a source path.
func (r resolver) resolve(ref string) (*Entry, bool) {
	p := cleanPath(ref)
	candidates := []string{p, strings.TrimSuffix(p, path.Ext(p))}
	for _, id := range candidates {
		dir, stem := path.Split(id)
		if r.index[stem] {
			id = strings.TrimSuffix(dir, "/")
		}
		if e := Find(r.root, id); e != nil && e.HasDocument() {
			return e, true
		}
	}
	return nil, false
}

func indexSet(opts Options) map[string]bool {
	names := opts.IndexNames
	if len(names) == 0 {
		names = DefaultIndexNames
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
