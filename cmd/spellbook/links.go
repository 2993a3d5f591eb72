package main

import (
	"net/url"
	"path"
	"strings"

	spellbook "github.com/alnah/go-spellbook"
	"github.com/alnah/go-spellbook/internal/fileutil"
)

// documentURLs maps each source path to its navigation URL. Only paths
// matter here, so the tree is built without frontmatter.
func documentURLs(files []sourceFile, opts []spellbook.TOCOption) map[string]string {
	docs := make([]spellbook.TOCDocument, len(files))
	for i, f := range files {
		docs[i] = spellbook.TOCDocument{Path: f.Rel}
	}

	root, _ := spellbook.BuildTOC(docs, opts...)
	urls := make(map[string]string, len(files))
	spellbook.WalkTOC(root, func(e *spellbook.TOCEntry) bool {
		if e.HasDocument() {
			urls[e.Path] = e.URL
		}
		return true
	})
	return urls
}

// linkResolver resolves markdown references made from the document at rel
// against urls. Query strings and fragments are kept.
func linkResolver(rel string, urls map[string]string) spellbook.LinkResolver {
	dir := path.Dir(rel)
	return func(ref string) (string, bool) {
		target, suffix := ref, ""
		if i := strings.IndexAny(target, "?#"); i >= 0 {
			target, suffix = target[:i], target[i:]
		}
		if unescaped, err := url.PathUnescape(target); err == nil {
			target = unescaped
		}
		if !fileutil.IsMarkdown(target) {
			return "", false
		}

		u, ok := urls[path.Join(dir, target)]
		if !ok {
			return "", false
		}
		return u + suffix, true
	}
}
