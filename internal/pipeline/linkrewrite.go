package pipeline

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// LinkResolver maps a relative document reference (such as "guide/intro.md"
// or "../faq.md#install") to its published URL. ok=false leaves it alone.
type LinkResolver func(ref string) (url string, ok bool)

// RewriteLinks rewrites relative a[href] and img[src] references in an HTML
// fragment through resolve. A nil resolver returns the HTML unchanged.
//
// Not rewritten:
//   - absolute URLs, protocol-relative URLs, data: and mailto: references
//   - in-page anchors ("#section")
//   - absolute paths
func RewriteLinks(htmlContent string, resolve LinkResolver) (string, error) {
	if resolve == nil || !strings.Contains(htmlContent, "<") {
		return htmlContent, nil
	}

	container, err := parseFragment(htmlContent)
	if err != nil {
		return "", err
	}
	rewriteNode(container, resolve)
	return renderFragment(container)
}

// parseFragment parses HTML with a body context so no html/head wrapper is
// added, and gathers the nodes under one container.
func parseFragment(content string) (*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

func renderFragment(container *html.Node) (string, error) {
	var buf strings.Builder
	for c := container.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func rewriteNode(n *html.Node, resolve LinkResolver) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.A:
			rewriteAttr(n, "href", resolve)
		case atom.Img:
			rewriteAttr(n, "src", resolve)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, resolve)
	}
}

func rewriteAttr(n *html.Node, name string, resolve LinkResolver) {
	for i, attr := range n.Attr {
		if attr.Key != name || !isRelativeRef(attr.Val) {
			continue
		}
		if u, ok := resolve(attr.Val); ok {
			n.Attr[i].Val = u
		}
	}
}

// isRelativeRef reports whether ref points at another file of the site.
func isRelativeRef(ref string) bool {
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "/") {
		return false
	}
	if i := strings.IndexAny(ref, ":/?#"); i >= 0 && ref[i] == ':' {
		return false // has a scheme
	}
	return true
}
