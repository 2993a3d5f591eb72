// Package scan splits extended-markdown source into a tree of raw text
// segments and block invocations.
//
// Block syntax:
//
//	{~ name attrs ~}  ...content...  {~~}      component or HTML element
//	{~ name attrs ~}  ...content...  {~~ name ~}
//	{~ name attrs /~}                           self-closing
//
// The generic closer always closes the innermost open block. Markers inside
// fenced code blocks and inline code spans are plain text.
package scan

import (
	"github.com/alnah/go-spellbook/internal/attrs"
	"github.com/alnah/go-spellbook/internal/diag"
)

// Kind tags a Node variant.
type Kind int

const (
	// KindRaw is a run of markdown source between blocks.
	KindRaw Kind = iota
	// KindComponent invokes a registered component (or an unknown name).
	KindComponent
	// KindElement invokes a plain HTML element such as div or section.
	KindElement
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindComponent:
		return "component"
	case KindElement:
		return "element"
	default:
		return "raw"
	}
}

// Node is one element of the block tree.
type Node struct {
	Kind Kind

	// Raw segments.
	Text string
	Code bool // inside a fenced code block

	// Blocks.
	Name        string
	RawAttrs    string
	Attrs       attrs.Set
	Children    []*Node
	Body        string // verbatim source between the markers
	Closed      bool
	SelfClosing bool

	// AttrIssues are the attribute problems shown next to the rendered
	// block: unterminated quotes and skipped empty names.
	AttrIssues []diag.Diagnostic

	Line    int
	EndLine int
}

// IsBlock reports whether n is a component or element invocation.
func (n *Node) IsBlock() bool {
	return n.Kind != KindRaw
}

// Walk visits nodes depth-first in document order. Returning false from fn
// skips the node's children.
func Walk(nodes []*Node, fn func(*Node) bool) {
	for _, n := range nodes {
		if fn(n) {
			Walk(n.Children, fn)
		}
	}
}

// Depth returns the maximum block nesting depth of nodes.
func Depth(nodes []*Node) int {
	deepest := 0
	for _, n := range nodes {
		if !n.IsBlock() {
			continue
		}
		if d := 1 + Depth(n.Children); d > deepest {
			deepest = d
		}
	}
	return deepest
}
