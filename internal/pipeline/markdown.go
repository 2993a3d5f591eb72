package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// MarkdownOptions configures the goldmark converter.
type MarkdownOptions struct {
	// HardWraps renders single newlines as <br />.
	HardWraps bool
	// HighlightStyle selects a chroma style rendered inline. Empty emits CSS
	// classes so a stylesheet controls colors.
	HighlightStyle string
	// LineNumbers adds line numbers to highlighted code blocks.
	LineNumbers bool
}

// HTMLConverter abstracts Markdown to HTML fragment conversion.
type HTMLConverter interface {
	ToHTML(content string, ids *HeadingIDs) (string, error)
}

// GoldmarkConverter converts Markdown to HTML fragments using goldmark.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions,
// footnotes, heading IDs and syntax highlighting.
func NewGoldmarkConverter(opts MarkdownOptions) *GoldmarkConverter {
	formatOpts := []chromahtml.Option{chromahtml.WithClasses(opts.HighlightStyle == "")}
	if opts.LineNumbers {
		formatOpts = append(formatOpts, chromahtml.WithLineNumbers(true))
	}
	hlOpts := []highlighting.Option{highlighting.WithFormatOptions(formatOpts...)}
	if opts.HighlightStyle != "" {
		hlOpts = append(hlOpts, highlighting.WithStyle(opts.HighlightStyle))
	}

	// Sources are trusted author content; raw HTML is kept as written.
	rendererOpts := []renderer.Option{html.WithXHTML(), html.WithUnsafe()}
	if opts.HardWraps {
		rendererOpts = append(rendererOpts, html.WithHardWraps())
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(hlOpts...),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(rendererOpts...),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment. Heading IDs are drawn
// from ids so anchors stay unique across every conversion of one document.
func (c *GoldmarkConverter) ToHTML(content string, ids *HeadingIDs) (string, error) {
	var opts []parser.ParseOption
	if ids != nil {
		opts = append(opts, parser.WithContext(parser.NewContext(parser.WithIDs(ids))))
	}

	var buf bytes.Buffer
	if err := c.md.Convert([]byte(content), &buf, opts...); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return buf.String(), nil
}

// HeadingIDs generates heading anchors unique within one document. It
// implements goldmark's parser.IDs.
type HeadingIDs struct {
	seen map[string]bool
}

var _ parser.IDs = (*HeadingIDs)(nil)

// NewHeadingIDs creates an empty ID set.
func NewHeadingIDs() *HeadingIDs {
	return &HeadingIDs{seen: make(map[string]bool)}
}

// Generate returns a slug for value, suffixed with -1, -2 ... on collision.
func (h *HeadingIDs) Generate(value []byte, _ ast.NodeKind) []byte {
	base := slugify(string(value))
	if base == "" {
		base = "heading"
	}
	id := base
	for i := 1; h.seen[id]; i++ {
		id = fmt.Sprintf("%s-%d", base, i)
	}
	h.seen[id] = true
	return []byte(id)
}

// Put records an explicitly assigned ID.
func (h *HeadingIDs) Put(value []byte) {
	h.seen[string(value)] = true
}

// slugify lower-cases s, keeps letters, digits and underscores, and joins
// the remaining runs with single dashes.
func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-':
			dash = true
		}
	}
	return b.String()
}
