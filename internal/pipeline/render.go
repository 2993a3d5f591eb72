package pipeline

import (
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"golang.org/x/net/html/atom"

	"github.com/alnah/go-spellbook/internal/diag"
	"github.com/alnah/go-spellbook/internal/registry"
	"github.com/alnah/go-spellbook/internal/scan"
)

// ErrRenderPanic wraps a panic recovered from a component.
var ErrRenderPanic = errors.New("component panicked")

// phrasingElements are rendered without goldmark's paragraph wrapper when
// their content is a single paragraph.
var phrasingElements = map[atom.Atom]bool{
	atom.A: true, atom.Abbr: true, atom.B: true, atom.Button: true, atom.Cite: true,
	atom.Code: true, atom.Del: true, atom.Dfn: true, atom.Em: true, atom.I: true,
	atom.Ins: true, atom.Kbd: true, atom.Label: true, atom.Mark: true, atom.Q: true,
	atom.S: true, atom.Samp: true, atom.Small: true, atom.Span: true, atom.Strong: true,
	atom.Sub: true, atom.Sup: true, atom.Time: true, atom.U: true, atom.Var: true,
	atom.Summary: true, atom.Dt: true, atom.Li: true, atom.Td: true, atom.Th: true,
	atom.Figcaption: true, atom.Caption: true, atom.Legend: true, atom.P: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
}

// Output is the result of rendering one document body.
type Output struct {
	HTML        string
	Outline     []*Heading
	Diagnostics []diag.Diagnostic
	Blocks      int
}

// Renderer turns a scanned block tree into HTML. It holds no per-document
// state and is safe for concurrent use once the registry is populated.
type Renderer struct {
	registry  *registry.Registry
	converter HTMLConverter
	logger    *slog.Logger
}

// NewRenderer creates a Renderer. A nil logger discards output.
func NewRenderer(reg *registry.Registry, conv HTMLConverter, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Renderer{registry: reg, converter: conv, logger: logger}
}

// Render renders nodes scanned from src. Per-block failures become inline
// error fragments and diagnostics; only a top-level conversion failure is
// returned as an error.
func (r *Renderer) Render(src string, nodes []*scan.Node) (*Output, error) {
	rn := &run{
		r:   r,
		ph:  NewPlaceholders(src),
		ids: NewHeadingIDs(),
	}

	out, err := rn.markdown(rn.assemble(nodes))
	if err != nil {
		return nil, err
	}
	return &Output{
		HTML:        out,
		Outline:     Outline(out),
		Diagnostics: rn.diags.Items(),
		Blocks:      rn.ph.Len(),
	}, nil
}

// run carries the state of one Render call.
type run struct {
	r     *Renderer
	ph    *Placeholders
	ids   *HeadingIDs
	diags diag.List
}

// assemble joins raw segments and block tokens into markdown. Blocks are
// rendered first and stand in their own paragraph.
func (rn *run) assemble(nodes []*scan.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		if n.Kind == scan.KindRaw {
			if n.Code {
				b.WriteString(n.Text)
			} else {
				b.WriteString(markHighlights(n.Text))
			}
			continue
		}
		token := rn.ph.Put(rn.renderBlock(n))
		b.WriteString("\n\n")
		b.WriteString(token)
		b.WriteString("\n\n")
	}
	return b.String()
}

func (rn *run) markdown(src string) (string, error) {
	out, err := rn.r.converter.ToHTML(src, rn.ids)
	if err != nil {
		return "", err
	}
	out = restoreMarks(out)
	return rn.ph.Substitute(out), nil
}

// content renders a block's children as markdown.
func (rn *run) content(n *scan.Node) (string, error) {
	src := rn.assemble(n.Children)
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	return rn.markdown(src)
}

// renderBlock never fails: errors and panics become visible fragments.
// Attribute problems of the opener are shown in front of the block.
func (rn *run) renderBlock(n *scan.Node) string {
	var b strings.Builder
	for _, d := range n.AttrIssues {
		b.WriteString(warningFragment(n.Name, d.Message))
		b.WriteByte('\n')
	}
	b.WriteString(rn.renderNode(n))
	return b.String()
}

func (rn *run) renderNode(n *scan.Node) (out string) {
	defer func() {
		if rec := recover(); rec != nil {
			out = rn.fail(n, fmt.Errorf("%w: %v", ErrRenderPanic, rec))
		}
	}()

	if n.Kind == scan.KindElement {
		s, err := rn.renderElement(n)
		if err != nil {
			return rn.fail(n, err)
		}
		return s
	}

	entry, err := rn.r.registry.Lookup(n.Name)
	if err != nil {
		rn.diags.Add(diag.Errorf(diag.CodeUnknownComponent, n.Line, "unknown component %q", n.Name))
		rn.r.logger.Warn("unknown component", "component", n.Name, "line", n.Line)
		return unknownFragment(n.Name)
	}

	content := n.Body
	if entry.Mode == registry.ModeMarkdown {
		if content, err = rn.content(n); err != nil {
			return rn.fail(n, err)
		}
	}

	s, err := entry.Component.Render(n.Attrs, content)
	if err != nil {
		return rn.fail(n, err)
	}
	return strings.TrimSpace(s)
}

func (rn *run) renderElement(n *scan.Node) (string, error) {
	open := "<" + n.Name + n.Attrs.HTML()
	if n.SelfClosing {
		if _, void := scan.IsElement(n.Name); void {
			return open + " />", nil
		}
		return open + "></" + n.Name + ">", nil
	}

	content, err := rn.content(n)
	if err != nil {
		return "", err
	}
	if phrasingElements[atom.Lookup([]byte(n.Name))] {
		return open + ">" + unwrapParagraph(content) + "</" + n.Name + ">", nil
	}
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return open + ">\n" + content + "</" + n.Name + ">", nil
}

func (rn *run) fail(n *scan.Node, err error) string {
	rn.diags.Add(diag.Errorf(diag.CodeRenderFailed, n.Line, "block %q failed to render: %v", n.Name, err))
	rn.r.logger.Warn("block render failed", "component", n.Name, "line", n.Line, "error", err)
	return errorFragment(n.Name, err.Error())
}

// unwrapParagraph strips a lone <p> wrapper from converted content.
func unwrapParagraph(content string) string {
	s := strings.TrimSpace(content)
	if strings.HasPrefix(s, "<p>") && strings.HasSuffix(s, "</p>") && strings.Count(s, "<p>") == 1 {
		return s[len("<p>") : len(s)-len("</p>")]
	}
	return s
}

func errorFragment(name, msg string) string {
	n := html.EscapeString(name)
	return fmt.Sprintf(`<div class="sb-error" data-component="%s">%s: %s</div>`, n, n, html.EscapeString(msg))
}

func warningFragment(name, msg string) string {
	n := html.EscapeString(name)
	return fmt.Sprintf(`<div class="sb-warning" data-component="%s">%s: %s</div>`, n, n, html.EscapeString(msg))
}

func unknownFragment(name string) string {
	n := html.EscapeString(name)
	return fmt.Sprintf(`<div class="sb-error" data-component="%s">Unknown component: %s</div>`, n, n)
}
