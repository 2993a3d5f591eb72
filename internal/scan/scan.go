package scan

import (
	"strings"

	"github.com/alnah/go-spellbook/internal/attrs"
	"github.com/alnah/go-spellbook/internal/diag"
)

// DefaultMaxDepth caps block nesting when Options.MaxDepth is unset.
const DefaultMaxDepth = 32

// Options configures Scan.
type Options struct {
	// MaxDepth caps the number of simultaneously open blocks. Openers past
	// the cap are kept as literal text.
	MaxDepth int

	// FirstLine is the line number of the first source line (default 1),
	// so diagnostics point into the original file after frontmatter.
	FirstLine int

	// IsComponent reports registered component names. Registered names take
	// precedence over HTML element names.
	IsComponent func(name string) bool
}

// Scan parses src into a block tree. It never fails: structural problems are
// reported as diagnostics and the tree holds a best-effort interpretation.
func Scan(src string, opts Options) ([]*Node, []diag.Diagnostic) {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.FirstLine <= 0 {
		opts.FirstLine = 1
	}
	s := &scanner{src: src, opts: opts, line: opts.FirstLine}
	s.stack = []*frame{{}}
	s.run()
	return s.stack[0].children, s.diags
}

type frame struct {
	node      *Node // nil for the document root
	bodyStart int
	children  []*Node

	// sealed frames lost their closer to a mismatch and run to EOF.
	sealed bool
	// suppressed counts openers kept as text for exceeding MaxDepth, so
	// their closers stay text too.
	suppressed int

	pending     strings.Builder
	pendingCode bool
	pendingLine int
}

type scanner struct {
	src   string
	opts  Options
	stack []*frame
	diags []diag.Diagnostic
	line  int
}

func (s *scanner) run() {
	var fence fenceState
	for offset := 0; offset < len(s.src); {
		end := strings.IndexByte(s.src[offset:], '\n')
		if end < 0 {
			end = len(s.src)
		} else {
			end += offset + 1
		}
		line := s.src[offset:end]

		switch {
		case fence.open:
			s.text(line, true)
			if fence.closes(line) {
				fence = fenceState{}
			}
		default:
			if f, ok := openFence(line); ok {
				fence = f
				s.text(line, true)
			} else {
				s.scanLine(line, offset)
			}
		}

		offset = end
		if strings.HasSuffix(line, "\n") && offset < len(s.src) {
			s.line++
		}
	}
	s.finish()
}

// scanLine finds markers in a non-fenced line, skipping inline code spans.
func (s *scanner) scanLine(line string, base int) {
	segStart := 0
	for i := 0; i < len(line); {
		switch {
		case line[i] == '`':
			n := runLength(line[i:], '`')
			if j := closingRun(line, i+n, n); j >= 0 {
				i = j
			} else {
				i += n
			}
			continue
		case line[i] == '{' && strings.HasPrefix(line[i:], "{~"):
			if m, ok := parseMarker(line[i:]); ok {
				s.text(line[segStart:i], false)
				if m.kind == markOpen {
					s.open(m, base+i, i+1)
				} else {
					s.close(m, base+i, i+1)
				}
				i += m.length
				segStart = i
				continue
			}
		}
		i++
	}
	s.text(line[segStart:], false)
}

func (s *scanner) open(m marker, offset, col int) {
	literal := s.src[offset : offset+m.length]
	top := s.top()

	kind, void := s.classify(m.name)
	selfClosing := m.selfClose || void

	if !selfClosing && len(s.stack)-1 >= s.opts.MaxDepth {
		s.report(diag.Errorf(diag.CodeNestingTooDeep, s.line,
			"block %q exceeds maximum nesting depth %d; kept as text", m.name, s.opts.MaxDepth), col)
		top.suppressed++
		s.text(literal, false)
		return
	}

	set, ds := attrs.Parse(m.rawAttrs)
	var issues []diag.Diagnostic
	for _, d := range ds {
		d.Line = s.line
		s.report(d, col)
		if d.Code == diag.CodeUnterminatedQuote || d.Code == diag.CodeEmptyAttrName {
			issues = append(issues, d)
		}
	}

	node := &Node{
		Kind:       kind,
		Name:       m.name,
		RawAttrs:   m.rawAttrs,
		Attrs:      set,
		Line:       s.line,
		EndLine:    s.line,
		AttrIssues: issues,
	}
	if selfClosing {
		node.Closed = true
		node.SelfClosing = true
		s.appendNode(node)
		return
	}

	s.flush(top)
	s.stack = append(s.stack, &frame{node: node, bodyStart: offset + m.length})
}

func (s *scanner) close(m marker, offset, col int) {
	literal := s.src[offset : offset+m.length]
	top := s.top()

	switch {
	case top.suppressed > 0:
		top.suppressed--
		s.text(literal, false)
	case top.node == nil:
		s.report(diag.Errorf(diag.CodeUnmatchedClose, s.line, "closing marker without an open block"), col)
		s.text(literal, false)
	case top.sealed:
		s.text(literal, false)
	case m.name != "" && m.name != top.node.Name:
		s.report(diag.Errorf(diag.CodeMismatchedClose, s.line,
			"closing marker %q does not match open block %q from line %d; the block runs to the end of the document",
			m.name, top.node.Name, top.node.Line), col)
		top.sealed = true
		s.text(literal, false)
	default:
		s.pop(offset, true)
	}
}

func (s *scanner) pop(end int, closed bool) {
	f := s.top()
	s.flush(f)
	s.stack = s.stack[:len(s.stack)-1]

	n := f.node
	n.Body = s.src[f.bodyStart:end]
	n.Children = f.children
	n.Closed = closed
	n.EndLine = s.line
	s.appendNode(n)
}

func (s *scanner) finish() {
	for len(s.stack) > 1 {
		n := s.top().node
		s.diags = append(s.diags, diag.Errorf(diag.CodeUnclosedBlock, n.Line,
			"block %q is never closed; it extends to the end of the document", n.Name))
		s.pop(len(s.src), false)
	}
	s.flush(s.stack[0])
}

func (s *scanner) classify(name string) (Kind, bool) {
	if s.opts.IsComponent != nil && s.opts.IsComponent(name) {
		return KindComponent, false
	}
	if ok, void := IsElement(name); ok {
		return KindElement, void
	}
	return KindComponent, false
}

func (s *scanner) top() *frame {
	return s.stack[len(s.stack)-1]
}

// text appends source to the innermost frame, merging with the pending raw run.
func (s *scanner) text(t string, code bool) {
	if t == "" {
		return
	}
	f := s.top()
	if f.pending.Len() > 0 && f.pendingCode != code {
		s.flush(f)
	}
	if f.pending.Len() == 0 {
		f.pendingCode = code
		f.pendingLine = s.line
	}
	f.pending.WriteString(t)
}

func (s *scanner) flush(f *frame) {
	if f.pending.Len() == 0 {
		return
	}
	f.children = append(f.children, &Node{
		Kind:    KindRaw,
		Text:    f.pending.String(),
		Code:    f.pendingCode,
		Line:    f.pendingLine,
		EndLine: s.line,
	})
	f.pending.Reset()
}

func (s *scanner) appendNode(n *Node) {
	f := s.top()
	s.flush(f)
	f.children = append(f.children, n)
}

func (s *scanner) report(d diag.Diagnostic, col int) {
	d.Column = col
	s.diags = append(s.diags, d)
}
