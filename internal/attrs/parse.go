package attrs

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alnah/go-spellbook/internal/diag"
)

// Parse tokenizes raw attribute text. Returned diagnostics carry a Column
// relative to raw (1-based); callers add the line.
func Parse(raw string) (Set, []diag.Diagnostic) {
	p := parser{src: raw}
	p.run()
	return p.set, p.diags
}

type parser struct {
	src   string
	pos   int
	set   Set
	diags []diag.Diagnostic
}

func (p *parser) run() {
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return
		}
		start := p.pos
		switch p.src[p.pos] {
		case '.':
			p.pos++
			p.set.addClass(p.word())
		case '#':
			p.pos++
			if id := p.word(); id != "" {
				p.setID(id, start)
			}
		case '=', '"', '\'':
			p.warn(diag.CodeEmptyAttrName, start, "attribute value without a name")
			if p.src[p.pos] == '=' {
				p.pos++
			}
			p.value(start)
		default:
			p.attribute(start)
		}
	}
}

func (p *parser) attribute(start int) {
	name := p.name()
	if p.pos >= len(p.src) || p.src[p.pos] != '=' {
		p.set.set(Attr{Name: name, Value: "true", Flag: true})
		return
	}
	p.pos++
	value := p.value(start)
	switch name {
	case "class":
		p.set.addClass(value)
	case "id":
		p.setID(value, start)
	default:
		p.set.set(Attr{Name: name, Value: value})
	}
}

func (p *parser) setID(id string, at int) {
	if prev, ok := p.set.Get("id"); ok {
		p.warn(diag.CodeDuplicateID, at, "id %q replaces earlier id %q", id, prev)
	}
	p.set.set(Attr{Name: "id", Value: id})
}

// name reads until whitespace, '=' or a quote.
func (p *parser) name() string {
	start := p.pos
	for p.pos < len(p.src) {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if unicode.IsSpace(r) || r == '=' || r == '"' || r == '\'' {
			break
		}
		p.pos += size
	}
	return p.src[start:p.pos]
}

// word reads until whitespace.
func (p *parser) word() string {
	start := p.pos
	for p.pos < len(p.src) {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if unicode.IsSpace(r) {
			break
		}
		p.pos += size
	}
	return p.src[start:p.pos]
}

// value reads a quoted or unquoted value at the current position. An
// unterminated quote swallows the rest of the input.
func (p *parser) value(attrStart int) string {
	if p.pos >= len(p.src) {
		return ""
	}
	q := p.src[p.pos]
	if q != '"' && q != '\'' {
		return p.word()
	}
	p.pos++
	end := strings.IndexByte(p.src[p.pos:], q)
	if end < 0 {
		v := p.src[p.pos:]
		p.pos = len(p.src)
		p.warn(diag.CodeUnterminatedQuote, attrStart, "unterminated %c quote; value runs to end of attributes", q)
		return v
	}
	v := p.src[p.pos : p.pos+end]
	p.pos += end + 1
	return v
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += size
	}
}

func (p *parser) warn(code diag.Code, at int, format string, args ...any) {
	d := diag.Warnf(code, 0, format, args...)
	d.Column = utf8.RuneCountInString(p.src[:at]) + 1
	p.diags = append(p.diags, d)
}
