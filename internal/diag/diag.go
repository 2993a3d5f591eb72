// Package diag defines the structured diagnostics reported while compiling
// a document. Diagnostics never abort a compile; they travel alongside the
// best-effort output so callers can decide what to surface.
package diag

import "fmt"

// Severity classifies how serious a diagnostic is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Code identifies a class of problem.
type Code string

const (
	CodeUnknownComponent  Code = "unknown-component"
	CodeRenderFailed      Code = "render-failed"
	CodeUnclosedBlock     Code = "unclosed-block"
	CodeMismatchedClose   Code = "mismatched-close"
	CodeUnmatchedClose    Code = "unmatched-close"
	CodeNestingTooDeep    Code = "nesting-too-deep"
	CodeDuplicateID       Code = "duplicate-id"
	CodeUnterminatedQuote Code = "unterminated-quote"
	CodeEmptyAttrName     Code = "empty-attribute-name"
	CodeMalformedFront    Code = "malformed-frontmatter"
	CodeInvalidFrontField Code = "invalid-frontmatter-field"
	CodeDuplicateDocument Code = "duplicate-document"
	CodeUnresolvedLink    Code = "unresolved-link"
	CodeInvalidDocument   Code = "invalid-document"
	CodeReservedChar      Code = "reserved-character"
)

// Diagnostic is a single problem found in a source document.
// Line and Column are 1-based; zero means unknown.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Code     Code     `json:"code"`
	Message  string   `json:"message"`
	Line     int      `json:"line,omitempty"`
	Column   int      `json:"column,omitempty"`
}

// String formats the diagnostic as "line:col: severity: message [code]".
func (d Diagnostic) String() string {
	pos := ""
	switch {
	case d.Line > 0 && d.Column > 0:
		pos = fmt.Sprintf("%d:%d: ", d.Line, d.Column)
	case d.Line > 0:
		pos = fmt.Sprintf("%d: ", d.Line)
	}
	return fmt.Sprintf("%s%s: %s [%s]", pos, d.Severity, d.Message, d.Code)
}

// Errorf builds an error-severity diagnostic.
func Errorf(code Code, line int, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: SeverityError, Code: code, Line: line, Message: fmt.Sprintf(format, args...)}
}

// Warnf builds a warning-severity diagnostic.
func Warnf(code Code, line int, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: SeverityWarning, Code: code, Line: line, Message: fmt.Sprintf(format, args...)}
}

// List accumulates diagnostics in report order. The zero value is ready to use.
type List struct {
	items []Diagnostic
}

// Add appends diagnostics.
func (l *List) Add(ds ...Diagnostic) {
	l.items = append(l.items, ds...)
}

// Offset appends diagnostics with their line numbers shifted by delta.
// Used when a diagnostic was computed relative to a nested body.
func (l *List) Offset(delta int, ds ...Diagnostic) {
	for _, d := range ds {
		if d.Line > 0 {
			d.Line += delta
		}
		l.items = append(l.items, d)
	}
}

// Items returns the accumulated diagnostics.
func (l *List) Items() []Diagnostic {
	return l.items
}

// HasErrors reports whether any error-severity diagnostic is present.
func HasErrors(ds []Diagnostic) bool {
	for _, d := range ds {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
