package pipeline

import (
	"regexp"
	"strings"

	"github.com/alnah/go-spellbook/internal/diag"
)

// ==text== becomes a pair of Private Use Area runes before goldmark runs.
// Goldmark copies them through untouched and restoreMarks swaps them for
// <mark> tags afterwards. Sources cannot carry these runes, nor the block
// token delimiters: StripReserved removes them first.
const (
	markOpen  = "\uE000"
	markClose = "\uE001"
)

var (
	highlightRe = regexp.MustCompile(`==([^=\n]+?)==`)
	lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")
	markTags    = strings.NewReplacer(markOpen, "<mark>", markClose, "</mark>")
)

// NormalizeLineEndings rewrites CRLF and lone CR as LF.
func NormalizeLineEndings(s string) string {
	return lineEndings.Replace(s)
}

// reservedRunes are the mark and block token delimiters.
const reservedRunes = markOpen + markClose + tokenStart + tokenEnd

// StripReserved removes reserved delimiter runes from src, reporting one
// warning per affected line.
func StripReserved(src string) (string, []diag.Diagnostic) {
	if !strings.ContainsAny(src, reservedRunes) {
		return src, nil
	}

	var diags []diag.Diagnostic
	lines := strings.SplitAfter(src, "\n")
	for i, line := range lines {
		if !strings.ContainsAny(line, reservedRunes) {
			continue
		}
		removed := 0
		lines[i] = strings.Map(func(r rune) rune {
			if strings.ContainsRune(reservedRunes, r) {
				removed++
				return -1
			}
			return r
		}, line)
		diags = append(diags, diag.Warnf(diag.CodeReservedChar, i+1,
			"removed %d reserved character(s) in the U+E000-U+E003 range", removed))
	}
	return strings.Join(lines, ""), diags
}

// markHighlights wraps ==text== runs of a prose segment in mark runes.
// Inline code spans are copied as is.
func markHighlights(s string) string {
	if !strings.Contains(s, "==") {
		return s
	}

	var b strings.Builder
	flush := func(prose string) {
		b.WriteString(highlightRe.ReplaceAllString(prose, markOpen+"$1"+markClose))
	}

	start := 0
	for i := 0; i < len(s); {
		if s[i] != '`' {
			i++
			continue
		}
		open := countBackticks(s[i:])
		end := spanEnd(s, i+open, open)
		if end < 0 {
			i += open
			continue
		}
		flush(s[start:i])
		b.WriteString(s[i:end])
		start, i = end, end
	}
	flush(s[start:])
	return b.String()
}

func countBackticks(s string) int {
	n := 0
	for n < len(s) && s[n] == '`' {
		n++
	}
	return n
}

// spanEnd finds the run of exactly width backticks closing a code span
// that opened before from, returning the offset after it or -1.
func spanEnd(s string, from, width int) int {
	for i := from; i < len(s); {
		if s[i] != '`' {
			i++
			continue
		}
		run := countBackticks(s[i:])
		if run == width {
			return i + run
		}
		i += run
	}
	return -1
}

func restoreMarks(html string) string {
	return markTags.Replace(html)
}
