package scan

import "strings"

type markerKind int

const (
	markOpen markerKind = iota
	markClose
)

type marker struct {
	kind      markerKind
	name      string // empty for the generic closer
	rawAttrs  string
	selfClose bool
	length    int
}

// parseMarker recognizes a marker at the start of s, which begins with "{~".
func parseMarker(s string) (marker, bool) {
	if strings.HasPrefix(s, "{~~}") {
		return marker{kind: markClose, length: 4}, true
	}

	if strings.HasPrefix(s, "{~~") {
		rest := s[3:]
		i := skipSpaces(rest, 0)
		name := readName(rest[i:])
		if name == "" {
			return marker{}, false
		}
		j := skipSpaces(rest, i+len(name))
		if !strings.HasPrefix(rest[j:], "~}") {
			return marker{}, false
		}
		return marker{kind: markClose, name: name, length: 3 + j + 2}, true
	}

	rest := s[2:]
	i := skipSpaces(rest, 0)
	name := readName(rest[i:])
	if name == "" {
		return marker{}, false
	}
	after := i + len(name)
	end := strings.Index(rest[after:], "~}")
	if end < 0 {
		return marker{}, false
	}
	inner := rest[after : after+end]
	if inner != "" && !isSpace(inner[0]) && inner[0] != '/' {
		return marker{}, false
	}

	m := marker{kind: markOpen, name: name, length: 2 + after + end + 2}
	if strings.HasSuffix(inner, "/") {
		m.selfClose = true
		inner = inner[:len(inner)-1]
	}
	m.rawAttrs = strings.TrimSpace(inner)
	return m, true
}

// readName returns the longest component name prefix of s.
func readName(s string) string {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
		case i > 0 && (c == '-' || (c >= '0' && c <= '9')):
		default:
			return s[:i]
		}
	}
	return s
}

func skipSpaces(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func runLength(s string, c byte) int {
	n := 0
	for n < len(s) && s[n] == c {
		n++
	}
	return n
}

// closingRun finds a backtick run of exactly n starting at or after from and
// returns the index just past it, or -1.
func closingRun(s string, from, n int) int {
	for k := from; k < len(s); {
		if s[k] != '`' {
			k++
			continue
		}
		r := runLength(s[k:], '`')
		if r == n {
			return k + r
		}
		k += r
	}
	return -1
}

// fenceState tracks an open fenced code block.
type fenceState struct {
	open bool
	char byte
	n    int
}

// openFence reports whether line opens a fenced code block: up to three
// spaces of indentation then at least three backticks or tildes.
func openFence(line string) (fenceState, bool) {
	trimmed, ok := fenceIndent(line)
	if !ok || trimmed == "" {
		return fenceState{}, false
	}
	c := trimmed[0]
	if c != '`' && c != '~' {
		return fenceState{}, false
	}
	n := runLength(trimmed, c)
	if n < 3 {
		return fenceState{}, false
	}
	if c == '`' && strings.ContainsRune(trimmed[n:], '`') {
		return fenceState{}, false
	}
	return fenceState{open: true, char: c, n: n}, true
}

// closes reports whether line ends the fence.
func (f fenceState) closes(line string) bool {
	trimmed, ok := fenceIndent(line)
	if !ok {
		return false
	}
	n := runLength(trimmed, f.char)
	if n < f.n {
		return false
	}
	return strings.TrimSpace(trimmed[n:]) == ""
}

func fenceIndent(line string) (string, bool) {
	spaces := runLength(line, ' ')
	if spaces > 3 {
		return "", false
	}
	return line[spaces:], true
}
