package pipeline

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Block placeholders wrap a per-run UUID and a sequence number in Private
// Use Area delimiters, the same trick the ==highlight== markers use: goldmark
// emits them as plain text and they are swapped for HTML afterwards.
const (
	tokenStart = "\uE002"
	tokenEnd   = "\uE003"
)

// Placeholders stores rendered fragments behind opaque tokens for one
// compile run.
type Placeholders struct {
	prefix    string
	fragments []string
	pattern   *regexp.Regexp
}

// NewPlaceholders creates a token set whose prefix does not occur in src.
func NewPlaceholders(src string) *Placeholders {
	prefix := tokenStart + uuid.NewString() + ":"
	for strings.Contains(src, prefix) {
		prefix = tokenStart + uuid.NewString() + ":"
	}
	tok := regexp.QuoteMeta(prefix) + `(\d+)` + regexp.QuoteMeta(tokenEnd)
	return &Placeholders{
		prefix:  prefix,
		pattern: regexp.MustCompile(`<p>` + tok + `</p>\n?|` + tok),
	}
}

// Put stores fragment and returns its token.
func (p *Placeholders) Put(fragment string) string {
	p.fragments = append(p.fragments, fragment)
	return p.prefix + strconv.Itoa(len(p.fragments)-1) + tokenEnd
}

// Len returns the number of stored fragments.
func (p *Placeholders) Len() int {
	return len(p.fragments)
}

// Substitute replaces tokens in rendered HTML with their fragments. A token
// that goldmark wrapped in its own paragraph loses the <p> wrapper.
func (p *Placeholders) Substitute(htmlContent string) string {
	if len(p.fragments) == 0 || !strings.Contains(htmlContent, p.prefix) {
		return htmlContent
	}
	return p.pattern.ReplaceAllStringFunc(htmlContent, func(m string) string {
		sub := p.pattern.FindStringSubmatch(m)
		idx := sub[1]
		if idx == "" {
			idx = sub[2]
		}
		n, err := strconv.Atoi(idx)
		if err != nil || n < 0 || n >= len(p.fragments) {
			return m
		}
		if strings.HasSuffix(m, "\n") {
			return p.fragments[n] + "\n"
		}
		return p.fragments[n]
	})
}
