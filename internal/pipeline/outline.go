package pipeline

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

// Heading is one entry of a document's heading outline.
type Heading struct {
	Level    int        `json:"level"`  // 1-6 as written
	ID       string     `json:"id"`     // anchor ID
	Title    string     `json:"title"`  // text content
	Number   string     `json:"number"` // hierarchical number, e.g. "1.2."
	Children []*Heading `json:"children,omitempty"`
}

// headingInfo represents an extracted heading from HTML.
type headingInfo struct {
	Level int
	ID    string
	Text  string
}

// headingPattern matches h1-h6 tags with id attribute.
// Captures: 1=level, 2=id, 3=inner HTML (may contain inline tags)
var headingPattern = regexp.MustCompile(`(?is)<h([1-6])[^>]*\bid="([^"]*)"[^>]*>(.*?)</h[1-6]>`)

// htmlTagPattern matches HTML tags for stripping from heading text.
var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// stripHTMLTags removes HTML tags from a string, decodes HTML entities,
// and trims whitespace.
func stripHTMLTags(s string) string {
	s = htmlTagPattern.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return strings.TrimSpace(s)
}

// extractHeadings returns headings with IDs in document order.
func extractHeadings(htmlContent string) []headingInfo {
	matches := headingPattern.FindAllStringSubmatch(htmlContent, -1)
	if len(matches) == 0 {
		return nil
	}

	headings := make([]headingInfo, 0, len(matches))
	for _, m := range matches {
		level, _ := strconv.Atoi(m[1])
		headings = append(headings, headingInfo{
			Level: level,
			ID:    m[2],
			Text:  stripHTMLTags(m[3]),
		})
	}
	return headings
}

// numberingState tracks hierarchical numbering for outline entries.
// Supports normalization (first heading becomes depth 1) and gap skipping.
type numberingState struct {
	counters     [6]int
	minLevelSeen int
	lastLevel    int
}

func newNumberingState() *numberingState {
	return &numberingState{}
}

// next returns the number string and effective depth for a heading level.
// A jump of several levels (h1 -> h3) nests only one level deeper.
func (n *numberingState) next(level int) (numStr string, effectiveDepth int) {
	if n.minLevelSeen == 0 {
		n.minLevelSeen = level
	}

	effectiveDepth = level - n.minLevelSeen + 1
	if effectiveDepth < 1 {
		effectiveDepth = 1
	}
	if n.lastLevel > 0 && effectiveDepth > n.lastLevel+1 {
		effectiveDepth = n.lastLevel + 1
	}

	for i := effectiveDepth; i < 6; i++ {
		n.counters[i] = 0
	}
	n.counters[effectiveDepth-1]++
	n.lastLevel = effectiveDepth

	parts := make([]string, effectiveDepth)
	for i := 0; i < effectiveDepth; i++ {
		parts[i] = strconv.Itoa(n.counters[i])
	}
	return strings.Join(parts, ".") + ".", effectiveDepth
}

// Outline builds the nested heading outline of rendered HTML. Headings
// produced inside blocks are included in document order.
func Outline(htmlContent string) []*Heading {
	headings := extractHeadings(htmlContent)
	if len(headings) == 0 {
		return nil
	}

	numbering := newNumberingState()
	var roots []*Heading
	var stack []*Heading // stack[d-1] is the last heading at depth d

	for _, h := range headings {
		num, depth := numbering.next(h.Level)
		node := &Heading{Level: h.Level, ID: h.ID, Title: h.Text, Number: num}

		stack = stack[:depth-1]
		if depth == 1 {
			roots = append(roots, node)
		} else {
			parent := stack[depth-2]
			parent.Children = append(parent.Children, node)
		}
		stack = append(stack, node)
	}
	return roots
}
