package pipeline

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// WordsPerMinute is the reading speed used by ReadingMinutes.
const WordsPerMinute = 215

// WordCount counts whitespace-separated words in the text of an HTML
// fragment, ignoring script and style contents.
func WordCount(htmlContent string) int {
	z := html.NewTokenizer(strings.NewReader(htmlContent))
	count := 0
	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			return count
		case html.StartTagToken:
			if a := tagAtom(z); a == atom.Script || a == atom.Style {
				skip++
			}
		case html.EndTagToken:
			if a := tagAtom(z); (a == atom.Script || a == atom.Style) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				count += len(strings.Fields(string(z.Text())))
			}
		}
	}
}

// ReadingMinutes estimates reading time; any non-empty text takes at least
// one minute.
func ReadingMinutes(words int) int {
	if words <= 0 {
		return 0
	}
	minutes := words / WordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

func tagAtom(z *html.Tokenizer) atom.Atom {
	name, _ := z.TagName()
	return atom.Lookup(name)
}
