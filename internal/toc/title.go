package toc

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Titlefy turns a file or directory name into a display title. Leading
// dashes are dropped, words are split on dashes (or spaces when the name
// has none) and words longer than two letters are capitalized:
//
//	"getting-started" -> "Getting Started"
//	"-intro-to-yaml"   -> "Intro to Yaml"
func Titlefy(name string) string {
	name = strings.TrimLeft(name, "-")
	sep := " "
	if strings.Contains(name, "-") {
		sep = "-"
	}

	caser := cases.Title(language.Und)
	words := strings.Split(name, sep)
	for i, w := range words {
		if utf8.RuneCountInString(w) > 2 {
			words[i] = caser.String(w)
		}
	}
	return strings.Join(words, " ")
}
