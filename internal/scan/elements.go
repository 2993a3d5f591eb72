package scan

import "golang.org/x/net/html/atom"

// htmlElements lists element names usable as blocks. The value marks void
// elements, which never take content.
var htmlElements = map[atom.Atom]bool{
	atom.A:          false,
	atom.Abbr:       false,
	atom.Address:    false,
	atom.Article:    false,
	atom.Aside:      false,
	atom.B:          false,
	atom.Blockquote: false,
	atom.Br:         true,
	atom.Button:     false,
	atom.Caption:    false,
	atom.Cite:       false,
	atom.Code:       false,
	atom.Col:        true,
	atom.Dd:         false,
	atom.Del:        false,
	atom.Details:    false,
	atom.Dfn:        false,
	atom.Dialog:     false,
	atom.Div:        false,
	atom.Dl:         false,
	atom.Dt:         false,
	atom.Em:         false,
	atom.Embed:      true,
	atom.Fieldset:   false,
	atom.Figcaption: false,
	atom.Figure:     false,
	atom.Footer:     false,
	atom.Form:       false,
	atom.H1:         false,
	atom.H2:         false,
	atom.H3:         false,
	atom.H4:         false,
	atom.H5:         false,
	atom.H6:         false,
	atom.Header:     false,
	atom.Hr:         true,
	atom.I:          false,
	atom.Img:        true,
	atom.Input:      true,
	atom.Ins:        false,
	atom.Kbd:        false,
	atom.Label:      false,
	atom.Legend:     false,
	atom.Li:         false,
	atom.Main:       false,
	atom.Mark:       false,
	atom.Nav:        false,
	atom.Ol:         false,
	atom.P:          false,
	atom.Pre:        false,
	atom.Q:          false,
	atom.S:          false,
	atom.Samp:       false,
	atom.Section:    false,
	atom.Small:      false,
	atom.Source:     true,
	atom.Span:       false,
	atom.Strong:     false,
	atom.Sub:        false,
	atom.Summary:    false,
	atom.Sup:        false,
	atom.Table:      false,
	atom.Tbody:      false,
	atom.Td:         false,
	atom.Tfoot:      false,
	atom.Th:         false,
	atom.Thead:      false,
	atom.Time:       false,
	atom.Tr:         false,
	atom.Track:      true,
	atom.U:          false,
	atom.Ul:         false,
	atom.Var:        false,
	atom.Video:      false,
	atom.Audio:      false,
	atom.Wbr:        true,
}

// IsElement reports whether name is a known HTML element and whether it is
// void. Names are case-sensitive: only lower-case names match.
func IsElement(name string) (ok, void bool) {
	a := atom.Lookup([]byte(name))
	if a == 0 {
		return false, false
	}
	void, ok = htmlElements[a]
	return ok, void
}
