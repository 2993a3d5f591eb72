package toc

import "encoding/json"

// entryJSON is the wire form of an Entry. Navigation links are written as
// URLs since Parent/Prev/Next pointers would make the graph cyclic.
type entryJSON struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	URL      string         `json:"url,omitempty"`
	Path     string         `json:"path,omitempty"`
	Depth    int            `json:"depth"`
	Prev     string         `json:"prev,omitempty"`
	Next     string         `json:"next,omitempty"`
	Meta     map[string]any `json:"meta,omitempty"`
	Children []*Entry       `json:"children,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (e *Entry) MarshalJSON() ([]byte, error) {
	out := entryJSON{
		ID:       e.ID,
		Title:    e.Title,
		URL:      e.URL,
		Path:     e.Path,
		Depth:    e.Depth,
		Meta:     e.Meta,
		Children: e.Children,
	}
	if e.Prev != nil {
		out.Prev = e.Prev.URL
	}
	if e.Next != nil {
		out.Next = e.Next.URL
	}
	return json.Marshal(out)
}
