// Package attrs parses the attribute text of a block opener into an ordered
// attribute set.
//
// Accepted forms, in any order and separated by whitespace:
//
//	key="double quoted"   key='single quoted'   key=unquoted
//	flag                  .class                #id
//
// Parsing never fails. Malformed input degrades to the closest sensible
// result and is reported as a warning diagnostic.
package attrs

import (
	"html"
	"strings"
)

// Attr is a single name/value pair. Flag is set for bare attributes, whose
// Value is always "true".
type Attr struct {
	Name  string
	Value string
	Flag  bool
}

// Set is an ordered, case-sensitive attribute collection. Setting an existing
// name replaces its value but keeps its original position.
type Set struct {
	list []Attr
}

// Get returns the value for name and whether it was present.
func (s Set) Get(name string) (string, bool) {
	if i := s.index(name); i >= 0 {
		return s.list[i].Value, true
	}
	return "", false
}

// Value returns the value for name, or def when absent.
func (s Set) Value(name, def string) string {
	if v, ok := s.Get(name); ok {
		return v
	}
	return def
}

// Has reports whether name is present.
func (s Set) Has(name string) bool {
	return s.index(name) >= 0
}

// Bool interprets name as a boolean: a bare flag or one of the usual truthy
// spellings counts as true.
func (s Set) Bool(name string) bool {
	v, ok := s.Get(name)
	if !ok {
		return false
	}
	switch strings.ToLower(v) {
	case "", "true", "1", "yes", "on", name:
		return true
	}
	return false
}

// Set inserts or replaces name. Empty names are ignored.
func (s *Set) Set(name, value string) {
	s.set(Attr{Name: name, Value: value})
}

func (s *Set) set(a Attr) {
	if a.Name == "" {
		return
	}
	if i := s.index(a.Name); i >= 0 {
		s.list[i] = a
		return
	}
	s.list = append(s.list, a)
}

// Delete removes name if present.
func (s *Set) Delete(name string) {
	if i := s.index(name); i >= 0 {
		s.list = append(s.list[:i:i], s.list[i+1:]...)
	}
}

// Len returns the number of attributes.
func (s Set) Len() int {
	return len(s.list)
}

// All returns a copy of the attributes in order.
func (s Set) All() []Attr {
	out := make([]Attr, len(s.list))
	copy(out, s.list)
	return out
}

// Names returns attribute names in order.
func (s Set) Names() []string {
	names := make([]string, len(s.list))
	for i, a := range s.list {
		names[i] = a.Name
	}
	return names
}

// Map returns the attributes as a map, for template data.
func (s Set) Map() map[string]string {
	m := make(map[string]string, len(s.list))
	for _, a := range s.list {
		m[a.Name] = a.Value
	}
	return m
}

// Without returns a copy of s lacking the given names.
func (s Set) Without(names ...string) Set {
	var out Set
	for _, a := range s.list {
		skip := false
		for _, n := range names {
			if a.Name == n {
				skip = true
				break
			}
		}
		if !skip {
			out.list = append(out.list, a)
		}
	}
	return out
}

// HTML renders the set as HTML attributes with a leading space per
// attribute. Values are escaped; flags are written bare.
func (s Set) HTML() string {
	var b strings.Builder
	for _, a := range s.list {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		if a.Flag {
			continue
		}
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a.Value))
		b.WriteByte('"')
	}
	return b.String()
}

// String renders the set back into opener syntax.
func (s Set) String() string {
	parts := make([]string, 0, len(s.list))
	for _, a := range s.list {
		if a.Flag {
			parts = append(parts, a.Name)
			continue
		}
		quote := `"`
		if strings.Contains(a.Value, `"`) {
			quote = "'"
		}
		parts = append(parts, a.Name+"="+quote+a.Value+quote)
	}
	return strings.Join(parts, " ")
}

func (s Set) index(name string) int {
	for i, a := range s.list {
		if a.Name == name {
			return i
		}
	}
	return -1
}

// addClass appends class names to the class attribute, skipping repeats.
func (s *Set) addClass(value string) {
	existing, _ := s.Get("class")
	classes := strings.Fields(existing)
	for _, c := range strings.Fields(value) {
		dup := false
		for _, e := range classes {
			if e == c {
				dup = true
				break
			}
		}
		if !dup {
			classes = append(classes, c)
		}
	}
	if len(classes) == 0 {
		return
	}
	s.set(Attr{Name: "class", Value: strings.Join(classes, " ")})
}
