// Package registry maps component names to renderers.
//
// A Registry is populated during start-up and then only read. It carries no
// locks: callers must finish registering before compiling concurrently.
package registry

import (
	"errors"
	"fmt"
	"regexp"
	"sort"

	"github.com/alnah/go-spellbook/internal/attrs"
)

// Sentinel errors for registry operations.
var (
	ErrUnknownComponent = errors.New("unknown component")
	ErrInvalidName      = errors.New("invalid component name")
	ErrNilComponent     = errors.New("nil component")
)

// namePattern matches component names accepted by the block scanner.
var namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// ContentMode selects how a component's body is prepared before Render.
type ContentMode int

const (
	// ModeMarkdown renders the body through the full markdown pipeline first.
	ModeMarkdown ContentMode = iota
	// ModeRaw passes the verbatim source between the markers.
	ModeRaw
)

// String returns "markdown" or "raw".
func (m ContentMode) String() string {
	if m == ModeRaw {
		return "raw"
	}
	return "markdown"
}

// Component renders one block invocation into an HTML fragment.
type Component interface {
	Render(attrs attrs.Set, content string) (string, error)
}

// ComponentFunc adapts a function to Component.
type ComponentFunc func(attrs attrs.Set, content string) (string, error)

// Render calls f.
func (f ComponentFunc) Render(a attrs.Set, content string) (string, error) {
	return f(a, content)
}

// Entry is a registered component.
type Entry struct {
	Name      string
	Component Component
	Mode      ContentMode
}

// Registry holds named components. The zero value is an empty registry.
type Registry struct {
	entries map[string]Entry
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// ValidName reports whether name can be used as a component name.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Register adds or replaces a component.
func (r *Registry) Register(name string, c Component, mode ContentMode) error {
	if !ValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if c == nil {
		return fmt.Errorf("%w: %q", ErrNilComponent, name)
	}
	if r.entries == nil {
		r.entries = make(map[string]Entry)
	}
	r.entries[name] = Entry{Name: name, Component: c, Mode: mode}
	return nil
}

// Lookup returns the entry for name. Names are case-sensitive.
func (r *Registry) Lookup(name string) (Entry, error) {
	e, ok := r.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownComponent, name)
	}
	return e, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for n := range r.entries {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy that can be extended without touching r.
func (r *Registry) Clone() *Registry {
	c := New()
	for k, v := range r.entries {
		c.entries[k] = v
	}
	return c
}
