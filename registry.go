package spellbook

import (
	"github.com/alnah/go-spellbook/internal/assets"
	"github.com/alnah/go-spellbook/internal/registry"
)

// defaultRegistry holds the built-in components. It has no locks: register
// custom components before compiling concurrently.
var defaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	reg := registry.New()
	if err := registerBuiltins(reg, assets.Embedded); err != nil {
		panic("spellbook: registering built-in components: " + err.Error())
	}
	return reg
}

// DefaultRegistry returns the process-wide registry used by Compile and by
// compilers created without WithRegistry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// NewRegistry returns an empty registry.
// Use DefaultRegistry().Clone() to start from the built-in components.
func NewRegistry() *Registry {
	return registry.New()
}

// Register adds c to the default registry under name, replacing any
// component of the same name. Names match [A-Za-z_][A-Za-z0-9_-]*.
// Returns ErrInvalidComponentName or ErrNilComponent.
func Register(name string, c Component, mode ContentMode) error {
	return defaultRegistry.Register(name, c, mode)
}

// RegisterFunc registers a plain function in the default registry.
func RegisterFunc(name string, fn func(a Attrs, content string) (string, error), mode ContentMode) error {
	if fn == nil {
		return defaultRegistry.Register(name, nil, mode)
	}
	return defaultRegistry.Register(name, ComponentFunc(fn), mode)
}

// Lookup returns the component registered under name in the default
// registry. Returns ErrUnknownComponent if there is none.
func Lookup(name string) (Component, ContentMode, error) {
	e, err := defaultRegistry.Lookup(name)
	if err != nil {
		return nil, ModeMarkdown, err
	}
	return e.Component, e.Mode, nil
}
