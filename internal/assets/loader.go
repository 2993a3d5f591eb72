package assets

import (
	"fmt"

	"github.com/alnah/go-spellbook/internal/registry"
)

// Loader returns the html/template source of a component by name.
type Loader interface {
	// LoadTemplate returns ErrTemplateNotFound when the loader has no
	// template for name and ErrInvalidAssetName when name is not a valid
	// component name.
	LoadTemplate(name string) (string, error)
}

// ComponentsDir is the directory holding component templates, both in the
// embedded filesystem and under a custom base path.
const ComponentsDir = "components"

// templateExt is appended to a component name to form its file name.
const templateExt = ".html"

// BuiltinComponents lists the component templates shipped with the package.
var BuiltinComponents = []string{"accordion", "alert", "button", "card", "hero", "practice", "progress", "quote"}

// ValidateAssetName checks that name can be used as a template file name.
// Template names follow the component name grammar, so separators, dots
// and traversal sequences are all rejected.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if !registry.ValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
