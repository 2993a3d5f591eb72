package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
)

//go:embed templates/components/*.html
var templates embed.FS

// EmbeddedLoader serves the templates compiled into the binary.
type EmbeddedLoader struct {
	fsys fs.FS
}

var _ Loader = (*EmbeddedLoader)(nil)

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{fsys: templates}
}

// LoadTemplate returns the built-in template for name.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := fs.ReadFile(e.fsys, path.Join("templates", ComponentsDir, name+templateExt))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return string(content), nil
}
