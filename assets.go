package spellbook

import (
	"errors"

	"github.com/alnah/go-spellbook/internal/assets"
)

// TemplateLoader supplies the html/template source of a built-in component.
// LoadTemplate takes the component name and returns ErrTemplateNotFound when
// the loader has no template for it.
type TemplateLoader interface {
	LoadTemplate(name string) (string, error)
}

// BuiltinComponents lists the components of the default registry.
func BuiltinComponents() []string {
	return append([]string(nil), assets.BuiltinComponents...)
}

// BuiltinTemplate returns the embedded template of a built-in component.
// Ejected copies of it can be edited and picked up with WithAssetPath.
func BuiltinTemplate(name string) (string, error) {
	src, err := assets.LoadTemplate(name)
	if err != nil {
		return "", publicAssetError(err)
	}
	return src, nil
}

// NewTemplateLoader returns a loader reading dir/components/NAME.html and
// falling back to the embedded templates. An empty dir loads embedded
// templates only. A dir that is not a readable directory yields
// ErrInvalidAssetPath.
func NewTemplateLoader(dir string) (TemplateLoader, error) {
	r, err := assets.NewResolver(dir)
	if err != nil {
		return nil, publicAssetError(err)
	}
	return resolverLoader{r}, nil
}

type resolverLoader struct {
	r *assets.Resolver
}

func (l resolverLoader) LoadTemplate(name string) (string, error) {
	src, err := l.r.LoadTemplate(name)
	if err != nil {
		return "", publicAssetError(err)
	}
	return src, nil
}

// publicAssetError re-labels an internal asset error with its exported
// sentinel, keeping the internal message.
func publicAssetError(err error) error {
	var public error
	switch {
	case err == nil:
		return nil
	case errors.Is(err, assets.ErrTemplateNotFound), errors.Is(err, assets.ErrInvalidAssetName):
		public = ErrTemplateNotFound
	case errors.Is(err, assets.ErrInvalidBasePath), errors.Is(err, assets.ErrPathTraversal):
		public = ErrInvalidAssetPath
	default:
		return err
	}
	return &assetError{public: public, cause: err}
}

// assetError reports cause's message but only unwraps to the exported
// sentinel, so internal error values stay unreachable through errors.Is.
type assetError struct {
	public error
	cause  error
}

func (e *assetError) Error() string { return e.cause.Error() }

func (e *assetError) Unwrap() error { return e.public }
