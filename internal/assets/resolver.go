package assets

import "errors"

// Resolver asks its loaders in order and returns the first template found.
// A custom directory therefore overrides single built-ins while the rest
// still come from the embedded set.
type Resolver struct {
	loaders []Loader
}

var _ Loader = (*Resolver)(nil)

// NewResolver creates a Resolver over the embedded templates, preceded by
// customBasePath when it is set. Returns ErrInvalidBasePath for an unusable
// directory.
func NewResolver(customBasePath string) (*Resolver, error) {
	if customBasePath == "" {
		return &Resolver{loaders: []Loader{Embedded}}, nil
	}

	custom, err := NewFilesystemLoader(customBasePath)
	if err != nil {
		return nil, err
	}
	return &Resolver{loaders: []Loader{custom, Embedded}}, nil
}

// LoadTemplate returns the template from the first loader that has it.
// Only ErrTemplateNotFound falls through; validation and I/O errors stop
// the search.
func (r *Resolver) LoadTemplate(name string) (string, error) {
	var err error
	for _, l := range r.loaders {
		var content string
		content, err = l.LoadTemplate(name)
		if !errors.Is(err, ErrTemplateNotFound) {
			return content, err
		}
	}
	return "", err
}

// HasCustomLoader reports whether a custom directory precedes the built-ins.
func (r *Resolver) HasCustomLoader() bool {
	return len(r.loaders) > 1
}
