// Package yamlutil is the one place goccy/go-yaml is imported. Frontmatter
// blocks decode through UnmarshalMapping; the CLI config file through
// UnmarshalStrict.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxSize caps the bytes accepted by a single decode.
var MaxSize = 1 << 20

var (
	ErrEmpty      = errors.New("yamlutil: empty document")
	ErrNilTarget  = errors.New("yamlutil: nil decode target")
	ErrTooLarge   = errors.New("yamlutil: document too large")
	ErrNotMapping = errors.New("yamlutil: document is not a mapping")
)

// UnmarshalStrict decodes data into v, failing on keys v has no field for.
func UnmarshalStrict(data []byte, v any) error {
	return decode(data, v, yaml.Strict())
}

// UnmarshalMapping decodes a document whose top level must be a mapping.
// A null document (only comments, or "~") gives an empty map.
func UnmarshalMapping(data []byte) (map[string]any, error) {
	var doc any
	if err := decode(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return map[string]any{}, nil
	}
	m, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, doc)
	}
	return m, nil
}

func decode(data []byte, v any, opts ...yaml.DecodeOption) error {
	switch {
	case len(data) == 0:
		return ErrEmpty
	case len(data) > MaxSize:
		return fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, len(data), MaxSize)
	case v == nil:
		return ErrNilTarget
	}
	if err := yaml.UnmarshalWithOptions(data, v, opts...); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}
