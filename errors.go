package spellbook

import (
	"errors"

	"github.com/alnah/go-spellbook/internal/frontmatter"
	"github.com/alnah/go-spellbook/internal/pipeline"
	"github.com/alnah/go-spellbook/internal/registry"
)

// Sentinel errors for library operations.
var (
	// ErrFrontmatter reports a frontmatter block that is not a YAML mapping.
	// It is the only input error that aborts a compile.
	ErrFrontmatter    = frontmatter.ErrInvalid
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrInternal       = errors.New("internal error")

	// Registry errors. Registry methods return these directly.
	ErrInvalidComponentName = registry.ErrInvalidName
	ErrNilComponent         = registry.ErrNilComponent
	ErrUnknownComponent     = registry.ErrUnknownComponent

	// Option validation errors.
	ErrInvalidHighlightStyle = errors.New("invalid highlight style")

	// Asset loading errors.
	ErrTemplateNotFound = errors.New("component template not found")
	ErrTemplateParse    = errors.New("component template parsing failed")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
