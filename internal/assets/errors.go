package assets

import "errors"

// Sentinel errors for template loading.
var (
	ErrTemplateNotFound = errors.New("component template not found")
	ErrInvalidAssetName = errors.New("invalid component template name")
	ErrInvalidBasePath  = errors.New("invalid template directory")
	ErrAssetRead        = errors.New("failed to read component template")

	// ErrPathTraversal reports a template that resolves outside its directory,
	// typically through a symlink.
	ErrPathTraversal = errors.New("template escapes its directory")
)
