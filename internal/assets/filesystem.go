package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FilesystemLoader reads templates from {basePath}/components/{name}.html.
// Reads go through an os.Root, so neither names nor symlinks can reach
// files outside basePath.
type FilesystemLoader struct {
	basePath string
}

var _ Loader = (*FilesystemLoader)(nil)

// NewFilesystemLoader creates a FilesystemLoader for basePath.
// Returns ErrInvalidBasePath unless basePath is a readable directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	info, err := os.Stat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, abs)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, abs)
	}

	root, err := os.OpenRoot(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot open directory: %v", ErrInvalidBasePath, err)
	}
	_ = root.Close()

	return &FilesystemLoader{basePath: abs}, nil
}

// LoadTemplate reads the template for name from disk.
func (f *FilesystemLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	root, err := os.OpenRoot(f.basePath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	defer func() { _ = root.Close() }()

	rel := filepath.Join(ComponentsDir, name+templateExt)
	content, err := root.ReadFile(rel)
	switch {
	case err == nil:
		return string(content), nil
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	case isSymlink(root, ComponentsDir) || isSymlink(root, rel):
		return "", fmt.Errorf("%w: %s", ErrPathTraversal, filepath.Join(f.basePath, rel))
	default:
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
}

// isSymlink reports whether name is a symlink inside root. A read that
// fails on a symlink means the link points outside the root.
func isSymlink(root *os.Root, name string) bool {
	info, err := root.Lstat(name)
	return err == nil && info.Mode()&fs.ModeSymlink != 0
}
