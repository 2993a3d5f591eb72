package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alnah/go-spellbook/internal/fileutil"
	"github.com/alnah/go-spellbook/internal/hints"
)

// sourceFile is one markdown document found under the source root.
type sourceFile struct {
	Path string // path to read
	Rel  string // slash path relative to the source root
}

// discoverFiles finds all markdown files under root, sorted by relative
// path. Hidden files and directories are skipped.
func discoverFiles(root string) ([]sourceFile, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidInput, root)
	}

	var files []sourceFile
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !fileutil.IsMarkdown(path) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		files = append(files, sourceFile{Path: path, Rel: filepath.ToSlash(rel)})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Rel < files[j].Rel })
	return files, nil
}

// resolveInputDir picks the source directory from args or the config.
func resolveInputDir(args []string, defaultDir string) (string, error) {
	switch {
	case len(args) > 1:
		return "", fmt.Errorf("%w: expected one source directory, got %d arguments", ErrUsage, len(args))
	case len(args) == 1:
		return args[0], nil
	case defaultDir != "":
		return defaultDir, nil
	}
	return "", fmt.Errorf("%w%s", ErrNoInput, hints.ForInputPath(""))
}

// outputPath returns where the HTML of a source lands under outDir.
func outputPath(outDir, rel string) (string, error) {
	htmlRel, err := fileutil.ReplaceExt(rel, "html")
	if err != nil {
		return "", err
	}
	return filepath.Join(outDir, filepath.FromSlash(htmlRel)), nil
}

// validateMarkdownFile checks that path is a markdown file, not a directory.
func validateMarkdownFile(path string) error {
	if fileutil.DirExists(path) || (fileutil.FileExists(path) && !fileutil.IsMarkdown(path)) {
		return fmt.Errorf("%w: %s%s", ErrInvalidInput, path, hints.ForInputPath(path))
	}
	return nil
}
