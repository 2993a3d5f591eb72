// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-spellbook/internal/fileutil"
)

// userConfigMarker identifies the per-user config location in searched paths.
var userConfigMarker = filepath.Join(".config", "go-spellbook")

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-spellbook/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, userConfigMarker) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForInputPath returns hints when the input is missing or not markdown.
// A directory argument to "compile" gets pointed at "build".
func ForInputPath(path string) string {
	if fileutil.DirExists(path) {
		return format("use 'spellbook build " + path + "' for directories")
	}
	if _, err := os.Stat(path); err == nil && !fileutil.IsMarkdown(path) {
		return format("input must have a .md or .markdown extension")
	}
	return format("check the path, or set input.defaultDir in the config")
}

// ForHighlightStyle returns hints for unknown highlight style errors.
func ForHighlightStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForAssetPath returns hints for component template directory errors.
func ForAssetPath() string {
	return format("expected a directory containing components/<name>.html")
}

// ForStrict returns a hint when --strict turned diagnostics into a failure.
func ForStrict() string {
	return format("fix the reported errors or drop --strict")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
