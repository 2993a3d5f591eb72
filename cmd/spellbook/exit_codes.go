package main

import (
	"errors"
	"os"

	"github.com/alecthomas/chroma/v2/styles"

	spellbook "github.com/alnah/go-spellbook"
	"github.com/alnah/go-spellbook/internal/config"
	"github.com/alnah/go-spellbook/internal/hints"
)

// Exit codes for the spellbook CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitCompile = 4 // Fatal document errors, or error diagnostics with --strict
)

// Sentinel errors for CLI operations.
var (
	ErrUsage              = errors.New("invalid usage")
	ErrNoInput            = errors.New("no input specified")
	ErrNoOutput           = errors.New("no output directory specified")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrReadMarkdown       = errors.New("failed to read markdown file")
	ErrWriteOutput        = errors.New("failed to write output")
	ErrOutputExists       = errors.New("output file already exists")
	ErrStrict             = errors.New("error diagnostics reported in strict mode")
	ErrBuildFailed        = errors.New("documents failed to compile")
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Compile errors (exit 4)
	if errors.Is(err, spellbook.ErrFrontmatter) ||
		errors.Is(err, spellbook.ErrHTMLConversion) ||
		errors.Is(err, spellbook.ErrInternal) ||
		errors.Is(err, ErrStrict) ||
		errors.Is(err, ErrBuildFailed) {
		return ExitCompile
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, spellbook.ErrInvalidHighlightStyle) ||
		errors.Is(err, spellbook.ErrInvalidAssetPath) ||
		errors.Is(err, spellbook.ErrTemplateNotFound) ||
		errors.Is(err, spellbook.ErrTemplateParse) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoOutput) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrOutputExists) {
		return ExitUsage
	}

	return ExitGeneral
}

// describeError renders err for the terminal, with a hint when one applies.
func describeError(err error) string {
	msg := err.Error()

	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		msg += hints.ForConfigNotFound(config.SearchPaths(config.DefaultName))
	case errors.Is(err, config.ErrUnknownHighlightStyle),
		errors.Is(err, spellbook.ErrInvalidHighlightStyle):
		msg += hints.ForHighlightStyle(styles.Names())
	case errors.Is(err, spellbook.ErrInvalidAssetPath):
		msg += hints.ForAssetPath()
	case errors.Is(err, ErrWriteOutput):
		msg += hints.ForOutputDirectory()
	case errors.Is(err, ErrStrict):
		msg += hints.ForStrict()
	}
	return msg
}
