package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alnah/go-spellbook/internal/fileutil"
)

// stdinName labels diagnostics of a document read from stdin.
const stdinName = "<stdin>"

// runCompile compiles a single markdown file, or stdin with "-".
func runCompile(args []string, env *Environment) error {
	f, positional, err := parseCompileFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}
	switch len(positional) {
	case 0:
		return fmt.Errorf("%w: compile needs a markdown file or -", ErrNoInput)
	case 1:
	default:
		return fmt.Errorf("%w: expected one input file, got %d arguments", ErrUsage, len(positional))
	}

	s, err := newSession(f, env)
	if err != nil {
		return err
	}

	name, content, err := readSource(positional[0], env.Stdin)
	if err != nil {
		return err
	}

	compiler, err := s.newCompiler()
	if err != nil {
		return err
	}

	s.logger.Debug("compiling", "input", name)
	result, err := compiler.Compile(content)
	if err != nil {
		return fmt.Errorf("compiling %s: %w", name, err)
	}
	printDiagnostics(env.Stderr, name, result.Diagnostics, f.common.quiet)

	if f.output == "" {
		if _, err := io.WriteString(env.Stdout, result.HTML); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	} else {
		if err := writeOutput(f.output, []byte(result.HTML)); err != nil {
			return err
		}
		if !f.common.quiet {
			fmt.Fprintf(env.Stderr, "Created %s\n", f.output)
		}
	}

	if s.cfg.Build.Strict && result.HasErrors() {
		return fmt.Errorf("%w: %s", ErrStrict, name)
	}
	return nil
}

// readSource reads the named markdown file, or stdin for "-".
func readSource(input string, stdin io.Reader) (name, content string, err error) {
	if input == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		}
		return stdinName, string(data), nil
	}

	if err := validateMarkdownFile(input); err != nil {
		return "", "", err
	}
	data, err := os.ReadFile(input) // #nosec G304 -- user-provided path
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}
	return input, string(data), nil
}

// writeOutput writes data to path atomically, creating parent directories.
func writeOutput(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	if err := fileutil.WriteFileAtomic(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}
