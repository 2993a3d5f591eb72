package main

import (
	"context"
	"fmt"

	spellbook "github.com/alnah/go-spellbook"
)

// runTOC compiles a source directory and prints its navigation tree as JSON.
// Only the tree goes to stdout.
func runTOC(ctx context.Context, args []string, env *Environment) error {
	f, positional, err := parseTOCFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}

	s, err := newSession(f, env)
	if err != nil {
		return err
	}

	inDir, err := resolveInputDir(positional, s.cfg.Input.DefaultDir)
	if err != nil {
		return err
	}
	files, err := discoverFiles(inDir)
	if err != nil {
		return err
	}

	compiler, err := s.newCompiler()
	if err != nil {
		return err
	}
	docs, err := compileBatch(ctx, files, s.workers(), func(sourceFile) (*spellbook.Compiler, error) {
		return compiler, nil
	})
	if err != nil {
		return err
	}

	root, tocDiags := spellbook.BuildTOC(tocDocuments(docs), s.tocOptions()...)
	printDiagnostics(env.Stderr, "toc", tocDiags, f.common.quiet)

	if f.output == "" {
		err = writeJSON(env.Stdout, root)
	} else {
		err = writeTOC(root, f.output)
		if err == nil && !f.common.quiet {
			fmt.Fprintf(env.Stderr, "Created %s\n", f.output)
		}
	}
	if err != nil {
		return err
	}

	summary := printResults(docs, true, false, env.Stderr, env.Stderr)
	return batchError(summary, false)
}
