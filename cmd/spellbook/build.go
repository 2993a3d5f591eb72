package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	spellbook "github.com/alnah/go-spellbook"
)

// tocFileName is the navigation tree written next to the HTML output.
const tocFileName = "toc.json"

// runBuild compiles a source directory into an output directory.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	f, positional, err := parseBuildFlags(args, env.Stderr)
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
	outDir := f.output
	if outDir == "" {
		outDir = s.cfg.Output.DefaultDir
	}
	if outDir == "" {
		return fmt.Errorf("%w: use -o or set output.defaultDir", ErrNoOutput)
	}

	files, err := discoverFiles(inDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files in %s", ErrNoInput, inDir)
	}

	s.logger.Debug("building", "input", inDir, "output", outDir, "files", len(files), "workers", s.workers())

	compilerFor, err := s.compilerFunc(files)
	if err != nil {
		return err
	}
	docs, err := compileBatch(ctx, files, s.workers(), compilerFor)
	if err != nil {
		return err
	}

	if err := writeDocuments(docs, outDir); err != nil {
		return err
	}

	root, tocDiags := spellbook.BuildTOC(tocDocuments(docs), s.tocOptions()...)
	printDiagnostics(env.Stderr, tocFileName, tocDiags, f.common.quiet)
	tocPath := filepath.Join(outDir, tocFileName)
	if err := writeTOC(root, tocPath); err != nil {
		return err
	}

	summary := printResults(docs, f.common.quiet, f.common.verbose, env.Stdout, env.Stderr)
	if !f.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", tocPath)
	}
	return batchError(summary, s.cfg.Build.Strict)
}

// compilerFunc returns the per-document compiler source. Without link
// rewriting every document shares one compiler; with it, each document
// gets its own resolver over the base compiler's registry.
func (s *session) compilerFunc(files []sourceFile) (compilerFunc, error) {
	base, err := s.newCompiler()
	if err != nil {
		return nil, err
	}
	if !s.cfg.Build.RewriteLinks {
		return func(sourceFile) (*spellbook.Compiler, error) { return base, nil }, nil
	}

	urls := documentURLs(files, s.tocOptions())
	return func(f sourceFile) (*spellbook.Compiler, error) {
		opts := append(s.compilerOptions(),
			spellbook.WithRegistry(base.Registry()),
			spellbook.WithLinkResolver(linkResolver(f.Rel, urls)),
		)
		return spellbook.NewCompiler(opts...)
	}, nil
}

// writeDocuments writes the HTML of every compiled document under outDir
// and records where each landed.
func writeDocuments(docs []compiledDoc, outDir string) error {
	for i := range docs {
		d := &docs[i]
		if d.Err != nil {
			continue
		}
		out, err := outputPath(outDir, d.File.Rel)
		if err != nil {
			d.Err = err
			continue
		}
		if err := writeOutput(out, []byte(d.Result.HTML)); err != nil {
			return fmt.Errorf("%s: %w", d.File.Rel, err)
		}
		d.OutputPath = out
	}
	return nil
}

// writeTOC writes the navigation tree as indented JSON to path.
func writeTOC(root *spellbook.TOCEntry, path string) error {
	data, err := marshalTOC(root)
	if err != nil {
		return err
	}
	return writeOutput(path, data)
}

// marshalTOC encodes the navigation tree as indented JSON.
func marshalTOC(root *spellbook.TOCEntry) ([]byte, error) {
	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding navigation tree: %w", err)
	}
	return append(data, '\n'), nil
}

// writeJSON writes the encoded tree to w.
func writeJSON(w io.Writer, root *spellbook.TOCEntry) error {
	data, err := marshalTOC(root)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
