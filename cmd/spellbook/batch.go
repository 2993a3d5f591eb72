package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	spellbook "github.com/alnah/go-spellbook"
)

// compilerFunc returns the compiler for one source.
type compilerFunc func(sourceFile) (*spellbook.Compiler, error)

// compiledDoc holds the outcome of a single compile.
type compiledDoc struct {
	File       sourceFile
	OutputPath string
	Result     *spellbook.Result
	Err        error
	Duration   time.Duration
}

// compileBatch compiles files concurrently, at most workers at a time.
// Per-file failures land in compiledDoc.Err; only cancellation of ctx
// returns an error.
func compileBatch(ctx context.Context, files []sourceFile, workers int, compilerFor compilerFunc) ([]compiledDoc, error) {
	docs := make([]compiledDoc, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, f := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			docs[i] = compileFile(f, compilerFor)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// compileFile reads and compiles a single source.
func compileFile(f sourceFile, compilerFor compilerFunc) compiledDoc {
	start := time.Now()
	doc := compiledDoc{File: f}

	content, err := os.ReadFile(f.Path) // #nosec G304 -- discovered path
	if err != nil {
		doc.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		doc.Duration = time.Since(start)
		return doc
	}

	compiler, err := compilerFor(f)
	if err != nil {
		doc.Err = err
		doc.Duration = time.Since(start)
		return doc
	}

	doc.Result, doc.Err = compiler.Compile(string(content))
	doc.Duration = time.Since(start)
	return doc
}

// tocDocuments describes the successfully compiled docs for BuildTOC.
func tocDocuments(docs []compiledDoc) []spellbook.TOCDocument {
	out := make([]spellbook.TOCDocument, 0, len(docs))
	for _, d := range docs {
		if d.Err == nil {
			out = append(out, spellbook.NewTOCDocument(d.File.Rel, d.Result.Frontmatter))
		}
	}
	return out
}

// ResultSummary holds the count of compiled and failed documents, and of
// compiled documents carrying error diagnostics.
type ResultSummary struct {
	Succeeded  int
	Failed     int
	WithErrors int
}

// countResults tallies the batch outcome.
func countResults(docs []compiledDoc) ResultSummary {
	var summary ResultSummary
	for _, d := range docs {
		switch {
		case d.Err != nil:
			summary.Failed++
		case d.Result.HasErrors():
			summary.Succeeded++
			summary.WithErrors++
		default:
			summary.Succeeded++
		}
	}
	return summary
}

// printDiagnostics writes diagnostics as "name:line: severity: message [code]".
// With quiet, warnings are dropped.
func printDiagnostics(w io.Writer, name string, diags []spellbook.Diagnostic, quiet bool) {
	for _, d := range diags {
		if quiet && d.Severity != spellbook.SeverityError {
			continue
		}
		fmt.Fprintf(w, "%s:%s\n", name, d)
	}
}

// printResults outputs the batch outcome and returns the summary. Progress
// goes to out, failures and diagnostics to errOut.
func printResults(docs []compiledDoc, quiet, verbose bool, out, errOut io.Writer) ResultSummary {
	summary := countResults(docs)

	for _, d := range docs {
		if d.Err != nil {
			fmt.Fprintf(errOut, "FAILED %s: %v\n", d.File.Rel, d.Err)
			continue
		}

		printDiagnostics(errOut, d.File.Rel, d.Result.Diagnostics, quiet)

		if quiet {
			continue
		}

		switch {
		case verbose && d.OutputPath != "":
			fmt.Fprintf(out, "%s -> %s (%v)\n", d.File.Rel, d.OutputPath, d.Duration.Round(time.Millisecond))
		case verbose:
			fmt.Fprintf(out, "%s (%v)\n", d.File.Rel, d.Duration.Round(time.Millisecond))
		case d.OutputPath != "":
			fmt.Fprintf(out, "Created %s\n", d.OutputPath)
		}
	}

	if !quiet && len(docs) > 1 {
		fmt.Fprintf(out, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary
}

// batchError turns the summary into the command error.
func batchError(summary ResultSummary, strict bool) error {
	if summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrBuildFailed, summary.Failed, summary.Failed+summary.Succeeded)
	}
	if strict && summary.WithErrors > 0 {
		return fmt.Errorf("%w: %d document(s)", ErrStrict, summary.WithErrors)
	}
	return nil
}
