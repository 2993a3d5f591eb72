package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// markdownFlags holds markdown rendering flags.
type markdownFlags struct {
	highlightStyle string
	hardWraps      bool
	lineNumbers    bool
	maxDepth       int
}

// tocFlags holds navigation tree flags.
type tocFlags struct {
	order      string
	indexNames []string
	urlPrefix  string
}

// cliFlags holds the flags of every command. Each command registers only
// the groups it uses.
type cliFlags struct {
	common       commonFlags
	output       string
	workers      int
	strict       bool
	rewriteLinks bool
	assetPath    string
	markdown     markdownFlags
	toc          tocFlags
}

// templatesFlags holds flags for the templates command.
type templatesFlags struct {
	eject string
	force bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
}

// addCompileFlags adds flags that shape how one document compiles.
func addCompileFlags(fs *flag.FlagSet, f *cliFlags) {
	fs.BoolVar(&f.strict, "strict", false, "fail when any error diagnostic is reported")
	fs.StringVar(&f.assetPath, "assets", "", "component template directory")
	fs.StringVar(&f.markdown.highlightStyle, "highlight-style", "", "chroma style for code blocks (\"\" = CSS classes)")
	fs.BoolVar(&f.markdown.hardWraps, "hard-wraps", false, "render single newlines as line breaks")
	fs.BoolVar(&f.markdown.lineNumbers, "line-numbers", false, "number highlighted code lines")
	fs.IntVar(&f.markdown.maxDepth, "max-depth", 0, "block nesting limit (0 = default)")
}

// addTOCFlags adds navigation tree flags to a FlagSet.
func addTOCFlags(fs *flag.FlagSet, f *tocFlags) {
	fs.StringVar(&f.order, "toc-order", "", "sibling order: dirs-first, pages-first")
	fs.StringSliceVar(&f.indexNames, "index-name", nil, "file stems merged into their directory (default: index)")
	fs.StringVar(&f.urlPrefix, "url-prefix", "", "prefix for navigation URLs (default: /)")
}

// newFlagSet creates a FlagSet that reports to w.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseCompileFlags parses compile command flags and returns positional args.
func parseCompileFlags(args []string, w io.Writer) (*cliFlags, []string, error) {
	fs := newFlagSet("compile", w, printCompileUsage)
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "write HTML to this file instead of stdout")
	addCommonFlags(fs, &f.common)
	addCompileFlags(fs, f)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, w io.Writer) (*cliFlags, []string, error) {
	fs := newFlagSet("build", w, printBuildUsage)
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.rewriteLinks, "rewrite-links", false, "point links between sources at their URLs")
	addCommonFlags(fs, &f.common)
	addCompileFlags(fs, f)
	addTOCFlags(fs, &f.toc)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseTOCFlags parses toc command flags and returns positional args.
func parseTOCFlags(args []string, w io.Writer) (*cliFlags, []string, error) {
	fs := newFlagSet("toc", w, printTOCUsage)
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "write JSON to this file instead of stdout")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	addCommonFlags(fs, &f.common)
	addTOCFlags(fs, &f.toc)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseTemplatesFlags parses templates command flags and returns positional args.
func parseTemplatesFlags(args []string, w io.Writer) (*templatesFlags, []string, error) {
	fs := newFlagSet("templates", w, printTemplatesUsage)
	f := &templatesFlags{}

	fs.StringVar(&f.eject, "eject", "", "copy all built-in templates into this asset directory")
	fs.BoolVar(&f.force, "force", false, "overwrite existing files when ejecting")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// hasVerboseFlag reports whether args ask for verbose output. It runs before
// any FlagSet exists, to set up GOMAXPROCS logging.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}

// flagError marks a parse failure as a usage error. Help requests pass
// through unchanged.
func flagError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}
