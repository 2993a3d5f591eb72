package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: spellbook <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  compile    Compile one markdown file to HTML")
	fmt.Fprintln(w, "  build      Compile a directory into HTML files and toc.json")
	fmt.Fprintln(w, "  toc        Print the navigation tree of a directory as JSON")
	fmt.Fprintln(w, "  templates  List, show or eject built-in component templates")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'spellbook help <command>' for details on a specific command.")
}

// printCompileFlags prints the flags shared by compile and build.
func printCompileFlags(w io.Writer) {
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --assets <dir>            Component template directory")
	fmt.Fprintln(w, "      --highlight-style <s>     Chroma style for code blocks")
	fmt.Fprintln(w, "      --hard-wraps              Render single newlines as line breaks")
	fmt.Fprintln(w, "      --line-numbers            Number highlighted code lines")
	fmt.Fprintln(w, "      --max-depth <n>           Block nesting limit (default 32)")
	fmt.Fprintln(w, "      --strict                  Fail when any error diagnostic is reported")
	fmt.Fprintln(w)
}

// printCommonFlags prints the flags every command accepts.
func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>           Config file name or path (default: spellbook)")
	fmt.Fprintln(w, "  -q, --quiet                   Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                 Show debug logs and timing")
}

// printTOCFlags prints navigation tree flags.
func printTOCFlags(w io.Writer) {
	fmt.Fprintln(w, "Navigation:")
	fmt.Fprintln(w, "      --toc-order <s>           Sibling order: dirs-first, pages-first")
	fmt.Fprintln(w, "      --index-name <s>          File stem merged into its directory (repeatable)")
	fmt.Fprintln(w, "      --url-prefix <s>          Prefix for navigation URLs (default /)")
	fmt.Fprintln(w)
}

// printCompileUsage prints usage for the compile command.
func printCompileUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: spellbook compile <file> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Compile one markdown file. HTML goes to stdout, diagnostics to stderr.")
	fmt.Fprintln(w, "Use - to read from stdin.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -o, --output <file>           Write HTML to a file")
	fmt.Fprintln(w)
	printCompileFlags(w)
	printCommonFlags(w)
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: spellbook build <dir> -o <dir> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Compile every markdown file under a directory. Each source becomes")
	fmt.Fprintln(w, "<relative path>.html in the output directory, next to toc.json.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  dir    Source directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>            Output directory (or output.defaultDir)")
	fmt.Fprintln(w, "  -w, --workers <n>             Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --rewrite-links           Point links between sources at their URLs")
	fmt.Fprintln(w)
	printCompileFlags(w)
	printTOCFlags(w)
	printCommonFlags(w)
}

// printTOCUsage prints usage for the toc command.
func printTOCUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: spellbook toc <dir> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the navigation tree of a source directory as JSON.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -o, --output <file>           Write JSON to a file")
	fmt.Fprintln(w, "  -w, --workers <n>             Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	printTOCFlags(w)
	printCommonFlags(w)
}

// printTemplatesUsage prints usage for the templates command.
func printTemplatesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: spellbook templates [name] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Without arguments, list the built-in components. With a name, print")
	fmt.Fprintln(w, "its html/template source.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "      --eject <dir>             Write all templates to <dir>/components/")
	fmt.Fprintln(w, "      --force                   Overwrite existing files")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "compile":
		printCompileUsage(env.Stdout)
	case "build":
		printBuildUsage(env.Stdout)
	case "toc":
		printTOCUsage(env.Stdout)
	case "templates":
		printTemplatesUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: spellbook version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: spellbook help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
