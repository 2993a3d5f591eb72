// Package spellbook compiles extended Markdown with nested block components
// ("SpellBlocks") into HTML fragments.
//
// # Quick Start
//
//	result, err := spellbook.Compile("{~ alert type=warning ~}Careful!{~~}")
//	if err != nil {
//	    log.Fatal(err) // only malformed frontmatter is fatal
//	}
//	fmt.Println(result.HTML)
//	for _, d := range result.Diagnostics {
//	    log.Println(d)
//	}
//
// # Block Syntax
//
// A block opens with {~ name attributes ~} and closes with the generic
// closer {~~}, which closes the innermost open block. {~~ name ~} closes
// by name and {~ name /~} is self-closing. Attributes accept key="value",
// key='value', key=value, bare flags, .class and #id shorthand.
//
// Names registered in the Registry are components. Other names that are
// HTML elements ({~ section .wide ~}) render as that element. Anything else
// renders a visible "Unknown component" marker.
//
// Markers inside fenced code blocks and inline code spans are left alone.
//
// # Compilation Pipeline
//
//  1. Line endings are normalized and the frontmatter block is decoded
//  2. The block scanner builds the block tree
//  3. Blocks render innermost-first; each fragment is parked behind a
//     placeholder token
//  4. The surrounding Markdown is converted by goldmark (GFM, footnotes,
//     heading IDs, syntax highlighting, ==highlight==)
//  5. Tokens are replaced by their fragments and the heading outline,
//     word count and reading time are derived
//
// A failing or panicking component only replaces its own block with an
// error marker. Every problem is reported in Result.Diagnostics.
//
// # Components
//
// Built-in components (alert, card, quote, accordion, progress, button) are
// html/template files. Override them with WithAssetPath:
//
//	assets/
//	└── components/
//	    └── card.html
//
// Register custom components before compiling:
//
//	spellbook.RegisterFunc("badge", func(a spellbook.Attrs, content string) (string, error) {
//	    return `<span class="badge">` + content + `</span>`, nil
//	}, spellbook.ModeMarkdown)
//
// The registry has no locks. Register everything first, then compile from
// as many goroutines as needed.
//
// # Navigation
//
// BuildTOC groups compiled documents by path into a navigation tree with
// index documents merged into their directory, and links prev/next between
// documents. ActivePath returns the chain from the root to an entry.
package spellbook
