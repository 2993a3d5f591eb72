package spellbook_test

import (
	"fmt"
	"html"
	"strings"

	"github.com/alnah/go-spellbook"
)

// Example demonstrates compiling a document with a built-in component.
func Example() {
	result, err := spellbook.Compile(`---
title: Release notes
---
# Changes

{~ alert type=warning ~}
Mind the **gap**.
{~~}
`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result.Frontmatter.Title)
	fmt.Println(strings.Contains(result.HTML, `class="sb-alert sb-alert-warning"`))
	fmt.Println(strings.Contains(result.HTML, "<strong>gap</strong>"))
	// Output:
	// Release notes
	// true
	// true
}

// Example_htmlElement demonstrates the HTML element shorthand.
func Example_htmlElement() {
	result, err := spellbook.Compile("{~ span .tag ~}new{~~}")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.TrimSpace(result.HTML))
	// Output: <span class="tag">new</span>
}

// Example_diagnostics demonstrates that problems are reported, not raised.
func Example_diagnostics() {
	result, err := spellbook.Compile("{~ foo ~}bar{~~}")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, d := range result.Diagnostics {
		fmt.Println(d)
	}
	// Output: 1: error: unknown component "foo" [unknown-component]
}

// ExampleNewCompiler demonstrates a compiler with its own component.
func ExampleNewCompiler() {
	reg := spellbook.DefaultRegistry().Clone()
	greet := spellbook.ComponentFunc(func(a spellbook.Attrs, content string) (string, error) {
		return fmt.Sprintf(`<p class="greet">Hello, %s!</p>`, html.EscapeString(a.Value("name", "world"))), nil
	})
	if err := reg.Register("greet", greet, spellbook.ModeRaw); err != nil {
		fmt.Println("error:", err)
		return
	}

	compiler, err := spellbook.NewCompiler(spellbook.WithRegistry(reg))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	result, err := compiler.Compile("{~ greet name=Ada /~}")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.TrimSpace(result.HTML))
	// Output: <p class="greet">Hello, Ada!</p>
}

// ExampleBuildTOC demonstrates building navigation over compiled documents.
func ExampleBuildTOC() {
	root, diags := spellbook.BuildTOC([]spellbook.TOCDocument{
		{Path: "index.md", Title: "Home"},
		{Path: "faq.md"},
		{Path: "guide/usage.md"},
		{Path: "guide/index.md", Title: "Guide"},
		{Path: "guide/install.md"},
	})
	if len(diags) > 0 {
		fmt.Println("diagnostics:", diags)
	}

	spellbook.WalkTOC(root, func(e *spellbook.TOCEntry) bool {
		fmt.Printf("%s%s %s\n", strings.Repeat("  ", e.Depth), e.Title, e.URL)
		return true
	})

	var chain []string
	for _, e := range spellbook.ActivePath(root, "guide/install") {
		chain = append(chain, e.ID)
	}
	fmt.Printf("%q\n", chain)
	// Output:
	// Home /
	//   Guide /guide/
	//     Install /guide/install/
	//     Usage /guide/usage/
	//   Faq /faq/
	// ["" "guide" "guide/install"]
}
