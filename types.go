package spellbook

import (
	"log/slog"
	"time"

	"github.com/alnah/go-spellbook/internal/attrs"
	"github.com/alnah/go-spellbook/internal/diag"
	"github.com/alnah/go-spellbook/internal/frontmatter"
	"github.com/alnah/go-spellbook/internal/pipeline"
	"github.com/alnah/go-spellbook/internal/registry"
	"github.com/alnah/go-spellbook/internal/scan"
)

// Public names for the types produced by the internal packages.
type (
	Diagnostic  = diag.Diagnostic
	Severity    = diag.Severity
	Code        = diag.Code
	Frontmatter = frontmatter.Frontmatter
	Sitemap     = frontmatter.Sitemap
	Heading     = pipeline.Heading
	Node        = scan.Node
	NodeKind    = scan.Kind
	Attrs       = attrs.Set
	Attr        = attrs.Attr

	// Component renders one block invocation into an HTML fragment.
	Component = registry.Component
	// ComponentFunc adapts a function to Component.
	ComponentFunc = registry.ComponentFunc
	// ContentMode selects how a block body is prepared before rendering.
	ContentMode = registry.ContentMode
	// Registry maps component names to components.
	Registry = registry.Registry

	// LinkResolver maps a relative document reference to a published URL.
	LinkResolver = pipeline.LinkResolver
)

// Content modes.
const (
	ModeMarkdown = registry.ModeMarkdown
	ModeRaw      = registry.ModeRaw
)

// Node kinds.
const (
	KindRaw       = scan.KindRaw
	KindComponent = scan.KindComponent
	KindElement   = scan.KindElement
)

// Diagnostic severities.
const (
	SeverityError   = diag.SeverityError
	SeverityWarning = diag.SeverityWarning
)

// Diagnostic codes.
const (
	CodeUnknownComponent  = diag.CodeUnknownComponent
	CodeRenderFailed      = diag.CodeRenderFailed
	CodeUnclosedBlock     = diag.CodeUnclosedBlock
	CodeMismatchedClose   = diag.CodeMismatchedClose
	CodeUnmatchedClose    = diag.CodeUnmatchedClose
	CodeNestingTooDeep    = diag.CodeNestingTooDeep
	CodeDuplicateID       = diag.CodeDuplicateID
	CodeUnterminatedQuote = diag.CodeUnterminatedQuote
	CodeEmptyAttrName     = diag.CodeEmptyAttrName
	CodeMalformedFront    = diag.CodeMalformedFront
	CodeInvalidFrontField = diag.CodeInvalidFrontField
	CodeDuplicateDocument = diag.CodeDuplicateDocument
	CodeUnresolvedLink    = diag.CodeUnresolvedLink
	CodeInvalidDocument   = diag.CodeInvalidDocument
	CodeReservedChar      = diag.CodeReservedChar
)

// Result is one compiled document.
type Result struct {
	HTML        string
	Frontmatter Frontmatter
	Outline     []*Heading
	Diagnostics []Diagnostic

	// Nodes is the top-level block tree. It must not be modified.
	Nodes []*Node

	WordCount   int
	ReadingTime int // minutes
	Blocks      int // rendered blocks, nested ones included
}

// HasErrors reports whether any diagnostic has error severity.
func (r *Result) HasErrors() bool {
	return diag.HasErrors(r.Diagnostics)
}

// ReadingDuration returns ReadingTime as a duration.
func (r *Result) ReadingDuration() time.Duration {
	return time.Duration(r.ReadingTime) * time.Minute
}

// Option configures a Compiler.
type Option func(*Compiler)

// compilerConfig holds internal configuration for Compiler.
type compilerConfig struct {
	registry       *Registry
	loader         TemplateLoader
	logger         *slog.Logger
	assetPath      string
	maxDepth       int
	dateLayouts    []string
	linkResolver   LinkResolver
	highlightStyle string
	hardWraps      bool
	lineNumbers    bool
}

// WithRegistry compiles against reg instead of the default registry.
func WithRegistry(reg *Registry) Option {
	return func(c *Compiler) {
		c.cfg.registry = reg
	}
}

// WithLogger sets the logger. Block failures log at Warn, compile summaries
// at Debug. A nil logger discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Compiler) {
		c.cfg.logger = logger
	}
}

// WithMaxDepth caps block nesting (default 32).
// Panics if n <= 0 (programmer error, similar to time.NewTicker).
func WithMaxDepth(n int) Option {
	if n <= 0 {
		panic("spellbook: WithMaxDepth depth must be positive")
	}
	return func(c *Compiler) {
		c.cfg.maxDepth = n
	}
}

// WithHighlightStyle renders code blocks with an inline chroma style such as
// "monokai". By default highlighted code carries CSS classes instead.
func WithHighlightStyle(style string) Option {
	return func(c *Compiler) {
		c.cfg.highlightStyle = style
	}
}

// WithHardWraps renders single newlines in prose as line breaks.
func WithHardWraps() Option {
	return func(c *Compiler) {
		c.cfg.hardWraps = true
	}
}

// WithLineNumbers adds line numbers to highlighted code blocks.
func WithLineNumbers() Option {
	return func(c *Compiler) {
		c.cfg.lineNumbers = true
	}
}

// WithAssetPath loads built-in component templates from
// {path}/components/{name}.html, falling back to the embedded ones.
func WithAssetPath(path string) Option {
	return func(c *Compiler) {
		c.cfg.assetPath = path
	}
}

// WithTemplateLoader loads built-in component templates from loader.
// It takes precedence over WithAssetPath.
func WithTemplateLoader(loader TemplateLoader) Option {
	return func(c *Compiler) {
		c.cfg.loader = loader
	}
}

// WithDateLayouts adds time layouts accepted for frontmatter dates, tried
// after the ISO forms.
func WithDateLayouts(layouts ...string) Option {
	return func(c *Compiler) {
		c.cfg.dateLayouts = append(c.cfg.dateLayouts, layouts...)
	}
}

// WithLinkResolver rewrites relative links and image sources in the output
// through resolve.
func WithLinkResolver(resolve LinkResolver) Option {
	return func(c *Compiler) {
		c.cfg.linkResolver = resolve
	}
}
