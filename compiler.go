package spellbook

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-spellbook/internal/assets"
	"github.com/alnah/go-spellbook/internal/diag"
	"github.com/alnah/go-spellbook/internal/frontmatter"
	"github.com/alnah/go-spellbook/internal/pipeline"
	"github.com/alnah/go-spellbook/internal/scan"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)
	_ TemplateLoader         = (*assets.Resolver)(nil)
	_ TemplateLoader         = (*assets.EmbeddedLoader)(nil)
)

// Compiler turns extended markdown documents into HTML fragments.
// Create with NewCompiler(); a Compiler holds only immutable configuration
// and is safe for concurrent use.
type Compiler struct {
	cfg      compilerConfig
	registry *Registry
	renderer *pipeline.Renderer
	logger   *slog.Logger
}

// defaultCompiler backs the package-level Compile.
var defaultCompiler = mustDefaultCompiler()

func mustDefaultCompiler() *Compiler {
	c, err := NewCompiler()
	if err != nil {
		panic("spellbook: creating default compiler: " + err.Error())
	}
	return c
}

// NewCompiler creates a Compiler.
// Use options to customize behavior (e.g., WithRegistry, WithLogger,
// WithAssetPath). Returns error if templates cannot be loaded or an option
// value is invalid.
func NewCompiler(opts ...Option) (*Compiler, error) {
	c := &Compiler{}
	for _, opt := range opts {
		opt(c)
	}

	c.logger = c.cfg.logger
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}

	c.registry = c.cfg.registry
	if c.registry == nil {
		c.registry = defaultRegistry
	}

	// Handle WithAssetPath: resolve to a template loader
	if c.cfg.loader == nil && c.cfg.assetPath != "" {
		loader, err := NewTemplateLoader(c.cfg.assetPath)
		if err != nil {
			return nil, err
		}
		c.cfg.loader = loader
	}

	// Custom templates replace the built-ins in a private copy of the registry
	if c.cfg.loader != nil {
		c.registry = c.registry.Clone()
		if err := registerBuiltins(c.registry, c.cfg.loader); err != nil {
			return nil, err
		}
	}

	if s := c.cfg.highlightStyle; s != "" {
		if _, ok := styles.Registry[s]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidHighlightStyle, s)
		}
	}

	conv := pipeline.NewGoldmarkConverter(pipeline.MarkdownOptions{
		HardWraps:      c.cfg.hardWraps,
		HighlightStyle: c.cfg.highlightStyle,
		LineNumbers:    c.cfg.lineNumbers,
	})
	c.renderer = pipeline.NewRenderer(c.registry, conv, c.logger)

	return c, nil
}

// Registry returns the registry the compiler dispatches to.
func (c *Compiler) Registry() *Registry {
	return c.registry
}

// Compile runs the full pipeline on one document.
//
// Problems in the document are reported in Result.Diagnostics and never stop
// the compile; the only input error is ErrFrontmatter.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Compiler) Compile(markdown string) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()

	start := time.Now()
	src, reserved := pipeline.StripReserved(pipeline.NormalizeLineEndings(markdown))

	// Split frontmatter; body lines keep their source numbering
	fm, err := frontmatter.Parse(src, frontmatter.Options{DateLayouts: c.cfg.dateLayouts})
	if err != nil {
		return nil, err
	}
	var diags diag.List
	diags.Add(reserved...)
	diags.Add(fm.Diagnostics...)

	nodes, scanDiags := scan.Scan(fm.Body, scan.Options{
		MaxDepth:    c.cfg.maxDepth,
		FirstLine:   fm.BodyLine,
		IsComponent: c.registry.Has,
	})
	diags.Add(scanDiags...)

	// Render blocks bottom-up, then the document markdown around them
	out, err := c.renderer.Render(fm.Body, nodes)
	if err != nil {
		return nil, fmt.Errorf("rendering document: %w", err)
	}
	diags.Add(out.Diagnostics...)

	htmlContent := out.HTML
	if c.cfg.linkResolver != nil {
		htmlContent, err = pipeline.RewriteLinks(htmlContent, c.cfg.linkResolver)
		if err != nil {
			return nil, fmt.Errorf("rewriting links: %w", err)
		}
	}

	words := pipeline.WordCount(htmlContent)
	result = &Result{
		HTML:        htmlContent,
		Frontmatter: fm.Meta,
		Outline:     out.Outline,
		Diagnostics: diags.Items(),
		Nodes:       nodes,
		WordCount:   words,
		ReadingTime: pipeline.ReadingMinutes(words),
		Blocks:      out.Blocks,
	}

	c.logger.Debug("compiled document",
		"blocks", result.Blocks,
		"diagnostics", len(result.Diagnostics),
		"words", words,
		"duration", time.Since(start))

	return result, nil
}

// Compile compiles markdown with the default registry and options.
func Compile(markdown string) (*Result, error) {
	return defaultCompiler.Compile(markdown)
}
