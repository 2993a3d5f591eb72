package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-spellbook/internal/dateutil"
	"github.com/alnah/go-spellbook/internal/toc"
	"github.com/alnah/go-spellbook/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")

	// ErrUnknownHighlightStyle is wrapped together with ErrInvalidValue.
	ErrUnknownHighlightStyle = errors.New("unknown highlight style")
)

// DefaultName is the config name looked up when none is given.
const DefaultName = "spellbook"

// Field limits.
const (
	MaxPathLength       = 4096
	MaxURLPrefixLength  = 2048
	MaxStyleLength      = 50
	MaxIndexNames       = 10
	MaxIndexNameLength  = 100
	MaxDateLayouts      = 20
	MaxDateLayoutLength = 100
	MaxWorkers          = 64
	MaxNestingDepth     = 256
)

// Config holds all configuration for a build.
type Config struct {
	Input       InputConfig       `yaml:"input"`
	Output      OutputConfig      `yaml:"output"`
	Assets      AssetsConfig      `yaml:"assets"`
	Markdown    MarkdownConfig    `yaml:"markdown"`
	Frontmatter FrontmatterConfig `yaml:"frontmatter"`
	TOC         TOCConfig         `yaml:"toc"`
	Build       BuildConfig       `yaml:"build"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default source directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = must specify)
}

// AssetsConfig defines component template loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded templates
}

// MarkdownConfig defines markdown rendering options.
type MarkdownConfig struct {
	HardWraps      bool   `yaml:"hardWraps"`
	HighlightStyle string `yaml:"highlightStyle"` // chroma style name (empty = CSS classes)
	LineNumbers    bool   `yaml:"lineNumbers"`
	MaxDepth       int    `yaml:"maxDepth"` // block nesting cap (0 = default)
}

// FrontmatterConfig defines frontmatter decoding options.
type FrontmatterConfig struct {
	DateLayouts []string `yaml:"dateLayouts"` // presets or token formats tried after ISO forms
}

// TOCConfig defines navigation tree options.
type TOCConfig struct {
	Order      string   `yaml:"order"`      // "dirs-first" (default) or "pages-first"
	IndexNames []string `yaml:"indexNames"` // default ["index"]
	URLPrefix  string   `yaml:"urlPrefix"`  // default "/"
}

// BuildConfig defines batch build options.
type BuildConfig struct {
	Workers      int  `yaml:"workers"`      // 0 = GOMAXPROCS
	Strict       bool `yaml:"strict"`       // fail on error diagnostics
	RewriteLinks bool `yaml:"rewriteLinks"` // map links between sources to output URLs
}

// DateLayouts resolves frontmatter.dateLayouts to Go time layouts. Entries
// are presets ("iso", "european", "us", "long") or token formats such as
// "DD/MM/YYYY"; text without tokens passes through unchanged.
func (c *Config) DateLayouts() ([]string, error) {
	layouts := make([]string, 0, len(c.Frontmatter.DateLayouts))
	for i, format := range c.Frontmatter.DateLayouts {
		layout, err := dateutil.Layout(format)
		if err != nil {
			return nil, fmt.Errorf("%w: frontmatter.dateLayouts[%d]: %v", ErrInvalidValue, i, err)
		}
		layouts = append(layouts, layout)
	}
	return layouts, nil
}

// TOCOrder returns the parsed sibling order. Validate rejects unknown values.
func (c *Config) TOCOrder() toc.Order {
	o, _ := toc.ParseOrder(c.TOC.Order)
	return o
}

// Validate checks field values and lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	// Validate paths
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	// Validate markdown fields
	if err := validateFieldLength("markdown.highlightStyle", c.Markdown.HighlightStyle, MaxStyleLength); err != nil {
		return err
	}
	if s := c.Markdown.HighlightStyle; s != "" {
		if _, ok := styles.Registry[s]; !ok {
			return fmt.Errorf("%w: markdown.highlightStyle: %w %q", ErrInvalidValue, ErrUnknownHighlightStyle, s)
		}
	}
	if c.Markdown.MaxDepth < 0 || c.Markdown.MaxDepth > MaxNestingDepth {
		return fmt.Errorf("%w: markdown.maxDepth: must be between 0 and %d, got %d", ErrInvalidValue, MaxNestingDepth, c.Markdown.MaxDepth)
	}

	// Validate frontmatter fields
	if len(c.Frontmatter.DateLayouts) > MaxDateLayouts {
		return fmt.Errorf("%w: frontmatter.dateLayouts: at most %d layouts, got %d", ErrInvalidValue, MaxDateLayouts, len(c.Frontmatter.DateLayouts))
	}
	for i, layout := range c.Frontmatter.DateLayouts {
		if err := validateFieldLength(fmt.Sprintf("frontmatter.dateLayouts[%d]", i), layout, MaxDateLayoutLength); err != nil {
			return err
		}
	}
	if _, err := c.DateLayouts(); err != nil {
		return err
	}

	// Validate TOC fields
	if c.TOC.Order != "" {
		if _, ok := toc.ParseOrder(c.TOC.Order); !ok {
			return fmt.Errorf("%w: toc.order: %q (must be dirs-first or pages-first)", ErrInvalidValue, c.TOC.Order)
		}
	}
	if len(c.TOC.IndexNames) > MaxIndexNames {
		return fmt.Errorf("%w: toc.indexNames: at most %d names, got %d", ErrInvalidValue, MaxIndexNames, len(c.TOC.IndexNames))
	}
	for i, name := range c.TOC.IndexNames {
		field := fmt.Sprintf("toc.indexNames[%d]", i)
		if err := validateFieldLength(field, name, MaxIndexNameLength); err != nil {
			return err
		}
		if name == "" || strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("%w: %s: %q must be a bare file name", ErrInvalidValue, field, name)
		}
	}
	if err := validateFieldLength("toc.urlPrefix", c.TOC.URLPrefix, MaxURLPrefixLength); err != nil {
		return err
	}

	// Validate build fields
	if c.Build.Workers < 0 || c.Build.Workers > MaxWorkers {
		return fmt.Errorf("%w: build.workers: must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Build.Workers)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	return &Config{
		TOC: TOCConfig{Order: toc.DirsFirst.String()},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// SearchPaths returns the candidate files for a config name, in lookup order.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-spellbook/
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-spellbook", name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file of SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
