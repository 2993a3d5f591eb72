package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-spellbook/internal/config"
)

// envPrefix starts every variable the CLI reads.
const envPrefix = "SPELLBOOK_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath     string // SPELLBOOK_CONFIG: config file name or path
	InputDir       string // SPELLBOOK_INPUT_DIR: default source directory
	OutputDir      string // SPELLBOOK_OUTPUT_DIR: default output directory
	Assets         string // SPELLBOOK_ASSETS: component template directory
	HighlightStyle string // SPELLBOOK_HIGHLIGHT_STYLE: chroma style name
	URLPrefix      string // SPELLBOOK_URL_PREFIX: navigation URL prefix
	Workers        int    // SPELLBOOK_WORKERS: parallel workers
}

// knownEnvVars lists valid SPELLBOOK_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"SPELLBOOK_CONFIG":          true,
	"SPELLBOOK_INPUT_DIR":       true,
	"SPELLBOOK_OUTPUT_DIR":      true,
	"SPELLBOOK_ASSETS":          true,
	"SPELLBOOK_HIGHLIGHT_STYLE": true,
	"SPELLBOOK_URL_PREFIX":      true,
	"SPELLBOOK_WORKERS":         true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath:     getenv("SPELLBOOK_CONFIG"),
		InputDir:       getenv("SPELLBOOK_INPUT_DIR"),
		OutputDir:      getenv("SPELLBOOK_OUTPUT_DIR"),
		Assets:         getenv("SPELLBOOK_ASSETS"),
		HighlightStyle: getenv("SPELLBOOK_HIGHLIGHT_STYLE"),
		URLPrefix:      getenv("SPELLBOOK_URL_PREFIX"),
	}

	// Invalid or non-positive values are ignored
	if workers := getenv("SPELLBOOK_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars writes warnings for unrecognized SPELLBOOK_* variables.
// Helps catch typos like SPELLBOOK_WORKER instead of SPELLBOOK_WORKERS.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if strings.HasPrefix(env, envPrefix) {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig fills config values left empty by the config file.
// Precedence: CLI flags > config file > env vars > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Assets != "" && cfg.Assets.BasePath == "" {
		cfg.Assets.BasePath = env.Assets
	}
	if env.HighlightStyle != "" && cfg.Markdown.HighlightStyle == "" {
		cfg.Markdown.HighlightStyle = env.HighlightStyle
	}
	if env.URLPrefix != "" && cfg.TOC.URLPrefix == "" {
		cfg.TOC.URLPrefix = env.URLPrefix
	}
	if env.Workers > 0 && cfg.Build.Workers == 0 {
		cfg.Build.Workers = env.Workers
	}
}
