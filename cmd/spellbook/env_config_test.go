package main

// Notes:
// - loadEnvConfig: we test every SPELLBOOK_* variable. Invalid and
//   non-positive worker counts are ignored, not errors.
// - warnUnknownEnvVars: we test typo detection and that known vars don't warn.
// - applyEnvConfig: we test priority behavior (env doesn't override config).
// - The environment is injected through a getenv func, so tests run in parallel.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-spellbook/internal/config"
)

func mapGetenv(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("all variables", func(t *testing.T) {
		t.Parallel()

		cfg := loadEnvConfig(mapGetenv(map[string]string{
			"SPELLBOOK_CONFIG":          "/path/to/config.yaml",
			"SPELLBOOK_INPUT_DIR":       "/input",
			"SPELLBOOK_OUTPUT_DIR":      "/output",
			"SPELLBOOK_ASSETS":          "/assets",
			"SPELLBOOK_HIGHLIGHT_STYLE": "monokai",
			"SPELLBOOK_URL_PREFIX":      "/docs/",
			"SPELLBOOK_WORKERS":         "4",
		}))

		want := envConfig{
			ConfigPath:     "/path/to/config.yaml",
			InputDir:       "/input",
			OutputDir:      "/output",
			Assets:         "/assets",
			HighlightStyle: "monokai",
			URLPrefix:      "/docs/",
			Workers:        4,
		}
		if *cfg != want {
			t.Errorf("loadEnvConfig() = %+v, want %+v", *cfg, want)
		}
	})

	t.Run("empty environment", func(t *testing.T) {
		t.Parallel()

		cfg := loadEnvConfig(mapGetenv(nil))
		if *cfg != (envConfig{}) {
			t.Errorf("loadEnvConfig() = %+v, want zero value", *cfg)
		}
	})

	t.Run("invalid workers ignored", func(t *testing.T) {
		t.Parallel()

		for _, v := range []string{"abc", "0", "-2", "1.5"} {
			cfg := loadEnvConfig(mapGetenv(map[string]string{"SPELLBOOK_WORKERS": v}))
			if cfg.Workers != 0 {
				t.Errorf("SPELLBOOK_WORKERS=%q: Workers = %d, want 0", v, cfg.Workers)
			}
		}
	})
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	t.Run("warns on unknown SPELLBOOK_ var", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		warnUnknownEnvVars(&buf, []string{"SPELLBOOK_WORKER=4", "HOME=/root"})

		got := buf.String()
		if !strings.Contains(got, "SPELLBOOK_WORKER") {
			t.Errorf("warning should name SPELLBOOK_WORKER, got %q", got)
		}
		if strings.Count(got, "warning:") != 1 {
			t.Errorf("want exactly one warning, got %q", got)
		}
	})

	t.Run("known vars and other prefixes are silent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		environ := []string{"PATH=/bin", "XSPELLBOOK_FOO=1"}
		for name := range knownEnvVars {
			environ = append(environ, name+"=x")
		}
		warnUnknownEnvVars(&buf, environ)

		if buf.Len() != 0 {
			t.Errorf("expected no warnings, got %q", buf.String())
		}
	})
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Priority between env and config
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	env := &envConfig{
		InputDir:       "/env/in",
		OutputDir:      "/env/out",
		Assets:         "/env/assets",
		HighlightStyle: "monokai",
		URLPrefix:      "/env/",
		Workers:        3,
	}

	t.Run("fills empty config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		applyEnvConfig(env, cfg)

		if cfg.Input.DefaultDir != "/env/in" {
			t.Errorf("Input.DefaultDir = %q, want /env/in", cfg.Input.DefaultDir)
		}
		if cfg.Output.DefaultDir != "/env/out" {
			t.Errorf("Output.DefaultDir = %q, want /env/out", cfg.Output.DefaultDir)
		}
		if cfg.Assets.BasePath != "/env/assets" {
			t.Errorf("Assets.BasePath = %q, want /env/assets", cfg.Assets.BasePath)
		}
		if cfg.Markdown.HighlightStyle != "monokai" {
			t.Errorf("Markdown.HighlightStyle = %q, want monokai", cfg.Markdown.HighlightStyle)
		}
		if cfg.TOC.URLPrefix != "/env/" {
			t.Errorf("TOC.URLPrefix = %q, want /env/", cfg.TOC.URLPrefix)
		}
		if cfg.Build.Workers != 3 {
			t.Errorf("Build.Workers = %d, want 3", cfg.Build.Workers)
		}
	})

	t.Run("config values win", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Input.DefaultDir = "/cfg/in"
		cfg.Markdown.HighlightStyle = "dracula"
		cfg.Build.Workers = 8
		applyEnvConfig(env, cfg)

		if cfg.Input.DefaultDir != "/cfg/in" {
			t.Errorf("Input.DefaultDir = %q, want /cfg/in", cfg.Input.DefaultDir)
		}
		if cfg.Markdown.HighlightStyle != "dracula" {
			t.Errorf("Markdown.HighlightStyle = %q, want dracula", cfg.Markdown.HighlightStyle)
		}
		if cfg.Build.Workers != 8 {
			t.Errorf("Build.Workers = %d, want 8", cfg.Build.Workers)
		}
	})
}
