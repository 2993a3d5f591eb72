package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	spellbook "github.com/alnah/go-spellbook"
	"github.com/alnah/go-spellbook/internal/config"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// session is the resolved state a command runs with.
type session struct {
	cfg    *config.Config
	flags  *cliFlags
	logger *slog.Logger
	env    *Environment
}

// newSession loads configuration and merges flags into it.
// Precedence: CLI flags > config file > env vars > defaults.
func newSession(f *cliFlags, env *Environment) (*session, error) {
	// Validate worker count early
	if err := validateWorkers(f.workers); err != nil {
		return nil, err
	}

	warnUnknownEnvVars(env.Stderr, env.Environ())

	cfg, err := loadConfig(f.common.config, loadEnvConfig(env.Getenv))
	if err != nil {
		return nil, err
	}

	mergeFlags(f, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &session{
		cfg:    cfg,
		flags:  f,
		logger: newLogger(env.Stderr, f.common.verbose, f.common.quiet),
		env:    env,
	}, nil
}

// loadConfig loads the config named by the flag or SPELLBOOK_CONFIG. With
// neither set, a missing default "spellbook" config is not an error.
func loadConfig(flagConfig string, envCfg *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}
	explicit := name != ""
	if !explicit {
		name = config.DefaultName
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if explicit || !errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = config.DefaultConfig()
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(f *cliFlags, cfg *config.Config) {
	if f.workers != 0 {
		cfg.Build.Workers = f.workers
	}
	if f.strict {
		cfg.Build.Strict = true
	}
	if f.rewriteLinks {
		cfg.Build.RewriteLinks = true
	}
	if f.assetPath != "" {
		cfg.Assets.BasePath = f.assetPath
	}

	// Markdown flags
	if f.markdown.highlightStyle != "" {
		cfg.Markdown.HighlightStyle = f.markdown.highlightStyle
	}
	if f.markdown.hardWraps {
		cfg.Markdown.HardWraps = true
	}
	if f.markdown.lineNumbers {
		cfg.Markdown.LineNumbers = true
	}
	if f.markdown.maxDepth != 0 {
		cfg.Markdown.MaxDepth = f.markdown.maxDepth
	}

	// TOC flags
	if f.toc.order != "" {
		cfg.TOC.Order = f.toc.order
	}
	if len(f.toc.indexNames) > 0 {
		cfg.TOC.IndexNames = f.toc.indexNames
	}
	if f.toc.urlPrefix != "" {
		cfg.TOC.URLPrefix = f.toc.urlPrefix
	}
}

// newLogger returns the CLI logger: debug with --verbose, nothing with
// --quiet, warnings otherwise.
func newLogger(w io.Writer, verbose, quiet bool) *slog.Logger {
	switch {
	case verbose:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case quiet:
		return slog.New(slog.DiscardHandler)
	default:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
}

// compilerOptions translates the config into compiler options. Template
// loading is left out so per-document compilers can share one registry.
func (s *session) compilerOptions() []spellbook.Option {
	md := s.cfg.Markdown
	opts := []spellbook.Option{spellbook.WithLogger(s.logger)}

	if md.HighlightStyle != "" {
		opts = append(opts, spellbook.WithHighlightStyle(md.HighlightStyle))
	}
	if md.HardWraps {
		opts = append(opts, spellbook.WithHardWraps())
	}
	if md.LineNumbers {
		opts = append(opts, spellbook.WithLineNumbers())
	}
	if md.MaxDepth > 0 {
		opts = append(opts, spellbook.WithMaxDepth(md.MaxDepth))
	}
	// Formats were checked by Validate in newSession
	if layouts, err := s.cfg.DateLayouts(); err == nil && len(layouts) > 0 {
		opts = append(opts, spellbook.WithDateLayouts(layouts...))
	}
	return opts
}

// newCompiler creates the compiler for this session, loading custom
// component templates when an asset directory is configured.
func (s *session) newCompiler() (*spellbook.Compiler, error) {
	opts := s.compilerOptions()
	if p := s.cfg.Assets.BasePath; p != "" {
		opts = append(opts, spellbook.WithAssetPath(p))
	}
	return spellbook.NewCompiler(opts...)
}

// tocOptions translates the config into BuildTOC options.
func (s *session) tocOptions() []spellbook.TOCOption {
	opts := []spellbook.TOCOption{spellbook.WithTOCOrder(s.cfg.TOCOrder())}
	if len(s.cfg.TOC.IndexNames) > 0 {
		opts = append(opts, spellbook.WithIndexNames(s.cfg.TOC.IndexNames...))
	}
	if s.cfg.TOC.URLPrefix != "" {
		opts = append(opts, spellbook.WithURLPrefix(s.cfg.TOC.URLPrefix))
	}
	return opts
}

// workers returns the number of documents compiled at once.
// Priority: flag/config value > GOMAXPROCS (adjusted by automaxprocs for containers).
func (s *session) workers() int {
	if n := s.cfg.Build.Workers; n > 0 {
		return n
	}
	return max(1, runtime.GOMAXPROCS(0))
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}
