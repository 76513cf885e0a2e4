package main

import (
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	docnav "github.com/alnah/go-docnav"
	"github.com/alnah/go-docnav/internal/config"
	"github.com/alnah/go-docnav/internal/highlight"
)

// settings is the effective configuration of one invocation, after
// defaults, config file, environment, and flags have been merged.
type settings struct {
	dialect   docnav.Dialect // empty = infer from each file's extension
	maxLevel  int
	ast       bool
	validate  bool
	format    docnav.OutputFormat
	color     string
	style     string
	markers   docnav.Markers
	depth     int
	formatter string
	workers   int
	quiet     bool
	verbose   bool

	cfg *config.Config // merged config, reported by doctor
}

// loadSettings resolves settings for a parsed command line.
// Precedence: CLI flags > env vars > config file > defaults.
func loadSettings(f *cliFlags, fs *flag.FlagSet, env *Environment) (*settings, error) {
	envCfg := loadEnvConfig(env.Getenv)

	cfg := config.DefaultConfig()
	configName := f.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(f, fs, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return newSettings(cfg, f)
}

// mergeFlags merges explicitly set CLI flags into config. CLI values override config values.
func mergeFlags(f *cliFlags, fs *flag.FlagSet, cfg *config.Config) {
	changed := func(name string) bool {
		fl := fs.Lookup(name)
		return fl != nil && fl.Changed
	}

	if changed("dialect") {
		cfg.Input.Dialect = f.input.dialect
	}
	if changed("max-level") {
		cfg.Input.MaxLevel = f.input.maxLevel
	}
	if changed("ast") {
		cfg.Input.AST = f.input.ast
	}
	if changed("no-validate") {
		validate := !f.input.noValidate
		cfg.Input.Validate = &validate
	}
	if changed("format") {
		cfg.Output.Format = f.output.format
	}
	if changed("color") {
		cfg.Output.Color = f.output.color
	}
	if changed("style") {
		cfg.Output.Style = f.output.style
	}
	if changed("open") {
		cfg.Nav.Open = f.nav.open
	}
	if changed("close") {
		cfg.Nav.Close = f.nav.close
	}
	if changed("depth") {
		cfg.Annotate.Depth = f.annotate.depth
	}
	if changed("formatter") {
		cfg.Annotate.Formatter = f.annotate.formatter
	}
	if changed("workers") {
		cfg.Workers = f.common.workers
	}
}

// newSettings converts a validated config into typed settings.
func newSettings(cfg *config.Config, f *cliFlags) (*settings, error) {
	s := &settings{
		maxLevel:  cfg.Input.MaxLevel,
		ast:       cfg.Input.AST,
		validate:  cfg.Input.ShouldValidate(),
		color:     strings.ToLower(cfg.Output.Color),
		style:     cfg.Output.Style,
		markers:   docnav.Markers{Open: cfg.Nav.Open, Close: cfg.Nav.Close},
		depth:     cfg.Annotate.Depth,
		formatter: strings.ToLower(cfg.Annotate.Formatter),
		workers:   cfg.Workers,
		quiet:     f.common.quiet,
		verbose:   f.common.verbose,
		cfg:       cfg,
	}

	if s.maxLevel == 0 {
		s.maxLevel = docnav.DefaultMaxLevel
	}
	if s.style == "" {
		s.style = highlight.DefaultStyle
	}

	if cfg.Input.Dialect != "" {
		d, err := docnav.ParseDialect(cfg.Input.Dialect)
		if err != nil {
			return nil, err
		}
		s.dialect = d
	}

	format := cfg.Output.Format
	if format == "" {
		format = string(docnav.FormatList)
	}
	of, err := docnav.ParseOutputFormat(format)
	if err != nil {
		return nil, err
	}
	s.format = of

	return s, nil
}

// dialectFor returns the configured dialect or infers it from path.
func (s *settings) dialectFor(path string) (docnav.Dialect, error) {
	if s.dialect != "" {
		return s.dialect, nil
	}
	if path == stdinPath {
		return "", fmt.Errorf("%w: reading from stdin requires --dialect", docnav.ErrUnknownDialect)
	}
	return docnav.DialectForPath(path)
}
