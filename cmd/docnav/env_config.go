package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-docnav/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // DOCNAV_CONFIG: config file name or path
	Dialect    string // DOCNAV_DIALECT: markdown, latex, slide
	MaxLevel   int    // DOCNAV_MAX_LEVEL: deepest extracted level
	Format     string // DOCNAV_FORMAT: list, headers, cfile
	Color      string // DOCNAV_COLOR: auto, always, never
	Formatter  string // DOCNAV_FORMATTER: none, prettier, pandoc
	Workers    int    // DOCNAV_WORKERS: parallel workers
}

// knownEnvVars lists valid DOCNAV_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"DOCNAV_CONFIG":    true,
	"DOCNAV_DIALECT":   true,
	"DOCNAV_MAX_LEVEL": true,
	"DOCNAV_FORMAT":    true,
	"DOCNAV_COLOR":     true,
	"DOCNAV_FORMATTER": true,
	"DOCNAV_WORKERS":   true,
}

// loadEnvConfig reads configuration from environment variables.
// Unparseable numbers are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("DOCNAV_CONFIG"),
		Dialect:    getenv("DOCNAV_DIALECT"),
		Format:     getenv("DOCNAV_FORMAT"),
		Color:      getenv("DOCNAV_COLOR"),
		Formatter:  getenv("DOCNAV_FORMATTER"),
	}

	if v := getenv("DOCNAV_MAX_LEVEL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxLevel = n
		}
	}
	if v := getenv("DOCNAV_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Workers = n
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized DOCNAV_* variables.
// Helps catch typos like DOCNAV_DIALET.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, "DOCNAV_") {
			continue
		}
		name := strings.SplitN(kv, "=", 2)[0]
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overlays environment values on cfg.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Dialect != "" {
		cfg.Input.Dialect = env.Dialect
	}
	if env.MaxLevel != 0 {
		cfg.Input.MaxLevel = env.MaxLevel
	}
	if env.Format != "" {
		cfg.Output.Format = env.Format
	}
	if env.Color != "" {
		cfg.Output.Color = env.Color
	}
	if env.Formatter != "" {
		cfg.Annotate.Formatter = env.Formatter
	}
	if env.Workers != 0 {
		cfg.Workers = env.Workers
	}
}
