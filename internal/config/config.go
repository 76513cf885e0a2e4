package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-docnav/internal/fileutil"
	"github.com/alnah/go-docnav/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidValue    = errors.New("invalid config value")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Limits for config values.
const (
	MinLevel         = 1
	MaxLevel         = 6  // deepest Markdown header
	MaxWorkers       = 64 // files are small; more workers only add contention
	MaxMarkerLength  = 32 // "**", "<mark>", "\textbf{"
	MaxDialectLength = 16
)

// AppDirName is the directory under the user config dir searched for named configs.
const AppDirName = "go-docnav"

// Config holds settings shared by all docnav commands.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Nav      NavConfig      `yaml:"nav"`
	Annotate AnnotateConfig `yaml:"annotate"`
	Workers  int            `yaml:"workers"` // 0 = auto
}

// InputConfig controls header extraction.
type InputConfig struct {
	Dialect  string `yaml:"dialect"`  // "markdown", "latex", "slide"; empty = from extension
	MaxLevel int    `yaml:"maxLevel"` // 1-6 (default: 3)
	AST      bool   `yaml:"ast"`      // CommonMark-aware Markdown extraction
	Validate *bool  `yaml:"validate"` // nil = true
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format string `yaml:"format"` // "list", "headers", "cfile" (default: "list")
	Color  string `yaml:"color"`  // "auto", "always", "never" (default: "auto")
	Style  string `yaml:"style"`  // chroma style name (default: "monokai")
}

// NavConfig controls navigation rendering.
type NavConfig struct {
	Open  string `yaml:"open"`  // default "**"
	Close string `yaml:"close"` // default "**"
}

// AnnotateConfig controls navigation block insertion.
type AnnotateConfig struct {
	Depth     int    `yaml:"depth"`     // 0 = maxLevel
	Formatter string `yaml:"formatter"` // "none", "prettier", "pandoc"
}

// ShouldValidate reports whether structure validation is enabled.
func (c InputConfig) ShouldValidate() bool {
	return c.Validate == nil || *c.Validate
}

// Validate checks value ranges and enumerations.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if c.Input.MaxLevel != 0 && (c.Input.MaxLevel < MinLevel || c.Input.MaxLevel > MaxLevel) {
		return fmt.Errorf("%w: input.maxLevel must be between %d and %d, got %d",
			ErrInvalidValue, MinLevel, MaxLevel, c.Input.MaxLevel)
	}
	if err := validateFieldLength("input.dialect", c.Input.Dialect, MaxDialectLength); err != nil {
		return err
	}
	if err := validateEnum("input.dialect", c.Input.Dialect, "markdown", "latex", "slide"); err != nil {
		return err
	}

	if err := validateEnum("output.format", c.Output.Format, "list", "headers", "cfile"); err != nil {
		return err
	}
	if err := validateEnum("output.color", c.Output.Color, "auto", "always", "never"); err != nil {
		return err
	}

	if err := validateFieldLength("nav.open", c.Nav.Open, MaxMarkerLength); err != nil {
		return err
	}
	if err := validateFieldLength("nav.close", c.Nav.Close, MaxMarkerLength); err != nil {
		return err
	}

	if c.Annotate.Depth < 0 || c.Annotate.Depth > MaxLevel {
		return fmt.Errorf("%w: annotate.depth must be between 0 and %d, got %d",
			ErrInvalidValue, MaxLevel, c.Annotate.Depth)
	}
	if err := validateEnum("annotate.formatter", c.Annotate.Formatter, "none", "prettier", "pandoc"); err != nil {
		return err
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
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

// validateEnum accepts the empty string (unset) or one of allowed, case-insensitively.
func validateEnum(fieldName, value string, allowed ...string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %q (must be %s)", ErrInvalidValue, fieldName, value, strings.Join(allowed, ", "))
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Input:    InputConfig{MaxLevel: 3},
		Output:   OutputConfig{Format: "list", Color: "auto", Style: "monokai"},
		Nav:      NavConfig{Open: "**", Close: "**"},
		Annotate: AnnotateConfig{Formatter: "none"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Values missing from the file keep their defaults.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
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

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-docnav/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, AppDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
