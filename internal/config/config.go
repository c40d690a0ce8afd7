package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-org2html/internal/yamlutil"
)

// AppName names the per-user config directory.
const AppName = "go-org2html"

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength        = 4096
	MaxTitleLength       = 200
	MaxStyleLength       = 4096 // a name, a path, or inline CSS
	MaxSeparatorLength   = 16
	MaxStyleNameLength   = 50 // chroma style names
	MaxPageSizeLength    = 10 // "letter", "a4", "legal"
	MaxOrientationLength = 10 // "portrait", "landscape"
	MaxDurationLength    = 20
	MaxAddrLength        = 255
)

// MaxBaseHeadingLevel bounds html.baseHeadingLevel. Deeper bases would
// only produce h7+ tags for every heading.
const MaxBaseHeadingLevel = 6

// Config holds all configuration for the CLI and the HTTP server.
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	HTML      HTMLConfig      `yaml:"html"`
	Style     string          `yaml:"style"` // style name, CSS file path, or inline CSS (empty = default)
	Highlight HighlightConfig `yaml:"highlight"`
	Assets    AssetsConfig    `yaml:"assets"`
	PDF       PDFConfig       `yaml:"pdf"`
	Server    ServerConfig    `yaml:"server"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// HTMLConfig defines parsing and rendering options.
type HTMLConfig struct {
	BaseHeadingLevel int    `yaml:"baseHeadingLevel"` // depth of a "*" heading (0 = 1)
	Separator        string `yaml:"separator"`        // inserted between sibling elements
	Standalone       bool   `yaml:"standalone"`       // wrap in a complete HTML5 page
	Title            string `yaml:"title"`            // page title (empty = first heading)
	MaxDepth         int    `yaml:"maxDepth"`         // nesting limit (0 = library default, <0 = none)
}

// HighlightConfig defines code block highlighting.
type HighlightConfig struct {
	Enabled bool   `yaml:"enabled"`
	Style   string `yaml:"style"` // chroma style name (empty = "github")
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// PDFConfig defines PDF output.
type PDFConfig struct {
	Enabled bool       `yaml:"enabled"`
	Page    PageConfig `yaml:"page"`
	Timeout string     `yaml:"timeout"` // Go duration, e.g. "30s" (empty = library default)
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal" (default: "letter")
	Orientation string  `yaml:"orientation"` // "portrait", "landscape" (default: "portrait")
	Margin      float64 `yaml:"margin"`      // inches (default: 0.5)
	PageNumbers bool    `yaml:"pageNumbers"` // print "n/total" in the footer
}

// ServerConfig defines the HTTP server.
type ServerConfig struct {
	Addr         string `yaml:"addr"`         // listen address (default ":8080")
	MaxBodyBytes int64  `yaml:"maxBodyBytes"` // request body limit (0 = server default)
}

// Validate checks field lengths and value ranges. Called automatically by
// LoadConfig, but available for callers that build a Config by hand.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"html.separator", c.HTML.Separator, MaxSeparatorLength},
		{"html.title", c.HTML.Title, MaxTitleLength},
		{"style", c.Style, MaxStyleLength},
		{"highlight.style", c.Highlight.Style, MaxStyleNameLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"pdf.page.size", c.PDF.Page.Size, MaxPageSizeLength},
		{"pdf.page.orientation", c.PDF.Page.Orientation, MaxOrientationLength},
		{"pdf.timeout", c.PDF.Timeout, MaxDurationLength},
		{"server.addr", c.Server.Addr, MaxAddrLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.HTML.BaseHeadingLevel < 0 || c.HTML.BaseHeadingLevel > MaxBaseHeadingLevel {
		return fmt.Errorf("%w: html.baseHeadingLevel must be between 1 and %d, got %d",
			ErrInvalidValue, MaxBaseHeadingLevel, c.HTML.BaseHeadingLevel)
	}
	if c.PDF.Page.Margin < 0 {
		return fmt.Errorf("%w: pdf.page.margin must not be negative, got %.2f", ErrInvalidValue, c.PDF.Page.Margin)
	}
	if _, err := c.PDF.TimeoutDuration(); err != nil {
		return err
	}
	if c.Server.MaxBodyBytes < 0 {
		return fmt.Errorf("%w: server.maxBodyBytes must not be negative, got %d", ErrInvalidValue, c.Server.MaxBodyBytes)
	}

	return nil
}

// TimeoutDuration parses Timeout. An empty value yields zero.
func (p PDFConfig) TimeoutDuration() (time.Duration, error) {
	if p.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(p.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: pdf.timeout: %v", ErrInvalidValue, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: pdf.timeout must be positive, got %s", ErrInvalidValue, p.Timeout)
	}
	return d, nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: HTML fragments, no
// highlighting, no PDF.
func DefaultConfig() *Config {
	return &Config{}
}

// Dump renders c as YAML in the same shape LoadConfig accepts.
func (c *Config) Dump() ([]byte, error) {
	return yamlutil.Marshal(c)
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

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// SearchPaths lists, in lookup order, where a config named name is looked
// for: the current directory, then the user config directory, each with
// .yaml then .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, AppName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing entry of SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileExists(p) {
			return p, nil
		}
	}
	return "", &NotFoundError{Name: name, Tried: paths}
}

// NotFoundError reports a config name that matched no search path.
type NotFoundError struct {
	Name  string
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: tried %s", ErrConfigNotFound, strings.Join(e.Tried, ", "))
}

func (e *NotFoundError) Unwrap() error {
	return ErrConfigNotFound
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
