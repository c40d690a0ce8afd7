package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-org2html/internal/config"
)

// envPrefix marks the environment variables read by the CLI.
const envPrefix = "ORG2HTML_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // ORG2HTML_CONFIG: config file name or path
	Style      string        // ORG2HTML_STYLE: style name, CSS path, or CSS
	Timeout    time.Duration // ORG2HTML_TIMEOUT: PDF generation timeout

	InputDir  string // ORG2HTML_INPUT_DIR: default input directory
	OutputDir string // ORG2HTML_OUTPUT_DIR: default output directory

	PageSize       string // ORG2HTML_PAGE_SIZE: a4, letter, legal
	Workers        int    // ORG2HTML_WORKERS: parallel workers
	HighlightStyle string // ORG2HTML_HIGHLIGHT_STYLE: chroma style, enables highlighting
	ServerAddr     string // ORG2HTML_SERVER_ADDR: serve listen address
}

// knownEnvVars lists valid ORG2HTML_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"ORG2HTML_CONFIG":          true,
	"ORG2HTML_STYLE":           true,
	"ORG2HTML_TIMEOUT":         true,
	"ORG2HTML_INPUT_DIR":       true,
	"ORG2HTML_OUTPUT_DIR":      true,
	"ORG2HTML_PAGE_SIZE":       true,
	"ORG2HTML_WORKERS":         true,
	"ORG2HTML_HIGHLIGHT_STYLE": true,
	"ORG2HTML_SERVER_ADDR":     true,
	"ORG2HTML_CONTAINER":       true, // read by doctor
}

// loadEnvConfig reads configuration from environment variables.
// Malformed timeout and worker values are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:     os.Getenv("ORG2HTML_CONFIG"),
		Style:          os.Getenv("ORG2HTML_STYLE"),
		InputDir:       os.Getenv("ORG2HTML_INPUT_DIR"),
		OutputDir:      os.Getenv("ORG2HTML_OUTPUT_DIR"),
		PageSize:       os.Getenv("ORG2HTML_PAGE_SIZE"),
		HighlightStyle: os.Getenv("ORG2HTML_HIGHLIGHT_STYLE"),
		ServerAddr:     os.Getenv("ORG2HTML_SERVER_ADDR"),
	}

	if timeout := os.Getenv("ORG2HTML_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := os.Getenv("ORG2HTML_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized ORG2HTML_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overlays environment values on a loaded config.
// Precedence is CLI flags > env vars > config file > defaults; flags are
// applied afterwards by the command.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" {
		cfg.Style = env.Style
	}
	if env.Timeout > 0 {
		cfg.PDF.Timeout = env.Timeout.String()
	}
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.PageSize != "" {
		cfg.PDF.Page.Size = env.PageSize
	}
	if env.HighlightStyle != "" {
		cfg.Highlight.Enabled = true
		cfg.Highlight.Style = env.HighlightStyle
	}
	if env.ServerAddr != "" {
		cfg.Server.Addr = env.ServerAddr
	}
}

// loadEffectiveConfig loads the named config file (flag, then
// ORG2HTML_CONFIG) and applies environment overrides. No name means
// defaults plus environment.
func loadEffectiveConfig(flagConfig string, env *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	applyEnvConfig(env, cfg)
	return cfg, nil
}
