package org2html

import "time"

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds the settings gathered from options.
type converterConfig struct {
	timeout time.Duration

	baseHeadingLevel int
	separator        string
	maxDepth         int

	highlight      bool
	highlightStyle string

	styleInput    string // name, file path or CSS content
	resolvedStyle string // CSS after resolution in NewConverter
	assetPath     string
}

// defaultTimeout bounds PDF page loading when the context has no deadline.
const defaultTimeout = 30 * time.Second

// WithBaseHeadingLevel sets the HTML level of a single-star heading. The
// default is 1; NewConverter rejects values below 1 with
// ErrInvalidHeadingLevel.
func WithBaseHeadingLevel(n int) Option {
	return func(c *Converter) {
		c.cfg.baseHeadingLevel = n
	}
}

// WithChildSeparator sets the string placed between sibling elements in the
// output. The default is empty.
func WithChildSeparator(sep string) Option {
	return func(c *Converter) {
		c.cfg.separator = sep
	}
}

// WithMaxDepth bounds document nesting. Zero keeps the default of 512; a
// negative value removes the limit.
func WithMaxDepth(n int) Option {
	return func(c *Converter) {
		c.cfg.maxDepth = n
	}
}

// WithHighlighting enables chroma syntax highlighting of source blocks that
// name a language. An empty style selects "github". Standalone pages embed
// the style's stylesheet.
func WithHighlighting(style string) Option {
	return func(c *Converter) {
		c.cfg.highlight = true
		c.cfg.highlightStyle = style
	}
}

// WithStyle sets the stylesheet for standalone pages: a built-in or asset
// directory style name ("default", "minimal"), a path to a CSS file, or CSS
// content.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithAssetPath adds a directory of custom styles and templates, consulted
// before the built-in ones.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("org2html: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}
