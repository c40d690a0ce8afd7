package main

import (
	"fmt"
	"strings"

	org2html "github.com/alnah/go-org2html"
	"github.com/alnah/go-org2html/internal/config"
)

// mergeHTMLFlags copies explicitly set rendering flags into cfg.
func mergeHTMLFlags(f *htmlFlags, set map[string]bool, cfg *config.Config) {
	if set["base-level"] {
		cfg.HTML.BaseHeadingLevel = f.baseLevel
	}
	if set["separator"] {
		cfg.HTML.Separator = f.separator
	}
	if set["standalone"] {
		cfg.HTML.Standalone = f.standalone
	}
	if set["title"] {
		cfg.HTML.Title = f.title
	}
	if set["max-depth"] {
		cfg.HTML.MaxDepth = f.maxDepth
	}
}

// mergeStyleFlags copies explicitly set style flags into cfg. A highlight
// style implies highlighting.
func mergeStyleFlags(f *styleFlags, set map[string]bool, cfg *config.Config) {
	if set["style"] {
		cfg.Style = f.style
	}
	if set["asset-path"] {
		cfg.Assets.BasePath = f.assetPath
	}
	if set["highlight"] {
		cfg.Highlight.Enabled = f.highlight
	}
	if set["highlight-style"] {
		cfg.Highlight.Style = f.highlightStyle
		cfg.Highlight.Enabled = true
	}
}

// mergeConvertFlags merges CLI flags into config. CLI values override config values.
func mergeConvertFlags(f *convertFlags, cfg *config.Config) {
	mergeHTMLFlags(&f.html, f.set, cfg)
	mergeStyleFlags(&f.style, f.set, cfg)

	if f.set["pdf"] {
		cfg.PDF.Enabled = f.pdf
	}
	if f.set["timeout"] {
		cfg.PDF.Timeout = f.timeout
	}
	if f.set["page-size"] {
		cfg.PDF.Page.Size = f.page.size
	}
	if f.set["orientation"] {
		cfg.PDF.Page.Orientation = f.page.orientation
	}
	if f.set["margin"] {
		cfg.PDF.Page.Margin = f.page.margin
	}
	if f.set["page-numbers"] {
		cfg.PDF.Page.PageNumbers = f.page.pageNumbers
	}
}

// converterOptions translates a validated config into converter options.
func converterOptions(cfg *config.Config) ([]org2html.Option, error) {
	var opts []org2html.Option

	if cfg.HTML.BaseHeadingLevel > 0 {
		opts = append(opts, org2html.WithBaseHeadingLevel(cfg.HTML.BaseHeadingLevel))
	}
	if cfg.HTML.Separator != "" {
		opts = append(opts, org2html.WithChildSeparator(cfg.HTML.Separator))
	}
	if cfg.HTML.MaxDepth != 0 {
		opts = append(opts, org2html.WithMaxDepth(cfg.HTML.MaxDepth))
	}
	if cfg.Highlight.Enabled {
		opts = append(opts, org2html.WithHighlighting(cfg.Highlight.Style))
	}
	if cfg.Style != "" {
		opts = append(opts, org2html.WithStyle(cfg.Style))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, org2html.WithAssetPath(cfg.Assets.BasePath))
	}

	timeout, err := cfg.PDF.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		opts = append(opts, org2html.WithTimeout(timeout))
	}

	return opts, nil
}

// checkOptions builds and discards a converter so that option errors
// (unknown style, bad heading level) surface before any file is read.
func checkOptions(opts []org2html.Option) error {
	conv, err := org2html.NewConverter(opts...)
	if err != nil {
		return err
	}
	return conv.Close()
}

// buildPageSettings creates page settings from config, filling unset
// fields with defaults.
func buildPageSettings(cfg *config.Config) (*org2html.PageSettings, error) {
	page := org2html.DefaultPageSettings()
	if cfg.PDF.Page.Size != "" {
		page.Size = strings.ToLower(cfg.PDF.Page.Size)
	}
	if cfg.PDF.Page.Orientation != "" {
		page.Orientation = strings.ToLower(cfg.PDF.Page.Orientation)
	}
	if cfg.PDF.Page.Margin > 0 {
		page.Margin = cfg.PDF.Page.Margin
	}
	page.PageNumbers = cfg.PDF.Page.PageNumbers

	if err := page.Validate(); err != nil {
		return nil, fmt.Errorf("page settings: %w", err)
	}
	return page, nil
}

// conversionParamsFor builds the batch parameters. Page settings are only
// built and validated for PDF output.
func conversionParamsFor(cfg *config.Config) (*conversionParams, error) {
	params := &conversionParams{
		standalone: cfg.HTML.Standalone,
		title:      cfg.HTML.Title,
		pdf:        cfg.PDF.Enabled,
	}
	if params.pdf {
		page, err := buildPageSettings(cfg)
		if err != nil {
			return nil, err
		}
		params.page = page
	}
	return params, nil
}
