package org2html

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/alnah/go-org2html/internal/assets"
	"github.com/alnah/go-org2html/internal/fileutil"
	"github.com/alnah/go-org2html/internal/parser"
	"github.com/alnah/go-org2html/internal/pipeline"
	"github.com/alnah/go-org2html/internal/render"
)

var (
	_ pdfConverter = (*rodConverter)(nil)
	_ pdfRenderer  = (*rodRenderer)(nil)
)

// Converter runs the org-to-HTML pipeline and, on request, renders the
// result to PDF. Create with NewConverter and Close when done.
//
// Convert is safe for concurrent use. PDF rendering is serialized per
// converter; use ConverterPool to render several documents at once.
type Converter struct {
	cfg           converterConfig
	assetLoader   assets.AssetLoader
	preprocessor  pipeline.Preprocessor
	htmlConverter pipeline.HTMLConverter
	wrapper       pipeline.DocumentWrapper
	cssInjector   pipeline.CSSInjector
	highlightCSS  string

	pdfMu        sync.Mutex
	pdfConverter pdfConverter
}

// NewConverter creates a Converter. The browser used for PDF output is
// started lazily on the first PDF conversion.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			timeout:          defaultTimeout,
			baseHeadingLevel: 1,
		},
		assetLoader:  assets.NewEmbeddedLoader(),
		preprocessor: &pipeline.OrgPreprocessor{},
		cssInjector:  &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.baseHeadingLevel < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHeadingLevel, c.cfg.baseHeadingLevel)
	}

	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	renderOpts := render.Options{Separator: c.cfg.separator}
	if c.cfg.highlight {
		h, err := render.NewChromaHighlighter(c.cfg.highlightStyle)
		if err != nil {
			return nil, err
		}
		var css strings.Builder
		if err := h.WriteCSS(&css); err != nil {
			return nil, fmt.Errorf("writing highlight stylesheet: %w", err)
		}
		renderOpts.Highlighter = h
		c.highlightCSS = css.String()
	}

	c.htmlConverter = pipeline.NewOrgConverter(c.parseOptions(), renderOpts)

	tmpl, err := c.assetLoader.LoadTemplate(assets.DocumentTemplateName)
	if err != nil {
		return nil, fmt.Errorf("loading document template: %w", err)
	}
	if c.wrapper, err = pipeline.NewTemplateWrapper(tmpl); err != nil {
		return nil, err
	}

	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout)
	}

	return c, nil
}

// Convert converts input.Org and returns the HTML, plus the PDF when
// input.PDF is set. Structural errors in the document abort the conversion
// and match ErrNesting with errors.Is. Internal panics are recovered into
// errors.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := input.Page.Validate(); err != nil {
		return nil, err
	}

	text := c.preprocessor.Preprocess(ctx, input.Org)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	frag, err := c.htmlConverter.ToHTML(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	res := &ConvertResult{HTML: []byte(frag.HTML), Title: frag.Title}
	if !input.Standalone && !input.PDF {
		return res, nil
	}

	title := input.Title
	if title == "" {
		title = frag.Title
	}
	page, err := c.wrapper.Wrap(ctx, frag.HTML, title)
	if err != nil {
		return nil, fmt.Errorf("wrapping document: %w", err)
	}

	// Stylesheet first, highlighting next, caller CSS last so it can override.
	css := joinCSS(c.cfg.resolvedStyle, c.highlightCSS, input.CSS)
	page = c.cssInjector.InjectCSS(ctx, page, css)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	res.HTML = []byte(page)

	if !input.PDF {
		return res, nil
	}

	if input.SourceDir != "" {
		page, err = pipeline.RewriteRelativePaths(page, input.SourceDir)
		if err != nil {
			return nil, fmt.Errorf("rewriting relative paths: %w", err)
		}
	}

	c.pdfMu.Lock()
	defer c.pdfMu.Unlock()

	pdf, err := c.pdfConverter.ToPDF(ctx, page, &pdfOptions{Page: input.Page})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	res.PDF = pdf
	return res, nil
}

// Close releases the headless browser, if one was started.
func (c *Converter) Close() error {
	c.pdfMu.Lock()
	defer c.pdfMu.Unlock()

	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

func (c *Converter) parseOptions() parser.Options {
	return parser.Options{
		BaseHeadingLevel: c.cfg.baseHeadingLevel,
		MaxDepth:         c.cfg.maxDepth,
	}
}

// resolveStyle turns the style input (name, path, or CSS content) into CSS.
// Without a style input the default style is used.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput

	switch {
	case input == "":
		css, err := c.assetLoader.LoadStyle(assets.DefaultStyleName)
		if err != nil {
			return fmt.Errorf("loading default style: %w", err)
		}
		c.cfg.resolvedStyle = css
	case fileutil.IsCSS(input):
		c.cfg.resolvedStyle = input
	case fileutil.IsFilePath(input):
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.cfg.resolvedStyle = string(content)
	default:
		css, err := c.assetLoader.LoadStyle(input)
		if err != nil {
			return fmt.Errorf("loading style %q: %w", input, err)
		}
		c.cfg.resolvedStyle = css
	}
	return nil
}

func joinCSS(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}
