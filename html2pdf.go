package org2html

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-org2html/internal/fileutil"
	"github.com/alnah/go-org2html/internal/process"
)

// pdfConverter abstracts HTML to PDF conversion to allow different backends.
type pdfConverter interface {
	ToPDF(ctx context.Context, htmlContent string, opts *pdfOptions) ([]byte, error)
	Close() error
}

// pdfRenderer renders an HTML file to PDF; tests substitute it to run
// without a browser.
type pdfRenderer interface {
	RenderFromFile(ctx context.Context, filePath string, opts *pdfOptions) ([]byte, error)
	Close() error
}

// pdfOptions holds options for PDF generation.
type pdfOptions struct {
	Page *PageSettings
}

// Paper dimensions in inches, portrait.
var paperSizes = map[string][2]float64{
	PageSizeLetter: {8.5, 11},
	PageSizeA4:     {8.27, 11.69},
	PageSizeLegal:  {8.5, 14},
}

// footerMarginExtra makes room for the page number footer.
const footerMarginExtra = 0.25

// rodRenderer renders PDFs with go-rod. Rod downloads Chromium on first run
// if no browser is found.
type rodRenderer struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	timeout  time.Duration
}

func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

// ensureBrowser lazily launches and connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Pre-installed browser for containers.
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// Chrome's sandbox does not work in most CI runners and containers.
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" || os.Getenv("ROD_NO_SANDBOX") == "1" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.launcher = l
	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		r.stopLauncher()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// stopLauncher kills the browser process tree and removes its profile
// directory.
func (r *rodRenderer) stopLauncher() {
	if r.launcher == nil {
		return
	}
	process.KillGroup(r.launcher.PID())
	r.launcher.Kill()
	r.launcher.Cleanup()
	r.launcher = nil
}

// Close releases browser resources.
func (r *rodRenderer) Close() error {
	if r.browser == nil {
		return nil
	}
	err := r.browser.Close()
	r.browser = nil
	r.stopLauncher()
	return err
}

// RenderFromFile opens a local HTML file in headless Chrome and prints it.
// Browser failures come back as errors rather than rod's panics.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string, opts *pdfOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: fileURL(filePath)})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(buildPDFOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return pdf, nil
}

// buildPDFOptions maps page settings onto Chrome's print parameters.
// Unknown sizes fall back to letter; nil settings mean defaults.
func buildPDFOptions(opts *pdfOptions) *proto.PagePrintToPDF {
	page := DefaultPageSettings()
	if opts != nil && opts.Page != nil {
		page = opts.Page
	}

	dims, ok := paperSizes[strings.ToLower(page.Size)]
	if !ok {
		dims = paperSizes[PageSizeLetter]
	}
	width, height := dims[0], dims[1]
	if strings.EqualFold(page.Orientation, OrientationLandscape) {
		width, height = height, width
	}

	margin := page.Margin
	if margin == 0 {
		margin = DefaultMargin
	}
	bottom := margin
	if page.PageNumbers {
		bottom += footerMarginExtra
	}

	pdfOpts := &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(width),
		PaperHeight:     floatPtr(height),
		MarginTop:       floatPtr(margin),
		MarginBottom:    floatPtr(bottom),
		MarginLeft:      floatPtr(margin),
		MarginRight:     floatPtr(margin),
		PrintBackground: true,
	}

	if page.PageNumbers {
		pdfOpts.DisplayHeaderFooter = true
		pdfOpts.HeaderTemplate = "<span></span>"
		pdfOpts.FooterTemplate = pageNumberFooter
	}
	return pdfOpts
}

// pageNumberFooter uses Chrome's pageNumber and totalPages placeholders.
const pageNumberFooter = `<div style="font-size: 9px; color: #888; width: 100%; text-align: center;">` +
	`<span class="pageNumber"></span>/<span class="totalPages"></span></div>`

func floatPtr(v float64) *float64 {
	return &v
}

func fileURL(path string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}

// rodConverter writes HTML to a temp file and renders it with a pdfRenderer.
type rodConverter struct {
	renderer pdfRenderer
}

func newRodConverter(timeout time.Duration) *rodConverter {
	return &rodConverter{renderer: newRodRenderer(timeout)}
}

// ToPDF converts a complete HTML page to PDF bytes.
func (c *rodConverter) ToPDF(ctx context.Context, htmlContent string, opts *pdfOptions) ([]byte, error) {
	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return c.renderer.RenderFromFile(ctx, tmpPath, opts)
}

// Close releases browser resources.
func (c *rodConverter) Close() error {
	if c.renderer == nil {
		return nil
	}
	return c.renderer.Close()
}
