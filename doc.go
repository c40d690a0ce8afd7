// Package org2html converts org-mode style text to HTML, and optionally to
// PDF using headless Chrome.
//
// # Quick Start
//
// For a plain HTML fragment, call Convert:
//
//	html, err := org2html.Convert("* Title\nSome *bold* text")
//
// For standalone pages or PDF output, create a Converter and close it when
// done:
//
//	conv, err := org2html.NewConverter(org2html.WithHighlighting(""))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, org2html.Input{
//	    Org: text,
//	    PDF: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("notes.pdf", result.PDF, 0644)
//
// # Supported Markup
//
// Block level: "*" headings (more stars nest deeper), #+BEGIN_QUOTE and
// #+END_QUOTE with an optional ": cite", #+BEGIN_SRC with an optional
// language and #+END_SRC, "-" and "+" bullets, "1." and "1)" numbered
// items, "term :: description" definition items, "|" delimited table rows,
// and paragraphs separated by blank lines. Indentation nests lists.
//
// Inline: =code=, [[url][title]], [[image.png][alt]], *bold*, /italic/,
// _underline_, +strike+ and ~monospace~. Styles nest; code is literal.
//
// # Conversion Pipeline
//
//  1. Preprocessing (line endings, byte order mark)
//  2. Parsing into a document tree; malformed nesting aborts with ErrNesting
//  3. Rendering to an HTML fragment, optionally with chroma highlighting
//  4. Standalone page wrapping and CSS injection (Standalone or PDF)
//  5. PDF rendering via headless Chrome (go-rod)
//
// # Configuration
//
//	conv, err := org2html.NewConverter(
//	    org2html.WithBaseHeadingLevel(2),
//	    org2html.WithChildSeparator("\n"),
//	    org2html.WithStyle("minimal"),
//	    org2html.WithAssetPath("/path/to/assets"),
//	    org2html.WithTimeout(2 * time.Minute),
//	)
//
// # Parallel Processing
//
// ConverterPool manages several converters, each with its own browser:
//
//	pool := org2html.NewConverterPool(org2html.ResolvePoolSize(0))
//	defer pool.Close()
//
//	conv, err := pool.Acquire()
//	if err != nil {
//	    return err
//	}
//	defer pool.Release(conv)
//
// # Browser Requirements
//
// PDF generation requires Chrome or Chromium. go-rod downloads a managed
// Chromium on first run. In containers and CI set ROD_NO_SANDBOX=1, and use
// ROD_BROWSER_BIN to point at an installed browser.
package org2html
