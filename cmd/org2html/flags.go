package main

import (
	"io"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// htmlFlags holds parsing and rendering flags.
type htmlFlags struct {
	baseLevel  int
	separator  string
	standalone bool
	title      string
	maxDepth   int
}

// styleFlags holds stylesheet and highlighting flags.
type styleFlags struct {
	style          string
	assetPath      string
	highlight      bool
	highlightStyle string
}

// pageFlags holds PDF page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
	pageNumbers bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common  commonFlags
	output  string
	workers int
	timeout string
	pdf     bool
	html    htmlFlags
	style   styleFlags
	page    pageFlags

	// set records flags given on the command line, so that false and zero
	// values can still override the config file.
	set map[string]bool
}

// serveFlags holds all flags for the serve command.
type serveFlags struct {
	common  commonFlags
	addr    string
	workers int
	timeout string
	html    htmlFlags
	style   styleFlags
	set     map[string]bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addHTMLFlags adds parsing and rendering flags to a FlagSet.
func addHTMLFlags(fs *flag.FlagSet, f *htmlFlags) {
	fs.IntVarP(&f.baseLevel, "base-level", "b", 0, "HTML level of a single-star heading (1-6)")
	fs.StringVar(&f.separator, "separator", "", `string between sibling elements; Go escapes allowed ("\n")`)
	fs.BoolVarP(&f.standalone, "standalone", "s", false, "wrap output in a complete HTML page")
	fs.StringVar(&f.title, "title", "", "page title (default: first heading)")
	fs.IntVar(&f.maxDepth, "max-depth", 0, "nesting limit (0 = default, -1 = none)")
}

// addStyleFlags adds stylesheet and highlighting flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVar(&f.style, "style", "", "style name, CSS file path, or CSS")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVar(&f.highlight, "highlight", false, "highlight source blocks that name a language")
	fs.StringVar(&f.highlightStyle, "highlight-style", "", "chroma style for --highlight (default: github)")
}

// addPageFlags adds PDF page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
	fs.BoolVar(&f.pageNumbers, "page-numbers", false, "print page numbers in the footer")
}

// buildConvertFlagSet registers every convert flag on a new FlagSet.
func buildConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.pdf, "pdf", false, "render PDF instead of HTML")

	addCommonFlags(fs, &f.common)
	addHTMLFlags(fs, &f.html)
	addStyleFlags(fs, &f.style)
	addPageFlags(fs, &f.page)

	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, usage io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := buildConvertFlagSet(f)
	fs.SetOutput(usage)
	fs.Usage = func() { printConvertUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	f.set = changedFlags(fs)
	if err := unescapeSeparator(&f.html); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseServeFlags parses serve command flags.
func parseServeFlags(args []string, usage io.Writer) (*serveFlags, error) {
	f := &serveFlags{}
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(usage)
	fs.Usage = func() { printServeUsage(usage) }

	fs.StringVarP(&f.addr, "addr", "a", "", "listen address (default :8080)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel converters (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	addCommonFlags(fs, &f.common)
	addHTMLFlags(fs, &f.html)
	addStyleFlags(fs, &f.style)

	if err := fs.Parse(args); err != nil {
		return nil, usageError(err)
	}
	if fs.NArg() > 0 {
		return nil, usageError(errUnexpectedArgs(fs.Args()))
	}
	f.set = changedFlags(fs)
	if err := unescapeSeparator(&f.html); err != nil {
		return nil, err
	}
	return f, nil
}

func changedFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return set
}

// unescapeSeparator interprets Go escape sequences in --separator.
func unescapeSeparator(f *htmlFlags) error {
	if f.separator == "" {
		return nil
	}
	s, err := strconv.Unquote(`"` + strings.ReplaceAll(f.separator, `"`, `\"`) + `"`)
	if err != nil {
		return usageError(errBadSeparator(f.separator))
	}
	f.separator = s
	return nil
}
