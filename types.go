package org2html

import (
	"fmt"
	"strings"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
	PageNumbers bool    // print "n/total" in the page footer
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeLetter,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid. A nil receiver is valid and
// means defaults. Size and orientation compare case-insensitively.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	switch strings.ToLower(p.Size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	switch strings.ToLower(p.Orientation) {
	case OrientationPortrait, OrientationLandscape:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// Input contains per-conversion parameters.
type Input struct {
	Org string // org text; empty input yields empty output

	// Standalone wraps the fragment in a complete HTML5 page with the
	// configured stylesheet. PDF output implies it.
	Standalone bool

	// Title of the standalone page. Empty uses the first heading, then
	// "Document".
	Title string

	// CSS is appended after the configured stylesheet (standalone only).
	CSS string

	// PDF renders the standalone page through headless Chrome.
	PDF bool

	// Page configures PDF output; nil means DefaultPageSettings.
	Page *PageSettings

	// SourceDir resolves relative image and link paths for PDF output.
	SourceDir string
}

// ConvertResult holds conversion output.
type ConvertResult struct {
	HTML  []byte // fragment, or the full page when standalone
	PDF   []byte // nil unless Input.PDF
	Title string // title of the first heading, "" if none
}
