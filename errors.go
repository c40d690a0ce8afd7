package org2html

import (
	"errors"

	"github.com/alnah/go-org2html/internal/assets"
	"github.com/alnah/go-org2html/internal/parser"
	"github.com/alnah/go-org2html/internal/pipeline"
	"github.com/alnah/go-org2html/internal/render"
)

// Sentinel errors for library operations.
var (
	// Document errors. Parse failures carry the offending line; see LineError.
	ErrNesting             = parser.ErrNesting
	ErrTooDeep             = parser.ErrTooDeep
	ErrInvalidHeadingLevel = parser.ErrInvalidHeadingLevel
	ErrHTMLConversion      = pipeline.ErrHTMLConversion

	// PDF rendering errors.
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Asset and styling errors.
	ErrStyleNotFound         = assets.ErrStyleNotFound
	ErrInvalidAssetPath      = errors.New("invalid asset path")
	ErrUnknownHighlightStyle = render.ErrUnknownHighlightStyle
)

// LineError locates a parse error in the input. Use errors.As to retrieve
// the line number.
type LineError = parser.LineError
