package main

import (
	"errors"
	"os"

	org2html "github.com/alnah/go-org2html"
	"github.com/alnah/go-org2html/internal/config"
)

// Exit codes for the org2html CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, validation, or malformed document
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, org2html.ErrBrowserConnect) ||
		errors.Is(err, org2html.ErrPageCreate) ||
		errors.Is(err, org2html.ErrPageLoad) ||
		errors.Is(err, org2html.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadOrg) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, org2html.ErrNesting) ||
		errors.Is(err, org2html.ErrTooDeep) ||
		errors.Is(err, org2html.ErrInvalidHeadingLevel) ||
		errors.Is(err, org2html.ErrInvalidPageSize) ||
		errors.Is(err, org2html.ErrInvalidOrientation) ||
		errors.Is(err, org2html.ErrInvalidMargin) ||
		errors.Is(err, org2html.ErrStyleNotFound) ||
		errors.Is(err, org2html.ErrUnknownHighlightStyle) ||
		errors.Is(err, org2html.ErrInvalidAssetPath) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrUsage) {
		return ExitUsage
	}

	return ExitGeneral
}
