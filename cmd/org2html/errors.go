package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
	flag "github.com/spf13/pflag"

	org2html "github.com/alnah/go-org2html"
	"github.com/alnah/go-org2html/internal/assets"
	"github.com/alnah/go-org2html/internal/config"
	"github.com/alnah/go-org2html/internal/hints"
)

// ErrUsage marks command line mistakes: bad flags, unknown commands,
// unexpected arguments.
var ErrUsage = errors.New("usage error")

// usageError wraps err so that exitCodeFor maps it to ExitUsage.
// flag.ErrHelp passes through unchanged.
func usageError(err error) error {
	if err == nil || errors.Is(err, ErrUsage) || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

func errUnexpectedArgs(args []string) error {
	return fmt.Errorf("unexpected arguments: %s", strings.Join(args, " "))
}

func errBadSeparator(sep string) error {
	return fmt.Errorf("invalid --separator %q", sep)
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	var notFound *config.NotFoundError
	switch {
	case errors.As(err, &notFound):
		return hints.ForConfigNotFound(notFound.Tried)
	case errors.Is(err, org2html.ErrBrowserConnect),
		errors.Is(err, org2html.ErrPageCreate):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, org2html.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.StyleNames())
	case errors.Is(err, org2html.ErrUnknownHighlightStyle):
		return hints.ForHighlightStyle(styles.Names())
	case errors.Is(err, org2html.ErrNesting):
		return hints.ForNesting()
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}

// printError writes err and its hint to env.Stderr and returns the exit code.
func printError(env *Environment, err error) int {
	fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	return exitCodeFor(err)
}
