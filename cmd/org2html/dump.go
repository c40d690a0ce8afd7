package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	org2html "github.com/alnah/go-org2html"
	"github.com/alnah/go-org2html/internal/config"
)

// dumpFlags holds flags for the dump command.
type dumpFlags struct {
	config    string
	baseLevel int
	maxDepth  int
	set       map[string]bool
}

// parseDumpFlags parses dump command flags and returns positional args.
func parseDumpFlags(args []string, usage io.Writer) (*dumpFlags, []string, error) {
	f := &dumpFlags{}
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	fs.SetOutput(usage)
	fs.Usage = func() { printDumpUsage(usage) }

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.IntVarP(&f.baseLevel, "base-level", "b", 0, "level of a single-star heading")
	fs.IntVar(&f.maxDepth, "max-depth", 0, "nesting limit (0 = default, -1 = none)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	f.set = changedFlags(fs)
	return f, fs.Args(), nil
}

// dumpOptions returns the options that affect the document tree.
func dumpOptions(cfg *config.Config) []org2html.Option {
	var opts []org2html.Option
	if cfg.HTML.BaseHeadingLevel > 0 {
		opts = append(opts, org2html.WithBaseHeadingLevel(cfg.HTML.BaseHeadingLevel))
	}
	if cfg.HTML.MaxDepth != 0 {
		opts = append(opts, org2html.WithMaxDepth(cfg.HTML.MaxDepth))
	}
	return opts
}

// runDump prints the document tree of one org file, or of stdin.
func runDump(args []string, env *Environment) error {
	flags, positional, err := parseDumpFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return usageError(errUnexpectedArgs(positional[1:]))
	}

	cfg, err := loadEffectiveConfig(flags.config, loadEnvConfig())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flags.set["base-level"] {
		cfg.HTML.BaseHeadingLevel = flags.baseLevel
	}
	if flags.set["max-depth"] {
		cfg.HTML.MaxDepth = flags.maxDepth
	}

	text, err := readDumpInput(positional, env)
	if err != nil {
		return err
	}

	tree, err := org2html.Dump(text, dumpOptions(cfg)...)
	if err != nil {
		return err
	}
	fmt.Fprintln(env.Stdout, tree)
	return nil
}

func readDumpInput(args []string, env *Environment) (string, error) {
	if len(args) == 0 || args[0] == stdinArg {
		data, err := io.ReadAll(env.Stdin)
		if err != nil {
			return "", fmt.Errorf("%w: stdin: %v", ErrReadOrg, err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0]) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadOrg, err)
	}
	return string(data), nil
}
