package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	org2html "github.com/alnah/go-org2html"
	"github.com/alnah/go-org2html/internal/config"
)

// stdinArg selects standard input as the single input document.
const stdinArg = "-"

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return usageError(errUnexpectedArgs(positional[1:]))
	}

	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig()
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr)
	}

	cfg, err := loadEffectiveConfig(flags.common.config, envCfg)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	mergeConvertFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	opts, err := converterOptions(cfg)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := checkOptions(opts); err != nil {
		return err
	}

	params, err := conversionParamsFor(cfg)
	if err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positional, cfg)
	if err != nil {
		return err
	}
	outputPath := resolveOutputDir(flags.output, cfg)

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}

	if inputPath == stdinArg {
		pool := env.NewPool(1, opts...)
		defer pool.Close()
		return convertStdin(ctx, pool, outputPath, params, env)
	}

	files, err := discoverFiles(inputPath, outputPath, outputExt(params.pdf))
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no %s files found in %s", ErrNoInput, orgExt, inputPath)
	}

	poolSize := min(org2html.ResolvePoolSize(workers), len(files))
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Pool size: %d\n", poolSize)
	}
	pool := env.NewPool(poolSize, opts...)
	defer pool.Close()

	results := convertBatch(ctx, pool, files, params)

	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failed == 1 && len(results) == 1 {
		// Keep the cause so the exit code reflects it.
		return fmt.Errorf("conversion failed: %w", firstError(results))
	}
	if failed > 0 {
		return fmt.Errorf("%d conversion(s) failed", failed)
	}
	return nil
}

// resolveInputPath picks the positional argument, falling back to the
// configured input directory.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir picks --output, falling back to the configured output
// directory.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// convertStdin converts standard input and writes the result to output, or
// to standard output when output is empty. Relative paths resolve against
// the working directory.
func convertStdin(ctx context.Context, pool Pool, output string, params *conversionParams, env *Environment) error {
	text, err := io.ReadAll(env.Stdin)
	if err != nil {
		return fmt.Errorf("%w: stdin: %v", ErrReadOrg, err)
	}

	conv, err := pool.Acquire()
	if err != nil {
		return err
	}
	defer pool.Release(conv)

	sourceDir, _ := os.Getwd()
	res, err := conv.Convert(ctx, params.input(string(text), sourceDir))
	if err != nil {
		return err
	}

	out := res.HTML
	if params.pdf {
		out = res.PDF
	}

	if output == "" {
		if _, err := env.Stdout.Write(out); err != nil {
			return fmt.Errorf("%w: stdout: %v", ErrWriteOutput, err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(output), dirPermissions); err != nil {
		return fmt.Errorf("%w: creating directory: %v", ErrWriteOutput, err)
	}
	// #nosec G306 -- generated documents are meant to be readable
	if err := os.WriteFile(output, out, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
