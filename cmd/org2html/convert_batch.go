package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	org2html "github.com/alnah/go-org2html"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrNoInput     = errors.New("no input specified")
	ErrReadOrg     = errors.New("failed to read org file")
	ErrWriteOutput = errors.New("failed to write output file")
)

// conversionParams holds the per-input settings shared by a batch.
type conversionParams struct {
	standalone bool
	title      string
	pdf        bool
	page       *org2html.PageSettings
}

// input builds the conversion input for one document.
func (p *conversionParams) input(text, sourceDir string) org2html.Input {
	return org2html.Input{
		Org:        text,
		Standalone: p.standalone,
		Title:      p.title,
		PDF:        p.pdf,
		Page:       p.page,
		SourceDir:  sourceDir,
	}
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// convertBatch processes files concurrently using the converter pool.
// Results keep the order of files.
func convertBatch(ctx context.Context, pool Pool, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(pool.Size(), len(files))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv, err := pool.Acquire()
			if err != nil {
				// Another worker may still drain the queue; fail what this one takes.
				for idx := range jobs {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       err,
					}
				}
				return
			}
			defer pool.Release(conv)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrReadOrg, err))
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return fail(fmt.Errorf("%w: creating directory: %v", ErrWriteOutput, err))
	}

	convResult, err := conv.Convert(ctx, params.input(string(content), filepath.Dir(f.InputPath)))
	if err != nil {
		return fail(err)
	}

	out := convResult.HTML
	if params.pdf {
		out = convResult.PDF
	}
	// #nosec G306 -- generated documents are meant to be readable
	if err := os.WriteFile(f.OutputPath, out, filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrWriteOutput, err))
	}

	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs conversion results and returns the failure count.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hintFor(r.Err))
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}

// firstError returns the first failure in results, or nil.
func firstError(results []ConversionResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}
