package main

// Notes:
// - HTML batches run through a real converter pool; PDF batches use
//   staticMockConverter so no browser is needed.
// - printResults is tested through its writers.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	org2html "github.com/alnah/go-org2html"
)

// ---------------------------------------------------------------------------
// TestConvertBatch - Concurrent conversion of discovered files
// ---------------------------------------------------------------------------

func TestConvertBatch_HTML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var files []FileToConvert
	for _, name := range []string{"one", "two", "three"} {
		in := filepath.Join(dir, name+".org")
		writeFile(t, in, "* "+name+"\nbody *"+name+"*")
		files = append(files, FileToConvert{InputPath: in, OutputPath: filepath.Join(dir, "out", name+".html")})
	}

	pool := newConverterPool(2)
	defer pool.Close()

	results := convertBatch(context.Background(), pool, files, &conversionParams{})
	if len(results) != len(files) {
		t.Fatalf("got %d results, want %d", len(results), len(files))
	}
	for i, r := range results {
		if r.Err != nil {
			t.Fatalf("%s: %v", r.InputPath, r.Err)
		}
		if r.InputPath != files[i].InputPath {
			t.Errorf("result %d is %s, want %s", i, r.InputPath, files[i].InputPath)
		}
		got, err := os.ReadFile(r.OutputPath)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(string(got), "<h1>") {
			t.Errorf("%s = %q, want a fragment starting with <h1>", r.OutputPath, got)
		}
	}
}

func TestConvertBatch_PDF(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "doc.org")
	writeFile(t, in, "* Doc")
	out := filepath.Join(dir, "doc.pdf")

	conv := &staticMockConverter{result: &org2html.ConvertResult{HTML: []byte("<html>"), PDF: []byte("%PDF-1.7")}}
	page := org2html.DefaultPageSettings()
	params := &conversionParams{pdf: true, title: "T", page: page}

	results := convertBatch(context.Background(), &mockPool{conv: conv}, []FileToConvert{{InputPath: in, OutputPath: out}}, params)
	if results[0].Err != nil {
		t.Fatalf("unexpected error: %v", results[0].Err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "%PDF-1.7" {
		t.Errorf("output = %q, want the PDF bytes", got)
	}

	want := org2html.Input{Org: "* Doc", Title: "T", PDF: true, Page: page, SourceDir: dir}
	if conv.inputs[0] != want {
		t.Errorf("input = %+v, want %+v", conv.inputs[0], want)
	}
}

func TestConvertBatch_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := filepath.Join(dir, "good.org")
	writeFile(t, good, "* ok")

	t.Run("acquire error fails every file", func(t *testing.T) {
		t.Parallel()

		files := []FileToConvert{{InputPath: good, OutputPath: filepath.Join(dir, "a.html")}, {InputPath: good, OutputPath: filepath.Join(dir, "b.html")}}
		results := convertBatch(context.Background(), &mockPool{acquireErr: org2html.ErrPoolClosed}, files, &conversionParams{})
		for _, r := range results {
			if !errors.Is(r.Err, org2html.ErrPoolClosed) {
				t.Errorf("%s: error = %v, want ErrPoolClosed", r.InputPath, r.Err)
			}
		}
	})

	t.Run("missing input", func(t *testing.T) {
		t.Parallel()

		files := []FileToConvert{{InputPath: filepath.Join(dir, "missing.org"), OutputPath: filepath.Join(dir, "m.html")}}
		results := convertBatch(context.Background(), &mockPool{conv: &staticMockConverter{}}, files, &conversionParams{})
		if !errors.Is(results[0].Err, ErrReadOrg) {
			t.Errorf("error = %v, want ErrReadOrg", results[0].Err)
		}
	})

	t.Run("conversion error", func(t *testing.T) {
		t.Parallel()

		conv := &staticMockConverter{err: org2html.ErrNesting}
		files := []FileToConvert{{InputPath: good, OutputPath: filepath.Join(dir, "n.html")}}
		results := convertBatch(context.Background(), &mockPool{conv: conv}, files, &conversionParams{})
		if !errors.Is(results[0].Err, org2html.ErrNesting) {
			t.Errorf("error = %v, want ErrNesting", results[0].Err)
		}
		if _, err := os.Stat(filepath.Join(dir, "n.html")); !os.IsNotExist(err) {
			t.Error("no output should be written on failure")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		files := []FileToConvert{{InputPath: good, OutputPath: filepath.Join(dir, "c.html")}}
		results := convertBatch(ctx, &mockPool{conv: &staticMockConverter{}}, files, &conversionParams{})
		if !errors.Is(results[0].Err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", results[0].Err)
		}
	})

	t.Run("empty batch", func(t *testing.T) {
		t.Parallel()

		if got := convertBatch(context.Background(), &mockPool{}, nil, &conversionParams{}); got != nil {
			t.Errorf("convertBatch(nil) = %v, want nil", got)
		}
	})
}

// ---------------------------------------------------------------------------
// TestPrintResults - Output formatting
// ---------------------------------------------------------------------------

func TestPrintResults(t *testing.T) {
	t.Parallel()

	results := []ConversionResult{
		{InputPath: "a.org", OutputPath: "a.html", Duration: 12 * time.Millisecond},
		{InputPath: "b.org", Err: &org2html.LineError{Line: 4, Err: org2html.ErrNesting}},
	}

	tests := []struct {
		name          string
		quiet         bool
		verbose       bool
		wantStdout    []string
		notWantStdout []string
	}{
		{"default", false, false, []string{"Created a.html", "1 succeeded, 1 failed"}, nil},
		{"verbose", false, true, []string{"a.org -> a.html (12ms)"}, []string{"Created"}},
		{"quiet", true, false, nil, []string{"Created", "succeeded"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv(t, "")
			failed := printResults(results, tt.quiet, tt.verbose, env)
			if failed != 1 {
				t.Errorf("failed = %d, want 1", failed)
			}
			for _, s := range tt.wantStdout {
				if !strings.Contains(stdout.String(), s) {
					t.Errorf("stdout %q missing %q", stdout.String(), s)
				}
			}
			for _, s := range tt.notWantStdout {
				if strings.Contains(stdout.String(), s) {
					t.Errorf("stdout %q should not contain %q", stdout.String(), s)
				}
			}
			if !strings.Contains(stderr.String(), "FAILED b.org: line 4:") {
				t.Errorf("stderr = %q, want failure line", stderr.String())
			}
			if !strings.Contains(stderr.String(), "hint: each #+BEGIN_QUOTE") {
				t.Errorf("stderr = %q, want nesting hint", stderr.String())
			}
		})
	}
}
