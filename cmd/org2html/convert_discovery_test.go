package main

// Notes:
// - discoverFiles uses real temp directories.
// - resolveOutputPath is pure and tested table-driven.

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	org2html "github.com/alnah/go-org2html"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// ---------------------------------------------------------------------------
// TestDiscoverFiles - Single files and directory walks
// ---------------------------------------------------------------------------

func TestDiscoverFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.org"), "* A")
	writeFile(t, filepath.Join(dir, "sub", "b.ORG"), "* B")
	writeFile(t, filepath.Join(dir, "notes.txt"), "skip")

	t.Run("directory mirrors layout", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(dir, "out")
		got, err := discoverFiles(dir, out, ".html")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []FileToConvert{
			{InputPath: filepath.Join(dir, "a.org"), OutputPath: filepath.Join(out, "a.html")},
			{InputPath: filepath.Join(dir, "sub", "b.ORG"), OutputPath: filepath.Join(out, "sub", "b.html")},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("single file next to input", func(t *testing.T) {
		t.Parallel()

		got, err := discoverFiles(filepath.Join(dir, "a.org"), "", ".pdf")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []FileToConvert{{InputPath: filepath.Join(dir, "a.org"), OutputPath: filepath.Join(dir, "a.pdf")}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("wrong extension", func(t *testing.T) {
		t.Parallel()

		_, err := discoverFiles(filepath.Join(dir, "notes.txt"), "", ".html")
		if !errors.Is(err, ErrInvalidExtension) {
			t.Errorf("error = %v, want ErrInvalidExtension", err)
		}
	})

	t.Run("missing input", func(t *testing.T) {
		t.Parallel()

		_, err := discoverFiles(filepath.Join(dir, "missing.org"), "", ".html")
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want os.ErrNotExist", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestResolveOutputPath - Output naming rules
// ---------------------------------------------------------------------------

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		outputDir string
		baseDir   string
		ext       string
		want      string
	}{
		{"next to input", "docs/a.org", "", "", ".html", filepath.Join("docs", "a.html")},
		{"explicit file", "docs/a.org", "out/page.html", "", ".html", "out/page.html"},
		{"explicit file other ext is a dir", "docs/a.org", "out/page.html", "", ".pdf", filepath.Join("out/page.html", "a.pdf")},
		{"output dir", "docs/a.org", "out", "", ".pdf", filepath.Join("out", "a.pdf")},
		{"relative subdir", "docs/x/y/a.org", "out", "docs", ".html", filepath.Join("out", "x", "y", "a.html")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := resolveOutputPath(filepath.FromSlash(tt.input), filepath.FromSlash(tt.outputDir), filepath.FromSlash(tt.baseDir), tt.ext)
			if got != filepath.FromSlash(tt.want) {
				t.Errorf("resolveOutputPath() = %q, want %q", got, filepath.FromSlash(tt.want))
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidateWorkers - Bounds
// ---------------------------------------------------------------------------

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, org2html.MaxPoolSize} {
		if err := validateWorkers(n); err != nil {
			t.Errorf("validateWorkers(%d) = %v, want nil", n, err)
		}
	}
	for _, n := range []int{-1, org2html.MaxPoolSize + 1} {
		if err := validateWorkers(n); !errors.Is(err, ErrInvalidWorkerCount) {
			t.Errorf("validateWorkers(%d) = %v, want ErrInvalidWorkerCount", n, err)
		}
	}
}
