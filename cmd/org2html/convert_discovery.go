package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	org2html "github.com/alnah/go-org2html"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("file must have .org extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// orgExt is the only extension picked up from directories and accepted for
// single files.
const orgExt = ".org"

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// outputExt returns the extension of generated files.
func outputExt(pdf bool) string {
	if pdf {
		return ".pdf"
	}
	return ".html"
}

// discoverFiles finds all org files to convert. Directories are walked
// recursively and their layout is mirrored under outputDir.
func discoverFiles(inputPath, outputDir, ext string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateOrgExtension(inputPath); err != nil {
			return nil, err
		}
		outPath := resolveOutputPath(inputPath, outputDir, "", ext)
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), orgExt) {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath, ext)
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the output path for an org file. An
// outputDir ending in ext names the output file itself.
func resolveOutputPath(inputPath, outputDir, baseInputDir, ext string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base+ext)
	}

	if strings.HasSuffix(outputDir, ext) {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), base+ext)
		}
	}

	return filepath.Join(outputDir, base+ext)
}

// validateOrgExtension checks that the file has a .org extension.
func validateOrgExtension(path string) error {
	ext := filepath.Ext(path)
	if !strings.EqualFold(ext, orgExt) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > org2html.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, org2html.MaxPoolSize)
	}
	return nil
}
