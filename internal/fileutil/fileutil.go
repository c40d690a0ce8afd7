// Package fileutil provides file and path helpers shared by the library and
// the CLI.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OrgExtension is the extension of org source files.
const OrgExtension = ".org"

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
)

// WriteTempFile writes content to a new temporary file with the given
// extension. The caller must run cleanup to remove the file.
func WriteTempFile(content, extension string) (path string, cleanup func(), err error) {
	if err := ValidateExtension(extension); err != nil {
		return "", nil, err
	}

	f, err := os.CreateTemp("", "org2html-*."+extension)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = f.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", err)
	}

	return path, cleanup, nil
}

// ValidateExtension checks that extension is safe inside a temp file name.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsFilePath reports whether s looks like a path rather than a bare name,
// that is, whether it contains a path separator.
//
// Examples:
//   - "minimal" -> false
//   - "./custom.css" -> true
//   - "C:\styles\a.css" -> true
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, `/\`)
}

// IsCSS reports whether s looks like inline CSS content rather than a name
// or path.
func IsCSS(s string) bool {
	return strings.Contains(s, "{")
}

// IsOrgFile reports whether path has the org extension, case-insensitively.
func IsOrgFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), OrgExtension)
}

// ReplaceExt swaps the extension of path for ext, which includes the dot.
func ReplaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
