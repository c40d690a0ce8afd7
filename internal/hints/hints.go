// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-org2html/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect returns hints for browser connection errors.
// Detects CI/Docker environment and suggests relevant environment variables.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}

	return formatHints(hints)
}

// ForTimeout returns a hint about increasing timeout for slow operations.
func ForTimeout() string {
	return format("for large documents, use --timeout flag")
}

// ForConfigNotFound suggests --config, or creating the first searched
// path under the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-org2html") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound lists the available styles.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForHighlightStyle lists a few known highlight styles out of available.
func ForHighlightStyle(available []string) string {
	const shown = 8
	if len(available) == 0 {
		return ""
	}
	list := strings.Join(available[:min(shown, len(available))], ", ")
	if len(available) > shown {
		list += ", ..."
	}
	return format("highlight styles include: " + list)
}

// ForNesting explains how quote and source regions must pair up.
func ForNesting() string {
	return format("each #+BEGIN_QUOTE/#+BEGIN_SRC needs a matching #+END_QUOTE/#+END_SRC in the same block or table cell")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
