package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-rod/rod/lib/launcher"
	flag "github.com/spf13/pflag"

	"github.com/alnah/go-org2html/internal/assets"
	"github.com/alnah/go-org2html/internal/config"
)

// Doctor status values.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"`
	Chrome   chromeInfo `json:"chrome"`
	Env      envInfo    `json:"environment"`
	System   systemInfo `json:"system"`
	Config   configInfo `json:"config"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// chromeInfo holds Chrome/Chromium detection results. Chrome is only
// needed for PDF output, so a missing browser is a warning.
type chromeInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
	Sandbox bool   `json:"sandbox"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
	NoSandbox     string `json:"rod_no_sandbox"`
	BrowserBin    string `json:"rod_browser_bin"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// configInfo reports the config file in effect and the built-in styles.
type configInfo struct {
	Path   string   `json:"path,omitempty"`
	Styles []string `json:"styles"`
}

// runDoctorCmd executes the doctor command and returns an error when the
// checks found errors.
func runDoctorCmd(args []string, env *Environment) error {
	var jsonOutput bool
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	fs.BoolVar(&jsonOutput, "json", false, "print results as JSON")
	if err := fs.Parse(args); err != nil {
		return usageError(err)
	}

	result := runDoctor()

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == statusErrors {
		return errDoctorFailed
	}
	return nil
}

// errDoctorFailed is returned when doctor finds errors; the details are
// already printed.
var errDoctorFailed = errors.New("doctor found errors")

// runDoctor performs all diagnostic checks.
func runDoctor() *doctorResult {
	result := &doctorResult{
		Status: statusReady,
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			NoSandbox:  os.Getenv("ROD_NO_SANDBOX"),
			BrowserBin: os.Getenv("ROD_BROWSER_BIN"),
		},
	}

	checkChrome(result)
	checkEnvironment(result)
	checkSystem(result)
	checkConfig(result)

	if len(result.Errors) > 0 {
		result.Status = statusErrors
	} else if len(result.Warnings) > 0 {
		result.Status = statusWarnings
	}

	return result
}

// checkChrome detects Chrome/Chromium installation.
func checkChrome(result *doctorResult) {
	chromePath := result.Env.BrowserBin

	if chromePath == "" {
		var found bool
		chromePath, found = launcher.LookPath()
		if !found {
			result.Warnings = append(result.Warnings,
				"Chrome/Chromium not found; --pdf needs Chrome or ROD_BROWSER_BIN")
			return
		}
	}

	if _, err := os.Stat(chromePath); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("ROD_BROWSER_BIN points to a missing file: %s", chromePath))
		return
	}

	result.Chrome.Found = true
	result.Chrome.Path = chromePath

	out, err := exec.Command(chromePath, "--version").Output() // #nosec G204 -- detected browser path
	if err == nil {
		result.Chrome.Version = strings.TrimSpace(string(out))
	} else {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not get Chrome version: %v", err))
	}

	result.Chrome.Sandbox = result.Env.NoSandbox != "1"
}

// checkEnvironment detects container and CI environments.
func checkEnvironment(result *doctorResult) {
	result.Env.Container, result.Env.ContainerHint = isContainer()

	for _, v := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"} {
		if os.Getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}

	if (result.Env.Container || result.Env.CI) && result.Env.NoSandbox != "1" {
		result.Warnings = append(result.Warnings,
			"Container/CI detected but ROD_NO_SANDBOX not set. Set ROD_NO_SANDBOX=1")
	}

	for _, env := range os.Environ() {
		name, _, _ := strings.Cut(env, "=")
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Unknown environment variable %s", name))
		}
	}
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint indicates which signal was detected.
func isContainer() (bool, string) {
	if os.Getenv("ORG2HTML_CONTAINER") == "1" {
		return true, "ORG2HTML_CONTAINER=1"
	}
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true, "/.dockerenv"
	}
	if v := os.Getenv("container"); v != "" {
		return true, "container=" + v
	}
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkSystem verifies that PDF rendering can write its temp files.
func checkSystem(result *doctorResult) {
	tmpDir := os.TempDir()
	testFile := filepath.Join(tmpDir, "org2html-doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0o600); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
		return
	}
	_ = os.Remove(testFile)
	result.System.TempWritable = true
}

// checkConfig loads ORG2HTML_CONFIG, when set, and lists built-in styles.
func checkConfig(result *doctorResult) {
	result.Config.Styles = assets.StyleNames()

	name := os.Getenv("ORG2HTML_CONFIG")
	if name == "" {
		return
	}
	if _, err := config.LoadConfig(name); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("ORG2HTML_CONFIG: %v", err))
		return
	}
	result.Config.Path = name
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "org2html doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Chrome/Chromium (PDF output)")
	if r.Chrome.Found {
		fmt.Fprintf(w, "  [OK] Found at %s\n", r.Chrome.Path)
		if r.Chrome.Version != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", r.Chrome.Version)
		}
		if r.Chrome.Sandbox {
			fmt.Fprintln(w, "  [OK] Sandbox: enabled")
		} else {
			fmt.Fprintln(w, "  [OK] Sandbox: disabled (ROD_NO_SANDBOX=1)")
		}
	} else {
		fmt.Fprintln(w, "  [WARN] Not found")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Configuration")
	if r.Config.Path != "" {
		fmt.Fprintf(w, "  [OK] Config: %s\n", r.Config.Path)
	}
	fmt.Fprintf(w, "  [OK] Styles: %s\n", strings.Join(r.Config.Styles, ", "))
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: Ready to convert")
	case statusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	case statusErrors:
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
