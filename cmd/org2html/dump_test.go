package main

// Notes:
// - runDump and runConfig are tested through their output writers.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	org2html "github.com/alnah/go-org2html"
	"github.com/alnah/go-org2html/internal/config"
	"github.com/alnah/go-org2html/internal/yamlutil"
)

// ---------------------------------------------------------------------------
// TestRunDump - Tree notation output
// ---------------------------------------------------------------------------

func TestRunDump(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "doc.org")
	writeFile(t, in, "* a\ntext\n- item")

	tests := []struct {
		name    string
		args    []string
		stdin   string
		want    string
		wantErr error
	}{
		{"file", []string{in}, "", "Document(Heading1(Paragraph(Text UnorderedList(ListItem))))\n", nil},
		{"stdin dash", []string{"-"}, "plain", "Document(Paragraph(Text))\n", nil},
		{"empty stdin", nil, "", "Document()\n", nil},
		{"max depth", []string{"--max-depth", "1"}, "* a\n** b", "", org2html.ErrTooDeep},
		{"missing file", []string{filepath.Join(dir, "nope.org")}, "", "", os.ErrNotExist},
		{"too many args", []string{in, in}, "", "", ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, _ := testEnv(t, tt.stdin)
			err := runDump(tt.args, env)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if stdout.String() != tt.want {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunConfig - Effective configuration as YAML
// ---------------------------------------------------------------------------

func TestRunConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "c.yaml")
	writeFile(t, path, "style: minimal\nhtml:\n  standalone: true\n")

	env, stdout, _ := testEnv(t, "")
	if err := runConfig([]string{"-c", path}, env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got config.Config
	if err := yamlutil.UnmarshalStrict(stdout.Bytes(), &got); err != nil {
		t.Fatalf("output is not a valid config: %v\n%s", err, stdout.String())
	}
	if got.Style != "minimal" || !got.HTML.Standalone {
		t.Errorf("config = %+v", got)
	}

	if err := runConfig([]string{"extra"}, env); !errors.Is(err, ErrUsage) {
		t.Errorf("error = %v, want ErrUsage", err)
	}
	if err := runConfig([]string{"-c", "no-such-config-name"}, env); !strings.Contains(err.Error(), "no-such-config-name") {
		t.Errorf("error = %v, want it to name the config", err)
	}
}
