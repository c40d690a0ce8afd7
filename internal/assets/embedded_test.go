package assets

import (
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestEmbeddedLoader_LoadStyle - Built-in stylesheets
// ---------------------------------------------------------------------------

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name        string
		styleName   string
		wantErr     error
		wantContain string
	}{
		{
			name:        "default style",
			styleName:   DefaultStyleName,
			wantContain: "blockquote",
		},
		{
			name:        "minimal style",
			styleName:   "minimal",
			wantContain: "font-family",
		},
		{
			name:      "nonexistent style",
			styleName: "nonexistent-style-xyz",
			wantErr:   ErrStyleNotFound,
		},
		{
			name:      "empty name",
			styleName: "",
			wantErr:   ErrInvalidAssetName,
		},
		{
			name:      "path traversal",
			styleName: "../secret",
			wantErr:   ErrInvalidAssetName,
		},
		{
			name:      "backslash traversal",
			styleName: `..\secret`,
			wantErr:   ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadStyle(tt.styleName)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadStyle(%q) error = %v, want %v", tt.styleName, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle(%q) unexpected error: %v", tt.styleName, err)
			}
			if !strings.Contains(got, tt.wantContain) {
				t.Errorf("LoadStyle(%q) lacks %q", tt.styleName, tt.wantContain)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestEmbeddedLoader_LoadTemplate - Built-in page template
// ---------------------------------------------------------------------------

func TestEmbeddedLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	got, err := loader.LoadTemplate(DocumentTemplateName)
	if err != nil {
		t.Fatalf("LoadTemplate(%q) unexpected error: %v", DocumentTemplateName, err)
	}
	for _, want := range []string{"<!DOCTYPE html>", "{{.Title}}", "{{.Body}}"} {
		if !strings.Contains(got, want) {
			t.Errorf("LoadTemplate(%q) lacks %q", DocumentTemplateName, want)
		}
	}

	if _, err := loader.LoadTemplate("cover"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("LoadTemplate(cover) error = %v, want ErrTemplateNotFound", err)
	}
}

func TestLoadStyle_PackageLevel(t *testing.T) {
	t.Parallel()

	got, err := LoadStyle(DefaultStyleName)
	if err != nil {
		t.Fatalf("LoadStyle(%q) unexpected error: %v", DefaultStyleName, err)
	}
	if got == "" {
		t.Error("LoadStyle() returned empty content")
	}

	if _, err := LoadTemplate(DocumentTemplateName); err != nil {
		t.Errorf("LoadTemplate(%q) unexpected error: %v", DocumentTemplateName, err)
	}
}

func TestStyleNames(t *testing.T) {
	t.Parallel()

	got := StyleNames()
	want := []string{"default", "minimal"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("StyleNames() = %v, want %v", got, want)
	}
	for _, name := range got {
		if _, err := LoadStyle(name); err != nil {
			t.Errorf("LoadStyle(%q) error = %v", name, err)
		}
	}
}
