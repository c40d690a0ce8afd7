package assets

import (
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestAssetResolver - Custom-first lookup with embedded fallback
// ---------------------------------------------------------------------------

func TestAssetResolver(t *testing.T) {
	t.Parallel()

	t.Run("embedded only", func(t *testing.T) {
		t.Parallel()

		r, err := NewAssetResolver("")
		if err != nil {
			t.Fatalf("NewAssetResolver() error = %v", err)
		}
		if r.HasCustomLoader() {
			t.Error("HasCustomLoader() = true, want false")
		}
		if _, err := r.LoadStyle(DefaultStyleName); err != nil {
			t.Errorf("LoadStyle() error = %v", err)
		}
	})

	t.Run("custom overrides embedded", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeAsset(t, dir, "styles", "default.css", "/* mine */")

		r, err := NewAssetResolver(dir)
		if err != nil {
			t.Fatalf("NewAssetResolver() error = %v", err)
		}
		if !r.HasCustomLoader() {
			t.Error("HasCustomLoader() = false, want true")
		}

		got, err := r.LoadStyle(DefaultStyleName)
		if err != nil {
			t.Fatalf("LoadStyle() error = %v", err)
		}
		if got != "/* mine */" {
			t.Errorf("LoadStyle() = %q, want custom content", got)
		}
	})

	t.Run("falls back when missing from custom", func(t *testing.T) {
		t.Parallel()

		r, err := NewAssetResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewAssetResolver() error = %v", err)
		}

		got, err := r.LoadTemplate(DocumentTemplateName)
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
		if !strings.Contains(got, "{{.Body}}") {
			t.Errorf("LoadTemplate() = %q, want embedded template", got)
		}
	})

	t.Run("validation errors do not fall back", func(t *testing.T) {
		t.Parallel()

		r, err := NewAssetResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewAssetResolver() error = %v", err)
		}
		if _, err := r.LoadStyle("a/b"); !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadStyle() error = %v, want ErrInvalidAssetName", err)
		}
	})

	t.Run("invalid custom path", func(t *testing.T) {
		t.Parallel()

		if _, err := NewAssetResolver("/nonexistent/abc123xyz"); !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewAssetResolver() error = %v, want ErrInvalidBasePath", err)
		}
	})
}
