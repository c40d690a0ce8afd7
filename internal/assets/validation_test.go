package assets

import (
	"errors"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple name", "default", false},
		{"hyphen", "my-style", false},
		{"underscore", "my_style", false},
		{"empty", "", true},
		{"slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"dot", "style.css", true},
		{"traversal", "..", true},
		{"absolute path", "/etc/passwd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if tt.wantErr && !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("ValidateAssetName(%q) error = %v, want ErrInvalidAssetName", tt.input, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateAssetName(%q) unexpected error: %v", tt.input, err)
			}
		})
	}
}
