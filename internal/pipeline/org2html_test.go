package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/alnah/go-org2html/internal/parser"
	"github.com/alnah/go-org2html/internal/render"
)

// ---------------------------------------------------------------------------
// TestOrgConverter_ToHTML - Parse and render through the pipeline stage
// ---------------------------------------------------------------------------

func TestOrgConverter_ToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		content   string
		base      int
		wantHTML  string
		wantTitle string
	}{
		{
			name:     "empty",
			content:  "",
			wantHTML: "",
		},
		{
			name:      "heading becomes title",
			content:   "* Notes\ntext",
			wantHTML:  "<h1>Notes</h1><p>text</p>",
			wantTitle: "Notes",
		},
		{
			name:      "base level shifts tags not title",
			content:   "* Notes",
			base:      2,
			wantHTML:  "<h2>Notes</h2>",
			wantTitle: "Notes",
		},
		{
			name:      "heading inside table cell",
			content:   "|* cell|",
			wantHTML:  "<table><tr><td><h1>cell</h1></td></tr></table>",
			wantTitle: "cell",
		},
		{
			name:     "no heading",
			content:  "just text",
			wantHTML: "<p>just text</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewOrgConverter(parser.Options{BaseHeadingLevel: tt.base}, render.Options{})
			got, err := c.ToHTML(context.Background(), tt.content)
			if err != nil {
				t.Fatalf("ToHTML(%q) unexpected error: %v", tt.content, err)
			}
			if got.HTML != tt.wantHTML {
				t.Errorf("ToHTML(%q).HTML = %q, want %q", tt.content, got.HTML, tt.wantHTML)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("ToHTML(%q).Title = %q, want %q", tt.content, got.Title, tt.wantTitle)
			}
		})
	}
}

func TestOrgConverter_ToHTML_Errors(t *testing.T) {
	t.Parallel()

	c := NewOrgConverter(parser.Options{}, render.Options{})

	t.Run("nesting error passes through", func(t *testing.T) {
		t.Parallel()

		_, err := c.ToHTML(context.Background(), "#+END_QUOTE")
		if !errors.Is(err, parser.ErrNesting) {
			t.Errorf("ToHTML() error = %v, want ErrNesting", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.ToHTML(ctx, "text")
		if !errors.Is(err, context.Canceled) {
			t.Errorf("ToHTML() error = %v, want context.Canceled", err)
		}
	})
}
