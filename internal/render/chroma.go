package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultHighlightStyle is the chroma style used when none is named.
const DefaultHighlightStyle = "github"

// ErrUnknownHighlightStyle indicates a chroma style name that is not registered.
var ErrUnknownHighlightStyle = errors.New("unknown highlight style")

// ChromaHighlighter highlights code blocks with chroma. Output uses CSS
// classes, so documents need the stylesheet from WriteCSS.
type ChromaHighlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewChromaHighlighter returns a highlighter for the named style. An empty
// name selects DefaultHighlightStyle.
func NewChromaHighlighter(style string) (*ChromaHighlighter, error) {
	if style == "" {
		style = DefaultHighlightStyle
	}
	s, ok := styles.Registry[style]
	if !ok {
		s, ok = styles.Registry[strings.ToLower(style)]
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHighlightStyle, style)
	}
	return &ChromaHighlighter{
		style: s,
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			chromahtml.PreventSurroundingPre(true),
		),
	}, nil
}

// Highlight renders code for the given language. It reports false when no
// lexer is registered for the language or tokenizing fails.
func (h *ChromaHighlighter) Highlight(code, language string) (string, bool) {
	lexer := lexers.Get(language)
	if lexer == nil {
		return "", false
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", false
	}

	var sb strings.Builder
	if err := h.formatter.Format(&sb, h.style, it); err != nil {
		return "", false
	}
	return sb.String(), true
}

// WriteCSS writes the stylesheet for the highlighter's style.
func (h *ChromaHighlighter) WriteCSS(w io.Writer) error {
	return h.formatter.WriteCSS(w, h.style)
}
