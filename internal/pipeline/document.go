package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
)

// DefaultTitle is used for standalone pages without a title.
const DefaultTitle = "Document"

// ErrDocumentRender indicates the page template failed to execute.
var ErrDocumentRender = errors.New("document template rendering failed")

// DocumentData is the data passed to the page template.
type DocumentData struct {
	Title string
	Body  template.HTML
}

// DocumentWrapper wraps an HTML fragment into a complete page.
type DocumentWrapper interface {
	Wrap(ctx context.Context, fragment, title string) (string, error)
}

// TemplateWrapper renders fragments through an html/template page.
type TemplateWrapper struct {
	tmpl *template.Template
}

// NewTemplateWrapper parses tmplContent. The template receives a
// DocumentData value.
func NewTemplateWrapper(tmplContent string) (*TemplateWrapper, error) {
	tmpl, err := template.New("document").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing document template: %w", err)
	}
	return &TemplateWrapper{tmpl: tmpl}, nil
}

// Wrap renders the page around fragment. The fragment is inserted verbatim;
// the title is escaped by the template. An empty title becomes DefaultTitle.
func (w *TemplateWrapper) Wrap(ctx context.Context, fragment, title string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if title == "" {
		title = DefaultTitle
	}

	var buf bytes.Buffer
	data := DocumentData{Title: title, Body: template.HTML(fragment)} // #nosec G203 -- fragment is renderer output
	if err := w.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRender, err)
	}
	return buf.String(), nil
}

var _ DocumentWrapper = (*TemplateWrapper)(nil)
