package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnah/go-org2html/internal/parser"
	"github.com/alnah/go-org2html/internal/render"
	"github.com/alnah/go-org2html/internal/tree"
)

// ErrHTMLConversion indicates the renderer failed unexpectedly.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// Fragment is the output of a conversion: body markup without a page
// scaffold, plus the title of the first heading when the document has one.
type Fragment struct {
	HTML  string
	Title string
}

// HTMLConverter converts org text to an HTML fragment.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (*Fragment, error)
}

// OrgConverter runs the parser and renderer.
type OrgConverter struct {
	parse  parser.Options
	render render.Options
}

// NewOrgConverter creates an OrgConverter.
func NewOrgConverter(parseOpts parser.Options, renderOpts render.Options) *OrgConverter {
	return &OrgConverter{parse: parseOpts, render: renderOpts}
}

// ToHTML parses content and renders it. Parse errors are returned as is so
// callers can match parser.ErrNesting and friends. The work runs in a
// goroutine so a cancelled context returns promptly.
func (c *OrgConverter) ToHTML(ctx context.Context, content string) (*Fragment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type result struct {
		frag *Fragment
		err  error
	}

	done := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, r)}
			}
		}()

		t, err := parser.Parse(content, c.parse)
		if err != nil {
			done <- result{err: err}
			return
		}
		done <- result{frag: &Fragment{
			HTML:  render.HTML(t, c.render),
			Title: FirstHeading(t),
		}}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.frag, r.err
	}
}

// FirstHeading returns the title of the first heading in document order,
// or "" when there is none.
func FirstHeading(t *tree.Tree) string {
	var walk func(tree.NodeID) (string, bool)
	walk = func(id tree.NodeID) (string, bool) {
		for _, c := range t.Children(id) {
			n := t.Node(c)
			if n.Kind == tree.KindHeading {
				return n.Title, true
			}
			if title, ok := walk(c); ok {
				return title, true
			}
		}
		return "", false
	}
	title, _ := walk(tree.Root)
	return title
}

var _ HTMLConverter = (*OrgConverter)(nil)
