package org2html

import (
	"context"

	"github.com/alnah/go-org2html/internal/parser"
)

// Convert converts org text to an HTML fragment with no page scaffold.
// It is the one-shot form of Converter.Convert and never starts a browser.
//
//	html, err := org2html.Convert("* Title\nSome *bold* text")
//	// <h1>Title</h1><p>Some<span style="font-weight: bold;">bold</span> text</p>
func Convert(text string, opts ...Option) (string, error) {
	c, err := NewConverter(opts...)
	if err != nil {
		return "", err
	}
	defer c.Close()

	res, err := c.Convert(context.Background(), Input{Org: text})
	if err != nil {
		return "", err
	}
	return string(res.HTML), nil
}

// Dump parses org text and returns the structure of the document tree, for
// example "Document(Heading1(Paragraph(Text)))". Headings print with their
// depth; leaves print their kind only.
func Dump(text string, opts ...Option) (string, error) {
	c, err := NewConverter(opts...)
	if err != nil {
		return "", err
	}
	defer c.Close()

	t, err := parser.Parse(c.preprocessor.Preprocess(context.Background(), text), c.parseOptions())
	if err != nil {
		return "", err
	}
	return t.String(), nil
}
