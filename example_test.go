package org2html_test

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-org2html"
)

// Example converts a small document to an HTML fragment.
func Example() {
	html, err := org2html.Convert("* Hello\nThis is *org* text.")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(html)
	// Output: <h1>Hello</h1><p>This is<span style="font-weight: bold;">org</span> text.</p>
}

// Example_separator puts each element on its own line.
func Example_separator() {
	html, err := org2html.Convert("- one\n- two", org2html.WithChildSeparator("\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(html)
	// Output:
	// <ul><li>one</li>
	// <li>two</li></ul>
}

// Example_dump shows the document structure.
func Example_dump() {
	tree, err := org2html.Dump("* Title\ntext\n** Sub\n- term :: meaning")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tree)
	// Output: Document(Heading1(Paragraph(Text) Heading2(DefinitionList(DefinitionItem(DefinitionTitle DefinitionDescription)))))
}

// Example_nestingError reports the line of a malformed region.
func Example_nestingError() {
	_, err := org2html.Convert("text\n#+BEGIN_QUOTE\nquoted")

	var le *org2html.LineError
	if errors.Is(err, org2html.ErrNesting) && errors.As(err, &le) {
		fmt.Println("nesting error at line", le.Line)
	}
	// Output: nesting error at line 2
}

// ExampleConverter_Convert builds a standalone page.
// Setting Input.PDF also renders a PDF (requires Chrome).
func ExampleConverter_Convert() {
	conv, err := org2html.NewConverter(org2html.WithStyle("minimal"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer conv.Close()

	result, err := conv.Convert(context.Background(), org2html.Input{
		Org:        "* Report\nAll good.",
		Standalone: true,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	page := string(result.HTML)
	fmt.Println(strings.HasPrefix(page, "<!DOCTYPE html>"))
	fmt.Println(strings.Contains(page, "<title>Report</title>"))
	// Output:
	// true
	// true
}
