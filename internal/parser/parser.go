// Package parser builds a document tree from org-style text.
//
// The parser is a line-driven state machine. It keeps a cursor on the node
// that receives the next child and moves it up and down the tree as headings,
// quotes, verbatim blocks, lists and tables open and close. Table cells are
// parsed by re-entering the same routine with the cell as the invocation
// root; each invocation owns its quote and verbatim flags, so a region
// opened inside a cell must also close inside it.
package parser

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/alnah/go-org2html/internal/inline"
	"github.com/alnah/go-org2html/internal/syntax"
	"github.com/alnah/go-org2html/internal/tree"
)

// DefaultMaxDepth bounds tree nesting when Options.MaxDepth is zero.
const DefaultMaxDepth = 512

// Sentinel errors.
var (
	// ErrNesting indicates a close marker without an open region, or a
	// region left open at the end of input.
	ErrNesting = errors.New("invalid nesting")

	// ErrInvalidHeadingLevel indicates a base heading level below 1.
	ErrInvalidHeadingLevel = errors.New("invalid base heading level")

	// ErrTooDeep indicates the document nests deeper than Options.MaxDepth.
	ErrTooDeep = tree.ErrTooDeep
)

var lineBreak = regexp.MustCompile(`\r\n?|\n`)

// Options configures a parse.
type Options struct {
	// BaseHeadingLevel is the depth of a single-marker heading. Zero means 1.
	BaseHeadingLevel int

	// MaxDepth bounds the distance of any node from the root. Zero means
	// DefaultMaxDepth; a negative value disables the limit.
	MaxDepth int
}

// Parse parses text into a document tree. Any structural error aborts the
// parse and no tree is returned.
func Parse(text string, opts Options) (*tree.Tree, error) {
	base := opts.BaseHeadingLevel
	if base == 0 {
		base = 1
	}
	if base < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHeadingLevel, base)
	}

	maxDepth := opts.MaxDepth
	if maxDepth == 0 {
		maxDepth = DefaultMaxDepth
	}

	p := &parser{t: tree.New(maxDepth), base: base}
	if err := p.parseLines(splitLines(text), tree.Root, 1); err != nil {
		return nil, err
	}
	return p.t, nil
}

// splitLines splits on any line ending. A trailing line ending does not
// produce an empty last line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := lineBreak.Split(text, -1)
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

type parser struct {
	t    *tree.Tree
	base int
}

// invocation is the state of one parseLines call.
type invocation struct {
	root   tree.NodeID
	cursor tree.NodeID

	inQuote    bool
	inVerbatim bool

	// Lines that opened the current regions, for error messages.
	quoteLine    int
	verbatimLine int
}

// parseLines parses lines into the subtree rooted at root. first is the
// line number of lines[0] in the whole input.
func (p *parser) parseLines(lines []string, root tree.NodeID, first int) error {
	inv := &invocation{root: root, cursor: root}

	for i, line := range lines {
		n := first + i

		if inv.inVerbatim && !syntax.IsVerbatimClose(line) {
			if err := p.appendLeaf(inv.cursor, tree.KindText, inline.Verbatim(line)); err != nil {
				return atLine(n, err)
			}
			continue
		}

		if err := p.parseLine(inv, syntax.Classify(line), n); err != nil {
			return atLine(n, err)
		}
	}

	if inv.inQuote {
		return atLine(inv.quoteLine, fmt.Errorf("%w: quote block is never closed", ErrNesting))
	}
	if inv.inVerbatim {
		return atLine(inv.verbatimLine, fmt.Errorf("%w: source block is never closed", ErrNesting))
	}
	return nil
}

func (p *parser) parseLine(inv *invocation, l syntax.Line, n int) error {
	var err error
	switch l.Kind {
	case syntax.LineHeading:
		err = p.addHeading(inv, l)
	case syntax.LineQuoteBegin:
		inv.inQuote, inv.quoteLine = true, n
		err = p.enter(inv, tree.Node{Kind: tree.KindBlockquote, Cite: l.Cite})
	case syntax.LineQuoteEnd:
		if !inv.inQuote {
			return fmt.Errorf("%w: quote end without begin", ErrNesting)
		}
		if !p.leave(inv, tree.KindBlockquote) {
			return fmt.Errorf("%w: quote end outside its block", ErrNesting)
		}
		inv.inQuote = false
	case syntax.LineVerbatimBegin:
		inv.inVerbatim, inv.verbatimLine = true, n
		err = p.enter(inv, tree.Node{Kind: tree.KindCodeBlock, Language: l.Language})
	case syntax.LineVerbatimEnd:
		if !inv.inVerbatim {
			return fmt.Errorf("%w: source end without begin", ErrNesting)
		}
		if !p.leave(inv, tree.KindCodeBlock) {
			return fmt.Errorf("%w: source end outside its block", ErrNesting)
		}
		inv.inVerbatim = false
	case syntax.LineOrderedItem:
		err = p.addListItem(inv, tree.KindOrderedList, l)
	case syntax.LineDefinitionItem:
		err = p.addListItem(inv, tree.KindDefinitionList, l)
	case syntax.LineUnorderedItem:
		err = p.addListItem(inv, tree.KindUnorderedList, l)
	case syntax.LineTableRow:
		err = p.addTableRow(inv, l, n)
	case syntax.LineBlank:
		if p.t.Kind(inv.cursor) == tree.KindParagraph {
			inv.cursor = p.t.Parent(inv.cursor)
		}
	case syntax.LineText:
		err = p.addText(inv, l.Text)
	default:
		panic(fmt.Sprintf("parser: unhandled line kind %v", l.Kind))
	}
	return err
}

// addHeading climbs to the nearest heading (or the invocation root), pops
// headings at least as deep as the new one, and enters the new heading.
func (p *parser) addHeading(inv *invocation, l syntax.Line) error {
	depth := l.Markers + p.base - 1

	c := inv.cursor
	for c != inv.root && p.t.Kind(c) != tree.KindHeading {
		c = p.t.Parent(c)
	}
	for p.t.Kind(c) == tree.KindHeading && p.t.Node(c).Depth >= depth {
		c = p.t.Parent(c)
	}

	inv.cursor = c
	return p.enter(inv, tree.Node{Kind: tree.KindHeading, Depth: depth, Title: l.Text})
}

// addListItem opens a nested list when the cursor is not a list of kind or
// the item is indented deeper than it, pops lists indented deeper than the
// item, then appends the item. The cursor stays on the list.
func (p *parser) addListItem(inv *invocation, kind tree.Kind, l syntax.Line) error {
	cur := p.t.Node(inv.cursor)
	if cur.Kind != kind || l.Indent > cur.Depth {
		list := tree.Node{Kind: kind, Depth: l.Indent}
		if kind == tree.KindOrderedList {
			list.Start = l.Number
		}
		if err := p.enter(inv, list); err != nil {
			return err
		}
	}
	for p.t.Kind(inv.cursor) == kind && l.Indent < p.t.Node(inv.cursor).Depth {
		inv.cursor = p.t.Parent(inv.cursor)
	}

	if kind != tree.KindDefinitionList {
		return p.appendLeaf(inv.cursor, tree.KindListItem, inline.Tokenize(l.Text))
	}

	item, err := p.t.Append(inv.cursor, tree.Node{Kind: tree.KindDefinitionItem})
	if err != nil {
		return err
	}
	if err := p.appendLeaf(item, tree.KindDefinitionTitle, inline.Tokenize(l.Text)); err != nil {
		return err
	}
	return p.appendLeaf(item, tree.KindDefinitionDescription, inline.Tokenize(l.Description))
}

// addTableRow appends a row to the open table, creating the table first if
// needed. Each cell is parsed as a one-line document rooted at the cell.
func (p *parser) addTableRow(inv *invocation, l syntax.Line, n int) error {
	if p.t.Kind(inv.cursor) != tree.KindTable {
		if err := p.enter(inv, tree.Node{Kind: tree.KindTable}); err != nil {
			return err
		}
	}
	row, err := p.t.Append(inv.cursor, tree.Node{Kind: tree.KindTableRow})
	if err != nil {
		return err
	}
	for _, text := range l.Cells {
		cell, err := p.t.Append(row, tree.Node{Kind: tree.KindTableCell})
		if err != nil {
			return err
		}
		if err := p.parseLines([]string{text}, cell, n); err != nil {
			return err
		}
	}
	return nil
}

// addText appends a text leaf to the cursor when it is an open block, or
// opens a paragraph under the root or a heading.
func (p *parser) addText(inv *invocation, line string) error {
	switch p.t.Kind(inv.cursor) {
	case tree.KindDocument, tree.KindHeading:
		if err := p.enter(inv, tree.Node{Kind: tree.KindParagraph}); err != nil {
			return err
		}
	}
	return p.appendLeaf(inv.cursor, tree.KindText, inline.Tokenize(line))
}

// enter appends n under the cursor and moves the cursor to it.
func (p *parser) enter(inv *invocation, n tree.Node) error {
	id, err := p.t.Append(inv.cursor, n)
	if err != nil {
		return err
	}
	inv.cursor = id
	return nil
}

// leave moves the cursor to the parent of the nearest enclosing node of
// kind. It reports false, leaving the cursor untouched, when the invocation
// root is reached first.
func (p *parser) leave(inv *invocation, kind tree.Kind) bool {
	c := inv.cursor
	for p.t.Kind(c) != kind {
		if c == inv.root {
			return false
		}
		c = p.t.Parent(c)
	}
	inv.cursor = p.t.Parent(c)
	return true
}

func (p *parser) appendLeaf(parent tree.NodeID, kind tree.Kind, segs []tree.Segment) error {
	_, err := p.t.Append(parent, tree.Node{Kind: kind, Segments: segs})
	return err
}

// LineError locates a parse error in the input.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// atLine wraps err in a LineError unless it already carries one, which is
// the case for errors raised while parsing a table cell.
func atLine(n int, err error) error {
	var le *LineError
	if errors.As(err, &le) {
		return err
	}
	return &LineError{Line: n, Err: err}
}
