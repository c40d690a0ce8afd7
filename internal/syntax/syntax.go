// Package syntax holds the fixed line-level and span-level grammar of the org
// dialect as precompiled patterns.
//
// Line rules are evaluated in a fixed order by Classify; the first rule that
// matches wins. Inline rules are exposed as an ordered table for the inline
// tokenizer.
package syntax

import (
	"regexp"
	"strconv"
	"strings"
)

// Precompiled line patterns.
var (
	headingPattern       = regexp.MustCompile(`^(\*+)\s+(.+)$`)
	quoteBeginPattern    = regexp.MustCompile(`^#\+BEGIN_QUOTE(?::\s+(.+))?$`)
	quoteEndPattern      = regexp.MustCompile(`^#\+END_QUOTE$`)
	srcBeginPattern      = regexp.MustCompile(`^#\+BEGIN_SRC(?: \s*(.+))?$`)
	srcEndPattern        = regexp.MustCompile(`^#\+END_SRC`)
	orderedListPattern   = regexp.MustCompile(`^(\s*)(\d+)[.)]\s+(.+)$`)
	definitionPattern    = regexp.MustCompile(`^(\s*)[-+]\s+(.+?)\s*::\s*(.+)$`)
	unorderedListPattern = regexp.MustCompile(`^(\s*)[-+]\s+(.+)$`)
	tableRowPattern      = regexp.MustCompile(`^\s*\|((?:.+\|)+)\s*$`)
	blankLinePattern     = regexp.MustCompile(`^\s*$`)
)

// LineKind identifies which line rule matched.
type LineKind int

// Line kinds, in evaluation order.
const (
	LineHeading LineKind = iota
	LineQuoteBegin
	LineQuoteEnd
	LineVerbatimBegin
	LineVerbatimEnd
	LineOrderedItem
	LineDefinitionItem
	LineUnorderedItem
	LineTableRow
	LineBlank
	LineText
)

var lineKindNames = [...]string{
	LineHeading:        "heading",
	LineQuoteBegin:     "quote-begin",
	LineQuoteEnd:       "quote-end",
	LineVerbatimBegin:  "verbatim-begin",
	LineVerbatimEnd:    "verbatim-end",
	LineOrderedItem:    "ordered-item",
	LineDefinitionItem: "definition-item",
	LineUnorderedItem:  "unordered-item",
	LineTableRow:       "table-row",
	LineBlank:          "blank",
	LineText:           "text",
}

func (k LineKind) String() string {
	if k < 0 || int(k) >= len(lineKindNames) {
		return "LineKind(" + strconv.Itoa(int(k)) + ")"
	}
	return lineKindNames[k]
}

// Line is a classified input line with the captures of the matching rule.
// Fields not used by a kind are left zero.
type Line struct {
	Kind LineKind

	// Markers is the heading marker count.
	Markers int

	// Indent is the leading whitespace length of a list item.
	Indent int

	// Number is the numeral of an ordered item.
	Number int

	// Text is the heading title, item caption, definition title, or the
	// whole line for LineText.
	Text string

	// Description is the definition description.
	Description string

	// Cite is the optional quote citation.
	Cite string

	// Language is the optional verbatim block language tag.
	Language string

	// Cells are the non-empty pipe-delimited cells of a table row.
	Cells []string
}

// Classify applies the line rules in order and returns the first match.
// Lines matching no structural rule are LineText.
func Classify(line string) Line {
	if m := headingPattern.FindStringSubmatch(line); m != nil {
		return Line{Kind: LineHeading, Markers: len(m[1]), Text: m[2]}
	}
	if m := quoteBeginPattern.FindStringSubmatch(line); m != nil {
		return Line{Kind: LineQuoteBegin, Cite: m[1]}
	}
	if quoteEndPattern.MatchString(line) {
		return Line{Kind: LineQuoteEnd}
	}
	if m := srcBeginPattern.FindStringSubmatch(line); m != nil {
		return Line{Kind: LineVerbatimBegin, Language: strings.TrimSpace(m[1])}
	}
	if IsVerbatimClose(line) {
		return Line{Kind: LineVerbatimEnd}
	}
	if m := orderedListPattern.FindStringSubmatch(line); m != nil {
		// The numeral cannot overflow for realistic input; on failure the
		// start index falls back to zero.
		n, _ := strconv.Atoi(m[2])
		return Line{Kind: LineOrderedItem, Indent: len(m[1]), Number: n, Text: m[3]}
	}
	if m := definitionPattern.FindStringSubmatch(line); m != nil {
		return Line{Kind: LineDefinitionItem, Indent: len(m[1]), Text: m[2], Description: m[3]}
	}
	if m := unorderedListPattern.FindStringSubmatch(line); m != nil {
		return Line{Kind: LineUnorderedItem, Indent: len(m[1]), Text: m[2]}
	}
	if m := tableRowPattern.FindStringSubmatch(line); m != nil {
		return Line{Kind: LineTableRow, Cells: splitCells(m[1])}
	}
	if blankLinePattern.MatchString(line) {
		return Line{Kind: LineBlank}
	}
	return Line{Kind: LineText, Text: line}
}

// IsVerbatimClose reports whether line closes a verbatim block. It is the
// only rule evaluated for lines inside a verbatim block.
func IsVerbatimClose(line string) bool {
	return srcEndPattern.MatchString(line)
}

// splitCells splits the captured cell run on "|" and drops empty cells.
func splitCells(run string) []string {
	parts := strings.Split(run, "|")
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			cells = append(cells, p)
		}
	}
	return cells
}
