package tree

import "strings"

// InlineKind identifies a styled inline node.
type InlineKind int

// Inline kinds.
const (
	InlineBold InlineKind = iota
	InlineItalic
	InlineUnderline
	InlineStrikethrough
	InlineCode
	InlineMonospace
	InlineLink
	InlineImage
)

var inlineKindNames = [...]string{
	InlineBold:          "BoldText",
	InlineItalic:        "ItalicText",
	InlineUnderline:     "UnderlinedText",
	InlineStrikethrough: "LinethroughText",
	InlineCode:          "InlineCodeText",
	InlineMonospace:     "MonospaceText",
	InlineLink:          "Link",
	InlineImage:         "Image",
}

func (k InlineKind) String() string {
	if k < 0 || int(k) >= len(inlineKindNames) {
		return "InlineKind(?)"
	}
	return inlineKindNames[k]
}

// Inline is a styled span. Which fields are set depends on Kind:
//   - Code: Literal
//   - Link: Target and Segments (the display text)
//   - Image: Target, plus Alt when HasAlt
//   - everything else: Segments
type Inline struct {
	Kind     InlineKind
	Segments []Segment
	Target   string
	Alt      string
	HasAlt   bool
	Literal  string
}

// Segment is either raw text or a nested inline node.
type Segment struct {
	Text   string
	Inline *Inline
}

// Raw returns a raw text segment.
func Raw(s string) Segment {
	return Segment{Text: s}
}

// Span returns a segment wrapping in.
func Span(in *Inline) Segment {
	return Segment{Inline: in}
}

// IsRaw reports whether s is raw text.
func (s Segment) IsRaw() bool {
	return s.Inline == nil
}

// Outline renders segments the way the structural dump shows leaf content:
// raw text verbatim, inline nodes by kind name.
func Outline(segs []Segment) string {
	var sb strings.Builder
	for _, s := range segs {
		if s.IsRaw() {
			sb.WriteString(s.Text)
			continue
		}
		sb.WriteString(s.Inline.Kind.String())
	}
	return sb.String()
}
