// Package inline splits a run of text into styled segments.
//
// The highest-priority inline rule that matches anywhere in the text wins,
// and only its leftmost occurrence is taken. Text before the match can only
// contain lower-priority markup and is tokenized recursively; text after the
// match is consumed in a loop, so recursion depth is bounded by the number of
// rules rather than by the length of the line.
package inline

import (
	"github.com/alnah/go-org2html/internal/syntax"
	"github.com/alnah/go-org2html/internal/tree"
)

// Tokenize splits text into raw and styled segments.
// Empty text yields no segments.
func Tokenize(text string) []tree.Segment {
	var segs []tree.Segment
	for text != "" {
		m, ok := syntax.FindInline(text)
		if !ok {
			segs = append(segs, tree.Raw(text))
			break
		}
		segs = append(segs, Tokenize(text[:m.Start])...)
		segs = append(segs, tree.Span(build(m)))
		text = text[m.End:]
	}
	return segs
}

// Verbatim returns text as a single raw segment, without looking for markup.
func Verbatim(text string) []tree.Segment {
	if text == "" {
		return nil
	}
	return []tree.Segment{tree.Raw(text)}
}

// build constructs the inline node for a match. Link titles and styled
// payloads are tokenized again; code payloads and image alts are literal.
func build(m syntax.InlineMatch) *tree.Inline {
	switch m.Kind {
	case syntax.InlineCode:
		return &tree.Inline{Kind: tree.InlineCode, Literal: m.Payload}
	case syntax.InlineLink:
		title := m.Payload
		if m.HasSecondary {
			title = m.Secondary
		}
		return &tree.Inline{Kind: tree.InlineLink, Target: m.Payload, Segments: Tokenize(title)}
	case syntax.InlineImage:
		return &tree.Inline{Kind: tree.InlineImage, Target: m.Payload, Alt: m.Secondary, HasAlt: m.HasSecondary}
	case syntax.InlineBold:
		return styled(tree.InlineBold, m.Payload)
	case syntax.InlineItalic:
		return styled(tree.InlineItalic, m.Payload)
	case syntax.InlineUnderline:
		return styled(tree.InlineUnderline, m.Payload)
	case syntax.InlineStrikethrough:
		return styled(tree.InlineStrikethrough, m.Payload)
	case syntax.InlineMonospace:
		return styled(tree.InlineMonospace, m.Payload)
	default:
		panic("inline: unhandled rule kind")
	}
}

func styled(kind tree.InlineKind, payload string) *tree.Inline {
	return &tree.Inline{Kind: kind, Segments: Tokenize(payload)}
}
