package syntax

import "regexp"

// InlineKind identifies an inline rule.
type InlineKind int

// Inline rule kinds, in priority order.
const (
	InlineCode InlineKind = iota
	InlineLink
	InlineImage
	InlineBold
	InlineItalic
	InlineUnderline
	InlineStrikethrough
	InlineMonospace
)

// InlineRule pairs an inline kind with its delimiter pattern.
// Group 1 is the payload (or link/image target); group 2, when present, is
// the optional link title or image alt text.
type InlineRule struct {
	Kind    InlineKind
	Pattern *regexp.Regexp
}

// InlineRules is the inline grammar in priority order. Code comes first so
// its payload is never re-parsed for other markup.
var InlineRules = []InlineRule{
	{InlineCode, regexp.MustCompile(`=(.+?)=`)},
	{InlineLink, regexp.MustCompile(`\[\[(https?://.+?)\](?:\[(.+?)\])?\]`)},
	{InlineImage, regexp.MustCompile(`\[\[(.+?)\](?:\[(.+?)\])?\]`)},
	{InlineBold, regexp.MustCompile(`\*(.+?)\*`)},
	{InlineItalic, regexp.MustCompile(`/(.+?)/`)},
	{InlineUnderline, regexp.MustCompile(`_(.+?)_`)},
	{InlineStrikethrough, regexp.MustCompile(`\+(.+?)\+`)},
	{InlineMonospace, regexp.MustCompile(`~(.+?)~`)},
}

// InlineMatch is the leftmost match of the highest-priority inline rule.
type InlineMatch struct {
	Kind InlineKind

	// Start and End delimit the whole match in the scanned text.
	Start, End int

	// Payload is group 1.
	Payload string

	// Secondary is group 2; HasSecondary is false when the group did not
	// participate in the match.
	Secondary    string
	HasSecondary bool
}

// FindInline returns the match of the first rule (in priority order) that
// matches anywhere in text. Only that rule's leftmost occurrence is reported.
func FindInline(text string) (InlineMatch, bool) {
	for _, rule := range InlineRules {
		loc := rule.Pattern.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		m := InlineMatch{
			Kind:    rule.Kind,
			Start:   loc[0],
			End:     loc[1],
			Payload: text[loc[2]:loc[3]],
		}
		if len(loc) >= 6 && loc[4] >= 0 {
			m.Secondary = text[loc[4]:loc[5]]
			m.HasSecondary = true
		}
		return m, true
	}
	return InlineMatch{}, false
}
