package inline_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-org2html/internal/inline"
	"github.com/alnah/go-org2html/internal/tree"
)

func raw(s string) tree.Segment { return tree.Raw(s) }

func span(kind tree.InlineKind, segs ...tree.Segment) tree.Segment {
	return tree.Span(&tree.Inline{Kind: kind, Segments: segs})
}

// ---------------------------------------------------------------------------
// TestTokenize_Outline - Segment shapes, checked through the dump notation
// ---------------------------------------------------------------------------

func TestTokenize_Outline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"link", "[[http://example.com]]", "Link"},
		{"link with title", "[[http://example.com][example]]", "Link"},
		{"link between text", "hoge[[http://example.com]]fuga", "hogeLinkfuga"},
		{"image", "[[picture.png]]", "Image"},
		{"link then image", "hoge[[http://example.com]]fuga[[picture]]piyo", "hogeLinkfugaImagepiyo"},
		{"image then link", "hoge[[picture]]fuga[[http://example.com]]piyo", "hogeImagefugaLinkpiyo"},
		{"bold", "hoge*bold*fuga", "hogeBoldTextfuga"},
		{"italic", "hoge/italic/fuga", "hogeItalicTextfuga"},
		{"underlined", "hoge_underlined_fuga", "hogeUnderlinedTextfuga"},
		{"linethrough", "hoge+linethrough+fuga", "hogeLinethroughTextfuga"},
		{"inline code", "hoge=code=fuga", "hogeInlineCodeTextfuga"},
		{"monospace", "hoge~mono~fuga", "hogeMonospaceTextfuga"},
		{"two bolds", "*a* and *b*", "BoldText and BoldText"},
		{"mixed kinds", "/i/ *b* _u_", "ItalicText BoldText UnderlinedText"},
		{"unmatched markers", "2 * 3 / 4", "2 * 3 / 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tree.Outline(inline.Tokenize(tt.text))
			if got != tt.want {
				t.Errorf("Outline(Tokenize(%q)) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestTokenize - Full segment structure
// ---------------------------------------------------------------------------

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []tree.Segment
	}{
		{
			name: "empty",
			text: "",
			want: nil,
		},
		{
			name: "plain",
			text: "plain text",
			want: []tree.Segment{raw("plain text")},
		},
		{
			name: "bold between text",
			text: "para*para*2",
			want: []tree.Segment{raw("para"), span(tree.InlineBold, raw("para")), raw("2")},
		},
		{
			name: "code payload is literal",
			text: "=*not bold*=",
			want: []tree.Segment{tree.Span(&tree.Inline{Kind: tree.InlineCode, Literal: "*not bold*"})},
		},
		{
			name: "link title defaults to target",
			text: "[[http://example.com]]",
			want: []tree.Segment{tree.Span(&tree.Inline{
				Kind:     tree.InlineLink,
				Target:   "http://example.com",
				Segments: []tree.Segment{raw("http://example.com")},
			})},
		},
		{
			name: "link title is tokenized",
			text: "[[http://example.com][a *big* site]]",
			want: []tree.Segment{tree.Span(&tree.Inline{
				Kind:     tree.InlineLink,
				Target:   "http://example.com",
				Segments: []tree.Segment{raw("a "), span(tree.InlineBold, raw("big")), raw(" site")},
			})},
		},
		{
			name: "image without alt",
			text: "[[image]]",
			want: []tree.Segment{tree.Span(&tree.Inline{Kind: tree.InlineImage, Target: "image"})},
		},
		{
			name: "image with alt",
			text: "[[cat.png][a cat]]",
			want: []tree.Segment{tree.Span(&tree.Inline{
				Kind: tree.InlineImage, Target: "cat.png", Alt: "a cat", HasAlt: true,
			})},
		},
		{
			name: "italic payload holds lower-priority markup",
			text: "/it _u_/",
			want: []tree.Segment{span(tree.InlineItalic, raw("it "), span(tree.InlineUnderline, raw("u")))},
		},
		{
			name: "lower priority before higher priority",
			text: "_u_ then *b*",
			want: []tree.Segment{
				span(tree.InlineUnderline, raw("u")),
				raw(" then "),
				span(tree.InlineBold, raw("b")),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := inline.Tokenize(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestVerbatim - No-parse mode
// ---------------------------------------------------------------------------

func TestVerbatim(t *testing.T) {
	t.Parallel()

	got := inline.Verbatim("x = *y* + [[z]]")
	want := []tree.Segment{raw("x = *y* + [[z]]")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Verbatim mismatch (-want +got):\n%s", diff)
	}

	if got := inline.Verbatim(""); got != nil {
		t.Errorf("Verbatim(\"\") = %v, want nil", got)
	}
}

// ---------------------------------------------------------------------------
// TestTokenize_LongLine - Many matches do not deepen recursion
// ---------------------------------------------------------------------------

func TestTokenize_LongLine(t *testing.T) {
	t.Parallel()

	const n = 1000
	text := strings.Repeat("*b* ", n)
	segs := inline.Tokenize(text)
	if len(segs) != 2*n {
		t.Errorf("len(Tokenize) = %d, want %d", len(segs), 2*n)
	}
}
