// Package render turns a document tree into an HTML fragment.
//
// Every node kind maps to a fixed pair of tags. Composite nodes render their
// children joined by Options.Separator; leaves render their segments back to
// back. Text is emitted as written, except for inline code whose angle
// brackets are escaped, and attribute values whose double quotes are
// escaped. Headings concatenate their nested sections without the separator.
package render

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/alnah/go-org2html/internal/tree"
)

// Highlighter produces highlighted markup for a code block. It reports false
// when it cannot handle the language, in which case the block is rendered
// as plain text.
type Highlighter interface {
	Highlight(code, language string) (string, bool)
}

// Options configures rendering.
type Options struct {
	// Separator is inserted between sibling renderings.
	Separator string

	// Highlighter, when set, renders code blocks that declare a language.
	Highlighter Highlighter
}

var (
	codeEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer(`"`, "&quot;")
)

// HTML renders t as an HTML fragment.
func HTML(t *tree.Tree, opts Options) string {
	r := &renderer{t: t, opts: opts}
	r.children(tree.Root, false)
	return r.sb.String()
}

type renderer struct {
	t    *tree.Tree
	opts Options
	sb   strings.Builder
}

// children renders the children of id joined by the separator. trim is set
// below a table cell, where raw text is trimmed on both sides.
func (r *renderer) children(id tree.NodeID, trim bool) {
	for i, c := range r.t.Children(id) {
		if i > 0 {
			r.sb.WriteString(r.opts.Separator)
		}
		r.node(c, trim)
	}
}

func (r *renderer) node(id tree.NodeID, trim bool) {
	n := r.t.Node(id)
	switch n.Kind {
	case tree.KindDocument:
		r.children(id, trim)
	case tree.KindHeading:
		r.heading(id, n)
	case tree.KindParagraph:
		r.wrap(id, "<p>", "</p>", trim)
	case tree.KindBlockquote:
		open := "<blockquote>"
		if n.Cite != "" {
			open = `<blockquote cite="` + attrEscaper.Replace(n.Cite) + `">`
		}
		r.wrap(id, open, "</blockquote>", trim)
	case tree.KindCodeBlock:
		r.codeBlock(id, n)
	case tree.KindOrderedList:
		r.wrap(id, "<ol>", "</ol>", trim)
	case tree.KindUnorderedList:
		r.wrap(id, "<ul>", "</ul>", trim)
	case tree.KindDefinitionList:
		r.wrap(id, "<dl>", "</dl>", trim)
	case tree.KindDefinitionItem:
		r.children(id, trim)
	case tree.KindTable:
		r.wrap(id, "<table>", "</table>", trim)
	case tree.KindTableRow:
		r.wrap(id, "<tr>", "</tr>", trim)
	case tree.KindTableCell:
		r.wrap(id, "<td>", "</td>", true)
	case tree.KindText:
		r.segments(n.Segments, trim)
	case tree.KindListItem:
		r.leaf(n.Segments, "<li>", "</li>", trim)
	case tree.KindDefinitionTitle:
		r.leaf(n.Segments, "<dt>", "</dt>", trim)
	case tree.KindDefinitionDescription:
		r.leaf(n.Segments, "<dd>", "</dd>", trim)
	default:
		panic("render: unhandled node kind " + n.Kind.String())
	}
}

func (r *renderer) wrap(id tree.NodeID, open, end string, trim bool) {
	r.sb.WriteString(open)
	r.children(id, trim)
	r.sb.WriteString(end)
}

func (r *renderer) leaf(segs []tree.Segment, open, end string, trim bool) {
	r.sb.WriteString(open)
	r.segments(segs, trim)
	r.sb.WriteString(end)
}

// heading renders the title followed by the nested sections. Sections are
// concatenated without the separator.
func (r *renderer) heading(id tree.NodeID, n *tree.Node) {
	depth := strconv.Itoa(n.Depth)
	r.sb.WriteString("<h" + depth + ">" + n.Title + "</h" + depth + ">")
	for _, c := range r.t.Children(id) {
		r.node(c, false)
	}
}

// codeBlock renders source lines like any other composite. A configured
// highlighter takes over for blocks that declare a language it knows.
func (r *renderer) codeBlock(id tree.NodeID, n *tree.Node) {
	if n.Language == "" {
		r.wrap(id, "<pre><code>", "</code></pre>", false)
		return
	}

	class := attrEscaper.Replace(n.Language)
	if r.opts.Highlighter != nil {
		if out, ok := r.opts.Highlighter.Highlight(r.source(id), n.Language); ok {
			r.sb.WriteString(`<pre class="chroma"><code class="` + class + `">` + out + "</code></pre>")
			return
		}
	}
	r.wrap(id, `<pre><code class="`+class+`">`, "</code></pre>", false)
}

// source returns the block's lines joined by newlines, for highlighting.
func (r *renderer) source(id tree.NodeID) string {
	children := r.t.Children(id)
	lines := make([]string, 0, len(children))
	for _, c := range children {
		var sb strings.Builder
		for _, s := range r.t.Node(c).Segments {
			sb.WriteString(s.Text)
		}
		lines = append(lines, rtrim(sb.String()))
	}
	return strings.Join(lines, "\n")
}

func (r *renderer) segments(segs []tree.Segment, trim bool) {
	for _, s := range segs {
		if s.IsRaw() {
			if trim {
				r.sb.WriteString(strings.TrimSpace(s.Text))
			} else {
				r.sb.WriteString(rtrim(s.Text))
			}
			continue
		}
		r.inline(s.Inline)
	}
}

func (r *renderer) inline(in *tree.Inline) {
	switch in.Kind {
	case tree.InlineBold:
		r.span(`<span style="font-weight: bold;">`, in.Segments)
	case tree.InlineItalic:
		r.span(`<span style="text-style: italic;">`, in.Segments)
	case tree.InlineUnderline:
		r.span(`<span style="text-decoration: underlined;">`, in.Segments)
	case tree.InlineStrikethrough:
		r.span(`<span style="text-decoration: line-through;">`, in.Segments)
	case tree.InlineMonospace:
		r.span(`<span style="font-family: monospace;">`, in.Segments)
	case tree.InlineCode:
		r.sb.WriteString("<code>" + codeEscaper.Replace(strings.TrimSpace(in.Literal)) + "</code>")
	case tree.InlineLink:
		r.sb.WriteString(`<a href="` + attrEscaper.Replace(in.Target) + `">`)
		r.segments(in.Segments, false)
		r.sb.WriteString("</a>")
	case tree.InlineImage:
		r.sb.WriteString(`<img src="` + attrEscaper.Replace(in.Target) + `"`)
		if in.HasAlt {
			r.sb.WriteString(` alt="` + attrEscaper.Replace(in.Alt) + `"`)
		}
		r.sb.WriteString(">")
	default:
		panic("render: unhandled inline kind " + in.Kind.String())
	}
}

func (r *renderer) span(open string, segs []tree.Segment) {
	r.sb.WriteString(open)
	r.segments(segs, false)
	r.sb.WriteString("</span>")
}

func rtrim(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
