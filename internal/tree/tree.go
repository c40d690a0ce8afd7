// Package tree implements the document tree produced by the block parser.
//
// Nodes are stored in an arena owned by Tree and addressed by NodeID. Each
// node records its parent's ID, so walking up to the nearest ancestor of a
// given kind is O(depth) without pointer cycles. Styled inline content is
// not part of the arena: it hangs off leaf nodes as Segment values.
package tree

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrTooDeep indicates that appending a node would exceed the depth limit.
var ErrTooDeep = errors.New("document nesting too deep")

// NodeID addresses a node in a Tree.
type NodeID int

// Root is the ID of the document node of every Tree.
const Root NodeID = 0

// noParent marks the root's parent.
const noParent NodeID = -1

// Kind identifies the type of a node.
type Kind int

// Node kinds. Leaf kinds carry segments; the others carry children.
const (
	KindDocument Kind = iota
	KindParagraph
	KindHeading
	KindBlockquote
	KindCodeBlock
	KindOrderedList
	KindUnorderedList
	KindDefinitionList
	KindDefinitionItem
	KindTable
	KindTableRow
	KindTableCell
	KindText
	KindListItem
	KindDefinitionTitle
	KindDefinitionDescription
)

var kindNames = [...]string{
	KindDocument:              "Document",
	KindParagraph:             "Paragraph",
	KindHeading:               "Heading",
	KindBlockquote:            "Blockquote",
	KindCodeBlock:             "CodeBlock",
	KindOrderedList:           "OrderedList",
	KindUnorderedList:         "UnorderedList",
	KindDefinitionList:        "DefinitionList",
	KindDefinitionItem:        "DefinitionItem",
	KindTable:                 "Table",
	KindTableRow:              "TableRow",
	KindTableCell:             "TableCell",
	KindText:                  "Text",
	KindListItem:              "ListItem",
	KindDefinitionTitle:       "DefinitionTitle",
	KindDefinitionDescription: "DefinitionDescription",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// IsLeaf reports whether nodes of kind k hold segments instead of children.
func (k Kind) IsLeaf() bool {
	switch k {
	case KindText, KindListItem, KindDefinitionTitle, KindDefinitionDescription:
		return true
	}
	return false
}

// IsList reports whether k is one of the list kinds.
func (k Kind) IsList() bool {
	switch k {
	case KindOrderedList, KindUnorderedList, KindDefinitionList:
		return true
	}
	return false
}

// Node is a single arena entry.
type Node struct {
	Kind     Kind
	Parent   NodeID
	Children []NodeID

	// Depth is the heading depth, or the list indentation depth.
	Depth int

	// Title is the literal heading title.
	Title string

	// Start is the ordered-list start index.
	Start int

	// Cite is the blockquote citation; empty means none.
	Cite string

	// Language is the code block language tag; empty means none.
	Language string

	// Segments is the content of leaf nodes.
	Segments []Segment

	// level is the distance from the root, used for the depth guard.
	level int
}

// Tree is a document tree. The zero value is not usable; call New.
type Tree struct {
	nodes    []Node
	maxLevel int
}

// New returns a tree holding only the document node. maxLevel bounds the
// distance from the root of any appended node; zero or less means unbounded.
func New(maxLevel int) *Tree {
	return &Tree{
		nodes:    []Node{{Kind: KindDocument, Parent: noParent}},
		maxLevel: maxLevel,
	}
}

// Node returns the node with the given ID. The pointer is valid until the
// next Append.
func (t *Tree) Node(id NodeID) *Node {
	return &t.nodes[id]
}

// Kind returns the kind of the node with the given ID.
func (t *Tree) Kind(id NodeID) Kind {
	return t.nodes[id].Kind
}

// Parent returns the parent of id; the root is its own parent.
func (t *Tree) Parent(id NodeID) NodeID {
	if p := t.nodes[id].Parent; p != noParent {
		return p
	}
	return id
}

// Children returns the ordered child IDs of id.
func (t *Tree) Children(id NodeID) []NodeID {
	return t.nodes[id].Children
}

// Len returns the number of nodes, the document node included.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Append attaches n as the last child of parent and returns its ID.
func (t *Tree) Append(parent NodeID, n Node) (NodeID, error) {
	level := t.nodes[parent].level + 1
	if t.maxLevel > 0 && level > t.maxLevel {
		return 0, fmt.Errorf("%w: more than %d levels", ErrTooDeep, t.maxLevel)
	}
	n.Parent = parent
	n.Children = nil
	n.level = level
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	t.nodes[parent].Children = append(t.nodes[parent].Children, id)
	return id, nil
}

// String dumps the structure as Document(Kind(...) ...). Headings include
// their depth (Heading2); leaves print their kind only.
func (t *Tree) String() string {
	var sb strings.Builder
	t.dump(&sb, Root)
	return sb.String()
}

func (t *Tree) dump(sb *strings.Builder, id NodeID) {
	n := &t.nodes[id]
	sb.WriteString(n.Kind.String())
	if n.Kind == KindHeading {
		sb.WriteString(strconv.Itoa(n.Depth))
	}
	if n.Kind.IsLeaf() {
		return
	}
	sb.WriteByte('(')
	for i, c := range n.Children {
		if i > 0 {
			sb.WriteByte(' ')
		}
		t.dump(sb, c)
	}
	sb.WriteByte(')')
}
