// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines an abstract syntax tree for markup documents,
// a builder that constructs syntax trees from markup events, and encoders
// that render syntax trees as JSON.
package ast

import (
	"fmt"

	"github.com/creachadair/mtree"
	"go4.org/mem"
)

// A Node is a node of a markup syntax tree.
// The concrete type is one of *Tag, *Fragment, *Comment, or *Text.
type Node interface {
	// Span reports the location of the node in the source text.
	Span() mtree.Span

	// JSON returns the compact JSON encoding of the node.
	JSON() string

	appendJSON([]byte) []byte
}

func newSpan(pos, end int) mtree.Span { return mtree.Span{Pos: pos, End: end} }

// A Tag is an element with a name. Children is nil for a self-closing tag,
// and non-nil (but possibly empty) for a tag with a separate closing tag.
type Tag struct {
	pos, end int

	Name     mem.RO
	Attrs    mtree.Attributes
	Children []Node
}

// Span satisfies the Node interface. The span of a tag with children runs
// from its opening tag to the end of its closing tag.
func (t *Tag) Span() mtree.Span { return newSpan(t.pos, t.end) }

// SelfClosing reports whether t was written as a single tag (<t/>).
func (t *Tag) SelfClosing() bool { return t.Children == nil }

// Attr returns the value of the named attribute of t. If the attribute is a
// flag, its value is empty. The second result reports whether the attribute
// was present.
func (t *Tag) Attr(name string) (string, bool) {
	a, ok := t.Attrs.Get(name)
	if !ok {
		return "", false
	}
	return a.Value.StringCopy(), true
}

func (t *Tag) String() string {
	return fmt.Sprintf("Tag(%s, attrs=%d, children=%d)", t.Name.StringCopy(), len(t.Attrs), len(t.Children))
}

// A Fragment is an unnamed group of children, written <>...</>.
type Fragment struct {
	pos, end int

	Children []Node
}

// Span satisfies the Node interface.
func (f *Fragment) Span() mtree.Span { return newSpan(f.pos, f.end) }

func (f *Fragment) String() string { return fmt.Sprintf("Fragment(children=%d)", len(f.Children)) }

// A Comment is the text of a comment, without its markers.
type Comment struct {
	pos, end int

	Value mem.RO
}

// Span satisfies the Node interface.
func (c *Comment) Span() mtree.Span { return newSpan(c.pos, c.end) }

func (c *Comment) String() string { return fmt.Sprintf("Comment(%q)", c.Value.StringCopy()) }

// A Text is a run of text with no surrounding whitespace.
type Text struct {
	pos, end int

	Value mem.RO
}

// Span satisfies the Node interface.
func (t *Text) Span() mtree.Span { return newSpan(t.pos, t.end) }

func (t *Text) String() string { return fmt.Sprintf("Text(%q)", t.Value.StringCopy()) }

// NewTag constructs a tag with the given name and attributes. If self is true
// the tag is self-closing; otherwise it has the given children (if any).
func NewTag(name string, attrs mtree.Attributes, self bool, children ...Node) *Tag {
	t := &Tag{Name: mem.S(name), Attrs: attrs}
	if !self {
		t.Children = append([]Node{}, children...)
	}
	return t
}

// NewFragment constructs a fragment with the given children.
func NewFragment(children ...Node) *Fragment {
	return &Fragment{Children: append([]Node{}, children...)}
}

// NewComment constructs a comment with the given text.
func NewComment(text string) *Comment { return &Comment{Value: mem.S(text)} }

// NewText constructs a text node with the given text.
func NewText(text string) *Text { return &Text{Value: mem.S(text)} }

// String constructs a string-valued attribute.
func String(name, value string) mtree.Attr {
	return mtree.Attr{Name: mem.S(name), Value: mem.S(value)}
}

// Flag constructs a presence-only attribute.
func Flag(name string) mtree.Attr { return mtree.Attr{Name: mem.S(name), Flag: true} }
