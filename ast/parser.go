// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"

	"github.com/creachadair/mds/stack"
	"github.com/creachadair/mtree"
	"go4.org/mem"
)

// Options control how a syntax tree is built from markup events.
// A nil *Options is ready for use and provides default settings.
type Options struct {
	// Strict, if true, reports an error for a closing tag or fragment marker
	// that does not match the innermost open element. By default such a
	// closer is discarded.
	Strict bool
}

func (o *Options) strict() bool { return o != nil && o.Strict }

// Parse parses and returns the top-level nodes of the markup document in src
// with default options.
func Parse(src string) ([]Node, error) { return (*Options)(nil).Parse(mem.S(src)) }

// Build constructs the top-level nodes of a document from the given events
// with default options.
func Build(events []mtree.Event) ([]Node, error) { return (*Options)(nil).Build(events) }

// MustParse parses src as by Parse, and panics if parsing fails.
func MustParse(src string) []Node {
	nodes, err := Parse(src)
	if err != nil {
		panic(fmt.Sprintf("parse failed: %v", err))
	}
	return nodes
}

// Parse parses and returns the top-level nodes of the markup document in src.
// The nodes refer to the contents of src. In case of error, no nodes are
// returned.
func (o *Options) Parse(src mem.RO) ([]Node, error) {
	h := o.newHandler()
	if err := mtree.NewStream(src).Parse(h); err != nil {
		return nil, err
	}
	return h.root, nil
}

// Build constructs the top-level nodes of a document from the given events,
// pairing each opening tag or fragment with its closer. In case of error, no
// nodes are returned.
func (o *Options) Build(events []mtree.Event) ([]Node, error) {
	h := o.newHandler()
	if err := mtree.Replay(events, h); err != nil {
		return nil, err
	}
	return h.root, nil
}

func (o *Options) newHandler() *parseHandler {
	return &parseHandler{strict: o.strict(), stk: stack.New[Node]()}
}

// A parseHandler implements the mtree.Handler interface to construct syntax
// trees for markup documents.
//
// Open tags and fragments are kept on an explicit stack rather than the call
// stack, so the depth of nesting is limited only by memory.
type parseHandler struct {
	strict bool
	stk    *stack.Stack[Node] // open *Tag and *Fragment values
	root   []Node
}

// add appends n to the children of the innermost open element, or to the top
// level if there is none.
func (h *parseHandler) add(n Node) {
	top, ok := h.stk.Peek(0)
	if !ok {
		h.root = append(h.root, n)
		return
	}
	switch t := top.(type) {
	case *Tag:
		t.Children = append(t.Children, n)
	case *Fragment:
		t.Children = append(t.Children, n)
	default:
		panic(fmt.Sprintf("unexpected open node %T", top))
	}
}

// close pops the innermost open element, which ends at end, and adds it to
// its parent.
func (h *parseHandler) close(end int) {
	top, _ := h.stk.Pop()
	switch t := top.(type) {
	case *Tag:
		t.end = end
	case *Fragment:
		t.end = end
	}
	h.add(top)
}

// mismatch handles a closer that does not match the innermost open element.
func (h *parseHandler) mismatch(e *mtree.Event) error {
	if !h.strict {
		return nil // discard
	}
	return &mtree.SyntaxError{
		Offset:  e.Span.Pos,
		Message: fmt.Sprintf("%v: %v", mtree.ErrUnexpectedClose, e),
		Err:     mtree.ErrUnexpectedClose,
	}
}

func (h *parseHandler) Tag(e *mtree.Event) error {
	t := &Tag{pos: e.Span.Pos, end: e.Span.End, Name: e.Name, Attrs: e.Attrs}
	if e.SelfClosing {
		h.add(t)
		return nil
	}
	t.Children = []Node{}
	h.stk.Push(t)
	return nil
}

func (h *parseHandler) TagEnd(e *mtree.Event) error {
	if top, ok := h.stk.Peek(0); ok {
		if t, ok := top.(*Tag); ok && t.Name.Equal(e.Name) {
			h.close(e.Span.End)
			return nil
		}
	}
	return h.mismatch(e)
}

func (h *parseHandler) Fragment(e *mtree.Event) error {
	h.stk.Push(&Fragment{pos: e.Span.Pos, end: e.Span.End, Children: []Node{}})
	return nil
}

func (h *parseHandler) FragmentEnd(e *mtree.Event) error {
	if top, ok := h.stk.Peek(0); ok {
		if _, ok := top.(*Fragment); ok {
			h.close(e.Span.End)
			return nil
		}
	}
	return h.mismatch(e)
}

func (h *parseHandler) Comment(e *mtree.Event) error {
	h.add(&Comment{pos: e.Span.Pos, end: e.Span.End, Value: e.Text})
	return nil
}

func (h *parseHandler) Text(e *mtree.Event) error {
	h.add(&Text{pos: e.Span.Pos, end: e.Span.End, Value: e.Text})
	return nil
}

func (h *parseHandler) EndOfInput() error {
	top, ok := h.stk.Peek(0)
	if !ok {
		return nil
	}
	var what string
	switch t := top.(type) {
	case *Tag:
		what = fmt.Sprintf("<%s> is not closed", t.Name.StringCopy())
	default:
		what = "<> is not closed"
	}
	return &mtree.SyntaxError{
		Offset:  top.Span().Pos,
		Message: fmt.Sprintf("%v: %s", mtree.ErrUnterminatedStructure, what),
		Err:     mtree.ErrUnterminatedStructure,
	}
}
