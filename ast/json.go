// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"io"

	"github.com/creachadair/mtree"
)

// JSON returns the compact JSON encoding of a sequence of nodes, as an
// array. An empty sequence encodes as "[]".
func JSON(nodes []Node) string { return string(appendNodes(nil, nodes)) }

// Encode writes the compact JSON encoding of nodes to w.
func Encode(w io.Writer, nodes []Node) error {
	_, err := w.Write(appendNodes(nil, nodes))
	return err
}

func appendNodes(buf []byte, nodes []Node) []byte {
	buf = append(buf, '[')
	for i, n := range nodes {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = n.appendJSON(buf)
	}
	return append(buf, ']')
}

func appendAttrs(buf []byte, attrs mtree.Attributes) []byte {
	buf = append(buf, '{')
	for i, a := range attrs {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = mtree.AppendQuote(buf, a.Name)
		buf = append(buf, ':')
		if a.Flag {
			buf = append(buf, "true"...)
		} else {
			buf = mtree.AppendQuote(buf, a.Value)
		}
	}
	return append(buf, '}')
}

// JSON satisfies the Node interface.
func (t *Tag) JSON() string { return string(t.appendJSON(nil)) }

func (t *Tag) appendJSON(buf []byte) []byte {
	buf = append(buf, `{"type":"Tag","nodename":`...)
	buf = mtree.AppendQuote(buf, t.Name)
	if t.Attrs != nil {
		buf = append(buf, `,"props":`...)
		buf = appendAttrs(buf, t.Attrs)
	}
	if t.Children != nil {
		buf = append(buf, `,"children":`...)
		buf = appendNodes(buf, t.Children)
	}
	return append(buf, '}')
}

// JSON satisfies the Node interface.
func (f *Fragment) JSON() string { return string(f.appendJSON(nil)) }

func (f *Fragment) appendJSON(buf []byte) []byte {
	buf = append(buf, `{"type":"Fragment"`...)
	if f.Children != nil {
		buf = append(buf, `,"children":`...)
		buf = appendNodes(buf, f.Children)
	}
	return append(buf, '}')
}

// JSON satisfies the Node interface.
func (c *Comment) JSON() string { return string(c.appendJSON(nil)) }

func (c *Comment) appendJSON(buf []byte) []byte {
	buf = append(buf, `{"type":"Comment","value":`...)
	buf = mtree.AppendQuote(buf, c.Value)
	return append(buf, '}')
}

// JSON satisfies the Node interface. A text node encodes as a bare string.
func (t *Text) JSON() string { return string(t.appendJSON(nil)) }

func (t *Text) appendJSON(buf []byte) []byte { return mtree.AppendQuote(buf, t.Value) }
