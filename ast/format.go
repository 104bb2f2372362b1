// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"bytes"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/creachadair/mtree"
	"go4.org/mem"
)

// A Formatter carries the settings for pretty-printing syntax trees as JSON.
// A zero value is ready for use with default settings.
//
// The formatted output has the same JSON value as the compact encoding
// produced by the JSON function; only whitespace differs.
type Formatter struct {
	// Indent is the text used for each level of indentation.
	// If empty, two spaces are used.
	Indent string
}

func (f Formatter) indent() string {
	if f.Indent == "" {
		return "  "
	}
	return f.Indent
}

func (f Formatter) maxLineItems() int { return 3 }

// Format renders a pretty-printed representation of nodes to w with default
// settings.
func Format(w io.Writer, nodes []Node) error {
	var f Formatter
	return f.Format(w, nodes)
}

// FormatToString formats nodes to a string with default settings.
// In case of error in formatting, it returns an empty string.
func FormatToString(nodes []Node) string {
	var buf bytes.Buffer
	if Format(&buf, nodes) != nil {
		return ""
	}
	return buf.String()
}

// Format renders a pretty-printed representation of nodes to w using the
// settings from f. The output ends with a newline.
func (f Formatter) Format(w io.Writer, nodes []Node) error {
	tw := tabwriter.NewWriter(w, 4, 4, 1, ' ', 0)
	f.formatList(tw, nodes, "")
	io.WriteString(tw, "\n")
	return tw.Flush()
}

type writeFlusher interface {
	io.Writer
	Flush() error
}

// A field is one key-value member of a rendered object.
type field struct {
	key    string // JSON-encoded
	boring bool
	value  func(w writeFlusher, indent string)
}

func (f Formatter) formatList(w writeFlusher, nodes []Node, indent string) {
	if f.isBoringList(nodes) {
		io.WriteString(w, "[")
		for i, n := range nodes {
			if i > 0 {
				io.WriteString(w, ", ")
			}
			f.formatNode(w, n, indent)
		}
		io.WriteString(w, "]")
		return
	}

	fmt.Fprint(w, "[\n")
	ndent := indent + f.indent()
	for i, n := range nodes {
		io.WriteString(w, ndent)
		f.formatNode(w, n, ndent)
		if i < len(nodes)-1 {
			io.WriteString(w, ",")
		}
		io.WriteString(w, "\n")
	}
	w.Flush()
	fmt.Fprint(w, indent, "]")
}

func (f Formatter) formatNode(w writeFlusher, n Node, indent string) {
	switch t := n.(type) {
	case *Text:
		io.WriteString(w, quote(t.Value))
	case *Comment, *Tag, *Fragment:
		f.formatObject(w, f.fields(n), f.isBoring(n), indent)
	default:
		panic(fmt.Sprintf("unknown node type %T", n))
	}
}

// fields returns the members of the JSON object for n, in encoding order.
func (f Formatter) fields(n Node) []field {
	str := func(key, s string) field {
		return field{key: mtree.Quote(key), boring: true, value: func(w writeFlusher, _ string) {
			io.WriteString(w, s)
		}}
	}
	kids := func(nodes []Node) field {
		return field{key: `"children"`, boring: f.isBoringList(nodes), value: func(w writeFlusher, indent string) {
			f.formatList(w, nodes, indent)
		}}
	}

	switch t := n.(type) {
	case *Comment:
		return []field{str("type", `"Comment"`), str("value", quote(t.Value))}
	case *Fragment:
		fs := []field{str("type", `"Fragment"`)}
		if t.Children != nil {
			fs = append(fs, kids(t.Children))
		}
		return fs
	case *Tag:
		fs := []field{str("type", `"Tag"`), str("nodename", quote(t.Name))}
		if t.Attrs != nil {
			fs = append(fs, field{key: `"props"`, boring: f.isBoringAttrs(t.Attrs), value: func(w writeFlusher, indent string) {
				f.formatAttrs(w, t.Attrs, indent)
			}})
		}
		if t.Children != nil {
			fs = append(fs, kids(t.Children))
		}
		return fs
	default:
		panic(fmt.Sprintf("unknown node type %T", n))
	}
}

// formatObject renders an object with the given fields. If inline is true, the
// object is written on a single line.
func (f Formatter) formatObject(w writeFlusher, fs []field, inline bool, indent string) {
	if inline {
		io.WriteString(w, "{")
		for i, fd := range fs {
			if i > 0 {
				io.WriteString(w, ", ")
			}
			fmt.Fprint(w, fd.key, ": ")
			fd.value(w, indent)
		}
		io.WriteString(w, "}")
		return
	}

	fmt.Fprint(w, "{\n")
	mdent := indent + f.indent()
	for i, fd := range fs {
		fmt.Fprint(w, mdent, fd.key, f.objSep(fd.boring))
		fd.value(w, mdent)
		if i < len(fs)-1 {
			io.WriteString(w, ",")
		}
		io.WriteString(w, "\n")
	}
	w.Flush()
	fmt.Fprint(w, indent, "}")
}

func (f Formatter) formatAttrs(w writeFlusher, attrs mtree.Attributes, indent string) {
	fs := make([]field, len(attrs))
	for i, a := range attrs {
		val := "true"
		if !a.Flag {
			val = quote(a.Value)
		}
		fs[i] = field{key: quote(a.Name), boring: true, value: func(w writeFlusher, _ string) {
			io.WriteString(w, val)
		}}
	}
	if len(fs) == 0 {
		io.WriteString(w, "{}")
		return
	}
	f.formatObject(w, fs, f.isBoringAttrs(attrs), indent)
}

// objSep returns a key-value separator for a value.
// Boring values get indented so they line up in columns;
// non-boring values are stapled directly to the key.
func (Formatter) objSep(boring bool) string {
	if boring {
		return ":\t"
	}
	return ": "
}

// isBoring reports whether n has a simple enough structure that it can be
// rendered on one line.
func (f Formatter) isBoring(n Node) bool {
	switch t := n.(type) {
	case *Text, *Comment:
		return true
	case *Tag:
		if !f.isBoringAttrs(t.Attrs) {
			return false
		}
		switch len(t.Children) {
		case 0:
			return true
		case 1:
			_, ok := t.Children[0].(*Text)
			return ok
		}
		return false
	case *Fragment:
		return len(t.Children) == 0
	default:
		return false
	}
}

// isBoringList reports whether nodes can be rendered as an array on one line.
func (f Formatter) isBoringList(nodes []Node) bool {
	if len(nodes) > f.maxLineItems() {
		return false
	}
	for _, n := range nodes {
		if _, ok := n.(*Text); !ok {
			return false
		}
	}
	return true
}

func (f Formatter) isBoringAttrs(attrs mtree.Attributes) bool { return len(attrs) <= f.maxLineItems() }

func quote(text mem.RO) string { return string(mtree.AppendQuote(nil, text)) }
