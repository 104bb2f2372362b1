// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package compile converts markup documents to the JSON encoding of their
// syntax trees.
//
// The output is a JSON array of the top-level nodes of the document. Text
// runs encode as strings, and other nodes as objects:
//
//	{"type":"Tag","nodename":"a","props":{"href":"x"},"children":[...]}
//	{"type":"Fragment","children":[...]}
//	{"type":"Comment","value":"..."}
//
// The "props" member is omitted for a tag without attributes, and "children"
// is omitted for a self-closing tag. Flag attributes have the value true.
package compile

import (
	"strings"

	"github.com/creachadair/mtree/ast"
	"go4.org/mem"
)

// Options control the compilation of a document.
// A nil *Options is ready for use and provides default settings.
type Options struct {
	// Strict, if true, rejects closing tags that do not match the innermost
	// open element. See ast.Options.
	Strict bool `json:"strict"`

	// Pretty, if true, renders the output with line breaks and indentation
	// instead of in compact form.
	Pretty bool `json:"pretty"`

	// Indent is the indentation used for each level when Pretty is true.
	// If empty, two spaces are used.
	Indent string `json:"indent"`
}

func (o *Options) strict() bool { return o != nil && o.Strict }
func (o *Options) pretty() bool { return o != nil && o.Pretty }

func (o *Options) indent() string {
	if o == nil {
		return ""
	}
	return o.Indent
}

// XML compiles the markup document in text with default options.
func XML(text string) (string, error) { return (*Options)(nil).XML(text) }

// XML compiles the markup document in text to JSON. Compilation either
// succeeds completely or reports an error; no partial output is produced.
// The output for a given input and options is always the same.
func (o *Options) XML(text string) (string, error) {
	nodes, err := o.Parse(text)
	if err != nil {
		return "", err
	}
	return o.Render(nodes), nil
}

// Parse parses text into its top-level nodes using the settings from o.
func (o *Options) Parse(text string) ([]ast.Node, error) {
	return (&ast.Options{Strict: o.strict()}).Parse(mem.S(text))
}

// Render renders nodes as JSON using the settings from o.
func (o *Options) Render(nodes []ast.Node) string {
	if !o.pretty() {
		return ast.JSON(nodes)
	}
	var sb strings.Builder
	ast.Formatter{Indent: o.indent()}.Format(&sb, nodes)
	return strings.TrimSuffix(sb.String(), "\n")
}
