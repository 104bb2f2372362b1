// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"strings"
	"testing"

	"github.com/creachadair/mtree/ast"
	"github.com/tailscale/hujson"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{``, `[]`},
		{`one`, `["one"]`},
		{`<x a="1" b/>`, `
[
  {"type": "Tag", "nodename": "x", "props": {"a": "1", "b": true}}
]`},
		{`<!--c-->`, `
[
  {"type": "Comment", "value": "c"}
]`},
		{`<p>hi</p>`, `
[
  {"type": "Tag", "nodename": "p", "children": ["hi"]}
]`},
		{`<></>`, `
[
  {"type": "Fragment", "children": []}
]`},
	}
	for _, test := range tests {
		nodes := ast.MustParse(test.input)
		got := ast.FormatToString(nodes)
		if want := strings.TrimPrefix(test.want, "\n") + "\n"; got != want {
			t.Errorf("Input: %#q\nGot:\n%s\nWant:\n%s", test.input, got, want)
		}
	}
}

func TestFormatValid(t *testing.T) {
	// Pretty-printed output must be standard JSON, and must differ from the
	// compact encoding only in whitespace.
	inputs := []string{
		``,
		`plain text`,
		`<a/>`,
		`<a x="1" y="2" z="3" w="4"/>`,
		`<a b c d e f="g">text</a>`,
		`<p>one<b>two</b>three<i/>four</p>`,
		`<><>deep<!-- c --></><a><b><c k="v">x</c></b></a></>`,
		"<pre lang='go'>tab\there\nnewline \"quoted\" back\\slash</pre>",
		`<ul><li>1</li><li>2</li><li>3</li><li>4</li></ul>`,
		`x <y/> z`,
	}
	for _, input := range inputs {
		nodes := ast.MustParse(input)
		compact := ast.JSON(nodes)

		for _, indent := range []string{"", "\t", "    "} {
			f := ast.Formatter{Indent: indent}
			var sb strings.Builder
			if err := f.Format(&sb, nodes); err != nil {
				t.Fatalf("Format %#q: unexpected error: %v", input, err)
			}
			pretty := sb.String()
			if !strings.HasSuffix(pretty, "\n") {
				t.Errorf("Format %#q: output does not end with a newline", input)
			}

			v, err := hujson.Parse([]byte(pretty))
			if err != nil {
				t.Errorf("Format %#q: output is not valid: %v\n%s", input, err, pretty)
				continue
			}
			if !v.IsStandard() {
				t.Errorf("Format %#q: output is not standard JSON:\n%s", input, pretty)
			}
			v.Minimize()
			if got := string(v.Pack()); got != compact {
				t.Errorf("Format %#q (indent %q):\nGot:  %s\nWant: %s", input, indent, got, compact)
			}
		}
	}
}
