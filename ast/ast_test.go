// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"bytes"
	"testing"

	"github.com/creachadair/mtree"
	"github.com/creachadair/mtree/ast"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		input ast.Node
		want  string
	}{
		{ast.NewText(""), `""`},
		{ast.NewText("a \t b"), `"a \t b"`},
		{ast.NewText("line one\r\nline two"), `"line one\r\nline two"`},
		{ast.NewText(`say "hi" \o/`), `"say \"hi\" \\o/"`},

		{ast.NewComment(""), `{"type":"Comment","value":""}`},
		{ast.NewComment(" note "), `{"type":"Comment","value":" note "}`},

		{ast.NewFragment(), `{"type":"Fragment","children":[]}`},
		{&ast.Fragment{}, `{"type":"Fragment"}`},
		{ast.NewFragment(ast.NewText("x")), `{"type":"Fragment","children":["x"]}`},

		{ast.NewTag("br", nil, true), `{"type":"Tag","nodename":"br"}`},
		{ast.NewTag("p", nil, false), `{"type":"Tag","nodename":"p","children":[]}`},
		{ast.NewTag("x", mtree.Attributes{ast.String("a", "1"), ast.Flag("b")}, true),
			`{"type":"Tag","nodename":"x","props":{"a":"1","b":true}}`},
		{ast.NewTag("a", mtree.Attributes{ast.String("href", `/q?x="y"`)}, false, ast.NewText("go")),
			`{"type":"Tag","nodename":"a","props":{"href":"/q?x=\"y\""},"children":["go"]}`},

		{ast.NewTag("div", nil, false,
			ast.NewComment("c"),
			ast.NewFragment(ast.NewTag("i", nil, true)),
			ast.NewText("t"),
		), `{"type":"Tag","nodename":"div","children":[{"type":"Comment","value":"c"},` +
			`{"type":"Fragment","children":[{"type":"Tag","nodename":"i"}]},"t"]}`},
	}
	for _, test := range tests {
		got := test.input.JSON()
		if got != test.want {
			t.Errorf("Input: %+v\nGot:  %s\nWant: %s", test.input, got, test.want)
		}
	}
}

func TestEncode(t *testing.T) {
	nodes := []ast.Node{
		ast.NewText("before"),
		ast.NewTag("a", nil, true),
		ast.NewText("after"),
	}
	const want = `["before",{"type":"Tag","nodename":"a"},"after"]`

	if got := ast.JSON(nodes); got != want {
		t.Errorf("JSON: got %s, want %s", got, want)
	}
	var buf bytes.Buffer
	if err := ast.Encode(&buf, nodes); err != nil {
		t.Fatalf("Encode: unexpected error: %v", err)
	}
	if got := buf.String(); got != want {
		t.Errorf("Encode: got %s, want %s", got, want)
	}

	if got := ast.JSON(nil); got != "[]" {
		t.Errorf("JSON(nil): got %s, want []", got)
	}
}

func TestTagAccessors(t *testing.T) {
	tag := ast.NewTag("input", mtree.Attributes{ast.String("name", "q"), ast.Flag("required")}, true)
	if !tag.SelfClosing() {
		t.Error("SelfClosing: got false, want true")
	}
	if v, ok := tag.Attr("name"); !ok || v != "q" {
		t.Errorf(`Attr "name": got %q, %v; want "q", true`, v, ok)
	}
	if v, ok := tag.Attr("required"); !ok || v != "" {
		t.Errorf(`Attr "required": got %q, %v; want "", true`, v, ok)
	}
	if _, ok := tag.Attr("value"); ok {
		t.Error(`Attr "value": unexpectedly present`)
	}
	if ast.NewTag("p", nil, false).SelfClosing() {
		t.Error("SelfClosing of <p></p>: got true, want false")
	}
}
