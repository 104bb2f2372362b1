// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mtree_test

import (
	"errors"
	"io"
	"testing"

	"github.com/creachadair/mtree"
	"github.com/google/go-cmp/cmp"
	"go4.org/mem"
)

func tag(name string, pos, end int, attrs ...mtree.Attr) mtree.Event {
	return mtree.Event{Kind: mtree.Tag, Name: mem.S(name), Attrs: attrList(attrs), Span: mtree.Span{Pos: pos, End: end}}
}

func single(name string, pos, end int, attrs ...mtree.Attr) mtree.Event {
	e := tag(name, pos, end, attrs...)
	e.SelfClosing = true
	return e
}

func tagEnd(name string, pos, end int) mtree.Event {
	return mtree.Event{Kind: mtree.TagEnd, Name: mem.S(name), Span: mtree.Span{Pos: pos, End: end}}
}

func text(kind mtree.Kind, s string, pos, end int) mtree.Event {
	return mtree.Event{Kind: kind, Text: mem.S(s), Span: mtree.Span{Pos: pos, End: end}}
}

func marker(kind mtree.Kind, pos, end int) mtree.Event {
	return mtree.Event{Kind: kind, Span: mtree.Span{Pos: pos, End: end}}
}

func attrList(attrs []mtree.Attr) mtree.Attributes {
	if len(attrs) == 0 {
		return nil
	}
	return attrs
}

func str(name, value string) mtree.Attr {
	return mtree.Attr{Name: mem.S(name), Value: mem.S(value)}
}

func flag(name string) mtree.Attr { return mtree.Attr{Name: mem.S(name), Flag: true} }

func TestScanner(t *testing.T) {
	tests := []struct {
		input string
		want  []mtree.Event
	}{
		// Empty inputs
		{"", nil},
		{"  ", nil},
		{"\n\n  \n", nil},
		{"\t  \r\n \t  \r\n", nil},

		// Text
		{"  some text  ", []mtree.Event{text(mtree.Text, "some text", 2, 11)}},
		{"a\n b", []mtree.Event{text(mtree.Text, "a\n b", 0, 4)}},

		// Tags
		{`<a x="1">hi</a>`, []mtree.Event{
			tag("a", 0, 9, str("x", "1")),
			text(mtree.Text, "hi", 9, 11),
			tagEnd("a", 11, 15),
		}},
		{`<a/>`, []mtree.Event{single("a", 0, 4)}},
		{`<a />`, []mtree.Event{single("a", 0, 5)}},
		{`<a>`, []mtree.Event{tag("a", 0, 3)}},
		{`<a >`, []mtree.Event{tag("a", 0, 4)}},
		{"<a\tb\n c='d'\r\n/>", []mtree.Event{single("a", 0, 15, flag("b"), str("c", "d"))}},
		{`<x a="1" b/>`, []mtree.Event{single("x", 0, 12, str("a", "1"), flag("b"))}},
		{`<x a="1>2" b='p q'/>`, []mtree.Event{single("x", 0, 20, str("a", "1>2"), str("b", "p q"))}},
		{`</a >`, []mtree.Event{tagEnd("a", 0, 5)}},

		// Fragments
		{`<></>`, []mtree.Event{marker(mtree.Fragment, 0, 2), marker(mtree.FragmentEnd, 2, 5)}},
		{`< >`, []mtree.Event{marker(mtree.Fragment, 0, 3)}},
		{`< a>`, []mtree.Event{tag("a", 0, 4)}},
		{"<\tb c/>", []mtree.Event{single("b", 0, 7, flag("c"))}},
		{`<//>`, []mtree.Event{marker(mtree.FragmentEnd, 0, 4)}},

		// Comments
		{`<!--hi-->`, []mtree.Event{text(mtree.Comment, "hi", 0, 9)}},
		{`<!---->`, []mtree.Event{text(mtree.Comment, "", 0, 7)}},
		{`<!-- <a> "x -->`, []mtree.Event{text(mtree.Comment, ` <a> "x `, 0, 15)}},
		{`<!-- a -- b --->`, []mtree.Event{text(mtree.Comment, " a -- b -", 0, 16)}},

		// Mixed, with multi-byte text
		{"<p>한국어 text</p>\n<br/>", []mtree.Event{
			tag("p", 0, 3),
			text(mtree.Text, "한국어 text", 3, 17),
			tagEnd("p", 17, 21),
			single("br", 22, 27),
		}},
	}

	for _, test := range tests {
		got, err := mtree.Scan(mem.S(test.input))
		if err != nil {
			t.Errorf("Scan %#q failed: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nEvents: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestScannerNext(t *testing.T) {
	s := mtree.NewScanner(mem.S(`<a>x</a><b`))
	var kinds []mtree.Kind
	for s.Next() == nil {
		kinds = append(kinds, s.Event().Kind)
	}
	if diff := cmp.Diff([]mtree.Kind{mtree.Tag, mtree.Text, mtree.TagEnd}, kinds); diff != "" {
		t.Errorf("Kinds: (-want, +got)\n%s", diff)
	}

	err := s.Err()
	if !errors.Is(err, mtree.ErrUnterminatedTag) {
		t.Fatalf("Err: got %v, want %v", err, mtree.ErrUnterminatedTag)
	}
	if again := s.Next(); again != err {
		t.Errorf("Next after error: got %v, want %v", again, err)
	}

	e := mtree.NewScanner(mem.S(""))
	if err := e.Next(); err != io.EOF {
		t.Errorf("Next on empty input: got %v, want EOF", err)
	}
}

func TestScanError(t *testing.T) {
	evs, err := mtree.Scan(mem.S(`<a>ok</a><!-- never ending`))
	if !errors.Is(err, mtree.ErrUnterminatedComment) {
		t.Errorf("Scan: got error %v, want %v", err, mtree.ErrUnterminatedComment)
	}
	if evs != nil {
		t.Errorf("Scan: got %d events with error, want none", len(evs))
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind mtree.Kind
		want string
	}{
		{mtree.Invalid, "invalid event"},
		{mtree.Tag, "tag"},
		{mtree.TagEnd, "end tag"},
		{mtree.Fragment, "fragment"},
		{mtree.FragmentEnd, "end fragment"},
		{mtree.Comment, "comment"},
		{mtree.Text, "text"},
		{mtree.Kind(100), "invalid event"},
	}
	for _, test := range tests {
		if got := test.kind.String(); got != test.want {
			t.Errorf("Kind(%d): got %q, want %q", test.kind, got, test.want)
		}
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `""`},
		{" ", `" "`},
		{"a\t\nb", `"a\t\nb"`},
		{"line\r\n", `"line\r\n"`},
		{"\x00\x01\x02", `"\u0000\u0001\u0002"`},
		{`a "b c\" d"`, `"a \"b c\\\" d\""`},
		{`\ufffd`, `"\\ufffd"`},
		{"\u2028 \u2029 \ufffd", "\"\\u2028 \\u2029 \ufffd\""},
		{"bad \xff byte", `"bad \ufffd byte"`},
		{"This is the end\v", `"This is the end\u000b"`},
		{"<\x1e>", `"<\u001e>"`},
		{"한국어", `"한국어"`},
	}
	for _, test := range tests {
		got := mtree.Quote(test.input)
		if got != test.want {
			t.Errorf("Input: %#q\nGot:  %#q\nWant: %#q", test.input, got, test.want)
		}
	}
}
