// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mtree_test

import (
	"testing"

	"github.com/creachadair/mtree"
	"github.com/google/go-cmp/cmp"
	"go4.org/mem"
)

func TestParseAttributes(t *testing.T) {
	tests := []struct {
		tokens []string
		want   mtree.Attributes
	}{
		{nil, nil},
		{[]string{}, nil},

		// Flags
		{[]string{"a"}, mtree.Attributes{flag("a")}},
		{[]string{"disabled", "checked"}, mtree.Attributes{flag("disabled"), flag("checked")}},

		// Values, with and without quotes
		{[]string{`a="x"`}, mtree.Attributes{str("a", "x")}},
		{[]string{`a='x'`}, mtree.Attributes{str("a", "x")}},
		{[]string{`a=x`}, mtree.Attributes{str("a", "x")}},
		{[]string{`a="x y"`}, mtree.Attributes{str("a", "x y")}},
		{[]string{`a=""`}, mtree.Attributes{str("a", "")}},
		{[]string{`a=`}, mtree.Attributes{str("a", "")}},
		{[]string{`=v`}, mtree.Attributes{str("", "v")}},

		// Quotes that do not wrap the value are kept.
		{[]string{`a="`}, mtree.Attributes{str("a", `"`)}},
		{[]string{`a="x'`}, mtree.Attributes{str("a", `"x'`)}},
		{[]string{`a=x"`}, mtree.Attributes{str("a", `x"`)}},
		{[]string{`a='x`}, mtree.Attributes{str("a", `'x`)}},

		// Only the first unquoted "=" separates the name.
		{[]string{`a=b=c`}, mtree.Attributes{str("a", "b=c")}},
		{[]string{`a="b=c"`}, mtree.Attributes{str("a", "b=c")}},
		{[]string{`"k=v"=z`}, mtree.Attributes{str(`"k=v"`, "z")}},

		// Duplicates: last value wins, first position is kept.
		{[]string{"a=1", "b", "a=2"}, mtree.Attributes{str("a", "2"), flag("b")}},
		{[]string{"a", "a=1"}, mtree.Attributes{str("a", "1")}},
		{[]string{"a=1", "a"}, mtree.Attributes{flag("a")}},
	}
	for _, test := range tests {
		var toks []mem.RO
		for _, s := range test.tokens {
			toks = append(toks, mem.S(s))
		}
		got := mtree.ParseAttributes(toks)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Tokens: %q\nAttributes: (-want, +got)\n%s", test.tokens, diff)
		}
	}
}

func TestAttributesGet(t *testing.T) {
	attrs := mtree.ParseAttributes([]mem.RO{mem.S(`href="/x"`), mem.S("hidden")})

	if a, ok := attrs.Get("href"); !ok {
		t.Error(`Get "href": not found`)
	} else if got := a.Value.StringCopy(); got != "/x" || a.Flag {
		t.Errorf(`Get "href": got %q (flag=%v), want "/x"`, got, a.Flag)
	}
	if a, ok := attrs.Get("hidden"); !ok || !a.Flag {
		t.Errorf(`Get "hidden": got %+v, %v; want flag`, a, ok)
	}
	if _, ok := attrs.Get("nonesuch"); ok {
		t.Error(`Get "nonesuch": unexpectedly found`)
	}

	var none mtree.Attributes
	if _, ok := none.Get("x"); ok {
		t.Error("Get on nil attributes: unexpectedly found")
	}
}
