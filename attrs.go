// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mtree

import "go4.org/mem"

// ParseAttributes parses the whitespace-separated attribute tokens of a tag
// into attributes. It returns nil if tokens is empty.
//
// A token without an unquoted "=" is a flag. Otherwise the text before the
// first unquoted "=" is the name and the rest is the value. A value of at
// least two bytes that begins and ends with the same quotation mark (" or ')
// has the quotation marks removed; any other value is used verbatim.  When a
// name occurs more than once the last value wins, but the attribute keeps
// the position of its first occurrence.
func ParseAttributes(tokens []mem.RO) Attributes {
	if len(tokens) == 0 {
		return nil
	}
	out := make(Attributes, 0, len(tokens))
	for _, tok := range tokens {
		attr := parseAttr(tok)
		if i := out.index(attr.Name); i >= 0 {
			out[i] = attr
		} else {
			out = append(out, attr)
		}
	}
	return out
}

func parseAttr(tok mem.RO) Attr {
	eq := indexUnquoted(tok, '=')
	if eq < 0 {
		return Attr{Name: tok, Flag: true}
	}
	name, val := tok.SliceTo(eq), tok.SliceFrom(eq+1)
	if n := val.Len(); n >= 2 {
		if q := val.At(0); isQuote(q) && val.At(n-1) == q {
			val = val.Slice(1, n-1)
		}
	}
	return Attr{Name: name, Value: val}
}

// indexUnquoted returns the offset of the first instance of b in s that is
// not inside a quoted run, or -1.
func indexUnquoted(s mem.RO, b byte) int {
	var quote byte
	for i := 0; i < s.Len(); i++ {
		c := s.At(i)
		if quote != 0 {
			if c == quote {
				quote = 0
			}
		} else if c == b {
			return i
		} else if isQuote(c) {
			quote = c
		}
	}
	return -1
}

func isQuote(c byte) bool { return c == '"' || c == '\'' }
