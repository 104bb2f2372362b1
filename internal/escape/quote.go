// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting of JSON strings.
package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote encodes src as a JSON string, including the enclosing quotation
// marks.
func Quote(src mem.RO) []byte {
	return AppendQuote(make([]byte, 0, src.Len()+2), src)
}

// AppendQuote appends the quoted JSON string encoding of src to buf and
// returns the extended buffer.
//
// Quotation marks, backslashes, and control characters are escaped, as are
// U+2028 and U+2029, which some JavaScript parsers reject in string
// literals. Invalid UTF-8 is replaced by the escaped replacement rune.
func AppendQuote(buf []byte, src mem.RO) []byte {
	buf = append(buf, '"')

	// Runs of bytes that need no escaping are copied in one piece.
	run := 0
	flush := func(i int) {
		if i > run {
			buf = mem.Append(buf, src.Slice(run, i))
		}
	}
	for i := 0; i < src.Len(); {
		b := src.At(i)
		if b < utf8.RuneSelf {
			if b >= ' ' && b != '"' && b != '\\' {
				i++
				continue
			}
			flush(i)
			if b == '"' || b == '\\' {
				buf = append(buf, '\\', b)
			} else if e := controlEsc[b]; e != 0 {
				buf = append(buf, '\\', e)
			} else {
				buf = append(buf, '\\', 'u', '0', '0', hexDigit[b>>4], hexDigit[b&15])
			}
			i++
			run = i
			continue
		}

		r, n := mem.DecodeRune(src.SliceFrom(i))
		switch {
		case r == utf8.RuneError && n <= 1:
			flush(i)
			buf = append(buf, `\ufffd`...)
		case r == '\u2028' || r == '\u2029':
			flush(i)
			buf = append(buf, `\u202`...)
			buf = append(buf, hexDigit[r&15])
		default:
			i += n
			continue
		}
		i += max(n, 1)
		run = i
	}
	flush(src.Len())
	return append(buf, '"')
}
