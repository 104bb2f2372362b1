// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mtree

import (
	"github.com/creachadair/mtree/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string { return string(escape.Quote(mem.S(src))) }

// AppendQuote appends the JSON string encoding of text to buf, and returns
// the updated slice.
func AppendQuote(buf []byte, text mem.RO) []byte { return escape.AppendQuote(buf, text) }
