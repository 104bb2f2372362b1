// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package mtree implements a scanner and event stream for an XML/JSX-like
// markup dialect with tags, self-closing tags, comments, text, and unnamed
// fragments (<>...</>).
//
// # Scanning
//
// The Scanner type turns a markup document into a flat sequence of events.
// Construct a scanner from the input and call its Next method to iterate over
// the events. Next advances to the next event and returns nil, or reports an
// error:
//
//	s := mtree.NewScanner(mem.S(input))
//	for s.Next() == nil {
//	   log.Printf("Next event: %v", s.Event())
//	}
//
// Next returns io.EOF when the input has been fully consumed. Any other error
// has concrete type *mtree.SyntaxError and indicates malformed input.
//
//	if err := s.Err(); err != io.EOF {
//	   log.Fatalf("Scanning failed: %v", err)
//	}
//
// The scanner does not copy its input. The names, text, and attributes of
// each event are mem.RO views of the original buffer.
//
// Nesting is not resolved by the scanner: an opening tag and its closing tag
// are separate events, and it is up to the consumer to pair them. The ast
// package builds syntax trees from events.
//
// # Streaming
//
// The Stream type delivers events to a Handler, calling one method for each
// kind of event:
//
//	Event kind  | Method      | Syntax
//	----------- | ----------- | ------------------------------
//	Tag         | Tag         | <name attr="value" flag> or <name/>
//	TagEnd      | TagEnd      | </name>
//	Fragment    | Fragment    | <>
//	FragmentEnd | FragmentEnd | </>
//	Comment     | Comment     | <!-- text -->
//	Text        | Text        | text outside markup
//	--          | EndOfInput  | end of input
//
// Construct a Stream from the input and call its Parse method. Parse returns
// nil if the input was fully processed without error. If a Handler method
// reports an error, parsing stops and that error is returned. Use Replay to
// deliver a slice of events that was already scanned.
package mtree
