// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mtree

import (
	"fmt"
	"io"

	"go4.org/mem"
)

// A Handler handles events from parsing an input stream.  If a method reports
// an error, parsing stops and that error is returned to the caller.
//
// The Event passed to a Handler method is only valid for the duration of
// that method call. The views it contains refer to the input, and remain
// valid as long as the input does.
//
// Unlike a tree builder, a stream does not check that tags and fragments are
// balanced; that is the handler's business.
type Handler interface {
	// Tag reports an opening or self-closing tag.
	Tag(e *Event) error

	// TagEnd reports a closing tag.
	TagEnd(e *Event) error

	// Fragment reports the opening "<>" of a fragment.
	Fragment(e *Event) error

	// FragmentEnd reports the closing "</>" of a fragment.
	FragmentEnd(e *Event) error

	// Comment reports a comment. The text excludes the markers.
	Comment(e *Event) error

	// Text reports a run of text, with surrounding whitespace removed.
	Text(e *Event) error

	// EndOfInput reports the end of the input. An error from EndOfInput is
	// returned to the caller like any other handler error.
	EndOfInput() error
}

// Stream is a stream parser that consumes input and delivers events to a
// Handler corresponding with the structure of the input.
type Stream struct {
	s *Scanner
}

// NewStream constructs a new Stream that consumes input from src.
func NewStream(src mem.RO) *Stream { return &Stream{s: NewScanner(src)} }

// NewStreamWithScanner constructs a new Stream that consumes input from s.
func NewStreamWithScanner(s *Scanner) *Stream { return &Stream{s: s} }

// Parse parses the input stream and delivers events to h until either an error
// occurs or the input is exhausted. In case of a syntax error, the returned
// error has type [*SyntaxError].
func (s *Stream) Parse(h Handler) error {
	for {
		err := s.s.Next()
		if err == io.EOF {
			return h.EndOfInput()
		} else if err != nil {
			return err
		}
		ev := s.s.Event()
		if err := Dispatch(&ev, h); err != nil {
			return err
		}
	}
}

// Replay delivers each of the given events to h in order, followed by a call
// to EndOfInput. It stops at the first error reported by h.
func Replay(events []Event, h Handler) error {
	for i := range events {
		if err := Dispatch(&events[i], h); err != nil {
			return err
		}
	}
	return h.EndOfInput()
}

// Dispatch calls the method of h corresponding to the kind of e.
func Dispatch(e *Event, h Handler) error {
	switch e.Kind {
	case Tag:
		return h.Tag(e)
	case TagEnd:
		return h.TagEnd(e)
	case Fragment:
		return h.Fragment(e)
	case FragmentEnd:
		return h.FragmentEnd(e)
	case Comment:
		return h.Comment(e)
	case Text:
		return h.Text(e)
	default:
		return fmt.Errorf("unknown event %v", e.Kind)
	}
}

// SyntaxError is the concrete type of errors reported for malformed input.
type SyntaxError struct {
	Offset  int    // byte offset in the input where the problem begins
	Message string // a human-readable description
	Err     error  // the underlying error, one of the Err* values
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at offset %d: %s", s.Offset, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.Err }
