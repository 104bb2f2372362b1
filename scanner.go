// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mtree

import (
	"errors"
	"io"

	"go4.org/mem"
)

// Errors reported by the scanner and tree builder. Errors returned by this
// module wrap one of these, and can be checked with errors.Is.
var (
	// ErrUnterminatedTag means a "<" had no matching ">".
	ErrUnterminatedTag = errors.New("unterminated tag")

	// ErrUnterminatedComment means a "<!--" had no matching "-->".
	ErrUnterminatedComment = errors.New("unterminated comment")

	// ErrUnterminatedQuote means a quotation mark inside a tag was not closed.
	ErrUnterminatedQuote = errors.New("unterminated quote")

	// ErrUnterminatedStructure means a tag or fragment was not closed before
	// the end of input.
	ErrUnterminatedStructure = errors.New("unterminated structure")

	// ErrUnexpectedClose means a closing tag did not match the innermost open
	// element. It is only reported by strict parsers.
	ErrUnexpectedClose = errors.New("unexpected closing tag")
)

// A Scanner reads markup events from an input buffer.  Each call to Next
// advances the scanner to the next event, or reports an error.
//
// The scanner does not copy its input: the views in each event refer to the
// buffer given to NewScanner.
type Scanner struct {
	src  mem.RO
	pos  int // offset of the next unread byte
	ev   Event
	err  error
	toks []mem.RO // tag-interior tokens, reused across tags
}

// NewScanner constructs a new scanner that reads events from src.
func NewScanner(src mem.RO) *Scanner { return &Scanner{src: src} }

// Next advances s to the next event of the input, or reports an error.
// At the end of the input, Next returns io.EOF. Once Next has reported an
// error other than io.EOF, it reports the same error on every later call.
func (s *Scanner) Next() error {
	if s.err != nil && s.err != io.EOF {
		return s.err
	}
	s.ev = Event{}
	s.err = nil

	for s.pos < s.src.Len() {
		rest := s.src.SliceFrom(s.pos)
		lt := mem.IndexByte(rest, '<')
		if lt < 0 {
			lt = rest.Len()
		}
		if lt == 0 {
			return s.scanMarkup()
		}

		// Everything up to the next "<" (or the end) is text. Runs that are
		// entirely whitespace are dropped.
		start := s.pos
		s.pos += lt
		if lo, hi := s.trim(start, s.pos); lo < hi {
			s.ev = Event{Kind: Text, Text: s.src.Slice(lo, hi), Span: Span{Pos: lo, End: hi}}
			return nil
		}
	}
	return s.setErr(io.EOF)
}

// Event returns the current event. Its views remain valid after the next call
// to Next, for as long as the scanner's input is.
func (s *Scanner) Event() Event { return s.ev }

// Err returns the last error reported by Next.
func (s *Scanner) Err() error { return s.err }

// Span returns the location span of the current event.
func (s *Scanner) Span() Span { return s.ev.Span }

// Scan scans all the events from src. In case of error, no events are
// returned.
func Scan(src mem.RO) ([]Event, error) {
	s := NewScanner(src)
	var evs []Event
	for {
		if err := s.Next(); err == io.EOF {
			return evs, nil
		} else if err != nil {
			return nil, err
		}
		evs = append(evs, s.Event())
	}
}

// scanMarkup scans a tag, fragment marker, or comment.
// Precondition: s.pos is the offset of a "<".
func (s *Scanner) scanMarkup() error {
	open := s.pos
	if mem.HasPrefix(s.src.SliceFrom(open+1), mem.S("!--")) {
		return s.scanComment(open)
	}

	// Split the tag interior into whitespace-separated tokens. Quoted runs are
	// opaque, so they may contain whitespace and ">".
	s.toks = s.toks[:0]
	start := open + 1
	tpos := start
	end := -1
	for i := start; end < 0; i++ {
		if i >= s.src.Len() {
			return s.failAt(open, ErrUnterminatedTag)
		}
		switch c := s.src.At(i); {
		case c == '>':
			s.addToken(tpos, i)
			end = i
		case isQuote(c):
			q := mem.IndexByte(s.src.SliceFrom(i+1), c)
			if q < 0 {
				return s.failAt(i, ErrUnterminatedQuote)
			}
			i += q + 1
		case isSpace(c):
			s.addToken(tpos, i)
			tpos = i + 1
		}
	}
	s.pos = end + 1
	span := Span{Pos: open, End: s.pos}

	// A trailing "/" marks a self-closing tag. It belongs to the last token,
	// and if it was a token all by itself (as in <br />) the token goes away.
	selfClosing := end-start > 1 && s.src.At(end-1) == '/'
	if selfClosing {
		last := len(s.toks) - 1
		if tok := s.toks[last]; tok.Len() == 1 {
			s.toks = s.toks[:last]
		} else {
			s.toks[last] = tok.SliceTo(tok.Len() - 1)
		}
	}

	if len(s.toks) == 0 {
		s.ev = Event{Kind: Fragment, Span: span}
		return nil
	}
	name := s.toks[0]
	if name.At(0) == '/' {
		if name.Len() == 1 {
			s.ev = Event{Kind: FragmentEnd, Span: span}
		} else {
			s.ev = Event{Kind: TagEnd, Name: name.SliceFrom(1), Span: span}
		}
		return nil
	}
	s.ev = Event{
		Kind:        Tag,
		Name:        name,
		SelfClosing: selfClosing,
		Attrs:       ParseAttributes(s.toks[1:]),
		Span:        span,
	}
	return nil
}

// scanComment scans a comment whose "<!--" begins at offset open.
// The terminator is sought only after the opening marker, so that in
// "<!---->" the opening dashes are not mistaken for the end.
func (s *Scanner) scanComment(open int) error {
	body := open + len("<!--")
	n := mem.Index(s.src.SliceFrom(body), mem.S("-->"))
	if n < 0 {
		return s.failAt(open, ErrUnterminatedComment)
	}
	s.pos = body + n + len("-->")
	s.ev = Event{
		Kind: Comment,
		Text: s.src.Slice(body, body+n),
		Span: Span{Pos: open, End: s.pos},
	}
	return nil
}

// addToken adds the tag-interior token spanning [pos, end), if non-empty.
func (s *Scanner) addToken(pos, end int) {
	if end > pos {
		s.toks = append(s.toks, s.src.Slice(pos, end))
	}
}

// trim returns the bounds of [pos, end) with leading and trailing whitespace
// removed. If the range is all whitespace, lo == hi.
func (s *Scanner) trim(pos, end int) (lo, hi int) {
	for pos < end && isSpace(s.src.At(pos)) {
		pos++
	}
	for end > pos && isSpace(s.src.At(end-1)) {
		end--
	}
	return pos, end
}

func (s *Scanner) setErr(err error) error {
	s.err = err
	return err
}

func (s *Scanner) failAt(pos int, err error) error {
	return s.setErr(&SyntaxError{Offset: pos, Message: err.Error(), Err: err})
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\r' || c == '\n' || c == '\t'
}
