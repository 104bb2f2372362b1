// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mtree

import (
	"fmt"

	"go4.org/mem"
)

// Kind is the type of a syntactic event in the markup grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid     Kind = iota // invalid event
	Tag                     // opening or self-closing tag: <name ...> or <name .../>
	TagEnd                  // closing tag: </name>
	Fragment                // opening fragment: <>
	FragmentEnd             // closing fragment: </>
	Comment                 // comment: <!-- ... -->
	Text                    // a trimmed run of text outside markup
)

var kindStr = [...]string{
	Invalid:     "invalid event",
	Tag:         "tag",
	TagEnd:      "end tag",
	Fragment:    "fragment",
	FragmentEnd: "end fragment",
	Comment:     "comment",
	Text:        "text",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

func (s Span) String() string { return fmt.Sprintf("%d-%d", s.Pos, s.End) }

// An Event is a single unit of scanner output. Which fields are meaningful
// depends on the Kind:
//
//	Kind        | Fields
//	----------- | ------------------------
//	Tag         | Name, SelfClosing, Attrs
//	TagEnd      | Name
//	Fragment    | --
//	FragmentEnd | --
//	Comment     | Text
//	Text        | Text
//
// The Name and Text views, and the views inside Attrs, refer to the input
// passed to the scanner and are only valid as long as that input is.
type Event struct {
	Kind        Kind
	Name        mem.RO
	Text        mem.RO
	SelfClosing bool
	Attrs       Attributes
	Span        Span
}

func (e Event) String() string {
	switch e.Kind {
	case Tag:
		if e.SelfClosing {
			return fmt.Sprintf("Tag <%s/> %d attrs", e.Name.StringCopy(), len(e.Attrs))
		}
		return fmt.Sprintf("Tag <%s> %d attrs", e.Name.StringCopy(), len(e.Attrs))
	case TagEnd:
		return fmt.Sprintf("TagEnd </%s>", e.Name.StringCopy())
	case Comment, Text:
		return fmt.Sprintf("%s %q", e.Kind, e.Text.StringCopy())
	default:
		return e.Kind.String()
	}
}

// An Attr is a single attribute of a tag. If Flag is true the attribute was
// given without a value (as in <input disabled>) and Value is empty.
type Attr struct {
	Name  mem.RO
	Value mem.RO
	Flag  bool
}

// Attributes is the ordered collection of attributes of a tag.  Names are
// unique; a nil Attributes means the tag had no attribute text at all.
type Attributes []Attr

// Get returns the attribute of a with the given name, if it exists.
func (a Attributes) Get(name string) (Attr, bool) {
	if i := a.index(mem.S(name)); i >= 0 {
		return a[i], true
	}
	return Attr{}, false
}

func (a Attributes) index(name mem.RO) int {
	for i, attr := range a {
		if attr.Name.Equal(name) {
			return i
		}
	}
	return -1
}
