// Package query implements structural queries over markup syntax trees.
//
// A query describes a substructure of a markup syntax tree, such as a child
// tag, a range of children, or a path through the tree. Evaluating a query
// against a concrete node traverses the structure described by the query and
// returns the resulting node.
//
// Queries that produce several nodes return them as the children of a
// fragment. The simplest query is for a "path", a sequence of tag names and/or
// child offsets that describes a path from the root. For example, given the
// document:
//
//	<doc><a x="1"/><b><c>yes</c></b></doc>
//
// the query
//
//	query.Path("b", "c", 0)
//
// evaluated from the <doc> tag yields the text "yes".
package query

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/creachadair/mtree/ast"
)

// Eval evaluates the given query beginning from root, returning the resulting
// node or an error.
func Eval(root ast.Node, q Query) (ast.Node, error) {
	return q.eval(root)
}

// EvalAll evaluates q from a fragment holding the top-level nodes of a
// document.
func EvalAll(nodes []ast.Node, q Query) (ast.Node, error) {
	return q.eval(ast.NewFragment(nodes...))
}

// ErrNoMatches is reported by Recur when no node satisfies its query.
var ErrNoMatches = errors.New("no matches")

// A Query describes a traversal of a markup syntax tree.
type Query interface {
	eval(ast.Node) (ast.Node, error)
}

// Path traverses a sequence of nested tag names or child offsets from the
// root. If no keys are specified, the root is returned. Each key must be a
// string, an int, or a Query. A string selects the first child tag with that
// name; an int selects a child by offset, counting from the end if negative.
func Path(keys ...any) Query {
	if len(keys) == 1 {
		return pathElem(keys[0])
	}
	pq := make(Seq, 0, len(keys))
	for _, key := range keys {
		q := pathElem(key)
		if sq, ok := q.(Seq); ok {
			pq = append(pq, sq...)
		} else {
			pq = append(pq, q)
		}
	}
	return pq
}

func pathElem(key any) Query {
	switch t := key.(type) {
	case string:
		return childTag(t)
	case int:
		return nthQuery(t)
	case Query:
		return t
	default:
		panic("invalid path element")
	}
}

// children returns the children of a tag or fragment.
func children(n ast.Node) ([]ast.Node, error) {
	switch t := n.(type) {
	case *ast.Tag:
		return t.Children, nil
	case *ast.Fragment:
		return t.Children, nil
	default:
		return nil, fmt.Errorf("got %T, want tag or fragment", n)
	}
}

type childTag string

func (c childTag) eval(n ast.Node) (ast.Node, error) {
	kids, err := children(n)
	if err != nil {
		return nil, err
	}
	for _, kid := range kids {
		if t, ok := kid.(*ast.Tag); ok && t.Name.EqualString(string(c)) {
			return t, nil
		}
	}
	return nil, fmt.Errorf("tag %q not found", string(c))
}

type nthQuery int

func (nq nthQuery) eval(n ast.Node) (ast.Node, error) {
	kids, err := children(n)
	if err != nil {
		return nil, err
	}
	idx := int(nq)
	if idx < 0 {
		idx += len(kids)
	}
	if idx < 0 || idx >= len(kids) {
		return nil, fmt.Errorf("index %d out of range (0..%d)", nq, len(kids))
	}
	return kids[idx], nil
}

// Selection constructs a fragment of the children of its input for which the
// specified function returns true.
type Selection func(ast.Node) bool

func (q Selection) eval(n ast.Node) (ast.Node, error) {
	kids, err := children(n)
	if err != nil {
		return nil, err
	}
	out := ast.NewFragment()
	for _, kid := range kids {
		if q(kid) {
			out.Children = append(out.Children, kid)
		}
	}
	return out, nil
}

// Mapping constructs a fragment in which each child of its input is replaced
// by the result of calling the specified function on it.
type Mapping func(ast.Node) ast.Node

func (q Mapping) eval(n ast.Node) (ast.Node, error) {
	kids, err := children(n)
	if err != nil {
		return nil, err
	}
	out := make([]ast.Node, len(kids))
	for i, kid := range kids {
		out[i] = q(kid)
	}
	return ast.NewFragment(out...), nil
}

// Slice selects a fragment of the children of its input from offsets lo to
// hi. The range includes lo but excludes hi. Negative offsets select from the
// end. If hi == 0, the number of children is used.
func Slice(lo, hi int) Query { return sliceQuery{lo, hi} }

type sliceQuery struct{ lo, hi int }

func (q sliceQuery) eval(n ast.Node) (ast.Node, error) {
	kids, err := children(n)
	if err != nil {
		return nil, err
	}
	lox := q.lo
	if lox < 0 {
		lox += len(kids)
	}
	hix := q.hi
	if hix <= 0 {
		hix += len(kids)
	}
	if lox < 0 || lox >= len(kids) {
		return nil, fmt.Errorf("index %d out of range (0..%d)", q.lo, len(kids))
	} else if hix < 0 || hix > len(kids) {
		return nil, fmt.Errorf("index %d out of range (0..%d)", q.hi, len(kids))
	} else if lox > hix {
		return nil, fmt.Errorf("index start %d > end %d", q.lo, q.hi)
	}
	return ast.NewFragment(kids[lox:hix]...), nil
}

// Pick constructs a fragment by picking the designated children of its input.
// Negative offsets select from the end.
func Pick(offsets ...int) Query { return pickQuery(offsets) }

type pickQuery []int

func (q pickQuery) eval(n ast.Node) (ast.Node, error) {
	kids, err := children(n)
	if err != nil {
		return nil, err
	}
	out := ast.NewFragment()
	for _, off := range q {
		if off < 0 {
			off += len(kids)
		}
		if off < 0 || off >= len(kids) {
			return nil, fmt.Errorf("index %d out of range (0..%d)", off, len(kids))
		}
		out.Children = append(out.Children, kids[off])
	}
	return out, nil
}

// Len returns a text node giving the length of its input in decimal.
//
// For a tag or fragment, the length is the number of children.
// For a text or comment, the length is the number of bytes of text.
func Len() Query { return lenQuery{} }

type lenQuery struct{}

func (lenQuery) eval(n ast.Node) (ast.Node, error) {
	switch t := n.(type) {
	case *ast.Tag:
		return lenText(len(t.Children)), nil
	case *ast.Fragment:
		return lenText(len(t.Children)), nil
	case *ast.Text:
		return lenText(t.Value.Len()), nil
	case *ast.Comment:
		return lenText(t.Value.Len()), nil
	}
	return nil, fmt.Errorf("cannot take length of %T", n)
}

func lenText(n int) ast.Node { return ast.NewText(strconv.Itoa(n)) }

// Attr returns a text node giving the value of the named attribute of a tag.
// A flag attribute has an empty value. It fails if the input is not a tag, or
// the tag lacks the attribute.
func Attr(name string) Query { return attrQuery(name) }

type attrQuery string

func (q attrQuery) eval(n ast.Node) (ast.Node, error) {
	t, ok := n.(*ast.Tag)
	if !ok {
		return nil, fmt.Errorf("got %T, want tag", n)
	}
	v, ok := t.Attr(string(q))
	if !ok {
		return nil, fmt.Errorf("attribute %q not found", string(q))
	}
	return ast.NewText(v), nil
}

// Tag selects its input if it is a tag with the given name, and fails
// otherwise. It is mainly useful with Recur.
func Tag(name string) Query { return tagQuery(name) }

type tagQuery string

func (q tagQuery) eval(n ast.Node) (ast.Node, error) {
	if t, ok := n.(*ast.Tag); ok && t.Name.EqualString(string(q)) {
		return t, nil
	}
	return nil, fmt.Errorf("not a tag %q", string(q))
}

// Seq is a sequential composition of queries. An empty sequence selects the
// root; otherwise, each query is applied to the result selected by the
// previous query in the sequence.
type Seq []Query

func (q Seq) eval(n ast.Node) (ast.Node, error) {
	cur := n
	for _, sq := range q {
		next, err := sq.eval(cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// Alt is a query that selects among a sequence of alternatives. The result of
// the first alternative that does not report an error is returned. If there
// are no alternatives, the query fails on all inputs.
type Alt []Query

func (q Alt) eval(n ast.Node) (ast.Node, error) {
	for _, alt := range q {
		if w, err := alt.eval(n); err == nil {
			return w, nil
		}
	}
	return nil, errors.New("no matching alternatives")
}

// Recur applies a query to its input and each of its descendants in document
// order, and returns a fragment of the results that did not fail. The
// arguments have the same constraints as Path.
func Recur(keys ...any) Query { return recQuery{Path(keys...)} }

type recQuery struct{ Query }

func (q recQuery) eval(n ast.Node) (ast.Node, error) {
	out := ast.NewFragment()

	stk := []ast.Node{n}
	for len(stk) != 0 {
		next := stk[len(stk)-1]
		stk = stk[:len(stk)-1]

		if r, err := q.Query.eval(next); err == nil {
			out.Children = append(out.Children, r)
		}

		// N.B. Push in reverse order, so we visit in document order.
		if kids, err := children(next); err == nil {
			for i := len(kids) - 1; i >= 0; i-- {
				stk = append(stk, kids[i])
			}
		}
	}

	if len(out.Children) == 0 {
		return nil, ErrNoMatches
	}
	return out, nil
}

// Each applies a query to each child of its input and returns a fragment of
// the results. It fails if the input has no children, or if the query fails
// for any child. The arguments have the same constraints as Path.
func Each(keys ...any) Query { return eachQuery{Path(keys...)} }

type eachQuery struct{ Query }

func (q eachQuery) eval(n ast.Node) (ast.Node, error) {
	kids, err := children(n)
	if err != nil {
		return nil, err
	}
	out := ast.NewFragment()
	for i, kid := range kids {
		v, err := q.Query.eval(kid)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out.Children = append(out.Children, v)
	}
	return out, nil
}

// Group constructs a fragment of the nodes produced by matching the given
// queries against its input.
type Group []Query

func (g Group) eval(n ast.Node) (ast.Node, error) {
	out := make([]ast.Node, len(g))
	for i, q := range g {
		v, err := q.eval(n)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = v
	}
	return ast.NewFragment(out...), nil
}

// A Text query ignores its input and returns a text node with the given text.
func Text(s string) Query { return Value(ast.NewText(s)) }

// A Value query ignores its input and returns the given node.
func Value(n ast.Node) Query { return constQuery{n} }

type constQuery struct{ ast.Node }

func (c constQuery) eval(_ ast.Node) (ast.Node, error) { return c.Node, nil }

// A Glob query returns a fragment of all the children of its input.
func Glob() Query { return globQuery{} }

type globQuery struct{}

func (globQuery) eval(n ast.Node) (ast.Node, error) {
	switch t := n.(type) {
	case *ast.Fragment:
		return t, nil
	case *ast.Tag:
		return ast.NewFragment(t.Children...), nil
	default:
		return nil, errors.New("no matching nodes")
	}
}
