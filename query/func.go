package query

import "github.com/creachadair/mtree/ast"

// Exists returns a selection that reports true if its argument satisfies the
// specified query. The arguments have the same constraints as Path.
func Exists(keys ...any) Selection {
	q := Path(keys...)
	return func(n ast.Node) bool {
		_, err := q.eval(n)
		return err == nil
	}
}

// Is returns a selection that reports true if its argument is of type T.
func Is[T ast.Node]() Selection {
	return func(n ast.Node) bool { _, ok := n.(T); return ok }
}

// IsNot returns a selection that reports true if its argument is not of type T
func IsNot[T ast.Node]() Selection {
	return func(n ast.Node) bool { _, ok := n.(T); return !ok }
}

// Named returns a selection that reports true if its argument is a tag with
// the given name.
func Named(name string) Selection {
	return Filter(func(t *ast.Tag) bool { return t.Name.EqualString(name) })
}

// Map constructs a mapping from the given function. The resulting mapping will
// return unmodified any node whose type does not match T.
func Map[T, U ast.Node](f func(T) U) Mapping {
	return func(n ast.Node) ast.Node {
		if w, ok := n.(T); ok {
			return f(w)
		}
		return n
	}
}

// Filter constructs a selection from the given function. The resulting
// selection will discard any node whose type does not match T.
func Filter[T ast.Node](f func(T) bool) Selection {
	return func(n ast.Node) bool { w, ok := n.(T); return ok && f(w) }
}
