package ast

import "reflect"

// List is an ordered list of owned child nodes. An absent node is
// never stored, so a well-formed list has no holes and ranging over it
// never yields nil.
type List[T Node] []T

// Push appends n and reports whether it was inserted. Absent nodes are
// rejected and the list is left unchanged, so a builder can drive a
// loop like "for globals.Push(parseGlobal()) {}" without guarding each
// result.
func (l *List[T]) Push(n T) bool {
	if absent(n) {
		return false
	}
	*l = append(*l, n)
	return true
}

// Len returns the number of nodes in the list.
func (l List[T]) Len() int { return len(l) }

// At returns the i'th node.
func (l List[T]) At(i int) T { return l[i] }

// absent reports whether n is a missing child: a nil interface or an
// interface holding a typed nil pointer. The latter arises when a
// builder stores a nil concrete node into an interface-typed slot.
func absent(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
