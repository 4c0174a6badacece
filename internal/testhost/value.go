// Package testhost is a minimal reference hostiface.Host/hostiface.Scope
// implementation used only by this repository's own tests, standing in
// for the surrounding virtual machine a real Host would embed. It knows
// ints, strings, bools, none, lists, tuples, dicts, a handful of
// operators, iteration over lists and integer ranges, a small
// exception-class hierarchy, and plain functions — just enough to drive
// this repository's end-to-end scenarios. It is not a general object
// model.
package testhost

import "github.com/emberlang/ember/internal/hostiface"

// noneType is the singleton none value. Values of this package's other
// kinds (int64, string, bool) are used directly as hostiface.Value —
// there is no wrapper type for them, since Go's own comparable primitive
// types already give the frame the identity/equality semantics it needs.
type noneType struct{}

// None is the host's singleton none value.
var None = &noneType{}

// List is a mutable, ordered sequence.
type List struct {
	Elems []hostiface.Value
}

// Tuple is an immutable, ordered sequence. Built fresh by NewTuple; two
// tuples are never the same pointer unless they are the same Value.
type Tuple struct {
	Elems []hostiface.Value
}

// dictEntry preserves insertion order for Dict.
type dictEntry struct {
	Key hostiface.Value
	Val hostiface.Value
}

// Dict is an insertion-ordered mapping. Keys are compared with Host.equal,
// not Go's ==, so two equal-but-distinct keys (e.g. two separately built
// strings) collide correctly.
type Dict struct {
	entries []dictEntry
}

// Set is an unordered collection with no duplicate elements (by Host.equal).
type Set struct {
	Elems []hostiface.Value
}

// Slice is the object BuildSlice constructs; start/stop/step may be None.
type Slice struct {
	Start, Stop, Step hostiface.Value
}

// Module is a minimal namespace object for Import/ImportFrom/ImportStar.
type Module struct {
	Name  string
	Attrs map[string]hostiface.Value
}

// NativeFunc wraps a Go function as a callable host Value.
type NativeFunc struct {
	Name string
	Fn   func(args []hostiface.Value, kwargs map[string]hostiface.Value) (hostiface.Value, error)
}

// Class is a minimal class object: a name and an attribute namespace,
// enough to back LoadBuildClass without a real attribute-resolution/MRO
// protocol.
type Class struct {
	Name  string
	Attrs map[string]hostiface.Value
}

// Instance is a plain instance of a Class.
type Instance struct {
	Class *Class
	Attrs map[string]hostiface.Value
}

// rangeIterator drives GetIter/ForIter over an integer range, the
// iteration shape a for-loop-exhaustion scenario needs without a real
// object model's iterator protocol.
type rangeIterator struct {
	cur, stop, step int64
}

// listIterator drives GetIter/ForIter over a List.
type listIterator struct {
	list *List
	idx  int
}
