package hif

import "fmt"

// Iterator is a bidirectional cursor over a List. In-place insertion
// and removal during traversal are supported; removing or erasing
// through an iterator invalidates only the removed element's position,
// and the iterator itself advances to the next element.
type Iterator struct {
	list  *List
	entry *listEntry
}

// First returns an iterator on the first element.
func (l *List) First() *Iterator {
	return &Iterator{list: l, entry: l.root.next}
}

// Last returns an iterator on the last element.
func (l *List) Last() *Iterator {
	return &Iterator{list: l, entry: l.root.prev}
}

// Valid reports whether the iterator points at an element.
func (it *Iterator) Valid() bool {
	return it.entry != nil && it.entry != &it.list.root
}

// Node returns the element under the cursor, or nil past the ends.
func (it *Iterator) Node() Node {
	if !it.Valid() {
		return nil
	}

	return it.entry.node
}

// Next advances the cursor.
func (it *Iterator) Next() {
	if it.Valid() {
		it.entry = it.entry.next
	}
}

// Prev moves the cursor backwards.
func (it *Iterator) Prev() {
	if it.Valid() {
		it.entry = it.entry.prev
	}
}

// InsertBefore places n directly before the cursor, transferring
// ownership. The cursor keeps pointing at its element.
func (it *Iterator) InsertBefore(n Node) error {
	if !it.Valid() {
		return &StructuralError{Op: "InsertBefore", Reason: "iterator past the end"}
	}

	if err := it.list.admit("InsertBefore", n); err != nil {
		return err
	}

	it.list.insertEntryBefore(it.entry, n)

	return nil
}

// InsertAfter places n directly after the cursor, transferring
// ownership. The cursor keeps pointing at its element.
func (it *Iterator) InsertAfter(n Node) error {
	if !it.Valid() {
		return &StructuralError{Op: "InsertAfter", Reason: "iterator past the end"}
	}

	if err := it.list.admit("InsertAfter", n); err != nil {
		return err
	}

	it.list.insertEntryBefore(it.entry.next, n)

	return nil
}

// Remove detaches the element under the cursor, advancing the cursor
// to the next element. The detached node is returned with its subtree
// intact; ownership transfers to the caller.
func (it *Iterator) Remove() Node {
	if !it.Valid() {
		return nil
	}

	e := it.entry
	it.entry = e.next
	n := e.node
	n.base().ownerEntry = nil
	it.list.unlink(e)

	return n
}

// Erase detaches and destroys the element under the cursor, advancing
// the cursor to the next element. Returns false past the ends.
func (it *Iterator) Erase() bool {
	n := it.Remove()
	if n == nil {
		return false
	}

	release(n)

	return true
}

// ListView is a typed reinterpretation of a List as a sequence of a
// structurally compatible element kind. It wraps the same underlying
// links without copying; mutations through either side are visible to
// both.
type ListView[T Node] struct {
	list *List
}

// As reinterprets l as a list of T. The upcast is checked: every
// current member must satisfy T, otherwise a StructuralError reports
// the first offender.
func As[T Node](l *List) (ListView[T], error) {
	for e := l.root.next; e != &l.root; e = e.next {
		if _, ok := e.node.(T); !ok {
			return ListView[T]{}, &StructuralError{
				Op:     "As",
				Reason: fmt.Sprintf("%s element is not of the viewed kind", e.node.Kind()),
			}
		}
	}

	return ListView[T]{list: l}, nil
}

// Underlying returns the wrapped list. The identity round-trips: the
// view shares the list's structure rather than copying it.
func (v ListView[T]) Underlying() *List { return v.list }

// Size returns the number of elements.
func (v ListView[T]) Size() int { return v.list.Size() }

// Front returns the first element. The second result is false when the
// list is empty.
func (v ListView[T]) Front() (T, bool) {
	var zero T
	n := v.list.Front()
	if n == nil {
		return zero, false
	}

	return n.(T), true
}

// At returns the element at index i. The second result is false when i
// is out of range.
func (v ListView[T]) At(i int) (T, bool) {
	var zero T
	n := v.list.At(i)
	if n == nil {
		return zero, false
	}

	return n.(T), true
}

// Each calls fn for every element in order until fn returns false.
func (v ListView[T]) Each(fn func(T) bool) {
	for e := v.list.root.next; e != &v.list.root; e = e.next {
		if !fn(e.node.(T)) {
			return
		}
	}
}

// PushBack appends n, transferring ownership.
func (v ListView[T]) PushBack(n T) error { return v.list.PushBack(n) }
