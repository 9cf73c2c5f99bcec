package hif

import (
	"fmt"

	"github.com/esd-univr/hif-core-sub003/internal/names"
)

// listEntry is one doubly-linked cell of a List. The back-reference to
// the containing list lets any member resolve its list, and hence its
// parent, in constant time.
type listEntry struct {
	prev, next *listEntry
	node       Node
	list       *List
}

// List is an ownership-aware ordered sequence of child nodes belonging
// to one parent. Inserting a node transfers ownership; a node sits in
// at most one list or field slot at a time. A list declared without an
// owner (NewList) acts as a detached scratch container for splicing.
type List struct {
	name   string
	owner  Node
	root   listEntry // sentinel; root.next is front, root.prev is back
	size   int
	filter func(Node) bool
}

// NewList creates a free-standing list, useful as a splice or merge
// source. Members of an unowned list have a nil parent.
func NewList() *List {
	l := &List{}
	l.root.next = &l.root
	l.root.prev = &l.root

	return l
}

// SetFilter installs a membership predicate. Insertions of nodes the
// filter rejects fail with a StructuralError.
func (l *List) SetFilter(filter func(Node) bool) { l.filter = filter }

// SlotName returns the list's declared name, empty for scratch lists.
func (l *List) SlotName() string { return l.name }

// Owner returns the node the list belongs to, or nil.
func (l *List) Owner() Node { return l.owner }

// Size returns the number of elements.
func (l *List) Size() int { return l.size }

// Empty reports whether the list has no elements.
func (l *List) Empty() bool { return l.size == 0 }

// Front returns the first element, or nil when empty.
func (l *List) Front() Node {
	if l.size == 0 {
		return nil
	}

	return l.root.next.node
}

// Back returns the last element, or nil when empty.
func (l *List) Back() Node {
	if l.size == 0 {
		return nil
	}

	return l.root.prev.node
}

// checkCycle panics when inserting n under this list would make n its
// own ancestor. Ownership cycles are a fatal invariant violation.
func (l *List) checkCycle(op string, n Node) {
	if l.owner != nil && isAncestorOrSelf(n, l.owner) {
		panic(fmt.Sprintf("hif: %s: inserting %s would make it its own ancestor", op, n.Kind()))
	}
}

// admit validates n against the list's filter and released state.
func (l *List) admit(op string, n Node) error {
	if n == nil {
		return &StructuralError{Op: op, Reason: "nil node"}
	}

	if n.base().released {
		return &StructuralError{Op: op, Reason: fmt.Sprintf("%s node already destroyed", n.Kind())}
	}

	if l.filter != nil && !l.filter(n) {
		return &StructuralError{Op: op, Reason: fmt.Sprintf("%s rejected by list filter", n.Kind())}
	}

	return nil
}

// insertEntryBefore links n into the list directly before at,
// transferring ownership. at may be the sentinel to append.
func (l *List) insertEntryBefore(at *listEntry, n Node) {
	l.checkCycle("insert", n)
	detach(n)

	e := &listEntry{node: n, list: l, prev: at.prev, next: at}
	at.prev.next = e
	at.prev = e
	n.base().ownerEntry = e
	l.size++
}

// unlink removes an entry from the links. The member's back-reference
// is the caller's responsibility.
func (l *List) unlink(e *listEntry) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev = nil
	e.next = nil
	l.size--
}

// PushBack appends n, transferring ownership. A node owned elsewhere is
// detached there first.
func (l *List) PushBack(n Node) error {
	if err := l.admit("PushBack", n); err != nil {
		return err
	}

	l.insertEntryBefore(&l.root, n)

	return nil
}

// PushFront prepends n, transferring ownership.
func (l *List) PushFront(n Node) error {
	if err := l.admit("PushFront", n); err != nil {
		return err
	}

	l.insertEntryBefore(l.root.next, n)

	return nil
}

// Insert places n at position pos. With expand=true subsequent elements
// shift right; with expand=false the element at pos is replaced in
// place and returned with ownership transferred to the caller.
// Positions beyond the end append.
func (l *List) Insert(n Node, pos int, expand bool) (Node, error) {
	if err := l.admit("Insert", n); err != nil {
		return nil, err
	}

	at := l.root.next
	for i := 0; i < pos && at != &l.root; i++ {
		at = at.next
	}

	if expand || at == &l.root {
		l.insertEntryBefore(at, n)
		return nil, nil
	}

	// Replacing an element with itself leaves the list unchanged and
	// nothing leaves the list.
	if at.node == n {
		return nil, nil
	}

	l.checkCycle("Insert", n)
	detach(n)

	old := at.node
	old.base().ownerEntry = nil
	at.node = n
	n.base().ownerEntry = at

	return old, nil
}

// Remove detaches n from the list; the caller retains ownership of n
// and its intact subtree. Returns false when n is not a member.
func (l *List) Remove(n Node) bool {
	e := l.entryOf(n)
	if e == nil {
		return false
	}

	l.unlink(e)
	n.base().ownerEntry = nil

	return true
}

// Erase detaches n and destroys it together with its owned subtree.
// Returns false when n is not a member.
func (l *List) Erase(n Node) bool {
	if !l.Remove(n) {
		return false
	}

	release(n)

	return true
}

// RemoveSubtree locates the top-level element whose owned subtree
// contains n (possibly n itself) and detaches it, returning the
// element. The second result is false when n is not under this list.
func (l *List) RemoveSubtree(n Node) (Node, bool) {
	top := l.topElementOf(n)
	if top == nil {
		return nil, false
	}

	l.Remove(top)

	return top, true
}

// EraseSubtree locates the top-level element whose owned subtree
// contains n and destroys the whole element. Returns false when n is
// not under this list.
func (l *List) EraseSubtree(n Node) bool {
	top, ok := l.RemoveSubtree(n)
	if !ok {
		return false
	}

	release(top)

	return true
}

// Merge appends the contents of other, transferring ownership and
// leaving other empty. Elements rejected by the filter stop the merge
// with a StructuralError; already-transferred elements stay.
func (l *List) Merge(other *List) error {
	if other == nil || other == l {
		return nil
	}

	for !other.Empty() {
		n := other.Front()
		if err := l.admit("Merge", n); err != nil {
			return err
		}

		other.Remove(n)
		l.insertEntryBefore(&l.root, n)
	}

	return nil
}

// Sort orders the list by the user comparator. The sort is stable:
// elements comparing equal keep their relative order. The links are
// relinked in place; member identity is preserved.
func (l *List) Sort(less func(a, b Node) bool) {
	if l.size < 2 {
		return
	}

	// Insertion sort over the links; quadratic but stable, and lists
	// in this IR are short.
	for e := l.root.next.next; e != &l.root; {
		next := e.next

		pos := l.root.next
		for pos != e && !less(e.node, pos.node) {
			pos = pos.next
		}

		if pos != e {
			e.prev.next = e.next
			e.next.prev = e.prev
			e.prev = pos.prev
			e.next = pos
			pos.prev.next = e
			pos.prev = e
		}

		e = next
	}
}

// Position returns the index of n, or the list size when n is not a
// member. The not-found sentinel mirrors the soft-failure policy of
// the position queries.
func (l *List) Position(n Node) int {
	i := 0
	for e := l.root.next; e != &l.root; e = e.next {
		if e.node == n {
			return i
		}
		i++
	}

	return l.size
}

// At returns the element at index i, or nil when out of range.
func (l *List) At(i int) Node {
	if i < 0 || i >= l.size {
		return nil
	}

	e := l.root.next
	for ; i > 0; i-- {
		e = e.next
	}

	return e.node
}

// Contains reports whether n is a member.
func (l *List) Contains(n Node) bool {
	return l.entryOf(n) != nil
}

// FindByName returns the first member whose name is nm, or nil.
func (l *List) FindByName(nm *names.Name) Node {
	for e := l.root.next; e != &l.root; e = e.next {
		if e.node != nil && e.node.Name() == nm {
			return e.node
		}
	}

	return nil
}

// RemoveDopplegangers erases members that duplicate an earlier member:
// structurally equal ones by default, identical-by-identity ones in
// strict mode. Returns the number of erased elements.
func (l *List) RemoveDopplegangers(strict bool) int {
	erased := 0
	for e := l.root.next; e != &l.root; e = e.next {
		for d := e.next; d != &l.root; {
			next := d.next
			dup := false
			if strict {
				dup = d.node == e.node
			} else {
				dup = Equal(d.node, e.node)
			}

			if dup {
				node := d.node
				node.base().ownerEntry = nil
				l.unlink(d)
				release(node)
				erased++
			}

			d = next
		}
	}

	return erased
}

// entryOf returns n's entry when n is a direct member of this list.
func (l *List) entryOf(n Node) *listEntry {
	if n == nil {
		return nil
	}

	e := n.base().ownerEntry
	if e == nil || e.list != l {
		return nil
	}

	return e
}

// topElementOf walks n's ownership chain up to the direct member of
// this list containing it, or nil when n is not under the list.
func (l *List) topElementOf(n Node) Node {
	for cur := n; cur != nil; {
		if e := cur.base().ownerEntry; e != nil && e.list == l {
			return cur
		}

		cur = cur.Parent()
	}

	return nil
}
