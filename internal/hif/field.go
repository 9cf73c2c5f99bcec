package hif

import "fmt"

// Field is a single, optionally-occupied, exclusively-owned child slot
// belonging to a parent node. Concrete kinds expose their slots as
// struct fields registered during construction, so generic passes can
// reach them through Node.Fields without per-kind code.
type Field struct {
	name  string
	owner Node
	child Node
}

// SlotName returns the field's declared name.
func (f *Field) SlotName() string { return f.name }

// Owner returns the node the slot belongs to.
func (f *Field) Owner() Node { return f.owner }

// Get returns the slot's occupant, or nil when empty.
func (f *Field) Get() Node { return f.child }

// IsEmpty reports whether the slot holds no child.
func (f *Field) IsEmpty() bool { return f.child == nil }

// Set installs child into the slot and returns the previous occupant
// with ownership transferred to the caller, who must dispose of it. If
// child already had an owner it is detached there first; the implicit
// move is the documented contract, not an error. Installing a node that
// would become its own ancestor is a fatal invariant violation.
func (f *Field) Set(child Node) Node {
	if child != nil {
		if isAncestorOrSelf(child, f.owner) {
			panic(fmt.Sprintf("hif: setting %s into %s.%s would make it its own ancestor",
				child.Kind(), f.owner.Kind(), f.name))
		}

		detach(child)
	}

	prev := f.child
	if prev != nil {
		prev.base().ownerField = nil
	}

	f.child = child
	if child != nil {
		child.base().ownerField = f
	}

	return prev
}
