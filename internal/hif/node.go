// Package hif implements the generic intermediate-representation tree
// shared by the hardware-description front ends and back ends: typed
// nodes with single-owner child slots and ordered child lists,
// reflective child enumeration, the visitor dispatch protocol, and the
// structural operations (replace, detach, splice) generic rewriting
// passes are built on.
//
// The tree is a safe-by-convention pointer graph: ownership is acyclic
// by construction, every node has at most one owner at any time, and
// assigning an already-owned node into a new slot or list detaches it
// from its previous owner first. The package performs no locking; one
// tree belongs to one pass at a time.
package hif

import (
	"fmt"

	"github.com/esd-univr/hif-core-sub003/internal/names"
	"github.com/esd-univr/hif-core-sub003/internal/source"
)

// Node is the base interface implemented by every IR node.
type Node interface {
	// Kind returns the node's concrete kind tag. Kind methods are
	// constant per type and safe on nil receivers.
	Kind() Kind

	// Name returns the node's name, or nil when it has none.
	Name() *names.Name
	// SetName assigns the node's name.
	SetName(n *names.Name)

	// Span returns the source span this node was built from.
	Span() source.Span
	// SetSpan records the source span.
	SetSpan(s source.Span)
	// Comments returns the comments attached to this node.
	Comments() []source.Comment
	// AddComment attaches a source comment.
	AddComment(c source.Comment)

	// Parent returns the owning node, resolved whether this node sits
	// in a field slot or in an ordered list. Nil for roots.
	Parent() Node

	// Fields enumerates the node's field slots in declaration order.
	Fields() []*Field
	// Lists enumerates the node's ordered child lists in declaration order.
	Lists() []*List

	// Accept dispatches to the visitor method matching this node's
	// concrete kind and returns its result.
	Accept(v Visitor) int

	// SetProperty attaches named metadata with an optional owned value
	// node. Registering a key twice is a silent no-op and the first
	// registration is kept; the return value reports whether the
	// property was stored.
	SetProperty(key string, value Node) bool
	// HasProperty reports whether the key is attached.
	HasProperty(key string) bool
	// Property fetches the value attached under key.
	Property(key string) (Node, bool)
	// RemoveProperty detaches the key, destroying any owned value.
	RemoveProperty(key string) bool
	// PropertyKeys lists attached keys in registration order.
	PropertyKeys() []string

	// Replace swaps this node for other at its current owner, whether
	// a field slot or a list position. Returns false when unowned.
	Replace(other Node) bool
	// ReplaceWithList splices the contents of l into this node's list
	// position. Only valid when the owner is an ordered list; returns
	// false otherwise. The source list is left empty.
	ReplaceWithList(l *List) bool
	// Detach removes this node from its owner, keeping it alive.
	// Returns false when the node has no owner.
	Detach() bool
	// Released reports whether the node has been destroyed.
	Released() bool

	// ResolvedDeclaration returns the cached declaration this node
	// resolved to, or nil.
	ResolvedDeclaration() Declaration
	// SetResolvedDeclaration caches a resolution result.
	SetResolvedDeclaration(d Declaration)
	// ClearResolvedDeclaration drops the cached resolution.
	ClearResolvedDeclaration()

	// equalPayload compares kind-specific scalar payload.
	equalPayload(other Node) bool

	base() *BaseNode
}

// Declaration is a node that introduces a name visible in an enclosing
// scope.
type Declaration interface {
	Node
	// DeclClass classifies the introduced name.
	DeclClass() DeclClass
}

// Symbol is a node that references a name and caches the declaration it
// resolves to.
type Symbol interface {
	Node
	// ReferencedName returns the name this symbol refers to.
	ReferencedName() *names.Name
	// WantsClass returns the declaration categories this symbol may
	// legally resolve to.
	WantsClass() DeclClass
}

// Scope is a declaration capable of containing nested declarations.
// Scopes form the search path for declaration resolution.
type Scope interface {
	Declaration
	scopeNode() // Marker method to distinguish scopes
}

// StructuralError reports a recoverable failure of a structural
// operation, such as inserting a node a list's type filter rejects.
type StructuralError struct {
	Op     string
	Reason string
}

// Error implements the error interface.
func (e *StructuralError) Error() string {
	return fmt.Sprintf("hif: %s: %s", e.Op, e.Reason)
}

// BaseNode carries the state shared by every node kind: ownership,
// naming, source metadata, the property bag and the resolution cache.
// Concrete kinds embed it and register their slots during construction.
type BaseNode struct {
	self Node // concrete node owning this base

	name     *names.Name
	span     source.Span
	comments []source.Comment

	// A node has at most one owner: a field slot or a list entry,
	// never both.
	ownerField *Field
	ownerEntry *listEntry

	fields []*Field
	lists  []*List

	properties map[string]Node
	propOrder  []string

	resolved Declaration
	released bool
}

// init wires the base to its concrete node. Every constructor calls it
// before declaring slots.
func (b *BaseNode) init(self Node, name *names.Name) {
	b.self = self
	b.name = name
}

// declareField registers a field slot in declaration order.
func (b *BaseNode) declareField(f *Field, name string) {
	f.name = name
	f.owner = b.self
	b.fields = append(b.fields, f)
}

// declareList registers an ordered child list in declaration order.
func (b *BaseNode) declareList(l *List, name string) {
	l.name = name
	l.owner = b.self
	l.root.next = &l.root
	l.root.prev = &l.root
	b.lists = append(b.lists, l)
}

func (b *BaseNode) base() *BaseNode { return b }

// Name returns the node's name, or nil when it has none.
func (b *BaseNode) Name() *names.Name { return b.name }

// SetName assigns the node's name.
func (b *BaseNode) SetName(n *names.Name) { b.name = n }

// Span returns the source span this node was built from.
func (b *BaseNode) Span() source.Span { return b.span }

// SetSpan records the source span.
func (b *BaseNode) SetSpan(s source.Span) { b.span = s }

// Comments returns the comments attached to this node.
func (b *BaseNode) Comments() []source.Comment { return b.comments }

// AddComment attaches a source comment.
func (b *BaseNode) AddComment(c source.Comment) { b.comments = append(b.comments, c) }

// Parent returns the owning node, resolved through either the field
// slot or the containing list. Both resolutions are constant time.
func (b *BaseNode) Parent() Node {
	if b.ownerField != nil {
		return b.ownerField.owner
	}

	if b.ownerEntry != nil {
		return b.ownerEntry.list.owner
	}

	return nil
}

// Fields enumerates the node's field slots in declaration order.
func (b *BaseNode) Fields() []*Field { return b.fields }

// Lists enumerates the node's ordered child lists in declaration order.
func (b *BaseNode) Lists() []*List { return b.lists }

// SetProperty attaches named metadata. The first registration under a
// key wins; re-registering is a silent no-op returning false. A non-nil
// value node is owned by the property and destroyed with it.
func (b *BaseNode) SetProperty(key string, value Node) bool {
	if b.properties == nil {
		b.properties = make(map[string]Node)
	}

	if _, exists := b.properties[key]; exists {
		return false
	}

	if value != nil {
		detach(value)
	}

	b.properties[key] = value
	b.propOrder = append(b.propOrder, key)

	return true
}

// HasProperty reports whether the key is attached.
func (b *BaseNode) HasProperty(key string) bool {
	_, ok := b.properties[key]
	return ok
}

// Property fetches the value attached under key. The value may be nil
// even when the key is present.
func (b *BaseNode) Property(key string) (Node, bool) {
	v, ok := b.properties[key]
	return v, ok
}

// RemoveProperty detaches the key and destroys its owned value.
// Returns false when the key is absent.
func (b *BaseNode) RemoveProperty(key string) bool {
	v, ok := b.properties[key]
	if !ok {
		return false
	}

	delete(b.properties, key)
	for i, k := range b.propOrder {
		if k == key {
			b.propOrder = append(b.propOrder[:i], b.propOrder[i+1:]...)
			break
		}
	}

	if v != nil {
		release(v)
	}

	return true
}

// PropertyKeys lists attached keys in registration order.
func (b *BaseNode) PropertyKeys() []string {
	keys := make([]string, len(b.propOrder))
	copy(keys, b.propOrder)

	return keys
}

// Replace swaps this node for other at its current owner. Returns
// false when the node has no owner.
func (b *BaseNode) Replace(other Node) bool {
	if b.ownerField != nil {
		slot := b.ownerField
		slot.Set(other)

		return true
	}

	if b.ownerEntry != nil {
		entry := b.ownerEntry
		list := entry.list
		if other != nil {
			list.checkCycle("Replace", other)
			detach(other)
			other.base().ownerEntry = entry
		}

		old := entry.node
		entry.node = other
		if old != nil {
			old.base().ownerEntry = nil
		}

		if other == nil {
			list.unlink(entry)
		}

		return true
	}

	return false
}

// ReplaceWithList splices the contents of l into this node's position.
// Only valid when the node's owner is an ordered list and l is a
// different list. The spliced elements transfer ownership and l is
// left empty.
func (b *BaseNode) ReplaceWithList(l *List) bool {
	if b.ownerEntry == nil {
		return false
	}

	entry := b.ownerEntry
	dst := entry.list
	if l == dst {
		return false
	}

	for !l.Empty() {
		n := l.Front()
		l.Remove(n)
		dst.insertEntryBefore(entry, n)
	}

	dst.unlink(entry)
	b.ownerEntry = nil

	return true
}

// Detach removes this node from its owner, keeping it and its subtree
// alive. Returns false when the node has no owner.
func (b *BaseNode) Detach() bool {
	if b.ownerField == nil && b.ownerEntry == nil {
		return false
	}

	detach(b.self)

	return true
}

// Released reports whether the node has been destroyed.
func (b *BaseNode) Released() bool { return b.released }

// ResolvedDeclaration returns the cached declaration this node resolved
// to, or nil. The cache, once populated, is stable until explicitly
// refreshed.
func (b *BaseNode) ResolvedDeclaration() Declaration { return b.resolved }

// SetResolvedDeclaration caches a resolution result.
func (b *BaseNode) SetResolvedDeclaration(d Declaration) { b.resolved = d }

// ClearResolvedDeclaration drops the cached resolution.
func (b *BaseNode) ClearResolvedDeclaration() { b.resolved = nil }

// equalPayload is the default payload comparison. Kinds with scalar
// payload override it.
func (b *BaseNode) equalPayload(other Node) bool { return true }

// detach unconditionally unlinks n from whatever owns it.
func detach(n Node) {
	nb := n.base()
	if nb.ownerField != nil {
		nb.ownerField.child = nil
		nb.ownerField = nil
	}

	if nb.ownerEntry != nil {
		nb.ownerEntry.list.unlink(nb.ownerEntry)
		nb.ownerEntry = nil
	}
}

// Destroy detaches n and releases it together with its owned subtree
// and property values. Destroying a node twice violates the lifecycle
// invariant and is fatal.
func Destroy(n Node) {
	if n == nil {
		return
	}

	if n.base().released {
		panic(fmt.Sprintf("hif: %s node destroyed twice", n.Kind()))
	}

	detach(n)
	release(n)
}

// release recursively marks a detached subtree as destroyed.
func release(n Node) {
	nb := n.base()
	nb.released = true

	for _, f := range nb.fields {
		if f.child != nil {
			release(f.child)
		}
	}

	for _, l := range nb.lists {
		for e := l.root.next; e != &l.root; e = e.next {
			if e.node != nil {
				release(e.node)
			}
		}
	}

	for _, v := range nb.properties {
		if v != nil {
			release(v)
		}
	}
}

// isAncestorOrSelf reports whether candidate is n or one of n's
// ancestors through the ownership chain.
func isAncestorOrSelf(candidate, n Node) bool {
	for cur := n; cur != nil; cur = cur.Parent() {
		if cur == candidate {
			return true
		}
	}

	return false
}
