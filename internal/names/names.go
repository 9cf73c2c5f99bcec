// Package names provides the name interning table used by the IR core.
// Interning canonicalizes identifier strings so that two equal names are
// represented by the identical *Name, making pointer comparison
// equivalent to string equality. The table is an explicit context object
// scoped to one compilation run; there is no process-wide state.
package names

import "fmt"

// Name is a canonical interned identifier. Two names interned in the
// same table compare equal exactly when their pointers are equal.
type Name struct {
	str      string
	sentinel bool
}

// String returns the identifier text.
func (n *Name) String() string {
	if n == nil {
		return "<nil>"
	}

	return n.str
}

// IsSentinel returns true for the table's reserved sentinel names.
func (n *Name) IsSentinel() bool { return n != nil && n.sentinel }

// Table canonicalizes identifier strings and generates fresh names.
// It is not safe for concurrent use; one table belongs to one run.
type Table struct {
	entries   map[string]*Name
	forbidden map[string]struct{}
	counters  map[string]int
	languages map[string]struct{}

	// NoName marks nodes that have no name assigned. Any is the
	// wildcard name. Both are singletons distinct from every
	// ordinary registered name, including ones with the same text.
	NoName *Name
	Any    *Name
}

// NewTable creates an empty interning table with its sentinel names.
func NewTable() *Table {
	return &Table{
		entries:   make(map[string]*Name),
		forbidden: make(map[string]struct{}),
		counters:  make(map[string]int),
		languages: make(map[string]struct{}),
		NoName:    &Name{str: "<no-name>", sentinel: true},
		Any:       &Name{str: "<any>", sentinel: true},
	}
}

// Intern registers s and returns its canonical instance. Repeated calls
// with an equal string return the identical pointer.
func (t *Table) Intern(s string) *Name {
	if n, ok := t.entries[s]; ok {
		return n
	}

	n := &Name{str: s}
	t.entries[s] = n

	return n
}

// Lookup returns the canonical instance for s without registering it,
// or nil if s has never been interned.
func (t *Table) Lookup(s string) *Name {
	return t.entries[s]
}

// Contains reports whether s has been registered in the table.
func (t *Table) Contains(s string) bool {
	_, ok := t.entries[s]
	return ok
}

// Size returns the number of registered names, sentinels excluded.
func (t *Table) Size() int { return len(t.entries) }

// Forbid adds s to the denylist. Forbidden names are never chosen by
// FreshName and are never case-folded.
func (t *Table) Forbid(s string) {
	t.forbidden[s] = struct{}{}
}

// IsForbidden reports whether s is on the denylist. The comparison is
// exact; no case folding is applied.
func (t *Table) IsForbidden(s string) bool {
	_, ok := t.forbidden[s]
	return ok
}

// FreshName returns a name guaranteed absent from the table at the time
// of the call. The scheme is deterministic: prefix verbatim if it is
// neither registered nor forbidden, otherwise prefix_N with N a
// per-prefix counter starting at 1. The chosen name is registered before
// returning, so repeated calls with the same prefix never collide with
// each other or with previously registered names.
func (t *Table) FreshName(prefix string) *Name {
	if !t.Contains(prefix) && !t.IsForbidden(prefix) {
		return t.Intern(prefix)
	}

	n := t.counters[prefix]
	for {
		n++
		candidate := fmt.Sprintf("%s_%d", prefix, n)
		if !t.Contains(candidate) && !t.IsForbidden(candidate) {
			t.counters[prefix] = n
			return t.Intern(candidate)
		}
	}
}
