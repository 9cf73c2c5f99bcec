package sem

import (
	"github.com/esd-univr/hif-core-sub003/internal/hif"
)

// TraversalOptions selects the ordering and revisit guarantees of an
// ordered traversal.
type TraversalOptions struct {
	// ReferencesAfterDeclaration guarantees that a declaration is
	// visited before any of its references: one upfront linear pass
	// maps every declaration to the set of its use-sites, and while a
	// declaration is visited each of its use-sites is visited
	// immediately afterwards.
	ReferencesAfterDeclaration bool

	// VisitDeclarationsOnce visits each declaration exactly once even
	// when it is reachable through many references.
	VisitDeclarationsOnce bool

	// VisitSymbolsOnce visits each symbol exactly once.
	VisitSymbolsOnce bool
}

// Apply traverses the tree under root, dispatching every node to v.
// The visitor receives single nodes and must not recurse on its own;
// embed hif.NullVisitor for per-node callbacks. The traversal owns the
// recursion so it can reorder reference visits after their
// declarations and enforce the visit-once guarantees. Results of all
// handler invocations are OR-combined.
func (r *Resolver) Apply(root hif.Node, v hif.Visitor, opts TraversalOptions) int {
	if root == nil {
		return 0
	}

	w := &orderedWalk{r: r, v: v, opts: opts}
	if opts.VisitDeclarationsOnce {
		w.seenDecls = make(map[hif.Node]struct{})
	}

	if opts.VisitSymbolsOnce {
		w.seenSyms = make(map[hif.Node]struct{})
	}

	if opts.ReferencesAfterDeclaration {
		w.collectUses(root)
	}

	w.visit(root)

	return w.res
}

// orderedWalk carries the state of one Apply run.
type orderedWalk struct {
	r    *Resolver
	v    hif.Visitor
	opts TraversalOptions

	// uses maps each declaration under root to its use-sites, in
	// encounter order of the upfront pass.
	uses map[hif.Declaration][]hif.Symbol
	// underRoot records which declarations the walk can reach, so
	// symbols resolving outside the walked tree are still visited in
	// place.
	underRoot map[hif.Declaration]struct{}

	seenDecls map[hif.Node]struct{}
	seenSyms  map[hif.Node]struct{}

	res int
}

// collectUses performs the single linear pass over the whole tree that
// precomputes declaration-to-use-sites, trading one upfront traversal
// for constant-time use-site lookup during the ordered walk.
func (w *orderedWalk) collectUses(root hif.Node) {
	w.uses = make(map[hif.Declaration][]hif.Symbol)
	w.underRoot = make(map[hif.Declaration]struct{})

	var scan func(n hif.Node)
	scan = func(n hif.Node) {
		if d, ok := n.(hif.Declaration); ok {
			w.underRoot[d] = struct{}{}
		}

		if s, ok := n.(hif.Symbol); ok {
			if d, _ := w.r.GetDeclaration(s, Options{LooseTypeChecks: true}); d != nil {
				w.uses[d] = append(w.uses[d], s)
			}
		}

		for _, f := range n.Fields() {
			if child := f.Get(); child != nil {
				scan(child)
			}
		}

		for _, l := range n.Lists() {
			for it := l.First(); it.Valid(); it.Next() {
				scan(it.Node())
			}
		}
	}

	scan(root)
}

func (w *orderedWalk) visit(n hif.Node) {
	// The symbol role wins the routing so that a node acting as both
	// declaration and reference, an instance for example, is deferred
	// past the declaration it references just like a plain symbol.
	if s, ok := n.(hif.Symbol); ok {
		w.visitSymbol(s, false)
		return
	}

	if d, ok := n.(hif.Declaration); ok {
		w.visitDeclaration(d)
		return
	}

	w.res |= n.Accept(w.v)
	w.children(n)
}

func (w *orderedWalk) visitDeclaration(d hif.Declaration) {
	if w.seenDecls != nil {
		if _, seen := w.seenDecls[d]; seen {
			return
		}

		w.seenDecls[d] = struct{}{}
	}

	// A node that is both declaration and symbol counts as visited in
	// both roles.
	if _, isSym := d.(hif.Symbol); isSym && w.seenSyms != nil {
		if _, seen := w.seenSyms[d]; seen {
			return
		}

		w.seenSyms[d] = struct{}{}
	}

	w.res |= d.Accept(w.v)
	w.children(d)

	if w.opts.ReferencesAfterDeclaration {
		for _, use := range w.uses[d] {
			w.visitSymbol(use, true)
		}
	}
}

func (w *orderedWalk) visitSymbol(s hif.Symbol, fromDeclaration bool) {
	if w.opts.ReferencesAfterDeclaration && !fromDeclaration && w.deferred(s) {
		// This use-site is visited right after its declaration
		// instead.
		return
	}

	if d, ok := s.(hif.Declaration); ok {
		w.visitDeclaration(d)
		return
	}

	if w.seenSyms != nil {
		if _, seen := w.seenSyms[s]; seen {
			return
		}

		w.seenSyms[s] = struct{}{}
	}

	w.res |= s.Accept(w.v)
	w.children(s)
}

// deferred reports whether the use-site's in-place visit is postponed:
// only when the declaration it resolves to is inside the walked tree.
func (w *orderedWalk) deferred(s hif.Symbol) bool {
	d := s.ResolvedDeclaration()
	if d == nil {
		return false
	}

	_, ok := w.underRoot[d]

	return ok
}

func (w *orderedWalk) children(n hif.Node) {
	for _, f := range n.Fields() {
		if child := f.Get(); child != nil {
			w.visit(child)
		}
	}

	for _, l := range n.Lists() {
		for it := l.First(); it.Valid(); it.Next() {
			w.visit(it.Node())
		}
	}
}
