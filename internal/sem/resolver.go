// Package sem implements declaration and symbol resolution over the IR
// tree: classifying nodes as declarations and symbols, resolving a
// symbol to its declaration by scope search, and the ordered traversal
// that guarantees declarations are processed before their references.
package sem

import (
	"fmt"

	"github.com/esd-univr/hif-core-sub003/internal/diag"
	"github.com/esd-univr/hif-core-sub003/internal/hif"
	"github.com/esd-univr/hif-core-sub003/internal/names"
)

// ResolutionError reports that a required symbol has no reachable
// declaration.
type ResolutionError struct {
	Name string
	Want hif.DeclClass
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	return fmt.Sprintf("sem: no declaration for %q", e.Name)
}

// Options controls a single GetDeclaration query.
type Options struct {
	// Start is the scope-search starting location. When nil the search
	// starts at the use-site itself.
	Start hif.Node

	// ForceRefresh discards the cached resolution and searches again.
	ForceRefresh bool

	// DontSearch makes the query cache-only: no scope walk happens.
	DontSearch bool

	// Error escalates an unresolved symbol to a diagnostic and a
	// ResolutionError instead of an empty result.
	Error bool

	// LooseTypeChecks tolerates partial trees under construction:
	// unnamed symbols resolve to nothing silently, and a name-only
	// match is accepted when no candidate of the wanted category
	// exists anywhere on the search path.
	LooseTypeChecks bool
}

// CandidateOptions controls a GetCandidates query.
type CandidateOptions struct {
	// Start is the scope-search starting location, defaulting to the
	// use-site.
	Start hif.Node

	// Unfiltered disables the declaration-category filter.
	Unfiltered bool

	// BestCandidate returns the name-only matches when the filters
	// reject every visible declaration, for unstable trees.
	BestCandidate bool

	// AssignableOnly keeps only value declarations.
	AssignableOnly bool
}

// Resolver is the explicit resolution context for one run: it carries
// the interning table, the diagnostic reporter, and a lazily built
// per-scope name index. It is not safe for concurrent use.
type Resolver struct {
	names *names.Table
	diags *diag.Reporter

	scopeIndex map[hif.Node]map[*names.Name][]hif.Declaration
}

// NewResolver creates a resolver over the given interning table. The
// reporter receives diagnostics for escalated resolution failures; it
// may be nil when the caller handles errors directly.
func NewResolver(tbl *names.Table, rep *diag.Reporter) *Resolver {
	return &Resolver{
		names:      tbl,
		diags:      rep,
		scopeIndex: make(map[hif.Node]map[*names.Name][]hif.Declaration),
	}
}

// GetDeclaration resolves sym to its declaration. A cached resolution
// is returned as-is unless ForceRefresh is set; otherwise the enclosing
// scopes are walked outward from Options.Start (or from the use-site),
// matching by interned name and by the use-site's required declaration
// category. A successful search is cached on the node.
//
// An unresolved symbol returns (nil, nil) unless Options.Error is set,
// in which case a diagnostic is recorded and a ResolutionError
// returned.
func (r *Resolver) GetDeclaration(sym hif.Symbol, opts Options) (hif.Declaration, error) {
	if sym == nil {
		return nil, nil
	}

	if !opts.ForceRefresh {
		if cached := sym.ResolvedDeclaration(); cached != nil {
			return cached, nil
		}
	} else {
		sym.ClearResolvedDeclaration()
	}

	if opts.DontSearch {
		return nil, r.miss(sym, opts)
	}

	name := sym.ReferencedName()
	if name == nil || name == r.names.NoName {
		if opts.LooseTypeChecks {
			return nil, nil
		}

		return nil, r.miss(sym, opts)
	}

	start := opts.Start
	if start == nil {
		start = sym
	}

	var nameOnly hif.Declaration
	for n := start; n != nil; n = n.Parent() {
		scope, ok := n.(hif.Scope)
		if !ok {
			continue
		}

		for _, d := range r.lookupScope(scope, name) {
			if hif.Node(d) == hif.Node(sym) {
				continue
			}

			if d.DeclClass().Matches(sym.WantsClass()) {
				sym.SetResolvedDeclaration(d)
				return d, nil
			}

			if nameOnly == nil {
				nameOnly = d
			}
		}
	}

	if opts.LooseTypeChecks && nameOnly != nil {
		sym.SetResolvedDeclaration(nameOnly)
		return nameOnly, nil
	}

	return nil, r.miss(sym, opts)
}

// GetCandidates returns every declaration visible from the use-site
// matching its name, nearest scope first, for overload-resolution-style
// callers.
func (r *Resolver) GetCandidates(sym hif.Symbol, opts CandidateOptions) []hif.Declaration {
	if sym == nil {
		return nil
	}

	name := sym.ReferencedName()
	if name == nil || name == r.names.NoName {
		return nil
	}

	start := opts.Start
	if start == nil {
		start = sym
	}

	var filtered, nameOnly []hif.Declaration
	for n := start; n != nil; n = n.Parent() {
		scope, ok := n.(hif.Scope)
		if !ok {
			continue
		}

		for _, d := range r.lookupScope(scope, name) {
			if hif.Node(d) == hif.Node(sym) {
				continue
			}

			nameOnly = append(nameOnly, d)
			if !opts.Unfiltered && !d.DeclClass().Matches(sym.WantsClass()) {
				continue
			}

			if opts.AssignableOnly && !d.DeclClass().Matches(hif.ClassValue) {
				continue
			}

			filtered = append(filtered, d)
		}
	}

	if opts.Unfiltered {
		return nameOnly
	}

	if len(filtered) == 0 && opts.BestCandidate {
		return nameOnly
	}

	return filtered
}

// Invalidate drops every cached scope index. Call it after structural
// rewrites that add or remove declarations.
func (r *Resolver) Invalidate() {
	r.scopeIndex = make(map[hif.Node]map[*names.Name][]hif.Declaration)
}

// InvalidateScope drops the cached index of one scope.
func (r *Resolver) InvalidateScope(scope hif.Scope) {
	delete(r.scopeIndex, scope)
}

// miss applies the caller-selected failure policy.
func (r *Resolver) miss(sym hif.Symbol, opts Options) error {
	if !opts.Error {
		return nil
	}

	name := "<no-name>"
	if n := sym.ReferencedName(); n != nil {
		name = n.String()
	}

	if r.diags != nil {
		r.diags.Errorf(diag.CategoryResolution, sym.Span(),
			"cannot resolve %s %q", sym.Kind(), name)
	}

	return &ResolutionError{Name: name, Want: sym.WantsClass()}
}

// lookupScope returns the declarations named name directly visible in
// scope, building the scope's index on first use.
func (r *Resolver) lookupScope(scope hif.Scope, name *names.Name) []hif.Declaration {
	idx, ok := r.scopeIndex[scope]
	if !ok {
		idx = buildScopeIndex(scope)
		r.scopeIndex[scope] = idx
	}

	if name == r.names.Any {
		var all []hif.Declaration
		for _, ds := range idx {
			all = append(all, ds...)
		}

		return all
	}

	return idx[name]
}

// buildScopeIndex collects the declarations visible in one scope: its
// transitive children, stopping at nested scopes. A nested scope that
// is itself a named declaration is collected but not entered; names
// inside it belong to its own search level.
func buildScopeIndex(scope hif.Scope) map[*names.Name][]hif.Declaration {
	idx := make(map[*names.Name][]hif.Declaration)

	var collect func(n hif.Node)
	collect = func(n hif.Node) {
		if d, ok := n.(hif.Declaration); ok && n != hif.Node(scope) {
			if nm := d.Name(); nm != nil {
				idx[nm] = append(idx[nm], d)
			}

			if _, nested := n.(hif.Scope); nested {
				return
			}
		}

		for _, f := range n.Fields() {
			if child := f.Get(); child != nil {
				collect(child)
			}
		}

		for _, l := range n.Lists() {
			for it := l.First(); it.Valid(); it.Next() {
				collect(it.Node())
			}
		}
	}

	collect(scope)

	return idx
}
