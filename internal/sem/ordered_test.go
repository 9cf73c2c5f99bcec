package sem

import (
	"testing"

	"github.com/esd-univr/hif-core-sub003/internal/hif"
	"github.com/esd-univr/hif-core-sub003/internal/names"
)

// recorder logs the visit order of the kinds the tests care about.
type recorder struct {
	hif.NullVisitor
	order []hif.Node
}

func (r *recorder) record(n hif.Node) int {
	r.order = append(r.order, n)
	return 0
}

func (r *recorder) VisitContents(n *hif.Contents) int     { return r.record(n) }
func (r *recorder) VisitSignal(n *hif.Signal) int         { return r.record(n) }
func (r *recorder) VisitIdentifier(n *hif.Identifier) int { return r.record(n) }
func (r *recorder) VisitAssign(n *hif.Assign) int         { return r.record(n) }
func (r *recorder) VisitDesignUnit(n *hif.DesignUnit) int { return r.record(n) }
func (r *recorder) VisitInstance(n *hif.Instance) int     { return r.record(n) }

func (r *recorder) indexOf(n hif.Node) int {
	for i, m := range r.order {
		if m == n {
			return i
		}
	}

	return -1
}

// orderedFixture declares signal b after a reference to it: signal a's
// initial value names b, which is declared later in the same list, and
// an action references b again.
type orderedFixture struct {
	tbl *names.Table
	res *Resolver

	contents *hif.Contents
	sigA     *hif.Signal
	sigB     *hif.Signal
	refInit  *hif.Identifier
	refUse   *hif.Identifier
	assign   *hif.Assign
}

func newOrderedFixture(t *testing.T) *orderedFixture {
	t.Helper()

	f := &orderedFixture{tbl: names.NewTable()}
	f.res = NewResolver(f.tbl, nil)

	f.contents = hif.NewContents()
	f.sigA = hif.NewSignal(f.tbl.Intern("a"))
	f.sigB = hif.NewSignal(f.tbl.Intern("b"))
	f.refInit = hif.NewIdentifier(f.tbl.Intern("b"))
	f.refUse = hif.NewIdentifier(f.tbl.Intern("b"))

	f.sigA.Initial.Set(f.refInit)
	f.assign = hif.NewAssign()
	f.assign.Target.Set(f.refUse)

	for _, step := range []error{
		f.contents.Declarations.PushBack(f.sigA),
		f.contents.Declarations.PushBack(f.sigB),
		f.contents.Actions.PushBack(f.assign),
	} {
		if step != nil {
			t.Fatal(step)
		}
	}

	return f
}

func TestPlainTraversalVisitsReferencesInPlace(t *testing.T) {
	f := newOrderedFixture(t)

	rec := &recorder{}
	f.res.Apply(f.contents, rec, TraversalOptions{})

	want := []hif.Node{f.contents, f.sigA, f.refInit, f.sigB, f.assign, f.refUse}
	if len(rec.order) != len(want) {
		t.Fatalf("visited %d nodes, want %d", len(rec.order), len(want))
	}

	for i := range want {
		if rec.order[i] != want[i] {
			t.Errorf("visit %d = %v, want %v", i, rec.order[i], want[i])
		}
	}
}

func TestReferencesVisitedAfterDeclaration(t *testing.T) {
	f := newOrderedFixture(t)

	rec := &recorder{}
	f.res.Apply(f.contents, rec, TraversalOptions{
		ReferencesAfterDeclaration: true,
		VisitDeclarationsOnce:      true,
		VisitSymbolsOnce:           true,
	})

	decl := rec.indexOf(f.sigB)
	if decl < 0 {
		t.Fatal("declaration not visited")
	}

	for _, ref := range []hif.Node{f.refInit, f.refUse} {
		at := rec.indexOf(ref)
		if at < 0 {
			t.Fatalf("reference %v not visited", ref)
		}

		if at < decl {
			t.Errorf("reference visited at %d, before its declaration at %d", at, decl)
		}
	}

	// Use-sites follow the declaration's subtree directly.
	want := []hif.Node{f.contents, f.sigA, f.sigB, f.refInit, f.refUse, f.assign}
	if len(rec.order) != len(want) {
		t.Fatalf("visited %d nodes (%v), want %d", len(rec.order), rec.order, len(want))
	}

	for i := range want {
		if rec.order[i] != want[i] {
			t.Errorf("visit %d = %v, want %v", i, rec.order[i], want[i])
		}
	}
}

func TestVisitOnceGuarantees(t *testing.T) {
	f := newOrderedFixture(t)

	rec := &recorder{}
	f.res.Apply(f.contents, rec, TraversalOptions{
		ReferencesAfterDeclaration: true,
		VisitDeclarationsOnce:      true,
		VisitSymbolsOnce:           true,
	})

	seen := make(map[hif.Node]int)
	for _, n := range rec.order {
		seen[n]++
	}

	for n, count := range seen {
		if count != 1 {
			t.Errorf("%v visited %d times, want exactly once", n, count)
		}
	}
}

func TestInstanceVisitedAfterReferencedUnit(t *testing.T) {
	tbl := names.NewTable()
	res := NewResolver(tbl, nil)

	// The instance sits inside the first unit and references the
	// second, so in tree order it precedes its declaration.
	sys := hif.NewSystem(tbl.Intern("top"))
	alu := hif.NewDesignUnit(tbl.Intern("alu"))
	adder := hif.NewDesignUnit(tbl.Intern("adder"))
	view := hif.NewView(tbl.Intern("rtl"))
	contents := hif.NewContents()
	inst := hif.NewInstance(tbl.Intern("u1"), tbl.Intern("adder"))

	view.Contents.Set(contents)
	for _, step := range []error{
		sys.DesignUnits.PushBack(alu),
		sys.DesignUnits.PushBack(adder),
		alu.Views.PushBack(view),
		contents.Declarations.PushBack(inst),
	} {
		if step != nil {
			t.Fatal(step)
		}
	}

	rec := &recorder{}
	res.Apply(sys, rec, TraversalOptions{
		ReferencesAfterDeclaration: true,
		VisitDeclarationsOnce:      true,
		VisitSymbolsOnce:           true,
	})

	instAt := rec.indexOf(inst)
	unitAt := rec.indexOf(adder)
	if instAt < 0 || unitAt < 0 {
		t.Fatalf("instance at %d, referenced unit at %d; both must be visited", instAt, unitAt)
	}

	if instAt < unitAt {
		t.Errorf("instance visited at %d, before the unit it references at %d", instAt, unitAt)
	}

	visits := 0
	for _, n := range rec.order {
		if n == hif.Node(inst) {
			visits++
		}
	}

	if visits != 1 {
		t.Errorf("instance visited %d times, want exactly once", visits)
	}
}

func TestUnresolvableSymbolVisitedInPlace(t *testing.T) {
	f := newOrderedFixture(t)

	ext := hif.NewIdentifier(f.tbl.Intern("external"))
	if err := f.contents.Actions.PushBack(ext); err != nil {
		t.Fatal(err)
	}

	rec := &recorder{}
	f.res.Apply(f.contents, rec, TraversalOptions{ReferencesAfterDeclaration: true})

	at := rec.indexOf(ext)
	if at < 0 {
		t.Fatal("symbol without an in-tree declaration must still be visited")
	}

	// It stays at its tree position, after the deferred references.
	if at != len(rec.order)-1 {
		t.Errorf("external symbol visited at %d, want last (%d)", at, len(rec.order)-1)
	}
}

// bitSetter returns a distinct bit per kind so the OR combination is
// observable.
type bitSetter struct {
	hif.NullVisitor
}

func (bitSetter) VisitSignal(*hif.Signal) int         { return 1 }
func (bitSetter) VisitIdentifier(*hif.Identifier) int { return 2 }

func TestApplyCombinesResults(t *testing.T) {
	f := newOrderedFixture(t)

	res := f.res.Apply(f.contents, bitSetter{}, TraversalOptions{ReferencesAfterDeclaration: true})
	if res != 3 {
		t.Fatalf("combined result = %d, want 3", res)
	}

	if got := f.res.Apply(nil, bitSetter{}, TraversalOptions{}); got != 0 {
		t.Errorf("Apply(nil) = %d, want 0", got)
	}
}
