package hif

import (
	"testing"

	"github.com/esd-univr/hif-core-sub003/internal/names"
)

func signals(t *testing.T, tbl *names.Table, l *List, ns ...string) []*Signal {
	t.Helper()

	out := make([]*Signal, 0, len(ns))
	for _, s := range ns {
		sig := NewSignal(tbl.Intern(s))
		if err := l.PushBack(sig); err != nil {
			t.Fatal(err)
		}

		out = append(out, sig)
	}

	return out
}

func TestPushOrder(t *testing.T) {
	tbl := names.NewTable()
	contents := NewContents()
	l := &contents.Declarations

	sigs := signals(t, tbl, l, "a", "b")
	front := NewSignal(tbl.Intern("c"))
	if err := l.PushFront(front); err != nil {
		t.Fatal(err)
	}

	if l.Front() != Node(front) || l.Back() != Node(sigs[1]) {
		t.Errorf("front/back = %v/%v, want c/b", l.Front().Name(), l.Back().Name())
	}

	want := []Node{front, sigs[0], sigs[1]}
	for i, n := range want {
		if l.At(i) != n {
			t.Errorf("At(%d) = %v, want %v", i, l.At(i), n)
		}

		if l.Position(n) != i {
			t.Errorf("Position = %d, want %d", l.Position(n), i)
		}
	}

	if l.At(3) != nil || l.At(-1) != nil {
		t.Error("At out of range must return nil")
	}
}

func TestPositionOfNonMemberIsSize(t *testing.T) {
	tbl := names.NewTable()
	contents := NewContents()
	l := &contents.Declarations
	signals(t, tbl, l, "a", "b", "c")

	stranger := NewSignal(tbl.Intern("x"))
	if got := l.Position(stranger); got != l.Size() {
		t.Fatalf("Position of non-member = %d, want the size %d", got, l.Size())
	}

	if l.Contains(stranger) {
		t.Error("Contains reported a non-member")
	}
}

func TestInsertExpand(t *testing.T) {
	tbl := names.NewTable()
	contents := NewContents()
	l := &contents.Declarations
	sigs := signals(t, tbl, l, "a", "b", "c")

	ins := NewSignal(tbl.Intern("x"))
	old, err := l.Insert(ins, 1, true)
	if err != nil {
		t.Fatal(err)
	}

	if old != nil {
		t.Errorf("expanding insert returned %v, want nil", old)
	}

	want := []Node{sigs[0], ins, sigs[1], sigs[2]}
	for i, n := range want {
		if l.At(i) != n {
			t.Errorf("At(%d) = %v, want %v", i, l.At(i), n)
		}
	}
}

func TestInsertReplaceInPlace(t *testing.T) {
	tbl := names.NewTable()
	contents := NewContents()
	l := &contents.Declarations
	sigs := signals(t, tbl, l, "a", "b", "c")

	repl := NewSignal(tbl.Intern("x"))
	old, err := l.Insert(repl, 1, false)
	if err != nil {
		t.Fatal(err)
	}

	if old != Node(sigs[1]) {
		t.Fatalf("replaced element = %v, want b", old)
	}

	if old.Released() {
		t.Error("ownership of the replaced element transfers to the caller; it must stay alive")
	}

	if old.Parent() != nil {
		t.Error("replaced element still has a parent")
	}

	if l.Size() != 3 || l.At(1) != Node(repl) {
		t.Errorf("list after in-place insert: size %d, At(1) %v", l.Size(), l.At(1))
	}
}

func TestInsertReplaceWithSelf(t *testing.T) {
	tbl := names.NewTable()
	contents := NewContents()
	l := &contents.Declarations
	sigs := signals(t, tbl, l, "a", "b", "c")

	old, err := l.Insert(sigs[1], 1, false)
	if err != nil {
		t.Fatal(err)
	}

	if old != nil {
		t.Errorf("replaced element = %v, want none", old)
	}

	if l.Size() != 3 {
		t.Fatalf("size = %d, want 3", l.Size())
	}

	if !l.Contains(sigs[1]) || l.Position(sigs[1]) != 1 {
		t.Errorf("b no longer at position 1: contains %v, position %d",
			l.Contains(sigs[1]), l.Position(sigs[1]))
	}
}

func TestInsertPastEndAppends(t *testing.T) {
	tbl := names.NewTable()
	contents := NewContents()
	l := &contents.Declarations
	signals(t, tbl, l, "a")

	tail := NewSignal(tbl.Intern("z"))
	if _, err := l.Insert(tail, 10, false); err != nil {
		t.Fatal(err)
	}

	if l.Back() != Node(tail) {
		t.Errorf("Back = %v, want the appended element", l.Back())
	}
}

func TestRemoveKeepsSubtreeAlive(t *testing.T) {
	tbl := names.NewTable()
	contents := NewContents()
	l := &contents.Declarations
	sigs := signals(t, tbl, l, "a", "b")
	ty := NewBoolType()
	sigs[0].Type.Set(ty)

	if !l.Remove(sigs[0]) {
		t.Fatal("Remove failed")
	}

	if sigs[0].Released() || ty.Released() {
		t.Error("Remove must not destroy the detached subtree")
	}

	// The detached node can be inserted elsewhere.
	other := NewContents()
	if err := other.Declarations.PushBack(sigs[0]); err != nil {
		t.Fatalf("reinserting a removed node: %v", err)
	}

	if l.Remove(sigs[0]) {
		t.Error("Remove of a non-member must report failure")
	}
}

func TestEraseDestroysSubtree(t *testing.T) {
	tbl := names.NewTable()
	contents := NewContents()
	l := &contents.Declarations
	sigs := signals(t, tbl, l, "a")
	ty := NewBoolType()
	sigs[0].Type.Set(ty)

	if !l.Erase(sigs[0]) {
		t.Fatal("Erase failed")
	}

	if !sigs[0].Released() || !ty.Released() {
		t.Error("Erase must destroy the element and its owned subtree")
	}

	if l.Size() != 0 {
		t.Errorf("size = %d, want 0", l.Size())
	}
}

func TestSubtreeVariantsActOnContainingElement(t *testing.T) {
	tbl := names.NewTable()
	contents := NewContents()
	l := &contents.Declarations
	sigs := signals(t, tbl, l, "a", "b")

	ty := NewBitvectorType(true)
	bounds := NewRange(RangeDownto)
	ty.Bounds.Set(bounds)
	sigs[0].Type.Set(ty)

	top, ok := l.RemoveSubtree(bounds)
	if !ok {
		t.Fatal("RemoveSubtree missed a nested node")
	}

	if top != Node(sigs[0]) {
		t.Fatalf("RemoveSubtree returned %v, want the containing top-level element", top)
	}

	if sigs[0].Released() {
		t.Error("RemoveSubtree must keep the element alive")
	}

	if l.Size() != 1 || l.Front() != Node(sigs[1]) {
		t.Error("wrong element removed")
	}

	// A node outside the list is reported, not acted on.
	if _, ok := l.RemoveSubtree(NewSignal(tbl.Intern("x"))); ok {
		t.Error("RemoveSubtree matched a node outside the list")
	}
}

func TestEraseSubtree(t *testing.T) {
	tbl := names.NewTable()
	contents := NewContents()
	l := &contents.Declarations
	sigs := signals(t, tbl, l, "a")
	ty := NewBoolType()
	sigs[0].Type.Set(ty)

	if !l.EraseSubtree(ty) {
		t.Fatal("EraseSubtree missed a nested node")
	}

	if !sigs[0].Released() || !ty.Released() {
		t.Error("EraseSubtree must destroy the whole containing element")
	}
}

func TestMergeTransfersOwnership(t *testing.T) {
	tbl := names.NewTable()
	dst := NewContents()
	src := NewContents()
	a := signals(t, tbl, &dst.Declarations, "a")[0]
	b := signals(t, tbl, &src.Declarations, "b", "c")

	if err := dst.Declarations.Merge(&src.Declarations); err != nil {
		t.Fatal(err)
	}

	if src.Declarations.Size() != 0 {
		t.Error("merge source not left empty")
	}

	want := []Node{a, b[0], b[1]}
	for i, n := range want {
		if dst.Declarations.At(i) != n {
			t.Errorf("At(%d) = %v, want %v", i, dst.Declarations.At(i), n)
		}
	}

	if b[0].Parent() != Node(dst) {
		t.Errorf("merged element parent = %v, want the destination owner", b[0].Parent())
	}
}

func TestMergeStopsAtFilter(t *testing.T) {
	tbl := names.NewTable()
	dst := NewContents()
	dst.Declarations.SetFilter(func(n Node) bool { return n.Kind() == KindSignal })

	src := NewContents()
	sig := NewSignal(tbl.Intern("ok"))
	if err := src.Declarations.PushBack(sig); err != nil {
		t.Fatal(err)
	}
	if err := src.Declarations.PushBack(NewConst(tbl.Intern("bad"))); err != nil {
		t.Fatal(err)
	}

	err := dst.Declarations.Merge(&src.Declarations)
	if err == nil {
		t.Fatal("merge must stop at a filter-rejected element")
	}

	if dst.Declarations.Size() != 1 || dst.Declarations.Front() != Node(sig) {
		t.Error("elements transferred before the rejection must stay")
	}

	if src.Declarations.Size() != 1 {
		t.Error("rejected element must stay in the source")
	}
}

func TestSortIsStable(t *testing.T) {
	contents := NewContents()
	l := &contents.Actions

	// Three equal keys interleaved with smaller ones; equal elements
	// must keep their relative order.
	vals := []int64{5, 1, 5, 0, 5}
	nodes := make([]*IntValue, len(vals))
	for i, v := range vals {
		nodes[i] = NewIntValue(v)
		if err := l.PushBack(nodes[i]); err != nil {
			t.Fatal(err)
		}
	}

	l.Sort(func(a, b Node) bool {
		return a.(*IntValue).Value < b.(*IntValue).Value
	})

	want := []Node{nodes[3], nodes[1], nodes[0], nodes[2], nodes[4]}
	for i, n := range want {
		if l.At(i) != n {
			t.Fatalf("At(%d) = %v, want element %d of the expected order", i, l.At(i), i)
		}
	}
}

func TestFindByName(t *testing.T) {
	tbl := names.NewTable()
	contents := NewContents()
	l := &contents.Declarations
	sigs := signals(t, tbl, l, "a", "b")

	if got := l.FindByName(tbl.Intern("b")); got != Node(sigs[1]) {
		t.Errorf("FindByName = %v, want b", got)
	}

	if got := l.FindByName(tbl.Intern("absent")); got != nil {
		t.Errorf("FindByName on an absent name = %v, want nil", got)
	}
}

func TestRemoveDopplegangers(t *testing.T) {
	contents := NewContents()
	l := &contents.Actions
	first := NewIntValue(5)
	dup := NewIntValue(5)
	other := NewIntValue(6)
	for _, n := range []Node{first, dup, other} {
		if err := l.PushBack(n); err != nil {
			t.Fatal(err)
		}
	}

	if erased := l.RemoveDopplegangers(false); erased != 1 {
		t.Fatalf("erased = %d, want 1", erased)
	}

	if !dup.Released() {
		t.Error("duplicate not destroyed")
	}

	if l.Size() != 2 || l.At(0) != Node(first) || l.At(1) != Node(other) {
		t.Error("survivors or their order wrong")
	}
}

func TestRemoveDopplegangersStrict(t *testing.T) {
	contents := NewContents()
	l := &contents.Actions
	for _, v := range []int64{5, 5} {
		if err := l.PushBack(NewIntValue(v)); err != nil {
			t.Fatal(err)
		}
	}

	// Single ownership means a node can appear at most once, so the
	// identity comparison never fires on structural duplicates.
	if erased := l.RemoveDopplegangers(true); erased != 0 {
		t.Fatalf("strict mode erased %d structural duplicates", erased)
	}
}

func TestIteratorTraversalAndMutation(t *testing.T) {
	tbl := names.NewTable()
	contents := NewContents()
	l := &contents.Declarations
	sigs := signals(t, tbl, l, "a", "b", "c")

	it := l.First()
	it.Next()
	if it.Node() != Node(sigs[1]) {
		t.Fatalf("cursor = %v, want b", it.Node())
	}

	removed := it.Remove()
	if removed != Node(sigs[1]) {
		t.Fatalf("Remove returned %v, want b", removed)
	}

	if it.Node() != Node(sigs[2]) {
		t.Error("cursor must advance to the next element")
	}

	if removed.Released() {
		t.Error("iterator Remove must keep the element alive")
	}

	ins := NewSignal(tbl.Intern("x"))
	if err := it.InsertBefore(ins); err != nil {
		t.Fatal(err)
	}

	if it.Node() != Node(sigs[2]) {
		t.Error("insertion must not move the cursor")
	}

	want := []Node{sigs[0], ins, sigs[2]}
	for i, n := range want {
		if l.At(i) != n {
			t.Errorf("At(%d) = %v, want %v", i, l.At(i), n)
		}
	}
}

func TestIteratorErase(t *testing.T) {
	tbl := names.NewTable()
	contents := NewContents()
	l := &contents.Declarations
	sigs := signals(t, tbl, l, "a", "b")

	it := l.First()
	if !it.Erase() {
		t.Fatal("Erase failed")
	}

	if !sigs[0].Released() {
		t.Error("erased element not destroyed")
	}

	if it.Node() != Node(sigs[1]) {
		t.Error("cursor must advance past the erased element")
	}

	if !it.Erase() {
		t.Fatal("Erase failed")
	}

	if it.Erase() {
		t.Error("Erase past the end must report failure")
	}
}

func TestIteratorBackwards(t *testing.T) {
	tbl := names.NewTable()
	contents := NewContents()
	l := &contents.Declarations
	sigs := signals(t, tbl, l, "a", "b", "c")

	var got []Node
	for it := l.Last(); it.Valid(); it.Prev() {
		got = append(got, it.Node())
	}

	want := []Node{sigs[2], sigs[1], sigs[0]}
	if len(got) != len(want) {
		t.Fatalf("visited %d elements, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestListViewCheckedUpcast(t *testing.T) {
	tbl := names.NewTable()
	contents := NewContents()
	l := &contents.Declarations
	sigs := signals(t, tbl, l, "a", "b")

	view, err := As[*Signal](l)
	if err != nil {
		t.Fatalf("As: %v", err)
	}

	if view.Underlying() != l {
		t.Error("view must wrap the same list, not a copy")
	}

	if view.Size() != 2 {
		t.Errorf("view size = %d, want 2", view.Size())
	}

	front, ok := view.Front()
	if !ok || front != sigs[0] {
		t.Errorf("view front = %v, want a", front)
	}

	// Mutations through the view are visible to the list.
	extra := NewSignal(tbl.Intern("c"))
	if err := view.PushBack(extra); err != nil {
		t.Fatal(err)
	}

	if l.Back() != Node(extra) {
		t.Error("view PushBack not visible through the list")
	}

	var seen []string
	view.Each(func(s *Signal) bool {
		seen = append(seen, s.Name().String())
		return true
	})

	if len(seen) != 3 || seen[0] != "a" || seen[2] != "c" {
		t.Errorf("Each visited %v", seen)
	}
}

func TestListViewRejectsIncompatibleElement(t *testing.T) {
	tbl := names.NewTable()
	contents := NewContents()
	l := &contents.Declarations
	signals(t, tbl, l, "a")
	if err := l.PushBack(NewConst(tbl.Intern("k"))); err != nil {
		t.Fatal(err)
	}

	if _, err := As[*Signal](l); err == nil {
		t.Fatal("checked upcast accepted an incompatible element")
	}
}

func TestListFilterRejectsInsertion(t *testing.T) {
	contents := NewContents()
	l := &contents.Actions
	l.SetFilter(func(n Node) bool {
		_, ok := n.(Action)
		return ok
	})

	if err := l.PushBack(NewAssign()); err != nil {
		t.Fatalf("filter rejected a conforming element: %v", err)
	}

	err := l.PushBack(NewBoolType())
	if err == nil {
		t.Fatal("filter accepted a non-conforming element")
	}

	if _, ok := err.(*StructuralError); !ok {
		t.Errorf("error type = %T, want *StructuralError", err)
	}
}

func TestScratchListMembersHaveNoParent(t *testing.T) {
	l := NewList()
	sig := NewSignal(nil)
	if err := l.PushBack(sig); err != nil {
		t.Fatal(err)
	}

	if sig.Parent() != nil {
		t.Errorf("scratch list member parent = %v, want nil", sig.Parent())
	}
}
