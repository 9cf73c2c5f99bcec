package hif

import "testing"

const (
	resIntInt  = 1 << iota // int op int
	resIntBool             // int op bool
	resMirror              // mirrored operand order
)

func TestPairDispatchSelectsByRuntimeKinds(t *testing.T) {
	d := NewPairDispatcher()
	On(d, func(a, b *IntValue) int { return resIntInt })
	On(d, func(a *IntValue, b *BoolValue) int { return resIntBool })

	// Static types are the Node interface; only the runtime kinds of
	// the operands select the handler.
	var x Node = NewIntValue(1)
	var y Node = NewIntValue(2)
	var z Node = NewBoolValue(true)

	if res := d.Dispatch(x, y); res != resIntInt {
		t.Errorf("Dispatch(int, int) = %d, want %d", res, resIntInt)
	}

	if res := d.Dispatch(x, z); res != resIntBool {
		t.Errorf("Dispatch(int, bool) = %d, want %d", res, resIntBool)
	}

	// Operand order matters for asymmetric registrations.
	if res := d.Dispatch(z, x); res != 0 {
		t.Errorf("Dispatch(bool, int) = %d, want the zero fallback", res)
	}
}

func TestPairDispatchDefault(t *testing.T) {
	d := NewPairDispatcher()
	d.Default = func(a, b Node) int { return 99 }

	if res := d.Dispatch(NewBoolValue(true), NewTextValue("x")); res != 99 {
		t.Errorf("unregistered pair = %d, want the Default result", res)
	}

	if d.Handles(NewBoolValue(true), NewTextValue("x")) {
		t.Error("Handles must not report the Default fallback")
	}
}

func TestPairDispatchFirstRegistrationWins(t *testing.T) {
	d := NewPairDispatcher()
	if !On(d, func(a, b *IntValue) int { return 1 }) {
		t.Fatal("first registration rejected")
	}

	if On(d, func(a, b *IntValue) int { return 2 }) {
		t.Fatal("duplicate registration accepted")
	}

	if res := d.Dispatch(NewIntValue(0), NewIntValue(0)); res != 1 {
		t.Errorf("Dispatch = %d, want the first handler's result", res)
	}
}

func TestPairDispatchSymmetric(t *testing.T) {
	d := NewPairDispatcher()
	OnSymmetric(d, func(a *IntValue, b *BoolValue) int {
		if b.Value {
			return resMirror
		}

		return 0
	})

	iv := NewIntValue(1)
	bv := NewBoolValue(true)

	if res := d.Dispatch(iv, bv); res != resMirror {
		t.Errorf("Dispatch(int, bool) = %d, want %d", res, resMirror)
	}

	// The mirrored handler swaps the operands back before calling fn.
	if res := d.Dispatch(bv, iv); res != resMirror {
		t.Errorf("Dispatch(bool, int) = %d, want %d", res, resMirror)
	}
}

func TestPairDispatchNilOperands(t *testing.T) {
	d := NewPairDispatcher()
	On(d, func(a, b *IntValue) int { return 1 })

	if res := d.Dispatch(nil, NewIntValue(0)); res != 0 {
		t.Errorf("Dispatch with nil operand = %d, want 0", res)
	}

	if d.Handles(nil, nil) {
		t.Error("Handles with nil operands must report false")
	}
}
