package hif

// PairDispatcher resolves a handler from the concrete kinds of two
// operands at once. Instead of nesting two rounds of single dispatch,
// handlers are registered in a table keyed by the pair of kind tags;
// unregistered pairs yield the fallback result, zero by default. Kind
// narrowing happens at registration: On's type parameters constrain the
// operand types at compile time, so only legally-occurring pairs are
// ever instantiated.
type PairDispatcher struct {
	handlers map[[2]Kind]func(a, b Node) int

	// Default runs for unregistered pairs. Nil means a zero result.
	Default func(a, b Node) int
}

// NewPairDispatcher creates an empty dispatcher.
func NewPairDispatcher() *PairDispatcher {
	return &PairDispatcher{handlers: make(map[[2]Kind]func(a, b Node) int)}
}

// On registers fn for the pair of concrete kinds (A, B). Kind methods
// are constant per type, so the key is derived from the type parameters
// without instantiating nodes. The first registration for a pair wins;
// re-registering the same pair is a no-op reported by the return value.
func On[A, B Node](d *PairDispatcher, fn func(a A, b B) int) bool {
	var a A
	var b B
	key := [2]Kind{a.Kind(), b.Kind()}

	if _, exists := d.handlers[key]; exists {
		return false
	}

	d.handlers[key] = func(x, y Node) int { return fn(x.(A), y.(B)) }

	return true
}

// OnSymmetric registers fn for (A, B) and its mirrored operand order.
// The mirrored handler swaps the arguments back before calling fn.
func OnSymmetric[A, B Node](d *PairDispatcher, fn func(a A, b B) int) bool {
	ok := On(d, fn)
	On(d, func(b B, a A) int { return fn(a, b) })

	return ok
}

// Dispatch resolves and runs the handler selected by the concrete kinds
// of both operands. Pairs with no handler return the Default result, or
// zero when no Default is set.
func (d *PairDispatcher) Dispatch(a, b Node) int {
	if a == nil || b == nil {
		return 0
	}

	if fn, ok := d.handlers[[2]Kind{a.Kind(), b.Kind()}]; ok {
		return fn(a, b)
	}

	if d.Default != nil {
		return d.Default(a, b)
	}

	return 0
}

// Handles reports whether a handler is registered for the pair of
// concrete kinds of a and b.
func (d *PairDispatcher) Handles(a, b Node) bool {
	if a == nil || b == nil {
		return false
	}

	_, ok := d.handlers[[2]Kind{a.Kind(), b.Kind()}]

	return ok
}
