package hif

// Equal reports deep structural equality of two subtrees: same kind,
// same name text, same kind-specific payload, and pairwise-equal
// children across all field slots and ordered lists. It is the
// comparison behind doppleganger removal; generic passes may use it to
// detect duplicated subtrees without per-kind code.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if a.Kind() != b.Kind() {
		return false
	}

	if !nameEqual(a, b) {
		return false
	}

	if !a.equalPayload(b) {
		return false
	}

	af, bf := a.Fields(), b.Fields()
	if len(af) != len(bf) {
		return false
	}

	for i := range af {
		if !Equal(af[i].Get(), bf[i].Get()) {
			return false
		}
	}

	al, bl := a.Lists(), b.Lists()
	if len(al) != len(bl) {
		return false
	}

	for i := range al {
		la, lb := al[i], bl[i]
		if la.Size() != lb.Size() {
			return false
		}

		ea, eb := la.root.next, lb.root.next
		for ea != &la.root {
			if !Equal(ea.node, eb.node) {
				return false
			}

			ea, eb = ea.next, eb.next
		}
	}

	return true
}

// nameEqual compares node names. Within one interning table names are
// identical pointers, but subtrees built against different tables still
// compare by text. Sentinel names never equal ordinary ones.
func nameEqual(a, b Node) bool {
	na, nb := a.Name(), b.Name()
	if na == nb {
		return true
	}

	if na == nil || nb == nil {
		return false
	}

	if na.IsSentinel() != nb.IsSentinel() {
		return false
	}

	return na.String() == nb.String()
}
