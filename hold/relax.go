package hold

// Widening ("relax") conversions from a narrower policy into Full. These are
// free functions rather than methods because the target policy adds the
// Cloner bound, which a method on the narrower type cannot introduce. The
// active case and any scope binding carry over unchanged; no clone is ever
// performed.

// RelaxScoped widens a {Scoped} holder into the full policy.
func RelaxScoped[T Cloner[T]](h Scoped[T]) Full[T] {
	return Full[T]{v: h.v, tag: CaseScoped, sc: h.sc}
}

// RelaxShared widens a {Shared} holder into the full policy.
func RelaxShared[T Cloner[T]](h Shared[T]) Full[T] {
	return Full[T]{v: h.v, tag: CaseShared}
}

// RelaxOwned widens an {Owned} holder into the full policy.
func RelaxOwned[T Cloner[T]](h Owned[T]) Full[T] {
	return Full[T]{v: h.v, tag: CaseOwned}
}

// RelaxRef widens a {Scoped,Shared} holder into the full policy.
func RelaxRef[T Cloner[T]](h Ref[T]) Full[T] {
	if h.sc != nil {
		return Full[T]{v: h.v, tag: CaseScoped, sc: h.sc}
	}
	return Full[T]{v: h.v, tag: CaseShared}
}

// RelaxCow widens a {Scoped,Owned} holder into the full policy.
func RelaxCow[T Cloner[T]](h Cow[T]) Full[T] {
	if h.sc != nil {
		return Full[T]{v: h.v, tag: CaseScoped, sc: h.sc}
	}
	return Full[T]{v: h.v, tag: CaseOwned}
}

// RelaxLasting widens a {Shared,Owned} holder into the full policy.
func RelaxLasting[T Cloner[T]](h Lasting[T]) Full[T] {
	if h.owned {
		return Full[T]{v: h.v, tag: CaseOwned}
	}
	return Full[T]{v: h.v, tag: CaseShared}
}
