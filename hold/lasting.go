package hold

// Lasting is the two-case policy {Shared,Owned}: the value is either a view
// of process-lifetime data or owned outright. Both cases outlive any scope,
// so a Lasting holder can be stored away indefinitely without a validity
// check anywhere.
//
// The zero value is a shared view of the zero value of T.
type Lasting[T Cloner[T]] struct {
	v     T
	owned bool
}

// LastingFromShared wraps a view of process-lifetime data.
func LastingFromShared[T Cloner[T]](v T) Lasting[T] {
	return Lasting[T]{v: v}
}

// LastingFromOwned takes exclusive ownership of v.
func LastingFromOwned[T Cloner[T]](v T) Lasting[T] {
	return Lasting[T]{v: v, owned: true}
}

// Case returns CaseShared or CaseOwned.
func (h Lasting[T]) Case() Case {
	if h.owned {
		return CaseOwned
	}
	return CaseShared
}

// IsOwned reports whether the holder owns its value.
func (h Lasting[T]) IsOwned() bool { return h.owned }

// IsReference reports whether the holder borrows its value.
func (h Lasting[T]) IsReference() bool { return !h.owned }

// Get returns a read-only view of the value.
func (h Lasting[T]) Get() T { return h.v }

// IntoOwning consumes the holder and returns the statically owned-only form.
// An owned holder moves its value; a shared holder clones the referenced
// data so the result is mutable without touching the shared original.
func (h Lasting[T]) IntoOwning() Owned[T] {
	if h.owned {
		return Owned[T]{v: h.v}
	}
	return Owned[T]{v: h.v.Clone()}
}

// ToMut returns an exclusive handle to the value, cloning the shared data
// first if the holder does not own it yet.
func (h *Lasting[T]) ToMut() *T {
	if !h.owned {
		h.v = h.v.Clone()
		h.owned = true
	}
	return &h.v
}

// Mutate runs fn with an exclusive handle, materializing first if needed.
func (h *Lasting[T]) Mutate(fn func(*T)) { fn(h.ToMut()) }

// TryGetMut returns an exclusive handle only when the value is already
// owned. It never materializes.
func (h *Lasting[T]) TryGetMut() (*T, bool) {
	if !h.owned {
		return nil, false
	}
	return &h.v, true
}

// TryOwned narrows to the {Owned} policy when that is the active case.
func (h Lasting[T]) TryOwned() (Owned[T], bool) {
	if !h.owned {
		return Owned[T]{}, false
	}
	return Owned[T]{v: h.v}, true
}

// TryShared narrows to the {Shared} policy when that is the active case.
func (h Lasting[T]) TryShared() (Shared[T], bool) {
	if h.owned {
		return Shared[T]{}, false
	}
	return Shared[T]{v: h.v}, true
}
