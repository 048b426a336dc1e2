package hold

import "github.com/keeplib/keep/scope"

// Cow is the two-case policy {Scoped,Owned}: the classic copy-on-write pair.
// It starts as either a scoped borrow or an owned value and materializes an
// owned copy the first time mutation is requested. Materialization is the
// only transition: an owned Cow never becomes a borrow again.
//
// A nil scope pointer is the owned case, so the zero value owns the zero
// value of T.
type Cow[T Cloner[T]] struct {
	v  T
	sc *scope.Scope // nil for the owned case
}

// CowFromScoped borrows v for the duration of sc. Panics if sc is nil or
// ended.
func CowFromScoped[T Cloner[T]](v T, sc *scope.Scope) Cow[T] {
	sc.Check()
	return Cow[T]{v: v, sc: sc}
}

// CowFromOwned takes exclusive ownership of v.
func CowFromOwned[T Cloner[T]](v T) Cow[T] {
	return Cow[T]{v: v}
}

// Case returns CaseScoped or CaseOwned.
func (h Cow[T]) Case() Case {
	if h.sc != nil {
		return CaseScoped
	}
	return CaseOwned
}

// IsOwned reports whether the holder owns its value.
func (h Cow[T]) IsOwned() bool { return h.sc == nil }

// IsReference reports whether the holder borrows its value.
func (h Cow[T]) IsReference() bool { return h.sc != nil }

// Get returns a read-only view of the value, checking the scope when the
// active case is scoped.
func (h Cow[T]) Get() T {
	if h.sc != nil {
		h.sc.Check()
	}
	return h.v
}

// IntoOwning consumes the holder and returns the statically owned-only form.
// An owned holder moves its value with no copy; a scoped holder clones the
// borrowed data, leaving the original untouched.
func (h Cow[T]) IntoOwning() Owned[T] {
	if h.sc == nil {
		return Owned[T]{v: h.v}
	}
	h.sc.Check()
	return Owned[T]{v: h.v.Clone()}
}

// ToMut returns an exclusive handle to the value, materializing an owned
// copy first if the active case is a borrow. This is the copy-on-write
// trigger: after it returns, the holder is owned and detached from any
// scope.
func (h *Cow[T]) ToMut() *T {
	if h.sc != nil {
		h.sc.Check()
		h.v = h.v.Clone()
		h.sc = nil
	}
	return &h.v
}

// Mutate runs fn with an exclusive handle, materializing first if needed.
func (h *Cow[T]) Mutate(fn func(*T)) { fn(h.ToMut()) }

// TryGetMut returns an exclusive handle only when the value is already
// owned. It never materializes.
func (h *Cow[T]) TryGetMut() (*T, bool) {
	if h.sc != nil {
		return nil, false
	}
	return &h.v, true
}

// TryOwned narrows to the {Owned} policy when that is the active case. No
// clone is performed in either outcome.
func (h Cow[T]) TryOwned() (Owned[T], bool) {
	if h.sc != nil {
		return Owned[T]{}, false
	}
	return Owned[T]{v: h.v}, true
}

// TryScoped narrows to the {Scoped} policy when that is the active case.
func (h Cow[T]) TryScoped() (Scoped[T], bool) {
	if h.sc == nil {
		return Scoped[T]{}, false
	}
	return Scoped[T]{v: h.v, sc: h.sc}, true
}
