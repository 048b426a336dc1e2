package hold

import "github.com/keeplib/keep/scope"

// Ref is the two-case policy {Scoped,Shared}: always a borrowed view, never
// an owner. Because the policy excludes Owned, the payload needs no Cloner
// and no code path in this type can materialize, mutate or drop anything —
// not as a runtime refusal but as an absence of the operations.
//
// A nil scope pointer is the shared case, so the zero value is a shared view
// of the zero value of T.
type Ref[T any] struct {
	v  T
	sc *scope.Scope // nil for the shared case
}

// RefFromScoped borrows v for the duration of sc. Panics if sc is nil or
// ended.
func RefFromScoped[T any](v T, sc *scope.Scope) Ref[T] {
	sc.Check()
	return Ref[T]{v: v, sc: sc}
}

// RefFromShared wraps a view of process-lifetime data.
func RefFromShared[T any](v T) Ref[T] {
	return Ref[T]{v: v}
}

// Case returns CaseScoped or CaseShared.
func (h Ref[T]) Case() Case {
	if h.sc != nil {
		return CaseScoped
	}
	return CaseShared
}

// IsOwned always reports false.
func (h Ref[T]) IsOwned() bool { return false }

// IsReference always reports true.
func (h Ref[T]) IsReference() bool { return true }

// Get returns the borrowed view, checking the scope when the active case is
// scoped.
func (h Ref[T]) Get() T {
	if h.sc != nil {
		h.sc.Check()
	}
	return h.v
}

// TryScoped narrows to the {Scoped} policy when that is the active case.
func (h Ref[T]) TryScoped() (Scoped[T], bool) {
	if h.sc == nil {
		return Scoped[T]{}, false
	}
	return Scoped[T]{v: h.v, sc: h.sc}, true
}

// TryShared narrows to the {Shared} policy when that is the active case.
func (h Ref[T]) TryShared() (Shared[T], bool) {
	if h.sc != nil {
		return Shared[T]{}, false
	}
	return Shared[T]{v: h.v}, true
}
