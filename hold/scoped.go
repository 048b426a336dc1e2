package hold

import "github.com/keeplib/keep/scope"

// Scoped is the single-case policy {Scoped}: a borrowed view whose validity
// is bounded by an explicit scope. Every access re-checks the scope, so a
// holder that escapes its scope fails at the access site.
//
// There is no zero value in a usable state; always construct via NewScoped.
type Scoped[T any] struct {
	v  T
	sc *scope.Scope
}

// NewScoped borrows v for the duration of sc. It panics if sc is nil or has
// already ended: lending from a dead scope is a bug at the call site.
func NewScoped[T any](v T, sc *scope.Scope) Scoped[T] {
	sc.Check()
	return Scoped[T]{v: v, sc: sc}
}

// Case always returns CaseScoped.
func (h Scoped[T]) Case() Case { return CaseScoped }

// IsOwned always reports false.
func (h Scoped[T]) IsOwned() bool { return false }

// IsReference always reports true.
func (h Scoped[T]) IsReference() bool { return true }

// Get returns the borrowed view. It panics if the scope has ended.
func (h Scoped[T]) Get() T {
	h.sc.Check()
	return h.v
}

// Unwrap returns the borrowed view directly; the single-case policy leaves
// no tag to check. The scope must still be alive.
func (h Scoped[T]) Unwrap() T {
	h.sc.Check()
	return h.v
}

// Scope returns the scope the borrow is bound to.
func (h Scoped[T]) Scope() *scope.Scope { return h.sc }

// InRef widens the holder into the {Scoped,Shared} policy, keeping the scope
// binding intact.
func (h Scoped[T]) InRef() Ref[T] {
	return Ref[T]{v: h.v, sc: h.sc}
}
