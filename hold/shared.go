package hold

// Shared is the single-case policy {Shared}: a view of data that stays valid
// for the rest of the process, so no scope is carried and no access check
// exists. The holder never owns the data and never mutates it.
//
// The zero value is a shared view of the zero value of T.
type Shared[T any] struct {
	v T
}

// NewShared wraps a view of process-lifetime data. The caller vouches that v
// stays valid and unmodified for the life of every copy of the holder.
func NewShared[T any](v T) Shared[T] {
	return Shared[T]{v: v}
}

// Case always returns CaseShared.
func (h Shared[T]) Case() Case { return CaseShared }

// IsOwned always reports false.
func (h Shared[T]) IsOwned() bool { return false }

// IsReference always reports true.
func (h Shared[T]) IsReference() bool { return true }

// Get returns the shared view.
func (h Shared[T]) Get() T { return h.v }

// Unwrap returns the shared view directly; the single-case policy leaves no
// tag to check.
func (h Shared[T]) Unwrap() T { return h.v }

// InRef widens the holder into the {Scoped,Shared} policy.
func (h Shared[T]) InRef() Ref[T] {
	return Ref[T]{v: h.v}
}
