package hold

// Owned is the single-case policy {Owned}: the holder always owns its value.
// It carries no tag and no scope pointer, so it is exactly as large as T.
//
// The zero value holds the zero value of T.
type Owned[T any] struct {
	v T
}

// NewOwned takes exclusive ownership of v.
func NewOwned[T any](v T) Owned[T] {
	return Owned[T]{v: v}
}

// Case always returns CaseOwned.
func (h Owned[T]) Case() Case { return CaseOwned }

// IsOwned always reports true.
func (h Owned[T]) IsOwned() bool { return true }

// IsReference always reports false.
func (h Owned[T]) IsReference() bool { return false }

// Get returns a read-only view of the owned value.
func (h Owned[T]) Get() T { return h.v }

// Unwrap returns the owned value directly. The policy has only one case, so
// there is no tag to inspect and nothing that could fail.
func (h Owned[T]) Unwrap() T { return h.v }

// IntoOwning is the identity on an Owned holder: no clone, just a move.
func (h Owned[T]) IntoOwning() Owned[T] { return h }

// ToMut returns an exclusive handle to the owned value. It never copies.
func (h *Owned[T]) ToMut() *T { return &h.v }

// TryGetMut is like ToMut but in the shape shared with the wider policies,
// where the handle is only available when the active case is Owned. Here
// that is always the case.
func (h *Owned[T]) TryGetMut() (*T, bool) { return &h.v, true }

// Mutate runs fn with an exclusive handle to the owned value.
func (h *Owned[T]) Mutate(fn func(*T)) { fn(&h.v) }
