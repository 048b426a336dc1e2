package hold

import (
	"fmt"

	"github.com/keeplib/keep/scope"
)

// Full is the three-case policy {Scoped,Shared,Owned}. It is the widest
// holder and the natural type for code paths that sometimes borrow from a
// caller, sometimes reuse process-lifetime data and sometimes build fresh
// values.
//
// There is no zero value in a usable state; always construct via one of the
// FullFrom constructors.
type Full[T Cloner[T]] struct {
	v   T
	tag Case
	sc  *scope.Scope // non-nil iff tag == CaseScoped
}

// FullFromScoped borrows v for the duration of sc. Panics if sc is nil or
// ended.
func FullFromScoped[T Cloner[T]](v T, sc *scope.Scope) Full[T] {
	sc.Check()
	return Full[T]{v: v, tag: CaseScoped, sc: sc}
}

// FullFromShared wraps a view of process-lifetime data.
func FullFromShared[T Cloner[T]](v T) Full[T] {
	return Full[T]{v: v, tag: CaseShared}
}

// FullFromOwned takes exclusive ownership of v.
func FullFromOwned[T Cloner[T]](v T) Full[T] {
	return Full[T]{v: v, tag: CaseOwned}
}

// Case returns the active case.
func (h Full[T]) Case() Case { return h.tag }

// IsOwned reports whether the holder owns its value.
func (h Full[T]) IsOwned() bool { return h.tag == CaseOwned }

// IsReference reports whether the holder borrows its value.
func (h Full[T]) IsReference() bool { return h.tag.IsReference() }

// Get returns a read-only view of the value, checking the scope when the
// active case is scoped.
func (h Full[T]) Get() T {
	if h.tag == CaseScoped {
		h.sc.Check()
	}
	return h.v
}

// IntoOwning consumes the holder and returns the statically owned-only form.
// Reference cases clone the referenced data; the owned case moves with no
// copy.
func (h Full[T]) IntoOwning() Owned[T] {
	switch h.tag {
	case CaseScoped:
		h.sc.Check()
		return Owned[T]{v: h.v.Clone()}
	case CaseShared:
		return Owned[T]{v: h.v.Clone()}
	case CaseOwned:
		return Owned[T]{v: h.v}
	default:
		panic(fmt.Sprintf("hold: invalid case %v", h.tag))
	}
}

// IntoLasting consumes the holder and returns the {Shared,Owned} form: a
// scoped borrow is materialized into an owned copy, while shared and owned
// values carry over unchanged.
func (h Full[T]) IntoLasting() Lasting[T] {
	switch h.tag {
	case CaseScoped:
		h.sc.Check()
		return Lasting[T]{v: h.v.Clone(), owned: true}
	case CaseShared:
		return Lasting[T]{v: h.v}
	case CaseOwned:
		return Lasting[T]{v: h.v, owned: true}
	default:
		panic(fmt.Sprintf("hold: invalid case %v", h.tag))
	}
}

// ToMut returns an exclusive handle to the value, materializing an owned
// copy first if the active case is a reference. After it returns, the holder
// is owned and detached from any scope.
func (h *Full[T]) ToMut() *T {
	switch h.tag {
	case CaseScoped:
		h.sc.Check()
		h.v = h.v.Clone()
		h.tag = CaseOwned
		h.sc = nil
	case CaseShared:
		h.v = h.v.Clone()
		h.tag = CaseOwned
	case CaseOwned:
	default:
		panic(fmt.Sprintf("hold: invalid case %v", h.tag))
	}
	return &h.v
}

// Mutate runs fn with an exclusive handle, materializing first if needed.
func (h *Full[T]) Mutate(fn func(*T)) { fn(h.ToMut()) }

// TryGetMut returns an exclusive handle only when the value is already
// owned. It never materializes.
func (h *Full[T]) TryGetMut() (*T, bool) {
	if h.tag != CaseOwned {
		return nil, false
	}
	return &h.v, true
}

// TryOwned narrows to the {Owned} policy when that is the active case. No
// clone is performed in either outcome.
func (h Full[T]) TryOwned() (Owned[T], bool) {
	if h.tag != CaseOwned {
		return Owned[T]{}, false
	}
	return Owned[T]{v: h.v}, true
}

// TryScoped narrows to the {Scoped} policy when that is the active case.
func (h Full[T]) TryScoped() (Scoped[T], bool) {
	if h.tag != CaseScoped {
		return Scoped[T]{}, false
	}
	return Scoped[T]{v: h.v, sc: h.sc}, true
}

// TryShared narrows to the {Shared} policy when that is the active case.
func (h Full[T]) TryShared() (Shared[T], bool) {
	if h.tag != CaseShared {
		return Shared[T]{}, false
	}
	return Shared[T]{v: h.v}, true
}

// TryRef narrows to the reference-only {Scoped,Shared} policy when the
// active case is a reference.
func (h Full[T]) TryRef() (Ref[T], bool) {
	switch h.tag {
	case CaseScoped:
		return Ref[T]{v: h.v, sc: h.sc}, true
	case CaseShared:
		return Ref[T]{v: h.v}, true
	default:
		return Ref[T]{}, false
	}
}
