// Package hold provides policy-typed value holders: containers that keep
// either borrowed or owned data, with the set of permitted cases fixed by the
// holder's type rather than checked at run time.
//
// # The three cases
//
// A holder's value is in exactly one of three cases:
//
//   - Scoped: a borrowed view of caller-owned data, valid only while an
//     explicit scope.Scope is alive. Read-only.
//   - Shared: a view of data that is stable for the rest of the process
//     (interned strings, package-level tables, mmap'd constants). Read-only,
//     freely copyable.
//   - Owned: data the holder owns exclusively. Readable, mutable, dropped
//     with the holder.
//
// # Policies as types
//
// Go cannot hide a method of one generic type behind a type-parameter
// condition, so each permitted subset of cases is its own named type:
// Scoped, Shared and Owned for the single-case policies, Ref (scoped|shared),
// Cow (scoped|owned), Lasting (shared|owned) and Full (all three) for the
// rest. An operation that would need an absent case simply does not exist on
// that type: Ref has no ToMut, Scoped has no IntoOwning, and calling them is
// a compile error, not a panic. The same holds for construction — there is no
// way to build a Ref that owns its value.
//
// Single-case types carry no tag at all, so Owned.Unwrap returns the value
// with no check of any kind: the policy makes the operation infallible by
// construction.
//
// # Conversions
//
// References enter a holder only through its constructors. After that, every
// transition moves toward Owned and never back:
//
//	IntoOwning  consume the holder, yield Owned[T]; clones only if the
//	            active case was a reference.
//	ToMut       materialize in place if needed, then hand out *T. This is
//	            the copy-on-write trigger and the only mutation entry point.
//	TryOwned    comma-ok narrowing to the Owned-only type, no clone ever.
//
// Policies that pair a reference case with Owned require the payload to
// implement Cloner, since materialization must be able to duplicate the
// referenced data. Reference-only and Owned-only policies take any payload.
//
// # Example
//
//	sc, end := scope.Enter()
//	defer end()
//
//	h := hold.CowFromScoped(view, sc) // borrowed, zero copies so far
//	if needsEdit {
//		buf := h.ToMut() // clones exactly once, detaches from sc
//		buf.Push(...)
//	}
//	result := h.Get() // the edited copy, or still the borrowed view
//
// Holders are plain values with value semantics; they introduce no locking
// and are as shareable across goroutines as their payload type is.
package hold
