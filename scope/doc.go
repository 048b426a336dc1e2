// Package scope provides explicit validity scopes for borrowed values.
//
// Go has no lifetime parameters, so a holder that borrows caller-owned data
// cannot be bound to that data's lifetime by the type system alone. A Scope
// is the substitute: the lender enters a scope, hands it to every holder
// built from its data, and ends the scope when the data stops being valid.
// Holders check the scope on every access, so a use-after-scope is caught at
// the access site instead of corrupting silently.
//
// The usual shape mirrors a handler registration:
//
//	sc, end := scope.Enter(scope.WithName("request"))
//	defer end()
//
//	h := hold.NewScoped(view, sc)
//	_ = h.Get() // fine while the scope is alive, panics after end()
//
// Scope checks are a debug assertion, not an error path: using a value past
// its scope is a programming error, so Check panics.
package scope
