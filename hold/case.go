package hold

import "fmt"

// Case identifies the active case of a holder.
type Case uint8

const (
	// CaseScoped marks a borrowed view bound to a scope.Scope.
	CaseScoped Case = iota + 1
	// CaseShared marks a view of process-lifetime data.
	CaseShared
	// CaseOwned marks exclusively owned data.
	CaseOwned
)

// IsReference reports whether the case borrows rather than owns.
func (c Case) IsReference() bool {
	return c == CaseScoped || c == CaseShared
}

// IsLasting reports whether the case remains valid beyond any scope, i.e. it
// is anything but a scoped borrow.
func (c Case) IsLasting() bool {
	return c == CaseShared || c == CaseOwned
}

func (c Case) String() string {
	switch c {
	case CaseScoped:
		return "scoped"
	case CaseShared:
		return "shared"
	case CaseOwned:
		return "owned"
	default:
		return fmt.Sprintf("Case(%d)", uint8(c))
	}
}

// Cloner is the duplication capability required of payloads held by policies
// that can materialize an owned copy from a reference case. Clone must return
// a value that shares no mutable state with its receiver.
type Cloner[T any] interface {
	Clone() T
}
