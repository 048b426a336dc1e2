package text

import (
	"strings"

	"github.com/keeplib/keep/hold"
	"github.com/keeplib/keep/scope"
)

// Content is the string payload held by Str. Clone copies the bytes with
// strings.Clone, detaching the result from any backing array the original
// was sliced out of.
type Content string

// Clone returns a copy that shares no memory with the receiver.
func (c Content) Clone() Content {
	return Content(strings.Clone(string(c)))
}

// Str is a string that is either a borrowed view, a pointer to
// process-lifetime data, or a detached owned copy.
//
// The zero value is not usable; construct via Borrowed, Static or Owned.
type Str struct {
	h hold.Full[Content]
}

// Borrowed wraps a view into a caller-owned buffer, valid while sc is alive.
// No bytes are copied.
func Borrowed(s string, sc *scope.Scope) Str {
	return Str{h: hold.FullFromScoped(Content(s), sc)}
}

// Static wraps a string that stays valid and unmodified for the rest of the
// process.
func Static(s string) Str {
	return Str{h: hold.FullFromShared(Content(s))}
}

// Owned wraps a string the Str may treat as its own.
func Owned(s string) Str {
	return Str{h: hold.FullFromOwned(Content(s))}
}

// String returns the current text. It panics if the Str borrows from a scope
// that has ended.
func (s Str) String() string {
	return string(s.h.Get())
}

// Len returns the length of the current text in bytes.
func (s Str) Len() int {
	return len(s.h.Get())
}

// Case returns which case the Str currently holds.
func (s Str) Case() hold.Case {
	return s.h.Case()
}

// IsOwned reports whether the Str owns its bytes.
func (s Str) IsOwned() bool {
	return s.h.IsOwned()
}

// Append adds more to the end of the text, copying the current content into
// an owned buffer first if the Str does not own it yet. The source of a
// borrowed Str is never modified.
func (s *Str) Append(more string) {
	s.h.Mutate(func(c *Content) {
		*c += Content(more)
	})
}

// Detach returns a Str that owns a copy of the current text and is valid
// beyond any scope the receiver was bound to. Detaching an owned Str is
// free.
func (s Str) Detach() Str {
	return Str{h: hold.RelaxOwned(s.h.IntoOwning())}
}
