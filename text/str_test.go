package text_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/keeplib/keep/hold"
	"github.com/keeplib/keep/scope"
	"github.com/keeplib/keep/text"
)

func TestStr_BorrowedAppendCopiesOnWrite(t *testing.T) {
	sc, end := scope.Enter()
	defer end()

	source := "hello"
	s := text.Borrowed(source, sc)
	require.Equal(t, hold.CaseScoped, s.Case())
	require.False(t, s.IsOwned())

	s.Append(" world")

	require.True(t, s.IsOwned())
	require.Equal(t, "hello world", s.String())
	require.Equal(t, "hello", source)
}

func TestStr_BorrowedExpiresWithScope(t *testing.T) {
	sc, end := scope.Enter()
	s := text.Borrowed("view", sc)
	require.Equal(t, "view", s.String())

	end()
	require.Panics(t, func() { _ = s.String() })
}

func TestStr_DetachOutlivesScope(t *testing.T) {
	sc, end := scope.Enter()
	s := text.Borrowed("view", sc)
	detached := s.Detach()
	end()

	require.True(t, detached.IsOwned())
	require.Equal(t, "view", detached.String())
	require.Panics(t, func() { _ = s.String() })
}

func TestStr_StaticAndOwned(t *testing.T) {
	st := text.Static("const")
	require.Equal(t, hold.CaseShared, st.Case())
	require.Equal(t, "const", st.String())
	require.Equal(t, 5, st.Len())

	ow := text.Owned("mine")
	require.Equal(t, hold.CaseOwned, ow.Case())
	ow.Append("!")
	require.Equal(t, "mine!", ow.String())
}

func TestStr_StaticAppendDoesNotTouchOriginal(t *testing.T) {
	original := "shared data"
	s := text.Static(original)
	s.Append("!")
	require.Equal(t, "shared data!", s.String())
	require.Equal(t, "shared data", original)
}

func ExampleStr() {
	scope.With(func(sc *scope.Scope) {
		s := text.Borrowed("hello", sc)
		s.Append(" world")
		fmt.Println(s.String(), s.IsOwned())
	})
	// Output:
	// hello world true
}
