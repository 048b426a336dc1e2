package hold_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/keeplib/keep/hold"
)

func TestOwned_Inspection(t *testing.T) {
	h := hold.NewOwned(42)
	require.Equal(t, hold.CaseOwned, h.Case())
	require.True(t, h.IsOwned())
	require.False(t, h.IsReference())
	require.Equal(t, 42, h.Get())
}

func TestOwned_UnwrapReturnsExactValue(t *testing.T) {
	v := &struct{ n int }{n: 7}
	h := hold.NewOwned(v)
	// same pointer back: no copy, no tag, no check
	require.Same(t, v, h.Unwrap())
}

func TestOwned_IntoOwningIsIdentity(t *testing.T) {
	v := trackedOf("payload")
	h := hold.NewOwned(v).IntoOwning()
	require.True(t, h.IsOwned())
	require.Equal(t, "payload", h.Get().s)
	require.Equal(t, 0, v.count())
}

func TestOwned_ToMutVisibleViaGet(t *testing.T) {
	h := hold.NewOwned("a")
	p := h.ToMut()
	*p = "b"
	require.Equal(t, "b", h.Get())

	m, ok := h.TryGetMut()
	require.True(t, ok)
	*m = "c"
	require.Equal(t, "c", h.Get())
}

func TestOwned_Mutate(t *testing.T) {
	h := hold.NewOwned([]int{1})
	h.Mutate(func(v *[]int) { *v = append(*v, 2) })
	require.Equal(t, []int{1, 2}, h.Get())
}
