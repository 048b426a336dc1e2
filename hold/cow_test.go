package hold_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/keeplib/keep/hold"
	"github.com/keeplib/keep/scope"
)

func TestCow_CopyOnWriteIsolation(t *testing.T) {
	sc, end := scope.Enter()
	defer end()

	src := buf("hello")
	h := hold.CowFromScoped(src, sc)
	require.True(t, h.IsReference())
	require.Equal(t, hold.CaseScoped, h.Case())

	p := h.ToMut()
	*p = append(*p, " world"...)

	require.True(t, h.IsOwned())
	require.Equal(t, "hello world", string(h.Get()))
	// the borrowed source is untouched
	require.Equal(t, "hello", string(src))
}

func TestCow_GetDoesNotMaterialize(t *testing.T) {
	sc, end := scope.Enter()
	defer end()

	v := trackedOf("hello")
	h := hold.CowFromScoped(v, sc)
	require.Equal(t, "hello", h.Get().s)
	require.Equal(t, 0, v.count())
	require.True(t, h.IsReference())
}

func TestCow_IntoOwningMaterializesOnce(t *testing.T) {
	sc, end := scope.Enter()
	defer end()

	v := trackedOf("hello")
	o := hold.CowFromScoped(v, sc).IntoOwning()
	require.Equal(t, "hello", o.Get().s)
	require.Equal(t, 1, v.count())
}

func TestCow_IntoOwningFromOwnedIsFree(t *testing.T) {
	v := trackedOf("hello")
	o := hold.CowFromOwned(v).IntoOwning()
	require.Equal(t, "hello", o.Get().s)
	require.Equal(t, 0, v.count())
}

func TestCow_ToMutMaterializesAtMostOnce(t *testing.T) {
	sc, end := scope.Enter()
	defer end()

	v := trackedOf("hello")
	h := hold.CowFromScoped(v, sc)

	_ = h.ToMut()
	_ = h.ToMut()
	h.Mutate(func(*tracked) {})

	require.Equal(t, 1, v.count())
	require.True(t, h.IsOwned())
}

func TestCow_ToMutDetachesFromScope(t *testing.T) {
	sc, end := scope.Enter()

	h := hold.CowFromScoped(buf("data"), sc)
	_ = h.ToMut()
	end()

	// materialized copies outlive the scope they were borrowed from
	require.Equal(t, "data", string(h.Get()))
}

func TestCow_ScopeExpiry(t *testing.T) {
	sc, end := scope.Enter()
	h := hold.CowFromScoped(buf("data"), sc)
	end()

	require.Panics(t, func() { h.Get() })
	require.Panics(t, func() { h.ToMut() })
	require.Panics(t, func() { h.IntoOwning() })
	require.Panics(t, func() { hold.CowFromScoped(buf("x"), sc) })
}

func TestCow_TryGetMut(t *testing.T) {
	sc, end := scope.Enter()
	defer end()

	v := trackedOf("hello")
	h := hold.CowFromScoped(v, sc)

	_, ok := h.TryGetMut()
	require.False(t, ok)
	require.Equal(t, 0, v.count())
	require.True(t, h.IsReference())

	_ = h.ToMut()
	m, ok := h.TryGetMut()
	require.True(t, ok)
	require.Equal(t, "hello", m.s)
}

func TestCow_Narrowing(t *testing.T) {
	sc, end := scope.Enter()
	defer end()

	v := trackedOf("hello")

	borrowed := hold.CowFromScoped(v, sc)
	s, ok := borrowed.TryScoped()
	require.True(t, ok)
	require.Equal(t, "hello", s.Get().s)
	_, ok = borrowed.TryOwned()
	require.False(t, ok)

	owned := hold.CowFromOwned(v)
	o, ok := owned.TryOwned()
	require.True(t, ok)
	require.Equal(t, "hello", o.Unwrap().s)
	_, ok = owned.TryScoped()
	require.False(t, ok)

	// narrowing never clones
	require.Equal(t, 0, v.count())
}
