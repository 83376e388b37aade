package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLedger_BindResolvesBothDirections(t *testing.T) {
	l := newLedger()

	l.bind("a/b/obj", 7)

	require.Equal(t, 7, l.resolveHandle("a/b/obj"))
	require.Equal(t, "a/b/obj", l.resolveID(7))
}

func TestLedger_ResolveMisses(t *testing.T) {
	l := newLedger()

	require.Equal(t, IDUndefined, l.resolveHandle("nope"))
	require.Equal(t, "", l.resolveID(3))
}

func TestLedger_UnbindRemovesBothDirections(t *testing.T) {
	l := newLedger()
	l.bind("obj", 0)

	l.unbind("obj")

	require.Equal(t, IDUndefined, l.resolveHandle("obj"))
	require.Equal(t, "", l.resolveID(0))
}

func TestLedger_UnbindUnknownIsNoOp(t *testing.T) {
	l := newLedger()
	l.bind("obj", 0)

	l.unbind("other")

	require.Equal(t, 0, l.resolveHandle("obj"))
}

func TestLedger_IDOrAllocate(t *testing.T) {
	l := newLedger()
	l.bind("bound", l.idOrAllocate("bound"))

	// Bound handle returns its existing ID without allocating.
	require.Equal(t, 0, l.idOrAllocate("bound"))
	require.Equal(t, 0, l.idOrAllocate("bound"))

	// Unbound handle allocates fresh IDs but does not bind them.
	require.Equal(t, 1, l.idOrAllocate("unbound"))
	require.Equal(t, IDUndefined, l.resolveHandle("unbound"))
}
