// SPDX-License-Identifier: MIT

package fgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_AllocateRegisterLookup(t *testing.T) {
	r := newRegistry(0)
	id := r.allocate()
	assert.Equal(t, ID(0), id)
	assert.Equal(t, ID(1), r.nextID())

	// Allocated but uncommitted slots are not resolvable.
	_, err := r.lookup(id)
	require.ErrorIs(t, err, ErrInconsistent)

	v := &Variable{id: id, name: "A"}
	require.NoError(t, r.register(id, variableItem(v)))

	it, err := r.lookup(id)
	require.NoError(t, err)
	got, ok := it.Variable()
	require.True(t, ok)
	assert.Same(t, v, got)
}

func TestRegistry_RejectsBadRegistrations(t *testing.T) {
	r := newRegistry(4)
	id := r.allocate()

	assert.ErrorIs(t, r.register(7, variableItem(&Variable{id: 7})), ErrInconsistent, "beyond next id")
	assert.ErrorIs(t, r.register(id, Item{}), ErrInconsistent, "invalid item")
	assert.ErrorIs(t, r.register(id, factorItem(&Factor{id: id + 1})), ErrInconsistent, "id mismatch")

	require.NoError(t, r.register(id, factorItem(&Factor{id: id})))
	assert.ErrorIs(t, r.register(id, factorItem(&Factor{id: id})), ErrInconsistent, "double commit")

	_, err := r.lookup(5)
	assert.ErrorIs(t, err, ErrInconsistent)
}

// TestNeighborIDs_DanglingScope corrupts the name index directly to prove
// the inconsistency is surfaced rather than skipped.
func TestNeighborIDs_DanglingScope(t *testing.T) {
	g := NewGraph()
	_, _ = g.AddVariable("A", nil)
	fid, err := g.AddFactor([]string{"A"}, PotentialFunc(func([]int) float64 { return 0 }))
	require.NoError(t, err)

	delete(g.vars, "A")
	_, err = g.NeighborIDs(fid)
	assert.ErrorIs(t, err, ErrInconsistent)
}
