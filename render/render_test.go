// SPDX-License-Identifier: MIT

package render_test

import (
	"testing"

	"github.com/katalvlaran/factorgraph/fgraph"
	"github.com/katalvlaran/factorgraph/render"
	"github.com/katalvlaran/factorgraph/spantree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abcd(t *testing.T) *fgraph.Graph {
	t.Helper()
	g := fgraph.NewGraph()
	p := fgraph.PotentialFunc(func([]int) float64 { return 0 })
	for _, name := range []string{"A", "B", "C"} {
		_, err := g.AddVariable(name, nil)
		require.NoError(t, err)
	}
	_, err := g.AddFactor([]string{"A", "B"}, p)
	require.NoError(t, err)
	_, err = g.AddFactor([]string{"B", "C"}, p)
	require.NoError(t, err)
	_, err = g.AddVariable("D", nil)
	require.NoError(t, err)
	return g
}

func TestFromGraph(t *testing.T) {
	r := render.FromGraph(abcd(t))

	assert.Equal(t, []fgraph.ID{0, 1, 2, 3, 4, 5}, r.NodeIDs())
	assert.Equal(t, []render.Edge{
		{Source: 0, Target: 3},
		{Source: 1, Target: 3},
		{Source: 1, Target: 4},
		{Source: 2, Target: 4},
	}, r.Edges())

	label, err := r.Label(4)
	require.NoError(t, err)
	assert.Equal(t, "factor<B,C>", label)

	label, err = r.Label(5)
	require.NoError(t, err)
	assert.Equal(t, "D", label)

	shape, err := r.Shape(0)
	require.NoError(t, err)
	assert.Equal(t, render.Circle, shape)
	shape, err = r.Shape(3)
	require.NoError(t, err)
	assert.Equal(t, render.Box, shape)

	_, err = r.Label(6)
	assert.ErrorIs(t, err, render.ErrUnknownNode)
	_, err = r.Shape(100)
	assert.ErrorIs(t, err, render.ErrUnknownNode)
}

func TestFromTree(t *testing.T) {
	tree, err := spantree.Build(abcd(t), "C")
	require.NoError(t, err)
	r := render.FromTree(tree)

	assert.Equal(t, []fgraph.ID{2, 4, 1, 3, 0}, r.NodeIDs())
	assert.Equal(t, []render.Edge{
		{Source: 2, Target: 4},
		{Source: 4, Target: 1},
		{Source: 1, Target: 3},
		{Source: 3, Target: 0},
	}, r.Edges())

	label, err := r.Label(3)
	require.NoError(t, err)
	assert.Equal(t, "factor<A,B>", label)
	shape, err := r.Shape(2)
	require.NoError(t, err)
	assert.Equal(t, render.Circle, shape)

	// D is in the graph but not the tree.
	_, err = r.Label(5)
	assert.ErrorIs(t, err, render.ErrUnknownNode)
}

func TestShape_String(t *testing.T) {
	assert.Equal(t, "circle", render.Circle.String())
	assert.Equal(t, "box", render.Box.String())
	assert.Equal(t, "Shape(9)", render.Shape(9).String())

	_, err := render.ShapeOf(fgraph.Kind(0))
	assert.ErrorIs(t, err, render.ErrUnknownNode)
}

func TestNilViewsAreEmpty(t *testing.T) {
	for name, r := range map[string]render.Renderable{
		"graph": render.FromGraph(nil),
		"tree":  render.FromTree(nil),
	} {
		assert.Empty(t, r.NodeIDs(), name)
		assert.Empty(t, r.Edges(), name)
		_, err := r.Label(0)
		assert.ErrorIs(t, err, render.ErrUnknownNode, name)
		_, err = r.Shape(0)
		assert.ErrorIs(t, err, render.ErrUnknownNode, name)
	}
}
