package skeleton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skeletron-go/centerline/geom"
	"github.com/skeletron-go/centerline/skeleton"
)

func TestConnectedComponents_SingleComponent(t *testing.T) {
	g := skeleton.NewGraph()
	a := g.AddNode(geom.Point{X: 0, Y: 0})
	b := g.AddNode(geom.Point{X: 1, Y: 0})
	c := g.AddNode(geom.Point{X: 2, Y: 0})
	require.NoError(t, g.AddEdge(a, b, 1))
	require.NoError(t, g.AddEdge(b, c, 1))

	comps := skeleton.ConnectedComponents(g)
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 3)
}

func TestConnectedComponents_DisconnectedPieces(t *testing.T) {
	g := skeleton.NewGraph()
	a := g.AddNode(geom.Point{X: 0, Y: 0})
	b := g.AddNode(geom.Point{X: 1, Y: 0})
	c := g.AddNode(geom.Point{X: 100, Y: 100})
	d := g.AddNode(geom.Point{X: 101, Y: 100})
	e := g.AddNode(geom.Point{X: 200, Y: 200}) // isolated
	require.NoError(t, g.AddEdge(a, b, 1))
	require.NoError(t, g.AddEdge(c, d, 1))

	comps := skeleton.ConnectedComponents(g)
	require.Len(t, comps, 3)

	var sizes []int
	for _, c := range comps {
		sizes = append(sizes, len(c))
	}
	assert.ElementsMatch(t, []int{2, 2, 1}, sizes)
	_ = e
}

func TestConnectedComponents_EmptyGraph(t *testing.T) {
	g := skeleton.NewGraph()
	assert.Empty(t, skeleton.ConnectedComponents(g))
}
