package skeleton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skeletron-go/centerline/geom"
	"github.com/skeletron-go/centerline/skeleton"
	"github.com/skeletron-go/centerline/voronoi"
)

func squarePolygon(t *testing.T, side float64) geom.Polygon {
	t.Helper()
	ring, err := geom.NewRing([]geom.Point{
		{X: 0, Y: 0}, {X: side, Y: 0}, {X: side, Y: side}, {X: 0, Y: side}, {X: 0, Y: 0},
	})
	require.NoError(t, err)
	return geom.Polygon{Exterior: ring}
}

func TestBuild_RetainsOnlyInteriorVertices(t *testing.T) {
	poly := squarePolygon(t, 20)
	diagram := voronoi.Diagram{
		Vertices: []geom.Point{
			{X: 5, Y: 10},  // interior
			{X: 15, Y: 10}, // interior
			{X: 50, Y: 50}, // exterior
		},
		Regions: []voronoi.Region{
			{0, 1},
			{0, 2},
		},
	}

	g := skeleton.Build(poly, diagram)
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge(0, 1))
}

func TestBuild_SkipsInfiniteVertexSentinel(t *testing.T) {
	poly := squarePolygon(t, 20)
	diagram := voronoi.Diagram{
		Vertices: []geom.Point{{X: 5, Y: 10}, {X: 15, Y: 10}},
		Regions: []voronoi.Region{
			{0, voronoi.InfiniteVertex, 1},
		},
	}

	g := skeleton.Build(poly, diagram)
	assert.True(t, g.HasEdge(0, 1), "the real edge in a region that also touches infinity should still be built")
}

func TestBuild_SkipsSegmentsLeavingThePolygon(t *testing.T) {
	// Both endpoints lie inside the L-shaped polygon, but the straight
	// segment between them cuts across its notch.
	notch, err := geom.NewRing([]geom.Point{
		{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 8}, {X: 8, Y: 8}, {X: 8, Y: 20}, {X: 0, Y: 20}, {X: 0, Y: 0},
	})
	require.NoError(t, err)
	lShape := geom.Polygon{Exterior: notch}

	diagram := voronoi.Diagram{
		Vertices: []geom.Point{{X: 2, Y: 15}, {X: 15, Y: 2}},
		Regions:  []voronoi.Region{{0, 1}},
	}

	g := skeleton.Build(lShape, diagram)
	assert.False(t, g.HasEdge(0, 1))
}
