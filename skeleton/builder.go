package skeleton

import (
	"github.com/skeletron-go/centerline/geom"
	"github.com/skeletron-go/centerline/geom/buffer"
	"github.com/skeletron-go/centerline/voronoi"
)

// segmentSamples is how many equal steps a candidate edge is divided into;
// the segmentSamples-1 interior division points are checked against the
// buffer polygon. Both endpoints are already known
// interior (step 1 of the builder), so this approximates "the segment
// lies strictly inside B" without a dedicated segment-in-polygon primitive.
const segmentSamples = 4

// Build constructs a skeleton graph from a buffer polygon and its Voronoi
// diagram: nodes are diagram vertices strictly inside poly, edges are
// cell-boundary segments whose endpoints and interior both lie strictly
// inside poly. Node IDs are stable: NodeID(i) corresponds to
// diagram.Vertices[i] whether or not that vertex was retained.
func Build(poly geom.Polygon, diagram voronoi.Diagram) *Graph {
	g := NewGraph()
	retained := make([]bool, len(diagram.Vertices))
	for i, v := range diagram.Vertices {
		id := g.AddNode(v)
		if buffer.Within(v, poly) {
			retained[i] = true
		} else {
			g.RemoveNode(id)
		}
	}

	for _, region := range diagram.Regions {
		n := len(region)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			a, b := region[i], region[(i+1)%n]
			if a == voronoi.InfiniteVertex || b == voronoi.InfiniteVertex {
				continue
			}
			if a < 0 || a >= len(retained) || b < 0 || b >= len(retained) {
				continue
			}
			if !retained[a] || !retained[b] {
				continue
			}
			na, nb := NodeID(a), NodeID(b)
			if na == nb {
				continue
			}
			pa, pb := diagram.Vertices[a], diagram.Vertices[b]
			if !segmentWithin(pa, pb, poly) {
				continue
			}
			_ = g.AddEdge(na, nb, pa.Dist(pb))
		}
	}

	return g
}

func segmentWithin(a, b geom.Point, poly geom.Polygon) bool {
	for i := 1; i < segmentSamples; i++ {
		t := float64(i) / float64(segmentSamples)
		p := geom.Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
		if !buffer.Within(p, poly) {
			return false
		}
	}
	return true
}
