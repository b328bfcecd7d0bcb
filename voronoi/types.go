package voronoi

import "github.com/skeletron-go/centerline/geom"

// InfiniteVertex is the sentinel index a cell's Region uses in place of a
// real vertex index to mean "this boundary segment runs to infinity."
// Downstream consumers (the skeleton builder) skip edges touching it.
const InfiniteVertex = -1

// Region is one cell's boundary, the ordered vertex indices (into a
// Diagram's Vertices) walked around its perimeter. An index equal to
// InfiniteVertex marks a segment open at infinity.
type Region []int

// Diagram is the output of a Voronoi computation: a vertex list and one
// Region per input site, in input order.
type Diagram struct {
	Vertices []geom.Point
	Regions  []Region
}
