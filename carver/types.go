package carver

import "github.com/skeletron-go/centerline/geom"

// Route is one carved path through the skeleton: an ordered sequence of
// points and its total Euclidean length.
type Route struct {
	Points geom.Polyline
	Length float64
}
