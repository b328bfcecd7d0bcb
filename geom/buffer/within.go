package buffer

import (
	clipper "github.com/go-clipper/clipper2/port"

	"github.com/skeletron-go/centerline/geom"
)

// Within reports whether point p lies strictly inside polygon poly: on the
// boundary does not count. The skeleton builder uses this to discard
// Voronoi vertices that fall outside the buffered corridor, treating a
// boundary-touching vertex the same as an exterior one.
func Within(p geom.Point, poly geom.Polygon) bool {
	pt := toPoint64(p)

	if clipper.PointInPolygon64(pt, toPath64(geom.Polyline(poly.Exterior)), clipper.NonZero) != clipper.Inside {
		return false
	}
	for _, hole := range poly.Holes {
		if clipper.PointInPolygon64(pt, toPath64(geom.Polyline(hole)), clipper.NonZero) != clipper.Outside {
			return false
		}
	}
	return true
}

// WithinAny reports whether p lies strictly inside any polygon of mp.
func WithinAny(p geom.Point, mp geom.MultiPolygon) bool {
	for _, poly := range mp.Parts {
		if Within(p, poly) {
			return true
		}
	}
	return false
}
