package partition

import (
	"fmt"

	"github.com/skeletron-go/centerline/geom"
	"github.com/skeletron-go/centerline/geom/buffer"
)

// Subdivision pairs a sub-polygon with the sites it is responsible for,
// the unit of work the Voronoi driver and skeleton builder operate on.
type Subdivision struct {
	Polygon geom.Polygon
	Sites   []geom.Point
}

// PartitionIfLarge recurses a principal-axis split until every subdivision
// holds fewer than maxSitesPerCell sites. Each split's rectangle is
// intersected back with polygon and buffered by bufferM to seal the
// straight cut before recursing. A set already under maxSitesPerCell is
// returned as a single, unsplit subdivision.
func PartitionIfLarge(polygon geom.Polygon, sites []geom.Point, maxSitesPerCell int, bufferM float64) ([]Subdivision, error) {
	if len(sites) < maxSitesPerCell {
		return []Subdivision{{Polygon: polygon, Sites: sites}}, nil
	}

	a, b, err := Split(sites)
	if err != nil {
		return nil, fmt.Errorf("partition: split: %w", err)
	}

	var out []Subdivision
	for _, half := range []Half{a, b} {
		if len(half.Points) == 0 {
			continue
		}
		sealed, err := seal(polygon, half.Cell, bufferM)
		if err != nil {
			return nil, fmt.Errorf("partition: sealing half: %w", err)
		}
		for _, sub := range sealed {
			subSites := pointsWithin(half.Points, sub)
			if len(subSites) == 0 {
				continue
			}
			subdivs, err := PartitionIfLarge(sub, subSites, maxSitesPerCell, bufferM)
			if err != nil {
				return nil, err
			}
			out = append(out, subdivs...)
		}
	}
	return out, nil
}

// seal clips the rotated-split rectangle cell back to polygon and
// re-buffers it by bufferM, restoring the rounded footprint the straight
// cut would otherwise have sliced flat.
func seal(polygon geom.Polygon, cell geom.Ring, bufferM float64) ([]geom.Polygon, error) {
	polyMP := geom.MultiPolygon{Parts: []geom.Polygon{polygon}}
	cellMP := geom.MultiPolygon{Parts: []geom.Polygon{{Exterior: cell}}}

	clipped, err := buffer.IntersectPolygons(polyMP, cellMP)
	if err != nil {
		return nil, err
	}

	resealed, err := buffer.BufferPolygon(clipped, bufferM)
	if err != nil {
		return nil, err
	}
	return resealed.Parts, nil
}

func pointsWithin(points []geom.Point, poly geom.Polygon) []geom.Point {
	out := make([]geom.Point, 0, len(points))
	for _, p := range points {
		if buffer.Within(p, poly) {
			out = append(out, p)
		}
	}
	return out
}
