package buffer

import (
	"fmt"

	clipper "github.com/go-clipper/clipper2/port"

	"github.com/skeletron-go/centerline/geom"
)

// IntersectPolygons returns the geometric intersection of a and b, used by
// the partitioner's recursion control to clip a split rectangle back to
// its parent buffer polygon when sealing a cut.
func IntersectPolygons(a, b geom.MultiPolygon) (geom.MultiPolygon, error) {
	if len(a.Parts) == 0 || len(b.Parts) == 0 {
		return geom.MultiPolygon{}, ErrEmptyInput
	}

	subjects := flattenPolygons(a)
	clips := flattenPolygons(b)

	solution, err := clipper.Intersect64(subjects, clips, clipper.NonZero)
	if err != nil {
		return geom.MultiPolygon{}, fmt.Errorf("buffer: intersect: %w", err)
	}
	return pathsToMultiPolygon(solution)
}

// BufferPolygon offsets every part of mp outward by radius using round
// joins on a closed path, used by the partitioner's recursion control to
// reseal a polygon split at a straight cut.
func BufferPolygon(mp geom.MultiPolygon, radius float64) (geom.MultiPolygon, error) {
	if radius <= 0 {
		return geom.MultiPolygon{}, ErrNonPositiveBuffer
	}
	if len(mp.Parts) == 0 {
		return geom.MultiPolygon{}, ErrEmptyInput
	}

	paths := flattenPolygons(mp)
	solution, err := clipper.InflatePaths64(
		paths,
		radius*scale,
		clipper.Round,
		clipper.ClosedPolygon,
		clipper.OffsetOptions{MiterLimit: 2.0, ArcTolerance: arcTolerance},
	)
	if err != nil {
		return geom.MultiPolygon{}, fmt.Errorf("buffer: resealing offset: %w", err)
	}
	if len(solution) == 0 {
		return geom.MultiPolygon{}, ErrNoSolution
	}
	return pathsToMultiPolygon(solution)
}

func flattenPolygons(mp geom.MultiPolygon) clipper.Paths64 {
	var out clipper.Paths64
	for _, p := range mp.Parts {
		out = append(out, polygonToPaths64(p)...)
	}
	return out
}
