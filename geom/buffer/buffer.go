package buffer

import (
	"fmt"

	clipper "github.com/go-clipper/clipper2/port"

	"github.com/skeletron-go/centerline/geom"
)

// arcTolerance bounds how far a round offset join/cap may deviate from a
// true arc, in projected meters. 0.1m is well under anything the
// downstream skeleton stage cares about.
const arcTolerance = 0.1

// Buffer turns each open polyline in lines into a rounded offset polygon
// and cascade-unions the results into one MultiPolygon. Each part is
// first pre-simplified with Douglas-Peucker at tolerance bufferM — a line
// drawn with this buffer radius can't show detail finer than that anyway
// — then inflated outward by bufferM with round joins and round caps.
// bufferM must be > 0.
func Buffer(lines geom.MultiPolyline, bufferM float64) (geom.MultiPolygon, error) {
	if bufferM <= 0 {
		return geom.MultiPolygon{}, ErrNonPositiveBuffer
	}
	if len(lines.Parts) == 0 {
		return geom.MultiPolygon{}, ErrEmptyInput
	}

	offsetOpts := clipper.OffsetOptions{MiterLimit: 2.0, ArcTolerance: arcTolerance}

	buffered := make([]clipper.Paths64, 0, len(lines.Parts))
	for i, part := range lines.Parts {
		simplified, err := geom.SimplifyDP(part, bufferM)
		if err != nil {
			return geom.MultiPolygon{}, fmt.Errorf("buffer: simplifying part %d: %w", i, err)
		}

		solution, err := clipper.InflatePaths64(
			clipper.Paths64{toPath64(simplified)},
			bufferM*scale,
			clipper.Round,
			clipper.OpenRound,
			offsetOpts,
		)
		if err != nil {
			return geom.MultiPolygon{}, fmt.Errorf("buffer: offsetting part %d: %w", i, err)
		}
		if len(solution) == 0 {
			continue
		}
		buffered = append(buffered, solution)
	}
	if len(buffered) == 0 {
		return geom.MultiPolygon{}, ErrNoSolution
	}

	unioned, err := geom.CascadedUnion(buffered, unionPaths64)
	if err != nil {
		return geom.MultiPolygon{}, fmt.Errorf("buffer: cascaded union: %w", err)
	}

	return pathsToMultiPolygon(unioned)
}

// unionPaths64 is the pairwise combine function geom.CascadedUnion folds
// over the per-part offset solutions.
func unionPaths64(a, b clipper.Paths64) (clipper.Paths64, error) {
	out, err := clipper.Union64(a, b, clipper.NonZero)
	if err != nil {
		return nil, fmt.Errorf("buffer: union: %w", err)
	}
	return out, nil
}

// UnionPolygons cascade-unions an arbitrary set of polygons through the
// clipping engine. No pipeline stage calls it; Buffer unions its offset
// parts directly.
func UnionPolygons(polys geom.MultiPolygon) (geom.MultiPolygon, error) {
	if len(polys.Parts) == 0 {
		return geom.MultiPolygon{}, ErrEmptyInput
	}
	if len(polys.Parts) == 1 {
		return polys, nil
	}

	paths := make([]clipper.Paths64, len(polys.Parts))
	for i, p := range polys.Parts {
		paths[i] = polygonToPaths64(p)
	}

	unioned, err := geom.CascadedUnion(paths, unionPaths64)
	if err != nil {
		return geom.MultiPolygon{}, fmt.Errorf("buffer: union polygons: %w", err)
	}
	return pathsToMultiPolygon(unioned)
}
