package buffer

import (
	clipper "github.com/go-clipper/clipper2/port"

	"github.com/skeletron-go/centerline/geom"
)

// scale converts between this module's float64 planar meters and
// Clipper2's 64-bit fixed-point coordinate space. At scale=1e4 a unit in
// Path64 space is a tenth of a millimeter, comfortably below anything that
// matters at the meter scales this pipeline buffers and unions at.
const scale = 1e4

func toPath64(pl geom.Polyline) clipper.Path64 {
	out := make(clipper.Path64, len(pl))
	for i, p := range pl {
		out[i] = clipper.Point64{X: int64(p.X * scale), Y: int64(p.Y * scale)}
	}
	return out
}

func fromPath64(p clipper.Path64) geom.Polyline {
	out := make(geom.Polyline, len(p))
	for i, pt := range p {
		out[i] = geom.Point{X: float64(pt.X) / scale, Y: float64(pt.Y) / scale}
	}
	return out
}

func toPoint64(p geom.Point) clipper.Point64 {
	return clipper.Point64{X: int64(p.X * scale), Y: int64(p.Y * scale)}
}

// polygonToPaths64 flattens a geom.Polygon into its exterior ring followed
// by its holes, each as a Clipper2 Path64.
func polygonToPaths64(p geom.Polygon) clipper.Paths64 {
	paths := make(clipper.Paths64, 0, 1+len(p.Holes))
	paths = append(paths, toPath64(geom.Polyline(p.Exterior)))
	for _, h := range p.Holes {
		paths = append(paths, toPath64(geom.Polyline(h)))
	}
	return paths
}

// pathsToMultiPolygon reassembles a flat set of boolean-op output paths
// into a MultiPolygon, grouping negatively-wound (hole) paths under the
// positively-wound (exterior) path that contains them. Clipper2's boolean
// ops always return outer rings as positive-area paths and holes as
// negative-area paths (the EvenOdd/NonZero fill-rule convention), so
// orientation alone identifies the split; containment assigns each hole to
// its parent.
func pathsToMultiPolygon(paths clipper.Paths64) (geom.MultiPolygon, error) {
	if len(paths) == 0 {
		return geom.MultiPolygon{}, ErrNoSolution
	}

	var exteriors, holes clipper.Paths64
	for _, p := range paths {
		if clipper.IsPositive64(p) {
			exteriors = append(exteriors, p)
		} else {
			holes = append(holes, p)
		}
	}
	if len(exteriors) == 0 {
		return geom.MultiPolygon{}, ErrNoSolution
	}

	polys := make([]geom.Polygon, len(exteriors))
	for i, ext := range exteriors {
		ring, err := closedRing(fromPath64(ext))
		if err != nil {
			return geom.MultiPolygon{}, err
		}
		polys[i] = geom.Polygon{Exterior: ring}
	}
	for _, hole := range holes {
		owner := ownerOf(hole, exteriors)
		if owner < 0 {
			continue // degenerate hole with no containing exterior; drop it
		}
		ring, err := closedRing(fromPath64(hole))
		if err != nil {
			return geom.MultiPolygon{}, err
		}
		polys[owner].Holes = append(polys[owner].Holes, ring)
	}

	return geom.MultiPolygon{Parts: polys}, nil
}

func ownerOf(hole clipper.Path64, exteriors clipper.Paths64) int {
	if len(hole) == 0 {
		return -1
	}
	for i, ext := range exteriors {
		if clipper.PointInPolygon64(hole[0], ext, clipper.NonZero) == clipper.Inside {
			return i
		}
	}
	return -1
}

// closedRing appends the first point to the end if Clipper2's path output
// (which does not repeat the closing vertex) is not already closed.
func closedRing(pl geom.Polyline) (geom.Ring, error) {
	if len(pl) >= 1 && !pl[0].Equal(pl[len(pl)-1]) {
		pl = append(pl, pl[0])
	}
	return geom.NewRing(pl)
}
