package geom

import "math"

// SimplifyDP applies Douglas-Peucker perpendicular-distance simplification
// to points at tolerance tol. It keeps the anchor and floater of each
// segment and recurses into the piece containing the farthest interior
// point when that point's perpendicular distance from the anchor-floater
// segment exceeds tol; otherwise every point strictly between anchor and
// floater is dropped. When anchor and floater coincide, the "perpendicular
// distance" degenerates to the raw distance to that point. Idempotent at a
// fixed tolerance.
func SimplifyDP(points Polyline, tol float64) (Polyline, error) {
	if tol <= 0 {
		return nil, ErrNonPositiveParameter
	}
	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}

	keep := make([]bool, len(points))
	keep[0] = true
	keep[len(points)-1] = true
	simplifyDPRange(points, 0, len(points)-1, tol, keep)

	out := make(Polyline, 0, len(points))
	for i, k := range keep {
		if k {
			out = append(out, points[i])
		}
	}
	return out, nil
}

func simplifyDPRange(points Polyline, anchor, floater int, tol float64, keep []bool) {
	if floater <= anchor+1 {
		return
	}

	maxDist := -1.0
	maxIdx := -1
	for i := anchor + 1; i < floater; i++ {
		d := perpendicularDistance(points[anchor], points[floater], points[i])
		if d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}

	if maxDist > tol {
		keep[maxIdx] = true
		simplifyDPRange(points, anchor, maxIdx, tol, keep)
		simplifyDPRange(points, maxIdx, floater, tol, keep)
	}
}

// perpendicularDistance returns the distance from p to the infinite line
// through anchor and floater, or the raw distance to anchor when anchor
// and floater coincide (the degenerate case spec'd for simplify_dp).
func perpendicularDistance(anchor, floater, p Point) float64 {
	if anchor.Equal(floater) {
		return anchor.Dist(p)
	}
	dx := floater.X - anchor.X
	dy := floater.Y - anchor.Y
	mag := math.Hypot(dx, dy)
	num := math.Abs(dy*p.X - dx*p.Y + floater.X*anchor.Y - floater.Y*anchor.X)
	return num / mag
}
