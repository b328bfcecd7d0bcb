package geom

import "math"

// Densify inserts points along pts so that no two consecutive points in
// the result are farther apart than d. Endpoints are preserved exactly;
// for each consecutive input pair (a, b) it adds
// ceil(|b-a|/d) - 1 interior points stepping linearly from a toward b.
// Zero-length segments contribute no interior points. Monotone on segment
// count: len(Densify(pts, d)) >= len(pts).
//
// Complexity: O(n + k) where k is the number of inserted points.
func Densify(pts Polyline, d float64) (Polyline, error) {
	if d <= 0 {
		return nil, ErrNonPositiveParameter
	}
	if len(pts) < 2 {
		return nil, ErrTooFewPoints
	}

	out := make(Polyline, 0, len(pts))
	out = append(out, pts[0])
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		segLen := a.Dist(b)
		if segLen == 0 {
			out = append(out, b)
			continue
		}
		steps := int(math.Ceil(segLen / d))
		if steps < 1 {
			steps = 1
		}
		for s := 1; s < steps; s++ {
			t := float64(s) / float64(steps)
			out = append(out, Point{
				X: a.X + (b.X-a.X)*t,
				Y: a.Y + (b.Y-a.Y)*t,
			})
		}
		out = append(out, b)
	}
	return out, nil
}
