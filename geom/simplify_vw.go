package geom

import "sort"

// SimplifyVW applies Visvalingam-Whyatt area-thresholded simplification to
// points, using the "batch-per-iteration" rule: within one iteration, all
// interior triples are scored by triangle area and walked in ascending
// order; an apex is removed only if neither neighbor has already been
// protected this iteration, and every removal protects its two neighbors
// for the remainder of the iteration. The iteration stops at the first
// area exceeding minArea. Iterations repeat until one removes nothing.
// Endpoints are never removed; the result never drops below length 2.
//
// simplify_vw is idempotent at a fixed minArea: re-running it on its own
// output removes nothing, because the terminating iteration already left
// every remaining apex's area above minArea.
func SimplifyVW(points Polyline, minArea float64) (Polyline, error) {
	if minArea <= 0 {
		return nil, ErrNonPositiveParameter
	}
	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}

	pts := make(Polyline, len(points))
	copy(pts, points)

	for {
		n := len(pts)
		if n <= 2 {
			break
		}

		type apex struct {
			idx  int
			area float64
		}
		triples := make([]apex, 0, n-2)
		for i := 1; i < n-1; i++ {
			triples = append(triples, apex{i, triangleArea(pts[i-1], pts[i], pts[i+1])})
		}
		sort.SliceStable(triples, func(a, b int) bool { return triples[a].area < triples[b].area })

		preserved := make(map[int]bool, n)
		toRemove := make(map[int]bool, n)
		removedAny := false
		for _, t := range triples {
			if t.area > minArea {
				break
			}
			if preserved[t.idx-1] || preserved[t.idx+1] {
				continue
			}
			toRemove[t.idx] = true
			preserved[t.idx-1] = true
			preserved[t.idx+1] = true
			removedAny = true
		}
		if !removedAny {
			break
		}

		next := make(Polyline, 0, n-len(toRemove))
		for i, p := range pts {
			if toRemove[i] {
				continue
			}
			next = append(next, p)
		}
		pts = next
	}

	return pts, nil
}

// triangleArea returns the area of the triangle formed by a, b (the apex)
// and c, via the shoelace formula.
func triangleArea(a, b, c Point) float64 {
	cross := (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
	if cross < 0 {
		cross = -cross
	}
	return cross / 2
}
