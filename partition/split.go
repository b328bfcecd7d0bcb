package partition

import (
	"fmt"
	"math"

	"github.com/skeletron-go/centerline/geom"
	"github.com/skeletron-go/centerline/matrix"
	"github.com/skeletron-go/centerline/matrix/ops"
)

// eigenTolerance and eigenMaxIter bound the Jacobi sweep used to find the
// covariance matrix's principal axis. A 2x2 symmetric matrix converges in
// a single rotation; the bound exists for defense against future n-D use.
const (
	eigenTolerance = 1e-9
	eigenMaxIter   = 50
)

// Half is one side of a principal-axis split: the points assigned to it
// and the rotated-then-restored rectangle (as a closed ring in the
// original frame) bounding them.
type Half struct {
	Points []geom.Point
	Cell   geom.Ring
}

// Split partitions points into two halves along the major axis of their
// spread: it computes the centroid and 2x2 covariance matrix of points,
// rotates into the frame where the eigenvector with the larger eigenvalue
// is horizontal, splits by x < 0 vs x >= 0, and un-rotates each half's
// bounding rectangle back to the original frame.
func Split(points []geom.Point) (a, b Half, err error) {
	if len(points) < 2 {
		return Half{}, Half{}, ErrTooFewPoints
	}

	centroid := centroidOf(points)
	cov, err := covarianceOf(points, centroid)
	if err != nil {
		return Half{}, Half{}, fmt.Errorf("partition: covariance: %w", err)
	}

	eigs, q, err := ops.Eigen(cov, eigenTolerance, eigenMaxIter)
	if err != nil {
		return Half{}, Half{}, fmt.Errorf("partition: eigendecomposition: %w", err)
	}
	major := 0
	if eigs[1] > eigs[0] {
		major = 1
	}
	vx, _ := q.At(0, major)
	vy, _ := q.At(1, major)
	theta := math.Atan2(vy, vx)
	sinT, cosT := math.Sin(theta), math.Cos(theta)

	rotatedPts := make([]rotatedPoint, len(points))
	for i, p := range points {
		dx, dy := p.X-centroid.X, p.Y-centroid.Y
		rotatedPts[i] = rotatedPoint{
			orig: p,
			x:    dx*cosT + dy*sinT,
			y:    -dx*sinT + dy*cosT,
		}
	}

	var sideA, sideB []rotatedPoint
	for _, r := range rotatedPts {
		if r.x < 0 {
			sideA = append(sideA, r)
		} else {
			sideB = append(sideB, r)
		}
	}

	a = buildHalf(sideA, centroid, sinT, cosT)
	b = buildHalf(sideB, centroid, sinT, cosT)
	return a, b, nil
}

// rotatedPoint pairs an original point with its coordinates in the
// frame where the principal axis is horizontal.
type rotatedPoint struct {
	orig geom.Point
	x, y float64
}

func buildHalf(pts []rotatedPoint, centroid geom.Point, sinT, cosT float64) Half {
	half := Half{Points: make([]geom.Point, len(pts))}
	if len(pts) == 0 {
		return half
	}

	minX, minY := pts[0].x, pts[0].y
	maxX, maxY := pts[0].x, pts[0].y
	for i, r := range pts {
		half.Points[i] = r.orig
		minX = math.Min(minX, r.x)
		minY = math.Min(minY, r.y)
		maxX = math.Max(maxX, r.x)
		maxY = math.Max(maxY, r.y)
	}

	// Degenerate half (all points collinear in the rotated frame, zero
	// extent on one axis): widen that axis into a sliver rectangle the
	// caller's subsequent buffer-to-reseal step will fatten back into shape.
	// The pad is above the clipping engine's fixed-point resolution.
	const sliverPadM = 1e-3
	if maxX-minX < sliverPadM {
		minX, maxX = minX-sliverPadM, maxX+sliverPadM
	}
	if maxY-minY < sliverPadM {
		minY, maxY = minY-sliverPadM, maxY+sliverPadM
	}

	corners := []geom.Point{
		{X: minX, Y: minY}, {X: maxX, Y: minY}, {X: maxX, Y: maxY}, {X: minX, Y: maxY},
	}
	ring := make([]geom.Point, 0, 5)
	for _, c := range corners {
		ring = append(ring, unrotate(c, centroid, sinT, cosT))
	}
	ring = append(ring, ring[0])
	r, err := geom.NewRing(ring)
	if err != nil {
		// NewRing rejects only malformed rings; fall back to a padded rectangle.
		r = degenerateRing(corners, centroid, sinT, cosT)
	}
	half.Cell = r
	return half
}

func unrotate(p, centroid geom.Point, sinT, cosT float64) geom.Point {
	x := p.X*cosT - p.Y*sinT
	y := p.X*sinT + p.Y*cosT
	return geom.Point{X: x + centroid.X, Y: y + centroid.Y}
}

func degenerateRing(corners []geom.Point, centroid geom.Point, sinT, cosT float64) geom.Ring {
	const epsilon = 1e-6
	padded := make([]geom.Point, len(corners))
	cx, cy := 0.0, 0.0
	for _, c := range corners {
		cx += c.X
		cy += c.Y
	}
	cx /= float64(len(corners))
	cy /= float64(len(corners))
	for i, c := range corners {
		dx, dy := c.X-cx, c.Y-cy
		if dx == 0 {
			dx = epsilon
		}
		if dy == 0 {
			dy = epsilon
		}
		padded[i] = geom.Point{X: cx + dx + math.Copysign(epsilon, dx), Y: cy + dy + math.Copysign(epsilon, dy)}
	}
	ring := make([]geom.Point, 0, 5)
	for _, c := range padded {
		ring = append(ring, unrotate(c, centroid, sinT, cosT))
	}
	ring = append(ring, ring[0])
	r, _ := geom.NewRing(ring)
	return r
}

func centroidOf(points []geom.Point) geom.Point {
	var sx, sy float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(points))
	return geom.Point{X: sx / n, Y: sy / n}
}

func covarianceOf(points []geom.Point, centroid geom.Point) (*matrix.Dense, error) {
	var sxx, syy, sxy float64
	for _, p := range points {
		dx, dy := p.X-centroid.X, p.Y-centroid.Y
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}
	n := float64(len(points))

	m, err := matrix.NewDense(2, 2)
	if err != nil {
		return nil, err
	}
	_ = m.Set(0, 0, sxx/n)
	_ = m.Set(1, 1, syy/n)
	_ = m.Set(0, 1, sxy/n)
	_ = m.Set(1, 0, sxy/n)
	return m, nil
}
