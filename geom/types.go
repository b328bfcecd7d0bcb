package geom

import (
	"errors"
	"math"
)

// Sentinel errors for geom package operations.
var (
	// ErrTooFewPoints indicates a Polyline or Ring was built with fewer
	// points than its shape requires.
	ErrTooFewPoints = errors.New("geom: too few points")

	// ErrNotClosed indicates a Ring's first and last points do not coincide.
	ErrNotClosed = errors.New("geom: ring is not closed")

	// ErrEmptyCollection indicates a MultiPolygon/MultiPolyline was built
	// with zero members; the data model requires non-empty collections.
	ErrEmptyCollection = errors.New("geom: collection must be non-empty")

	// ErrNonPositiveParameter indicates a distance/area/tolerance argument
	// was <= 0 where a strictly positive value is required.
	ErrNonPositiveParameter = errors.New("geom: parameter must be > 0")
)

// Point is a planar coordinate in projected units (meters, after the
// mercator projector has been applied).
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return math.Hypot(dx, dy)
}

// DistSq returns the squared Euclidean distance between p and q, useful
// where only relative ordering matters and the sqrt can be skipped.
func (p Point) DistSq(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Equal reports whether p and q are identical in both coordinates.
func (p Point) Equal(q Point) bool { return p.X == q.X && p.Y == q.Y }

// Polyline is an ordered, finite sequence of points. A valid Polyline has
// length >= 2; constructors enforce this, but the zero value is an empty
// slice and callers building one by hand (e.g. via append) are expected to
// validate with NewPolyline before handing it to pipeline stages.
type Polyline []Point

// NewPolyline validates and returns pts as a Polyline.
func NewPolyline(pts []Point) (Polyline, error) {
	if len(pts) < 2 {
		return nil, ErrTooFewPoints
	}
	return Polyline(pts), nil
}

// Length returns the total length of the polyline's segments.
func (pl Polyline) Length() float64 {
	var total float64
	for i := 1; i < len(pl); i++ {
		total += pl[i-1].Dist(pl[i])
	}
	return total
}

// Bounds returns the axis-aligned bounding box of the polyline.
func (pl Polyline) Bounds() Rect {
	return boundsOf(pl)
}

// Ring is a closed Polyline: its first and last points coincide, and it
// has at least 4 points (3 distinct vertices plus the closing repeat).
type Ring Polyline

// NewRing validates and returns pts as a Ring.
func NewRing(pts []Point) (Ring, error) {
	if len(pts) < 4 {
		return nil, ErrTooFewPoints
	}
	if !pts[0].Equal(pts[len(pts)-1]) {
		return nil, ErrNotClosed
	}
	return Ring(pts), nil
}

// Bounds returns the axis-aligned bounding box of the ring.
func (r Ring) Bounds() Rect {
	return boundsOf(Polyline(r))
}

// Polygon is one exterior ring plus zero or more interior rings (holes).
type Polygon struct {
	Exterior Ring
	Holes    []Ring
}

// Bounds returns the axis-aligned bounding box of the polygon's exterior
// ring (holes never extend it).
func (p Polygon) Bounds() Rect {
	return p.Exterior.Bounds()
}

// Rings returns the exterior ring followed by every hole, the order a
// perimeter-densification pass should walk them in.
func (p Polygon) Rings() []Ring {
	out := make([]Ring, 0, 1+len(p.Holes))
	out = append(out, p.Exterior)
	out = append(out, p.Holes...)
	return out
}

// MultiPolygon is a non-empty set of polygons.
type MultiPolygon struct {
	Parts []Polygon
}

// NewMultiPolygon validates and returns parts as a MultiPolygon.
func NewMultiPolygon(parts []Polygon) (MultiPolygon, error) {
	if len(parts) == 0 {
		return MultiPolygon{}, ErrEmptyCollection
	}
	return MultiPolygon{Parts: parts}, nil
}

// MultiPolyline is a non-empty set of polylines.
type MultiPolyline struct {
	Parts []Polyline
}

// NewMultiPolyline validates and returns parts as a MultiPolyline.
func NewMultiPolyline(parts []Polyline) (MultiPolyline, error) {
	if len(parts) == 0 {
		return MultiPolyline{}, ErrEmptyCollection
	}
	return MultiPolyline{Parts: parts}, nil
}

// Rect is an axis-aligned bounding rectangle, Min inclusive, Max inclusive.
type Rect struct {
	Min, Max Point
}

// Width returns the rectangle's horizontal extent.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the rectangle's vertical extent.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the rectangle's midpoint.
func (r Rect) Center() Point {
	return Point{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// Corners returns the rectangle as a closed 5-point ring, exterior
// winding, suitable for feeding to a polygon-clipping engine.
func (r Rect) Corners() Polyline {
	return Polyline{
		{r.Min.X, r.Min.Y},
		{r.Max.X, r.Min.Y},
		{r.Max.X, r.Max.Y},
		{r.Min.X, r.Max.Y},
		{r.Min.X, r.Min.Y},
	}
}

func boundsOf(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	min, max := pts[0], pts[0]
	for _, p := range pts[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return Rect{Min: min, Max: max}
}
