package mercator

import (
	"errors"
	"math"

	"github.com/skeletron-go/centerline/geom"
)

// EarthRadiusMeters is the WGS84 semi-major (equatorial) radius used for
// the default spherical-mercator projector.
const EarthRadiusMeters = 6378137.0

// ErrOutOfRange is returned by Unproject when the y coordinate maps to a
// latitude outside (-90, 90), which cannot happen for finite input but is
// guarded against so Unproject never silently returns NaN.
var ErrOutOfRange = errors.New("mercator: coordinate out of range")

// Projector is a bijective spherical-mercator transform between
// geographic (lon, lat) degrees and planar (x, y) meters.
//
// Projector holds no mutable state; a single value is safe to share across
// any number of goroutines.
type Projector struct {
	radius float64
}

// New returns a Projector for a sphere of the given radius in meters.
func New(radiusMeters float64) Projector {
	return Projector{radius: radiusMeters}
}

// Default is the process-wide spherical-mercator projector: immutable,
// initialized once, shared by every caller that doesn't need a different
// reference sphere.
var Default = New(EarthRadiusMeters)

// Project maps geographic (lon, lat) in degrees to planar (x, y) in
// meters.
func (p Projector) Project(lon, lat float64) geom.Point {
	x := p.radius * degToRad(lon)
	y := p.radius * math.Log(math.Tan(math.Pi/4+degToRad(lat)/2))
	return geom.Point{X: x, Y: y}
}

// Unproject maps a planar point back to geographic (lon, lat) in degrees.
// It is the exact inverse of Project: Unproject(Project(lon, lat)) recovers
// (lon, lat) to within floating-point precision for any lon/lat in the
// typical map range.
func (p Projector) Unproject(pt geom.Point) (lon, lat float64, err error) {
	lon = radToDeg(pt.X / p.radius)
	lat = radToDeg(2*math.Atan(math.Exp(pt.Y/p.radius)) - math.Pi/2)
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return 0, 0, ErrOutOfRange
	}
	return lon, lat, nil
}

// ProjectPolyline projects every point of a geographic polyline.
func (p Projector) ProjectPolyline(lonLat geom.Polyline) geom.Polyline {
	out := make(geom.Polyline, len(lonLat))
	for i, pt := range lonLat {
		out[i] = p.Project(pt.X, pt.Y)
	}
	return out
}

// UnprojectPolyline inverts ProjectPolyline.
func (p Projector) UnprojectPolyline(planar geom.Polyline) (geom.Polyline, error) {
	out := make(geom.Polyline, len(planar))
	for i, pt := range planar {
		lon, lat, err := p.Unproject(pt)
		if err != nil {
			return nil, err
		}
		out[i] = geom.Point{X: lon, Y: lat}
	}
	return out, nil
}

func degToRad(d float64) float64 { return d * math.Pi / 180 }
func radToDeg(r float64) float64 { return r * 180 / math.Pi }
