// Package buffer turns lines into a buffered corridor polygon: per-part
// Douglas-Peucker pre-simplification, per-part radius offsetting with
// round caps/joins, and a cascaded union of the offset parts into one
// buffered MultiPolygon. It is also this module's adapter onto a real
// polygon-clipping engine — github.com/go-clipper/clipper2, a pure-Go
// port of Clipper2 — for the boolean/offset/point-in-polygon primitives
// the geom package's data model leaves abstract.
//
// Clipper2 operates on 64-bit fixed-point coordinates; this package owns
// the scale-up/scale-down at its boundary so the rest of the module never
// sees fixed-point values.
package buffer
