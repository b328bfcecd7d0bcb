// Package geom defines the planar geometry primitives the centerline
// pipeline operates on — points, polylines, rings, polygons and their
// multi- collections — plus the line utilities (densify, the two
// simplification variants, cascaded union and linear merge) that the
// buffering stage and the post-processing stage build on.
//
// All coordinates are planar (already projected; see the mercator
// package). Geometry values are immutable data: every operation in this
// package returns a new value rather than mutating its receiver in place.
package geom
