// Package centerline generalizes dense networks of overlapping line
// geometry — road segments sharing a name, river braids, transit routes —
// into a single representative centerline per group.
//
// The pipeline buffers the input lines into a polygon, carves a Voronoi
// skeleton out of that polygon's interior, and walks the skeleton's
// leaf-to-leaf paths to recover one or more routes, which are then
// simplified back down to a manageable vertex count. Each stage lives in
// its own subpackage:
//
//	geom/buffer — polygon buffering and boolean ops (github.com/go-clipper/clipper2)
//	mercator    — spherical Mercator projection
//	matrix      — dense matrices and Jacobi eigendecomposition
//	partition   — principal-axis recursive splitting for large site sets
//	voronoi     — the external Voronoi driver contract
//	skeleton    — the graph built from a Voronoi diagram, pruned of small leaves
//	carver      — destructive route extraction via A*
//	dump        — failure-dump files for offline diagnosis
//	pipeline    — BufferConfig, the single-group orchestrator, and the
//	              multi-group worker pool
//
// See the pipeline package for the entry point most callers want.
package centerline
