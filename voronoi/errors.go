package voronoi

import "errors"

// ErrTooFewSites indicates fewer than the minimum 5 sites required for a
// meaningful 2D Voronoi diagram were supplied.
var ErrTooFewSites = errors.New("voronoi: need at least 5 sites")

// ErrDriverFailed indicates the external Voronoi process exited non-zero.
var ErrDriverFailed = errors.New("voronoi: driver process exited with an error")

// ErrMalformedOutput indicates the driver's stdout did not match the
// expected "qvoronoi o" shape.
var ErrMalformedOutput = errors.New("voronoi: malformed driver output")
