package buffer

import "errors"

// ErrNonPositiveBuffer indicates a buffer radius <= 0 was requested.
var ErrNonPositiveBuffer = errors.New("buffer: radius must be > 0")

// ErrEmptyInput indicates an empty MultiPolyline/MultiPolygon was passed
// to the buffering stage.
var ErrEmptyInput = errors.New("buffer: input has no parts")

// ErrNoSolution indicates the clipping engine returned no output paths
// for an operation where a non-empty result was expected.
var ErrNoSolution = errors.New("buffer: clipping engine produced no geometry")
