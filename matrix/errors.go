package matrix

import "errors"

// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
var ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
var ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

// ErrDimensionMismatch indicates two matrices have incompatible dimensions for an operation.
var ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
