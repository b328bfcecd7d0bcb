package partition

import "errors"

// ErrTooFewPoints indicates a split was attempted on fewer than 2 points,
// which cannot define a covariance matrix.
var ErrTooFewPoints = errors.New("partition: need at least 2 points to split")
