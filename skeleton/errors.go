package skeleton

import "errors"

// ErrNodeNotFound indicates an operation referenced a node ID that does
// not exist or has already been removed.
var ErrNodeNotFound = errors.New("skeleton: node not found")

// ErrSelfLoop indicates an edge was attempted between a node and itself.
var ErrSelfLoop = errors.New("skeleton: self-loop not allowed")

// ErrNonPositiveLength indicates an edge was added with length <= 0.
var ErrNonPositiveLength = errors.New("skeleton: edge length must be > 0")
