package voronoi

import (
	"context"

	"github.com/skeletron-go/centerline/geom"
)

// Driver computes a 2D Voronoi diagram over sites. Implementations may
// shell out to an external tool (SubprocessDriver) or, in tests, return
// canned output.
type Driver interface {
	Compute(ctx context.Context, sites []geom.Point) (Diagram, error)
}
