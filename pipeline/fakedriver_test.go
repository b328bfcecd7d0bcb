package pipeline_test

import (
	"context"
	"errors"

	"github.com/skeletron-go/centerline/geom"
	"github.com/skeletron-go/centerline/voronoi"
)

// centroidDriver is a test double for voronoi.Driver: instead of computing
// an actual Voronoi diagram, it places two vertices straddling the sites'
// centroid along the x axis, each site's region referencing both. For a
// convex buffer polygon built around a roughly horizontal line, both
// vertices land well inside the polygon, giving the skeleton builder a
// single two-node, one-edge graph to work with — enough to exercise the
// pipeline's wiring without depending on exact Voronoi geometry.
type centroidDriver struct {
	halfSpanM float64
}

func (d centroidDriver) Compute(_ context.Context, sites []geom.Point) (voronoi.Diagram, error) {
	if len(sites) == 0 {
		return voronoi.Diagram{}, errors.New("centroidDriver: no sites")
	}
	var cx, cy float64
	for _, s := range sites {
		cx += s.X
		cy += s.Y
	}
	cx /= float64(len(sites))
	cy /= float64(len(sites))

	vertices := []geom.Point{
		{X: cx - d.halfSpanM, Y: cy},
		{X: cx + d.halfSpanM, Y: cy},
	}
	regions := make([]voronoi.Region, len(sites))
	for i := range regions {
		regions[i] = voronoi.Region{0, 1}
	}
	return voronoi.Diagram{Vertices: vertices, Regions: regions}, nil
}

// alwaysFailDriver reports every call as a driver failure, modeling
// collinear-degenerate sites or any other unrecoverable external-tool
// failure.
type alwaysFailDriver struct{}

func (alwaysFailDriver) Compute(_ context.Context, _ []geom.Point) (voronoi.Diagram, error) {
	return voronoi.Diagram{}, errors.New("alwaysFailDriver: simulated voronoi failure")
}
