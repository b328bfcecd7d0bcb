package pipeline

import (
	"strings"

	"github.com/skeletron-go/centerline/geom"
)

// Group is one input unit to the pipeline: an identifying key tuple (e.g.
// (name, highway) for a road network, (network, ref, modifier[, highway])
// for a route relation) and the lines that share that key, in geographic
// coordinates (lon, lat).
type Group struct {
	Key    []string
	LonLat geom.MultiPolyline
}

// Result is one output unit: the group's key paired with its extracted
// centerlines, unprojected back to geographic coordinates. Skipped
// records any subdivisions whose Voronoi computation failed and were
// excluded from LonLat, so a caller can surface partial-coverage warnings
// without RunGroup having to abort the whole group over one bad cell.
type Result struct {
	Key     []string
	LonLat  geom.MultiPolyline
	Skipped []*VoronoiFailureError
}

// groupLabel renders a Group's key tuple for logging and for the group
// line of overtime dump files.
func groupLabel(key []string) string {
	return strings.Join(key, "/")
}
