package dump

import (
	"fmt"
	"os"

	"github.com/skeletron-go/centerline/geom"
)

// NodeDump is one skeleton node as serialized into a graph-overtime dump.
type NodeDump struct {
	ID   int
	X, Y float64
}

// EdgeDump is one skeleton edge as serialized into a graph-overtime dump.
type EdgeDump struct {
	From, To int
	Length   float64
}

// GraphDump is the serializable snapshot of a skeleton graph written on
// carver overtime. Callers build this from their own graph representation
// so this package stays free of a dependency on the skeleton package.
type GraphDump struct {
	Nodes []NodeDump
	Edges []EdgeDump
}

// WriteVoronoiFailure writes a "qhull-failure-*.txt" file in dir containing
// the driver's error, the density used to produce the sites, and the
// subdivision polygon that failed. It returns the path written.
func WriteVoronoiFailure(dir string, driverErr error, densityM float64, polygon geom.Polygon) (string, error) {
	f, err := os.CreateTemp(dir, "qhull-failure-*.txt")
	if err != nil {
		return "", fmt.Errorf("dump: creating voronoi failure file: %w", err)
	}
	defer f.Close()

	fmt.Fprintf(f, "error: %v\n", driverErr)
	fmt.Fprintf(f, "density_m: %g\n", densityM)
	fmt.Fprintln(f, "polygon:")
	writeRing(f, "exterior", polygon.Exterior)
	for i, hole := range polygon.Holes {
		writeRing(f, fmt.Sprintf("hole[%d]", i), hole)
	}

	return f.Name(), nil
}

// WriteGraphOvertime writes a "graph-overtime-*.txt" file in dir containing
// groupKey and a serialized form of g's nodes and edges. It returns the
// path written.
func WriteGraphOvertime(dir string, groupKey string, g GraphDump) (string, error) {
	f, err := os.CreateTemp(dir, "graph-overtime-*.txt")
	if err != nil {
		return "", fmt.Errorf("dump: creating graph overtime file: %w", err)
	}
	defer f.Close()

	fmt.Fprintf(f, "group: %s\n", groupKey)
	fmt.Fprintf(f, "nodes: %d\n", len(g.Nodes))
	for _, n := range g.Nodes {
		fmt.Fprintf(f, "node %d %g %g\n", n.ID, n.X, n.Y)
	}
	fmt.Fprintf(f, "edges: %d\n", len(g.Edges))
	for _, e := range g.Edges {
		fmt.Fprintf(f, "edge %d %d %g\n", e.From, e.To, e.Length)
	}

	return f.Name(), nil
}

func writeRing(f *os.File, label string, r geom.Ring) {
	fmt.Fprintf(f, "  %s:\n", label)
	for _, p := range r {
		fmt.Fprintf(f, "    %g %g\n", p.X, p.Y)
	}
}
