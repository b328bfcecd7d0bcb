package dump_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skeletron-go/centerline/dump"
	"github.com/skeletron-go/centerline/geom"
)

func TestWriteVoronoiFailure_WritesExpectedContent(t *testing.T) {
	dir := t.TempDir()
	ring, err := geom.NewRing([]geom.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}})
	require.NoError(t, err)
	poly := geom.Polygon{Exterior: ring}

	path, err := dump.WriteVoronoiFailure(dir, errors.New("qhull: degenerate input"), 2.5, poly)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, dir))
	assert.Contains(t, path, "qhull-failure-")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(content)
	assert.Contains(t, text, "qhull: degenerate input")
	assert.Contains(t, text, "density_m: 2.5")
	assert.Contains(t, text, "exterior:")
}

func TestWriteGraphOvertime_WritesExpectedContent(t *testing.T) {
	dir := t.TempDir()
	g := dump.GraphDump{
		Nodes: []dump.NodeDump{{ID: 0, X: 0, Y: 0}, {ID: 1, X: 5, Y: 0}},
		Edges: []dump.EdgeDump{{From: 0, To: 1, Length: 5}},
	}

	path, err := dump.WriteGraphOvertime(dir, "name=Main St,highway=primary", g)
	require.NoError(t, err)
	assert.Contains(t, path, "graph-overtime-")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(content)
	assert.Contains(t, text, "group: name=Main St,highway=primary")
	assert.Contains(t, text, "nodes: 2")
	assert.Contains(t, text, "edges: 1")
}

func TestWriteVoronoiFailure_UniqueNamesOnRepeatedCalls(t *testing.T) {
	dir := t.TempDir()
	ring, err := geom.NewRing([]geom.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}})
	require.NoError(t, err)
	poly := geom.Polygon{Exterior: ring}

	p1, err := dump.WriteVoronoiFailure(dir, errors.New("x"), 1, poly)
	require.NoError(t, err)
	p2, err := dump.WriteVoronoiFailure(dir, errors.New("x"), 1, poly)
	require.NoError(t, err)
	assert.NotEqual(t, p1, p2)
}
