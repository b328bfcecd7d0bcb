package pipeline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skeletron-go/centerline/geom"
	"github.com/skeletron-go/centerline/mercator"
	"github.com/skeletron-go/centerline/pipeline"
)

func lonLatLine(t *testing.T, planar ...geom.Point) geom.Polyline {
	t.Helper()
	pts := make(geom.Polyline, 0, len(planar))
	for _, p := range planar {
		lon, lat, err := mercator.Default.Unproject(p)
		require.NoError(t, err)
		pts = append(pts, geom.Point{X: lon, Y: lat})
	}
	return pts
}

func straightLineGroup(t *testing.T) pipeline.Group {
	t.Helper()
	line := lonLatLine(t, geom.Point{X: 0, Y: 0}, geom.Point{X: 100, Y: 0})
	mp, err := geom.NewMultiPolyline([]geom.Polyline{line})
	require.NoError(t, err)
	return pipeline.Group{Key: []string{"Main St", "residential"}, LonLat: mp}
}

func simpleConfig() pipeline.BufferConfig {
	return pipeline.BufferConfig{
		BufferM:         5,
		DensityM:        2.5,
		MinLengthM:      0,
		MinAreaM2:       0.01,
		MaxSitesPerCell: 5000,
		LeafPruneDepthM: 0,
		TimeCoefficient: 0.02,
	}
}

func TestRunGroup_InvalidInput(t *testing.T) {
	group := pipeline.Group{Key: []string{"empty"}, LonLat: geom.MultiPolyline{}}
	_, err := pipeline.RunGroup(context.Background(), mercator.Default, group, simpleConfig(), alwaysFailDriver{}, t.TempDir(), nil, nil)

	var invalid *pipeline.InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestRunGroup_VoronoiAlwaysFailing_YieldsEmptyResult(t *testing.T) {
	group := straightLineGroup(t)
	_, err := pipeline.RunGroup(context.Background(), mercator.Default, group, simpleConfig(), alwaysFailDriver{}, t.TempDir(), nil, nil)

	assert.ErrorIs(t, err, pipeline.ErrEmptyResult)
}

func TestRunGroup_SuccessfulCarveProducesOneRoute(t *testing.T) {
	group := straightLineGroup(t)
	driver := centroidDriver{halfSpanM: 2}

	result, err := pipeline.RunGroup(context.Background(), mercator.Default, group, simpleConfig(), driver, t.TempDir(), nil, nil)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.LonLat.Parts, 1)

	// Re-project the output back to planar to check it against the
	// centroidDriver's known deterministic geometry (a 2*halfSpanM
	// segment straddling the input line's centroid) rather than hand
	// deriving lon/lat deltas.
	planar := mercator.Default.ProjectPolyline(result.LonLat.Parts[0])
	require.Len(t, planar, 2)
	assert.InDelta(t, 4.0, planar.Length(), 0.5)
	assert.InDelta(t, 50, planar[0].X, 3)
}

func TestRunGroup_OvertimeAbortsGroup(t *testing.T) {
	group := straightLineGroup(t)
	driver := centroidDriver{halfSpanM: 2}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pipeline.RunGroup(ctx, mercator.Default, group, simpleConfig(), driver, t.TempDir(), nil, nil)
	var overtime *pipeline.CarverOvertimeError
	require.ErrorAs(t, err, &overtime)
}
