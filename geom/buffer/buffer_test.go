package buffer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skeletron-go/centerline/geom"
	"github.com/skeletron-go/centerline/geom/buffer"
)

func TestBuffer_RejectsNonPositiveRadius(t *testing.T) {
	line, err := geom.NewPolyline([]geom.Point{{0, 0}, {10, 0}})
	require.NoError(t, err)
	mpl, err := geom.NewMultiPolyline([]geom.Polyline{line})
	require.NoError(t, err)

	_, err = buffer.Buffer(mpl, 0)
	assert.ErrorIs(t, err, buffer.ErrNonPositiveBuffer)
}

func TestBuffer_RejectsEmptyInput(t *testing.T) {
	_, err := buffer.Buffer(geom.MultiPolyline{}, 5)
	assert.ErrorIs(t, err, buffer.ErrEmptyInput)
}

func TestBuffer_StraightSegmentProducesEnclosingPolygon(t *testing.T) {
	line, err := geom.NewPolyline([]geom.Point{{0, 0}, {100, 0}})
	require.NoError(t, err)
	mpl, err := geom.NewMultiPolyline([]geom.Polyline{line})
	require.NoError(t, err)

	out, err := buffer.Buffer(mpl, 5)
	require.NoError(t, err)
	require.Len(t, out.Parts, 1)

	poly := out.Parts[0]
	assert.True(t, buffer.Within(geom.Point{X: 50, Y: 0}, poly), "midpoint of the buffered segment should be strictly inside")
	assert.False(t, buffer.Within(geom.Point{X: 50, Y: 100}, poly), "point far off the corridor should be outside")

	bounds := poly.Bounds()
	assert.InDelta(t, -5, bounds.Min.X, 1, "round cap should extend roughly bufferM beyond the segment start")
	assert.InDelta(t, 105, bounds.Max.X, 1, "round cap should extend roughly bufferM beyond the segment end")
}

func TestBuffer_TwoCrossingSegmentsUnionIntoOnePart(t *testing.T) {
	a, err := geom.NewPolyline([]geom.Point{{-50, 0}, {50, 0}})
	require.NoError(t, err)
	b, err := geom.NewPolyline([]geom.Point{{0, -50}, {0, 50}})
	require.NoError(t, err)
	mpl, err := geom.NewMultiPolyline([]geom.Polyline{a, b})
	require.NoError(t, err)

	out, err := buffer.Buffer(mpl, 10)
	require.NoError(t, err)
	assert.Len(t, out.Parts, 1, "overlapping buffers around a crossing should cascade-union into a single polygon")
}

func TestUnionPolygons_SinglePartIsIdentity(t *testing.T) {
	line, err := geom.NewPolyline([]geom.Point{{0, 0}, {10, 0}})
	require.NoError(t, err)
	mpl, err := geom.NewMultiPolyline([]geom.Polyline{line})
	require.NoError(t, err)

	buffered, err := buffer.Buffer(mpl, 3)
	require.NoError(t, err)

	out, err := buffer.UnionPolygons(buffered)
	require.NoError(t, err)
	assert.Len(t, out.Parts, 1)
}
