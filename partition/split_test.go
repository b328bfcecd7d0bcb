package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skeletron-go/centerline/geom"
	"github.com/skeletron-go/centerline/partition"
)

func TestSplit_RejectsTooFewPoints(t *testing.T) {
	_, _, err := partition.Split([]geom.Point{{X: 0, Y: 0}})
	assert.ErrorIs(t, err, partition.ErrTooFewPoints)
}

func TestSplit_HorizontallySpreadPointsSplitLeftRight(t *testing.T) {
	var points []geom.Point
	for x := -50.0; x <= 50; x += 5 {
		points = append(points, geom.Point{X: x, Y: 0})
	}

	a, b, err := partition.Split(points)
	require.NoError(t, err)
	assert.NotEmpty(t, a.Points)
	assert.NotEmpty(t, b.Points)
	assert.Equal(t, len(points), len(a.Points)+len(b.Points))

	for _, p := range a.Points {
		assert.LessOrEqual(t, p.X, 0.0)
	}
	for _, p := range b.Points {
		assert.GreaterOrEqual(t, p.X, 0.0)
	}
}

func TestSplit_VerticallySpreadPointsSplitByRotatedAxis(t *testing.T) {
	var points []geom.Point
	for y := -50.0; y <= 50; y += 5 {
		points = append(points, geom.Point{X: 0, Y: y})
	}

	a, b, err := partition.Split(points)
	require.NoError(t, err)
	assert.Equal(t, len(points), len(a.Points)+len(b.Points))

	for _, p := range a.Points {
		assert.LessOrEqual(t, p.Y, 0.0)
	}
	for _, p := range b.Points {
		assert.GreaterOrEqual(t, p.Y, 0.0)
	}
}

func TestSplit_CellsCoverTheirHalf(t *testing.T) {
	var points []geom.Point
	for x := -50.0; x <= 50; x += 10 {
		points = append(points, geom.Point{X: x, Y: 0})
	}

	a, b, err := partition.Split(points)
	require.NoError(t, err)

	require.NotEmpty(t, a.Cell)
	require.NotEmpty(t, b.Cell)
	assert.True(t, a.Cell[0].Equal(a.Cell[len(a.Cell)-1]), "cell ring must be closed")
	assert.True(t, b.Cell[0].Equal(b.Cell[len(b.Cell)-1]), "cell ring must be closed")
}
