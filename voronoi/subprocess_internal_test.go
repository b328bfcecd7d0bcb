package voronoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skeletron-go/centerline/geom"
)

func TestEncodeSites_MatchesWireFormat(t *testing.T) {
	sites := []geom.Point{{X: 0, Y: 0}, {X: 1.5, Y: -2.25}}
	got := encodeSites(sites)
	assert.Equal(t, "2\n2\n0.000000 0.000000\n1.500000 -2.250000\n", got)
}

func TestParseDiagram_ValidOutput(t *testing.T) {
	out := "discarded header\n" +
		"3 2 extra\n" +
		"0.0 0.0\n" +
		"1.0 0.0\n" +
		"0.5 1.0\n" +
		"3 0 1 2\n" +
		"3 0 -1 1\n"

	d, err := parseDiagram([]byte(out))
	require.NoError(t, err)
	require.Len(t, d.Vertices, 3)
	assert.Equal(t, 0.5, d.Vertices[2].X)
	require.Len(t, d.Regions, 2)
	assert.Equal(t, Region{0, 1, 2}, d.Regions[0])
	assert.Equal(t, Region{0, InfiniteVertex, 1}, d.Regions[1])
}

func TestParseDiagram_TruncatedOutputIsMalformed(t *testing.T) {
	out := "discarded\n3 2\n0 0\n"
	_, err := parseDiagram([]byte(out))
	assert.ErrorIs(t, err, ErrMalformedOutput)
}

func TestParseDiagram_EmptyOutputIsMalformed(t *testing.T) {
	_, err := parseDiagram([]byte(""))
	assert.ErrorIs(t, err, ErrMalformedOutput)
}
