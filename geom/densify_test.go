package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skeletron-go/centerline/geom"
)

func TestDensify_PreservesEndpointsAndSpacing(t *testing.T) {
	tests := []struct {
		name string
		pts  geom.Polyline
		d    float64
	}{
		{"straight_line", geom.Polyline{{0, 0}, {100, 0}}, 2.5},
		{"bent_line", geom.Polyline{{0, 0}, {10, 0}, {10, 10}}, 3},
		{"zero_length_segment", geom.Polyline{{0, 0}, {0, 0}, {5, 0}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := geom.Densify(tt.pts, tt.d)
			require.NoError(t, err)

			require.True(t, out[0].Equal(tt.pts[0]))
			require.True(t, out[len(out)-1].Equal(tt.pts[len(tt.pts)-1]))
			assert.GreaterOrEqual(t, len(out), len(tt.pts))

			for i := 1; i < len(out); i++ {
				assert.LessOrEqual(t, out[i-1].Dist(out[i]), tt.d+1e-9)
			}
		})
	}
}

func TestDensify_RejectsBadInput(t *testing.T) {
	_, err := geom.Densify(geom.Polyline{{0, 0}, {1, 0}}, 0)
	assert.ErrorIs(t, err, geom.ErrNonPositiveParameter)

	_, err = geom.Densify(geom.Polyline{{0, 0}}, 1)
	assert.ErrorIs(t, err, geom.ErrTooFewPoints)
}
