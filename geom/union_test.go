package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skeletron-go/centerline/geom"
)

func sumUnion(a, b int) (int, error) { return a + b, nil }

func TestCascadedUnion_BaseCases(t *testing.T) {
	zero, err := geom.CascadedUnion([]int{}, sumUnion)
	require.NoError(t, err)
	assert.Equal(t, 0, zero)

	one, err := geom.CascadedUnion([]int{7}, sumUnion)
	require.NoError(t, err)
	assert.Equal(t, 7, one)

	two, err := geom.CascadedUnion([]int{3, 4}, sumUnion)
	require.NoError(t, err)
	assert.Equal(t, 7, two)
}

func TestCascadedUnion_AssociativeUpToEquivalence(t *testing.T) {
	all, err := geom.CascadedUnion([]int{1, 2, 3, 4}, sumUnion)
	require.NoError(t, err)

	ab, err := geom.CascadedUnion([]int{1, 2}, sumUnion)
	require.NoError(t, err)
	cd, err := geom.CascadedUnion([]int{3, 4}, sumUnion)
	require.NoError(t, err)
	combined, err := sumUnion(ab, cd)
	require.NoError(t, err)

	assert.Equal(t, combined, all)
}

func TestLinearMerge_ChainsSharedEndpoints(t *testing.T) {
	a := geom.Polyline{{0, 0}, {1, 0}}
	b := geom.Polyline{{1, 0}, {2, 0}}
	c := geom.Polyline{{5, 5}, {6, 5}} // disjoint fragment

	merged := geom.LinearMerge([]geom.Polyline{a, b, c})
	require.Len(t, merged.Parts, 2)

	var lengths []int
	for _, p := range merged.Parts {
		lengths = append(lengths, len(p))
	}
	assert.Contains(t, lengths, 3) // a+b chained
	assert.Contains(t, lengths, 2) // c alone
}

func TestLinearMerge_ReversesToConnect(t *testing.T) {
	a := geom.Polyline{{0, 0}, {1, 0}}
	b := geom.Polyline{{2, 0}, {1, 0}} // shares tail with a's tail, needs reversal

	merged := geom.LinearMerge([]geom.Polyline{a, b})
	require.Len(t, merged.Parts, 1)
	assert.Len(t, merged.Parts[0], 3)
}
