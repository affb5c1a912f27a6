package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddContextZeroWindow(t *testing.T) {
	feats := [][]float64{{1, 2}, {3, 4}}
	assert.Equal(t, feats, AddContext(feats, 0))
}

func TestAddContextShapes(t *testing.T) {
	feats := make([][]float64, 10)
	for i := range feats {
		feats[i] = []float64{float64(i), float64(i) * 2, float64(i) * 3}
	}
	for _, winSize := range []int{1, 2, 5} {
		out := AddContext(feats, winSize)
		assert.Len(t, out, len(feats))
		for _, row := range out {
			assert.Len(t, row, 3*(2*winSize+1))
		}
	}
}

func TestAddContextEdgeReplication(t *testing.T) {
	feats := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	out := AddContext(feats, 1)

	// each row holds [next, current, previous], edges replicate the
	// nearest real frame instead of introducing zeros
	assert.Equal(t, [][]float64{
		{3, 4, 1, 2, 1, 2},
		{5, 6, 3, 4, 1, 2},
		{5, 6, 5, 6, 3, 4},
	}, out)
}

func TestAddContextEmpty(t *testing.T) {
	assert.Empty(t, AddContext(nil, 3))
}
