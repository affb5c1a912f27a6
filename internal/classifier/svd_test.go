package classifier

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSVDReducerCap(t *testing.T) {
	assert.Equal(t, 400, newSVDReducer(1000).components)
	assert.Equal(t, 16, newSVDReducer(16).components)
}

func TestSVDReducerShapes(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	x := make([][]float64, 20)
	for i := range x {
		x[i] = make([]float64, 5)
		for j := range x[i] {
			x[i][j] = rng.NormFloat64()
		}
	}

	reducer := newSVDReducer(5)
	assert.NoError(t, reducer.fit(x))

	out := reducer.transform(x)
	assert.Len(t, out, 20)
	for _, row := range out {
		assert.Len(t, row, 5)
	}
}

func TestSVDReducerClampsToRank(t *testing.T) {
	// fewer samples than features: components cannot exceed min(n, dim)
	x := [][]float64{
		{1, 0, 0, 0, 0},
		{0, 1, 0, 0, 0},
		{0, 0, 1, 0, 0},
	}
	reducer := newSVDReducer(5)
	assert.NoError(t, reducer.fit(x))

	out := reducer.transform(x)
	assert.Len(t, out, 3)
	assert.Len(t, out[0], 3)
}

func TestSVDReducerEmpty(t *testing.T) {
	reducer := newSVDReducer(5)
	assert.Error(t, reducer.fit(nil))
}

func TestSVDReducerPreservesGeometry(t *testing.T) {
	// orthogonal transform of a full-rank matrix keeps pairwise distances
	x := [][]float64{{1, 0}, {0, 1}, {1, 1}, {2, 2}}
	reducer := newSVDReducer(2)
	assert.NoError(t, reducer.fit(x))
	out := reducer.transform(x)

	dist := func(a, b []float64) float64 {
		d := 0.0
		for i := range a {
			d += (a[i] - b[i]) * (a[i] - b[i])
		}
		return d
	}
	assert.InDelta(t, dist(x[0], x[1]), dist(out[0], out[1]), 1e-9)
	assert.InDelta(t, dist(x[2], x[3]), dist(out[2], out[3]), 1e-9)
}
