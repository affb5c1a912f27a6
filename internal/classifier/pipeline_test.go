package classifier

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// clusters generates two well separated gaussian clusters.
func clusters(n, dim int) ([][]float64, []int) {
	rng := rand.New(rand.NewSource(7))
	x := make([][]float64, n)
	y := make([]int, n)
	for i := range x {
		row := make([]float64, dim)
		center := -2.0
		if i%2 == 0 {
			center = 2.0
			y[i] = 1
		}
		for j := range row {
			row[j] = center + rng.NormFloat64()*0.2
		}
		x[i] = row
	}
	return x, y
}

func TestParseKind(t *testing.T) {
	for _, name := range []string{"linear", "max-margin", "neural"} {
		kind, err := ParseKind(name)
		assert.NoError(t, err)
		assert.Equal(t, name, string(kind))
	}

	_, err := ParseKind("forest")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "forest")
	assert.Contains(t, err.Error(), "valid classifiers")
}

func TestNewRejectsUnknownKind(t *testing.T) {
	_, err := New(Kind("forest"), 10, 128, nil)
	assert.Error(t, err)
}

func TestLinearPipeline(t *testing.T) {
	x, y := clusters(100, 4)
	clf, err := New(Linear, 4, 128, nil)
	assert.NoError(t, err)
	assert.NoError(t, clf.Fit(x, y))

	predictions, err := clf.Predict(x)
	assert.NoError(t, err)
	s := Evaluate(y, predictions)
	assert.Equal(t, 1.0, s.Accuracy)
}

func TestMaxMarginPipeline(t *testing.T) {
	x, y := clusters(100, 4)
	clf, err := New(MaxMargin, 4, 128, nil)
	assert.NoError(t, err)
	assert.NoError(t, clf.Fit(x, y))

	predictions, err := clf.Predict(x)
	assert.NoError(t, err)
	s := Evaluate(y, predictions)
	assert.Equal(t, 1.0, s.Accuracy)
}

func TestPipelinePredictBeforeFit(t *testing.T) {
	clf, err := New(Linear, 4, 128, nil)
	assert.NoError(t, err)
	_, err = clf.Predict([][]float64{{1, 2, 3, 4}})
	assert.Error(t, err)
}

func TestPipelineEmptyFit(t *testing.T) {
	clf, err := New(Linear, 4, 128, nil)
	assert.NoError(t, err)
	assert.Error(t, clf.Fit(nil, nil))
}

func TestLogisticImbalanced(t *testing.T) {
	// 10:1 imbalance, still separable
	rng := rand.New(rand.NewSource(11))
	x := make([][]float64, 110)
	y := make([]int, 110)
	for i := range x {
		center := -2.0
		if i < 10 {
			center = 2.0
			y[i] = 1
		}
		x[i] = []float64{center + rng.NormFloat64()*0.2, center + rng.NormFloat64()*0.2}
	}

	clf := newLogistic()
	assert.NoError(t, clf.fit(x, y))
	predictions, err := clf.predict(x)
	assert.NoError(t, err)
	s := Evaluate(y, predictions)
	assert.Equal(t, 1.0, s.Recall)
}
