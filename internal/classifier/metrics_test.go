package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	targets := []int{1, 1, 0, 0, 1}
	predictions := []int{1, 0, 0, 1, 1}

	s := Evaluate(targets, predictions)
	assert.InDelta(t, 0.6, s.Accuracy, 1e-9)
	assert.InDelta(t, 2.0/3.0, s.Precision, 1e-9)
	assert.InDelta(t, 2.0/3.0, s.Recall, 1e-9)
	assert.InDelta(t, 2.0/3.0, s.F1, 1e-9)
}

func TestEvaluatePerfect(t *testing.T) {
	targets := []int{0, 1, 0, 1}
	s := Evaluate(targets, targets)
	assert.Equal(t, 1.0, s.Accuracy)
	assert.Equal(t, 1.0, s.Precision)
	assert.Equal(t, 1.0, s.Recall)
	assert.Equal(t, 1.0, s.F1)
}

func TestEvaluateDegenerate(t *testing.T) {
	// no positive predictions and no positive targets
	s := Evaluate([]int{0, 0}, []int{0, 0})
	assert.Equal(t, 1.0, s.Accuracy)
	assert.Equal(t, 0.0, s.Precision)
	assert.Equal(t, 0.0, s.Recall)
	assert.Equal(t, 0.0, s.F1)
}

func TestBalancedWeights(t *testing.T) {
	weights := BalancedWeights([]int{1, 0, 0, 0})
	assert.Len(t, weights, 2)
	assert.InDelta(t, 1.0, weights[0]+weights[1], 1e-9)
	assert.InDelta(t, 0.25, weights[0], 1e-9)
	assert.InDelta(t, 0.75, weights[1], 1e-9)
	// the rarer class is up-weighted
	assert.True(t, weights[1] > weights[0])
}

func TestBalancedWeightsEven(t *testing.T) {
	weights := BalancedWeights([]int{0, 1, 0, 1})
	assert.InDelta(t, 0.5, weights[0], 1e-9)
	assert.InDelta(t, 0.5, weights[1], 1e-9)
}
