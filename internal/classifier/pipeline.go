package classifier

import (
	"fmt"
)

// Pipeline is a fitted two-stage probe: a dimensionality reduction stage
// followed by a binary classifier.
type Pipeline interface {
	Fit(x [][]float64, y []int) error
	Predict(x [][]float64) ([]int, error)
}

// model is the classifier stage sitting behind the reduction.
type model interface {
	fit(x [][]float64, y []int) error
	predict(x [][]float64) ([]int, error)
}

type pipeline struct {
	reducer *svdReducer
	clf     model
}

// New builds the probe pipeline for the given classifier kind. The
// reduction stage keeps at most MaxComponents components. The weights
// vector is consumed by the neural variant's loss; the linear variants
// apply the balanced weighting policy internally at fit time.
func New(kind Kind, featDim, batchSize int, weights []float64) (Pipeline, error) {
	var clf model
	switch kind {
	case Linear:
		clf = newLogistic()
	case MaxMargin:
		clf = newMaxMargin()
	case Neural:
		clf = newMLP(batchSize, weights)
	default:
		return nil, fmt.Errorf("unrecognized classifier %q, valid classifiers: %s", kind, kindNames())
	}
	return &pipeline{
		reducer: newSVDReducer(featDim),
		clf:     clf,
	}, nil
}

func (p *pipeline) Fit(x [][]float64, y []int) error {
	if err := p.reducer.fit(x); err != nil {
		return fmt.Errorf("could not fit reduction stage: %w", err)
	}
	return p.clf.fit(p.reducer.transform(x), y)
}

func (p *pipeline) Predict(x [][]float64) ([]int, error) {
	if p.reducer.v == nil {
		return nil, fmt.Errorf("pipeline is not fitted")
	}
	return p.clf.predict(p.reducer.transform(x))
}
