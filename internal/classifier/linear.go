package classifier

import (
	"fmt"
	"math/rand"
)

// sgd holds the shared state for the linear probes trained with
// stochastic gradient descent.
type sgd struct {
	epochs int
	lr     float64
	l2     float64
	w      []float64
	b      float64
	rng    *rand.Rand
}

func newSGD() sgd {
	return sgd{
		epochs: 50,
		lr:     0.1,
		l2:     1e-4,
		rng:    rand.New(rand.NewSource(42)),
	}
}

func (s *sgd) init(dim int) {
	s.w = make([]float64, dim)
	s.b = 0
}

func (s *sgd) decision(x []float64) float64 {
	return dotVec(s.w, x) + s.b
}

func (s *sgd) predict(x [][]float64) ([]int, error) {
	if s.w == nil {
		return nil, fmt.Errorf("classifier is not fitted")
	}
	predictions := make([]int, len(x))
	for i, row := range x {
		if s.decision(row) >= 0 {
			predictions[i] = 1
		}
	}
	return predictions, nil
}

// classWeights follows the balanced weighting policy: each class is
// weighted by n/(2*count), up-weighting the minority class.
func classWeights(y []int) []float64 {
	counts := []float64{0, 0}
	for _, v := range y {
		counts[v]++
	}
	n := float64(len(y))
	return []float64{n / (2 * counts[0]), n / (2 * counts[1])}
}

// logistic is a logistic regression probe.
type logistic struct {
	sgd
}

func newLogistic() *logistic {
	return &logistic{sgd: newSGD()}
}

func (l *logistic) fit(x [][]float64, y []int) error {
	if len(x) == 0 {
		return fmt.Errorf("cannot fit on empty feature matrix")
	}
	l.init(len(x[0]))
	weights := classWeights(y)

	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	for epoch := 0; epoch < l.epochs; epoch++ {
		l.rng.Shuffle(len(idx), func(i, j int) {
			idx[i], idx[j] = idx[j], idx[i]
		})
		lr := l.lr / (1 + float64(epoch))
		for _, i := range idx {
			g := (sigmoid(l.decision(x[i])) - float64(y[i])) * weights[y[i]]
			for j := range l.w {
				l.w[j] -= lr * (g*x[i][j] + l.l2*l.w[j])
			}
			l.b -= lr * g
		}
	}
	return nil
}

// maxMargin is a linear max-margin probe trained on the hinge loss.
type maxMargin struct {
	sgd
}

func newMaxMargin() *maxMargin {
	return &maxMargin{sgd: newSGD()}
}

func (m *maxMargin) fit(x [][]float64, y []int) error {
	if len(x) == 0 {
		return fmt.Errorf("cannot fit on empty feature matrix")
	}
	m.init(len(x[0]))
	weights := classWeights(y)

	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	for epoch := 0; epoch < m.epochs; epoch++ {
		m.rng.Shuffle(len(idx), func(i, j int) {
			idx[i], idx[j] = idx[j], idx[i]
		})
		lr := m.lr / (1 + float64(epoch))
		for _, i := range idx {
			sign := float64(2*y[i] - 1)
			if sign*m.decision(x[i]) < 1 {
				for j := range m.w {
					m.w[j] += lr * (weights[y[i]]*sign*x[i][j] - m.l2*m.w[j])
				}
				m.b += lr * weights[y[i]] * sign
			} else {
				for j := range m.w {
					m.w[j] -= lr * m.l2 * m.w[j]
				}
			}
		}
	}
	return nil
}
