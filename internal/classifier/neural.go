package classifier

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/rs/zerolog/log"

	"github.com/drakos74/phone-probe/internal/buffer"
)

// mlp is a feed-forward probe with one hidden ReLU layer and dropout,
// trained with mini-batch Adam on a class-weighted cross-entropy loss.
type mlp struct {
	hidDim    int
	batchSize int
	weights   []float64

	maxEpochs int
	lr        float64
	dropout   float64
	clipNorm  float64
	patience  int
	valFrac   float64

	w1 [][]float64
	b1 []float64
	w2 [][]float64
	b2 []float64

	rng *rand.Rand
}

func newMLP(batchSize int, weights []float64) *mlp {
	if weights == nil {
		weights = []float64{0.5, 0.5}
	}
	return &mlp{
		hidDim:    128,
		batchSize: batchSize,
		weights:   weights,
		maxEpochs: 50,
		lr:        3e-4,
		dropout:   0.5,
		clipNorm:  2.0,
		patience:  5,
		valFrac:   0.2,
		rng:       rand.New(rand.NewSource(42)),
	}
}

// adam keeps the per-parameter first and second moment estimates.
type adam struct {
	lr   float64
	t    float64
	mW1  [][]float64
	vW1  [][]float64
	mB1  []float64
	vB1  []float64
	mW2  [][]float64
	vW2  [][]float64
	mB2  []float64
	vB2  []float64
	beta struct{ b1, b2, eps float64 }
}

func newAdam(lr float64, inDim, hidDim int) *adam {
	a := &adam{
		lr:  lr,
		mW1: zeroMat(hidDim, inDim), vW1: zeroMat(hidDim, inDim),
		mB1: make([]float64, hidDim), vB1: make([]float64, hidDim),
		mW2: zeroMat(2, hidDim), vW2: zeroMat(2, hidDim),
		mB2: make([]float64, 2), vB2: make([]float64, 2),
	}
	a.beta.b1 = 0.9
	a.beta.b2 = 0.999
	a.beta.eps = 1e-8
	return a
}

func (a *adam) stepMat(w, g, m, v [][]float64) {
	for i := range w {
		for j := range w[i] {
			m[i][j] = a.beta.b1*m[i][j] + (1-a.beta.b1)*g[i][j]
			v[i][j] = a.beta.b2*v[i][j] + (1-a.beta.b2)*g[i][j]*g[i][j]
			mHat := m[i][j] / (1 - math.Pow(a.beta.b1, a.t))
			vHat := v[i][j] / (1 - math.Pow(a.beta.b2, a.t))
			w[i][j] -= a.lr * mHat / (math.Sqrt(vHat) + a.beta.eps)
		}
	}
}

func (a *adam) stepVec(w, g, m, v []float64) {
	for i := range w {
		m[i] = a.beta.b1*m[i] + (1-a.beta.b1)*g[i]
		v[i] = a.beta.b2*v[i] + (1-a.beta.b2)*g[i]*g[i]
		mHat := m[i] / (1 - math.Pow(a.beta.b1, a.t))
		vHat := v[i] / (1 - math.Pow(a.beta.b2, a.t))
		w[i] -= a.lr * mHat / (math.Sqrt(vHat) + a.beta.eps)
	}
}

func (n *mlp) fit(x [][]float64, y []int) error {
	if len(x) == 0 {
		return fmt.Errorf("cannot fit on empty feature matrix")
	}
	inDim := len(x[0])
	n.w1 = heMat(n.rng, n.hidDim, inDim)
	n.b1 = make([]float64, n.hidDim)
	n.w2 = heMat(n.rng, 2, n.hidDim)
	n.b2 = make([]float64, 2)

	// held-out split for early stopping
	idx := n.rng.Perm(len(x))
	nVal := int(float64(len(x)) * n.valFrac)
	valIdx := idx[:nVal]
	trainIdx := idx[nVal:]

	opt := newAdam(n.lr, inDim, n.hidDim)
	bestLoss := math.MaxFloat64
	stale := 0
	for epoch := 0; epoch < n.maxEpochs; epoch++ {
		n.rng.Shuffle(len(trainIdx), func(i, j int) {
			trainIdx[i], trainIdx[j] = trainIdx[j], trainIdx[i]
		})
		epochLoss := buffer.NewStats()
		for start := 0; start < len(trainIdx); start += n.batchSize {
			end := start + n.batchSize
			if end > len(trainIdx) {
				end = len(trainIdx)
			}
			loss := n.trainBatch(x, y, trainIdx[start:end], opt)
			epochLoss.Push(loss)
		}

		if len(valIdx) == 0 {
			log.Debug().
				Int("epoch", epoch).
				Float64("train_loss", epochLoss.Avg()).
				Msg("epoch complete")
			continue
		}

		valLoss, scores := n.validate(x, y, valIdx)
		log.Debug().
			Int("epoch", epoch).
			Float64("train_loss", epochLoss.Avg()).
			Float64("valid_loss", valLoss).
			Float64("valid_precision", scores.Precision).
			Float64("valid_recall", scores.Recall).
			Float64("valid_f1", scores.F1).
			Msg("epoch complete")

		if valLoss < bestLoss-1e-4 {
			bestLoss = valLoss
			stale = 0
		} else {
			stale++
			if stale >= n.patience {
				log.Debug().Int("epoch", epoch).Msg("early stopping")
				break
			}
		}
	}
	return nil
}

// trainBatch accumulates the batch gradients, clips them by norm and
// applies one Adam step. Returns the mean batch loss.
func (n *mlp) trainBatch(x [][]float64, y []int, batch []int, opt *adam) float64 {
	inDim := len(x[0])
	gw1 := zeroMat(n.hidDim, inDim)
	gb1 := make([]float64, n.hidDim)
	gw2 := zeroMat(2, n.hidDim)
	gb2 := make([]float64, 2)

	keep := 1 - n.dropout
	loss := 0.0
	for _, i := range batch {
		// forward
		a1 := dotMat(n.w1, x[i])
		for j := range a1 {
			a1[j] += n.b1[j]
		}
		h := make([]float64, n.hidDim)
		mask := make([]float64, n.hidDim)
		for j := range a1 {
			if a1[j] > 0 {
				h[j] = a1[j]
			}
			if n.rng.Float64() < keep {
				mask[j] = 1 / keep
			}
			h[j] *= mask[j]
		}
		z := dotMat(n.w2, h)
		for j := range z {
			z[j] += n.b2[j]
		}
		p := softmax(z)
		loss += -n.weights[y[i]] * math.Log(p[y[i]]+1e-12)

		// backward
		dz := []float64{p[0], p[1]}
		dz[y[i]] -= 1
		dz[0] *= n.weights[y[i]]
		dz[1] *= n.weights[y[i]]
		for j := range gw2 {
			for k := range gw2[j] {
				gw2[j][k] += dz[j] * h[k]
			}
			gb2[j] += dz[j]
		}
		dh := dotMat(transpose(n.w2), dz)
		for j := range dh {
			dh[j] *= mask[j]
			if a1[j] <= 0 {
				dh[j] = 0
			}
		}
		for j := range gw1 {
			for k := range gw1[j] {
				gw1[j][k] += dh[j] * x[i][k]
			}
			gb1[j] += dh[j]
		}
	}

	size := float64(len(batch))
	scaleMat(gw1, 1/size)
	scaleVec(gb1, 1/size)
	scaleMat(gw2, 1/size)
	scaleVec(gb2, 1/size)

	ClipMatByNorm(gw1, n.clipNorm)
	ClipVecByNorm(gb1, n.clipNorm)
	ClipMatByNorm(gw2, n.clipNorm)
	ClipVecByNorm(gb2, n.clipNorm)

	opt.t++
	opt.stepMat(n.w1, gw1, opt.mW1, opt.vW1)
	opt.stepVec(n.b1, gb1, opt.mB1, opt.vB1)
	opt.stepMat(n.w2, gw2, opt.mW2, opt.vW2)
	opt.stepVec(n.b2, gb2, opt.mB2, opt.vB2)
	return loss / size
}

func (n *mlp) validate(x [][]float64, y []int, valIdx []int) (float64, Scores) {
	loss := 0.0
	targets := make([]int, len(valIdx))
	predictions := make([]int, len(valIdx))
	for k, i := range valIdx {
		p := n.forward(x[i])
		loss += -n.weights[y[i]] * math.Log(p[y[i]]+1e-12)
		targets[k] = y[i]
		if p[1] > p[0] {
			predictions[k] = 1
		}
	}
	return loss / float64(len(valIdx)), Evaluate(targets, predictions)
}

// forward runs inference without dropout.
func (n *mlp) forward(x []float64) []float64 {
	a1 := dotMat(n.w1, x)
	for j := range a1 {
		a1[j] += n.b1[j]
		if a1[j] < 0 {
			a1[j] = 0
		}
	}
	z := dotMat(n.w2, a1)
	for j := range z {
		z[j] += n.b2[j]
	}
	return softmax(z)
}

func (n *mlp) predict(x [][]float64) ([]int, error) {
	if n.w1 == nil {
		return nil, fmt.Errorf("classifier is not fitted")
	}
	predictions := make([]int, len(x))
	for i, row := range x {
		p := n.forward(row)
		if p[1] > p[0] {
			predictions[i] = 1
		}
	}
	return predictions, nil
}

func softmax(z []float64) []float64 {
	max := z[0]
	for _, v := range z[1:] {
		if v > max {
			max = v
		}
	}
	sum := 0.0
	p := make([]float64, len(z))
	for i, v := range z {
		p[i] = math.Exp(v - max)
		sum += p[i]
	}
	for i := range p {
		p[i] /= sum
	}
	return p
}

func scaleMat(m [][]float64, s float64) {
	for i := range m {
		for j := range m[i] {
			m[i][j] *= s
		}
	}
}

func scaleVec(v []float64, s float64) {
	for i := range v {
		v[i] *= s
	}
}
