package classifier

import (
	"math"
	"math/rand"
)

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

func dotVec(a, b []float64) float64 {
	res := 0.0
	for i := range a {
		res += a[i] * b[i]
	}
	return res
}

func dotMat(a [][]float64, b []float64) []float64 {
	res := make([]float64, len(a))
	for i := range a {
		for j := range a[i] {
			res[i] += a[i][j] * b[j]
		}
	}
	return res
}

func transpose(mat [][]float64) [][]float64 {
	rows := len(mat)
	cols := len(mat[0])
	transposed := make([][]float64, cols)
	for j := range transposed {
		transposed[j] = make([]float64, rows)
		for i := range transposed[j] {
			transposed[j][i] = mat[i][j]
		}
	}
	return transposed
}

func zeroMat(rows, cols int) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}
	return m
}

// heMat initialises a weight matrix with He-scaled gaussian noise.
func heMat(rng *rand.Rand, n, m int) [][]float64 {
	w := make([][]float64, n)
	scale := math.Sqrt(2.0 / float64(m))
	for i := range w {
		w[i] = make([]float64, m)
		for j := range w[i] {
			w[i][j] = rng.NormFloat64() * scale
		}
	}
	return w
}

// ClipMatByNorm clips gradients based on their global L2 norm.
func ClipMatByNorm(gradients [][]float64, maxNorm float64) {
	totalNorm := 0.0
	for _, grad := range gradients {
		for _, val := range grad {
			totalNorm += val * val
		}
	}
	totalNorm = math.Sqrt(totalNorm)

	if totalNorm > maxNorm {
		scale := maxNorm / totalNorm
		for _, grad := range gradients {
			for i := range grad {
				grad[i] *= scale
			}
		}
	}
}

// ClipVecByNorm clips gradients based on their global L2 norm.
func ClipVecByNorm(gradients []float64, maxNorm float64) {
	totalNorm := 0.0
	for _, grad := range gradients {
		totalNorm += grad * grad
	}
	totalNorm = math.Sqrt(totalNorm)

	if totalNorm > maxNorm {
		scale := maxNorm / totalNorm
		for i := range gradients {
			gradients[i] *= scale
		}
	}
}
