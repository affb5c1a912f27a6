package classifier

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// MaxComponents is the most components the reduction stage retains.
const MaxComponents = 400

// svdReducer is a truncated singular value decomposition reduction stage.
type svdReducer struct {
	components int
	v          *mat.Dense
}

func newSVDReducer(featDim int) *svdReducer {
	components := featDim
	if components > MaxComponents {
		components = MaxComponents
	}
	return &svdReducer{components: components}
}

func (s *svdReducer) fit(x [][]float64) error {
	if len(x) == 0 || len(x[0]) == 0 {
		return fmt.Errorf("cannot fit reduction on empty feature matrix")
	}
	m := denseOf(x)
	var svd mat.SVD
	if ok := svd.Factorize(m, mat.SVDThin); !ok {
		return fmt.Errorf("svd factorization did not converge")
	}
	var v mat.Dense
	svd.VTo(&v)

	rows, found := v.Dims()
	k := s.components
	if k > found {
		k = found
	}
	s.v = v.Slice(0, rows, 0, k).(*mat.Dense)
	return nil
}

func (s *svdReducer) transform(x [][]float64) [][]float64 {
	out := make([][]float64, len(x))
	_, k := s.v.Dims()
	for i, row := range x {
		reduced := make([]float64, k)
		vec := mat.NewVecDense(len(row), row)
		res := mat.NewVecDense(k, reduced)
		res.MulVec(s.v.T(), vec)
		out[i] = reduced
	}
	return out
}

func denseOf(x [][]float64) *mat.Dense {
	rows := len(x)
	cols := len(x[0])
	flat := make([]float64, 0, rows*cols)
	for _, row := range x {
		flat = append(flat, row...)
	}
	return mat.NewDense(rows, cols, flat)
}
