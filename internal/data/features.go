package data

import (
	"fmt"
	"os"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

// LoadFeatures reads a (frames, dim) feature array from a NumPy .npy file.
func LoadFeatures(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open features %s: %w", path, err)
	}
	defer f.Close()

	var m mat.Dense
	if err := npyio.Read(f, &m); err != nil {
		return nil, fmt.Errorf("could not read features %s: %w", path, err)
	}
	frames, _ := m.Dims()
	feats := make([][]float64, frames)
	for i := 0; i < frames; i++ {
		feats[i] = mat.Row(nil, i, &m)
	}
	return feats, nil
}
