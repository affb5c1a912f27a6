package data

// AddContext expands each frame with a symmetric window of its neighbours.
// Boundary frames are padded by edge replication, so the output keeps the
// input frame count while the feature dimension grows to dim*(2*winSize+1).
func AddContext(feats [][]float64, winSize int) [][]float64 {
	if winSize <= 0 || len(feats) == 0 {
		return feats
	}
	frames := len(feats)
	dim := len(feats[0])

	padded := make([][]float64, frames+2*winSize)
	for i := range padded {
		j := i - winSize
		if j < 0 {
			j = 0
		}
		if j > frames-1 {
			j = frames - 1
		}
		padded[i] = feats[j]
	}

	width := 2*winSize + 1
	out := make([][]float64, frames)
	for i := 0; i < frames; i++ {
		row := make([]float64, 0, dim*width)
		// shifted copies ordered from lead to lag
		for offset := winSize; offset >= -winSize; offset-- {
			row = append(row, padded[i+winSize+offset]...)
		}
		out[i] = row
	}
	return out
}
