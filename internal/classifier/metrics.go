package classifier

// Scores bundles the binary evaluation metrics for the positive class.
type Scores struct {
	Accuracy  float64
	Precision float64
	Recall    float64
	F1        float64
}

// Evaluate computes accuracy, precision, recall and F1 with 1 as the
// positive class. Degenerate denominators score 0.
func Evaluate(targets, predictions []int) Scores {
	var tp, fp, fn, correct float64
	for i := range targets {
		if predictions[i] == targets[i] {
			correct++
		}
		switch {
		case predictions[i] == 1 && targets[i] == 1:
			tp++
		case predictions[i] == 1 && targets[i] == 0:
			fp++
		case predictions[i] == 0 && targets[i] == 1:
			fn++
		}
	}

	s := Scores{}
	if len(targets) > 0 {
		s.Accuracy = correct / float64(len(targets))
	}
	if tp+fp > 0 {
		s.Precision = tp / (tp + fp)
	}
	if tp+fn > 0 {
		s.Recall = tp / (tp + fn)
	}
	if s.Precision+s.Recall > 0 {
		s.F1 = 2 * s.Precision * s.Recall / (s.Precision + s.Recall)
	}
	return s
}

// BalancedWeights computes per-class weights inversely proportional to the
// empirical class frequency, renormalised to sum to 1, so the minority
// class is up-weighted.
func BalancedWeights(targets []int) []float64 {
	posFreq := 0.0
	for _, t := range targets {
		posFreq += float64(t)
	}
	posFreq /= float64(len(targets))

	weights := []float64{1 / (1 - posFreq), 1 / posFreq}
	sum := weights[0] + weights[1]
	weights[0] /= sum
	weights[1] /= sum
	return weights
}
