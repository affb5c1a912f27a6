package data

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/drakos74/phone-probe/internal/buffer"
	"github.com/drakos74/phone-probe/internal/concurrent"
	"github.com/drakos74/phone-probe/internal/phones"
)

type extraction struct {
	feats   [][]float64
	targets []int
	err     error
}

// Extract loads one utterance and produces its context-expanded feature
// rows together with the aligned binary frame targets.
func Extract(utterance Utterance, step float64, contextSize int, targets phones.Set) ([][]float64, []int, error) {
	feats, err := LoadFeatures(utterance.FeatsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("could not extract %s: %w", utterance.URI, err)
	}
	feats = AddContext(feats, contextSize)

	segments, err := ReadSegments(utterance.PhonesPath)
	if err != nil {
		return nil, nil, fmt.Errorf("could not extract %s: %w", utterance.URI, err)
	}
	timeline := Support(segments, targets)
	frameTargets := FrameTargets(timeline, len(feats), step)
	return feats, frameTargets, nil
}

// ExtractAll runs Extract for every utterance on a pool of workers and
// concatenates the results in utterance order. Any single failure aborts
// the whole partition.
func ExtractAll(utterances []Utterance, step float64, contextSize int, targets phones.Set, workers int) ([][]float64, []int, error) {
	if workers < 1 {
		workers = 1
	}
	if workers > len(utterances) && len(utterances) > 0 {
		workers = len(utterances)
	}

	results := make([]extraction, len(utterances))
	jobs := make(chan int, len(utterances))
	for i := range utterances {
		jobs <- i
	}
	close(jobs)

	wg := new(sync.WaitGroup)
	wg.Add(len(utterances))
	counter := concurrent.NewCounter(wg)
	for w := 0; w < workers; w++ {
		go func() {
			for i := range jobs {
				feats, frameTargets, err := Extract(utterances[i], step, contextSize, targets)
				results[i] = extraction{feats: feats, targets: frameTargets, err: err}
				counter.Track()
			}
		}()
	}
	wg.Wait()

	frameStats := buffer.NewStats()
	rows := 0
	for i := range results {
		if results[i].err != nil {
			return nil, nil, results[i].err
		}
		rows += len(results[i].feats)
		frameStats.Push(float64(len(results[i].feats)))
	}

	feats := make([][]float64, 0, rows)
	frameTargets := make([]int, 0, rows)
	for i := range results {
		feats = append(feats, results[i].feats...)
		frameTargets = append(frameTargets, results[i].targets...)
	}

	log.Debug().
		Int("utterances", counter.Get()).
		Int("frames", rows).
		Float64("avg_frames", frameStats.Avg()).
		Int("workers", workers).
		Msg("extracted features")
	return feats, frameTargets, nil
}
