package probe

import (
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"

	"github.com/drakos74/phone-probe/internal/classifier"
	"github.com/drakos74/phone-probe/internal/config"
	"github.com/drakos74/phone-probe/internal/data"
	"github.com/drakos74/phone-probe/internal/phones"
)

// Score is one row of the evaluation report.
type Score struct {
	Train     string
	Test      string
	Accuracy  float64
	Precision float64
	Recall    float64
	F1        float64
}

// Orchestrator drives a full probe run: one classifier per training
// partition, evaluated against every test partition.
type Orchestrator struct {
	cfg     *config.Config
	workers int
}

// New creates an orchestrator for the given task configuration.
func New(cfg *config.Config, workers int) *Orchestrator {
	return &Orchestrator{
		cfg:     cfg,
		workers: workers,
	}
}

type matrix struct {
	feats   [][]float64
	targets []int
}

// Run trains and evaluates the full train × test matrix and returns one
// score per ordered (train, test) pair.
func (o *Orchestrator) Run() ([]Score, error) {
	targets := o.cfg.Task.Targets()

	log.Info().Msg("training classifiers")
	models := make(map[string]classifier.Pipeline, len(o.cfg.Train))
	for _, partition := range o.cfg.Train {
		log.Info().Str("partition", partition.Name).Msg("training classifier")
		m, err := o.extract(partition, targets, false)
		if err != nil {
			return nil, err
		}
		featDim := 0
		if len(m.feats) > 0 {
			featDim = len(m.feats[0])
		}
		log.Info().
			Str("partition", partition.Name).
			Int("frames", len(m.feats)).
			Int("dim", featDim).
			Msg("extracted training data")

		weights := classifier.BalancedWeights(m.targets)
		clf, err := classifier.New(o.cfg.Classifier, featDim, o.cfg.BatchSize, weights)
		if err != nil {
			return nil, err
		}
		log.Info().Str("partition", partition.Name).Msg("fitting")
		if err := clf.Fit(m.feats, m.targets); err != nil {
			return nil, fmt.Errorf("could not fit classifier for %s: %w", partition.Name, err)
		}
		models[partition.Name] = clf
	}

	log.Info().Msg("testing")
	testData := make(map[string]matrix, len(o.cfg.Test))
	for _, partition := range o.cfg.Test {
		m, err := o.extract(partition, targets, true)
		if err != nil {
			return nil, err
		}
		testData[partition.Name] = m
	}

	trainNames := make([]string, 0, len(models))
	for name := range models {
		trainNames = append(trainNames, name)
	}
	sort.Strings(trainNames)

	scores := make([]Score, 0, len(trainNames)*len(o.cfg.Test))
	for _, trainName := range trainNames {
		clf := models[trainName]
		for _, partition := range o.cfg.Test {
			m := testData[partition.Name]
			predictions, err := clf.Predict(m.feats)
			if err != nil {
				return nil, fmt.Errorf("could not predict %s on %s: %w", trainName, partition.Name, err)
			}
			s := classifier.Evaluate(m.targets, predictions)
			scores = append(scores, Score{
				Train:     trainName,
				Test:      partition.Name,
				Accuracy:  s.Accuracy,
				Precision: s.Precision,
				Recall:    s.Recall,
				F1:        s.F1,
			})
		}
	}
	return scores, nil
}

// extract builds the feature/target matrix for a partition. Test
// partitions are sorted by URI for reproducible row ordering.
func (o *Orchestrator) extract(partition config.Partition, targets phones.Set, test bool) (matrix, error) {
	utterances, err := data.LoadUtterances(partition.URIs, partition.FeatsDir, partition.PhonesDir)
	if err != nil {
		return matrix{}, fmt.Errorf("could not load partition %s: %w", partition.Name, err)
	}
	if test {
		data.SortByURI(utterances)
	}
	feats, frameTargets, err := data.ExtractAll(utterances, partition.Step, o.cfg.ContextSize, targets, o.workers)
	if err != nil {
		return matrix{}, fmt.Errorf("could not extract partition %s: %w", partition.Name, err)
	}
	return matrix{feats: feats, targets: frameTargets}, nil
}

// Render prints the score table.
func Render(w io.Writer, scores []Score) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"train", "test", "acc", "precision", "recall", "f1"})
	for _, s := range scores {
		table.Append([]string{
			s.Train,
			s.Test,
			fmt.Sprintf("%.4f", s.Accuracy),
			fmt.Sprintf("%.4f", s.Precision),
			fmt.Sprintf("%.4f", s.Recall),
			fmt.Sprintf("%.4f", s.F1),
		})
	}
	table.Render()
}
