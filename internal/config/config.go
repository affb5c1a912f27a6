package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/drakos74/phone-probe/internal/classifier"
	"github.com/drakos74/phone-probe/internal/phones"
)

const (
	defaultBatchSize  = 128
	defaultClassifier = string(classifier.Linear)
	defaultTask       = string(phones.SpeechActivity)
)

// Partition points to the files making up one named dataset partition.
type Partition struct {
	Name      string
	URIs      string
	FeatsDir  string
	PhonesDir string
	// Step is the frame step in seconds.
	Step float64
}

// Config is the parsed probe task definition.
// Loading it performs no I/O beyond reading the config document itself.
type Config struct {
	BatchSize   int
	ContextSize int
	Classifier  classifier.Kind
	Task        phones.Task
	Train       []Partition
	Test        []Partition
}

type partitionSpec struct {
	URIs   string  `yaml:"uris"`
	Feats  string  `yaml:"feats"`
	Phones string  `yaml:"phones"`
	Step   float64 `yaml:"step"`
}

type document struct {
	BatchSize   *int                     `yaml:"batch_size"`
	ContextSize *int                     `yaml:"context_size"`
	Classifier  *string                  `yaml:"classifier"`
	Task        *string                  `yaml:"task"`
	TrainData   map[string]partitionSpec `yaml:"train_data"`
	TestData    map[string]partitionSpec `yaml:"test_data"`
}

// Load parses the task configuration document at the given path.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config %s: %w", path, err)
	}
	var doc document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("could not parse config %s: %w", path, err)
	}

	cfg := &Config{
		BatchSize: defaultBatchSize,
	}
	if doc.BatchSize != nil {
		cfg.BatchSize = *doc.BatchSize
	}
	if doc.ContextSize != nil {
		cfg.ContextSize = *doc.ContextSize
	}

	kindName := defaultClassifier
	if doc.Classifier != nil {
		kindName = *doc.Classifier
	}
	kind, err := classifier.ParseKind(kindName)
	if err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	cfg.Classifier = kind

	taskName := defaultTask
	if doc.Task != nil {
		taskName = *doc.Task
	}
	task, err := phones.ParseTask(taskName)
	if err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	cfg.Task = task

	cfg.Train = partitions(doc.TrainData)
	cfg.Test = partitions(doc.TestData)
	return cfg, nil
}

// partitions materialises the name-keyed specs into a name-sorted slice,
// so that runs iterate partitions in a stable order.
func partitions(specs map[string]partitionSpec) []Partition {
	pp := make([]Partition, 0, len(specs))
	for name, spec := range specs {
		pp = append(pp, Partition{
			Name:      name,
			URIs:      spec.URIs,
			FeatsDir:  spec.Feats,
			PhonesDir: spec.Phones,
			Step:      spec.Step,
		})
	}
	sort.Slice(pp, func(i, j int) bool {
		return pp[i].Name < pp[j].Name
	})
	return pp
}
