package classifier

import (
	"fmt"
	"strings"
)

// Kind selects the classifier variant sitting behind the reduction stage.
type Kind string

const (
	// Linear is a logistic regression probe.
	Linear Kind = "linear"
	// MaxMargin is a linear max-margin probe trained with SGD on the hinge loss.
	MaxMargin Kind = "max-margin"
	// Neural is a feed-forward network probe.
	Neural Kind = "neural"
)

var kinds = []Kind{Linear, MaxMargin, Neural}

// ParseKind resolves the given name to a known classifier kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range kinds {
		if Kind(name) == k {
			return k, nil
		}
	}
	return "", fmt.Errorf("unrecognized classifier %q, valid classifiers: %s", name, kindNames())
}

func kindNames() string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
