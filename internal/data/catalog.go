package data

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// Utterance pairs a feature array with its phone annotation file.
type Utterance struct {
	URI        string
	FeatsPath  string
	PhonesPath string
}

// LoadUtterances resolves the URIs listed in urisFile into utterances.
// URIs missing either their feature or their phones file are dropped
// without an error, which can leave the partition empty.
func LoadUtterances(urisFile, featsDir, phonesDir string) ([]Utterance, error) {
	f, err := os.Open(urisFile)
	if err != nil {
		return nil, fmt.Errorf("could not read uris from %s: %w", urisFile, err)
	}
	defer f.Close()

	seen := make(map[string]struct{})
	utterances := make([]Utterance, 0)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		uri := strings.TrimSpace(scanner.Text())
		if uri == "" {
			continue
		}
		if _, ok := seen[uri]; ok {
			continue
		}
		seen[uri] = struct{}{}

		featsPath := filepath.Join(featsDir, uri+".npy")
		phonesPath := filepath.Join(phonesDir, uri+".lab")
		if !exists(featsPath) || !exists(phonesPath) {
			continue
		}
		utterances = append(utterances, Utterance{
			URI:        uri,
			FeatsPath:  featsPath,
			PhonesPath: phonesPath,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read uris from %s: %w", urisFile, err)
	}

	log.Info().
		Str("uris", urisFile).
		Int("found", len(utterances)).
		Int("listed", len(seen)).
		Msg("loaded utterances")
	return utterances, nil
}

// SortByURI orders the utterances by URI for reproducible row ordering.
func SortByURI(utterances []Utterance) {
	sort.Slice(utterances, func(i, j int) bool {
		return utterances[i].URI < utterances[j].URI
	})
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
