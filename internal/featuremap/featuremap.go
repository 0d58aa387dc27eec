// Package featuremap exports a trained text vectorizer's vocabulary as the
// feature map consumed by the on-device classifier.
package featuremap

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// HeuristicFeatureCount is the number of hand-written features the
// classifier appends after the vocabulary features.
const HeuristicFeatureCount = 23

// ErrNoVocabulary is returned when the vectorizer export has no vocabulary.
var ErrNoVocabulary = errors.New("vectorizer does not expose a vocabulary_")

// FeatureMap is the exported document.
type FeatureMap struct {
	Vocab                 map[string]int `json:"vocab"`
	HeuristicFeatureCount int            `json:"heuristicFeatureCount"`
}

type vectorizerExport struct {
	Vocabulary map[string]int `json:"vocabulary_"`
}

// Load reads a JSON vectorizer export carrying a "vocabulary_" object that
// maps terms to feature indices.
func Load(r io.Reader) (*FeatureMap, error) {
	var export vectorizerExport
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return nil, fmt.Errorf("failed to decode vectorizer: %w", err)
	}
	if export.Vocabulary == nil {
		return nil, ErrNoVocabulary
	}

	return &FeatureMap{
		Vocab:                 export.Vocabulary,
		HeuristicFeatureCount: HeuristicFeatureCount,
	}, nil
}

// Encode writes the feature map as JSON. Non-ASCII terms are written as-is.
func (m *FeatureMap) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("failed to encode feature map: %w", err)
	}
	return nil
}

// Export loads the vectorizer at src and writes its feature map to dst,
// creating dst's parent directories. It returns the number of terms written.
func Export(src, dst string) (int, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	m, err := Load(in)
	if err != nil {
		return 0, fmt.Errorf("failed to load %s: %w", src, err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return 0, err
	}
	if err := m.Encode(out); err != nil {
		out.Close()
		return 0, err
	}
	if err := out.Close(); err != nil {
		return 0, err
	}

	return len(m.Vocab), nil
}
