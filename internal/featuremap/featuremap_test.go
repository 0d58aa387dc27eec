package featuremap

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	m, err := Load(strings.NewReader(`{"vocabulary_": {"otp": 0, "bank": 1, "인증": 2}, "ngram_range": [1, 2]}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := &FeatureMap{
		Vocab:                 map[string]int{"otp": 0, "bank": 1, "인증": 2},
		HeuristicFeatureCount: HeuristicFeatureCount,
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingVocabulary(t *testing.T) {
	_, err := Load(strings.NewReader(`{"stop_words": null}`))
	if !errors.Is(err, ErrNoVocabulary) {
		t.Errorf("err = %v, want ErrNoVocabulary", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	if _, err := Load(strings.NewReader(`{"vocabulary_": [`)); err == nil {
		t.Error("expected error for malformed input")
	}
}

func TestEncode(t *testing.T) {
	m := &FeatureMap{Vocab: map[string]int{"<a&b>": 0, "인증": 1}, HeuristicFeatureCount: 23}

	var buf bytes.Buffer
	if err := m.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"<a&b>":0`, `"인증":1`, `"heuristicFeatureCount":23`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %s missing %s", out, want)
		}
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "vectorizer.json")
	dst := filepath.Join(dir, "assets", "nested", "feature_map.json")
	if err := os.WriteFile(src, []byte(`{"vocabulary_": {"a": 0, "b": 1}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	n, err := Export(src, dst)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if n != 2 {
		t.Errorf("terms = %d, want 2", n)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var got FeatureMap
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	want := FeatureMap{Vocab: map[string]int{"a": 0, "b": 1}, HeuristicFeatureCount: 23}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestExportMissingSource(t *testing.T) {
	dir := t.TempDir()
	_, err := Export(filepath.Join(dir, "missing.json"), filepath.Join(dir, "out.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist", err)
	}
}
