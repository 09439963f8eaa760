package prediction

import (
	"errors"
	"math"
	"testing"
)

func trainedFixture(t *testing.T) (*Vocabulary, *Model) {
	t.Helper()
	vocab := NewVocabulary([]uint{1, 2, 3})
	samples := []TrainingSample{
		{DiseaseID: 100, Features: []float64{10, 2, 0}},
		{DiseaseID: 200, Features: []float64{0, 10, 8}},
	}
	model, stats, err := TrainModel(vocab, samples)
	if err != nil {
		t.Fatalf("train failed: %v", err)
	}
	if stats.SamplesTrained != 2 || stats.Diseases != 2 || stats.Symptoms != 3 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	return vocab, model
}

func TestPredictProbaSumsToOne(t *testing.T) {
	_, model := trainedFixture(t)

	probs, err := model.PredictProba([]float64{9, 0, 0})
	if err != nil {
		t.Fatalf("predict failed: %v", err)
	}
	var sum float64
	for _, p := range probs {
		if p < 0 || p > 1 {
			t.Fatalf("probability out of range: %v", p)
		}
		sum += p
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Fatalf("probabilities sum to %v, want 1", sum)
	}
}

func TestPredictProbaFavorsMatchingClass(t *testing.T) {
	_, model := trainedFixture(t)

	probs, err := model.PredictProba([]float64{10, 0, 0})
	if err != nil {
		t.Fatalf("predict failed: %v", err)
	}
	if probs[100] <= probs[200] {
		t.Fatalf("expected disease 100 to dominate, got %v vs %v", probs[100], probs[200])
	}
}

func TestTrainInsufficientData(t *testing.T) {
	vocab := NewVocabulary([]uint{1, 2})
	samples := []TrainingSample{
		{DiseaseID: 100, Features: []float64{5, 5}},
	}
	_, _, err := TrainModel(vocab, samples)
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestPredictProbaFeatureLengthMismatch(t *testing.T) {
	_, model := trainedFixture(t)

	_, err := model.PredictProba([]float64{1, 2})
	if !errors.Is(err, ErrVocabularyMismatch) {
		t.Fatalf("expected ErrVocabularyMismatch, got %v", err)
	}
}

func TestModelArtifactRoundTrip(t *testing.T) {
	vocab, model := trainedFixture(t)

	blob, err := model.Marshal()
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	restored, err := UnmarshalModel(blob)
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if restored.VocabVersion() != vocab.Version() {
		t.Fatalf("vocab version lost in round trip")
	}

	features := []float64{0, 8, 9}
	want, err := model.PredictProba(features)
	if err != nil {
		t.Fatalf("predict failed: %v", err)
	}
	got, err := restored.PredictProba(features)
	if err != nil {
		t.Fatalf("restored predict failed: %v", err)
	}
	for id, p := range want {
		if math.Abs(got[id]-p) > 1e-12 {
			t.Fatalf("disease %d: restored %v, original %v", id, got[id], p)
		}
	}
}

func TestUnmarshalRejectsBadArtifact(t *testing.T) {
	if _, err := UnmarshalModel([]byte(`{"format_version": 99}`)); err == nil {
		t.Fatal("expected error for unknown format version")
	}
	if _, err := UnmarshalModel([]byte(`not json`)); err == nil {
		t.Fatal("expected error for garbage input")
	}
}

func TestModelRefSwap(t *testing.T) {
	var ref ModelRef
	if ref.Load() != nil {
		t.Fatal("fresh ref should hold no model")
	}
	_, model := trainedFixture(t)
	ref.Swap(model)
	if ref.Load() != model {
		t.Fatal("swap did not install the model")
	}
}
