package prediction

import (
	"errors"
	"math"
	"testing"
)

func TestCombineWeights(t *testing.T) {
	ranked, err := Combine(
		map[uint]float64{1: 100},
		map[uint]float64{1: 50},
	)
	if err != nil {
		t.Fatalf("combine failed: %v", err)
	}
	if len(ranked) != 1 {
		t.Fatalf("expected 1 prediction, got %d", len(ranked))
	}
	// 100*0.6 + 50*0.4 = 80
	if math.Abs(ranked[0].Confidence-80) > 1e-9 {
		t.Fatalf("confidence = %v, want 80", ranked[0].Confidence)
	}
}

func TestCombineRanksDescending(t *testing.T) {
	ranked, err := Combine(
		map[uint]float64{1: 20, 2: 90, 3: 50},
		map[uint]float64{1: 20, 2: 90, 3: 50},
	)
	if err != nil {
		t.Fatalf("combine failed: %v", err)
	}
	wantOrder := []uint{2, 3, 1}
	for i, want := range wantOrder {
		if ranked[i].DiseaseID != want {
			t.Fatalf("rank %d: disease %d, want %d", i+1, ranked[i].DiseaseID, want)
		}
		if ranked[i].Rank != i+1 {
			t.Fatalf("rank field = %d, want %d", ranked[i].Rank, i+1)
		}
	}
}

func TestCombineTopK(t *testing.T) {
	scores := map[uint]float64{1: 10, 2: 20, 3: 30, 4: 40, 5: 50}
	ranked, err := Combine(scores, scores)
	if err != nil {
		t.Fatalf("combine failed: %v", err)
	}
	if len(ranked) != TopK {
		t.Fatalf("expected top %d, got %d", TopK, len(ranked))
	}
	if ranked[0].DiseaseID != 5 {
		t.Fatalf("best disease = %d, want 5", ranked[0].DiseaseID)
	}
}

func TestCombineMissingPathContributesZero(t *testing.T) {
	// Disease 2 is known only to the rules; its ML share is 0.
	ranked, err := Combine(
		map[uint]float64{1: 50},
		map[uint]float64{1: 50, 2: 100},
	)
	if err != nil {
		t.Fatalf("combine failed: %v", err)
	}
	byID := map[uint]float64{}
	for _, r := range ranked {
		byID[r.DiseaseID] = r.Confidence
	}
	if math.Abs(byID[1]-50) > 1e-9 {
		t.Fatalf("disease 1 = %v, want 50", byID[1])
	}
	if math.Abs(byID[2]-40) > 1e-9 {
		t.Fatalf("disease 2 = %v, want 40", byID[2])
	}
}

func TestCombineTieBreakByID(t *testing.T) {
	ranked, err := Combine(nil, map[uint]float64{7: 60, 3: 60})
	if err != nil {
		t.Fatalf("combine failed: %v", err)
	}
	if ranked[0].DiseaseID != 3 || ranked[1].DiseaseID != 7 {
		t.Fatalf("tie not broken by ascending id: %v", ranked)
	}
}

func TestCombineEmpty(t *testing.T) {
	_, err := Combine(nil, nil)
	if !errors.Is(err, ErrNoPredictions) {
		t.Fatalf("expected ErrNoPredictions, got %v", err)
	}
}
