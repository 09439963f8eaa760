package prediction

import (
	"errors"
	"testing"
)

func TestVocabularyOrderIndependent(t *testing.T) {
	a := NewVocabulary([]uint{3, 1, 2})
	b := NewVocabulary([]uint{1, 2, 3})

	if a.Version() != b.Version() {
		t.Fatalf("same id set produced different versions: %s vs %s", a.Version(), b.Version())
	}
	ids := a.IDs()
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("ids not ascending: %v", ids)
		}
	}
}

func TestVocabularyVersionChangesWithSet(t *testing.T) {
	a := NewVocabulary([]uint{1, 2, 3})
	b := NewVocabulary([]uint{1, 2, 3, 4})

	if a.Version() == b.Version() {
		t.Fatalf("different id sets share version %s", a.Version())
	}
}

func TestEncode(t *testing.T) {
	v := NewVocabulary([]uint{10, 20, 30})

	features, err := v.Encode([]Observation{
		{SymptomID: 20, Severity: 7},
		{SymptomID: 10, Severity: 3},
	})
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	want := []float64{3, 7, 0}
	for i := range want {
		if features[i] != want[i] {
			t.Fatalf("feature[%d] = %v, want %v", i, features[i], want[i])
		}
	}
}

func TestEncodeUnknownSymptom(t *testing.T) {
	v := NewVocabulary([]uint{1, 2})

	_, err := v.Encode([]Observation{{SymptomID: 99, Severity: 5}})
	if err == nil {
		t.Fatal("expected error for unknown symptom id")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if verr.Field != "symptoms" {
		t.Fatalf("unexpected field %q", verr.Field)
	}
}
