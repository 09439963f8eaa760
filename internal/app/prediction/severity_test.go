package prediction

import (
	"math"
	"strings"
	"testing"

	"github.com/varun021/Health-Tracker/internal/app/ds"
)

func TestSeverityScore(t *testing.T) {
	obs := []Observation{
		{SymptomID: 1, Severity: 5},
		{SymptomID: 2, Severity: 5},
	}
	// avg 5 -> 50*0.3 = 15, confidence 50*0.7 = 35, total 50
	got := SeverityScore(obs, 50)
	if math.Abs(got-50) > 1e-9 {
		t.Fatalf("severity score = %v, want 50", got)
	}
}

func TestSeverityScoreClamped(t *testing.T) {
	obs := []Observation{{SymptomID: 1, Severity: 10}}
	if got := SeverityScore(obs, 100); got > 100 {
		t.Fatalf("score exceeded 100: %v", got)
	}
	if got := SeverityScore(nil, 0); got != 0 {
		t.Fatalf("empty input should score 0, got %v", got)
	}
}

func TestSeverityCategoryBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0, ds.SeverityNormal},
		{29.9, ds.SeverityNormal},
		{30, ds.SeverityModerate},
		{50, ds.SeverityModerate},
		{70, ds.SeverityModerate},
		{70.1, ds.SeverityRisky},
		{100, ds.SeverityRisky},
	}
	for _, tc := range cases {
		if got := SeverityCategory(tc.score); got != tc.want {
			t.Fatalf("category(%v) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestNextStepsMentionsDisease(t *testing.T) {
	steps := NextSteps(ds.SeverityRisky, "Malaria")
	if !strings.Contains(steps, "Malaria") {
		t.Fatalf("risky next steps should name the disease: %q", steps)
	}
}
