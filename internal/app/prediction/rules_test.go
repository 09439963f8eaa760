package prediction

import (
	"math"
	"testing"

	"github.com/varun021/Health-Tracker/internal/app/ds"
)

func ruleFixture() *RuleMatcher {
	return NewRuleMatcher([]ds.DiseaseSymptom{
		{DiseaseID: 1, SymptomID: 10, Weight: 10},
		{DiseaseID: 1, SymptomID: 20, Weight: 10},
		{DiseaseID: 2, SymptomID: 30, Weight: 5},
	})
}

func TestRuleScoreFullMatch(t *testing.T) {
	rm := ruleFixture()

	scores := rm.Score([]Observation{
		{SymptomID: 10, Severity: 10},
		{SymptomID: 20, Severity: 10},
	}, nil)

	if math.Abs(scores[1]-100) > 1e-9 {
		t.Fatalf("full max-severity match should score 100, got %v", scores[1])
	}
	if scores[2] != 0 {
		t.Fatalf("unmatched disease should score 0, got %v", scores[2])
	}
}

func TestRuleScorePartialMatch(t *testing.T) {
	rm := ruleFixture()

	scores := rm.Score([]Observation{{SymptomID: 10, Severity: 10}}, nil)

	// 1 of 2 symptoms matched: matchPct 50. Weighted severity 10 of max
	// 20: weightPct 50. Combined 50*0.4 + 50*0.6 = 50.
	if math.Abs(scores[1]-50) > 1e-9 {
		t.Fatalf("partial match = %v, want 50", scores[1])
	}
}

func TestRuleScoreSeverityScales(t *testing.T) {
	rm := ruleFixture()

	low := rm.Score([]Observation{{SymptomID: 10, Severity: 2}}, nil)
	high := rm.Score([]Observation{{SymptomID: 10, Severity: 9}}, nil)

	if low[1] >= high[1] {
		t.Fatalf("higher severity should not lower the score: %v vs %v", low[1], high[1])
	}
}

func TestRuleScoreHistoryBonus(t *testing.T) {
	rm := ruleFixture()
	obs := []Observation{{SymptomID: 10, Severity: 10}}

	base := rm.Score(obs, nil)[1]
	boosted := rm.Score(obs, map[uint]int{1: 2})[1]
	if math.Abs(boosted-(base+6)) > 1e-9 {
		t.Fatalf("two past hits should add 6, got %v from base %v", boosted, base)
	}

	capped := rm.Score(obs, map[uint]int{1: 50})[1]
	if math.Abs(capped-(base+HistoryBonusCap)) > 1e-9 {
		t.Fatalf("bonus should cap at %v, got %v from base %v", HistoryBonusCap, capped, base)
	}
}

func TestRuleScoreNoBonusWithoutMatch(t *testing.T) {
	rm := ruleFixture()

	// Disease 2 has no matching symptoms; history alone must not revive it.
	scores := rm.Score([]Observation{{SymptomID: 10, Severity: 5}}, map[uint]int{2: 5})
	if scores[2] != 0 {
		t.Fatalf("history bonus applied to zero-confidence disease: %v", scores[2])
	}
}

func TestRuleScoreBonusClampedAt100(t *testing.T) {
	rm := ruleFixture()

	scores := rm.Score([]Observation{
		{SymptomID: 10, Severity: 10},
		{SymptomID: 20, Severity: 10},
	}, map[uint]int{1: 5})
	if scores[1] > 100 {
		t.Fatalf("score exceeded 100: %v", scores[1])
	}
}

func TestRuleScoreDeterministic(t *testing.T) {
	rm := ruleFixture()
	obs := []Observation{
		{SymptomID: 10, Severity: 7},
		{SymptomID: 30, Severity: 4},
	}

	first := rm.Score(obs, nil)
	for i := 0; i < 10; i++ {
		again := rm.Score(obs, nil)
		for id, v := range first {
			if again[id] != v {
				t.Fatalf("run %d: disease %d scored %v, first run %v", i, id, again[id], v)
			}
		}
	}
}
