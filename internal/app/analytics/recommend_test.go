package analytics

import (
	"testing"
	"time"

	"github.com/varun021/Health-Tracker/internal/app/ds"
)

func hasCategory(advice []Advice, category string) bool {
	for _, a := range advice {
		if a.Category == category {
			return true
		}
	}
	return false
}

func lifestyleSub(day int, sleep, stress int) ds.Submission {
	return ds.Submission{
		SleepHours:  &sleep,
		StressLevel: &stress,
		CreatedAt:   time.Date(2026, 8, day, 12, 0, 0, 0, time.UTC),
	}
}

func TestRecommendationsEmpty(t *testing.T) {
	if advice := LifestyleRecommendations(nil); len(advice) != 0 {
		t.Fatalf("no submissions should yield no advice, got %v", advice)
	}
}

func TestRecommendationsPersistentSleepAndStress(t *testing.T) {
	subs := []ds.Submission{
		lifestyleSub(1, 4, 9),
		lifestyleSub(2, 5, 8),
		lifestyleSub(3, 8, 3),
	}

	advice := LifestyleRecommendations(subs)
	if !hasCategory(advice, "sleep") {
		t.Fatal("persistent short sleep should be flagged")
	}
	if !hasCategory(advice, "stress") {
		t.Fatal("persistent high stress should be flagged")
	}
}

func TestRecommendationsSingleDataPointNotPersistent(t *testing.T) {
	subs := []ds.Submission{lifestyleSub(1, 4, 9)}

	advice := LifestyleRecommendations(subs)
	if hasCategory(advice, "sleep") || hasCategory(advice, "stress") {
		t.Fatalf("one data point is not a pattern: %v", advice)
	}
}

func TestRecommendationsPointInTimeFlags(t *testing.T) {
	older := ds.Submission{
		Smoking:   true,
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	bmi := 27.5
	latest := ds.Submission{
		Alcohol:           true,
		ExerciseFrequency: "rarely",
		BMI:               &bmi,
		CreatedAt:         time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC),
	}

	advice := LifestyleRecommendations([]ds.Submission{older, latest})

	// Smoking was only reported in the older submission.
	if hasCategory(advice, "smoking") {
		t.Fatalf("point-in-time flags must come from the latest submission: %v", advice)
	}
	if !hasCategory(advice, "alcohol") {
		t.Fatal("alcohol flag missing")
	}
	if !hasCategory(advice, "exercise") {
		t.Fatal("exercise flag missing")
	}
	if !hasCategory(advice, "weight") {
		t.Fatal("overweight BMI flag missing")
	}
}

func TestRecommendationsUnderweight(t *testing.T) {
	bmi := 17.0
	sub := ds.Submission{BMI: &bmi, CreatedAt: time.Now()}

	advice := LifestyleRecommendations([]ds.Submission{sub})
	if !hasCategory(advice, "weight") {
		t.Fatal("underweight BMI flag missing")
	}
}
