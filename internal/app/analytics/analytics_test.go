package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/varun021/Health-Tracker/internal/app/ds"
)

func submission(day int, score float64, category string, diseaseID uint, diseaseName string) ds.Submission {
	id := diseaseID
	return ds.Submission{
		SeverityScore:       score,
		SeverityCategory:    category,
		PrimaryPredictionID: &id,
		PrimaryPrediction:   &ds.Disease{ID: diseaseID, Name: diseaseName},
		CreatedAt:           time.Date(2026, 8, day, 12, 0, 0, 0, time.UTC),
	}
}

func TestComputeEmptyWindow(t *testing.T) {
	rep := Compute(nil)

	if rep.HealthScore != 100 {
		t.Fatalf("empty window health score = %v, want 100", rep.HealthScore)
	}
	if rep.Overview.TotalPredictions != 0 {
		t.Fatalf("empty window total = %d, want 0", rep.Overview.TotalPredictions)
	}
	if math.IsNaN(rep.Overview.AvgSeverity) || math.IsNaN(rep.HealthScore) {
		t.Fatal("empty window produced NaN")
	}
	if rep.Trend == nil || rep.Diseases == nil || rep.Symptoms == nil {
		t.Fatal("empty window slices should be non-nil")
	}
}

func TestComputeOverview(t *testing.T) {
	subs := []ds.Submission{
		submission(1, 20, ds.SeverityNormal, 1, "Common Cold"),
		submission(2, 50, ds.SeverityModerate, 1, "Common Cold"),
		submission(3, 80, ds.SeverityRisky, 2, "Malaria"),
	}

	rep := Compute(subs)
	ov := rep.Overview

	if ov.TotalPredictions != 3 {
		t.Fatalf("total = %d, want 3", ov.TotalPredictions)
	}
	if ov.AvgSeverity != 50 {
		t.Fatalf("avg = %v, want 50", ov.AvgSeverity)
	}
	if ov.MinSeverity != 20 || ov.MaxSeverity != 80 {
		t.Fatalf("min/max = %v/%v, want 20/80", ov.MinSeverity, ov.MaxSeverity)
	}
	if ov.NormalCases != 1 || ov.ModerateCases != 1 || ov.RiskyCases != 1 {
		t.Fatalf("case counts = %d/%d/%d", ov.NormalCases, ov.ModerateCases, ov.RiskyCases)
	}
	if ov.MostCommon != "Common Cold" {
		t.Fatalf("most common = %q, want Common Cold", ov.MostCommon)
	}

	// 100 - 0.6*50 - 40*(1/3) = 56.67
	if math.Abs(rep.HealthScore-56.67) > 0.01 {
		t.Fatalf("health score = %v, want 56.67", rep.HealthScore)
	}

	if len(rep.Trend) != 3 {
		t.Fatalf("trend buckets = %d, want 3", len(rep.Trend))
	}
	for i := 1; i < len(rep.Trend); i++ {
		if rep.Trend[i-1].Date >= rep.Trend[i].Date {
			t.Fatalf("trend not sorted: %v", rep.Trend)
		}
	}
}

func TestMostCommonTieGoesToMostRecent(t *testing.T) {
	subs := []ds.Submission{
		submission(1, 40, ds.SeverityModerate, 1, "Common Cold"),
		submission(5, 40, ds.SeverityModerate, 2, "Malaria"),
	}
	rep := Compute(subs)
	if rep.Overview.MostCommon != "Malaria" {
		t.Fatalf("tie should go to most recent, got %q", rep.Overview.MostCommon)
	}
}

func TestHealthScoreMonotonic(t *testing.T) {
	base := HealthScore(20, 0)
	worseSeverity := HealthScore(60, 0)
	worseRisk := HealthScore(20, 0.5)

	if worseSeverity >= base {
		t.Fatalf("higher severity should lower score: %v vs %v", worseSeverity, base)
	}
	if worseRisk >= base {
		t.Fatalf("more risky cases should lower score: %v vs %v", worseRisk, base)
	}
	if HealthScore(200, 1) < 0 || HealthScore(0, 0) > 100 {
		t.Fatal("health score not clamped to [0,100]")
	}
}

func TestComputeSymptomStats(t *testing.T) {
	sub := submission(1, 40, ds.SeverityModerate, 1, "Common Cold")
	sub.Symptoms = []ds.SubmissionSymptom{
		{SymptomID: 10, Severity: 6, Symptom: ds.Symptom{ID: 10, Name: "Fever"}},
		{SymptomID: 20, Severity: 4, Symptom: ds.Symptom{ID: 20, Name: "Cough"}},
	}
	other := submission(2, 40, ds.SeverityModerate, 1, "Common Cold")
	other.Symptoms = []ds.SubmissionSymptom{
		{SymptomID: 10, Severity: 8, Symptom: ds.Symptom{ID: 10, Name: "Fever"}},
	}

	rep := Compute([]ds.Submission{sub, other})

	if len(rep.Symptoms) != 2 {
		t.Fatalf("symptom stats = %d, want 2", len(rep.Symptoms))
	}
	top := rep.Symptoms[0]
	if top.Name != "Fever" || top.Count != 2 {
		t.Fatalf("top symptom = %+v, want Fever x2", top)
	}
	if top.AvgSeverity != 7 {
		t.Fatalf("fever avg severity = %v, want 7", top.AvgSeverity)
	}
}
