package report

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/varun021/Health-Tracker/internal/app/ds"
)

func exportFixture() []ds.Submission {
	diseaseID := uint(2)
	return []ds.Submission{
		{
			ID:                  1,
			Name:                "Alex",
			Age:                 30,
			Gender:              "M",
			SeverityScore:       62.5,
			SeverityCategory:    ds.SeverityModerate,
			PrimaryPredictionID: &diseaseID,
			PrimaryPrediction:   &ds.Disease{ID: diseaseID, Name: "Malaria"},
			CreatedAt:           time.Date(2026, 8, 15, 9, 30, 0, 0, time.UTC),
			Symptoms: []ds.SubmissionSymptom{
				{SymptomID: 1, Severity: 8, Symptom: ds.Symptom{ID: 1, Name: "Fever"}},
				{SymptomID: 9, Severity: 6, Symptom: ds.Symptom{ID: 9, Name: "Chills"}},
			},
			Predictions: []ds.DiseasePrediction{
				{DiseaseID: diseaseID, ConfidenceScore: 81.25, Rank: 1},
				{DiseaseID: 1, ConfidenceScore: 12.5, Rank: 2},
			},
		},
	}
}

func TestCSVExport(t *testing.T) {
	data, err := CSV(exportFixture())
	if err != nil {
		t.Fatalf("csv export failed: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("export is not valid csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header plus 1 row, got %d records", len(records))
	}
	if records[0][0] != "id" || records[0][6] != "primary_disease" {
		t.Fatalf("unexpected header: %v", records[0])
	}
	row := records[1]
	if row[6] != "Malaria" {
		t.Fatalf("primary disease = %q, want Malaria", row[6])
	}
	if row[7] != "81.25" {
		t.Fatalf("confidence = %q, want 81.25", row[7])
	}
	if !strings.Contains(row[5], "Fever (8)") || !strings.Contains(row[5], "Chills (6)") {
		t.Fatalf("symptoms column = %q", row[5])
	}
}

func TestJSONExport(t *testing.T) {
	data, err := JSON(exportFixture())
	if err != nil {
		t.Fatalf("json export failed: %v", err)
	}

	var payload struct {
		Count int   `json:"count"`
		Rows  []Row `json:"rows"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("export is not valid json: %v", err)
	}
	if payload.Count != 1 || len(payload.Rows) != 1 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if payload.Rows[0].PrimaryDisease != "Malaria" || payload.Rows[0].Confidence != 81.25 {
		t.Fatalf("unexpected row: %+v", payload.Rows[0])
	}
}

func TestCSVEmpty(t *testing.T) {
	data, err := CSV(nil)
	if err != nil {
		t.Fatalf("csv export failed: %v", err)
	}
	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("export is not valid csv: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("empty export should still carry the header, got %d records", len(records))
	}
}
