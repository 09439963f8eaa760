package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/varun021/Health-Tracker/internal/app/ds"
)

// Row is one submission flattened for export.
type Row struct {
	ID               uint    `json:"id"`
	Date             string  `json:"date"`
	Name             string  `json:"name"`
	Age              int     `json:"age"`
	Gender           string  `json:"gender"`
	Symptoms         string  `json:"symptoms"`
	PrimaryDisease   string  `json:"primary_disease"`
	Confidence       float64 `json:"confidence"`
	SeverityScore    float64 `json:"severity_score"`
	SeverityCategory string  `json:"severity_category"`
}

func buildRows(subs []ds.Submission) []Row {
	rows := make([]Row, 0, len(subs))
	for _, sub := range subs {
		row := Row{
			ID:               sub.ID,
			Date:             sub.CreatedAt.Format(time.RFC3339),
			Name:             sub.Name,
			Age:              sub.Age,
			Gender:           sub.Gender,
			SeverityScore:    sub.SeverityScore,
			SeverityCategory: sub.SeverityCategory,
		}

		names := make([]string, 0, len(sub.Symptoms))
		for _, ss := range sub.Symptoms {
			names = append(names, fmt.Sprintf("%s (%d)", ss.Symptom.Name, ss.Severity))
		}
		row.Symptoms = strings.Join(names, "; ")

		if sub.PrimaryPrediction != nil {
			row.PrimaryDisease = sub.PrimaryPrediction.Name
		}
		for _, p := range sub.Predictions {
			if p.Rank == 1 {
				row.Confidence = p.ConfidenceScore
				break
			}
		}

		rows = append(rows, row)
	}
	return rows
}

// CSV renders the submissions as a spreadsheet-friendly export.
func CSV(subs []ds.Submission) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"id", "date", "name", "age", "gender", "symptoms",
		"primary_disease", "confidence", "severity_score", "severity_category"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, row := range buildRows(subs) {
		record := []string{
			strconv.FormatUint(uint64(row.ID), 10),
			row.Date,
			row.Name,
			strconv.Itoa(row.Age),
			row.Gender,
			row.Symptoms,
			row.PrimaryDisease,
			strconv.FormatFloat(row.Confidence, 'f', 2, 64),
			strconv.FormatFloat(row.SeverityScore, 'f', 2, 64),
			row.SeverityCategory,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// JSON renders the same flattened rows with an export envelope.
func JSON(subs []ds.Submission) ([]byte, error) {
	payload := struct {
		GeneratedAt time.Time `json:"generated_at"`
		Count       int       `json:"count"`
		Rows        []Row     `json:"rows"`
	}{
		GeneratedAt: time.Now().UTC(),
		Count:       len(subs),
		Rows:        buildRows(subs),
	}
	return json.MarshalIndent(payload, "", "  ")
}
