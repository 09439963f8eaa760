package analytics

import (
	"math"

	"github.com/varun021/Health-Tracker/internal/app/ds"
)

// MetricDelta reports the change of one metric between two adjacent
// windows. IsImprovement follows the metric's own polarity: a falling
// average severity is good, a rising health score is good, and a change in
// submission volume is neither (Neutral).
type MetricDelta struct {
	Current       float64 `json:"current"`
	Previous      float64 `json:"previous"`
	DeltaPct      float64 `json:"delta_pct"`
	Direction     string  `json:"direction"`
	IsImprovement bool    `json:"is_improvement"`
	Neutral       bool    `json:"neutral,omitempty"`
}

// Comparison contrasts the current window with the immediately preceding
// window of equal length.
type Comparison struct {
	Current  *Report                `json:"current"`
	Previous *Report                `json:"previous"`
	Metrics  map[string]MetricDelta `json:"metrics"`
}

// Compare computes both windows' reports and per-metric deltas.
func Compare(current, previous []ds.Submission) *Comparison {
	cur := Compute(current)
	prev := Compute(previous)

	metrics := map[string]MetricDelta{
		"total_predictions": delta(float64(cur.Overview.TotalPredictions), float64(prev.Overview.TotalPredictions), polarityNeutral),
		"avg_severity":      delta(cur.Overview.AvgSeverity, prev.Overview.AvgSeverity, polarityLowerIsBetter),
		"risky_cases":       delta(float64(cur.Overview.RiskyCases), float64(prev.Overview.RiskyCases), polarityLowerIsBetter),
		"health_score":      delta(cur.HealthScore, prev.HealthScore, polarityHigherIsBetter),
	}

	return &Comparison{Current: cur, Previous: prev, Metrics: metrics}
}

type polarity int

const (
	polarityNeutral polarity = iota
	polarityLowerIsBetter
	polarityHigherIsBetter
)

func delta(current, previous float64, p polarity) MetricDelta {
	d := MetricDelta{Current: current, Previous: previous}

	diff := current - previous
	switch {
	case diff > 0:
		d.Direction = "up"
	case diff < 0:
		d.Direction = "down"
	default:
		d.Direction = "flat"
	}

	if previous != 0 {
		d.DeltaPct = math.Round(diff/previous*100*100) / 100
	} else if current != 0 {
		d.DeltaPct = 100
	}

	switch p {
	case polarityLowerIsBetter:
		d.IsImprovement = diff < 0
	case polarityHigherIsBetter:
		d.IsImprovement = diff > 0
	default:
		d.Neutral = true
	}
	return d
}
