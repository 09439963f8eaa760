package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/varun021/Health-Tracker/internal/app/ds"
)

// Health-score policy: higher is better, monotonically decreasing in both
// average severity and the share of risky cases.
const (
	healthSeverityWeight = 0.6
	healthRiskyWeight    = 40.0
)

type Overview struct {
	TotalPredictions int     `json:"total_predictions"`
	AvgSeverity      float64 `json:"avg_severity"`
	MinSeverity      float64 `json:"min_severity"`
	MaxSeverity      float64 `json:"max_severity"`
	NormalCases      int     `json:"normal_cases"`
	ModerateCases    int     `json:"moderate_cases"`
	RiskyCases       int     `json:"risky_cases"`
	MostCommonID     uint    `json:"most_common_disease_id,omitempty"`
	MostCommon       string  `json:"most_common_disease,omitempty"`
}

type TrendBucket struct {
	Date        string  `json:"date"`
	Count       int     `json:"count"`
	AvgSeverity float64 `json:"avg_severity"`
}

type DiseaseStat struct {
	DiseaseID   uint      `json:"disease_id"`
	Name        string    `json:"disease_name"`
	Count       int       `json:"count"`
	AvgSeverity float64   `json:"avg_severity"`
	LastSeen    time.Time `json:"last_seen"`
}

type SymptomStat struct {
	SymptomID   uint    `json:"symptom_id"`
	Name        string  `json:"symptom_name"`
	Count       int     `json:"count"`
	AvgSeverity float64 `json:"avg_severity"`
}

// Report is the full analytics payload for one time window.
type Report struct {
	Overview    Overview      `json:"overview"`
	HealthScore float64       `json:"health_score"`
	Trend       []TrendBucket `json:"trend"`
	Diseases    []DiseaseStat `json:"diseases"`
	Symptoms    []SymptomStat `json:"symptoms"`
}

// Compute aggregates a window of submissions. An empty window yields zero
// values throughout (and a full health score), never NaN.
func Compute(subs []ds.Submission) *Report {
	report := &Report{
		Trend:    []TrendBucket{},
		Diseases: []DiseaseStat{},
		Symptoms: []SymptomStat{},
	}
	if len(subs) == 0 {
		report.HealthScore = 100
		return report
	}

	ov := Overview{
		TotalPredictions: len(subs),
		MinSeverity:      math.MaxFloat64,
	}
	var severitySum float64

	type diseaseAcc struct {
		name     string
		count    int
		sum      float64
		lastSeen time.Time
	}
	diseaseByID := make(map[uint]*diseaseAcc)

	type symptomAcc struct {
		name  string
		count int
		sum   float64
	}
	symptomByID := make(map[uint]*symptomAcc)

	type dayAcc struct {
		count int
		sum   float64
	}
	days := make(map[string]*dayAcc)

	for _, sub := range subs {
		severitySum += sub.SeverityScore
		if sub.SeverityScore < ov.MinSeverity {
			ov.MinSeverity = sub.SeverityScore
		}
		if sub.SeverityScore > ov.MaxSeverity {
			ov.MaxSeverity = sub.SeverityScore
		}
		switch sub.SeverityCategory {
		case ds.SeverityNormal:
			ov.NormalCases++
		case ds.SeverityModerate:
			ov.ModerateCases++
		case ds.SeverityRisky:
			ov.RiskyCases++
		}

		if sub.PrimaryPredictionID != nil {
			acc, ok := diseaseByID[*sub.PrimaryPredictionID]
			if !ok {
				acc = &diseaseAcc{}
				if sub.PrimaryPrediction != nil {
					acc.name = sub.PrimaryPrediction.Name
				}
				diseaseByID[*sub.PrimaryPredictionID] = acc
			}
			acc.count++
			acc.sum += sub.SeverityScore
			if sub.CreatedAt.After(acc.lastSeen) {
				acc.lastSeen = sub.CreatedAt
			}
		}

		for _, ss := range sub.Symptoms {
			acc, ok := symptomByID[ss.SymptomID]
			if !ok {
				acc = &symptomAcc{name: ss.Symptom.Name}
				symptomByID[ss.SymptomID] = acc
			}
			acc.count++
			acc.sum += float64(ss.Severity)
		}

		day := sub.CreatedAt.Format("2006-01-02")
		if _, ok := days[day]; !ok {
			days[day] = &dayAcc{}
		}
		days[day].count++
		days[day].sum += sub.SeverityScore
	}

	ov.AvgSeverity = round2(severitySum / float64(len(subs)))

	// Mode of the primary disease; ties go to the most recent occurrence.
	var bestID uint
	var best *diseaseAcc
	for id, acc := range diseaseByID {
		if best == nil || acc.count > best.count ||
			(acc.count == best.count && acc.lastSeen.After(best.lastSeen)) {
			bestID, best = id, acc
		}
	}
	if best != nil {
		ov.MostCommonID = bestID
		ov.MostCommon = best.name
	}
	report.Overview = ov

	riskyShare := float64(ov.RiskyCases) / float64(ov.TotalPredictions)
	report.HealthScore = HealthScore(ov.AvgSeverity, riskyShare)

	for id, acc := range diseaseByID {
		report.Diseases = append(report.Diseases, DiseaseStat{
			DiseaseID:   id,
			Name:        acc.name,
			Count:       acc.count,
			AvgSeverity: round2(acc.sum / float64(acc.count)),
			LastSeen:    acc.lastSeen,
		})
	}
	sort.Slice(report.Diseases, func(i, j int) bool {
		if report.Diseases[i].Count != report.Diseases[j].Count {
			return report.Diseases[i].Count > report.Diseases[j].Count
		}
		return report.Diseases[i].DiseaseID < report.Diseases[j].DiseaseID
	})

	for id, acc := range symptomByID {
		report.Symptoms = append(report.Symptoms, SymptomStat{
			SymptomID:   id,
			Name:        acc.name,
			Count:       acc.count,
			AvgSeverity: round2(acc.sum / float64(acc.count)),
		})
	}
	sort.Slice(report.Symptoms, func(i, j int) bool {
		if report.Symptoms[i].Count != report.Symptoms[j].Count {
			return report.Symptoms[i].Count > report.Symptoms[j].Count
		}
		return report.Symptoms[i].SymptomID < report.Symptoms[j].SymptomID
	})

	for day, acc := range days {
		report.Trend = append(report.Trend, TrendBucket{
			Date:        day,
			Count:       acc.count,
			AvgSeverity: round2(acc.sum / float64(acc.count)),
		})
	}
	sort.Slice(report.Trend, func(i, j int) bool {
		return report.Trend[i].Date < report.Trend[j].Date
	})

	return report
}

// HealthScore derives a 0-100 summary where higher means a better trend.
func HealthScore(avgSeverity, riskyShare float64) float64 {
	score := 100 - healthSeverityWeight*avgSeverity - healthRiskyWeight*riskyShare
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return round2(score)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
