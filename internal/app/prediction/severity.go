package prediction

import (
	"fmt"

	"github.com/varun021/Health-Tracker/internal/app/ds"
)

// SeverityScore combines average reported severity (1-10, scaled to 0-100)
// with the top prediction's confidence. Result is clamped to [0,100].
func SeverityScore(observations []Observation, topConfidence float64) float64 {
	if len(observations) == 0 {
		return clamp01e2(topConfidence * SeverityConfidenceWeight)
	}
	var total float64
	for _, obs := range observations {
		total += float64(obs.Severity)
	}
	avg := total / float64(len(observations))
	return clamp01e2(avg*10*SeveritySymptomWeight + topConfidence*SeverityConfidenceWeight)
}

// SeverityCategory maps a severity score to its category. The 30 and 70
// boundaries both belong to MODERATE.
func SeverityCategory(score float64) string {
	switch {
	case score < SeverityNormalUpper:
		return ds.SeverityNormal
	case score <= SeverityModerateUpper:
		return ds.SeverityModerate
	default:
		return ds.SeverityRisky
	}
}

// SeverityInterpretation returns the canned interpretation for a category.
func SeverityInterpretation(category string) string {
	switch category {
	case ds.SeverityNormal:
		return "Mild symptoms detected — continue monitoring and maintain good health practices."
	case ds.SeverityModerate:
		return "Moderate symptoms detected — monitor health and seek care if symptoms worsen."
	case ds.SeverityRisky:
		return "Severe symptoms detected — consult a healthcare provider immediately."
	default:
		return ""
	}
}

// NextSteps returns the canned next-step guidance for a category.
func NextSteps(category, diseaseName string) string {
	switch category {
	case ds.SeverityRisky:
		return fmt.Sprintf("Seek immediate medical attention. Your symptoms suggest %s which requires professional evaluation.", diseaseName)
	case ds.SeverityModerate:
		return "Track your symptoms for the next 3 days. If symptoms worsen, consult a healthcare provider."
	default:
		return "Continue monitoring your symptoms. Maintain good hygiene and rest. Consult a doctor if symptoms persist."
	}
}

func clamp01e2(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
