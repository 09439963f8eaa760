package prediction

import "github.com/varun021/Health-Tracker/internal/app/ds"

// RuleMatcher computes a deterministic confidence per disease from direct
// symptom-weight matching. It needs no trained model and works with zero
// history, so it is always available as the fallback scoring path.
type RuleMatcher struct {
	weights map[uint]map[uint]int // disease id -> symptom id -> weight
}

// NewRuleMatcher indexes the knowledge base's disease-symptom weights.
func NewRuleMatcher(associations []ds.DiseaseSymptom) *RuleMatcher {
	weights := make(map[uint]map[uint]int)
	for _, a := range associations {
		if _, ok := weights[a.DiseaseID]; !ok {
			weights[a.DiseaseID] = make(map[uint]int)
		}
		weights[a.DiseaseID][a.SymptomID] = a.Weight
	}
	return &RuleMatcher{weights: weights}
}

// Score returns a confidence 0-100 for every disease in the knowledge
// base. history maps disease id to the caller's count of past
// high-confidence predictions of that disease; nil disables the bonus.
func (rm *RuleMatcher) Score(observations []Observation, history map[uint]int) map[uint]float64 {
	severities := make(map[uint]int, len(observations))
	for _, obs := range observations {
		severities[obs.SymptomID] = obs.Severity
	}

	scores := make(map[uint]float64, len(rm.weights))
	for diseaseID, symptomWeights := range rm.weights {
		var matched int
		var weightScore, maxWeight float64
		for symptomID, weight := range symptomWeights {
			maxWeight += float64(weight)
			severity, ok := severities[symptomID]
			if !ok {
				continue
			}
			matched++
			weightScore += float64(weight) * float64(severity) / 10
		}

		var confidence float64
		if len(symptomWeights) > 0 && matched > 0 {
			matchPct := float64(matched) / float64(len(symptomWeights)) * 100
			weightPct := weightScore / maxWeight * 100
			confidence = matchPct*MatchPctWeight + weightPct*WeightPctWeight
		}

		if hits, ok := history[diseaseID]; ok && confidence > 0 {
			bonus := float64(hits) * HistoryBonusPerHit
			if bonus > HistoryBonusCap {
				bonus = HistoryBonusCap
			}
			confidence += bonus
			if confidence > 100 {
				confidence = 100
			}
		}

		scores[diseaseID] = confidence
	}
	return scores
}
