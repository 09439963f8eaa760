package prediction

import "sort"

// RankedPrediction is one entry of the final ranked disease list.
type RankedPrediction struct {
	DiseaseID  uint    `json:"disease_id"`
	Confidence float64 `json:"confidence_score"`
	Rank       int     `json:"rank"`
}

// Combine merges classifier and rule scores (both on the 0-100 scale) with
// the fixed ML/rule weights, ranks descending, and keeps the top K.
// Diseases missing from one map contribute 0 for that path. Ties are broken
// by ascending disease id so the ranking is reproducible.
func Combine(mlScores, ruleScores map[uint]float64) ([]RankedPrediction, error) {
	if len(mlScores) == 0 && len(ruleScores) == 0 {
		return nil, ErrNoPredictions
	}

	union := make(map[uint]struct{}, len(mlScores)+len(ruleScores))
	for id := range mlScores {
		union[id] = struct{}{}
	}
	for id := range ruleScores {
		union[id] = struct{}{}
	}

	ranked := make([]RankedPrediction, 0, len(union))
	for id := range union {
		final := mlScores[id]*MLWeight + ruleScores[id]*RuleWeight
		if final < 0 {
			final = 0
		}
		if final > 100 {
			final = 100
		}
		ranked = append(ranked, RankedPrediction{DiseaseID: id, Confidence: final})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Confidence != ranked[j].Confidence {
			return ranked[i].Confidence > ranked[j].Confidence
		}
		return ranked[i].DiseaseID < ranked[j].DiseaseID
	})

	if len(ranked) > TopK {
		ranked = ranked[:TopK]
	}
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked, nil
}
