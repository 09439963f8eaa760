package prediction

// Scoring policy. Every weighted-average constant used by the engine lives
// here so the policy stays auditable in one place.
const (
	// Hybrid combination of classifier and rule scores.
	MLWeight   = 0.6
	RuleWeight = 0.4

	// Rule-based matcher: symptom-overlap share vs weighted-severity share.
	MatchPctWeight  = 0.4
	WeightPctWeight = 0.6

	// History bonus: +3 per past high-confidence prediction of the same
	// disease, capped at 15, never pushing confidence above 100.
	HistoryBonusPerHit     = 3.0
	HistoryBonusCap        = 15.0
	HistoryConfidenceFloor = 70.0

	// Severity score: avg symptom severity (1-10, scaled to 0-100) vs top
	// prediction confidence.
	SeveritySymptomWeight    = 0.3
	SeverityConfidenceWeight = 0.7

	// Category boundaries, both inclusive to MODERATE.
	SeverityNormalUpper   = 30.0
	SeverityModerateUpper = 70.0

	// TopK is the number of ranked diseases returned to the user.
	TopK = 3

	// LaplaceAlpha is the additive smoothing used by the classifier.
	LaplaceAlpha = 1.0

	// TrainingHistoryLimit bounds how many recent labeled submissions are
	// mixed into the training set alongside the knowledge-base rows.
	TrainingHistoryLimit = 1000
)
