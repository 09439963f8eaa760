package prediction

import (
	"context"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/varun021/Health-Tracker/internal/app/ds"
	"github.com/varun021/Health-Tracker/internal/app/repository"

	log "github.com/sirupsen/logrus"
)

// ArtifactStore persists the trained model blob. GetModel returns
// (nil, nil) when no artifact has been stored yet.
type ArtifactStore interface {
	PutModel(ctx context.Context, data []byte) error
	GetModel(ctx context.Context) ([]byte, error)
}

// Service runs the full prediction pipeline: validation, encoding, both
// scoring paths, combination, severity, persistence.
type Service struct {
	repo      *repository.Repository
	artifacts ArtifactStore

	ref     ModelRef
	trainMu sync.Mutex
}

func NewService(repo *repository.Repository, artifacts ArtifactStore) *Service {
	return &Service{repo: repo, artifacts: artifacts}
}

type SymptomInput struct {
	ID       uint   `json:"id" binding:"required"`
	Severity int    `json:"severity" binding:"required"`
	Duration string `json:"duration"`
	Onset    string `json:"onset"`
}

type LifestyleInput struct {
	Smoking           bool   `json:"smoking"`
	Alcohol           bool   `json:"alcohol"`
	Diet              string `json:"diet"`
	SleepHours        *int   `json:"sleep_hours"`
	ExerciseFrequency string `json:"exercise_frequency"`
	StressLevel       *int   `json:"stress_level"`
}

type PredictInput struct {
	Name   string   `json:"name" binding:"required"`
	Age    int      `json:"age"`
	Gender string   `json:"gender" binding:"required"`
	Height *float64 `json:"height"`
	Weight *float64 `json:"weight"`

	Occupation       string          `json:"occupation"`
	Symptoms         []SymptomInput  `json:"symptoms"`
	ExistingDiseases string          `json:"existing_diseases"`
	Allergies        string          `json:"allergies"`
	Medications      string          `json:"medications"`
	FamilyHistory    string          `json:"family_history"`
	TravelHistory    string          `json:"travel_history"`
	Lifestyle        *LifestyleInput `json:"lifestyle"`
}

// ClientInfo attributes a submission to its caller.
type ClientInfo struct {
	UserID    *uint
	SessionID string
	IPAddress string
	UserAgent string
}

type PredictedDisease struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	ConfidenceScore float64 `json:"confidence_score"`
	Rank            int     `json:"rank"`
}

type Recommendations struct {
	LifestyleTips []string `json:"lifestyle_tips"`
	DietAdvice    []string `json:"diet_advice"`
	MedicalAdvice []string `json:"medical_advice"`
}

type AdditionalInfo struct {
	SeverityInterpretation string `json:"severity_interpretation"`
	NextSteps              string `json:"next_steps"`
	Disclaimer             string `json:"disclaimer"`
}

type PredictResult struct {
	Submission        *ds.Submission     `json:"submission"`
	PredictedDiseases []PredictedDisease `json:"predicted_diseases"`
	Recommendations   Recommendations    `json:"recommendations"`
	AdditionalInfo    AdditionalInfo     `json:"additional_info"`
	RuleOnly          bool               `json:"rule_only"`
}

const disclaimer = "This is an AI-assisted health prediction. It should not replace professional medical advice."

func validateInput(in *PredictInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if in.Age < 0 || in.Age > 120 {
		return &ValidationError{Field: "age", Reason: "must be between 0 and 120"}
	}
	switch in.Gender {
	case ds.GenderMale, ds.GenderFemale, ds.GenderOther:
	default:
		return &ValidationError{Field: "gender", Reason: "must be one of M, F, O"}
	}
	if len(in.Symptoms) == 0 {
		return &ValidationError{Field: "symptoms", Reason: "at least one symptom is required"}
	}
	for _, s := range in.Symptoms {
		if s.Severity < 1 || s.Severity > 10 {
			return &ValidationError{Field: "symptoms", Reason: "severity must be between 1 and 10"}
		}
		if s.Onset != "" && s.Onset != ds.OnsetSudden && s.Onset != ds.OnsetGradual {
			return &ValidationError{Field: "symptoms", Reason: "onset must be SUDDEN or GRADUAL"}
		}
	}
	if lf := in.Lifestyle; lf != nil {
		if lf.SleepHours != nil && (*lf.SleepHours < 0 || *lf.SleepHours > 24) {
			return &ValidationError{Field: "lifestyle", Reason: "sleep_hours must be between 0 and 24"}
		}
		if lf.StressLevel != nil && (*lf.StressLevel < 1 || *lf.StressLevel > 10) {
			return &ValidationError{Field: "lifestyle", Reason: "stress_level must be between 1 and 10"}
		}
		switch lf.Diet {
		case "", ds.DietVeg, ds.DietNonVeg, ds.DietVegan, ds.DietMixed:
		default:
			return &ValidationError{Field: "lifestyle", Reason: "diet must be one of VEG, NON_VEG, VEGAN, MIXED"}
		}
	}
	return nil
}

// Predict scores a submission, persists it with its ranked predictions and
// returns the full response payload. Nothing is persisted when validation
// fails.
func (s *Service) Predict(ctx context.Context, in PredictInput, client ClientInfo) (*PredictResult, error) {
	if err := validateInput(&in); err != nil {
		return nil, err
	}

	ids, err := s.repo.GetSymptomIDs()
	if err != nil {
		return nil, err
	}
	vocab := NewVocabulary(ids)

	observations := make([]Observation, len(in.Symptoms))
	for i, sym := range in.Symptoms {
		observations[i] = Observation{
			SymptomID: sym.ID,
			Severity:  sym.Severity,
			Duration:  sym.Duration,
			Onset:     sym.Onset,
		}
	}
	features, err := vocab.Encode(observations)
	if err != nil {
		return nil, err
	}

	associations, err := s.repo.GetDiseaseSymptoms()
	if err != nil {
		return nil, err
	}

	var history map[uint]int
	if client.UserID != nil {
		history, err = s.repo.UserHistoryCounts(*client.UserID, HistoryConfidenceFloor)
		if err != nil {
			return nil, err
		}
	}

	ruleScores := NewRuleMatcher(associations).Score(observations, history)

	ruleOnly := true
	var mlScores map[uint]float64
	if model := s.ref.Load(); model != nil {
		if model.VocabVersion() != vocab.Version() {
			log.WithFields(log.Fields{
				"model_vocab":   model.VocabVersion(),
				"current_vocab": vocab.Version(),
			}).Warn("model vocabulary is stale, serving rule-only until retrain")
		} else {
			probs, perr := model.PredictProba(features)
			if perr != nil {
				return nil, perr
			}
			mlScores = make(map[uint]float64, len(probs))
			for id, p := range probs {
				mlScores[id] = p * 100
			}
			ruleOnly = false
		}
	}

	ranked, err := Combine(mlScores, ruleScores)
	if err != nil {
		return nil, err
	}

	topConfidence := ranked[0].Confidence
	severityScore := math.Round(SeverityScore(observations, topConfidence)*100) / 100
	category := SeverityCategory(severityScore)

	sub := s.buildSubmission(in, client, severityScore, category, ruleOnly)
	primaryID := ranked[0].DiseaseID
	sub.PrimaryPredictionID = &primaryID

	symptomRows := make([]ds.SubmissionSymptom, len(observations))
	for i, obs := range observations {
		symptomRows[i] = ds.SubmissionSymptom{
			SymptomID: obs.SymptomID,
			Severity:  obs.Severity,
			Duration:  obs.Duration,
			Onset:     obs.Onset,
		}
	}
	predictionRows := make([]ds.DiseasePrediction, len(ranked))
	for i, rp := range ranked {
		predictionRows[i] = ds.DiseasePrediction{
			DiseaseID:       rp.DiseaseID,
			ConfidenceScore: math.Round(rp.Confidence*100) / 100,
			Rank:            rp.Rank,
		}
	}

	if err := s.repo.CreateSubmission(sub, symptomRows, predictionRows); err != nil {
		return nil, err
	}

	diseaseIDs := make([]uint, len(ranked))
	for i, rp := range ranked {
		diseaseIDs[i] = rp.DiseaseID
	}
	diseases, err := s.repo.GetDiseasesByIDs(diseaseIDs)
	if err != nil {
		return nil, err
	}

	predicted := make([]PredictedDisease, len(predictionRows))
	for i, row := range predictionRows {
		predicted[i] = PredictedDisease{
			ID:              row.DiseaseID,
			Name:            diseases[row.DiseaseID].Name,
			ConfidenceScore: row.ConfidenceScore,
			Rank:            row.Rank,
		}
	}

	primary := diseases[primaryID]
	result := &PredictResult{
		Submission:        sub,
		PredictedDiseases: predicted,
		Recommendations: Recommendations{
			LifestyleTips: SplitAdvice(primary.LifestyleTips),
			DietAdvice:    SplitAdvice(primary.DietAdvice),
			MedicalAdvice: SplitAdvice(primary.MedicalAdvice),
		},
		AdditionalInfo: AdditionalInfo{
			SeverityInterpretation: SeverityInterpretation(category),
			NextSteps:              NextSteps(category, primary.Name),
			Disclaimer:             disclaimer,
		},
		RuleOnly: ruleOnly,
	}

	log.WithFields(log.Fields{
		"submission_id": sub.ID,
		"primary":       primary.Name,
		"severity":      category,
		"rule_only":     ruleOnly,
	}).Info("prediction completed")

	return result, nil
}

func (s *Service) buildSubmission(in PredictInput, client ClientInfo, severityScore float64, category string, ruleOnly bool) *ds.Submission {
	sub := &ds.Submission{
		Name:             in.Name,
		Age:              in.Age,
		Gender:           in.Gender,
		Height:           in.Height,
		Weight:           in.Weight,
		Occupation:       in.Occupation,
		ExistingDiseases: in.ExistingDiseases,
		Allergies:        in.Allergies,
		Medications:      in.Medications,
		FamilyHistory:    in.FamilyHistory,
		TravelHistory:    in.TravelHistory,
		SeverityScore:    severityScore,
		SeverityCategory: category,
		RuleOnly:         ruleOnly,
		UserID:           client.UserID,
		SessionID:        client.SessionID,
		IPAddress:        client.IPAddress,
		UserAgent:        client.UserAgent,
		CreatedAt:        time.Now().UTC(),
	}
	if in.Height != nil && in.Weight != nil && *in.Height > 0 {
		heightM := *in.Height / 100
		bmi := math.Round(*in.Weight/(heightM*heightM)*10) / 10
		sub.BMI = &bmi
	}
	if lf := in.Lifestyle; lf != nil {
		sub.Smoking = lf.Smoking
		sub.Alcohol = lf.Alcohol
		sub.Diet = lf.Diet
		sub.SleepHours = lf.SleepHours
		sub.ExerciseFrequency = lf.ExerciseFrequency
		sub.StressLevel = lf.StressLevel
	}
	return sub
}

// SplitAdvice turns a newline-separated bullet text field into a clean
// list of recommendations.
func SplitAdvice(text string) []string {
	if text == "" {
		return []string{}
	}
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		clean := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "•-* "))
		if clean != "" {
			out = append(out, clean)
		}
	}
	return out
}
