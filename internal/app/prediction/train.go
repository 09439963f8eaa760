package prediction

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

// Train assembles the training set from the knowledge base plus recent
// labeled submissions, fits a new model, persists the artifact and swaps it
// in. Only one training run may be active at a time; on any failure the
// prior model keeps serving.
func (s *Service) Train(ctx context.Context) (TrainingStats, error) {
	if !s.trainMu.TryLock() {
		return TrainingStats{}, ErrTrainingInProgress
	}
	defer s.trainMu.Unlock()

	started := time.Now()

	ids, err := s.repo.GetSymptomIDs()
	if err != nil {
		return TrainingStats{}, err
	}
	vocab := NewVocabulary(ids)

	samples, err := s.assembleTrainingSet(vocab)
	if err != nil {
		return TrainingStats{}, err
	}

	model, stats, err := TrainModel(vocab, samples)
	if err != nil {
		return TrainingStats{}, err
	}

	blob, err := model.Marshal()
	if err != nil {
		return TrainingStats{}, err
	}
	if err := s.artifacts.PutModel(ctx, blob); err != nil {
		return TrainingStats{}, fmt.Errorf("store model artifact: %w", err)
	}

	s.ref.Swap(model)

	log.WithFields(log.Fields{
		"samples":  stats.SamplesTrained,
		"diseases": stats.Diseases,
		"symptoms": stats.Symptoms,
		"vocab":    vocab.Version(),
		"took":     time.Since(started).String(),
	}).Info("model trained")

	return stats, nil
}

// assembleTrainingSet builds one synthetic row per disease from its weight
// table (weight used as severity) and mixes in up to TrainingHistoryLimit
// recent submissions labeled with a primary prediction.
func (s *Service) assembleTrainingSet(vocab *Vocabulary) ([]TrainingSample, error) {
	associations, err := s.repo.GetDiseaseSymptoms()
	if err != nil {
		return nil, err
	}

	byDisease := make(map[uint][]Observation)
	for _, a := range associations {
		byDisease[a.DiseaseID] = append(byDisease[a.DiseaseID], Observation{
			SymptomID: a.SymptomID,
			Severity:  a.Weight,
		})
	}

	var samples []TrainingSample
	for diseaseID, obs := range byDisease {
		features, err := vocab.Encode(obs)
		if err != nil {
			return nil, err
		}
		samples = append(samples, TrainingSample{DiseaseID: diseaseID, Features: features})
	}

	history, err := s.repo.RecentLabeledSubmissions(TrainingHistoryLimit)
	if err != nil {
		return nil, err
	}
	for _, sub := range history {
		if sub.PrimaryPredictionID == nil {
			continue
		}
		obs := make([]Observation, 0, len(sub.Symptoms))
		for _, ss := range sub.Symptoms {
			obs = append(obs, Observation{SymptomID: ss.SymptomID, Severity: ss.Severity})
		}
		features, err := vocab.Encode(obs)
		if err != nil {
			// A submission can reference a symptom deleted from the
			// knowledge base; skip the row rather than failing the run.
			continue
		}
		samples = append(samples, TrainingSample{DiseaseID: *sub.PrimaryPredictionID, Features: features})
	}

	return samples, nil
}

// LoadArtifact restores the persisted model on startup. A missing artifact
// is not an error (the service starts rule-only); a vocabulary mismatch is
// reported so the operator knows a retrain is needed.
func (s *Service) LoadArtifact(ctx context.Context) error {
	data, err := s.artifacts.GetModel(ctx)
	if err != nil {
		return err
	}
	if data == nil {
		log.Info("no model artifact found, serving rule-only predictions")
		return nil
	}

	model, err := UnmarshalModel(data)
	if err != nil {
		return err
	}

	ids, err := s.repo.GetSymptomIDs()
	if err != nil {
		return err
	}
	if NewVocabulary(ids).Version() != model.VocabVersion() {
		return ErrVocabularyMismatch
	}

	s.ref.Swap(model)
	log.WithFields(log.Fields{
		"vocab":      model.VocabVersion(),
		"trained_at": model.TrainedAt(),
		"diseases":   len(model.Classes()),
	}).Info("model artifact loaded")
	return nil
}

// ModelInfo describes the currently loaded model for operators.
type ModelInfo struct {
	Trained      bool      `json:"trained"`
	VocabVersion string    `json:"vocab_version,omitempty"`
	TrainedAt    time.Time `json:"trained_at,omitempty"`
	Diseases     int       `json:"diseases,omitempty"`
}

func (s *Service) ModelInfo() ModelInfo {
	model := s.ref.Load()
	if model == nil {
		return ModelInfo{Trained: false}
	}
	return ModelInfo{
		Trained:      true,
		VocabVersion: model.VocabVersion(),
		TrainedAt:    model.TrainedAt(),
		Diseases:     len(model.Classes()),
	}
}
