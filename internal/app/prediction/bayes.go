package prediction

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"
)

// TrainingSample is one labeled feature vector.
type TrainingSample struct {
	DiseaseID uint
	Features  []float64
}

// TrainingStats summarizes a completed training run.
type TrainingStats struct {
	SamplesTrained int `json:"samples_trained"`
	Diseases       int `json:"diseases"`
	Symptoms       int `json:"symptoms"`
}

// Model is a trained multinomial Naive Bayes classifier over
// severity-valued symptom features. Immutable once built.
type Model struct {
	vocabVersion   string
	classes        []uint    // disease ids, ascending
	classLogPrior  []float64 // log P(class)
	featureLogProb [][]float64
	trainedAt      time.Time
}

// TrainModel fits a multinomial NB with Laplace smoothing on the given
// samples. At least two distinct disease labels are required.
func TrainModel(vocab *Vocabulary, samples []TrainingSample) (*Model, TrainingStats, error) {
	nFeatures := vocab.Size()

	counts := make(map[uint][]float64)
	classSamples := make(map[uint]int)
	for _, s := range samples {
		if len(s.Features) != nFeatures {
			return nil, TrainingStats{}, fmt.Errorf("sample for disease %d has %d features, vocabulary has %d",
				s.DiseaseID, len(s.Features), nFeatures)
		}
		if _, ok := counts[s.DiseaseID]; !ok {
			counts[s.DiseaseID] = make([]float64, nFeatures)
		}
		acc := counts[s.DiseaseID]
		for i, f := range s.Features {
			acc[i] += f
		}
		classSamples[s.DiseaseID]++
	}

	if len(counts) < 2 {
		return nil, TrainingStats{}, ErrInsufficientData
	}

	classes := make([]uint, 0, len(counts))
	for id := range counts {
		classes = append(classes, id)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i] < classes[j] })

	total := float64(len(samples))
	m := &Model{
		vocabVersion:   vocab.Version(),
		classes:        classes,
		classLogPrior:  make([]float64, len(classes)),
		featureLogProb: make([][]float64, len(classes)),
		trainedAt:      time.Now().UTC(),
	}

	for ci, id := range classes {
		m.classLogPrior[ci] = math.Log(float64(classSamples[id]) / total)

		acc := counts[id]
		var sum float64
		for _, c := range acc {
			sum += c
		}
		denom := sum + LaplaceAlpha*float64(nFeatures)
		logProb := make([]float64, nFeatures)
		for i, c := range acc {
			logProb[i] = math.Log((c + LaplaceAlpha) / denom)
		}
		m.featureLogProb[ci] = logProb
	}

	stats := TrainingStats{
		SamplesTrained: len(samples),
		Diseases:       len(classes),
		Symptoms:       nFeatures,
	}
	return m, stats, nil
}

// PredictProba returns P(disease | features) for every disease the model
// was trained on. Probabilities sum to 1 within floating tolerance.
func (m *Model) PredictProba(features []float64) (map[uint]float64, error) {
	if len(features) != len(m.featureLogProb[0]) {
		return nil, ErrVocabularyMismatch
	}

	// Joint log-likelihood per class, normalized with log-sum-exp.
	logJoint := make([]float64, len(m.classes))
	maxLog := math.Inf(-1)
	for ci := range m.classes {
		l := m.classLogPrior[ci]
		logProb := m.featureLogProb[ci]
		for i, f := range features {
			if f != 0 {
				l += f * logProb[i]
			}
		}
		logJoint[ci] = l
		if l > maxLog {
			maxLog = l
		}
	}

	var norm float64
	for _, l := range logJoint {
		norm += math.Exp(l - maxLog)
	}

	probs := make(map[uint]float64, len(m.classes))
	for ci, id := range m.classes {
		probs[id] = math.Exp(logJoint[ci]-maxLog) / norm
	}
	return probs, nil
}

// VocabVersion returns the vocabulary fingerprint the model was trained
// against.
func (m *Model) VocabVersion() string { return m.vocabVersion }

// TrainedAt returns the training timestamp.
func (m *Model) TrainedAt() time.Time { return m.trainedAt }

// Classes returns the disease ids known to the model, ascending.
func (m *Model) Classes() []uint {
	out := make([]uint, len(m.classes))
	copy(out, m.classes)
	return out
}

const artifactFormatVersion = 1

// modelArtifact is the persisted form of a trained model. Self-describing:
// the vocabulary version lets a loader reject a stale artifact before it
// can produce silently wrong predictions.
type modelArtifact struct {
	FormatVersion  int         `json:"format_version"`
	VocabVersion   string      `json:"vocab_version"`
	TrainedAt      time.Time   `json:"trained_at"`
	Classes        []uint      `json:"classes"`
	ClassLogPrior  []float64   `json:"class_log_prior"`
	FeatureLogProb [][]float64 `json:"feature_log_prob"`
}

// Marshal serializes the model to its artifact blob.
func (m *Model) Marshal() ([]byte, error) {
	return json.Marshal(modelArtifact{
		FormatVersion:  artifactFormatVersion,
		VocabVersion:   m.vocabVersion,
		TrainedAt:      m.trainedAt,
		Classes:        m.classes,
		ClassLogPrior:  m.classLogPrior,
		FeatureLogProb: m.featureLogProb,
	})
}

// UnmarshalModel restores a model from its artifact blob.
func UnmarshalModel(data []byte) (*Model, error) {
	var a modelArtifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}
	if a.FormatVersion != artifactFormatVersion {
		return nil, fmt.Errorf("unsupported model artifact format %d", a.FormatVersion)
	}
	if len(a.Classes) == 0 || len(a.Classes) != len(a.ClassLogPrior) || len(a.Classes) != len(a.FeatureLogProb) {
		return nil, fmt.Errorf("model artifact is inconsistent")
	}
	return &Model{
		vocabVersion:   a.VocabVersion,
		classes:        a.Classes,
		classLogPrior:  a.ClassLogPrior,
		featureLogProb: a.FeatureLogProb,
		trainedAt:      a.TrainedAt,
	}, nil
}

// ModelRef holds the current model behind a read lock so concurrent
// predictions always observe a fully-formed snapshot. Swap replaces the
// model atomically after a successful (re)train.
type ModelRef struct {
	mu    sync.RWMutex
	model *Model
}

// Load returns the current model, or nil if none is trained yet.
func (r *ModelRef) Load() *Model {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.model
}

// Swap installs a new model snapshot.
func (r *ModelRef) Swap(m *Model) {
	r.mu.Lock()
	r.model = m
	r.mu.Unlock()
}
