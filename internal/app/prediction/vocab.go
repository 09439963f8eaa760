package prediction

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"sort"
)

// Observation is a single reported symptom within a submission.
type Observation struct {
	SymptomID uint
	Severity  int
	Duration  string
	Onset     string
}

// Vocabulary is the fixed, ordered set of symptom ids the feature vectors
// are indexed by. It must be built from the same knowledge-base snapshot at
// training and at inference time; Version() makes a mismatch detectable.
type Vocabulary struct {
	ids     []uint
	index   map[uint]int
	version string
}

// NewVocabulary builds a vocabulary from the knowledge base's symptom ids.
// Order is normalized to ascending id so the same set always produces the
// same vocabulary regardless of input order.
func NewVocabulary(symptomIDs []uint) *Vocabulary {
	ids := make([]uint, len(symptomIDs))
	copy(ids, symptomIDs)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	index := make(map[uint]int, len(ids))
	h := sha256.New()
	buf := make([]byte, 8)
	for i, id := range ids {
		index[id] = i
		binary.BigEndian.PutUint64(buf, uint64(id))
		h.Write(buf)
	}

	return &Vocabulary{
		ids:     ids,
		index:   index,
		version: hex.EncodeToString(h.Sum(nil))[:16],
	}
}

// Size returns the feature-vector length.
func (v *Vocabulary) Size() int { return len(v.ids) }

// Version is a deterministic fingerprint of the ordered symptom-id list.
func (v *Vocabulary) Version() string { return v.version }

// IDs returns a copy of the ordered symptom ids.
func (v *Vocabulary) IDs() []uint {
	out := make([]uint, len(v.ids))
	copy(out, v.ids)
	return out
}

// Index returns the feature position of a symptom id.
func (v *Vocabulary) Index(symptomID uint) (int, bool) {
	i, ok := v.index[symptomID]
	return i, ok
}

// Encode produces the fixed-length feature vector for a set of
// observations: position i holds the severity of symptom i, 0 otherwise.
// An unknown symptom id is a validation failure.
func (v *Vocabulary) Encode(observations []Observation) ([]float64, error) {
	features := make([]float64, len(v.ids))
	for _, obs := range observations {
		i, ok := v.index[obs.SymptomID]
		if !ok {
			return nil, &ValidationError{
				Field:  "symptoms",
				Reason: fmt.Sprintf("unknown symptom id %d", obs.SymptomID),
			}
		}
		features[i] = float64(obs.Severity)
	}
	return features, nil
}
