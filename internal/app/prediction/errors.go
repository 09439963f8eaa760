package prediction

import (
	"errors"
	"fmt"
)

var (
	// ErrModelNotTrained is returned when the classifier is asked to
	// predict before any training has succeeded. The serving path treats
	// it as a signal to degrade to rule-only scoring.
	ErrModelNotTrained = errors.New("model not trained")

	// ErrInsufficientData is returned by training when fewer than two
	// distinct disease labels are present in the assembled training set.
	ErrInsufficientData = errors.New("insufficient training data: need at least 2 disease classes")

	// ErrTrainingInProgress is returned when a retrain is requested while
	// another one is still running.
	ErrTrainingInProgress = errors.New("training already in progress")

	// ErrNoPredictions is returned by the combiner when both score maps
	// are empty. With a non-empty knowledge base this indicates a
	// configuration fault.
	ErrNoPredictions = errors.New("no predictions available from either scoring path")

	// ErrVocabularyMismatch is returned when a stored model artifact was
	// trained against a different symptom vocabulary than the current
	// knowledge base.
	ErrVocabularyMismatch = errors.New("model vocabulary does not match current knowledge base")
)

// ValidationError reports malformed prediction input. It is surfaced to the
// caller immediately and never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
