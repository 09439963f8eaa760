package repository

import (
	"time"

	"github.com/varun021/Health-Tracker/internal/app/ds"

	"gorm.io/gorm"
)

// CreateSubmission persists a submission together with its symptoms and
// ranked predictions as one write unit.
func (r *Repository) CreateSubmission(sub *ds.Submission, symptoms []ds.SubmissionSymptom, predictions []ds.DiseasePrediction) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sub).Error; err != nil {
			return err
		}
		for i := range symptoms {
			symptoms[i].SubmissionID = sub.ID
		}
		if err := tx.Create(&symptoms).Error; err != nil {
			return err
		}
		for i := range predictions {
			predictions[i].SubmissionID = sub.ID
		}
		return tx.Create(&predictions).Error
	})
}

func (r *Repository) GetSubmission(id uint) (*ds.Submission, error) {
	var sub ds.Submission
	err := r.db.Preload("Symptoms.Symptom").Preload("Predictions.Disease").
		Preload("PrimaryPrediction").Where("id = ?", id).First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *Repository) ListUserSubmissions(userID uint, limit int) ([]ds.Submission, error) {
	var subs []ds.Submission
	err := r.db.Preload("Symptoms.Symptom").Preload("Predictions.Disease").
		Preload("PrimaryPrediction").
		Where("user_id = ?", userID).Order("created_at DESC").Limit(limit).
		Find(&subs).Error
	return subs, err
}

// SubmissionFilter narrows report queries.
type SubmissionFilter struct {
	From     *time.Time
	To       *time.Time
	Severity string
	Limit    int
}

func (r *Repository) ListUserSubmissionsFiltered(userID uint, f SubmissionFilter) ([]ds.Submission, error) {
	q := r.db.Preload("Symptoms.Symptom").Preload("Predictions.Disease").
		Preload("PrimaryPrediction").Where("user_id = ?", userID)
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at <= ?", *f.To)
	}
	if f.Severity != "" {
		q = q.Where("severity_category = ?", f.Severity)
	}
	q = q.Order("created_at DESC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	var subs []ds.Submission
	err := q.Find(&subs).Error
	return subs, err
}

// SubmissionsInWindow returns a user's submissions inside [from, to) with
// symptoms and primary prediction preloaded, oldest first. The analytics
// engine aggregates over this slice.
func (r *Repository) SubmissionsInWindow(userID uint, from, to time.Time) ([]ds.Submission, error) {
	var subs []ds.Submission
	err := r.db.Preload("Symptoms.Symptom").Preload("PrimaryPrediction").
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, from, to).
		Order("created_at").Find(&subs).Error
	return subs, err
}

// RecentLabeledSubmissions returns the most recent submissions that carry a
// primary prediction, for classifier training.
func (r *Repository) RecentLabeledSubmissions(limit int) ([]ds.Submission, error) {
	var subs []ds.Submission
	err := r.db.Preload("Symptoms").
		Where("primary_prediction_id IS NOT NULL").
		Order("created_at DESC").Limit(limit).Find(&subs).Error
	return subs, err
}

// UserHistoryCounts counts, per disease, the user's past predictions at or
// above the given confidence. Feeds the rule matcher's history bonus.
func (r *Repository) UserHistoryCounts(userID uint, confidenceFloor float64) (map[uint]int, error) {
	type row struct {
		DiseaseID uint
		Count     int
	}
	var rows []row
	err := r.db.Model(&ds.DiseasePrediction{}).
		Select("disease_predictions.disease_id AS disease_id, COUNT(disease_predictions.id) AS count").
		Joins("JOIN submissions ON submissions.id = disease_predictions.submission_id").
		Where("submissions.user_id = ? AND disease_predictions.confidence_score >= ?", userID, confidenceFloor).
		Group("disease_predictions.disease_id").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uint]int, len(rows))
	for _, r := range rows {
		counts[r.DiseaseID] = r.Count
	}
	return counts, nil
}

func (r *Repository) CountUserSubmissions(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&ds.Submission{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
