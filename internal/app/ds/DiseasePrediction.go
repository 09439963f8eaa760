package ds

// DiseasePrediction is one ranked candidate disease for a submission.
// Rank 1 carries the highest confidence; scores are non-increasing by rank.
type DiseasePrediction struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	SubmissionID    uint    `gorm:"not null;uniqueIndex:idx_submission_disease" json:"submission_id"`
	DiseaseID       uint    `gorm:"not null;uniqueIndex:idx_submission_disease" json:"disease_id"`
	ConfidenceScore float64 `gorm:"type:decimal(5,2);not null;check:confidence_score BETWEEN 0 AND 100" json:"confidence_score"`
	Rank            int     `gorm:"type:integer;not null;default:1" json:"rank"`

	Submission Submission `gorm:"foreignKey:SubmissionID" json:"-"`
	Disease    Disease    `gorm:"foreignKey:DiseaseID" json:"disease"`
}
