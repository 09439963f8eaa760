package ds

// Onset codes for a reported symptom.
const (
	OnsetSudden  = "SUDDEN"
	OnsetGradual = "GRADUAL"
)

type SubmissionSymptom struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	SubmissionID uint   `gorm:"not null;uniqueIndex:idx_submission_symptom" json:"submission_id"`
	SymptomID    uint   `gorm:"not null;uniqueIndex:idx_submission_symptom" json:"symptom_id"`
	Severity     int    `gorm:"type:integer;not null;check:severity BETWEEN 1 AND 10" json:"severity"`
	Duration     string `gorm:"type:varchar(50)" json:"duration"`
	Onset        string `gorm:"type:varchar(10)" json:"onset"`

	Submission Submission `gorm:"foreignKey:SubmissionID" json:"-"`
	Symptom    Symptom    `gorm:"foreignKey:SymptomID" json:"symptom"`
}
