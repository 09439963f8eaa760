package ds

import "time"

// Gender codes accepted in submissions.
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)

// Severity categories assigned after scoring.
const (
	SeverityNormal   = "NORMAL"
	SeverityModerate = "MODERATE"
	SeverityRisky    = "RISKY"
)

// Diet choices for the lifestyle block.
const (
	DietVeg    = "VEG"
	DietNonVeg = "NON_VEG"
	DietVegan  = "VEGAN"
	DietMixed  = "MIXED"
)

// Submission is one self-assessment together with its scoring results.
// Immutable after creation.
type Submission struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"type:varchar(100);not null" json:"name"`
	Age    int    `gorm:"type:integer;not null;check:age BETWEEN 0 AND 120" json:"age"`
	Gender string `gorm:"type:varchar(1);not null" json:"gender"`

	Height *float64 `gorm:"type:decimal(5,2)" json:"height"`
	Weight *float64 `gorm:"type:decimal(5,2)" json:"weight"`
	BMI    *float64 `gorm:"type:decimal(4,1)" json:"bmi"`

	Occupation string `gorm:"type:varchar(100)" json:"occupation"`

	ExistingDiseases string `gorm:"type:text" json:"existing_diseases"`
	Allergies        string `gorm:"type:text" json:"allergies"`
	Medications      string `gorm:"type:text" json:"medications"`
	FamilyHistory    string `gorm:"type:text" json:"family_history"`
	TravelHistory    string `gorm:"type:text" json:"travel_history"`

	Smoking           bool   `gorm:"type:boolean;default:false" json:"smoking"`
	Alcohol           bool   `gorm:"type:boolean;default:false" json:"alcohol"`
	Diet              string `gorm:"type:varchar(20)" json:"diet"`
	SleepHours        *int   `gorm:"type:integer;check:sleep_hours BETWEEN 0 AND 24" json:"sleep_hours"`
	ExerciseFrequency string `gorm:"type:varchar(50)" json:"exercise_frequency"`
	StressLevel       *int   `gorm:"type:integer;check:stress_level BETWEEN 1 AND 10" json:"stress_level"`

	PrimaryPredictionID *uint   `json:"primary_prediction_id"`
	SeverityScore       float64 `gorm:"type:decimal(5,2);not null;check:severity_score BETWEEN 0 AND 100" json:"severity_score"`
	SeverityCategory    string  `gorm:"type:varchar(10);not null" json:"severity_category"`
	RuleOnly            bool    `gorm:"type:boolean;default:false" json:"rule_only"`

	UserID    *uint     `json:"user_id"`
	SessionID string    `gorm:"type:varchar(100)" json:"session_id"`
	IPAddress string    `gorm:"type:varchar(45)" json:"ip_address"`
	UserAgent string    `gorm:"type:varchar(255)" json:"user_agent"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`

	User              *User               `gorm:"foreignKey:UserID" json:"-"`
	PrimaryPrediction *Disease            `gorm:"foreignKey:PrimaryPredictionID" json:"primary_prediction"`
	Symptoms          []SubmissionSymptom `gorm:"foreignKey:SubmissionID" json:"symptoms"`
	Predictions       []DiseasePrediction `gorm:"foreignKey:SubmissionID" json:"predicted_diseases"`
}
