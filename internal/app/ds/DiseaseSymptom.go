package ds

// DiseaseSymptom links a disease to a symptom with a weight 1-10 (10 is most indicative).
type DiseaseSymptom struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	DiseaseID uint `gorm:"not null;uniqueIndex:idx_disease_symptom" json:"disease_id"`
	SymptomID uint `gorm:"not null;uniqueIndex:idx_disease_symptom" json:"symptom_id"`
	Weight    int  `gorm:"type:integer;not null;check:weight BETWEEN 1 AND 10" json:"weight"`

	Disease Disease `gorm:"foreignKey:DiseaseID" json:"-"`
	Symptom Symptom `gorm:"foreignKey:SymptomID" json:"symptom"`
}
