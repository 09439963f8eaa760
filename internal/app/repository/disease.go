package repository

import (
	"github.com/varun021/Health-Tracker/internal/app/ds"
)

func (r *Repository) GetDiseases() ([]ds.Disease, error) {
	var diseases []ds.Disease
	err := r.db.Order("name").Find(&diseases).Error
	if err != nil {
		return nil, err
	}
	return diseases, nil
}

func (r *Repository) GetDisease(id uint) (*ds.Disease, error) {
	var disease ds.Disease
	err := r.db.Where("id = ?", id).First(&disease).Error
	if err != nil {
		return nil, err
	}
	return &disease, nil
}

func (r *Repository) GetDiseasesByIDs(ids []uint) (map[uint]ds.Disease, error) {
	var diseases []ds.Disease
	if err := r.db.Where("id IN ?", ids).Find(&diseases).Error; err != nil {
		return nil, err
	}
	out := make(map[uint]ds.Disease, len(diseases))
	for _, d := range diseases {
		out[d.ID] = d
	}
	return out, nil
}

// GetDiseaseSymptoms returns the full weight table of the knowledge base.
func (r *Repository) GetDiseaseSymptoms() ([]ds.DiseaseSymptom, error) {
	var associations []ds.DiseaseSymptom
	err := r.db.Preload("Symptom").Order("disease_id, symptom_id").Find(&associations).Error
	if err != nil {
		return nil, err
	}
	return associations, nil
}

func (r *Repository) GetDiseaseSymptomsFor(diseaseID uint) ([]ds.DiseaseSymptom, error) {
	var associations []ds.DiseaseSymptom
	err := r.db.Preload("Symptom").Where("disease_id = ?", diseaseID).
		Order("weight DESC").Find(&associations).Error
	if err != nil {
		return nil, err
	}
	return associations, nil
}

func (r *Repository) CreateDisease(d *ds.Disease) error {
	return r.db.Create(d).Error
}

func (r *Repository) UpdateDisease(id uint, fields map[string]interface{}) error {
	return r.db.Model(&ds.Disease{}).Where("id = ?", id).Updates(fields).Error
}

// SetDiseaseSymptomWeight creates or updates the weight for a pair.
func (r *Repository) SetDiseaseSymptomWeight(diseaseID, symptomID uint, weight int) error {
	var existing ds.DiseaseSymptom
	err := r.db.Where("disease_id = ? AND symptom_id = ?", diseaseID, symptomID).First(&existing).Error
	if err == nil {
		return r.db.Model(&existing).Update("weight", weight).Error
	}
	return r.db.Create(&ds.DiseaseSymptom{
		DiseaseID: diseaseID,
		SymptomID: symptomID,
		Weight:    weight,
	}).Error
}
