package repository

import (
	"github.com/varun021/Health-Tracker/internal/app/ds"
)

func (r *Repository) GetSymptoms() ([]ds.Symptom, error) {
	var symptoms []ds.Symptom
	err := r.db.Order("id").Find(&symptoms).Error
	if err != nil {
		return nil, err
	}
	return symptoms, nil
}

func (r *Repository) SearchSymptoms(query string) ([]ds.Symptom, error) {
	var symptoms []ds.Symptom
	err := r.db.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?",
		"%"+query+"%", "%"+query+"%").Order("id").Find(&symptoms).Error
	if err != nil {
		return nil, err
	}
	return symptoms, nil
}

func (r *Repository) GetSymptom(id uint) (ds.Symptom, error) {
	var symptom ds.Symptom
	err := r.db.Where("id = ?", id).First(&symptom).Error
	if err != nil {
		return ds.Symptom{}, err
	}
	return symptom, nil
}

// GetSymptomIDs returns all symptom ids ordered ascending. This is the
// vocabulary snapshot the prediction engine is built from.
func (r *Repository) GetSymptomIDs() ([]uint, error) {
	var ids []uint
	err := r.db.Model(&ds.Symptom{}).Order("id").Pluck("id", &ids).Error
	return ids, err
}

func (r *Repository) CreateSymptom(s *ds.Symptom) error {
	return r.db.Create(s).Error
}

func (r *Repository) UpdateSymptom(id uint, fields map[string]interface{}) error {
	return r.db.Model(&ds.Symptom{}).Where("id = ?", id).Updates(fields).Error
}
