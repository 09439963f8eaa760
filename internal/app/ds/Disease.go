package ds

import "time"

type Disease struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(100);unique;not null" json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	LifestyleTips string    `gorm:"type:text" json:"lifestyle_tips"`
	DietAdvice    string    `gorm:"type:text" json:"diet_advice"`
	MedicalAdvice string    `gorm:"type:text" json:"medical_advice"`
	CreatedAt     time.Time `json:"created_at"`
}
