package main

import (
	"github.com/varun021/Health-Tracker/internal/app/ds"
	"github.com/varun021/Health-Tracker/internal/app/dsn"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()
	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	// Migrate the schema
	err = db.AutoMigrate(
		&ds.User{},
		&ds.Symptom{},
		&ds.Disease{},
		&ds.DiseaseSymptom{},
		&ds.Submission{},
		&ds.SubmissionSymptom{},
		&ds.DiseasePrediction{},
	)
	if err != nil {
		panic("cant migrate db")
	}
}
