package main

import (
	"context"

	"github.com/varun021/Health-Tracker/internal/app/config"
	"github.com/varun021/Health-Tracker/internal/app/dsn"
	"github.com/varun021/Health-Tracker/internal/app/pkg/storage"
	"github.com/varun021/Health-Tracker/internal/app/prediction"
	"github.com/varun021/Health-Tracker/internal/app/repository"

	log "github.com/sirupsen/logrus"
)

// Retrains the classifier from the command line. The API exposes the same
// operation at POST /api/train.
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	store, err := storage.NewMinIO(
		cfg.MinIOHost+":"+cfg.MinIOPort,
		cfg.MinIOAccessKey, cfg.MinIOSecretKey,
		cfg.MinIOBucket, cfg.MinIOUseSSL, cfg.MinIOPublicBase,
	)
	if err != nil {
		log.Fatalf("minio: %v", err)
	}

	svc := prediction.NewService(repo, store)
	stats, err := svc.Train(context.Background())
	if err != nil {
		log.Fatalf("training failed: %v", err)
	}

	log.WithFields(log.Fields{
		"samples":  stats.SamplesTrained,
		"diseases": stats.Diseases,
		"symptoms": stats.Symptoms,
	}).Info("training complete")
}
