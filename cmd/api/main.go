package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/varun021/Health-Tracker/internal/app/config"
	"github.com/varun021/Health-Tracker/internal/app/dsn"
	"github.com/varun021/Health-Tracker/internal/app/handler"
	"github.com/varun021/Health-Tracker/internal/app/pkg/auth"
	"github.com/varun021/Health-Tracker/internal/app/pkg/storage"
	"github.com/varun021/Health-Tracker/internal/app/prediction"
	"github.com/varun021/Health-Tracker/internal/app/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	sessionSvc, err := auth.NewSessionService(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer sessionSvc.Close()

	jwtSvc := auth.NewJWTService(cfg.JWTSecret)

	store, err := storage.NewMinIO(
		cfg.MinIOHost+":"+cfg.MinIOPort,
		cfg.MinIOAccessKey, cfg.MinIOSecretKey,
		cfg.MinIOBucket, cfg.MinIOUseSSL, cfg.MinIOPublicBase,
	)
	if err != nil {
		log.Fatalf("minio: %v", err)
	}

	predictionSvc := prediction.NewService(repo, store)
	if err := predictionSvc.LoadArtifact(context.Background()); err != nil {
		if errors.Is(err, prediction.ErrVocabularyMismatch) {
			log.Warn("stored model was trained on a different symptom catalog, serving rule-only until retrain")
		} else {
			log.WithError(err).Warn("could not load model artifact, serving rule-only")
		}
	}

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	h := handler.NewHandler(repo, cfg, predictionSvc, jwtSvc, sessionSvc, store)
	h.RegisterHandler(router)

	addr := fmt.Sprintf("%s:%d", cfg.ServiceHost, cfg.ServicePort)
	log.WithField("addr", addr).Info("starting server")
	if err := router.Run(addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
