package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int

	JWTSecret string

	RedisHost     string
	RedisPort     int
	RedisPassword string
	RedisDB       int

	MinIOHost       string
	MinIOPort       string
	MinIOAccessKey  string
	MinIOSecretKey  string
	MinIOBucket     string
	MinIOUseSSL     bool
	MinIOPublicBase string
}

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")
	viper.WatchConfig()

	err = viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	// Secrets and per-host settings come from the environment, not the
	// checked-in config file.
	cfg.JWTSecret = envDefault("JWT_SECRET", "dev-secret-change-me")

	cfg.RedisHost = envDefault("REDIS_HOST", "127.0.0.1")
	cfg.RedisPort = envInt("REDIS_PORT", 6379)
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.RedisDB = envInt("REDIS_DB", 0)

	cfg.MinIOHost = envDefault("MINIO_HOST", "127.0.0.1")
	cfg.MinIOPort = envDefault("MINIO_PORT", "9000")
	cfg.MinIOAccessKey = envDefault("MINIO_ACCESS_KEY", "minioadmin")
	cfg.MinIOSecretKey = envDefault("MINIO_SECRET_KEY", "minioadmin")
	cfg.MinIOBucket = envDefault("MINIO_BUCKET", "healthtracker")
	cfg.MinIOUseSSL = os.Getenv("MINIO_USE_SSL") == "true"
	cfg.MinIOPublicBase = envDefault("MINIO_PUBLIC_BASE", "http://"+cfg.MinIOHost+":"+cfg.MinIOPort)

	log.Info("config parsed")

	return cfg, nil
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
