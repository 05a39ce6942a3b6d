package config

import (
	"strings"
	"time"

	"github.com/sovanra/uxfolio/internal/env"
)

type Config struct {
	Port        string
	ENV         string
	Data        DataConfig
	Storage     StorageConfig
	RateLimiter RateLimiterConfig
	Auth        AuthConfig
	Nda         NdaConfig
}

type DataConfig struct {
	// Dir holds one JSON document per entity type (projects.json, images.json, ...).
	Dir string
}

type StorageConfig struct {
	// Driver selects where derived size variants are written: "local" or "s3".
	Driver     string
	UploadsDir string
	// BaseURL is prepended to variant paths to build public URLs, e.g
	// "http://localhost:8080/uploads".
	BaseURL string
	Minio   MinioConfig
}

type MinioConfig struct {
	ENDPOINT   string
	ACCESS_KEY string
	SECRET_KEY string
	BUCKET     string
	USE_SSL    bool
}

type RateLimiterConfig struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

type AuthConfig struct {
	JWT_SECRET string
	// Admin credentials for the single-admin login. The password is stored as
	// a bcrypt hash, never plaintext.
	ADMIN_USERNAME      string
	ADMIN_PASSWORD_HASH string
}

type NdaConfig struct {
	// CodesFile points to the TOML table of access codes loaded at startup.
	CodesFile string
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.ENV, "production")
}

func GetConfig() Config {
	rateLimiteTimeFrame, err := time.ParseDuration(env.GetString("RATE_LIMIT_TIME_FRAME", "1m"))
	if err != nil {
		rateLimiteTimeFrame = 60 * time.Second
	}

	return Config{
		Port: env.GetString("PORT", "8080"),
		ENV:  env.GetString("ENV", "development"),
		Data: DataConfig{
			Dir: env.GetString("DATA_DIR", "data"),
		},
		Storage: StorageConfig{
			Driver:     env.GetString("STORAGE_DRIVER", "local"),
			UploadsDir: env.GetString("UPLOADS_DIR", "uploads"),
			BaseURL:    env.GetString("UPLOADS_BASE_URL", "http://localhost:8080/uploads"),
			Minio: MinioConfig{
				ENDPOINT:   env.GetString("MINIO_ENDPOINT", "127.0.0.1:9000"),
				ACCESS_KEY: env.GetString("MINIO_ACCESS_KEY", ""),
				SECRET_KEY: env.GetString("MINIO_SECRET_KEY", ""),
				BUCKET:     env.GetString("MINIO_BUCKET", "uxfolio"),
				USE_SSL:    env.GetBool("MINIO_USE_SSL", false),
			},
		},
		// By default if not specified, we allow 5000 requests per minute on all routes
		RateLimiter: RateLimiterConfig{
			RequestsPerTimeFrame: env.GetInt("RATE_LIMIT_REQUESTS_PER_TIME_FRAME", 5000),
			TimeFrame:            rateLimiteTimeFrame,
			Enabled:              env.GetBool("RATE_LIMIT_ENABLED", true),
		},
		Auth: AuthConfig{
			JWT_SECRET:          env.GetString("AUTH_JWT_SECRET", ""),
			ADMIN_USERNAME:      env.GetString("AUTH_ADMIN_USERNAME", "admin"),
			ADMIN_PASSWORD_HASH: env.GetString("AUTH_ADMIN_PASSWORD_HASH", ""),
		},
		Nda: NdaConfig{
			CodesFile: env.GetString("NDA_CODES_FILE", "nda_codes.toml"),
		},
	}
}
