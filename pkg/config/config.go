package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string `env:"SERVER_PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	FirebaseProject       string  `env:"FIREBASE_PROJECT_ID"`
	StorageBucket         string  `env:"FIREBASE_STORAGE_BUCKET"`
	ServiceAccountJSON    string  `env:"FIREBASE_SERVICE_ACCOUNT_JSON"`
	ServiceAccountPath    string  `env:"FIREBASE_SERVICE_ACCOUNT_PATH"`
	PhotosCollection      string  `env:"PHOTOS_COLLECTION" envDefault:"photos"`
	StoragePublicRead     bool    `env:"STORAGE_PUBLIC_READ" envDefault:"true"`
	MaxUploadBytes        int64   `env:"MAX_UPLOAD_BYTES" envDefault:"52428800"`
	GalleryPassword       string  `env:"GALLERY_PASSWORD"`
	AIRateLimitPerMinute  int     `env:"AI_RATE_LIMIT" envDefault:"10"`
	KeywordCacheSize      int     `env:"KEYWORD_CACHE_SIZE" envDefault:"256"`
	StoryPhotoLimit       int     `env:"STORY_PHOTO_LIMIT" envDefault:"60"`
	SimilarCandidateLimit int     `env:"SIMILAR_CANDIDATE_LIMIT" envDefault:"10"`
	SimilarTopK           int     `env:"SIMILAR_TOP_K" envDefault:"4"`
	SimilarThreshold      float64 `env:"SIMILAR_THRESHOLD" envDefault:"0.1"`

	AIAPIKey     string        `env:"GEMINI_API_KEY"`
	AIBaseURL    string        `env:"AI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta/openai/"`
	AIModel      string        `env:"AI_MODEL" envDefault:"gemini-2.0-flash"`
	AITimeout    time.Duration `env:"AI_TIMEOUT" envDefault:"20s"`
	AIMaxRetries uint64        `env:"AI_MAX_RETRIES" envDefault:"2"`
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	if c.FirebaseProject == "" {
		return fmt.Errorf("FIREBASE_PROJECT_ID is required")
	}
	if c.StorageBucket == "" {
		return fmt.Errorf("FIREBASE_STORAGE_BUCKET is required")
	}
	if c.SimilarTopK <= 0 || c.SimilarCandidateLimit <= 0 {
		return fmt.Errorf("similarity limits must be positive")
	}
	if c.SimilarThreshold < 0 || c.SimilarThreshold >= 1 {
		return fmt.Errorf("SIMILAR_THRESHOLD must be in [0, 1)")
	}
	if c.AITimeout <= 0 {
		return fmt.Errorf("AI_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
