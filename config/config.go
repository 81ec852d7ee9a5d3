package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the hearty-foods server.
type Config struct {
	Port string
	Env  string // "development" or "production"

	MongoURI string
	MongoDB  string

	RedisURL string
	PlateTTL time.Duration

	JWTSecret string
	TokenTTL  time.Duration

	PayPalClientID  string
	StripeSecretKey string

	// S3 image uploads (optional; uploads are disabled when the bucket is empty)
	S3Bucket        string
	S3Region        string
	S3Endpoint      string
	S3PublicBaseURL string
}

// Load reads environment variables into a Config struct.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         getEnv("MONGO_DB", "hearty-foods"),
		RedisURL:        getEnv("REDIS_URL", "redis://localhost:6379/0"),
		PlateTTL:        getDuration("PLATE_TTL_HOURS", 720) * time.Hour,
		JWTSecret:       os.Getenv("JWT_SECRET"),
		TokenTTL:        getDuration("TOKEN_TTL_HOURS", 24) * time.Hour,
		PayPalClientID:  getEnv("PAYPAL_CLIENT_ID", "sb"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		S3Bucket:        os.Getenv("S3_BUCKET"),
		S3Region:        getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:      os.Getenv("S3_ENDPOINT"),
		S3PublicBaseURL: os.Getenv("S3_PUBLIC_BASE_URL"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

// IsProduction reports whether the server runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n)
		}
	}
	return time.Duration(fallback)
}
