package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every environment setting the binaries need.
// Secrets are validated at startup so a misconfigured deploy fails fast.
type Config struct {
	AppEnv string `envconfig:"APP_ENV" default:"development"`
	Port   string `envconfig:"PORT" default:"8000"`

	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	JWTSecret   string `envconfig:"JWT_SECRET" required:"true"`
	AdminSecret string `envconfig:"ADMIN_SECRET"`

	GeminiAPIKey string `envconfig:"GEMINI_API_KEY" required:"true"`
	GeminiModel  string `envconfig:"GEMINI_MODEL" required:"true"`

	R2AccessKey     string `envconfig:"R2_ACCESS_KEY" required:"true"`
	R2SecretKey     string `envconfig:"R2_SECRET_KEY" required:"true"`
	R2Bucket        string `envconfig:"R2_BUCKET_NAME" required:"true"`
	R2Endpoint      string `envconfig:"R2_ENDPOINT" required:"true"`
	R2PublicBaseURL string `envconfig:"R2_PUBLIC_BASE_URL" required:"true"`

	PaymentAPIKey  string `envconfig:"PAYMENT_API_KEY"`
	PaymentBaseURL string `envconfig:"PAYMENT_BASE_URL"`

	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

// Load reads .env (outside production) and then the process environment.
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
