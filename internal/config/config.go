package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// GeminiAPIKey is optional. When empty the remote generation path is
	// disabled and every try-on runs through the local compositor.
	GeminiAPIKey string
	ImageModel   string
	Port         string
	Env          string
}

func Load() Config {
	// Read env files when present; a missing file is not an error.
	_ = godotenv.Load(".env", ".env.local")

	return Config{
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		ImageModel:   getenv("GEMINI_IMAGE_MODEL", "gemini-2.5-flash-image-preview"),
		Port:         getenv("PORT", "8080"),
		Env:          getenv("APP_ENV", "development"),
	}
}

func (c Config) RemoteEnabled() bool {
	return c.GeminiAPIKey != ""
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
