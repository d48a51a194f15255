package configs

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads a .env file when one exists. Missing files are fine; the
// container environment wins either way.
func LoadEnv() {
	_ = godotenv.Load()
}

func Getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
