package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config returns the value of an environment variable, loading .env once.
func Config(key string) string {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("error loading .env file: %v", err)
	}
	return os.Getenv(key)
}

// ConfigDefault returns the env value or fallback when unset.
func ConfigDefault(key, fallback string) string {
	v := Config(key)
	if v == "" {
		return fallback
	}
	return v
}
