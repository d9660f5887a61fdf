package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from the environment
type Config struct {
	// DBType selects the storage backend, "sqlite" (default) or "postgres"
	DBType string
	// DatabaseURL is the postgres connection string when DBType is "postgres"
	DatabaseURL string
	// DataDir is where the sqlite file lives
	DataDir string
	// VocabularyFile optionally points at an .xlsx or .csv word book to import
	VocabularyFile string
}

// Load reads .env (when present) and the process environment
func Load() *Config {
	// Missing .env is fine; the environment may already be set
	_ = godotenv.Load()

	return &Config{
		DBType:         getEnv("DB_TYPE", "sqlite"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DataDir:        getEnv("DATA_DIR", "data"),
		VocabularyFile: os.Getenv("VOCABULARY_FILE"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
