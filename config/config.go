package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	MongoURL       string
	DatabaseName   string
	CollectionName string

	ScrollIterations int
	ResultsWait      time.Duration
	ResultsSettle    time.Duration
	ScrollSettle     time.Duration
	DetailSettle     time.Duration

	CSVOutputPath string
	ChromeBin     string
	Headless      bool
}

// Load reads the .env file and returns a populated Config struct.
// The Mongo connection string is resolved through the ordered source
// chain (secrets file first, then environment) and is the only
// required value.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	resolver := NewResolver(
		FileSource(getEnv("SECRETS_FILE", ".secrets")),
		EnvSource(),
	)

	mongoURL, err := resolver.Resolve("MONGO_URL")
	if err != nil {
		return nil, err
	}

	return &Config{
		MongoURL:       mongoURL,
		DatabaseName:   getEnv("MONGO_DATABASE", "test"),
		CollectionName: getEnv("MONGO_COLLECTION", "shops"),

		ScrollIterations: getEnvInt("SCROLL_ITERATIONS", 12),
		ResultsWait:      getEnvDuration("RESULTS_WAIT_SECONDS", 20),
		ResultsSettle:    getEnvDuration("RESULTS_SETTLE_SECONDS", 6),
		ScrollSettle:     getEnvDuration("SCROLL_SETTLE_SECONDS", 2),
		DetailSettle:     getEnvDuration("DETAIL_SETTLE_SECONDS", 4),

		CSVOutputPath: getEnv("CSV_OUTPUT_PATH", ""),
		ChromeBin:     getEnv("CHROME_BIN", ""),
		Headless:      getEnvBool("HEADLESS", true),
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallbackSeconds int) time.Duration {
	return time.Duration(getEnvInt(key, fallbackSeconds)) * time.Second
}
