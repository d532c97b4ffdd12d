package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

type AppConfig struct {
	// Input is the CSV file holding the readings.
	Input string `validate:"required"`

	// Column selects the value column; empty means detect it from the header.
	Column string

	// Format of the report written to stdout.
	Format string `validate:"oneof=text json"`

	// Optional query parameters. Nil disables the query.
	Target    *float64
	Threshold *float64

	// BatchSize is how many readings are appended to the store per call.
	BatchSize int `validate:"gte=1"`
}

// Load reads configuration from environment with sensible defaults.
// A non-empty input overrides TEMPSERIES_INPUT.
func Load(input string) (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Input = getenvDefault("TEMPSERIES_INPUT", "")
	if input != "" {
		cfg.Input = input
	}
	cfg.Column = os.Getenv("TEMPSERIES_COLUMN")
	cfg.Format = getenvDefault("TEMPSERIES_FORMAT", "text")

	batchSize, err := getenvInt("TEMPSERIES_BATCH_SIZE", 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TEMPSERIES_BATCH_SIZE: %w", err)
	}
	cfg.BatchSize = batchSize

	target, err := getenvFloat("TEMPSERIES_TARGET")
	if err != nil {
		return nil, fmt.Errorf("invalid TEMPSERIES_TARGET: %w", err)
	}
	cfg.Target = target

	threshold, err := getenvFloat("TEMPSERIES_THRESHOLD")
	if err != nil {
		return nil, fmt.Errorf("invalid TEMPSERIES_THRESHOLD: %w", err)
	}
	cfg.Threshold = threshold

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

func getenvFloat(key string) (*float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
