package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Server     ServerConfig
	Extraction ExtractionConfig
	Classifier ClassifierConfig
	Dedup      DedupConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// ExtractionConfig holds extraction-service-related configuration
type ExtractionConfig struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	MaxWorkers int
}

// ClassifierConfig holds URL-classifier-related configuration
type ClassifierConfig struct {
	BaseURL           string
	Timeout           time.Duration
	AutoSkipThreshold float64
}

// DedupConfig holds duplicate-detection thresholds
type DedupConfig struct {
	DuplicateThreshold float64
	ReviewThreshold    float64
	MaxCandidates      int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Extraction: ExtractionConfig{
			BaseURL:    getEnv("EXTRACTION_URL", ""),
			APIKey:     getEnv("EXTRACTION_API_KEY", ""),
			Timeout:    getEnvAsDuration("EXTRACTION_TIMEOUT", 90*time.Second),
			MaxWorkers: getEnvAsInt("EXTRACTION_MAX_WORKERS", 3),
		},
		Classifier: ClassifierConfig{
			BaseURL:           getEnv("CLASSIFIER_URL", ""),
			Timeout:           getEnvAsDuration("CLASSIFIER_TIMEOUT", 30*time.Second),
			AutoSkipThreshold: getEnvAsFloat64("CLASSIFIER_AUTO_SKIP_THRESHOLD", 0.75),
		},
		Dedup: DedupConfig{
			DuplicateThreshold: getEnvAsFloat64("DEDUP_DUPLICATE_THRESHOLD", 0.90),
			ReviewThreshold:    getEnvAsFloat64("DEDUP_REVIEW_THRESHOLD", 0.60),
			MaxCandidates:      getEnvAsInt("DEDUP_MAX_CANDIDATES", 10),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Extraction.BaseURL == "" {
		return NewAppError("CONFIG_ERROR", "EXTRACTION_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Dedup.ReviewThreshold > c.Dedup.DuplicateThreshold {
		return NewAppError("CONFIG_ERROR", "DEDUP_REVIEW_THRESHOLD must not exceed DEDUP_DUPLICATE_THRESHOLD", ErrInvalidInput)
	}
	return nil
}
