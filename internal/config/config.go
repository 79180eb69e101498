package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

type Config struct {
	HTTP     HTTPConfig
	Log      LogConfig
	Overlap  OverlapConfig
	Database DatabaseConfig
}

type HTTPConfig struct {
	Addr           string
	UploadMaxBytes int64
}

type LogConfig struct {
	Level string
}

type OverlapConfig struct {
	ResultStore       string
	ResultTTL         time.Duration
	SweepInterval     time.Duration
	DistinctEmployees bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		HTTP: HTTPConfig{
			Addr:           getEnv("HTTP_ADDR", ":8080"),
			UploadMaxBytes: getEnvInt64("UPLOAD_MAX_BYTES", 10<<20),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Overlap: OverlapConfig{
			ResultStore:       getEnv("RESULT_STORE", StoreMemory),
			ResultTTL:         getEnvDuration("RESULT_TTL", 30*time.Minute),
			SweepInterval:     getEnvDuration("RESULT_SWEEP_INTERVAL", time.Minute),
			DistinctEmployees: getEnvBool("OVERLAP_DISTINCT_EMPLOYEES", false),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "employees"),
			Password: getEnv("DB_PASSWORD", "employees"),
			DBName:   getEnv("DB_NAME", "employees_pair"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value, err := strconv.ParseInt(os.Getenv(key), 10, 64); err == nil && value > 0 {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(os.Getenv(key)); err == nil && value > 0 {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}
