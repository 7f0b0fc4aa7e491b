package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the decision service.
type Config struct {
	// gRPC server port
	GRPCPort int
	// HTTP API/health port
	HTTPPort int
	// Database configuration
	Database DatabaseConfig
	// Kafka configuration
	Kafka KafkaConfig
	// Directory holding scoring rule artifacts; empty selects the embedded defaults
	ModelDir string
	// Service name for observability
	ServiceName string
	// Deployment environment (development, staging, production)
	Environment string
	// Log verbosity and output format
	LogLevel  string
	LogFormat string
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// KafkaConfig holds Kafka connection settings.
type KafkaConfig struct {
	Brokers []string
}

// Validate checks required configuration values.
func (c Config) Validate() {
	if c.Database.Password == "" {
		panic("DB_PASSWORD environment variable is required")
	}
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	return Config{
		GRPCPort:    getEnvInt("GRPC_PORT", 9090),
		HTTPPort:    getEnvInt("HTTP_PORT", 8090),
		ServiceName: getEnv("SERVICE_NAME", "decision-service"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		ModelDir:    getEnv("MODEL_DIR", ""),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "loc"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "loc_decision"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
		},
		Kafka: KafkaConfig{
			Brokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
		},
	}
}

// GRPCAddr returns the listen address for the gRPC server.
func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

// HTTPAddr returns the listen address for the HTTP server.
func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
