package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	GCP    GCPConfig
	LLM    LLMConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string
	FrontendPath    string
	ShutdownTimeout time.Duration
}

// GCPConfig holds Google Cloud configuration shared by the object store and
// the document store.
type GCPConfig struct {
	ProjectID  string
	BucketName string
}

// LLMConfig holds generative-model configuration
type LLMConfig struct {
	Model           string
	APIKey          string // empty means ambient credentials (ADC)
	Temperature     float32
	MaxOutputTokens int32
	Timeout         time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":" + getEnv("PORT", "8080"),
			FrontendPath:    getEnv("FRONTEND_PATH", "frontend.html"),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		GCP: GCPConfig{
			ProjectID:  getEnv("GCP_PROJECT", getEnv("GOOGLE_CLOUD_PROJECT", "")),
			BucketName: getEnv("BUCKET_NAME", ""),
		},
		LLM: LLMConfig{
			Model:           getEnv("GEMINI_MODEL", "models/gemini-2.5-flash"),
			APIKey:          getEnv("GEMINI_API_KEY", ""),
			Temperature:     getEnvAsFloat32("GEMINI_TEMPERATURE", 0.3),
			MaxOutputTokens: getEnvAsInt32("GEMINI_MAX_OUTPUT_TOKENS", 1500),
			Timeout:         getEnvAsDuration("GEMINI_TIMEOUT", 45*time.Second),
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

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
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

// ValidateConfig validates the loaded configuration. The model API key is
// deliberately not required: an empty key means ambient credentials.
func (c *Config) Validate() error {
	if c.GCP.BucketName == "" {
		return NewAppError("CONFIG_ERROR", "BUCKET_NAME is required", ErrInvalidInput)
	}
	if c.GCP.ProjectID == "" {
		return NewAppError("CONFIG_ERROR", "GCP_PROJECT or GOOGLE_CLOUD_PROJECT is required", ErrInvalidInput)
	}
	if c.Server.Addr == ":" {
		return NewAppError("CONFIG_ERROR", "PORT is required", ErrInvalidInput)
	}
	return nil
}
