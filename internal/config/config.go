package config

import (
	"os"
	"strconv"

	"resume-analyzer/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort           string
	MaxFileSize          int64
	MaxBatchFiles        int
	ScannedTextThreshold int
	OCRLanguage          string
	GeminiAPIKey         string
	GenModel             string
	LogLevel             string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:           getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		MaxFileSize:          getEnvInt64OrDefault("MAX_FILE_SIZE", 10*1024*1024), // 10 MiB default
		MaxBatchFiles:        getEnvIntOrDefault("MAX_BATCH_FILES", 5),
		ScannedTextThreshold: getEnvIntOrDefault("SCANNED_TEXT_THRESHOLD", 50),
		OCRLanguage:          getEnvOrDefault("OCR_LANGUAGE", "eng"),
		GeminiAPIKey:         getEnvOrDefault("GEMINI_API_KEY", ""),
		GenModel:             getEnvOrDefault("GEN_MODEL", "gemini-1.5-flash"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetMaxFileSize returns the maximum allowed size per uploaded file
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetMaxBatchFiles returns the maximum number of files per batch
func (c *AppConfig) GetMaxBatchFiles() int {
	return c.MaxBatchFiles
}

// GetScannedTextThreshold returns the text-layer character count below
// which a PDF is treated as scanned. Heuristic, tunable.
func (c *AppConfig) GetScannedTextThreshold() int {
	return c.ScannedTextThreshold
}

// GetOCRLanguage returns the OCR recognition language
func (c *AppConfig) GetOCRLanguage() string {
	return c.OCRLanguage
}

// GetGeminiAPIKey returns the inference API key
func (c *AppConfig) GetGeminiAPIKey() string {
	return c.GeminiAPIKey
}

// GetGenModel returns the generation model name
func (c *AppConfig) GetGenModel() string {
	return c.GenModel
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
