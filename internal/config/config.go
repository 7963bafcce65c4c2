package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nishanthj27/pdf-merger-pro/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort         string
	UploadPath         string
	MaxFileSize        int64
	LogLevel           string
	SessionTTL         time.Duration
	CleanupInterval    time.Duration
	CleanupThreshold   int
	ThumbnailScale     float64
	ThumbnailQueueSize int
	AllowedOrigins     []string
	ForceHTTPS         bool
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:         getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		UploadPath:         getEnvOrDefault("UPLOAD_PATH", "temp_uploads"),
		MaxFileSize:        getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		LogLevel:           getEnvOrDefault("LOG_LEVEL", "info"),
		SessionTTL:         getEnvDurationOrDefault("SESSION_TTL", 10*time.Minute),
		CleanupInterval:    getEnvDurationOrDefault("CLEANUP_INTERVAL", time.Minute),
		CleanupThreshold:   getEnvIntOrDefault("CLEANUP_THRESHOLD", 50),
		ThumbnailScale:     getEnvFloatOrDefault("THUMBNAIL_SCALE", 0.8),
		ThumbnailQueueSize: getEnvIntOrDefault("THUMBNAIL_QUEUE_SIZE", 256),
		AllowedOrigins:     getEnvSliceOrDefault("ALLOWED_ORIGINS", []string{"*"}),
		ForceHTTPS:         getEnvBoolOrDefault("FORCE_HTTPS", false),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetUploadPath returns the upload directory path
func (c *AppConfig) GetUploadPath() string {
	return c.UploadPath
}

// GetMaxFileSize returns the maximum allowed upload size in bytes
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetSessionTTL returns the age threshold after which sessions expire
func (c *AppConfig) GetSessionTTL() time.Duration {
	return c.SessionTTL
}

// GetCleanupInterval returns the background sweep interval
func (c *AppConfig) GetCleanupInterval() time.Duration {
	return c.CleanupInterval
}

// GetCleanupThreshold returns the session count that triggers an
// opportunistic sweep
func (c *AppConfig) GetCleanupThreshold() int {
	return c.CleanupThreshold
}

// GetThumbnailScale returns the preview render scale (1.0 = 72 DPI)
func (c *AppConfig) GetThumbnailScale() float64 {
	return c.ThumbnailScale
}

// GetThumbnailQueueSize returns the thumbnail worker queue capacity
func (c *AppConfig) GetThumbnailQueueSize() int {
	return c.ThumbnailQueueSize
}

// GetAllowedOrigins returns the CORS origin allow-list
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// IsForceHTTPS reports whether plain-HTTP requests should be redirected
func (c *AppConfig) IsForceHTTPS() bool {
	return c.ForceHTTPS
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

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvSliceOrDefault(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		result := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}
