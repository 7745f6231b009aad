// Package config provides configuration management for the savings service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server     ServerConfig
	Session    SessionConfig
	Calculator CalculatorConfig
	Log        LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
	RequestTimeout time.Duration
}

// SessionConfig holds the calculator session store configuration.
type SessionConfig struct {
	Capacity     int
	TTL          time.Duration
	SecureCookie bool
}

// CalculatorConfig holds the catalog source and pricing figures.
type CalculatorConfig struct {
	// CatalogPath points at a YAML tool catalog. Empty means the embedded one.
	CatalogPath        string
	DefaultHeadcount   int
	SavingsPerTool     int
	ProTierCost        int
	EnterpriseTierCost int
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
		},
		Session: SessionConfig{
			Capacity:     getEnvInt("SESSION_CAPACITY", 10000),
			TTL:          getEnvDuration("SESSION_TTL", 30*time.Minute),
			SecureCookie: getEnvBool("COOKIE_SECURE", false),
		},
		Calculator: CalculatorConfig{
			CatalogPath:        getEnv("CATALOG_PATH", ""),
			DefaultHeadcount:   getEnvInt("DEFAULT_HEADCOUNT", 100),
			SavingsPerTool:     getEnvInt("SAVINGS_PER_TOOL", 80),
			ProTierCost:        getEnvInt("PRO_TIER_COST", 90),
			EnterpriseTierCost: getEnvInt("ENTERPRISE_TIER_COST", 150),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
