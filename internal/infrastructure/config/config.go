package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the veriguard engine.
type Config struct {
	Environment string
	LogLevel    string
	LogFormat   string
	RulesFile   string
	MetricsAddr string
	// TLS key pair for the metrics endpoint; plain HTTP when unset.
	MetricsTLSCert string
	MetricsTLSKey  string
	Strict         bool
	TraceStdout    bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		RulesFile:      getEnv("VERIGUARD_RULES_FILE", ""),
		MetricsAddr:    getEnv("METRICS_ADDR", ""),
		MetricsTLSCert: getEnv("METRICS_TLS_CERT", ""),
		MetricsTLSKey:  getEnv("METRICS_TLS_KEY", ""),
		Strict:         getEnvBool("VERIGUARD_STRICT", false),
		TraceStdout:    getEnvBool("TRACE_STDOUT", false),
	}
}

// MetricsEnabled reports whether the metrics endpoint should be served.
func (c *Config) MetricsEnabled() bool {
	return c.MetricsAddr != ""
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
