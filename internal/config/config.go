package config

import (
	"os"
	"strconv"
	"time"

	"pilgrimpal/internal/external"
	"pilgrimpal/internal/messaging"
)

// Config содержит конфигурацию приложения
type Config struct {
	Port           string
	GinMode        string
	LogLevel       string
	LogFormat      string
	RequestTimeout time.Duration

	NATS    messaging.Config
	Auth    external.AuthConfig
	Payment external.PaymentConfig
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8081"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_SEC", 30)) * time.Second,

		NATS: messaging.Config{
			URL:       getEnv("NATS_URL", "nats://localhost:4222"),
			ClusterID: getEnv("NATS_CLUSTER_ID", "pilgrimpal"),
			ClientID:  getEnv("NATS_CLIENT_ID", "pilgrimpal-api"),
			Enabled:   getEnv("NATS_ENABLED", "false") == "true",
		},

		Auth: external.AuthConfig{
			Latency:     time.Duration(getEnvInt("AUTH_LATENCY_MS", 150)) * time.Millisecond,
			FailureRate: getEnvFloat("AUTH_FAILURE_RATE", 0.05),
		},

		Payment: external.PaymentConfig{
			Latency:     time.Duration(getEnvInt("PAYMENT_LATENCY_MS", 300)) * time.Millisecond,
			FailureRate: getEnvFloat("PAYMENT_FAILURE_RATE", 0.1),
		},
	}
}

// getEnv получает значение переменной окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает целочисленное значение переменной окружения
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvFloat получает дробное значение переменной окружения
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
