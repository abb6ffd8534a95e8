package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server
	Cache
	Ledger
	Workers
	LogMode string
}

type Server struct {
	Port string
}

type Cache struct {
	Host     string
	Port     string
	Password string
}

type Ledger struct {
	BaseURL string
	Timeout time.Duration
}

type Workers struct {
	SnapshotCount      int
	SnapshotBufferSize int
}

func NewConfig() *Config {
	return &Config{
		Server: Server{
			Port: getEnvString("SERVER_PORT", "8080"),
		},
		Cache: Cache{
			Host:     getEnvString("CACHE_HOST", "localhost"),
			Port:     getEnvString("CACHE_PORT", "6379"),
			Password: getEnvString("CACHE_PASSWORD", ""),
		},
		Ledger: Ledger{
			BaseURL: getEnvString("LEDGER_URL", "http://localhost:3000"),
			Timeout: getEnvDuration("LEDGER_TIMEOUT", 5*time.Second),
		},
		Workers: Workers{
			SnapshotCount:      getEnvInt("SNAPSHOT_WORKERS_COUNT", 2),
			SnapshotBufferSize: getEnvInt("SNAPSHOT_WORKERS_EVENTS_BUFFER_SIZE", 100),
		},
		LogMode: getEnvString("LOG_MODE", "dev"),
	}
}

func getEnvString(key string, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	durationValue, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return durationValue
}
