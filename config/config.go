package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	HTTP     ServerConfig
	Log      LogConfig
	PineLabs PineLabsConfig
}

type AppConfig struct {
	ServiceName string
}

type ServerConfig struct {
	Host string
	Port string
}

type LogConfig struct {
	Level string
}

type PineLabsConfig struct {
	Environment  string
	ClientID     string
	ClientSecret string
	HTTPTimeout  time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	clientID := os.Getenv("PINELABS_CLIENT_ID")
	if clientID == "" {
		return nil, errors.New("PINELABS_CLIENT_ID environment variable is required")
	}
	clientSecret := os.Getenv("PINELABS_CLIENT_SECRET")
	if clientSecret == "" {
		return nil, errors.New("PINELABS_CLIENT_SECRET environment variable is required")
	}

	return &Config{
		App: AppConfig{
			ServiceName: getEnv("APP_SERVICE_NAME", "pinelabs-node"),
		},
		HTTP: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnv("HTTP_PORT", "8080"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		PineLabs: PineLabsConfig{
			Environment:  getEnv("PINELABS_ENVIRONMENT", "uat"),
			ClientID:     clientID,
			ClientSecret: clientSecret,
			HTTPTimeout:  getSecondsEnv("PINELABS_HTTP_TIMEOUT_SECONDS", 10*time.Second),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getSecondsEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}
