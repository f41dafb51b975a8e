package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Satellite SatelliteConfig
	Keys      APIKeys
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	ProximityMeters    float64
}

type DatabaseConfig struct {
	Connection string
}

type SatelliteConfig struct {
	FetchLatency    time.Duration
	FailureRate     float64
	CacheTTL        time.Duration
	RefreshInterval time.Duration
}

type APIKeys struct {
	GoogleGeocoding string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			ProximityMeters:    getEnvAsFloat("PROXIMITY_THRESHOLD_METERS", 50),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Satellite: SatelliteConfig{
			FetchLatency:    getEnvAsDuration("SATELLITE_FETCH_LATENCY", 1500*time.Millisecond),
			FailureRate:     getEnvAsFloat("SATELLITE_FAILURE_RATE", 0.1),
			CacheTTL:        getEnvAsDuration("SATELLITE_CACHE_TTL", 10*time.Minute),
			RefreshInterval: getEnvAsDuration("SATELLITE_REFRESH_INTERVAL", 30*time.Minute),
		},
		Keys: APIKeys{
			GoogleGeocoding: getEnv("GOOGLE_GEOCODING_API_KEY", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
