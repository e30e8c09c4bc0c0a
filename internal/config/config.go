package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	ServerPort string

	JWTSecret string

	// TokenMaxAge is the signed token lifetime in seconds.
	// 0 disables the expiry claim entirely.
	TokenMaxAge int

	RedisURL string

	// GATrackingID is the Google Analytics tracking id used by the
	// review-event beacon. Empty disables analytics delivery.
	GATrackingID string

	AnalyticsWorkerCount int
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found or error loading it, relying on environment variables")
	}

	tokenMaxAge := 86400
	if v := os.Getenv("TOKEN_MAX_AGE"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			tokenMaxAge = parsed
		}
	}

	workerCount, err := strconv.Atoi(os.Getenv("ANALYTICS_WORKER_COUNT"))
	if err != nil || workerCount <= 0 {
		workerCount = 2
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	sslMode := os.Getenv("DB_SSLMODE")
	if sslMode == "" {
		sslMode = "disable"
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	return &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSSLMode:  sslMode,

		ServerPort: serverPort,

		JWTSecret: os.Getenv("SECRET_KEY"),

		TokenMaxAge: tokenMaxAge,

		RedisURL: redisURL,

		GATrackingID: os.Getenv("GA_KEY"),

		AnalyticsWorkerCount: workerCount,
	}, nil
}
