package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBPort         string
	DBMaxRetries   int
	DBRetryDelay   int
	Port           string
	APP_ENV        string
	LogLevel       string
	DefaultPageLen int
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	return ENV{
		DBHost:         getEnv("DB_HOST", "127.0.0.1"),
		DBUser:         getEnv("DB_USER", "root"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         getEnv("DB_NAME", "warehouse"),
		DBPort:         getEnv("DB_PORT", "3306"),
		DBMaxRetries:   getEnvInt("DB_MAX_RETRIES", 10),
		DBRetryDelay:   getEnvInt("DB_RETRY_DELAY_SECONDS", 5),
		Port:           getEnv("APP_PORT", ":8080"),
		APP_ENV:        getEnv("APP_ENV", "production"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DefaultPageLen: getEnvInt("DEFAULT_PAGE_SIZE", 20),
	}

}

func (e ENV) IsDevelopment() bool {
	return e.APP_ENV == "development"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
