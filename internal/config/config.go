package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Telegram struct {
	Token       string `validate:"required"`
	AdminID     int64  `validate:"required,gt=0"`
	Debug       bool
	PollTimeout time.Duration `validate:"gte=0"`
	Workers     int           `validate:"gte=1"`
}

type DB struct {
	Driver     string `validate:"oneof=sqlite sqlite3 postgres"`
	Path       string
	DbHOST     string
	DbPORT     string
	DbUSER     string
	DbPASSWORD string
	DbNAME     string
	DbSSLMODE  string
}

type MinIO struct {
	Enabled    bool
	Endpoint   string `validate:"required_if=Enabled true"`
	AccessKey  string
	SecretKey  string
	BucketName string `validate:"required_if=Enabled true"`
	UseSSL     bool
	Region     string
}

type Config struct {
	Telegram    Telegram
	DB          DB
	MinIO       MinIO
	HTTPPort    int `validate:"gte=0,lte=65535"`
	LogLevel    string
	Environment string
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsInt64 returns 0 for unparsable values so validation reports them as missing.
func getEnvAsInt64(key string) int64 {
	value, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		return 0
	}
	return value
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func LoadTelegram() Telegram {
	return Telegram{
		Token:       getEnv("TELEGRAM_API_KEY", ""),
		AdminID:     getEnvAsInt64("TELEGRAM_USER_ID"),
		Debug:       getEnvBool("TELEGRAM_DEBUG", false),
		PollTimeout: parseDuration(getEnv("TELEGRAM_POLL_TIMEOUT", "60s"), 60*time.Second),
		Workers:     getEnvAsInt("BOT_WORKERS", 1),
	}
}

func LoadDB() DB {
	return DB{
		Driver:     getEnv("DB_DRIVER", "sqlite"),
		Path:       getEnv("DB_PATH", "photos.db"),
		DbHOST:     getEnv("DB_HOST", "localhost"),
		DbPORT:     getEnv("DB_PORT", "5432"),
		DbUSER:     getEnv("DB_USER", "postgres"),
		DbPASSWORD: getEnv("DB_PASSWORD", "password"),
		DbNAME:     getEnv("DB_NAME", "imagestore"),
		DbSSLMODE:  getEnv("DB_SSLMODE", "disable"),
	}
}

func LoadMinIO() MinIO {
	return MinIO{
		Enabled:    getEnvBool("MINIO_ENABLED", false),
		Endpoint:   getEnv("MINIO_ENDPOINT", "localhost:9000"),
		AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName: getEnv("MINIO_BUCKET_NAME", "photos"),
		UseSSL:     getEnvBool("MINIO_USE_SSL", false),
		Region:     getEnv("MINIO_REGION", "us-east-1"),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		Telegram:    LoadTelegram(),
		DB:          LoadDB(),
		MinIO:       LoadMinIO(),
		HTTPPort:    getEnvAsInt("HTTP_PORT", 8080),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Environment: getEnv("APP_ENV", "development"),
	}
}

// Validate reports the first missing or malformed setting.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
