package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type DB struct {
	DbHOST            string
	DbPORT            string
	DbNAME            string
	DbSSLMODE         string
	AnonUSER          string
	AnonPASSWORD      string
	ServiceUSER       string
	ServicePASSWORD   string
	MigrationFilePath string
}

type MinIO struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	BucketName    string
	UseSSL        bool
	Region        string
	PublicBaseURL string
}

type Gemini struct {
	APIKey  string
	Model   string
	BaseURL string
}

type Admin struct {
	Email    string
	Password string
}

type Config struct {
	ServerPort     int
	Env            string
	LogLevel       string
	DB             DB
	MinIO          MinIO
	Gemini         Gemini
	Admin          Admin
	JWTSecretKey   string
	TokenDuration  time.Duration
	CronSecret     string
	MaxUploadSize  int64
	LoginRateLimit int
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

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		return fallback
	}
	return duration
}

func parseMaxUploadSize(value string) int64 {
	size, err := strconv.ParseInt(value, 10, 64)
	if err != nil || size <= 0 {
		return 5 * 1024 * 1024
	}
	return size
}

func LoadDB() DB {
	return DB{
		DbHOST:            getEnv("DB_HOST", "localhost"),
		DbPORT:            getEnv("DB_PORT", "5432"),
		DbNAME:            getEnv("DB_NAME", "postgres"),
		DbSSLMODE:         getEnv("DB_SSLMODE", "require"),
		AnonUSER:          getEnv("DB_ANON_USER", ""),
		AnonPASSWORD:      getEnv("DB_ANON_PASSWORD", ""),
		ServiceUSER:       getEnv("DB_SERVICE_USER", ""),
		ServicePASSWORD:   getEnv("DB_SERVICE_PASSWORD", ""),
		MigrationFilePath: getEnv("DB_MIGRATIONS", "migrations/001_create_tables.sql"),
	}
}

func LoadMinIO() MinIO {
	return MinIO{
		Endpoint:      getEnv("MINIO_ENDPOINT", ""),
		AccessKey:     getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:     getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName:    getEnv("MINIO_BUCKET_NAME", "featured-images"),
		UseSSL:        getEnvBool("MINIO_USE_SSL", false),
		Region:        getEnv("MINIO_REGION", "us-east-1"),
		PublicBaseURL: getEnv("MINIO_PUBLIC_URL", ""),
	}
}

func LoadGemini() Gemini {
	return Gemini{
		APIKey:  getEnv("GEMINI_API_KEY", ""),
		Model:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		BaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort: getEnvAsInt("SERVER_PORT", 8080),
		Env:        getEnv("APP_ENV", "production"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		DB:         LoadDB(),
		MinIO:      LoadMinIO(),
		Gemini:     LoadGemini(),
		Admin: Admin{
			Email:    getEnv("ADMIN_EMAIL", "admin@jokepatra.com"),
			Password: getEnv("ADMIN_PASSWORD", "changeme123"),
		},
		JWTSecretKey:   getEnv("JWT_SECRET_KEY", ""),
		TokenDuration:  parseDuration(getEnv("TOKEN_DURATION", "24h"), 24*time.Hour),
		CronSecret:     getEnv("CRON_SECRET", "dev-secret"),
		MaxUploadSize:  parseMaxUploadSize(getEnv("MAX_UPLOAD_SIZE", "5242880")),
		LoginRateLimit: getEnvAsInt("LOGIN_RATE_LIMIT", 10),
	}
}
