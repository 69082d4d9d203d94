package config

import (
	"github.com/joho/godotenv"
	"log"
	"os"
	"strconv"
	"time"
)

type DB struct {
	DbHOST     string
	DbPORT     string
	DbUSER     string
	DbPASSWORD string
	DbNAME     string
	DbSSLMODE  string
}

type MinIO struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	Region     string
	URLExpiry  time.Duration
}

type Stripe struct {
	SecretKey     string
	WebhookSecret string
	Currency      string
}

type Contact struct {
	ResendAPIKey string
	FromAddress  string
	ToAddress    string
}

type Config struct {
	ServerPort           int
	DB                   DB
	MinIO                MinIO
	Stripe               Stripe
	Contact              Contact
	JWTSecretKey         string
	AccessTokenDuration  time.Duration
	RefreshTokenDuration time.Duration
	ContentDir           string
	AlbumsDir            string
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// requireEnv - обязательные значения; без них запуск невозможен
func requireEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		log.Fatalf("обязательная переменная окружения %s не установлена", key)
	}
	return value
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
	if err != nil {
		return fallback
	}
	return duration
}

func LoadDB() DB {
	return DB{
		DbHOST:     getEnv("DB_HOST", "localhost"),
		DbPORT:     getEnv("DB_PORT", "5432"),
		DbUSER:     getEnv("DB_USER", "postgres"),
		DbPASSWORD: getEnv("DB_PASSWORD", "password"),
		DbNAME:     getEnv("DB_NAME", "albumstore"),
		DbSSLMODE:  getEnv("DB_SSLMODE", "disable"),
	}
}

func LoadMinIO() MinIO {
	return MinIO{
		Endpoint:   getEnv("MINIO_ENDPOINT", "localhost:9000"),
		AccessKey:  requireEnv("MINIO_ACCESS_KEY"),
		SecretKey:  requireEnv("MINIO_SECRET_KEY"),
		BucketName: getEnv("MINIO_BUCKET_NAME", "albums"),
		UseSSL:     getEnvBool("MINIO_USE_SSL", false),
		Region:     getEnv("MINIO_REGION", "us-east-1"),
		URLExpiry:  parseDuration(getEnv("MINIO_URL_EXPIRY", "24h"), 24*time.Hour),
	}
}

func LoadStripe() Stripe {
	return Stripe{
		SecretKey:     requireEnv("STRIPE_SECRET_KEY"),
		WebhookSecret: requireEnv("STRIPE_WEBHOOK_SECRET"),
		Currency:      getEnv("CHECKOUT_CURRENCY", "usd"),
	}
}

func LoadContact() Contact {
	return Contact{
		ResendAPIKey: requireEnv("RESEND_API_KEY"),
		FromAddress:  getEnv("CONTACT_FROM", "Contact Form <bot@musicaluniversefactory.com>"),
		ToAddress:    requireEnv("CONTACT_EMAIL"),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:           getEnvAsInt("SERVER_PORT", 8080),
		DB:                   LoadDB(),
		MinIO:                LoadMinIO(),
		Stripe:               LoadStripe(),
		Contact:              LoadContact(),
		JWTSecretKey:         requireEnv("JWT_SECRET_KEY"),
		AccessTokenDuration:  parseDuration(getEnv("ACCESS_TOKEN_DURATION", "2h"), 2*time.Hour),
		RefreshTokenDuration: parseDuration(getEnv("REFRESH_TOKEN_DURATION", "168h"), 168*time.Hour),
		ContentDir:           getEnv("CONTENT_DIR", "public/slugs"),
		AlbumsDir:            getEnv("ALBUMS_DIR", "public/albums"),
	}
}
