package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv          string
	Port            string
	BackendBaseURL  string
	BackendTimeout  time.Duration
	PayeeName       string
	TransactionNote string
	Currency        string
	OriginURL       string
	SMTPHost        string
	SMTPPort        string
	SMTPUser        string
	SMTPPass        string
	SMTPFrom        string
	NotifyEmail     string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	backendTimeout, err := time.ParseDuration(getEnv("BACKEND_TIMEOUT", "15s"))
	if err != nil {
		backendTimeout = 15 * time.Second
	}

	AppConfig = &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		Port:            getEnv("APP_PORT", getEnv("PORT", "8082")),
		BackendBaseURL:  getEnv("BACKEND_BASE_URL", "https://sretea.onrender.com/api"),
		BackendTimeout:  backendTimeout,
		PayeeName:       getEnv("UPI_PAYEE_NAME", "SreeRajalakshmiEnterprises"),
		TransactionNote: getEnv("UPI_TRANSACTION_NOTE", "TeaPayment"),
		Currency:        getEnv("UPI_CURRENCY", "INR"),
		OriginURL:       getEnv("ORIGIN_URL", ""),
		SMTPHost:        getEnv("SMTP_HOST", ""),
		SMTPPort:        getEnv("SMTP_PORT", "587"),
		SMTPUser:        getEnv("SMTP_USER", ""),
		SMTPPass:        getEnv("SMTP_PASS", ""),
		SMTPFrom:        getEnv("SMTP_FROM", ""),
		NotifyEmail:     getEnv("NOTIFY_EMAIL", ""),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
	log.Printf("Backend base URL: %s", AppConfig.BackendBaseURL)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
