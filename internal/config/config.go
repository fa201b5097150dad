package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	SMTP    SMTPConfig
	Intake  IntakeConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type StorageConfig struct {
	// Backend selects the reference-data store: "file", "postgres" or "redis".
	Backend      string
	DataFilePath string
	Connection   string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
	OperatorTo string
}

type IntakeConfig struct {
	// AdminIDs is the static allow-list for the admin sub-machine.
	AdminIDs []int64
	// SessionTTLMinutes bounds idle-session retention in the registry.
	SessionTTLMinutes int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Storage: StorageConfig{
			Backend:      getEnv("STORAGE_BACKEND", "file"),
			DataFilePath: getEnv("DATA_FILE_PATH", "data.json"),
			Connection:   getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "BotIntake"),
			OperatorTo: getEnv("SMTP_OPERATOR_EMAIL", ""),
		},
		Intake: IntakeConfig{
			AdminIDs:          getEnvAsInt64List("ADMIN_IDS", []int64{103497276}),
			SessionTTLMinutes: getEnvAsInt("SESSION_TTL_MINUTES", 60),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsInt64List(key string, fallback []int64) []int64 {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	parts := strings.Split(strValue, ",")
	out := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			log.Printf("[WARN] Skipping invalid admin id %q in %s", p, key)
			continue
		}
		out = append(out, id)
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
