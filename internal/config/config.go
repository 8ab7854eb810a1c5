package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	AI       AIConfig
	Mail     MailConfig
	Storage  StorageConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// AIConfig selects the external resume-analysis provider. The client is
// only constructed when both Provider and APIKey are set; otherwise the
// local keyword analyzer handles every request.
type AIConfig struct {
	Provider string
	APIKey   string
	Model    string
}

type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

type StorageConfig struct {
	UploadPath     string
	GuidelinesPath string
	MaxFileSize    int64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "placement_prediction"),
		},
		AI: AIConfig{
			Provider: getEnv("AI_PROVIDER", ""),
			APIKey:   getEnv("AI_API_KEY", ""),
			Model:    getEnv("AI_MODEL", "gemini-2.5-flash"),
		},
		Mail: MailConfig{
			Host:     getEnv("MAIL_SERVER", "smtp.gmail.com"),
			Port:     getEnvAsInt("MAIL_PORT", 587),
			Username: getEnv("MAIL_USERNAME", ""),
			Password: getEnv("MAIL_PASSWORD", ""),
			Sender:   getEnv("MAIL_DEFAULT_SENDER", ""),
		},
		Storage: StorageConfig{
			UploadPath:     getEnv("UPLOAD_PATH", "./uploads"),
			GuidelinesPath: getEnv("GUIDELINES_PATH", "./guidelines"),
			MaxFileSize:    getEnvAsInt64("MAX_FILE_SIZE", 16777216),
		},
	}

	if cfg.Mail.Sender == "" {
		cfg.Mail.Sender = cfg.Mail.Username
	}

	return cfg
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}
