package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Settings holds everything read from the environment at startup.
// It is built once in main and passed down; nothing mutates it afterwards.
type Settings struct {
	Port string
	Env  string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPoolSize int

	AdminUsername string
	AdminPassword string

	EmailJSServiceID  string
	EmailJSTemplateID string
	EmailJSUserID     string

	CORSEnabled bool
	CORSOrigins []string

	RateLimitPerHour int
}

// LoadSettings reads the .env file (if present) and the process environment.
func LoadSettings() *Settings {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using system environment variables")
	}

	s := &Settings{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("APP_ENV", "development"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "brandsurvey"),
		DBPoolSize: getEnvInt("DB_POOL_SIZE", 10),

		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		EmailJSServiceID:  os.Getenv("EMAILJS_SERVICE_ID"),
		EmailJSTemplateID: os.Getenv("EMAILJS_TEMPLATE_ID"),
		EmailJSUserID:     os.Getenv("EMAILJS_USER_ID"),

		CORSEnabled:      getEnvBool("CORS_ENABLED", true),
		RateLimitPerHour: getEnvInt("RATE_LIMIT_PER_HOUR", 30),
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				s.CORSOrigins = append(s.CORSOrigins, o)
			}
		}
	}

	return s
}

// DSN builds the postgres connection string from the individual parts.
func (s *Settings) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		s.DBHost, s.DBPort, s.DBUser, s.DBPassword, s.DBName)
}

// NotificationConfigured reports whether all three EmailJS identifiers are set.
func (s *Settings) NotificationConfigured() bool {
	return s.EmailJSServiceID != "" && s.EmailJSTemplateID != "" && s.EmailJSUserID != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v)
		return def
	}
	return n
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid boolean in environment, using default", "key", key, "value", v)
		return def
	}
	return b
}
