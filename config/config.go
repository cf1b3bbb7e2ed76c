// File: /config/config.go
package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	SiteURL     string

	// Seed admin credentials (first boot only)
	AdminEmail    string
	AdminPassword string

	// Email Configuration
	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
	FromEmail   string
	NotifyEmail string
}

func Load() *Config {
	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "587"))

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/findshuttles?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key"),
		SiteURL:     getEnv("SITE_URL", "https://www.bookshuttles.com"),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@bookshuttles.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),

		SMTPHost:    getEnv("SMTP_HOST", ""),
		SMTPPort:    smtpPort,
		SMTPUser:    getEnv("SMTP_USERNAME", ""),
		SMTPPass:    getEnv("SMTP_PASSWORD", ""),
		FromEmail:   getEnv("FROM_EMAIL", "noreply@bookshuttles.com"),
		NotifyEmail: getEnv("NOTIFY_EMAIL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
