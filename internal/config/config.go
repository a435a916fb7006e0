package config

import (
	"fmt"
	"os"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBConn    string
	LogLevel  string
	JWTSecret string

	// Bootstrap credentials for the default admin account, created at
	// startup only if no admin with that phone exists yet.
	AdminPhone    string
	AdminPassword string

	// Weekly summary report. The job runs on SummaryCron; mail is sent
	// only when SMTP settings and ReportEmail are present.
	SummaryCron  string
	ReportEmail  string
	SenderEmail  string
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DBConn:        getEnv("DB_CONN", "host=localhost port=5432 user=weekly password=weekly dbname=weekly sslmode=disable"),
		LogLevel:      getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:     getEnv("JWT_SECRET", "secret"),
		AdminPhone:    getEnv("ADMIN_PHONE", "7815981315"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "Phk@1234"),
		SummaryCron:   getEnv("SUMMARY_CRON", "0 8 * * 1"),
		ReportEmail:   getEnv("REPORT_EMAIL", ""),
		SenderEmail:   getEnv("SENDER_EMAIL", ""),
		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
	}

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.AdminPhone == "" || cfg.AdminPassword == "" {
		return nil, fmt.Errorf("ADMIN_PHONE and ADMIN_PASSWORD are required")
	}

	return cfg, nil
}

// MailEnabled reports whether the weekly summary can be sent by email.
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.SenderEmail != "" && c.ReportEmail != ""
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
