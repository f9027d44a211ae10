// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "3333".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// APIBaseURL is the public base URL of this API, used only to build the
	// confirmation links embedded in e-mails. Required.
	APIBaseURL string

	// WebBaseURL is the base URL of the web app, used as the redirect target
	// after a confirmation link is followed. Required.
	WebBaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// SMTPHost selects real mail delivery. When empty, outgoing mail is
	// logged instead of sent — handy for local development.
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string

	// MailFromName and MailFromEmail override the sender identity on
	// outgoing mail. Both optional.
	MailFromName  string
	MailFromEmail string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", "3333"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CORSOrigins:   splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPUsername:  os.Getenv("SMTP_USERNAME"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		MailFromName:  os.Getenv("MAIL_FROM_NAME"),
		MailFromEmail: os.Getenv("MAIL_FROM_EMAIL"),
	}

	port, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return Config{}, fmt.Errorf("SMTP_PORT must be a number: %w", err)
	}
	cfg.SMTPPort = port

	var missing []string
	for _, v := range []struct {
		name string
		dst  *string
	}{
		{"DATABASE_URL", &cfg.DatabaseURL},
		{"API_BASE_URL", &cfg.APIBaseURL},
		{"WEB_BASE_URL", &cfg.WebBaseURL},
	} {
		*v.dst = os.Getenv(v.name)
		if *v.dst == "" {
			missing = append(missing, v.name)
		}
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	// Confirmation links are concatenated onto these; a trailing slash would
	// produce double slashes in every mail.
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	cfg.WebBaseURL = strings.TrimRight(cfg.WebBaseURL, "/")

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
