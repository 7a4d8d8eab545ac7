// Package config provides server configuration loaded from environment
// variables.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

// Default sender and recipient for transactional email.
const (
	DefaultMailFrom = "Immoralia <web@immoralia.com>"
	DefaultMailTo   = "equipo@immoralia.com"
	DefaultPort     = 8080
)

// Config holds everything the lead-capture server needs.
type Config struct {
	Port        int
	DatabaseURL string

	// Email. An empty API key disables sending; the contact endpoint then
	// reports the service as unavailable.
	ResendAPIKey string
	MailFrom     string
	MailTo       string

	// Task board. Both values empty disables board delivery.
	TaskboardToken  string
	TaskboardListID string
}

// Load creates a configuration from environment variables. It reads
// DATABASE_URL (required), PORT (default 8080), RESEND_API_KEY, MAIL_FROM,
// MAIL_TO, CLICKUP_API_TOKEN and CLICKUP_LIST_ID.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            DefaultPort,
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		ResendAPIKey:    os.Getenv("RESEND_API_KEY"),
		MailFrom:        os.Getenv("MAIL_FROM"),
		MailTo:          os.Getenv("MAIL_TO"),
		TaskboardToken:  os.Getenv("CLICKUP_API_TOKEN"),
		TaskboardListID: os.Getenv("CLICKUP_LIST_ID"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	if cfg.MailFrom == "" {
		cfg.MailFrom = DefaultMailFrom
	}
	if cfg.MailTo == "" {
		cfg.MailTo = DefaultMailTo
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.ResendAPIKey == "" {
		log.Println("config: RESEND_API_KEY not set, email delivery disabled")
	}
	if cfg.TaskboardToken == "" || cfg.TaskboardListID == "" {
		log.Println("config: task board not configured, board delivery disabled")
	}

	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got: %d", c.Port)
	}
	if c.MailFrom == "" || c.MailTo == "" {
		return fmt.Errorf("mail sender and recipient cannot be empty")
	}
	return nil
}
