package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	ProviderResend = "resend"
	ProviderSMTP   = "smtp"
	ProviderLog    = "log"
)

type Config struct {
	Port           string
	GinMode        string
	FrontendURL    string
	AllowedOrigins []string
	MaxBodyBytes   int64
	LogLevel       string
	// Email provider
	EmailProvider    string
	ResendAPIKey     string
	ContactFromEmail string
	ContactEmailTo   string // Operator address that receives every submission
	// SMTP Configuration
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	// Branding used in outbound emails
	SiteName string
	SiteURL  string
}

func LoadConfig() (*Config, error) {
	// Only effective locally; production injects env directly
	_ = godotenv.Load()

	apiKey := getEnv("RESEND_API_KEY", "")
	provider := strings.ToLower(strings.TrimSpace(getEnv("EMAIL_PROVIDER", "")))
	if provider == "" {
		provider = ProviderLog
		if apiKey != "" {
			provider = ProviderResend
		}
	}

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		FrontendURL:    strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS"),
		MaxBodyBytes:   int64(getEnvInt("MAX_BODY_BYTES", 64<<10)),
		LogLevel:       getEnv("LOG_LEVEL", "debug"),

		EmailProvider:    provider,
		ResendAPIKey:     apiKey,
		ContactFromEmail: getEnv("CONTACT_FROM_EMAIL", "AI Marketing Partners <noreply@aimarketingpartners.ai>"),
		ContactEmailTo:   getEnv("CONTACT_EMAIL_TO", "support@aimarketingpartners.ai"),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		SiteName: getEnv("SITE_NAME", "AI Marketing Partners"),
		SiteURL:  strings.TrimRight(getEnv("SITE_URL", "https://aimarketingpartners.ai"), "/"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.EmailProvider == ProviderLog {
		log.Println("WARNING: EMAIL_PROVIDER=log. Contact submissions will be logged, not delivered.")
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.EmailProvider {
	case ProviderResend:
		if c.ResendAPIKey == "" {
			return fmt.Errorf("config: EMAIL_PROVIDER=resend requires RESEND_API_KEY")
		}
	case ProviderSMTP:
		if c.SMTPHost == "" || c.SMTPUsername == "" || c.SMTPPassword == "" {
			return fmt.Errorf("config: EMAIL_PROVIDER=smtp requires SMTP_HOST, SMTP_USERNAME and SMTP_PASSWORD")
		}
	case ProviderLog:
	default:
		return fmt.Errorf("config: unknown EMAIL_PROVIDER %q", c.EmailProvider)
	}

	if c.ContactEmailTo == "" {
		return fmt.Errorf("config: CONTACT_EMAIL_TO must not be empty")
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("config: MAX_BODY_BYTES must be positive")
	}
	return nil
}

// IsProduction reports whether gin runs in release mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// Origins returns every origin allowed to call the API from a browser
func (c *Config) Origins() []string {
	origins := make([]string, 0, len(c.AllowedOrigins)+1)
	if c.FrontendURL != "" {
		origins = append(origins, c.FrontendURL)
	}
	return append(origins, c.AllowedOrigins...)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping empty entries and trailing slashes
func getEnvList(key string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimRight(strings.TrimSpace(part), "/")
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
