package email

import (
	"os"
	"strconv"
	"strings"
	"time"

	"ziada-travel/utils"
)

// Provider selects which backend carries outbound mail.
type Provider string

const (
	ProviderSMTP        Provider = "smtp"
	ProviderMailtrapAPI Provider = "mailtrap_api"
	ProviderBrevoAPI    Provider = "brevo_api"
	ProviderBrevoAlias  Provider = "brevo"
)

// SMTPConfig holds direct SMTP relay settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	UseTLS   bool
}

// Config is the full email block, loaded once at startup and read-only after.
type Config struct {
	Provider        Provider
	DefaultFrom     string // "Name <email>" configuration string
	AdminEmail      string
	ExtraRecipients []string
	SiteURL         string
	Timeout         time.Duration

	SMTP SMTPConfig

	MailtrapToken string

	BrevoAPIKey      string
	BrevoSenderEmail string
	BrevoSenderName  string

	// Declared limits, recognized but not enforced by the dispatcher.
	RatePerMinute int
	RatePerHour   int
}

// LoadConfig reads the email configuration from the environment.
func LoadConfig() Config {
	return Config{
		Provider:        Provider(getEnv("EMAIL_PROVIDER", "smtp")),
		DefaultFrom:     getEnv("DEFAULT_FROM_EMAIL", "Ziada Tours and Travel.com <info@ziadatoursandtravel.com>"),
		AdminEmail:      getEnv("ADMIN_EMAIL", "info@ziadatoursandtravel.com"),
		ExtraRecipients: utils.SplitRecipients(os.Getenv("EXTRA_EMAIL_RECIPIENTS")),
		SiteURL:         strings.TrimRight(getEnv("SITE_URL", "http://127.0.0.1:8080"), "/"),
		Timeout:         time.Duration(getEnvInt("EMAIL_TIMEOUT", 10)) * time.Second,
		SMTP: SMTPConfig{
			Host:     getEnv("EMAIL_HOST", "smtp-relay.brevo.com"),
			Port:     getEnvInt("EMAIL_PORT", 587),
			Username: os.Getenv("EMAIL_HOST_USER"),
			Password: os.Getenv("EMAIL_HOST_PASSWORD"),
			UseTLS:   getEnvBool("EMAIL_USE_TLS", true),
		},
		MailtrapToken:    os.Getenv("MAILTRAP_API_TOKEN"),
		BrevoAPIKey:      os.Getenv("BREVO_API_KEY"),
		BrevoSenderEmail: os.Getenv("BREVO_SENDER_EMAIL"),
		BrevoSenderName:  getEnv("BREVO_SENDER_NAME", "Ziada Tours and Travel"),
		RatePerMinute:    getEnvInt("EMAIL_RATE_LIMIT_PER_MINUTE", 10),
		RatePerHour:      getEnvInt("EMAIL_RATE_LIMIT_PER_HOUR", 100),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value == "true" || value == "1" || value == "yes"
}
