package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Stripe   StripeConfig
	Plaid    PlaidConfig
	Firebase FirebaseConfig
	SMTP     SMTPConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type StripeConfig struct {
	SecretKey      string
	PublishableKey string
	WebhookSecret  string
}

// PlaidConfig holds bank-link aggregator credentials. Environment is one of
// sandbox, development, production.
type PlaidConfig struct {
	ClientID    string
	Secret      string
	Environment string
}

// FirebaseConfig locates the service account credential. ServiceAccountJSON
// (inline JSON, multi-line env vars work on Render) wins over ServiceAccountFile.
type FirebaseConfig struct {
	ServiceAccountJSON string
	ServiceAccountFile string
}

// SMTPConfig is optional; contact notifications are skipped when incomplete.
type SMTPConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	ContactEmail string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "5000"),
			Env:          getEnv("APP_ENV", "development"),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Stripe: StripeConfig{
			SecretKey:      os.Getenv("STRIPE_SECRET_KEY"),
			PublishableKey: os.Getenv("STRIPE_PUBLISHABLE_KEY"),
			WebhookSecret:  os.Getenv("STRIPE_WEBHOOK_SECRET"),
		},
		Plaid: PlaidConfig{
			ClientID:    os.Getenv("PLAID_CLIENT_ID"),
			Secret:      os.Getenv("PLAID_SECRET"),
			Environment: getEnv("PLAID_ENV", "sandbox"),
		},
		Firebase: FirebaseConfig{
			ServiceAccountJSON: os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"),
			ServiceAccountFile: os.Getenv("FIREBASE_SERVICE_ACCOUNT_FILE"),
		},
		SMTP: SMTPConfig{
			Host:         os.Getenv("SMTP_HOST"),
			Port:         getEnvInt("SMTP_PORT", 587),
			User:         os.Getenv("SMTP_USER"),
			Password:     os.Getenv("SMTP_PASSWORD"),
			ContactEmail: os.Getenv("CONTACT_EMAIL"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
