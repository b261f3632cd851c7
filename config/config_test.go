package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "sandbox", cfg.Plaid.Environment)
	assert.Equal(t, 587, cfg.SMTP.Port)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "production")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_123")
	t.Setenv("PLAID_CLIENT_ID", "plaid-client")
	t.Setenv("PLAID_ENV", "production")
	t.Setenv("FIREBASE_SERVICE_ACCOUNT_FILE", "/etc/creds/sa.json")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("CONTACT_EMAIL", "ops@example.com")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Env)
	assert.Equal(t, "sk_test_123", cfg.Stripe.SecretKey)
	assert.Equal(t, "whsec_123", cfg.Stripe.WebhookSecret)
	assert.Equal(t, "plaid-client", cfg.Plaid.ClientID)
	assert.Equal(t, "production", cfg.Plaid.Environment)
	assert.Equal(t, "/etc/creds/sa.json", cfg.Firebase.ServiceAccountFile)
	assert.Equal(t, 2525, cfg.SMTP.Port)
	assert.Equal(t, "ops@example.com", cfg.SMTP.ContactEmail)
}

func TestLoadBadSMTPPortFallsBack(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-number")

	cfg := Load()

	assert.Equal(t, 587, cfg.SMTP.Port)
}
