package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"RESEND_API_KEY", "EMAIL_PROVIDER", "SMTP_HOST", "SMTP_USERNAME", "SMTP_PASSWORD", "ALLOWED_ORIGINS", "FRONTEND_URL", "CONTACT_EMAIL_TO", "MAX_BODY_BYTES"} {
		t.Setenv(k, "")
	}
}

func TestLoadConfigPicksProviderFromKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONTACT_EMAIL_TO", "ops@example.com")
	t.Setenv("MAX_BODY_BYTES", "1024")

	t.Run("no key falls back to log", func(t *testing.T) {
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, ProviderLog, cfg.EmailProvider)
		assert.Equal(t, int64(1024), cfg.MaxBodyBytes)
	})

	t.Run("key selects resend", func(t *testing.T) {
		t.Setenv("RESEND_API_KEY", "re_test")
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, ProviderResend, cfg.EmailProvider)
	})

	t.Run("explicit provider wins", func(t *testing.T) {
		t.Setenv("RESEND_API_KEY", "re_test")
		t.Setenv("EMAIL_PROVIDER", "LOG")
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, ProviderLog, cfg.EmailProvider)
	})
}

func TestLoadConfigRejectsSMTPWithoutCredentials(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONTACT_EMAIL_TO", "ops@example.com")
	t.Setenv("EMAIL_PROVIDER", "smtp")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{EmailProvider: ProviderLog, ContactEmailTo: "ops@example.com", MaxBodyBytes: 1024}
	}

	t.Run("log provider needs nothing", func(t *testing.T) {
		assert.NoError(t, base().validate())
	})

	t.Run("resend needs key", func(t *testing.T) {
		c := base()
		c.EmailProvider = ProviderResend
		assert.Error(t, c.validate())
		c.ResendAPIKey = "re_test"
		assert.NoError(t, c.validate())
	})

	t.Run("smtp needs credentials", func(t *testing.T) {
		c := base()
		c.EmailProvider = ProviderSMTP
		c.SMTPHost = "smtp.example.com"
		assert.Error(t, c.validate())
		c.SMTPUsername, c.SMTPPassword = "u", "p"
		assert.NoError(t, c.validate())
	})

	t.Run("unknown provider", func(t *testing.T) {
		c := base()
		c.EmailProvider = "pigeon"
		assert.Error(t, c.validate())
	})
}

func TestOriginsIncludesFrontendAndList(t *testing.T) {
	clearEnv(t)
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com/, ,https://b.example.com")

	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, getEnvList("ALLOWED_ORIGINS"))

	c := &Config{FrontendURL: "https://www.example.com", AllowedOrigins: getEnvList("ALLOWED_ORIGINS")}
	require.Len(t, c.Origins(), 3)
	assert.Equal(t, "https://www.example.com", c.Origins()[0])
}
