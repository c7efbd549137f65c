package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validTestConfig() *Config {
	return &Config{
		JWTSecret:  "test-secret-key-that-is-long-enough-0000",
		Port:       "8080",
		DBPassword: "s3curepassw0rd",
		Env:        "development",
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid development config", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validTestConfig().Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		t.Parallel()
		cfg := validTestConfig()
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		t.Parallel()
		cfg := validTestConfig()
		cfg.JWTSecret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("production rejects default jwt secret", func(t *testing.T) {
		t.Parallel()
		cfg := validTestConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "your-secret-key-change-in-production"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("production rejects short jwt secret", func(t *testing.T) {
		t.Parallel()
		cfg := validTestConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "short"
		assert.Error(t, cfg.Validate())
	})

	t.Run("production rejects weak db password", func(t *testing.T) {
		t.Parallel()
		cfg := validTestConfig()
		cfg.Env = "production"
		cfg.JWTSecret = strings.Repeat("a", 40)
		cfg.DBPassword = "password"
		assert.Error(t, cfg.Validate())
	})
}
