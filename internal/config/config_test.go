package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validProductionConfig() *Config {
	return &Config{
		Env:                     "production",
		Port:                    "8228",
		JWTSecret:               "secure-secret-at-least-32-chars-long",
		DBPassword:              "secure-password",
		DBSSLMode:               "require",
		RecipeAPIKey:            "real-api-key",
		RecipeAPITimeoutSeconds: 10,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
	}{
		{"Valid production config", func(c *Config) {}, false},
		{"Missing port", func(c *Config) { c.Port = "" }, true},
		{"Missing JWT secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"Default JWT secret in production", func(c *Config) {
			c.JWTSecret = "your-secret-key-change-in-production"
		}, true},
		{"Short JWT secret in production", func(c *Config) { c.JWTSecret = "short" }, true},
		{"Default DB password in production", func(c *Config) { c.DBPassword = "password" }, true},
		{"Empty DB password in production", func(c *Config) { c.DBPassword = "" }, true},
		{"Missing recipe API key in production", func(c *Config) { c.RecipeAPIKey = "" }, true},
		{"Zero API timeout", func(c *Config) { c.RecipeAPITimeoutSeconds = 0 }, true},
		{"Negative API timeout", func(c *Config) { c.RecipeAPITimeoutSeconds = -5 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validProductionConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Validate_DevelopmentDefaults(t *testing.T) {
	// The development defaults are deliberately permissive: a short JWT
	// secret or empty API key only warns.
	c := &Config{
		Env:                     "development",
		Port:                    "8228",
		JWTSecret:               "your-secret-key-change-in-production",
		DBPassword:              "password",
		DBSSLMode:               "disable",
		RecipeAPITimeoutSeconds: 10,
	}
	assert.NoError(t, c.Validate())
}

func TestConfig_RecipeAPIConfigured(t *testing.T) {
	c := &Config{}
	assert.False(t, c.RecipeAPIConfigured())
	c.RecipeAPIKey = "key"
	assert.True(t, c.RecipeAPIConfigured())
}
