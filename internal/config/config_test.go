package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Env:                "development",
		Port:               "8375",
		JWTSecret:          "secure-secret-at-least-32-chars-long",
		DBPassword:         "secure-password",
		DBSSLMode:          "disable",
		RedisURL:           "redis://localhost:6379",
		PageSize:           10,
		HomeFeedTTLSeconds: 20,
		LoginPath:          "/auth/login/",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"Valid development config", func(c *Config) {}, false},
		{"Missing port", func(c *Config) { c.Port = "" }, true},
		{"Missing JWT secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"Zero page size", func(c *Config) { c.PageSize = 0 }, true},
		{"Negative feed TTL", func(c *Config) { c.HomeFeedTTLSeconds = -1 }, true},
		{"Zero feed TTL disables the cache", func(c *Config) { c.HomeFeedTTLSeconds = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
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

func TestConfig_ValidateProduction(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"Default JWT secret rejected", func(c *Config) {
			c.JWTSecret = "your-secret-key-change-in-production"
		}, true},
		{"Short JWT secret rejected", func(c *Config) { c.JWTSecret = "short" }, true},
		{"Default DB password rejected", func(c *Config) { c.DBPassword = "password" }, true},
		{"Disabled SSL rejected", func(c *Config) { c.DBSSLMode = "disable" }, true},
		{"Hardened config accepted", func(c *Config) {}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			c.Env = "production"
			c.DBSSLMode = "require"
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
