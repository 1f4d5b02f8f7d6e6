package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("RENDER", "1")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("JWT_SECRET_KEY", "dev-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.ServerAddr())
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 24, cfg.JWTExpirationHours)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, []string{"/admin"}, cfg.GuardAdminPrefixes)
	assert.Equal(t, []string{"/profile", "/my-registration", "/announcements", "/products", "/orders"}, cfg.GuardUserPrefixes)
	assert.Equal(t, "/admin", cfg.AdminLanding)
	assert.Equal(t, "/registration", cfg.UserLanding)
	assert.False(t, cfg.CaptchaEnabled())
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("RENDER", "1")
	t.Setenv("STORE_DRIVER", "Mongo")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("JWT_SECRET_KEY", "dev-secret")
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ORIGINS", "https://ppdb.example,https://admin.ppdb.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverMongo, cfg.StoreDriver)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, []string{"https://ppdb.example", "https://admin.ppdb.example"}, cfg.CORSOrigins)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Env:                "development",
			StoreDriver:        DriverMemory,
			JWTSecret:          "dev-secret",
			JWTExpirationHours: 24,
			BcryptCost:         12,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"unknown driver", func(c *Config) { c.StoreDriver = "sqlite" }, "unknown STORE_DRIVER"},
		{"firestore without credentials", func(c *Config) { c.StoreDriver = DriverFirestore }, "GOOGLE_APPLICATION_CREDENTIALS_1"},
		{"missing secret", func(c *Config) { c.JWTSecret = "" }, "JWT_SECRET_KEY is required"},
		{"short secret in production", func(c *Config) { c.Env = "production" }, "at least 32"},
		{"bad cost", func(c *Config) { c.BcryptCost = 2 }, "BCRYPT_COST"},
		{"bad expiry", func(c *Config) { c.JWTExpirationHours = 0 }, "JWT_EXPIRATION_HOURS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCaptchaEnabled(t *testing.T) {
	cfg := Config{RecaptchaProjectID: "p", RecaptchaSiteKey: "k"}
	assert.False(t, cfg.CaptchaEnabled())
	cfg.RecaptchaCredentials = "/secrets/recaptcha.json"
	assert.True(t, cfg.CaptchaEnabled())
}
