package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverFirestore = "firestore"
	DriverMongo     = "mongo"
	DriverMemory    = "memory"
)

// MinJWTSecretLength applies outside development.
const MinJWTSecretLength = 32

type Config struct {
	Port     int    `env:"PORT" envDefault:"8080"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Document store
	StoreDriver         string `env:"STORE_DRIVER" envDefault:"firestore"`
	FirebaseCredentials string `env:"GOOGLE_APPLICATION_CREDENTIALS_1"`
	FirebaseProjectID   string `env:"FIREBASE_PROJECT_ID"`
	MongoURI            string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase       string `env:"MONGO_DATABASE" envDefault:"ppdb"`

	// Auth
	JWTSecret          string `env:"JWT_SECRET_KEY"`
	JWTExpirationHours int    `env:"JWT_EXPIRATION_HOURS" envDefault:"24"`
	BcryptCost         int    `env:"BCRYPT_COST" envDefault:"12"`
	CookieSecure       bool   `env:"COOKIE_SECURE" envDefault:"false"`

	// HTTP surface
	CORSOrigins        []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	WebDir             string   `env:"WEB_DIR"`
	GuardAdminPrefixes []string `env:"GUARD_ADMIN_PREFIXES" envSeparator:"," envDefault:"/admin"`
	GuardUserPrefixes  []string `env:"GUARD_USER_PREFIXES" envSeparator:"," envDefault:"/profile,/my-registration,/announcements,/products,/orders"`
	AdminLanding       string   `env:"ADMIN_LANDING" envDefault:"/admin"`
	UserLanding        string   `env:"USER_LANDING" envDefault:"/registration"`

	// reCAPTCHA Enterprise
	RecaptchaProjectID   string `env:"GOOGLE_CLOUD_PROJECT_ID"`
	RecaptchaSiteKey     string `env:"RECAPTCHA_SITE_KEY"`
	RecaptchaCredentials string `env:"GOOGLE_APPLICATION_CREDENTIALS_2"`
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c Config) ServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// CaptchaEnabled reports whether all reCAPTCHA settings are present.
func (c Config) CaptchaEnabled() bool {
	return c.RecaptchaProjectID != "" && c.RecaptchaSiteKey != "" && c.RecaptchaCredentials != ""
}

// Load reads an optional .env file and parses the environment.
func Load() (*Config, error) {
	if os.Getenv("RENDER") == "" {
		// Missing .env is normal outside local development.
		_ = godotenv.Load()
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	c.StoreDriver = strings.ToLower(strings.TrimSpace(c.StoreDriver))
	switch c.StoreDriver {
	case DriverFirestore:
		if c.FirebaseCredentials == "" {
			return fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS_1 is required for the firestore driver")
		}
	case DriverMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required for the mongo driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}

	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if !c.IsDevelopment() && len(c.JWTSecret) < MinJWTSecretLength {
		return fmt.Errorf("JWT_SECRET_KEY must be at least %d characters", MinJWTSecretLength)
	}
	if c.JWTExpirationHours <= 0 {
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be positive")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31")
	}
	return nil
}
