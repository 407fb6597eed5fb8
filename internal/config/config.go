package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"letterpress_ops/internal/pricing"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds all application configuration
type Config struct {
	Port  string
	GoEnv string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	S3Endpoint         string

	OrdersTable    string
	EstimatesTable string
	StaffTable     string
	CountersTable  string
	ArtworkBucket  string

	Auth0Domain   string
	Auth0Audience string
	AuthDisabled  bool

	CORSAllowedOrigins []string
	StaffCacheTTL      time.Duration

	PricingMiscCharge      string
	PricingWastagePercent  string
	PricingOverheadPercent string
}

// Load loads the configuration from environment variables.
// .env.<GO_ENV> is tried first, then .env; neither is required.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	envFile := fmt.Sprintf(".env.%s", env)
	if err := godotenv.Load(envFile); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Printf("[config] no .env file found, using system environment variables")
		}
	} else {
		log.Printf("[config] loaded configuration from %s", envFile)
	}

	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv reads the process environment without touching .env files.
func FromEnv() (*Config, error) {
	ttl, err := time.ParseDuration(getEnv("STAFF_CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("STAFF_CACHE_TTL: %w", err)
	}
	authDisabled, err := strconv.ParseBool(getEnv("AUTH_DISABLED", "false"))
	if err != nil {
		return nil, fmt.Errorf("AUTH_DISABLED: %w", err)
	}

	return &Config{
		Port:  getEnv("PORT", "8080"),
		GoEnv: getEnv("GO_ENV", "development"),

		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   getEnv("DYNAMODB_ENDPOINT", ""),
		S3Endpoint:         getEnv("S3_ENDPOINT", ""),

		OrdersTable:    getEnv("ORDERS_TABLE", "orders"),
		EstimatesTable: getEnv("ESTIMATES_TABLE", "estimates"),
		StaffTable:     getEnv("STAFF_TABLE", "staff"),
		CountersTable:  getEnv("COUNTERS_TABLE", "counters"),
		ArtworkBucket:  getEnv("ARTWORK_BUCKET", ""),

		Auth0Domain:   getEnv("AUTH0_DOMAIN", ""),
		Auth0Audience: getEnv("AUTH0_AUDIENCE", ""),
		AuthDisabled:  authDisabled,

		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		StaffCacheTTL:      ttl,

		PricingMiscCharge:      getEnv("PRICING_MISC_CHARGE", ""),
		PricingWastagePercent:  getEnv("PRICING_WASTAGE_PERCENT", ""),
		PricingOverheadPercent: getEnv("PRICING_OVERHEAD_PERCENT", ""),
	}, nil
}

// Validate checks that all required configuration values are set
func (c *Config) Validate() error {
	if !c.AuthDisabled && (c.Auth0Domain == "" || c.Auth0Audience == "") {
		return fmt.Errorf("AUTH0_DOMAIN and AUTH0_AUDIENCE are required unless AUTH_DISABLED=true")
	}
	if c.AuthDisabled && !c.IsDevelopment() && !c.IsTest() {
		return fmt.Errorf("AUTH_DISABLED is only allowed when GO_ENV is development or test, got %q", c.GoEnv)
	}
	if c.StaffCacheTTL < 0 {
		return fmt.Errorf("STAFF_CACHE_TTL must not be negative")
	}
	if _, err := c.PricingPolicy(); err != nil {
		return err
	}
	return nil
}

// PricingPolicy returns the default pricing policy with any configured
// overrides applied.
func (c *Config) PricingPolicy() (pricing.Policy, error) {
	p := pricing.DefaultPolicy()
	overrides := []struct {
		key string
		raw string
		dst *decimal.Decimal
	}{
		{"PRICING_MISC_CHARGE", c.PricingMiscCharge, &p.MiscCharge},
		{"PRICING_WASTAGE_PERCENT", c.PricingWastagePercent, &p.WastagePercent},
		{"PRICING_OVERHEAD_PERCENT", c.PricingOverheadPercent, &p.OverheadPercent},
	}
	for _, o := range overrides {
		if o.raw == "" {
			continue
		}
		d, err := decimal.NewFromString(strings.TrimSpace(o.raw))
		if err != nil || d.IsNegative() {
			return pricing.Policy{}, fmt.Errorf("%s must be a non-negative decimal, got %q", o.key, o.raw)
		}
		*o.dst = d
	}
	return p, nil
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

// IsTest returns true if the application is running in test mode
func (c *Config) IsTest() bool {
	return c.GoEnv == "test"
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GoEnv == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
