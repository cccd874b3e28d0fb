package service

import (
	"os"
)

type Config struct {
	Environment string
	Port        string
	BaseURL     string

	Stripe struct {
		SecretKey     string
		WebhookSecret string
	}

	Email struct {
		APIKey       string
		From         string
		ContactEmail string
	}
}

func LoadConfig() (*Config, error) {
	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8000"),
	}

	// Stripe
	config.Stripe.SecretKey = getEnv("STRIPE_SECRET_KEY", "")
	config.Stripe.WebhookSecret = getEnv("STRIPE_WEBHOOK_SECRET", "")

	// Email
	config.Email.APIKey = getEnv("RESEND_API_KEY", "")
	config.Email.From = getEnv("EMAIL_FROM", "Nernst Solution <orders@nernstsolution.com>")
	config.Email.ContactEmail = getEnv("CONTACT_EMAIL", "contact@nernstsolution.com")

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
