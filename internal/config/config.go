// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Payment     PaymentConfig
	Pricing     PricingConfig
	Storage     StorageConfig
	Simulate    SimulateConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type PaymentConfig struct {
	StripeSecretKey      string
	StripePublishableKey string
	SuccessURL           string
	CancelURL            string
}

type PricingConfig struct {
	TaxRate               float64
	FlatShippingFee       float64
	FreeShippingThreshold float64
}

type StorageConfig struct {
	DataDir       string
	CartNamespace string
}

// SimulateConfig controls the artificial latency that stands in for
// real network and payment calls. Durations are in milliseconds.
type SimulateConfig struct {
	Enabled         bool
	CatalogDelayMs  int
	CheckoutDelayMs int
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Payment: PaymentConfig{
			StripeSecretKey:      getEnv("STRIPE_SECRET_KEY", ""),
			StripePublishableKey: getEnv("STRIPE_PUBLISHABLE_KEY", ""),
			SuccessURL:           getEnv("CHECKOUT_SUCCESS_URL", "http://localhost:3000/success"),
			CancelURL:            getEnv("CHECKOUT_CANCEL_URL", "http://localhost:3000/cart"),
		},
		Pricing: PricingConfig{
			TaxRate:               getEnvAsFloat("TAX_RATE", 0.08),
			FlatShippingFee:       getEnvAsFloat("FLAT_SHIPPING_FEE", 5.99),
			FreeShippingThreshold: getEnvAsFloat("FREE_SHIPPING_THRESHOLD", 50.0),
		},
		Storage: StorageConfig{
			DataDir:       getEnv("DATA_DIR", "./data"),
			CartNamespace: getEnv("CART_NAMESPACE", "vaporlax-cart"),
		},
		Simulate: SimulateConfig{
			Enabled:         getEnvAsBool("SIMULATE_LATENCY", true),
			CatalogDelayMs:  getEnvAsInt("SIMULATE_CATALOG_DELAY_MS", 500),
			CheckoutDelayMs: getEnvAsInt("SIMULATE_CHECKOUT_DELAY_MS", 1000),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.Pricing.TaxRate < 0 || c.Pricing.TaxRate >= 1 {
		return fmt.Errorf("tax rate must be in [0, 1), got %v", c.Pricing.TaxRate)
	}
	if c.Pricing.FlatShippingFee < 0 {
		return fmt.Errorf("flat shipping fee must be non-negative")
	}
	return nil
}

// IsDemo reports whether checkout runs without a real Stripe account.
func (c *Config) IsDemo() bool {
	return c.Payment.StripeSecretKey == ""
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
