package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load reads the .env file if one is present. A missing file is not an
// error: in deployed environments the variables come from the process
// environment directly.
func Load() {
	_ = godotenv.Load()
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Port the HTTP server listens on.
func Port() string {
	return getEnv("PORT", "5000")
}

// MongoURI is the connection string for the document store.
func MongoURI() string {
	return os.Getenv("MONGO_URI")
}

// DatabaseName is the Mongo database holding all five collections.
func DatabaseName() string {
	return getEnv("DB_NAME", "foodie")
}

// AccessTokenSecret signs and verifies session tokens.
func AccessTokenSecret() string {
	return os.Getenv("ACCESS_TOKEN_SECRET")
}

// StripeSecretKey authenticates calls to the payment provider.
func StripeSecretKey() string {
	return os.Getenv("STRIPE_SECRET_KEY")
}

// AppEnv selects logging output: "production" emits JSON, anything else text.
func AppEnv() string {
	return getEnv("APP_ENV", "local")
}

// Require returns an error naming every mandatory key that is unset.
func Require() error {
	missing := []string{}
	if MongoURI() == "" {
		missing = append(missing, "MONGO_URI")
	}
	if AccessTokenSecret() == "" {
		missing = append(missing, "ACCESS_TOKEN_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %v", missing)
	}
	return nil
}
