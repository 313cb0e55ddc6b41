package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds API server configuration
type Config struct {
	Port        string
	ReleaseMode bool
	LogLevel    string
	LogPretty   bool
	QuoteBuffer int
	BcryptCost  int
}

// Load reads configuration from the environment, after loading a .env
// file when one exists. Every invalid value is reported in the error.
func Load(envFiles ...string) (Config, error) {
	// A missing .env is fine, the environment alone is enough
	_ = godotenv.Load(envFiles...)

	var validationErrs []string

	cfg := Config{
		Port:        envDefault("PORT", "8080"),
		ReleaseMode: os.Getenv("GIN_MODE") == "release",
		LogLevel:    envDefault("LOG_LEVEL", "info"),
		LogPretty:   envBool("LOG_PRETTY", false, &validationErrs),
		QuoteBuffer: envInt("QUOTE_BUFFER", 16, &validationErrs),
		BcryptCost:  envInt("BCRYPT_COST", bcrypt.DefaultCost, &validationErrs),
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		validationErrs = append(validationErrs, fmt.Sprintf("PORT must be a number, got %q", cfg.Port))
	}
	if cfg.QuoteBuffer < 1 {
		validationErrs = append(validationErrs, "QUOTE_BUFFER must be at least 1")
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		validationErrs = append(validationErrs,
			fmt.Sprintf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}

	if len(validationErrs) > 0 {
		return cfg, errors.New(strings.Join(validationErrs, "; "))
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int, errs *[]string) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("%s must be a number, got %q", key, v))
		return fallback
	}
	return n
}

func envBool(key string, fallback bool, errs *[]string) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("%s must be true or false, got %q", key, v))
		return fallback
	}
	return b
}
