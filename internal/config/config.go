package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	NotifierLog   = "log"
	NotifierRedis = "redis"
)

// Config holds the runtime settings of the ledger server
type Config struct {
	HTTPAddr string `validate:"required"`
	GRPCAddr string `validate:"required"`

	LogLevel  string `validate:"oneof=debug info warn error"`
	LogFormat string `validate:"oneof=json console"`

	Notifier      string        `validate:"oneof=log redis"`
	RedisAddr     string        `validate:"required_if=Notifier redis"`
	RedisChannel  string        `validate:"required_if=Notifier redis"`
	NotifyTimeout time.Duration `validate:"gte=0"`

	DeadlockDetection bool
	DeadlockTimeout   time.Duration `validate:"gte=0"`

	SeedAccounts []SeedAccount `validate:"dive"`
}

// SeedAccount is an account created at start-up
type SeedAccount struct {
	ID      string `validate:"required"`
	Balance decimal.Decimal
}

var validate = validator.New()

// Load reads an optional .env file and the environment
func Load() (*Config, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Could not load .env file, using system environment variables: %v", err)
	}

	return FromEnv()
}

// FromEnv builds the configuration from environment variables, applying defaults
func FromEnv() (*Config, error) {
	cfg := &Config{
		HTTPAddr:     getEnv("HTTP_ADDR", ":8080"),
		GRPCAddr:     getEnv("GRPC_ADDR", ":9090"),
		LogLevel:     strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:    strings.ToLower(getEnv("LOG_FORMAT", "json")),
		Notifier:     strings.ToLower(getEnv("NOTIFIER", NotifierLog)),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		RedisChannel: getEnv("REDIS_CHANNEL", "ledger.transfers"),
	}

	var err error
	if cfg.NotifyTimeout, err = getDuration("NOTIFY_TIMEOUT", 2*time.Second); err != nil {
		return nil, err
	}
	if cfg.DeadlockDetection, err = getBool("DEADLOCK_DETECTION", false); err != nil {
		return nil, err
	}
	if cfg.DeadlockTimeout, err = getDuration("DEADLOCK_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.SeedAccounts, err = ParseSeedAccounts(os.Getenv("SEED_ACCOUNTS")); err != nil {
		return nil, err
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// ParseSeedAccounts parses a comma separated list of id=balance pairs
// e.g. "Id-123=1000,Id-456=250.50"
func ParseSeedAccounts(raw string) ([]SeedAccount, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var accounts []SeedAccount
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		id, balance, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid SEED_ACCOUNTS entry %q: expected id=balance", pair)
		}

		amount, err := decimal.NewFromString(strings.TrimSpace(balance))
		if err != nil {
			return nil, fmt.Errorf("invalid SEED_ACCOUNTS balance for %q: %w", id, err)
		}

		accounts = append(accounts, SeedAccount{ID: strings.TrimSpace(id), Balance: amount})
	}

	return accounts, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getBool(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
