package config

import (
	"log/slog"
	"math"
	"os"
	"strconv"
	"time"
)

const devJWTSecret = "dev-secret-change-in-production"

type Config struct {
	Port string
	Env  string

	Storage     string
	BoltPath    string
	DatabaseDSN string

	JWTSecret              string
	JWTExpiry              time.Duration
	OperatorPassphraseHash string

	BreachAPIURL   string
	BreachTimeout  time.Duration
	BreachRPS      float64
	BreachDebounce time.Duration

	OnlineGuessRate  float64
	OfflineGuessRate float64

	WordListsFile string
}

func Load() Config {
	cfg := Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		Storage:     getEnv("STORAGE", "bolt"),
		BoltPath:    getEnv("BOLT_PATH", "passforge.db"),
		DatabaseDSN: getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/passforge?parseTime=true"),

		JWTSecret:              getEnv("JWT_SECRET", devJWTSecret),
		JWTExpiry:              getDuration("JWT_EXPIRY", 24*time.Hour),
		OperatorPassphraseHash: getEnv("OPERATOR_PASSPHRASE_HASH", ""),

		BreachAPIURL:   getEnv("BREACH_API_URL", "https://api.pwnedpasswords.com"),
		BreachTimeout:  getDuration("BREACH_TIMEOUT", 0),
		BreachRPS:      getNonNegativeFloat("BREACH_RPS", 10),
		BreachDebounce: getDuration("BREACH_DEBOUNCE", 300*time.Millisecond),

		OnlineGuessRate:  getFloat("ONLINE_GUESS_RATE", 100),
		OfflineGuessRate: getFloat("OFFLINE_GUESS_RATE", 1e10),

		WordListsFile: getEnv("WORDLISTS_FILE", ""),
	}

	if cfg.Env == "production" && cfg.JWTSecret == devJWTSecret {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		slog.Warn("invalid duration, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

func getFloat(key string, fallback float64) float64 {
	return parseFloat(key, fallback, func(f float64) bool { return f > 0 })
}

// getNonNegativeFloat accepts zero, which disables the setting it controls.
func getNonNegativeFloat(key string, fallback float64) float64 {
	return parseFloat(key, fallback, func(f float64) bool { return f >= 0 })
}

func parseFloat(key string, fallback float64, valid func(float64) bool) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || !valid(f) {
		slog.Warn("invalid number, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}
