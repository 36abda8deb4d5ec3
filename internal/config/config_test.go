package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "STORAGE", "JWT_EXPIRY", "BREACH_RPS", "BREACH_DEBOUNCE", "OFFLINE_GUESS_RATE"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" || cfg.Env != "development" || cfg.Storage != "bolt" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("JWTExpiry = %v, want 24h", cfg.JWTExpiry)
	}
	if cfg.BreachDebounce != 300*time.Millisecond {
		t.Errorf("BreachDebounce = %v, want 300ms", cfg.BreachDebounce)
	}
	if cfg.BreachRPS != 10 || cfg.OfflineGuessRate != 1e10 {
		t.Errorf("unexpected rates: %+v", cfg)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE", "mysql")
	t.Setenv("JWT_EXPIRY", "2h")
	t.Setenv("BREACH_TIMEOUT", "5s")
	t.Setenv("ONLINE_GUESS_RATE", "1000")

	cfg := Load()
	if cfg.Storage != "mysql" || cfg.JWTExpiry != 2*time.Hour || cfg.BreachTimeout != 5*time.Second || cfg.OnlineGuessRate != 1000 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "forever")
	t.Setenv("BREACH_RPS", "-3")
	t.Setenv("OFFLINE_GUESS_RATE", "fast")

	cfg := Load()
	if cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("JWTExpiry = %v, want default", cfg.JWTExpiry)
	}
	if cfg.BreachRPS != 10 || cfg.OfflineGuessRate != 1e10 {
		t.Errorf("invalid numbers should fall back: %+v", cfg)
	}
}

func TestLoad_ZeroBreachRateDisablesLimit(t *testing.T) {
	t.Setenv("BREACH_RPS", "0")
	t.Setenv("ONLINE_GUESS_RATE", "0")

	cfg := Load()
	if cfg.BreachRPS != 0 {
		t.Errorf("BreachRPS = %v, want 0", cfg.BreachRPS)
	}
	if cfg.OnlineGuessRate != 100 {
		t.Errorf("OnlineGuessRate = %v, want the default for a zero rate", cfg.OnlineGuessRate)
	}
}
