package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/vaultpass/passforge/internal/breach"
	"github.com/vaultpass/passforge/internal/config"
	"github.com/vaultpass/passforge/internal/crypto"
	"github.com/vaultpass/passforge/internal/handler"
	"github.com/vaultpass/passforge/internal/repository"
	"github.com/vaultpass/passforge/internal/service"
	"github.com/vaultpass/passforge/internal/strength"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	lists := crypto.NewWordLists()
	if cfg.WordListsFile != "" {
		if err := loadWordLists(lists, cfg.WordListsFile); err != nil {
			slog.Error("loading word lists", "file", cfg.WordListsFile, "error", err)
			os.Exit(1)
		}
	}

	checker := breach.NewClient(cfg.BreachAPIURL,
		breach.WithHTTPClient(&http.Client{Timeout: cfg.BreachTimeout}),
		breach.WithRateLimit(cfg.BreachRPS, int(cfg.BreachRPS)),
	)
	estimator := strength.NewEstimator(strength.Rates{Online: cfg.OnlineGuessRate, Offline: cfg.OfflineGuessRate}, lists)

	services := handler.Services{
		Generator: service.NewGeneratorService(crypto.NewGenerator(crypto.SecureSource(), lists), estimator, checker),
		Share:     service.NewShareService(lists, cfg.JWTSecret, cfg.JWTExpiry),
		JWTSecret: cfg.JWTSecret,
	}

	if cfg.OperatorPassphraseHash == "" {
		slog.Warn("OPERATOR_PASSPHRASE_HASH not set, settings routes disabled")
	} else {
		store, err := openSettingsStore(cfg)
		if err != nil {
			slog.Error("opening settings store", "storage", cfg.Storage, "error", err)
			os.Exit(1)
		}
		defer store.Close()

		services.Auth = service.NewAuthService(cfg.OperatorPassphraseHash, cfg.JWTSecret, cfg.JWTExpiry)
		services.Settings = service.NewSettingsService(store, lists)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.NewRouter(services),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		return
	}

	slog.Info("server stopped")
}

func loadWordLists(lists *crypto.WordLists, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return lists.LoadYAML(f)
}

func openSettingsStore(cfg config.Config) (repository.SettingsStore, error) {
	if cfg.Storage != "mysql" {
		return repository.NewBoltSettings(cfg.BoltPath)
	}

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := repository.NewMySQLSettings(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}
