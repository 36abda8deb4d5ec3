package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/vaultpass/passforge/internal/crypto"
	"github.com/vaultpass/passforge/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid passphrase")
	ErrPassphraseRequired = errors.New("passphrase is required")
	ErrLoginDisabled      = errors.New("operator login is not configured")
)

// AuthService authenticates the single local operator.
type AuthService struct {
	passphraseHash string
	jwtSecret      string
	jwtExpiry      time.Duration
}

// NewAuthService creates a new AuthService. An empty passphraseHash disables login.
func NewAuthService(passphraseHash, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		passphraseHash: passphraseHash,
		jwtSecret:      secret,
		jwtExpiry:      expiry,
	}
}

// Enabled reports whether an operator passphrase is configured.
func (s *AuthService) Enabled() bool {
	return s.passphraseHash != ""
}

// Login verifies the operator passphrase and returns a session token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	if !s.Enabled() {
		return model.AuthResponse{}, ErrLoginDisabled
	}
	if req.Passphrase == "" {
		return model.AuthResponse{}, ErrPassphraseRequired
	}

	ok, err := crypto.VerifyPassphrase(req.Passphrase, s.passphraseHash)
	if err != nil {
		slog.ErrorContext(ctx, "operator passphrase hash is unusable", "error", err)
		return model.AuthResponse{}, err
	}
	if !ok {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	token, expiresAt, err := crypto.GenerateSessionToken(s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}
	return model.AuthResponse{Token: token, ExpiresAt: expiresAt}, nil
}
