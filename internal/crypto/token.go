package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vaultpass/passforge/internal/model"
)

const (
	tokenIssuer     = "passforge"
	sessionAudience = "passforge-api"
	shareAudience   = "passforge-share"

	// OperatorSubject is the subject of every session token; there is a single local profile.
	OperatorSubject = "operator"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// ShareClaims carries a generation policy. It never carries a credential.
type ShareClaims struct {
	jwt.RegisteredClaims
	Policy model.Policy `json:"policy"`
}

// GenerateSessionToken signs an operator session token valid for expiry.
func GenerateSessionToken(secret string, expiry time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(expiry)
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   OperatorSubject,
		Audience:  jwt.ClaimStrings{sessionAudience},
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ValidateSessionToken verifies a session token and returns its subject.
func ValidateSessionToken(tokenString, secret string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	if err := parse(tokenString, secret, sessionAudience, claims); err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// SignPolicy encodes p into a share token valid for expiry.
func SignPolicy(p model.Policy, secret string, expiry time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(expiry)
	claims := ShareClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{shareAudience},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Policy: p,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParsePolicyToken verifies a share token and returns the policy it carries.
func ParsePolicyToken(tokenString, secret string) (model.Policy, error) {
	claims := &ShareClaims{}
	if err := parse(tokenString, secret, shareAudience, claims); err != nil {
		return model.Policy{}, err
	}
	return claims.Policy, nil
}

func parse(tokenString, secret, audience string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithAudience(audience), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}
	return nil
}
