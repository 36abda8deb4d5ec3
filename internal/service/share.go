package service

import (
	"time"

	"github.com/vaultpass/passforge/internal/crypto"
	"github.com/vaultpass/passforge/internal/model"
)

// ShareService turns policies into signed share tokens and back.
// Tokens carry the policy only, never a credential.
type ShareService struct {
	lists  *crypto.WordLists
	secret string
	expiry time.Duration
}

// NewShareService creates a new ShareService.
func NewShareService(lists *crypto.WordLists, secret string, expiry time.Duration) *ShareService {
	return &ShareService{lists: lists, secret: secret, expiry: expiry}
}

// Share resolves the request into a policy and signs it.
func (s *ShareService) Share(req model.GenerateRequest) (model.ShareResponse, error) {
	policy, err := ResolvePolicy(req, s.lists)
	if err != nil {
		return model.ShareResponse{}, err
	}

	token, expiresAt, err := crypto.SignPolicy(policy, s.secret, s.expiry)
	if err != nil {
		return model.ShareResponse{}, err
	}
	return model.ShareResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// Resolve verifies a share token and returns its policy, which is validated
// again against the word lists currently registered.
func (s *ShareService) Resolve(token string) (model.Policy, error) {
	policy, err := crypto.ParsePolicyToken(token, s.secret)
	if err != nil {
		return model.Policy{}, err
	}
	if err := crypto.ValidatePolicy(policy, s.lists); err != nil {
		return model.Policy{}, err
	}
	return policy, nil
}
