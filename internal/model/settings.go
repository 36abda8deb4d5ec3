package model

import "time"

// Settings is the persisted generator configuration of the local profile.
type Settings struct {
	Policy       Policy    `json:"policy"`
	Preset       string    `json:"preset"`
	BreachCheck  bool      `json:"breach_check"`
	AutoGenerate bool      `json:"auto_generate"`
	BulkCount    int       `json:"bulk_count"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}

// DefaultSettings returns the settings used before anything has been saved.
func DefaultSettings() Settings {
	return Settings{
		Policy:       DefaultPolicy(),
		Preset:       "custom",
		AutoGenerate: true,
		BulkCount:    10,
	}
}

// ShareResponse carries a signed policy token.
type ShareResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LoginRequest represents an operator login request.
type LoginRequest struct {
	Passphrase string `json:"passphrase"`
}

// AuthResponse represents an authentication response with a session token.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
