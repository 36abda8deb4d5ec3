package repository

import (
	"context"
	"errors"
)

var ErrSettingNotFound = errors.New("setting not found")

// SettingsStore is a key/value store for the local profile settings.
// Values are opaque bytes; encoding is the caller's concern.
type SettingsStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}
