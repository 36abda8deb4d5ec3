package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/vaultpass/passforge/internal/crypto"
	"github.com/vaultpass/passforge/internal/model"
	"github.com/vaultpass/passforge/internal/repository"
)

const settingsKey = "profile"

// SettingsService loads and saves the local profile settings.
type SettingsService struct {
	store repository.SettingsStore
	lists *crypto.WordLists
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(store repository.SettingsStore, lists *crypto.WordLists) *SettingsService {
	return &SettingsService{store: store, lists: lists}
}

// Load returns the stored settings, or the defaults when nothing is stored.
func (s *SettingsService) Load(ctx context.Context) (model.Settings, error) {
	raw, err := s.store.Get(ctx, settingsKey)
	if err != nil {
		if errors.Is(err, repository.ErrSettingNotFound) {
			return model.DefaultSettings(), nil
		}
		return model.Settings{}, err
	}

	settings := model.DefaultSettings()
	if err := json.Unmarshal(raw, &settings); err != nil {
		return model.Settings{}, fmt.Errorf("decoding settings: %w", err)
	}
	return settings, nil
}

// Save validates and stores settings and returns what was stored.
func (s *SettingsService) Save(ctx context.Context, settings model.Settings) (model.Settings, error) {
	if err := crypto.ValidatePolicy(settings.Policy, s.lists); err != nil {
		return model.Settings{}, err
	}
	if settings.Preset == "" {
		settings.Preset = "custom"
	}
	if !slices.ContainsFunc(crypto.Presets, func(p crypto.Preset) bool { return p.Key == settings.Preset }) {
		return model.Settings{}, crypto.ErrUnknownPreset
	}
	settings.BulkCount = ClampBulkCount(settings.BulkCount)
	settings.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	raw, err := json.Marshal(settings)
	if err != nil {
		return model.Settings{}, err
	}
	if err := s.store.Put(ctx, settingsKey, raw); err != nil {
		return model.Settings{}, err
	}
	return settings, nil
}
