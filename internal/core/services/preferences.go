package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dailybrief-labs/dailybrief-cli/internal/core/domain"
	"github.com/dailybrief-labs/dailybrief-cli/internal/core/ports/driven"
	"github.com/dailybrief-labs/dailybrief-cli/internal/core/ports/driving"
)

// Ensure PreferencesService implements the interface.
var _ driving.PreferencesService = (*PreferencesService)(nil)

// PreferencesService manages per-user news preferences.
type PreferencesService struct {
	store driven.PreferenceStore
}

// NewPreferencesService creates a new preferences service.
func NewPreferencesService(store driven.PreferenceStore) *PreferencesService {
	return &PreferencesService{store: store}
}

// Get returns the user's preferences, or an empty record before the
// first save.
func (s *PreferencesService) Get(ctx context.Context, userID string) (*domain.Preferences, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}

	prefs, err := s.store.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.Preferences{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get preferences: %w", err)
	}
	return prefs, nil
}

// Save creates the record on first save and updates it in place after.
func (s *PreferencesService) Save(ctx context.Context, prefs domain.Preferences) (*domain.Preferences, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	if prefs.UserID == "" {
		return nil, domain.ErrInvalidInput
	}

	stored, err := s.store.Save(ctx, prefs)
	if err != nil {
		return nil, fmt.Errorf("save preferences: %w", err)
	}
	return stored, nil
}
