package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fleetpulse/fleet_billing_app/internal/apperrors"
	"github.com/fleetpulse/fleet_billing_app/internal/core/domain"
	portsrepo "github.com/fleetpulse/fleet_billing_app/internal/core/ports/repositories"
)

// PreferenceService manages the persisted display-currency preference.
type PreferenceService struct {
	prefRepo        portsrepo.PreferenceRepositoryFacade
	defaultCurrency string
	logger          *slog.Logger
}

// NewPreferenceService creates a PreferenceService. defaultCurrency is used
// when no preference has been stored or the store is unreachable.
func NewPreferenceService(prefRepo portsrepo.PreferenceRepositoryFacade, defaultCurrency string, logger *slog.Logger) *PreferenceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PreferenceService{
		prefRepo:        prefRepo,
		defaultCurrency: defaultCurrency,
		logger:          logger,
	}
}

// GetDisplayCurrency returns the canonical display currency. Absence of a
// stored preference, or a store failure, falls back to the configured
// default; this call never fails.
func (s *PreferenceService) GetDisplayCurrency(ctx context.Context) string {
	stored, err := s.prefRepo.GetDisplayCurrency(ctx)
	if err != nil || stored == "" {
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Warn("preference store read failed, using default currency",
				slog.String("error", err.Error()))
		}
		return string(domain.ResolveCurrency(s.defaultCurrency))
	}
	return string(domain.ResolveCurrency(stored))
}

// SetDisplayCurrency resolves and stores the display currency.
func (s *PreferenceService) SetDisplayCurrency(ctx context.Context, identifier string) error {
	if strings.TrimSpace(identifier) == "" {
		return fmt.Errorf("%w: display currency cannot be empty", apperrors.ErrValidation)
	}
	code := domain.ResolveCurrency(identifier)
	if err := s.prefRepo.SetDisplayCurrency(ctx, string(code)); err != nil {
		return fmt.Errorf("failed to store display currency: %w", err)
	}
	return nil
}
