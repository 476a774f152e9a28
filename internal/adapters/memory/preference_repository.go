package memory

import (
	"context"
	"sync"

	"github.com/fleetpulse/fleet_billing_app/internal/apperrors"
	portsrepo "github.com/fleetpulse/fleet_billing_app/internal/core/ports/repositories"
)

// PreferenceRepository is an in-memory preference store.
type PreferenceRepository struct {
	mu       sync.RWMutex
	currency string
}

// NewPreferenceRepository creates an empty in-memory preference store.
func NewPreferenceRepository() *PreferenceRepository {
	return &PreferenceRepository{}
}

// GetDisplayCurrency returns the stored display currency.
func (r *PreferenceRepository) GetDisplayCurrency(_ context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.currency == "" {
		return "", apperrors.ErrNotFound
	}
	return r.currency, nil
}

// SetDisplayCurrency stores the display currency.
func (r *PreferenceRepository) SetDisplayCurrency(_ context.Context, identifier string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.currency = identifier
	return nil
}

var _ portsrepo.PreferenceRepositoryFacade = (*PreferenceRepository)(nil)
