package services

import "context"

// PreferenceSvcFacade manages the persisted display-currency preference.
type PreferenceSvcFacade interface {
	// GetDisplayCurrency returns the canonical display currency, falling back
	// to the configured default when no preference is stored.
	GetDisplayCurrency(ctx context.Context) string

	// SetDisplayCurrency resolves and stores the display currency.
	SetDisplayCurrency(ctx context.Context, identifier string) error
}
