package repositories

import "context"

// PreferenceReader defines read operations for persisted user preferences.
type PreferenceReader interface {
	// GetDisplayCurrency returns the stored display currency identifier.
	// Returns apperrors.ErrNotFound when no preference has been stored yet.
	GetDisplayCurrency(ctx context.Context) (string, error)
}

// PreferenceWriter defines write operations for persisted user preferences.
type PreferenceWriter interface {
	// SetDisplayCurrency stores the display currency identifier.
	SetDisplayCurrency(ctx context.Context, identifier string) error
}

// PreferenceRepositoryFacade combines all preference repository interfaces.
type PreferenceRepositoryFacade interface {
	PreferenceReader
	PreferenceWriter
}
