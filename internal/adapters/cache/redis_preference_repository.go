// Package cache implements repository ports backed by Redis.
package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/fleetpulse/fleet_billing_app/internal/apperrors"
	portsrepo "github.com/fleetpulse/fleet_billing_app/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

// displayCurrencyKey is the fixed key the selected display currency lives
// under.
const displayCurrencyKey = "fleet_billing:display_currency"

// RedisPreferenceRepository persists user preferences in Redis.
type RedisPreferenceRepository struct {
	client *redis.Client
}

// NewRedisPreferenceRepository creates a preference store over the given
// Redis address.
func NewRedisPreferenceRepository(addr string) *RedisPreferenceRepository {
	return &RedisPreferenceRepository{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// GetDisplayCurrency returns the stored display currency.
func (r *RedisPreferenceRepository) GetDisplayCurrency(ctx context.Context) (string, error) {
	val, err := r.client.Get(ctx, displayCurrencyKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to read display currency preference: %w", err)
	}
	return val, nil
}

// SetDisplayCurrency stores the display currency without expiry.
func (r *RedisPreferenceRepository) SetDisplayCurrency(ctx context.Context, identifier string) error {
	if err := r.client.Set(ctx, displayCurrencyKey, identifier, 0).Err(); err != nil {
		return fmt.Errorf("failed to store display currency preference: %w", err)
	}
	return nil
}

// Close releases the underlying Redis connection.
func (r *RedisPreferenceRepository) Close() error {
	return r.client.Close()
}

var _ portsrepo.PreferenceRepositoryFacade = (*RedisPreferenceRepository)(nil)
