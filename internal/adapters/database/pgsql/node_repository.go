// Package pgsql implements the repository ports over PostgreSQL via pgx.
package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fleetpulse/fleet_billing_app/internal/apperrors"
	"github.com/fleetpulse/fleet_billing_app/internal/core/domain"
	portsrepo "github.com/fleetpulse/fleet_billing_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxNodeRepository persists the fleet snapshot in the nodes table.
type PgxNodeRepository struct {
	pool *pgxpool.Pool
}

// NewPgxNodeRepository creates a new repository for node records.
func NewPgxNodeRepository(pool *pgxpool.Pool) portsrepo.NodeRepositoryFacade {
	return &PgxNodeRepository{pool: pool}
}

// SaveNode inserts or updates a node record keyed by node_id. The raw price
// sentinel encoding (-1 free, 0 not applicable) is preserved on disk.
func (r *PgxNodeRepository) SaveNode(ctx context.Context, node domain.NodeRecord) error {
	now := time.Now().UTC()
	query := `
		INSERT INTO nodes (node_id, name, node_group, region, price, currency, billing_cycle_days, expired_at, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (node_id) DO UPDATE SET
			name = EXCLUDED.name,
			node_group = EXCLUDED.node_group,
			region = EXCLUDED.region,
			price = EXCLUDED.price,
			currency = EXCLUDED.currency,
			billing_cycle_days = EXCLUDED.billing_cycle_days,
			expired_at = EXCLUDED.expired_at,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.pool.Exec(ctx, query,
		node.NodeID,
		node.Name,
		node.Group,
		node.Region,
		node.Price.RawValue(),
		node.Currency,
		node.BillingCycleDays,
		node.ExpiresAt,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to save node %s: %w", node.NodeID, err)
	}
	return nil
}

// FindNodeByID retrieves a single node record.
func (r *PgxNodeRepository) FindNodeByID(ctx context.Context, nodeID string) (*domain.NodeRecord, error) {
	query := `
		SELECT node_id, name, node_group, region, price, currency, billing_cycle_days, expired_at, created_at, last_updated_at
		FROM nodes
		WHERE node_id = $1;
	`
	node, err := scanNode(r.pool.QueryRow(ctx, query, nodeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find node by id %s: %w", nodeID, err)
	}
	return node, nil
}

// ListNodes retrieves the full snapshot ordered by name.
func (r *PgxNodeRepository) ListNodes(ctx context.Context) ([]domain.NodeRecord, error) {
	query := `
		SELECT node_id, name, node_group, region, price, currency, billing_cycle_days, expired_at, created_at, last_updated_at
		FROM nodes
		ORDER BY name, node_id;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query nodes: %w", err)
	}
	defer rows.Close()

	nodes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.NodeRecord, error) {
		node, err := scanNode(row)
		if err != nil {
			return domain.NodeRecord{}, err
		}
		return *node, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan nodes: %w", err)
	}
	if nodes == nil {
		return []domain.NodeRecord{}, nil
	}
	return nodes, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNode(row rowScanner) (*domain.NodeRecord, error) {
	var (
		node     domain.NodeRecord
		rawPrice float64
	)
	err := row.Scan(
		&node.NodeID,
		&node.Name,
		&node.Group,
		&node.Region,
		&rawPrice,
		&node.Currency,
		&node.BillingCycleDays,
		&node.ExpiresAt,
		&node.CreatedAt,
		&node.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	node.Price = domain.PriceFromRaw(rawPrice)
	return &node, nil
}
