package repositories

import (
	"context"

	"github.com/fleetpulse/fleet_billing_app/internal/core/domain"
)

// NodeReader defines read operations over the fleet snapshot.
type NodeReader interface {
	// ListNodes retrieves the full node snapshot, ordered by name.
	ListNodes(ctx context.Context) ([]domain.NodeRecord, error)

	// FindNodeByID retrieves a single node record.
	FindNodeByID(ctx context.Context, nodeID string) (*domain.NodeRecord, error)
}

// NodeWriter defines write operations over the fleet snapshot.
type NodeWriter interface {
	// SaveNode inserts or updates a node record.
	SaveNode(ctx context.Context, node domain.NodeRecord) error
}

// NodeRepositoryFacade combines all node repository interfaces.
type NodeRepositoryFacade interface {
	NodeReader
	NodeWriter
}
