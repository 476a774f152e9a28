// Package memory implements the repository ports in process memory, used
// when no external store is configured and in tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fleetpulse/fleet_billing_app/internal/apperrors"
	"github.com/fleetpulse/fleet_billing_app/internal/core/domain"
	portsrepo "github.com/fleetpulse/fleet_billing_app/internal/core/ports/repositories"
)

// NodeRepository is a mutex-guarded in-memory node store.
type NodeRepository struct {
	mu    sync.RWMutex
	nodes map[string]domain.NodeRecord
}

// NewNodeRepository creates an empty in-memory node repository.
func NewNodeRepository() *NodeRepository {
	return &NodeRepository{nodes: make(map[string]domain.NodeRecord)}
}

// SaveNode inserts or replaces a node record.
func (r *NodeRepository) SaveNode(_ context.Context, node domain.NodeRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nodes[node.NodeID] = node
	return nil
}

// FindNodeByID retrieves a single node record.
func (r *NodeRepository) FindNodeByID(_ context.Context, nodeID string) (*domain.NodeRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	node, ok := r.nodes[nodeID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &node, nil
}

// ListNodes retrieves the snapshot ordered by name.
func (r *NodeRepository) ListNodes(_ context.Context) ([]domain.NodeRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	nodes := make([]domain.NodeRecord, 0, len(r.nodes))
	for _, node := range r.nodes {
		nodes = append(nodes, node)
	}
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].Name != nodes[j].Name {
			return nodes[i].Name < nodes[j].Name
		}
		return nodes[i].NodeID < nodes[j].NodeID
	})
	return nodes, nil
}

var _ portsrepo.NodeRepositoryFacade = (*NodeRepository)(nil)
