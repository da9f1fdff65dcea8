package persistence

import (
	"context"

	"github.com/amirhossein-jamali/timespan-processor/internal/domain/entity"
)

// ComputationRepository defines persistence operations for computation history
type ComputationRepository interface {
	// Create stores a new computation record and fills in its ID
	Create(ctx context.Context, computation *entity.Computation) error
	// GetByID retrieves a single computation record
	GetByID(ctx context.Context, id uint64) (*entity.Computation, error)
	// ListRecent returns up to limit records, newest first
	ListRecent(ctx context.Context, limit int) ([]*entity.Computation, error)
}
