package usecase

import (
	"context"

	"github.com/amirhossein-jamali/timespan-processor/internal/domain/entity"
)

// DiffRequest carries one time-diff computation request across the API
// boundary. From and To are timestamp-like: a string in an ISO-8601-ish
// layout or a number of epoch milliseconds.
type DiffRequest struct {
	From     any
	To       any
	Absolute bool
	RoundTo  string
	Format   string
}

// DiffResponse carries the computed diff in both renderings
type DiffResponse struct {
	Result   string
	ResultMs int64
}

// DiffUseCase defines the time-diff business operations
type DiffUseCase interface {
	// ComputeDiff computes a signed duration between two timestamp-like
	// inputs, applies the requested post-processing and records the
	// computation in history
	ComputeDiff(ctx context.Context, req DiffRequest) (*DiffResponse, error)
	// GetHistory returns the most recent computation records
	GetHistory(ctx context.Context, limit int) ([]*entity.Computation, error)
}
