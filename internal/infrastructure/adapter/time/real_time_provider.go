package time

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/timespan-processor/internal/domain/port/core"
)

// RealTimeProvider backs the TimeProvider port with the system clock.
// It is the only clock used outside of tests; everything else receives
// the port so record timestamps and query deadlines stay mockable.
type RealTimeProvider struct{}

// NewRealTimeProvider creates the system-clock provider
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{}
}

// Now reads the system clock
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// WithTimeout derives a context that expires after timeout, used to
// bound history queries
func (p *RealTimeProvider) WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}
