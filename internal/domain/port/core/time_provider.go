package core

import (
	"context"
	"time"
)

// TimeProvider abstracts wall-clock access for the domain. Keeping it
// behind a port lets use cases stamp computation records with a clock
// that tests can fix to a known instant, and lets the persistence layer
// bound queries with a mockable timeout.
type TimeProvider interface {
	Now() time.Time
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
