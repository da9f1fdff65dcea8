package entity

import (
	"time"

	coreport "github.com/amirhossein-jamali/timespan-processor/internal/domain/port/core"
)

// Computation records one time-diff request and its outcome. It is the
// unit stored in history: the raw inputs as the caller sent them, the
// post-processing options, and both renderings of the result.
type Computation struct {
	ID        uint64
	FromInput string
	ToInput   string
	Absolute  bool
	RoundTo   RoundUnit
	Format    string
	ResultMs  int64
	Result    string
	CreatedAt time.Time
}

// NewComputation builds a history record for a computed diff
func NewComputation(fromInput, toInput string, opts DiffOptions, format string, result SignedDuration, timeProvider coreport.TimeProvider) *Computation {
	return &Computation{
		FromInput: fromInput,
		ToInput:   toInput,
		Absolute:  opts.Absolute,
		RoundTo:   opts.RoundTo,
		Format:    format,
		ResultMs:  result.TotalMilliseconds(),
		Result:    result.Format(format),
		CreatedAt: timeProvider.Now(),
	}
}
