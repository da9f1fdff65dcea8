package diff

import (
	"github.com/amirhossein-jamali/timespan-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timespan-processor/internal/domain/error"
	"github.com/amirhossein-jamali/timespan-processor/internal/domain/port/usecase"
)

// Fallback history listing bounds, used when the configuration leaves
// them unset
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// validateRequest checks a diff request before any computation happens.
// Instant resolution itself is left to the entity layer; this only
// rejects what can be rejected without touching the inputs.
func validateRequest(req usecase.DiffRequest) error {
	if req.From == nil {
		return errs.NewInvalidInputError("from", nil, "value is missing")
	}
	if req.To == nil {
		return errs.NewInvalidInputError("to", nil, "value is missing")
	}
	if !entity.RoundUnit(req.RoundTo).Valid() {
		return errs.ErrInvalidRoundUnit
	}
	return nil
}

// normalizeFormat falls back to the default render pattern when the
// request leaves the format empty
func normalizeFormat(format string) string {
	if format == "" {
		return entity.DefaultFormat
	}
	return format
}

// normalizeLimit keeps history listing sizes within the configured bounds
func normalizeLimit(limit, defaultLimit, maxLimit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
