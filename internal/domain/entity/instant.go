package entity

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/timespan-processor/internal/domain/error"
)

// Accepted layouts for timestamp-like strings. Zone-less layouts are
// resolved in local time so that time-of-day extraction matches the
// wall-clock reading of the input.
var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ResolveInstant converts a timestamp-like value into a time.Time. It
// accepts a time.Time (or pointer), a string in an ISO-8601-ish layout,
// or a number of milliseconds since the Unix epoch. A nil value, an
// unparseable string, a NaN or infinite number, or any other type fails
// with ErrInvalidInput.
func ResolveInstant(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		if v == nil {
			return time.Time{}, errs.NewInvalidInputError("timestamp", nil, "value is nil")
		}
		return *v, nil
	case string:
		return parseInstantString(v)
	case int:
		return time.UnixMilli(int64(v)), nil
	case int64:
		return time.UnixMilli(v), nil
	case float64:
		return instantFromEpochFloat(v)
	case float32:
		return instantFromEpochFloat(float64(v))
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return time.Time{}, errs.NewInvalidInputError("timestamp", v, "not a numeric timestamp")
		}
		return instantFromEpochFloat(f)
	case nil:
		return time.Time{}, errs.NewInvalidInputError("timestamp", nil, "value is nil")
	default:
		return time.Time{}, errs.NewInvalidInputError("timestamp", v, "unsupported timestamp type")
	}
}

// parseInstantString tries the accepted layouts in order
func parseInstantString(s string) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return time.Time{}, errs.NewInvalidInputError("timestamp", s, "empty timestamp string")
	}
	for _, layout := range instantLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errs.NewInvalidInputError("timestamp", s, "unrecognized timestamp string")
}

// instantFromEpochFloat converts epoch milliseconds carried as a float,
// which is how JSON numbers arrive at the API boundary
func instantFromEpochFloat(f float64) (time.Time, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return time.Time{}, errs.NewInvalidInputError("timestamp", f, "not a finite number")
	}
	return time.UnixMilli(int64(f)), nil
}
