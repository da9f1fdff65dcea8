package entity

import (
	"math"
	"time"

	errs "github.com/amirhossein-jamali/timespan-processor/internal/domain/error"
)

// Millisecond counts per component unit
const (
	MillisPerSecond int64 = 1000
	MillisPerMinute int64 = 60 * MillisPerSecond
	MillisPerHour   int64 = 60 * MillisPerMinute
)

// SignedDuration represents a signed time span as a single millisecond
// count. The count is the sole source of truth: hours, minutes, seconds
// and milliseconds are always derived from it, and every derived
// component carries the sign of the total. The type is immutable - all
// operations return a new value.
//
// Hours are an unbounded signed integer, not a day count; magnitudes
// beyond 24 hours are valid. Overflow beyond int64 milliseconds is a
// known, undetected limitation.
type SignedDuration struct {
	totalMs int64
}

// NewSignedDuration builds a duration from explicit components via pure
// linear combination. Components are not normalized or bounds-checked:
// minutes=90 simply contributes 90 minutes worth of milliseconds, and
// components of mixed sign cancel arithmetically.
func NewSignedDuration(hours, minutes, seconds, millis int64) SignedDuration {
	return SignedDuration{
		totalMs: hours*MillisPerHour + minutes*MillisPerMinute + seconds*MillisPerSecond + millis,
	}
}

// FromMilliseconds builds a duration from a raw millisecond count
func FromMilliseconds(ms int64) SignedDuration {
	return SignedDuration{totalMs: ms}
}

// FromHours builds a duration of whole hours
func FromHours(hours int64) SignedDuration {
	return NewSignedDuration(hours, 0, 0, 0)
}

// FromMinutes builds a duration of whole minutes
func FromMinutes(minutes int64) SignedDuration {
	return NewSignedDuration(0, minutes, 0, 0)
}

// FromSeconds builds a duration of whole seconds
func FromSeconds(seconds int64) SignedDuration {
	return NewSignedDuration(0, 0, seconds, 0)
}

// FromClock builds a duration from the wall-clock time-of-day of t in
// its own location. Only the clock reading is used - the calendar date
// is discarded, so two instants on different days with the same clock
// time produce equal durations.
func FromClock(t time.Time) SignedDuration {
	hour, minute, second := t.Clock()
	millis := int64(t.Nanosecond() / int(time.Millisecond))
	return NewSignedDuration(int64(hour), int64(minute), int64(second), millis)
}

// TotalMilliseconds returns the raw stored millisecond count
func (d SignedDuration) TotalMilliseconds() int64 {
	return d.totalMs
}

// Hours returns the whole-hour component, carrying the sign of the total
func (d SignedDuration) Hours() int64 {
	return applySign(d.totalMs, absMillis(d.totalMs)/MillisPerHour)
}

// Minutes returns the minutes-of-hour component, carrying the sign of the total
func (d SignedDuration) Minutes() int64 {
	return applySign(d.totalMs, absMillis(d.totalMs)%MillisPerHour/MillisPerMinute)
}

// Seconds returns the seconds-of-minute component, carrying the sign of the total
func (d SignedDuration) Seconds() int64 {
	return applySign(d.totalMs, absMillis(d.totalMs)%MillisPerMinute/MillisPerSecond)
}

// Milliseconds returns the milliseconds-of-second component, carrying
// the sign of the total
func (d SignedDuration) Milliseconds() int64 {
	return applySign(d.totalMs, absMillis(d.totalMs)%MillisPerSecond)
}

// Add returns the sum of d and other
func (d SignedDuration) Add(other SignedDuration) SignedDuration {
	return SignedDuration{totalMs: d.totalMs + other.totalMs}
}

// Subtract returns the difference of d and other
func (d SignedDuration) Subtract(other SignedDuration) SignedDuration {
	return SignedDuration{totalMs: d.totalMs - other.totalMs}
}

// MultiplyBy scales the duration by a real factor. Fractional products
// are truncated toward zero so the stored total stays a whole
// millisecond count.
func (d SignedDuration) MultiplyBy(factor float64) SignedDuration {
	return SignedDuration{totalMs: int64(math.Trunc(float64(d.totalMs) * factor))}
}

// DivideBy divides the duration by a real divisor. Fractional quotients
// are truncated toward zero. Dividing by exactly zero fails with
// ErrDivisionByZero.
func (d SignedDuration) DivideBy(divisor float64) (SignedDuration, error) {
	if divisor == 0 {
		return SignedDuration{}, errs.ErrDivisionByZero
	}
	return SignedDuration{totalMs: int64(math.Trunc(float64(d.totalMs) / divisor))}, nil
}

// Negate returns the additive inverse
func (d SignedDuration) Negate() SignedDuration {
	return SignedDuration{totalMs: -d.totalMs}
}

// Abs returns the sign-discarding absolute value
func (d SignedDuration) Abs() SignedDuration {
	return SignedDuration{totalMs: absMillis(d.totalMs)}
}

// Equals reports whether d and other hold the same millisecond count
func (d SignedDuration) Equals(other SignedDuration) bool {
	return d.totalMs == other.totalMs
}

// GreaterThan reports whether d is strictly greater than other
func (d SignedDuration) GreaterThan(other SignedDuration) bool {
	return d.totalMs > other.totalMs
}

// LessThan reports whether d is strictly less than other
func (d SignedDuration) LessThan(other SignedDuration) bool {
	return d.totalMs < other.totalMs
}

// Between reports whether d lies within [min, max], inclusive at both ends
func (d SignedDuration) Between(min, max SignedDuration) bool {
	return !d.LessThan(min) && !d.GreaterThan(max)
}

// IsZero reports whether the duration is exactly zero
func (d SignedDuration) IsZero() bool {
	return d.totalMs == 0
}

// IsNegative reports whether the duration is strictly negative
func (d SignedDuration) IsNegative() bool {
	return d.totalMs < 0
}

// IsPositive reports whether the duration is strictly positive
func (d SignedDuration) IsPositive() bool {
	return d.totalMs > 0
}

// Clamp limits the duration to [min, max]: below min returns min, above
// max returns max, otherwise the receiver is returned unchanged. The
// caller must ensure min <= max; the result for an inverted range is
// unspecified.
func (d SignedDuration) Clamp(min, max SignedDuration) SignedDuration {
	if d.LessThan(min) {
		return min
	}
	if d.GreaterThan(max) {
		return max
	}
	return d
}

// RoundToSecond rounds to the nearest whole second, halves away from zero
func (d SignedDuration) RoundToSecond() SignedDuration {
	return SignedDuration{totalMs: roundToUnit(d.totalMs, MillisPerSecond)}
}

// RoundToMinute rounds to the nearest whole minute, halves away from zero
func (d SignedDuration) RoundToMinute() SignedDuration {
	return SignedDuration{totalMs: roundToUnit(d.totalMs, MillisPerMinute)}
}

// RoundToHour rounds to the nearest whole hour, halves away from zero
func (d SignedDuration) RoundToHour() SignedDuration {
	return SignedDuration{totalMs: roundToUnit(d.totalMs, MillisPerHour)}
}

// roundToUnit rounds ms to the nearest multiple of unit using
// round-half-away-from-zero on the signed quotient
func roundToUnit(ms, unit int64) int64 {
	quotient := ms / unit
	remainder := ms % unit
	if remainder < 0 {
		remainder = -remainder
	}
	if 2*remainder >= unit {
		if ms < 0 {
			quotient--
		} else {
			quotient++
		}
	}
	return quotient * unit
}

// absMillis returns the magnitude of a millisecond count
func absMillis(ms int64) int64 {
	if ms < 0 {
		return -ms
	}
	return ms
}

// applySign transfers the sign of total onto a non-negative magnitude
func applySign(total, magnitude int64) int64 {
	if total < 0 {
		return -magnitude
	}
	return magnitude
}
