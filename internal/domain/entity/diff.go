package entity

import (
	errs "github.com/amirhossein-jamali/timespan-processor/internal/domain/error"
)

// RoundUnit names the unit a computed diff is rounded to
type RoundUnit string

const (
	// RoundUnitNone leaves the computed diff unrounded
	RoundUnitNone RoundUnit = ""
	// RoundUnitSecond rounds the computed diff to the nearest second
	RoundUnitSecond RoundUnit = "second"
	// RoundUnitMinute rounds the computed diff to the nearest minute
	RoundUnitMinute RoundUnit = "minute"
	// RoundUnitHour rounds the computed diff to the nearest hour
	RoundUnitHour RoundUnit = "hour"
)

// Valid reports whether the unit is part of the rounding vocabulary
func (u RoundUnit) Valid() bool {
	switch u {
	case RoundUnitNone, RoundUnitSecond, RoundUnitMinute, RoundUnitHour:
		return true
	default:
		return false
	}
}

// DiffOptions controls the post-processing applied by TimeDiff
type DiffOptions struct {
	// Absolute discards the sign of the computed diff
	Absolute bool
	// RoundTo rounds the computed diff to the given unit, after the
	// absolute-value step
	RoundTo RoundUnit
}

// ComputeDuration derives a signed duration from two timestamp-like
// values by subtracting the time-of-day of from out of the time-of-day
// of to. Calendar dates are discarded, so the result reflects only the
// clock-time difference and can be negative even when to is
// chronologically after from. Unresolvable inputs fail with
// ErrInvalidInput.
func ComputeDuration(from, to any) (SignedDuration, error) {
	fromInstant, err := ResolveInstant(from)
	if err != nil {
		return SignedDuration{}, err
	}
	toInstant, err := ResolveInstant(to)
	if err != nil {
		return SignedDuration{}, err
	}
	return FromClock(toInstant).Subtract(FromClock(fromInstant)), nil
}

// TimeDiff computes ComputeDuration(from, to) and applies the requested
// post-processing in fixed order: absolute value first, rounding last.
// An unknown rounding unit fails with ErrInvalidRoundUnit.
func TimeDiff(from, to any, opts DiffOptions) (SignedDuration, error) {
	if !opts.RoundTo.Valid() {
		return SignedDuration{}, errs.ErrInvalidRoundUnit
	}

	diff, err := ComputeDuration(from, to)
	if err != nil {
		return SignedDuration{}, err
	}

	if opts.Absolute {
		diff = diff.Abs()
	}

	switch opts.RoundTo {
	case RoundUnitSecond:
		diff = diff.RoundToSecond()
	case RoundUnitMinute:
		diff = diff.RoundToMinute()
	case RoundUnitHour:
		diff = diff.RoundToHour()
	}

	return diff, nil
}
