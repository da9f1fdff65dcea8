package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/timespan-processor/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	t.Run("Default format", func(t *testing.T) {
		testCases := []struct {
			name     string
			duration SignedDuration
			expected string
		}{
			{"zero", FromMilliseconds(0), "00:00:00.000"},
			{"typical span", NewSignedDuration(2, 30, 0, 0), "02:30:00.000"},
			{"all components", NewSignedDuration(2, 30, 45, 500), "02:30:45.500"},
			{"negative span", NewSignedDuration(2, 0, 0, 0).Negate(), "-02:00:00.000"},
			{"hours beyond 24 no day wraparound", NewSignedDuration(25, 30, 45, 500), "25:30:45.500"},
			{"sub-second", FromMilliseconds(7), "00:00:00.007"},
			{"negative sub-second", FromMilliseconds(-7), "-00:00:00.007"},
			{"hours wider than pad", FromHours(100), "100:00:00.000"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Equal(t, tc.expected, tc.duration.String())
			})
		}
	})

	t.Run("Custom formats", func(t *testing.T) {
		d := NewSignedDuration(1, 5, 7, 9)

		testCases := []struct {
			format   string
			expected string
		}{
			{"h:m:s.S", "1:5:7.9"},
			{"hh:mm", "01:05"},
			{"hhmmss", "010507"},
			{"h:mm:ss", "1:05:07"},
			{"mm/ss", "05/07"},
			{"SSS", "009"},
			{"", ""},
		}

		for _, tc := range testCases {
			t.Run(tc.format, func(t *testing.T) {
				assert.Equal(t, tc.expected, d.Format(tc.format))
			})
		}
	})

	t.Run("repeated token renders at every occurrence", func(t *testing.T) {
		d := NewSignedDuration(0, 12, 0, 0)
		assert.Equal(t, "12-12", d.Format("mm-mm"))
	})

	t.Run("components are magnitudes with single leading sign", func(t *testing.T) {
		d := NewSignedDuration(-1, -30, -15, -250)
		assert.Equal(t, "-01:30:15.250", d.String())
	})
}

func TestFromFormat(t *testing.T) {
	t.Run("Round trip with default format", func(t *testing.T) {
		testCases := []SignedDuration{
			FromMilliseconds(0),
			NewSignedDuration(2, 30, 0, 0),
			NewSignedDuration(2, 30, 45, 500),
			NewSignedDuration(0, 0, 0, 1),
			NewSignedDuration(1, 30, 0, 0).Negate(),
			NewSignedDuration(23, 59, 59, 999),
		}

		for _, d := range testCases {
			t.Run(d.String(), func(t *testing.T) {
				parsed, err := FromString(d.String())
				assert.NoError(t, err)
				assert.True(t, parsed.Equals(d), "parsed %v want %v", parsed, d)
			})
		}
	})

	t.Run("negative input", func(t *testing.T) {
		parsed, err := FromString("-01:30:00.000")
		assert.NoError(t, err)
		assert.True(t, parsed.Equals(NewSignedDuration(-1, -30, 0, 0)))
		assert.Equal(t, int64(-1), parsed.Hours())
		assert.Equal(t, int64(-30), parsed.Minutes())
	})

	t.Run("tokens absent from format leave components zero", func(t *testing.T) {
		parsed, err := FromFormat("05:30", "mm:ss")
		assert.NoError(t, err)
		assert.Equal(t, NewSignedDuration(0, 5, 30, 0), parsed)
	})

	t.Run("unpadded tokens accept one or two digits", func(t *testing.T) {
		parsed, err := FromFormat("1:5:7.9", "h:m:s.S")
		assert.NoError(t, err)
		assert.Equal(t, NewSignedDuration(1, 5, 7, 9), parsed)

		parsed, err = FromFormat("12:55:07.999", "h:m:s.S")
		assert.NoError(t, err)
		assert.Equal(t, NewSignedDuration(12, 55, 7, 999), parsed)
	})

	t.Run("overflowing components carry upward", func(t *testing.T) {
		testCases := []struct {
			name     string
			text     string
			format   string
			expected SignedDuration
		}{
			{"seconds into minutes", "00:90", "mm:ss", NewSignedDuration(0, 1, 30, 0)},
			{"minutes into hours", "90:00", "mm:ss", NewSignedDuration(1, 30, 0, 0)},
			{"seconds into minutes with millis kept", "90.500", "ss.SSS", NewSignedDuration(0, 1, 30, 500)},
			{"cascade through minutes and seconds", "99:99.999", "mm:ss.SSS", NewSignedDuration(1, 40, 39, 999)},
			{"hours never normalized", "99:00:00.000", "hh:mm:ss.SSS", FromHours(99)},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				parsed, err := FromFormat(tc.text, tc.format)
				assert.NoError(t, err)
				assert.True(t, parsed.Equals(tc.expected), "parsed %v want %v", parsed, tc.expected)
			})
		}
	})

	t.Run("carry applies before the sign", func(t *testing.T) {
		parsed, err := FromFormat("-00:90", "mm:ss")
		assert.NoError(t, err)
		assert.True(t, parsed.Equals(NewSignedDuration(0, -1, -30, 0)))
	})

	t.Run("mismatched input fails", func(t *testing.T) {
		testCases := []struct {
			name   string
			text   string
			format string
		}{
			{"empty input", "", DefaultFormat},
			{"wrong separator", "01-30-00.000", DefaultFormat},
			{"missing millis", "01:30:00", DefaultFormat},
			{"too many digits for padded token", "001:30:00.000", DefaultFormat},
			{"trailing garbage", "01:30:00.000x", DefaultFormat},
			{"leading garbage", "x01:30:00.000", DefaultFormat},
			{"letters for digits", "aa:bb:cc.ddd", DefaultFormat},
			{"three digits for unpadded hour", "100:00", "h:mm"},
			{"double negative", "--01:30:00.000", DefaultFormat},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := FromFormat(tc.text, tc.format)
				assert.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrFormatMismatch)
			})
		}
	})

	t.Run("mismatch error carries input and format", func(t *testing.T) {
		_, err := FromFormat("bogus", DefaultFormat)
		assert.Error(t, err)

		var mismatch *errs.FormatMismatchError
		assert.ErrorAs(t, err, &mismatch)
		assert.Equal(t, "bogus", mismatch.Input)
		assert.Equal(t, DefaultFormat, mismatch.Format)
	})
}
