package entity

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	errs "github.com/amirhossein-jamali/timespan-processor/internal/domain/error"
)

// DefaultFormat is the format pattern used by String and FromString
const DefaultFormat = "hh:mm:ss.SSS"

// component identifies which duration component a format token renders
type component int

const (
	componentHours component = iota
	componentMinutes
	componentSeconds
	componentMillis
)

// formatToken describes one placeholder of the format mini-language
type formatToken struct {
	literal   string
	component component
	padWidth  int    // zero-pad width when rendering, 0 for no padding
	pattern   string // digit pattern used when parsing
}

// Token table ordered longest-match-first, so "hh" is matched before "h"
// and "SSS" before "S" when scanning a format string.
var formatTokens = []formatToken{
	{literal: "SSS", component: componentMillis, padWidth: 3, pattern: `\d{3}`},
	{literal: "hh", component: componentHours, padWidth: 2, pattern: `\d{2}`},
	{literal: "mm", component: componentMinutes, padWidth: 2, pattern: `\d{2}`},
	{literal: "ss", component: componentSeconds, padWidth: 2, pattern: `\d{2}`},
	{literal: "h", component: componentHours, padWidth: 0, pattern: `\d{1,2}`},
	{literal: "m", component: componentMinutes, padWidth: 0, pattern: `\d{1,2}`},
	{literal: "s", component: componentSeconds, padWidth: 0, pattern: `\d{1,2}`},
	{literal: "S", component: componentMillis, padWidth: 0, pattern: `\d{1,3}`},
}

// segment is one piece of a tokenized format string: either a literal
// run of characters or a recognized token
type segment struct {
	literal string
	token   *formatToken
}

// compiledFormat is a format string tokenized once and reused for both
// rendering and parsing
type compiledFormat struct {
	source   string
	segments []segment
	matcher  *regexp.Regexp
}

var (
	formatCacheMu sync.RWMutex
	formatCache   = map[string]*compiledFormat{}
)

// compileFormat tokenizes a format string into literal and token
// segments and builds the anchored matcher used for parsing. Compiled
// formats are cached since the same handful of patterns is used over
// and over.
func compileFormat(format string) *compiledFormat {
	formatCacheMu.RLock()
	cached, ok := formatCache[format]
	formatCacheMu.RUnlock()
	if ok {
		return cached
	}

	var segments []segment
	var literal strings.Builder
	var pattern strings.Builder
	pattern.WriteString(`^`)

	flushLiteral := func() {
		if literal.Len() > 0 {
			segments = append(segments, segment{literal: literal.String()})
			pattern.WriteString(regexp.QuoteMeta(literal.String()))
			literal.Reset()
		}
	}

	for i := 0; i < len(format); {
		matched := false
		for t := range formatTokens {
			token := &formatTokens[t]
			if strings.HasPrefix(format[i:], token.literal) {
				flushLiteral()
				segments = append(segments, segment{token: token})
				pattern.WriteString(`(` + token.pattern + `)`)
				i += len(token.literal)
				matched = true
				break
			}
		}
		if !matched {
			literal.WriteByte(format[i])
			i++
		}
	}
	flushLiteral()
	pattern.WriteString(`$`)

	compiled := &compiledFormat{
		source:   format,
		segments: segments,
		matcher:  regexp.MustCompile(pattern.String()),
	}

	formatCacheMu.Lock()
	formatCache[format] = compiled
	formatCacheMu.Unlock()
	return compiled
}

// String renders the duration with the default "hh:mm:ss.SSS" format
func (d SignedDuration) String() string {
	return d.Format(DefaultFormat)
}

// Format renders the duration against a format pattern. Component
// values are the non-negative magnitudes decomposed from the absolute
// total; a single leading "-" marks a negative duration. Every token
// occurrence is substituted, and unrecognized characters pass through
// unchanged.
func (d SignedDuration) Format(format string) string {
	total := absMillis(d.totalMs)
	magnitudes := map[component]int64{
		componentHours:   total / MillisPerHour,
		componentMinutes: total % MillisPerHour / MillisPerMinute,
		componentSeconds: total % MillisPerMinute / MillisPerSecond,
		componentMillis:  total % MillisPerSecond,
	}

	var out strings.Builder
	if d.totalMs < 0 {
		out.WriteByte('-')
	}
	for _, seg := range compileFormat(format).segments {
		if seg.token == nil {
			out.WriteString(seg.literal)
			continue
		}
		value := magnitudes[seg.token.component]
		if seg.token.padWidth > 0 {
			out.WriteString(fmt.Sprintf("%0*d", seg.token.padWidth, value))
		} else {
			out.WriteString(strconv.FormatInt(value, 10))
		}
	}
	return out.String()
}

// FromString parses a duration rendered with the default format
func FromString(text string) (SignedDuration, error) {
	return FromFormat(text, DefaultFormat)
}

// FromFormat parses text against a format pattern, inverting Format. A
// leading "-" marks a negative duration and is stripped before
// matching; the remainder must match the compiled pattern in its
// entirety or the parse fails with ErrFormatMismatch. Components whose
// tokens are absent from the format stay zero, and overflowing parsed
// components carry upward (milliseconds into seconds, seconds into
// minutes, minutes into hours - hours never carry further).
//
// Unpadded tokens match greedily, so a format placing "h" or "S"
// directly against a digit literal can capture an unintended width.
// That ambiguity is inherent to the pattern matching and is not
// special-cased.
func FromFormat(text, format string) (SignedDuration, error) {
	cleaned := text
	negative := strings.HasPrefix(cleaned, "-")
	if negative {
		cleaned = cleaned[1:]
	}

	compiled := compileFormat(format)
	match := compiled.matcher.FindStringSubmatch(cleaned)
	if match == nil {
		return SignedDuration{}, errs.NewFormatMismatchError(text, format)
	}

	// First capture wins when a format repeats a token's component
	values := map[component]int64{}
	group := 1
	for _, seg := range compiled.segments {
		if seg.token == nil {
			continue
		}
		if _, seen := values[seg.token.component]; !seen {
			// Capture groups are all-digit by construction
			parsed, err := strconv.ParseInt(match[group], 10, 64)
			if err != nil {
				return SignedDuration{}, errs.NewFormatMismatchError(text, format)
			}
			values[seg.token.component] = parsed
		}
		group++
	}

	hours := values[componentHours]
	minutes := values[componentMinutes]
	seconds := values[componentSeconds]
	millis := values[componentMillis]

	// Carry overflow upward in fixed order: ms -> s -> m -> h
	seconds += millis / MillisPerSecond
	millis %= MillisPerSecond
	minutes += seconds / 60
	seconds %= 60
	hours += minutes / 60
	minutes %= 60

	result := NewSignedDuration(hours, minutes, seconds, millis)
	if negative {
		result = result.Negate()
	}
	return result, nil
}
