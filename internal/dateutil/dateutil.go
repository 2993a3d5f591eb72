// Package dateutil parses frontmatter dates and turns user-friendly date
// formats such as "DD/MM/YYYY" into Go time layouts.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for date handling.
var (
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrInvalidDate       = errors.New("invalid date")
)

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// tokens rewrites format tokens to Go layout parts. Longer tokens are listed
// first so "MMMM" wins over "MM" at the same position.
var tokens = strings.NewReplacer(
	"YYYY", "2006",
	"MMMM", "January",
	"MMM", "Jan",
	"YY", "06",
	"MM", "01",
	"DD", "02",
	"M", "1",
	"D", "2",
)

// DatePresets names common formats.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// isoLayouts are always tried by ParseDate, most specific first.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDateFormat converts a token format to a Go time layout.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D. Text in brackets is kept
// literally: "[Week of] MMM D" keeps "Week of".
func ParseDateFormat(format string) (string, error) {
	switch {
	case format == "":
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	case len(format) > MaxDateFormatLength:
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var b strings.Builder
	rest := format
	for rest != "" {
		open := strings.IndexByte(rest, '[')
		if open < 0 {
			b.WriteString(tokens.Replace(rest))
			break
		}
		b.WriteString(tokens.Replace(rest[:open]))

		end := strings.IndexByte(rest[open:], ']')
		if end < 0 {
			pos := len(format) - len(rest) + open
			return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, pos)
		}
		b.WriteString(rest[open+1 : open+end])
		rest = rest[open+end+1:]
	}
	return b.String(), nil
}

// Layout resolves a preset name (case-insensitive) or token format to a Go
// layout.
func Layout(format string) (string, error) {
	if preset, ok := DatePresets[strings.ToLower(format)]; ok {
		format = preset
	}
	return ParseDateFormat(format)
}

// ParseDate parses a frontmatter date. The ISO layouts are tried first,
// then extra in order.
func ParseDate(value string, extra ...string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}
	for _, layout := range append(isoLayouts[:len(isoLayouts):len(isoLayouts)], extra...) {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}
