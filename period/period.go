// Package period provides the calendar value types used to address
// statistical observations: a monthly period and a loosely parsed year.
//
// A Month has two distinct string encodings that must never be conflated:
// the human entry format "YYYY-MM" (String, Parse) and the wire-format
// period token "YYYY-MMM" (Wire, ParseWire) embedded in query URLs and data
// attributes.
package period

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrFormat reports user input that does not match an accepted period
// shape.
var ErrFormat = errors.New("bad period format")

// ErrYearRange reports a year outside the plausible range for price data.
var ErrYearRange = errors.New("year out of range")

// Years outside this window are rejected as typos rather than requests.
const (
	MinYear = 1800
	MaxYear = 3000
)

// Month represents a calendar month, with no finer granularity. Months are
// immutable value types ordered lexicographically on (year, month).
type Month struct {
	y int
	m time.Month
}

// New returns a Month for the given year and month.
func New(year int, month time.Month) Month {
	return Month{y: year, m: month}
}

// ThisMonth returns the current month in UTC.
func ThisMonth() Month {
	y, m, _ := time.Now().UTC().Date()
	return Month{y: y, m: m}
}

// Year returns the month's year.
func (p Month) Year() int { return p.y }

// Month returns the month within the year.
func (p Month) Month() time.Month { return p.m }

// Before reports whether p is strictly before q.
func (p Month) Before(q Month) bool { return p.y < q.y || (p.y == q.y && p.m < q.m) }

// After reports whether p is strictly after q.
func (p Month) After(q Month) bool { return q.Before(p) }

// String formats the month in the human entry format "YYYY-MM".
func (p Month) String() string { return fmt.Sprintf("%04d-%02d", p.y, int(p.m)) }

// Wire formats the month as the wire-format period token, e.g. "2024-M01",
// used in query parameters and data attributes. Tokens of this shape sort
// chronologically under plain string comparison because the month is
// zero-padded.
func (p Month) Wire() string { return fmt.Sprintf("%04d-M%02d", p.y, int(p.m)) }

// Clamp returns p unless it is after today, in which case today is
// returned: unreleased future periods cannot be requested from the sources.
func Clamp(p, today Month) Month {
	if p.After(today) {
		return today
	}
	return p
}

// ClampYear is Clamp for yearly granularity.
func ClampYear(year, currentYear int) int {
	if year > currentYear {
		return currentYear
	}
	return year
}

func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// Parse parses a Month from the strict entry format "YYYY-MM": a 4-digit
// year, a dash, and a 2-digit month in 01..12. Anything else fails.
func Parse(str string) (Month, error) {
	t := strings.TrimSpace(str)
	if len(t) != 7 || t[4] != '-' || !digits(t[:4]) || !digits(t[5:]) {
		return Month{}, fmt.Errorf("invalid month %q, want YYYY-MM: %w", str, ErrFormat)
	}
	y, _ := strconv.Atoi(t[:4])
	m, _ := strconv.Atoi(t[5:])
	if m < 1 || m > 12 {
		return Month{}, fmt.Errorf("invalid month %q, month must be in 01..12: %w", str, ErrFormat)
	}
	return Month{y: y, m: time.Month(m)}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Month {
	p, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return p
}

// ParseWire parses a wire-format period token like "2025-M11".
func ParseWire(token string) (Month, error) {
	if len(token) != 8 || token[4] != '-' || token[5] != 'M' || !digits(token[:4]) || !digits(token[6:]) {
		return Month{}, fmt.Errorf("invalid period token %q, want YYYY-MMM: %w", token, ErrFormat)
	}
	y, _ := strconv.Atoi(token[:4])
	m, _ := strconv.Atoi(token[6:])
	if m < 1 || m > 12 {
		return Month{}, fmt.Errorf("invalid period token %q, month must be in 01..12: %w", token, ErrFormat)
	}
	return Month{y: y, m: time.Month(m)}, nil
}

// Label renders a wire-format token in the human "YYYY-MM" form for
// display. Tokens that do not parse (e.g. bare years) are returned
// unchanged.
func Label(token string) string {
	p, err := ParseWire(token)
	if err != nil {
		return token
	}
	return p.String()
}

// ParseYearLoose parses a bare year, or a year followed by a dash and
// arbitrary trailing text (a month, typically), which is ignored. The year
// must lie in [MinYear, MaxYear].
func ParseYearLoose(str string) (int, error) {
	t := strings.TrimSpace(str)
	yearPart, _, _ := strings.Cut(t, "-")
	y, err := strconv.Atoi(yearPart)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q, want YYYY or YYYY-MM: %w", str, ErrFormat)
	}
	if y < MinYear || y > MaxYear {
		return 0, fmt.Errorf("year %d outside [%d, %d]: %w", y, MinYear, MaxYear, ErrYearRange)
	}
	return y, nil
}
