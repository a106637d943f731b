package query

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"medman/internal/errors"
)

var durationUnits = map[string]time.Duration{
	"ns":      time.Nanosecond,
	"us":      time.Microsecond,
	"µs":      time.Microsecond,
	"ms":      time.Millisecond,
	"s":       time.Second,
	"sec":     time.Second,
	"secs":    time.Second,
	"second":  time.Second,
	"seconds": time.Second,
	"m":       time.Minute,
	"min":     time.Minute,
	"mins":    time.Minute,
	"minute":  time.Minute,
	"minutes": time.Minute,
	"h":       time.Hour,
	"hr":      time.Hour,
	"hrs":     time.Hour,
	"hour":    time.Hour,
	"hours":   time.Hour,
	"d":       24 * time.Hour,
	"day":     24 * time.Hour,
	"days":    24 * time.Hour,
	"w":       week,
	"wk":      week,
	"wks":     week,
	"week":    week,
	"weeks":   week,
	"mo":      month,
	"mon":     month,
	"month":   month,
	"months":  month,
	"y":       year,
	"yr":      year,
	"yrs":     year,
	"year":    year,
	"years":   year,
}

// Months and years are Gregorian averages: 30.436875 and 365.2425 days.
const (
	week  = 7 * 24 * time.Hour
	month = 2629746 * time.Second
	year  = 31556952 * time.Second
)

// ParseDuration parses the human duration forms accepted in queries, such as "2min45s",
// "1h30m", "1.5s", "1week" or "165". A bare number, decimal or not, is a count of seconds.
// Units ignore case except "M", which is a month while "m" is a minute.
func ParseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, errors.Errorf("invalid duration %q: empty value", s)
	}

	if isNumber(s) {
		value, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, errors.Errorf("invalid duration %q: bad number %q", s, s)
		}
		return scale(s, value, time.Second)
	}

	var (
		total time.Duration
		rest  = s
	)
	for rest != "" {
		num := strings.IndexFunc(rest, func(r rune) bool { return !unicode.IsDigit(r) && r != '.' })
		if num == 0 {
			return 0, errors.Errorf("invalid duration %q: expected a number at %q", s, rest)
		}
		if num < 0 {
			return 0, errors.Errorf("invalid duration %q: missing unit after %q", s, rest)
		}

		value, err := strconv.ParseFloat(rest[:num], 64)
		if err != nil {
			return 0, errors.Errorf("invalid duration %q: bad number %q", s, rest[:num])
		}
		rest = rest[num:]

		end := strings.IndexFunc(rest, func(r rune) bool { return unicode.IsDigit(r) || r == '.' })
		if end < 0 {
			end = len(rest)
		}
		unit, ok := lookupUnit(rest[:end])
		if !ok {
			return 0, errors.Errorf("invalid duration %q: unknown unit %q", s, rest[:end])
		}
		rest = rest[end:]

		d, err := scale(s, value, unit)
		if err != nil {
			return 0, err
		}
		if total > math.MaxInt64-d {
			return 0, errors.Errorf("invalid duration %q: out of range", s)
		}
		total += d
	}

	return total, nil
}

func isNumber(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) && r != '.' }) < 0
}

func lookupUnit(name string) (time.Duration, bool) {
	if name == "M" {
		return month, true
	}
	unit, ok := durationUnits[strings.ToLower(name)]
	return unit, ok
}

func scale(s string, value float64, unit time.Duration) (time.Duration, error) {
	v := math.Round(value * float64(unit))
	if v >= math.MaxInt64 {
		return 0, errors.Errorf("invalid duration %q: out of range", s)
	}
	return time.Duration(v), nil
}
