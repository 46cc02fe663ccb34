// Package dateparse turns the heterogeneous date strings accepted by the
// employee form (ISO, slash, dot and dash separated) into calendar dates.
package dateparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoPrefixRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	separatorRegex = regexp.MustCompile(`[/.-]`)
)

// Truncate drops the time-of-day component, keeping local calendar fields only.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// Parse parses a date string into a calendar-day-precision time.Time.
// It returns false for empty or whitespace-only input and for anything that
// does not resolve to a real calendar date.
//
// Accepted shapes:
//   - ISO "YYYY-MM-DD"-prefixed strings (a trailing time component is ignored)
//   - exactly three numeric parts separated by '/', '.' or '-'
//
// For the three-part form, a 4-digit first part means year-month-day. With a
// 4-digit third part the year comes last and the remaining two parts are
// disambiguated by value: a part greater than 12 can only be a day. When both
// are 12 or less the input is read as day-month. That default is kept for
// compatibility with existing stored data; it is ambiguous by nature and not
// a pattern to extend.
func Parse(input string) (time.Time, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, false
	}

	if isoPrefixRegex.MatchString(s) && (len(s) == 10 || s[10] == 'T' || s[10] == ' ') {
		if t, err := time.ParseInLocation("2006-01-02", s[:10], time.Local); err == nil {
			return t, true
		}
		// Prefix looked like ISO but was not a real date (e.g. "2025-13-01");
		// fall through to the separator-based parse.
	}

	parts := separatorRegex.Split(s, -1)
	if len(parts) != 3 {
		return time.Time{}, false
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}

	var year, month, day int
	a, b, c := nums[0], nums[1], nums[2]

	switch {
	case len(parts[0]) == 4:
		year, month, day = a, b, c
	case len(parts[2]) == 4:
		year = c
		switch {
		case b > 12 && b <= 31:
			month, day = a, b
		case a > 12 && a <= 31:
			day, month = a, b
		default:
			day, month = a, b
		}
	default:
		return time.Time{}, false
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	dt := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	// time.Date normalizes overflow (Feb 30 becomes Mar 2), so a failed
	// round-trip means the components were not a real calendar date.
	if dt.Year() != year || dt.Month() != time.Month(month) || dt.Day() != day {
		return time.Time{}, false
	}

	return dt, true
}
