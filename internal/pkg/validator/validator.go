package validator

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// ValidationError is a single field-scoped failure. Code is a symbolic
// identifier (e.g. "duplicateEmail"); resolving it to a display message is
// the front-end's concern.
type ValidationError struct {
	Field string
	Code  string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Code)
	}
	return strings.Join(msgs, "; ")
}

// ByField groups the error codes per field, preserving evaluation order.
func (v ValidationErrors) ByField() map[string][]string {
	result := make(map[string][]string)
	for _, err := range v {
		result[err.Field] = append(result[err.Field], err.Code)
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// MinLength reports whether s has at least n characters.
func MinLength(s string, n int) bool {
	return utf8.RuneCountInString(s) >= n
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Phone numbers use a fixed international format: +(CC) NNN NNN NN NN.
var phoneRegex = regexp.MustCompile(`^\+\(\d{1,3}\) \d{3} \d{3} \d{2} \d{2}$`)

func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// IsFuture reports whether date is strictly after today, compared at
// calendar-day precision.
func IsFuture(date, today time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := today.Date()
	if y1 != y2 {
		return y1 > y2
	}
	if m1 != m2 {
		return m1 > m2
	}
	return d1 > d2
}

// AgeAt computes age in whole years as of today, decrementing when the
// birthday has not yet occurred this calendar year.
func AgeAt(birth, today time.Time) int {
	age := today.Year() - birth.Year()
	birthdayPassed := today.Month() > birth.Month() ||
		(today.Month() == birth.Month() && today.Day() >= birth.Day())
	if !birthdayPassed {
		age--
	}
	return age
}
