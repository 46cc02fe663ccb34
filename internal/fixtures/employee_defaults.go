// Package fixtures provides the seed employee set used when the server
// starts without a snapshot.
package fixtures

import (
	"time"

	"github.com/google/uuid"
	"github.com/nimbushr/employee-manager-go/internal/domain/employee"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

// SeedEmployees returns a small starter collection with fresh ids.
func SeedEmployees() []employee.Employee {
	return []employee.Employee{
		{
			ID:               uuid.NewString(),
			FirstName:        "Ahmet",
			LastName:         "Sourtimes",
			DateOfBirth:      date(1990, time.September, 23),
			DateOfEmployment: date(2022, time.September, 23),
			Phone:            "+(90) 532 123 45 67",
			Email:            "ahmet@sourtimes.org",
			Department:       "Analytics",
			Position:         employee.PositionJunior,
		},
		{
			ID:               uuid.NewString(),
			FirstName:        "Elif",
			LastName:         "Korkmaz",
			DateOfBirth:      date(1988, time.March, 14),
			DateOfEmployment: date(2019, time.June, 3),
			Phone:            "+(90) 533 987 65 43",
			Email:            "elif.korkmaz@example.com",
			Department:       "Tech",
			Position:         employee.PositionSenior,
		},
		{
			ID:               uuid.NewString(),
			FirstName:        "Mert",
			LastName:         "Aydin",
			DateOfBirth:      date(1995, time.November, 2),
			DateOfEmployment: date(2023, time.February, 20),
			Phone:            "+(90) 534 222 33 44",
			Email:            "mert.aydin@example.com",
			Department:       "Tech",
			Position:         employee.PositionMedior,
		},
	}
}
