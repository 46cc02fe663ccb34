package employee

import (
	"fmt"
	"strings"
	"time"
)

type Employee struct {
	ID               string
	FirstName        string
	LastName         string
	DateOfBirth      time.Time
	DateOfEmployment time.Time
	Phone            string
	Email            string
	Department       string
	Position         Position
}

// FullName joins first and last name, skipping whichever is blank. Both being
// blank means the caller is holding a record that never passed validation,
// which is a bug upstream.
func (e Employee) FullName() (string, error) {
	parts := make([]string, 0, 2)
	for _, p := range []string{e.FirstName, e.LastName} {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	if len(parts) == 0 {
		return "", ErrEmptyFullName
	}
	return strings.Join(parts, " "), nil
}

type Position string

const (
	PositionJunior Position = "junior"
	PositionMedior Position = "medior"
	PositionSenior Position = "senior"
)

// Positions returns the fixed set of selectable position codes.
func Positions() []Position {
	return []Position{PositionJunior, PositionMedior, PositionSenior}
}

func IsValidPosition(s string) bool {
	for _, p := range Positions() {
		if string(p) == s {
			return true
		}
	}
	return false
}

// ViewMode selects how the employee list is rendered.
type ViewMode string

const (
	ViewModeTable    ViewMode = "table"
	ViewModeCardList ViewMode = "card-list"
)

const (
	tableItemsPerPage    = 10
	cardListItemsPerPage = 4
)

func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case ViewModeTable, ViewModeCardList:
		return ViewMode(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownViewMode, s)
}

// PageSize returns the page size for the view mode. An unknown mode here
// means a missing case in an exhaustive switch, so it fails loudly instead
// of rendering something wrong.
func (v ViewMode) PageSize() int {
	switch v {
	case ViewModeTable:
		return tableItemsPerPage
	case ViewModeCardList:
		return cardListItemsPerPage
	default:
		panic(fmt.Sprintf("unknown view mode: %q", v))
	}
}
