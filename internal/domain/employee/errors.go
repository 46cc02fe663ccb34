package employee

import "errors"

var (
	// ErrEmployeeNotFound signals a mutation or lookup referencing an id the
	// store does not hold. It points at a caller/UI desynchronization rather
	// than bad user input, so handlers report it instead of swallowing it.
	ErrEmployeeNotFound = errors.New("employee not found")

	ErrEmptyFullName   = errors.New("cannot get full name of an employee with no name")
	ErrUnknownViewMode = errors.New("unknown view mode")
)
