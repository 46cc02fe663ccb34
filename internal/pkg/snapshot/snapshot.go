// Package snapshot persists the employee collection as a JSON document on
// local disk, the server-side analogue of the browser's local-storage
// snapshot. The store is a plain load/save pair; everything above it treats
// persistence as a black box.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nimbushr/employee-manager-go/internal/domain/employee"
)

const dateLayout = "2006-01-02"

// document is the on-disk layout: one fixed key holding the whole
// collection, mirroring the single local-storage entry the front-end used.
type document struct {
	Employees []record `json:"employees"`
}

type record struct {
	ID               string `json:"id"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	DateOfBirth      string `json:"dateOfBirth"`
	DateOfEmployment string `json:"dateOfEmployment"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	Department       string `json:"department"`
	Position         string `json:"position"`
}

type Store struct {
	path string
}

func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	return &Store{path: path}, nil
}

// Load reads the snapshot. A missing file is not an error: it means a fresh
// start, and Load reports found=false. A snapshot that exists but holds zero
// employees reports found=true — a deliberately emptied collection must stay
// empty across restarts, not be mistaken for a first boot.
func (s *Store) Load() ([]employee.Employee, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	employees := make([]employee.Employee, 0, len(doc.Employees))
	for _, r := range doc.Employees {
		e, err := r.toEmployee()
		if err != nil {
			return nil, false, fmt.Errorf("corrupt snapshot record %q: %w", r.ID, err)
		}
		employees = append(employees, e)
	}
	return employees, true, nil
}

// Save writes the whole collection, replacing the previous snapshot. The
// write goes through a temp file and rename so a crash mid-write never
// leaves a half-written snapshot behind.
func (s *Store) Save(employees []employee.Employee) error {
	doc := document{Employees: make([]record, 0, len(employees))}
	for _, e := range employees {
		doc.Employees = append(doc.Employees, fromEmployee(e))
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

func (r record) toEmployee() (employee.Employee, error) {
	birth, err := time.ParseInLocation(dateLayout, r.DateOfBirth, time.Local)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("invalid dateOfBirth: %w", err)
	}
	employment, err := time.ParseInLocation(dateLayout, r.DateOfEmployment, time.Local)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("invalid dateOfEmployment: %w", err)
	}
	return employee.Employee{
		ID:               r.ID,
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		DateOfBirth:      birth,
		DateOfEmployment: employment,
		Phone:            r.Phone,
		Email:            r.Email,
		Department:       r.Department,
		Position:         employee.Position(r.Position),
	}, nil
}

func fromEmployee(e employee.Employee) record {
	return record{
		ID:               e.ID,
		FirstName:        e.FirstName,
		LastName:         e.LastName,
		DateOfBirth:      e.DateOfBirth.Format(dateLayout),
		DateOfEmployment: e.DateOfEmployment.Format(dateLayout),
		Phone:            e.Phone,
		Email:            e.Email,
		Department:       e.Department,
		Position:         string(e.Position),
	}
}
