package employee

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nimbushr/employee-manager-go/internal/domain/employee"
	"github.com/nimbushr/employee-manager-go/internal/pkg/pagination"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

// ListEmployees implements employee.EmployeeService. The query term filters
// before pagination; a blank term means no filter. A stale page (e.g. after
// the last record of the final page was deleted) is clamped and reported
// back through PageCorrected.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, req employee.ListEmployeesRequest) (employee.ListEmployeesResponse, error) {
	all, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.ListEmployeesResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	filtered := all
	if term := strings.TrimSpace(req.Query); term != "" {
		filtered = employee.Search(all, term)
	}

	pageSize := req.View.PageSize()
	start, end, page := pagination.Window(len(filtered), req.Page, pageSize)

	items := make([]employee.EmployeeResponse, 0, end-start)
	for _, e := range filtered[start:end] {
		items = append(items, employee.ToResponse(e))
	}

	return employee.ListEmployeesResponse{
		Items:         items,
		Page:          page,
		PageSize:      pageSize,
		TotalItems:    len(filtered),
		TotalPages:    pagination.TotalPages(len(filtered), pageSize),
		PageCorrected: page != req.Page,
	}, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(e), nil
}

// CreateEmployee implements employee.EmployeeService. The schema runs
// against the whole collection; the store itself never re-validates.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	all, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	draft := req.ToDraft()
	if err := employee.ValidateDraft(draft, all, ""); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Add(ctx, draft.ToEmployee(""))
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to add employee: %w", err)
	}

	slog.Info("employee created", "id", created.ID, "department", created.Department)
	return employee.ToResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService. Partial fields are
// merged onto the stored record first, and the merged draft is validated as
// a whole with the record's own id excluded from uniqueness checks.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	existing, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	all, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	merged := req.Merged(existing)
	if err := employee.ValidateDraft(merged, all, id); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated := merged.ToEmployee(id)
	if err := s.employeeRepo.Update(ctx, id, updated); err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("employee updated", "id", id)
	return employee.ToResponse(updated), nil
}

// DeleteEmployee implements employee.EmployeeService. A miss means the UI
// asked to delete something the store never had: reported, not swallowed.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	removed, err := s.employeeRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if !removed {
		slog.Warn("delete requested for unknown employee", "id", id)
		return employee.ErrEmployeeNotFound
	}
	slog.Info("employee deleted", "id", id)
	return nil
}

// BulkDeleteEmployees implements employee.EmployeeService. Unknown ids in
// the set are skipped; the result is how many records actually went away.
func (s *EmployeeServiceImpl) BulkDeleteEmployees(ctx context.Context, req employee.BulkDeleteRequest) (int, error) {
	n, err := s.employeeRepo.DeleteMany(ctx, req.IDs)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk delete employees: %w", err)
	}
	slog.Info("employees bulk deleted", "requested", len(req.IDs), "deleted", n)
	return n, nil
}

// ValidateDraft implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ValidateDraft(ctx context.Context, req employee.ValidateDraftRequest) error {
	all, err := s.employeeRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}
	return employee.ValidateDraft(req.Draft, all, req.ExcludeID)
}
