package employee

import "context"

type EmployeeService interface {
	ListEmployees(ctx context.Context, req ListEmployeesRequest) (ListEmployeesResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, id string) error
	BulkDeleteEmployees(ctx context.Context, req BulkDeleteRequest) (int, error)
	// ValidateDraft runs the schema against a form draft without mutating
	// anything; it backs the on-change validation in the UI.
	ValidateDraft(ctx context.Context, req ValidateDraftRequest) error
}
