package employee

const dateLayout = "2006-01-02"

// Field names are camelCase to match the employee record shape the browser
// front-end stores and submits.

type CreateEmployeeRequest struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	DateOfBirth      string `json:"dateOfBirth"`
	DateOfEmployment string `json:"dateOfEmployment"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	Department       string `json:"department"`
	Position         string `json:"position"`
}

func (r CreateEmployeeRequest) ToDraft() Draft {
	return Draft{
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		DateOfBirth:      r.DateOfBirth,
		DateOfEmployment: r.DateOfEmployment,
		Phone:            r.Phone,
		Email:            r.Email,
		Department:       r.Department,
		Position:         r.Position,
	}
}

// UpdateEmployeeRequest carries partial fields; nil means "keep the stored
// value". The merged draft is what gets validated, never the request alone.
type UpdateEmployeeRequest struct {
	FirstName        *string `json:"firstName,omitempty"`
	LastName         *string `json:"lastName,omitempty"`
	DateOfBirth      *string `json:"dateOfBirth,omitempty"`
	DateOfEmployment *string `json:"dateOfEmployment,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	Email            *string `json:"email,omitempty"`
	Department       *string `json:"department,omitempty"`
	Position         *string `json:"position,omitempty"`
}

// Merged overlays the provided fields onto the existing record and returns
// the resulting full draft.
func (r UpdateEmployeeRequest) Merged(existing Employee) Draft {
	draft := draftFromEmployee(existing)
	if r.FirstName != nil {
		draft.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		draft.LastName = *r.LastName
	}
	if r.DateOfBirth != nil {
		draft.DateOfBirth = *r.DateOfBirth
	}
	if r.DateOfEmployment != nil {
		draft.DateOfEmployment = *r.DateOfEmployment
	}
	if r.Phone != nil {
		draft.Phone = *r.Phone
	}
	if r.Email != nil {
		draft.Email = *r.Email
	}
	if r.Department != nil {
		draft.Department = *r.Department
	}
	if r.Position != nil {
		draft.Position = *r.Position
	}
	return draft
}

func draftFromEmployee(e Employee) Draft {
	return Draft{
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

// ValidateDraftRequest is the body of the incremental validation endpoint:
// the current form state plus, when editing, the id to exclude from
// uniqueness checks.
type ValidateDraftRequest struct {
	Draft
	ExcludeID string `json:"excludeId,omitempty"`
}

type BulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

type ListEmployeesRequest struct {
	Query string
	Page  int
	View  ViewMode
}

type EmployeeResponse struct {
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

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
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

type ListEmployeesResponse struct {
	Items      []EmployeeResponse
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
	// PageCorrected is set when the requested page was out of range and the
	// window was clamped to the last valid page.
	PageCorrected bool
}

// PositionOption feeds the position dropdown: the stored code plus the
// translation key the front-end resolves to a label.
type PositionOption struct {
	Value    string `json:"value"`
	LabelKey string `json:"labelKey"`
}

func PositionOptions() []PositionOption {
	options := make([]PositionOption, 0, len(Positions()))
	for _, p := range Positions() {
		options = append(options, PositionOption{
			Value:    string(p),
			LabelKey: "employee.positions." + string(p),
		})
	}
	return options
}
