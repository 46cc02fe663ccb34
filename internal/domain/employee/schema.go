package employee

import (
	"time"

	"github.com/nimbushr/employee-manager-go/internal/pkg/dateparse"
	"github.com/nimbushr/employee-manager-go/internal/pkg/validator"
)

// Draft is a candidate employee record as collected by the form, all fields
// still raw strings. It becomes an Employee only after ValidateDraft passes.
type Draft struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	DateOfBirth      string `json:"dateOfBirth"`
	DateOfEmployment string `json:"dateOfEmployment"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	Department       string `json:"department"`
	Position         string `json:"position"`
}

// Error codes attached to form fields. The front-end resolves them to
// localized messages; they are contract, not display text.
const (
	CodeFirstNameMin          = "firstNameMinError"
	CodeLastNameMin           = "lastNameMinError"
	CodeEmptyDateOfEmployment = "emptyDateOfEmployment"
	CodeEmptyDateOfBirth      = "dateOfBirth"
	CodePhone                 = "phone"
	CodeEmail                 = "email"
	CodeDuplicateEmail        = "duplicateEmail"
	CodeDuplicatePhone        = "duplicatePhone"
	CodeFutureBirthDate       = "futureBirthDate"
	CodeFutureEmploymentDate  = "futureEmploymentDate"
	CodeEmploymentBeforeBirth = "employmentBeforeBirth"
	CodeMustBe18              = "mustBe18"
	CodeDepartmentMin         = "departmentMinError"
	CodePositionNotSelected   = "positionNotSelectedError"
)

const minimumAge = 18

// IsEmailUnique reports whether no employee in the collection already uses
// the email (exact, case-sensitive match).
func IsEmailUnique(email string, employees []Employee) bool {
	for _, e := range employees {
		if e.Email == email {
			return false
		}
	}
	return true
}

// IsPhoneUnique reports whether no employee in the collection already uses
// the phone number (exact, case-sensitive match).
func IsPhoneUnique(phone string, employees []Employee) bool {
	for _, e := range employees {
		if e.Phone == phone {
			return false
		}
	}
	return true
}

func excluding(employees []Employee, excludeID string) []Employee {
	if excludeID == "" {
		return employees
	}
	out := make([]Employee, 0, len(employees))
	for _, e := range employees {
		if e.ID != excludeID {
			out = append(out, e)
		}
	}
	return out
}

// ValidateDraft runs every rule against the draft and returns nil or a
// validator.ValidationErrors with one entry per failed rule, field order
// first, cross-field date rules appended to their owning field. excludeID
// names the record being edited so it is not flagged as a duplicate of
// itself; pass "" when creating.
//
// Update validation always receives the fully merged draft, so a cross-field
// violation introduced by a sibling field can never slip past a stale
// incremental pass.
func ValidateDraft(draft Draft, existing []Employee, excludeID string) error {
	return validateDraftAt(draft, existing, excludeID, time.Now())
}

func validateDraftAt(draft Draft, existing []Employee, excludeID string, today time.Time) error {
	var errs validator.ValidationErrors

	if !validator.MinLength(draft.FirstName, 2) {
		errs = append(errs, validator.ValidationError{Field: "firstName", Code: CodeFirstNameMin})
	}
	if !validator.MinLength(draft.LastName, 2) {
		errs = append(errs, validator.ValidationError{Field: "lastName", Code: CodeLastNameMin})
	}

	var employmentDate, birthDate time.Time
	var employmentOK, birthOK bool
	if !validator.IsEmpty(draft.DateOfEmployment) {
		employmentDate, employmentOK = dateparse.Parse(draft.DateOfEmployment)
	}
	if !employmentOK {
		// Unparseable input is routed through the same code as an empty field.
		errs = append(errs, validator.ValidationError{Field: "dateOfEmployment", Code: CodeEmptyDateOfEmployment})
	}

	if !validator.IsEmpty(draft.DateOfBirth) {
		birthDate, birthOK = dateparse.Parse(draft.DateOfBirth)
	}
	if !birthOK {
		errs = append(errs, validator.ValidationError{Field: "dateOfBirth", Code: CodeEmptyDateOfBirth})
	}

	others := excluding(existing, excludeID)

	if !validator.IsValidPhone(draft.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Code: CodePhone})
	} else if !IsPhoneUnique(draft.Phone, others) {
		errs = append(errs, validator.ValidationError{Field: "phone", Code: CodeDuplicatePhone})
	}

	if !validator.IsValidEmail(draft.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Code: CodeEmail})
	} else if !IsEmailUnique(draft.Email, others) {
		errs = append(errs, validator.ValidationError{Field: "email", Code: CodeDuplicateEmail})
	}

	if !validator.MinLength(draft.Department, 2) {
		errs = append(errs, validator.ValidationError{Field: "department", Code: CodeDepartmentMin})
	}
	if !validator.MinLength(draft.Position, 2) {
		errs = append(errs, validator.ValidationError{Field: "position", Code: CodePositionNotSelected})
	}

	if birthOK {
		if validator.IsFuture(birthDate, today) {
			errs = append(errs, validator.ValidationError{Field: "dateOfBirth", Code: CodeFutureBirthDate})
		}
		if validator.AgeAt(birthDate, today) < minimumAge {
			errs = append(errs, validator.ValidationError{Field: "dateOfBirth", Code: CodeMustBe18})
		}
	}
	if employmentOK {
		if validator.IsFuture(employmentDate, today) {
			errs = append(errs, validator.ValidationError{Field: "dateOfEmployment", Code: CodeFutureEmploymentDate})
		}
		if birthOK && employmentDate.Before(birthDate) {
			errs = append(errs, validator.ValidationError{Field: "dateOfEmployment", Code: CodeEmploymentBeforeBirth})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEmployee converts a validated draft into an entity. Calling it with a
// draft that has not passed ValidateDraft is a programming error.
func (d Draft) ToEmployee(id string) Employee {
	birth, _ := dateparse.Parse(d.DateOfBirth)
	employment, _ := dateparse.Parse(d.DateOfEmployment)
	return Employee{
		ID:               id,
		FirstName:        d.FirstName,
		LastName:         d.LastName,
		DateOfBirth:      birth,
		DateOfEmployment: employment,
		Phone:            d.Phone,
		Email:            d.Email,
		Department:       d.Department,
		Position:         Position(d.Position),
	}
}
