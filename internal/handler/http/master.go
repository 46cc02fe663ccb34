package http

import (
	"net/http"

	"github.com/nimbushr/employee-manager-go/internal/domain/employee"
	"github.com/nimbushr/employee-manager-go/internal/handler/http/response"
)

// MasterHandler serves the fixed reference data the form needs: the
// position options backing the dropdown.
type MasterHandler interface {
	ListPositions(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct{}

func NewMasterHandler() MasterHandler {
	return &masterHandlerImpl{}
}

// ListPositions returns the selectable position codes with their
// translation keys.
func (h *masterHandlerImpl) ListPositions(w http.ResponseWriter, r *http.Request) {
	response.Success(w, employee.PositionOptions())
}
