package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nimbushr/employee-manager-go/internal/domain/employee"
	"github.com/nimbushr/employee-manager-go/internal/pkg/sse"
	"github.com/nimbushr/employee-manager-go/internal/repository/memory"
	employeeService "github.com/nimbushr/employee-manager-go/internal/service/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string              `json:"code"`
		Message string              `json:"message"`
		Details map[string][]string `json:"details"`
	} `json:"error"`
	Meta *struct {
		Page          int  `json:"page"`
		Limit         int  `json:"limit"`
		TotalItems    int  `json:"total_items"`
		TotalPages    int  `json:"total_pages"`
		PageCorrected bool `json:"page_corrected"`
	} `json:"meta"`
}

func newTestServer(t *testing.T, initial []employee.Employee) (*httptest.Server, *memory.EmployeeStore) {
	t.Helper()
	store := memory.NewEmployeeStore(initial)
	svc := employeeService.NewEmployeeService(store)

	router := NewRouter(RouterConfig{
		AllowedOrigins: []string{"*"},
		Env:            "test",
	}, NewEmployeeHandler(svc), NewMasterHandler(), NewEventsHandler(sse.NewHub()))

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, store
}

func doJSON(t *testing.T, method, url string, body interface{}) (*http.Response, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func employeePayload(email, phone string) map[string]string {
	return map[string]string{
		"firstName":        "Ada",
		"lastName":         "Lovelace",
		"dateOfBirth":      "1990-12-10",
		"dateOfEmployment": "2020-01-06",
		"phone":            phone,
		"email":            email,
		"department":       "Analytics",
		"position":         "senior",
	}
}

func createEmployee(t *testing.T, server *httptest.Server, email, phone string) employee.EmployeeResponse {
	t.Helper()
	resp, env := doJSON(t, http.MethodPost, server.URL+"/api/v1/employees", employeePayload(email, phone))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created employee.EmployeeResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	return created
}

func TestCreateEmployeeEndpoint(t *testing.T) {
	server, store := newTestServer(t, nil)

	created := createEmployee(t, server, "ada@corp.com", "+(90) 532 123 45 67")

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "ada@corp.com", created.Email)
	assert.Equal(t, 1, store.Count())
}

func TestCreateEmployeeValidationFailure(t *testing.T) {
	server, store := newTestServer(t, nil)

	payload := employeePayload("ada@corp.com", "+(90) 532 123 45 67")
	payload["dateOfBirth"] = "2999-01-01"

	resp, env := doJSON(t, http.MethodPost, server.URL+"/api/v1/employees", payload)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Details["dateOfBirth"], employee.CodeFutureBirthDate)
	assert.Zero(t, store.Count())
}

func TestCreateEmployeeMalformedBody(t *testing.T) {
	server, _ := newTestServer(t, nil)

	resp, err := http.Post(server.URL+"/api/v1/employees", "application/json", bytes.NewBufferString("{not json"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetEmployeeEndpoint(t *testing.T) {
	server, _ := newTestServer(t, nil)
	created := createEmployee(t, server, "ada@corp.com", "+(90) 532 123 45 67")

	resp, env := doJSON(t, http.MethodGet, server.URL+"/api/v1/employees/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got employee.EmployeeResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, created, got)
}

func TestGetEmployeeNotFound(t *testing.T) {
	server, _ := newTestServer(t, nil)

	resp, env := doJSON(t, http.MethodGet, server.URL+"/api/v1/employees/missing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestUpdateEmployeeEndpoint(t *testing.T) {
	server, _ := newTestServer(t, nil)
	created := createEmployee(t, server, "ada@corp.com", "+(90) 532 123 45 67")

	resp, env := doJSON(t, http.MethodPut, server.URL+"/api/v1/employees/"+created.ID, map[string]string{
		"department": "Research",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated employee.EmployeeResponse
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Research", updated.Department)
	assert.Equal(t, created.Email, updated.Email)
}

func TestUpdateEmployeeDuplicateEmail(t *testing.T) {
	server, _ := newTestServer(t, nil)
	createEmployee(t, server, "ada@corp.com", "+(90) 532 123 45 67")
	other := createEmployee(t, server, "grace@corp.com", "+(90) 532 765 43 21")

	resp, env := doJSON(t, http.MethodPut, server.URL+"/api/v1/employees/"+other.ID, map[string]string{
		"email": "ada@corp.com",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Details["email"], employee.CodeDuplicateEmail)
}

func TestDeleteEmployeeEndpoint(t *testing.T) {
	server, store := newTestServer(t, nil)
	created := createEmployee(t, server, "ada@corp.com", "+(90) 532 123 45 67")

	resp, _ := doJSON(t, http.MethodDelete, server.URL+"/api/v1/employees/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, store.Count())

	resp, _ = doJSON(t, http.MethodDelete, server.URL+"/api/v1/employees/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBulkDeleteEndpoint(t *testing.T) {
	server, store := newTestServer(t, nil)
	a := createEmployee(t, server, "a@corp.com", "+(90) 532 000 00 11")
	b := createEmployee(t, server, "b@corp.com", "+(90) 532 000 00 22")
	createEmployee(t, server, "c@corp.com", "+(90) 532 000 00 33")

	resp, env := doJSON(t, http.MethodPost, server.URL+"/api/v1/employees/bulk-delete", map[string][]string{
		"ids": {a.ID, b.ID, "missing"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result map[string]int
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 2, result["deleted"])
	assert.Equal(t, 1, store.Count())
}

func TestBulkDeleteEmptyIDs(t *testing.T) {
	server, _ := newTestServer(t, nil)

	resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/v1/employees/bulk-delete", map[string][]string{"ids": {}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListEmployeesMeta(t *testing.T) {
	server, _ := newTestServer(t, nil)
	createEmployee(t, server, "a@corp.com", "+(90) 532 000 00 11")
	createEmployee(t, server, "b@corp.com", "+(90) 532 000 00 22")
	createEmployee(t, server, "c@corp.com", "+(90) 532 000 00 33")
	createEmployee(t, server, "d@corp.com", "+(90) 532 000 00 44")
	createEmployee(t, server, "e@corp.com", "+(90) 532 000 00 55")

	resp, env := doJSON(t, http.MethodGet, server.URL+"/api/v1/employees?view=card-list&page=2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NotNil(t, env.Meta)
	assert.Equal(t, 2, env.Meta.Page)
	assert.Equal(t, 4, env.Meta.Limit)
	assert.Equal(t, 5, env.Meta.TotalItems)
	assert.Equal(t, 2, env.Meta.TotalPages)
	assert.False(t, env.Meta.PageCorrected)

	var items []employee.EmployeeResponse
	require.NoError(t, json.Unmarshal(env.Data, &items))
	assert.Len(t, items, 1)
}

func TestListEmployeesPageCorrection(t *testing.T) {
	server, _ := newTestServer(t, nil)
	createEmployee(t, server, "a@corp.com", "+(90) 532 000 00 11")

	_, env := doJSON(t, http.MethodGet, server.URL+"/api/v1/employees?page=7", nil)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 1, env.Meta.Page)
	assert.True(t, env.Meta.PageCorrected)
}

func TestListEmployeesSearch(t *testing.T) {
	server, _ := newTestServer(t, nil)
	createEmployee(t, server, "ada@corp.com", "+(90) 532 000 00 11")
	createEmployee(t, server, "grace@corp.com", "+(90) 532 000 00 22")

	_, env := doJSON(t, http.MethodGet, server.URL+"/api/v1/employees?q=GRACE", nil)

	var items []employee.EmployeeResponse
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "grace@corp.com", items[0].Email)
}

func TestListEmployeesUnknownViewMode(t *testing.T) {
	server, _ := newTestServer(t, nil)

	resp, _ := doJSON(t, http.MethodGet, server.URL+"/api/v1/employees?view=grid", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestValidateDraftEndpoint(t *testing.T) {
	server, _ := newTestServer(t, nil)
	created := createEmployee(t, server, "ada@corp.com", "+(90) 532 123 45 67")

	// Same email as the stored record: duplicate without exclusion.
	payload := employeePayload("ada@corp.com", "+(90) 532 765 43 21")
	resp, env := doJSON(t, http.MethodPost, server.URL+"/api/v1/employees/validate", payload)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Details["email"], employee.CodeDuplicateEmail)

	// Excluding the record being edited clears it.
	withExclude := map[string]string{}
	for k, v := range payload {
		withExclude[k] = v
	}
	withExclude["excludeId"] = created.ID

	resp, env = doJSON(t, http.MethodPost, server.URL+"/api/v1/employees/validate", withExclude)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result map[string]bool
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.True(t, result["valid"])
}

func TestListPositionsEndpoint(t *testing.T) {
	server, _ := newTestServer(t, nil)

	resp, env := doJSON(t, http.MethodGet, server.URL+"/api/v1/positions", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var options []employee.PositionOption
	require.NoError(t, json.Unmarshal(env.Data, &options))
	require.Len(t, options, 3)
	assert.Equal(t, "junior", options[0].Value)
	assert.Equal(t, "employee.positions.junior", options[0].LabelKey)
}
