package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/paylane/payroll-backend-go/internal/domain/employee"
	"github.com/paylane/payroll-backend-go/internal/handler/http/response"
	"github.com/paylane/payroll-backend-go/internal/pkg/validator"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Options(w http.ResponseWriter, r *http.Request)
	OpenAllowance(w http.ResponseWriter, r *http.Request)
	OpenDeduction(w http.ResponseWriter, r *http.Request)
	EndAllowance(w http.ResponseWriter, r *http.Request)
	EndDeduction(w http.ResponseWriter, r *http.Request)
	ListAllowances(w http.ResponseWriter, r *http.Request)
	ListDeductions(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// Create implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := e.employeeService.CreateEmployee(r.Context(), createReq)
	if err != nil {
		slog.Error("Create employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", created)
}

// List implements EmployeeHandler.
func (e *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := parseEmployeeFilter(r)

	list, err := e.employeeService.ListEmployees(r.Context(), filter)
	if err != nil {
		slog.Error("List employees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, list.Data, response.NewMeta(list.Page, list.Limit, list.TotalCount))
}

// GetByID implements EmployeeHandler.
func (e *EmployeeHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	detail, err := e.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		slog.Error("Get employee service error", "error", err, "employee_id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, detail)
}

// Update implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq employee.UpdateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := e.employeeService.UpdateEmployee(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update employee service error", "error", err, "employee_id", updateReq.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", updated)
}

// Delete implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := e.employeeService.DeleteEmployee(r.Context(), id); err != nil {
		slog.Error("Delete employee service error", "error", err, "employee_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

// Options implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Options(w http.ResponseWriter, r *http.Request) {
	options, err := e.employeeService.GetOptions(r.Context())
	if err != nil {
		slog.Error("Employee options service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, options)
}

// OpenAllowance implements EmployeeHandler.
func (e *EmployeeHandlerImpl) OpenAllowance(w http.ResponseWriter, r *http.Request) {
	e.openPayRecord(w, r, employee.RecordKindAllowance)
}

// OpenDeduction implements EmployeeHandler.
func (e *EmployeeHandlerImpl) OpenDeduction(w http.ResponseWriter, r *http.Request) {
	e.openPayRecord(w, r, employee.RecordKindDeduction)
}

func (e *EmployeeHandlerImpl) openPayRecord(w http.ResponseWriter, r *http.Request, kind employee.RecordKind) {
	var openReq employee.OpenPayRecordRequest

	if err := json.NewDecoder(r.Body).Decode(&openReq); err != nil {
		slog.Error("Open pay record decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	openReq.EmployeeID = chi.URLParam(r, "id")
	openReq.Kind = kind

	created, err := e.employeeService.OpenPayRecord(r.Context(), openReq)
	if err != nil {
		slog.Error("Open pay record service error", "error", err, "employee_id", openReq.EmployeeID)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Record opened successfully", created)
}

// EndAllowance implements EmployeeHandler.
func (e *EmployeeHandlerImpl) EndAllowance(w http.ResponseWriter, r *http.Request) {
	e.endPayRecord(w, r)
}

// EndDeduction implements EmployeeHandler.
func (e *EmployeeHandlerImpl) EndDeduction(w http.ResponseWriter, r *http.Request) {
	e.endPayRecord(w, r)
}

func (e *EmployeeHandlerImpl) endPayRecord(w http.ResponseWriter, r *http.Request) {
	var closeReq employee.ClosePayRecordRequest

	// Body is optional; end_date defaults to today.
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&closeReq)
	}
	closeReq.EmployeeID = chi.URLParam(r, "id")
	closeReq.RecordID = chi.URLParam(r, "recordId")

	if err := e.employeeService.ClosePayRecord(r.Context(), closeReq); err != nil {
		slog.Error("Close pay record service error", "error", err, "record_id", closeReq.RecordID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Record closed successfully", nil)
}

// ListAllowances implements EmployeeHandler.
func (e *EmployeeHandlerImpl) ListAllowances(w http.ResponseWriter, r *http.Request) {
	e.listPayRecords(w, r, employee.RecordKindAllowance)
}

// ListDeductions implements EmployeeHandler.
func (e *EmployeeHandlerImpl) ListDeductions(w http.ResponseWriter, r *http.Request) {
	e.listPayRecords(w, r, employee.RecordKindDeduction)
}

func (e *EmployeeHandlerImpl) listPayRecords(w http.ResponseWriter, r *http.Request, kind employee.RecordKind) {
	employeeID := chi.URLParam(r, "id")
	activeOnly := r.URL.Query().Get("active") == "true"

	records, err := e.employeeService.ListPayRecords(r.Context(), employeeID, kind, activeOnly)
	if err != nil {
		slog.Error("List pay records service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

func parseEmployeeFilter(r *http.Request) employee.EmployeeFilter {
	query := r.URL.Query()

	filter := employee.EmployeeFilter{
		Search:    query.Get("search"),
		SortBy:    query.Get("sort_by"),
		SortOrder: query.Get("sort_order"),
		Page:      1,
		Limit:     20,
	}

	if page, err := strconv.Atoi(query.Get("page")); err == nil && page > 0 {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(query.Get("limit")); err == nil && limit > 0 && limit <= 100 {
		filter.Limit = limit
	}
	if dept := query.Get("department"); dept != "" {
		filter.Department = &dept
	}
	if et := query.Get("employment_type"); et != "" {
		filter.EmploymentType = &et
	}
	if from := query.Get("hire_date_from"); from != "" {
		if parsed, ok := validator.IsValidDate(from); ok {
			filter.HireDateFrom = &parsed
		}
	}
	if to := query.Get("hire_date_to"); to != "" {
		if parsed, ok := validator.IsValidDate(to); ok {
			filter.HireDateTo = &parsed
		}
	}

	return filter
}
