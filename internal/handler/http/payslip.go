package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/paylane/payroll-backend-go/internal/domain/payslip"
	"github.com/paylane/payroll-backend-go/internal/handler/http/response"
)

type PayslipHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	View(w http.ResponseWriter, r *http.Request)
}

type PayslipHandlerImpl struct {
	payslipService payslip.PayslipService
}

func NewPayslipHandler(payslipService payslip.PayslipService) PayslipHandler {
	return &PayslipHandlerImpl{payslipService: payslipService}
}

// Generate implements PayslipHandler.
func (p *PayslipHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var generateReq payslip.GeneratePayslipRequest

	// Body is optional; everything defaults.
	if err := json.NewDecoder(r.Body).Decode(&generateReq); err != nil && err != io.EOF {
		slog.Error("Generate payslip decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	generateReq.EmployeeID = chi.URLParam(r, "employeeId")

	created, err := p.payslipService.GeneratePayslip(r.Context(), generateReq)
	if err != nil {
		slog.Error("Generate payslip service error", "error", err, "employee_id", generateReq.EmployeeID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payslip generated", "payslip_id", created.ID, "employee_id", created.EmployeeID, "period", created.Period)
	response.Created(w, "Payslip generated successfully", created)
}

// List implements PayslipHandler.
func (p *PayslipHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := payslip.PayslipFilter{Page: 1, Limit: 20}
	if page, err := strconv.Atoi(query.Get("page")); err == nil && page > 0 {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(query.Get("limit")); err == nil && limit > 0 && limit <= 100 {
		filter.Limit = limit
	}
	if employeeID := query.Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if period := query.Get("period"); period != "" {
		filter.Period = &period
	}

	list, err := p.payslipService.ListPayslips(r.Context(), filter)
	if err != nil {
		slog.Error("List payslips service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, list.Data, response.NewMeta(list.Page, list.Limit, list.TotalCount))
}

// GetByID implements PayslipHandler.
func (p *PayslipHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := p.payslipService.GetPayslip(r.Context(), id)
	if err != nil {
		slog.Error("Get payslip service error", "error", err, "payslip_id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// View implements PayslipHandler.
func (p *PayslipHandlerImpl) View(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	view, err := p.payslipService.GetPayslipView(r.Context(), id)
	if err != nil {
		slog.Error("Payslip view service error", "error", err, "payslip_id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, view)
}
