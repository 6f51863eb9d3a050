package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/paylane/payroll-backend-go/internal/domain/payslip"
	"github.com/paylane/payroll-backend-go/internal/handler/http/response"
	"github.com/paylane/payroll-backend-go/internal/pkg/validator"
)

const (
	defaultMonthWindow = 6
	maxMonthWindow     = 24
)

type AnalyticsHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
	Departments(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type AnalyticsHandlerImpl struct {
	payslipService payslip.PayslipService
}

func NewAnalyticsHandler(payslipService payslip.PayslipService) AnalyticsHandler {
	return &AnalyticsHandlerImpl{payslipService: payslipService}
}

// Monthly implements AnalyticsHandler.
func (a *AnalyticsHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	window := defaultMonthWindow
	if raw := r.URL.Query().Get("window"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxMonthWindow {
			response.BadRequest(w, "window must be an integer between 1 and 24", nil)
			return
		}
		window = parsed
	}

	totals, err := a.payslipService.MonthlyTotals(r.Context(), window)
	if err != nil {
		slog.Error("Monthly totals service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, totals)
}

// Departments implements AnalyticsHandler.
func (a *AnalyticsHandlerImpl) Departments(w http.ResponseWriter, r *http.Request) {
	period, ok := a.periodParam(w, r)
	if !ok {
		return
	}

	totals, err := a.payslipService.DepartmentTotals(r.Context(), period)
	if err != nil {
		slog.Error("Department totals service error", "error", err, "period", period)
		response.HandleError(w, err)
		return
	}

	response.Success(w, totals)
}

// Summary implements AnalyticsHandler.
func (a *AnalyticsHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	period, ok := a.periodParam(w, r)
	if !ok {
		return
	}

	summary, err := a.payslipService.Summary(r.Context(), period)
	if err != nil {
		slog.Error("Period summary service error", "error", err, "period", period)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// periodParam reads and validates the period query parameter, defaulting to
// the current month.
func (a *AnalyticsHandlerImpl) periodParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	period := r.URL.Query().Get("period")
	if period == "" {
		return validator.FormatPeriod(time.Now().UTC()), true
	}
	if _, err := validator.ParsePeriod(period); err != nil {
		response.BadRequest(w, "period must use YYYY-MM format", nil)
		return "", false
	}
	return period, true
}
