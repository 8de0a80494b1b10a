package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/facehr/facehr-backend-go/internal/domain/payroll"
	"github.com/facehr/facehr-backend-go/internal/handler/http/response"
	"github.com/facehr/facehr-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	// Salary structures
	GetStructure(w http.ResponseWriter, r *http.Request)
	UpsertStructure(w http.ResponseWriter, r *http.Request)

	// Generation
	GeneratePayroll(w http.ResponseWriter, r *http.Request)
	GenerateEmployeePayroll(w http.ResponseWriter, r *http.Request)
	PreviewEmployeePayroll(w http.ResponseWriter, r *http.Request)
	PreviewDemo(w http.ResponseWriter, r *http.Request)

	// Ledger
	ListPayrollRecords(w http.ResponseWriter, r *http.Request)
	GetEmployeePayrollRecord(w http.ResponseWriter, r *http.Request)
	GetPayrollSummary(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ========== SALARY STRUCTURES ==========

func (h *payrollHandlerImpl) GetStructure(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if !validator.IsValidUUID(employeeID) {
		response.BadRequest(w, "Employee ID must be a valid UUID", nil)
		return
	}

	result, err := h.payrollService.GetStructure(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) UpsertStructure(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if !validator.IsValidUUID(employeeID) {
		response.BadRequest(w, "Employee ID must be a valid UUID", nil)
		return
	}

	var req payroll.UpsertSalaryStructureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.UpsertStructure(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary structure saved", result)
}

// ========== GENERATION ==========

func (h *payrollHandlerImpl) GeneratePayroll(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.GenerateAll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll generated", result)
}

func (h *payrollHandlerImpl) GenerateEmployeePayroll(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if !validator.IsValidUUID(employeeID) {
		response.BadRequest(w, "Employee ID must be a valid UUID", nil)
		return
	}

	var req payroll.GeneratePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.GenerateOne(r.Context(), employeeID, req.Month, req.Year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll generated", result)
}

func (h *payrollHandlerImpl) PreviewEmployeePayroll(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if !validator.IsValidUUID(employeeID) {
		response.BadRequest(w, "Employee ID must be a valid UUID", nil)
		return
	}

	var req payroll.GeneratePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.Preview(r.Context(), employeeID, req.Month, req.Year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) PreviewDemo(w http.ResponseWriter, r *http.Request) {
	var req payroll.PreviewDemoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.PreviewDemo(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== LEDGER ==========

func (h *payrollHandlerImpl) ListPayrollRecords(w http.ResponseWriter, r *http.Request) {
	month, year, ok := periodFromQuery(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.ListRecords(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetEmployeePayrollRecord(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if !validator.IsValidUUID(employeeID) {
		response.BadRequest(w, "Employee ID must be a valid UUID", nil)
		return
	}

	month, year, ok := periodFromQuery(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.GetRecord(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetPayrollSummary(w http.ResponseWriter, r *http.Request) {
	month, year, ok := periodFromQuery(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.PeriodSummary(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// periodFromQuery parses the required month and year query params, writing the
// error response itself when they are missing or out of range.
func periodFromQuery(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	monthStr := r.URL.Query().Get("month")
	yearStr := r.URL.Query().Get("year")

	if monthStr == "" || yearStr == "" {
		response.BadRequest(w, "month and year are required", nil)
		return 0, 0, false
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		response.BadRequest(w, "Invalid month", nil)
		return 0, 0, false
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		response.BadRequest(w, "Invalid year", nil)
		return 0, 0, false
	}

	return month, year, true
}
