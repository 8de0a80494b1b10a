package http

import (
	"net/http"

	"github.com/facehr/facehr-backend-go/internal/domain/attendance"
	"github.com/facehr/facehr-backend-go/internal/handler/http/response"
	"github.com/facehr/facehr-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	ListLogs(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *attendanceHandlerImpl) ListLogs(w http.ResponseWriter, r *http.Request) {
	month, year, ok := periodFromQuery(w, r)
	if !ok {
		return
	}

	employeeID := r.URL.Query().Get("employee_id")
	if !validator.IsEmpty(employeeID) && !validator.IsValidUUID(employeeID) {
		response.BadRequest(w, "employee_id must be a valid UUID", nil)
		return
	}

	query := attendance.PeriodQuery{
		Month:      month,
		Year:       year,
		EmployeeID: employeeID,
	}

	result, err := h.attendanceService.ListLogs(r.Context(), query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
