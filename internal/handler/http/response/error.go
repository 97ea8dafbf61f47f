package response

import (
	"errors"
	"net/http"

	"github.com/staffsync/staffsync-backend-go/internal/domain/attendance"
	"github.com/staffsync/staffsync-backend-go/internal/domain/department"
	"github.com/staffsync/staffsync-backend-go/internal/domain/employee"
	"github.com/staffsync/staffsync-backend-go/internal/domain/holiday"
	"github.com/staffsync/staffsync-backend-go/internal/pkg/daterange"
	"github.com/staffsync/staffsync-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Not found
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Conflicts
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "An employee with this email already exists")
	case errors.Is(err, attendance.ErrDuplicateAttendance):
		Conflict(w, "Attendance for this employee on this date already exists")
	case errors.Is(err, holiday.ErrHolidayDateExists):
		Conflict(w, "A holiday already exists on this date")

	// Rejected input; err.Error() carries the reason, including the
	// weekday or holiday name wrapped onto ErrNonWorkingDay.
	case errors.Is(err, attendance.ErrNonWorkingDay),
		errors.Is(err, attendance.ErrFutureDate),
		errors.Is(err, attendance.ErrNoStatusesSubmitted),
		errors.Is(err, employee.ErrFutureHireDate),
		errors.Is(err, daterange.ErrInvalidRange),
		errors.Is(err, daterange.ErrFutureEndDate),
		errors.Is(err, daterange.ErrRangeTooLarge):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
