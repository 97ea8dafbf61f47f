package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")

	// ErrNonWorkingDay rejects mutations on weekends and holidays. Callers
	// wrap it with the weekday or holiday name so the rejection reason
	// reaches the user.
	ErrNonWorkingDay = errors.New("attendance cannot be marked on a non-working day")

	// ErrDuplicateAttendance surfaces the (employee, date) uniqueness
	// violation outside the bulk-replace path.
	ErrDuplicateAttendance = errors.New("attendance for this employee on this date already exists")

	ErrFutureDate = errors.New("attendance date cannot be in the future")

	// ErrNoStatusesSubmitted distinguishes an empty bulk submission from a
	// successful one.
	ErrNoStatusesSubmitted = errors.New("no attendance records were saved: select at least one employee")
)
