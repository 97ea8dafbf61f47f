package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Create inserts a new record. A unique index on (employee_id, date)
	// backs the one-record-per-day invariant; violations map to
	// ErrDuplicateAttendance.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	// ListRange returns records with date between start and end inclusive,
	// employee names joined, ordered by date descending then employee name.
	ListRange(ctx context.Context, start, end time.Time) ([]Attendance, error)

	// ListByDate returns all records for a single date.
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)

	// ListRecentByEmployee returns the employee's latest records, newest first.
	ListRecentByEmployee(ctx context.Context, employeeID string, limit int) ([]Attendance, error)

	// ReplaceForDate upserts one record per entry for a single date inside
	// one transaction: an existing (employee, date) row is replaced, status
	// and created_at included. Returns the number of rows written.
	ReplaceForDate(ctx context.Context, date time.Time, entries []Attendance) (int, error)

	Delete(ctx context.Context, id string) error
}
