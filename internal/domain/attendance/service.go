package attendance

import "context"

type AttendanceService interface {
	// ListView resolves the requested range (preset or explicit bounds,
	// falling back to current-month-to-date) and assembles the attendance
	// matrix, daily stats and month calendars.
	ListView(ctx context.Context, q ListQuery) (ListViewResponse, error)

	// Create adds a single record, rejecting future dates, non-working days
	// and duplicates.
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)

	Delete(ctx context.Context, id string) error

	// BulkMark replaces attendance for every employee in the request on one
	// date. The non-working check runs once, before any row is touched.
	BulkMark(ctx context.Context, req BulkMarkRequest) (BulkMarkResponse, error)

	// MarkPage returns the data behind the bulk mark form for a date.
	MarkPage(ctx context.Context, date string) (MarkPageResponse, error)

	// Calendar returns six consecutive month grids centered on the
	// requested month, with holidays resolved onto concrete dates.
	Calendar(ctx context.Context, q CalendarQuery) (CalendarResponse, error)
}
