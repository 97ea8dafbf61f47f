package dashboard

import (
	"context"
	"time"
)

// DailyCount is a per-date aggregate of attendance records.
type DailyCount struct {
	Date    time.Time
	Total   int64
	Present int64
	Absent  int64
}

// DashboardRepository defines the aggregate queries behind the dashboard.
type DashboardRepository interface {
	CountEmployees(ctx context.Context) (int64, error)

	// GetDailyCounts returns per-date totals for dates between start and end
	// inclusive, grouped in SQL; dates with no records are absent from the
	// result.
	GetDailyCounts(ctx context.Context, start, end time.Time) ([]DailyCount, error)

	// CountAttendanceSince counts records with date >= since.
	CountAttendanceSince(ctx context.Context, since time.Time) (int64, error)

	// GetDepartmentStats returns per-department employee counts and how many
	// were present on the given date, ordered by department name.
	GetDepartmentStats(ctx context.Context, date time.Time) ([]DepartmentStats, error)
}
