package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/staffsync/staffsync-backend-go/internal/domain/dashboard"
	"github.com/staffsync/staffsync-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

// CountEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return count, nil
}

// GetDailyCounts implements dashboard.DashboardRepository.
func (r *dashboardRepository) GetDailyCounts(ctx context.Context, start, end time.Time) ([]dashboard.DailyCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date,
			   COUNT(*) AS total,
			   COUNT(*) FILTER (WHERE status = 'present') AS present,
			   COUNT(*) FILTER (WHERE status = 'absent') AS absent
		FROM attendances
		WHERE date >= $1 AND date <= $2
		GROUP BY date
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily counts: %w", err)
	}
	defer rows.Close()

	var counts []dashboard.DailyCount
	for rows.Next() {
		var c dashboard.DailyCount
		if err := rows.Scan(&c.Date, &c.Total, &c.Present, &c.Absent); err != nil {
			return nil, fmt.Errorf("failed to scan daily count: %w", err)
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

// CountAttendanceSince implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountAttendanceSince(ctx context.Context, since time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendances WHERE date >= $1`, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent attendance: %w", err)
	}

	return count, nil
}

// GetDepartmentStats implements dashboard.DashboardRepository.
func (r *dashboardRepository) GetDepartmentStats(ctx context.Context, date time.Time) ([]dashboard.DepartmentStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.name,
			   COUNT(DISTINCT e.id) AS employee_count,
			   COUNT(a.id) FILTER (WHERE a.status = 'present') AS today_present
		FROM departments d
		LEFT JOIN employees e ON e.department_id = d.id
		LEFT JOIN attendances a ON a.employee_id = e.id AND a.date = $1
		GROUP BY d.id, d.name
		ORDER BY d.name
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query department stats: %w", err)
	}
	defer rows.Close()

	var stats []dashboard.DepartmentStats
	for rows.Next() {
		var s dashboard.DepartmentStats
		if err := rows.Scan(&s.Name, &s.EmployeeCount, &s.TodayPresent); err != nil {
			return nil, fmt.Errorf("failed to scan department stats: %w", err)
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}
