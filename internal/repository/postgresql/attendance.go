package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffsync/staffsync-backend-go/internal/domain/attendance"
	"github.com/staffsync/staffsync-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (employee_id, date, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, att.EmployeeID, att.Date, att.Status).Scan(&att.ID, &att.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrDuplicateAttendance
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.created_at,
			   e.first_name || ' ' || e.last_name AS employee_name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.Status, &att.CreatedAt,
		&att.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by ID: %w", err)
	}

	return att, nil
}

// ListRange implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListRange(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.created_at,
			   e.first_name || ' ' || e.last_name AS employee_name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date >= $1 AND a.date <= $2
		ORDER BY a.date DESC, e.first_name, e.last_name
	`

	return r.queryAttendances(ctx, q, query, start, end)
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.created_at,
			   e.first_name || ' ' || e.last_name AS employee_name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date = $1
		ORDER BY e.first_name, e.last_name
	`

	return r.queryAttendances(ctx, q, query, date)
}

// ListRecentByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListRecentByEmployee(ctx context.Context, employeeID string, limit int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.created_at,
			   e.first_name || ' ' || e.last_name AS employee_name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1
		ORDER BY a.date DESC
		LIMIT $2
	`

	return r.queryAttendances(ctx, q, query, employeeID, limit)
}

func (r *attendanceRepository) queryAttendances(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]attendance.Attendance, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(&att.ID, &att.EmployeeID, &att.Date, &att.Status, &att.CreatedAt, &att.EmployeeName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	return attendances, rows.Err()
}

// ReplaceForDate implements attendance.AttendanceRepository. Each entry is a
// single upsert on (employee_id, date), all inside one transaction, so a
// concurrent bulk mark on the same date serializes on the unique index
// instead of losing rows.
func (r *attendanceRepository) ReplaceForDate(ctx context.Context, date time.Time, entries []attendance.Attendance) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	// The generated id only lands on fresh rows; an existing (employee, date)
	// row keeps its id and takes the new status.
	query := `
		INSERT INTO attendances (id, employee_id, date, status, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (employee_id, date)
		DO UPDATE SET status = EXCLUDED.status, created_at = NOW()
	`

	saved := 0
	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)
		for _, entry := range entries {
			if _, err := q.Exec(txCtx, query, uuid.New().String(), entry.EmployeeID, date, entry.Status); err != nil {
				return fmt.Errorf("failed to upsert attendance for employee %s: %w", entry.EmployeeID, err)
			}
			saved++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return saved, nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM attendances WHERE id = $1`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}
