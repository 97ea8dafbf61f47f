package employee

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/staffsync/staffsync-backend-go/internal/domain/attendance"
	"github.com/staffsync/staffsync-backend-go/internal/domain/employee"
	"github.com/staffsync/staffsync-backend-go/internal/pkg/daterange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	nextID    int
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.nextID++
	emp.ID = fmt.Sprintf("emp-%d", f.nextID)
	emp.CreatedAt = time.Now()
	emp.UpdatedAt = emp.CreatedAt
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0, len(f.employees))
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FirstName < out[j].FirstName })
	return out, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) error {
	if _, ok := f.employees[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	delete(f.employees, id)
	return nil
}

func (f *fakeEmployeeRepo) ExistsByEmail(_ context.Context, email, excludeID string) (bool, error) {
	for _, emp := range f.employees {
		if emp.Email == email && emp.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type fakeAttendanceRepo struct {
	records []attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	f.records = append(f.records, att)
	return att, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, _ string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) ListRange(_ context.Context, _, _ time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByDate(_ context.Context, _ time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListRecentByEmployee(_ context.Context, employeeID string, limit int) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ReplaceForDate(_ context.Context, _ time.Time, entries []attendance.Attendance) (int, error) {
	return len(entries), nil
}

func (f *fakeAttendanceRepo) Delete(_ context.Context, _ string) error { return nil }

func newTestService(today string) (*employeeServiceImpl, *fakeEmployeeRepo, *fakeAttendanceRepo) {
	empRepo := newFakeEmployeeRepo()
	attRepo := &fakeAttendanceRepo{}
	anchor, err := daterange.ParseDate(today)
	if err != nil {
		panic(err)
	}
	svc := &employeeServiceImpl{
		employeeRepo:   empRepo,
		attendanceRepo: attRepo,
		loc:            time.UTC,
		now:            func() time.Time { return anchor },
	}
	return svc, empRepo, attRepo
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FirstName:   "Alice",
		LastName:    "Anders",
		Email:       "alice@example.com",
		PhoneNumber: "+1 555 867 5309",
		HireDate:    "2024-01-15",
	}
}

func TestCreateEmployee(t *testing.T) {
	svc, _, _ := newTestService("2024-02-15")

	result, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "Alice Anders", result.FullName)
	assert.Equal(t, "2024-01-15", result.HireDate)
}

func TestCreateEmployeeRejectsFutureHireDate(t *testing.T) {
	svc, _, _ := newTestService("2024-02-15")

	req := validCreateRequest()
	req.HireDate = "2024-02-16"
	_, err := svc.Create(context.Background(), req)
	require.ErrorIs(t, err, employee.ErrFutureHireDate)

	// Hired today is fine.
	req.HireDate = "2024-02-15"
	_, err = svc.Create(context.Background(), req)
	require.NoError(t, err)
}

func TestCreateEmployeeRejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService("2024-02-15")
	ctx := context.Background()

	_, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	dup := validCreateRequest()
	dup.FirstName = "Alicia"
	_, err = svc.Create(ctx, dup)
	require.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestUpdateEmployeeKeepingOwnEmail(t *testing.T) {
	svc, _, _ := newTestService("2024-02-15")
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	// Re-submitting the employee's own email is not a conflict.
	updated, err := svc.Update(ctx, created.ID, employee.UpdateEmployeeRequest{
		FirstName:   "Alice",
		LastName:    "Archer",
		Email:       "alice@example.com",
		PhoneNumber: "+1 555 867 5309",
		HireDate:    "2024-01-15",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Archer", updated.FullName)
}

func TestGetEmployeeIncludesRecentAttendance(t *testing.T) {
	svc, _, attRepo := newTestService("2024-02-15")
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	// Twelve records; only the ten most recent come back.
	for i := 0; i < 12; i++ {
		d, _ := daterange.ParseDate("2024-02-01")
		_, err := attRepo.Create(ctx, attendance.Attendance{
			ID:         fmt.Sprintf("att-%d", i),
			EmployeeID: created.ID,
			Date:       d.AddDate(0, 0, i),
			Status:     attendance.StatusPresent,
		})
		require.NoError(t, err)
	}

	detail, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, detail.RecentAttendances, 10)
	assert.Equal(t, "2024-02-12", detail.RecentAttendances[0].Date)
}

func TestGetEmployeeNotFound(t *testing.T) {
	svc, _, _ := newTestService("2024-02-15")

	_, err := svc.Get(context.Background(), "missing")
	require.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestValidationErrorsSurfaceFieldMap(t *testing.T) {
	svc, _, _ := newTestService("2024-02-15")

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		FirstName: "Alice",
		Email:     "not-an-email",
		HireDate:  "15-01-2024",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")
	assert.Contains(t, err.Error(), "last_name")
	assert.Contains(t, err.Error(), "hire_date")
}
