package attendance

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/staffsync/staffsync-backend-go/internal/domain/attendance"
	"github.com/staffsync/staffsync-backend-go/internal/domain/employee"
	"github.com/staffsync/staffsync-backend-go/internal/domain/holiday"
	"github.com/staffsync/staffsync-backend-go/internal/pkg/daterange"
	"github.com/staffsync/staffsync-backend-go/internal/service/workday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== FAKES =====

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, emp)
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, len(f.employees))
	copy(out, f.employees)
	return out, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, _ employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) Delete(_ context.Context, _ string) error            { return nil }

func (f *fakeEmployeeRepo) ExistsByEmail(_ context.Context, email, excludeID string) (bool, error) {
	for _, e := range f.employees {
		if e.Email == email && e.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type fakeHolidayRepo struct {
	holidays []holiday.Holiday
}

func (f *fakeHolidayRepo) Create(_ context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	f.holidays = append(f.holidays, h)
	return h, nil
}

func (f *fakeHolidayRepo) GetByID(_ context.Context, id string) (holiday.Holiday, error) {
	for _, h := range f.holidays {
		if h.ID == id {
			return h, nil
		}
	}
	return holiday.Holiday{}, holiday.ErrHolidayNotFound
}

func (f *fakeHolidayRepo) List(_ context.Context) ([]holiday.Holiday, error) {
	out := make([]holiday.Holiday, len(f.holidays))
	copy(out, f.holidays)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeHolidayRepo) Update(_ context.Context, _ holiday.Holiday) error { return nil }
func (f *fakeHolidayRepo) Delete(_ context.Context, _ string) error          { return nil }

func (f *fakeHolidayRepo) FindMatching(ctx context.Context, date time.Time) (*holiday.Holiday, error) {
	sorted, _ := f.List(ctx)
	var recurring *holiday.Holiday
	for i := range sorted {
		h := sorted[i]
		if !h.Matches(date) {
			continue
		}
		if !h.IsRecurring {
			return &h, nil
		}
		if recurring == nil {
			recurring = &h
		}
	}
	return recurring, nil
}

type fakeAttendanceRepo struct {
	nextID  int
	records map[string]attendance.Attendance // employee id + date -> record
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (f *fakeAttendanceRepo) key(employeeID string, date time.Time) string {
	return employeeID + "|" + daterange.Format(date)
}

func (f *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	k := f.key(att.EmployeeID, att.Date)
	if _, exists := f.records[k]; exists {
		return attendance.Attendance{}, attendance.ErrDuplicateAttendance
	}
	f.nextID++
	att.ID = fmt.Sprintf("att-%d", f.nextID)
	att.CreatedAt = time.Now()
	f.records[k] = att
	return att, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	for _, rec := range f.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) all() []attendance.Attendance {
	out := make([]attendance.Attendance, 0, len(f.records))
	for _, rec := range f.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeAttendanceRepo) ListRange(_ context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range f.all() {
		if !rec.Date.Before(start) && !rec.Date.After(end) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByDate(_ context.Context, date time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range f.all() {
		if rec.Date.Equal(date) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListRecentByEmployee(_ context.Context, employeeID string, limit int) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range f.all() {
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

func (f *fakeAttendanceRepo) ReplaceForDate(_ context.Context, date time.Time, entries []attendance.Attendance) (int, error) {
	saved := 0
	for _, entry := range entries {
		k := f.key(entry.EmployeeID, date)
		if existing, ok := f.records[k]; ok {
			existing.Status = entry.Status
			f.records[k] = existing
		} else {
			f.nextID++
			entry.ID = fmt.Sprintf("att-%d", f.nextID)
			entry.Date = date
			f.records[k] = entry
		}
		saved++
	}
	return saved, nil
}

func (f *fakeAttendanceRepo) Delete(_ context.Context, id string) error {
	for k, rec := range f.records {
		if rec.ID == id {
			delete(f.records, k)
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

// ===== HELPERS =====

func date(s string) time.Time {
	d, err := daterange.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newTestService(today time.Time, employees []employee.Employee, holidays []holiday.Holiday) (*attendanceServiceImpl, *fakeAttendanceRepo) {
	attRepo := newFakeAttendanceRepo()
	holRepo := &fakeHolidayRepo{holidays: holidays}
	svc := &attendanceServiceImpl{
		attendanceRepo: attRepo,
		employeeRepo:   &fakeEmployeeRepo{employees: employees},
		holidayRepo:    holRepo,
		classifier:     workday.NewClassifier(holRepo),
		loc:            time.UTC,
		now:            func() time.Time { return today },
	}
	return svc, attRepo
}

func testEmployees() []employee.Employee {
	return []employee.Employee{
		{ID: "emp-a", FirstName: "Alice", LastName: "Anders", Email: "alice@example.com", HireDate: date("2023-01-09")},
		{ID: "emp-b", FirstName: "Bob", LastName: "Baker", Email: "bob@example.com", HireDate: date("2023-06-05")},
		{ID: "emp-c", FirstName: "Cara", LastName: "Costa", Email: "cara@example.com", HireDate: date("2024-01-02")},
	}
}

// ===== BULK MARK =====

func TestBulkMarkSavesEachSubmittedStatus(t *testing.T) {
	// 2024-02-13 is a Tuesday.
	svc, repo := newTestService(date("2024-02-15"), testEmployees(), nil)

	result, err := svc.BulkMark(context.Background(), attendance.BulkMarkRequest{
		Date: "2024-02-13",
		Statuses: map[string]string{
			"emp-a": "present",
			"emp-b": "absent",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-02-13", result.Date)
	assert.Equal(t, 2, result.SavedCount)

	records, err := repo.ListByDate(context.Background(), date("2024-02-13"))
	require.NoError(t, err)
	require.Len(t, records, 2)

	byEmployee := make(map[string]attendance.Status)
	for _, rec := range records {
		byEmployee[rec.EmployeeID] = rec.Status
	}
	assert.Equal(t, attendance.StatusPresent, byEmployee["emp-a"])
	assert.Equal(t, attendance.StatusAbsent, byEmployee["emp-b"])
	assert.NotContains(t, byEmployee, "emp-c")
}

func TestBulkMarkRejectsWeekendWithoutWriting(t *testing.T) {
	// 2024-02-10 is a Saturday.
	svc, repo := newTestService(date("2024-02-15"), testEmployees(), nil)

	_, err := svc.BulkMark(context.Background(), attendance.BulkMarkRequest{
		Date:     "2024-02-10",
		Statuses: map[string]string{"emp-a": "present"},
	})
	require.ErrorIs(t, err, attendance.ErrNonWorkingDay)
	assert.Contains(t, err.Error(), "Saturday")
	assert.Empty(t, repo.records)
}

func TestBulkMarkRejectsHolidayByName(t *testing.T) {
	holidays := []holiday.Holiday{
		{ID: "hol-1", Name: "Founders Day", Date: date("2024-02-13")},
	}
	svc, repo := newTestService(date("2024-02-15"), testEmployees(), holidays)

	_, err := svc.BulkMark(context.Background(), attendance.BulkMarkRequest{
		Date:     "2024-02-13",
		Statuses: map[string]string{"emp-a": "present"},
	})
	require.ErrorIs(t, err, attendance.ErrNonWorkingDay)
	assert.Contains(t, err.Error(), "Founders Day")
	assert.Empty(t, repo.records)
}

func TestBulkMarkRejectsFutureDate(t *testing.T) {
	svc, _ := newTestService(date("2024-02-15"), testEmployees(), nil)

	_, err := svc.BulkMark(context.Background(), attendance.BulkMarkRequest{
		Date:     "2024-02-16",
		Statuses: map[string]string{"emp-a": "present"},
	})
	require.ErrorIs(t, err, attendance.ErrFutureDate)
}

func TestBulkMarkEmptySubmission(t *testing.T) {
	svc, _ := newTestService(date("2024-02-15"), testEmployees(), nil)

	_, err := svc.BulkMark(context.Background(), attendance.BulkMarkRequest{
		Date:     "2024-02-13",
		Statuses: map[string]string{},
	})
	require.ErrorIs(t, err, attendance.ErrNoStatusesSubmitted)

	// Unknown employee ids are dropped, which leaves nothing to save.
	_, err = svc.BulkMark(context.Background(), attendance.BulkMarkRequest{
		Date:     "2024-02-13",
		Statuses: map[string]string{"nobody": "present"},
	})
	require.ErrorIs(t, err, attendance.ErrNoStatusesSubmitted)
}

func TestBulkMarkReplacesExistingRecords(t *testing.T) {
	svc, repo := newTestService(date("2024-02-15"), testEmployees(), nil)
	ctx := context.Background()

	_, err := svc.BulkMark(ctx, attendance.BulkMarkRequest{
		Date:     "2024-02-13",
		Statuses: map[string]string{"emp-a": "present", "emp-b": "present"},
	})
	require.NoError(t, err)

	// Resubmitting the same date flips statuses without duplicating rows.
	result, err := svc.BulkMark(ctx, attendance.BulkMarkRequest{
		Date:     "2024-02-13",
		Statuses: map[string]string{"emp-a": "absent", "emp-b": "present"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.SavedCount)

	records, err := repo.ListByDate(ctx, date("2024-02-13"))
	require.NoError(t, err)
	require.Len(t, records, 2)

	byEmployee := make(map[string]attendance.Status)
	for _, rec := range records {
		byEmployee[rec.EmployeeID] = rec.Status
	}
	assert.Equal(t, attendance.StatusAbsent, byEmployee["emp-a"])
	assert.Equal(t, attendance.StatusPresent, byEmployee["emp-b"])
}

// ===== SINGLE CREATE =====

func TestCreateRejectsDuplicate(t *testing.T) {
	svc, _ := newTestService(date("2024-02-15"), testEmployees(), nil)
	ctx := context.Background()

	req := attendance.CreateAttendanceRequest{
		EmployeeID: "emp-a",
		Date:       "2024-02-13",
		Status:     "present",
	}
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, req)
	require.ErrorIs(t, err, attendance.ErrDuplicateAttendance)
}

func TestCreateRejectsUnknownEmployee(t *testing.T) {
	svc, _ := newTestService(date("2024-02-15"), testEmployees(), nil)

	_, err := svc.Create(context.Background(), attendance.CreateAttendanceRequest{
		EmployeeID: "nobody",
		Date:       "2024-02-13",
		Status:     "present",
	})
	require.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

// ===== LIST VIEW =====

func TestListViewDefaultsToMonthToDate(t *testing.T) {
	svc, _ := newTestService(date("2024-02-15"), testEmployees(), nil)

	result, err := svc.ListView(context.Background(), attendance.ListQuery{})
	require.NoError(t, err)

	assert.Equal(t, "2024-02-01", result.StartDate)
	assert.Equal(t, "2024-02-15", result.EndDate)
	require.NotNil(t, result.SelectedPreset)
	assert.Equal(t, "thismonth", *result.SelectedPreset)
	assert.True(t, result.HasEmployees)
	assert.Len(t, result.Dates, 15)
	assert.Len(t, result.Presets, 11)
}

func TestListViewMalformedInputFallsBack(t *testing.T) {
	svc, _ := newTestService(date("2024-02-15"), testEmployees(), nil)

	result, err := svc.ListView(context.Background(), attendance.ListQuery{
		StartDate: "not-a-date",
		EndDate:   "2024-02-10",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", result.StartDate)
	assert.Equal(t, "2024-02-15", result.EndDate)
}

func TestListViewSwapsReversedBounds(t *testing.T) {
	svc, _ := newTestService(date("2024-02-15"), testEmployees(), nil)

	result, err := svc.ListView(context.Background(), attendance.ListQuery{
		StartDate: "2024-02-10",
		EndDate:   "2024-02-05",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-02-05", result.StartDate)
	assert.Equal(t, "2024-02-10", result.EndDate)
}

func TestListViewPresetWinsOverDates(t *testing.T) {
	svc, _ := newTestService(date("2024-02-15"), testEmployees(), nil)

	result, err := svc.ListView(context.Background(), attendance.ListQuery{
		Preset:    "last7days",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-02-09", result.StartDate)
	assert.Equal(t, "2024-02-15", result.EndDate)
	require.NotNil(t, result.SelectedPreset)
	assert.Equal(t, "last7days", *result.SelectedPreset)
}

func TestListViewMatrixAndDailyStats(t *testing.T) {
	holidays := []holiday.Holiday{
		{ID: "hol-1", Name: "Founders Day", Date: date("2024-02-14")},
	}
	svc, repo := newTestService(date("2024-02-15"), testEmployees(), holidays)
	ctx := context.Background()

	_, err := repo.Create(ctx, attendance.Attendance{EmployeeID: "emp-a", Date: date("2024-02-13"), Status: attendance.StatusPresent})
	require.NoError(t, err)
	_, err = repo.Create(ctx, attendance.Attendance{EmployeeID: "emp-b", Date: date("2024-02-13"), Status: attendance.StatusAbsent})
	require.NoError(t, err)
	_, err = repo.Create(ctx, attendance.Attendance{EmployeeID: "emp-a", Date: date("2024-02-15"), Status: attendance.StatusPresent})
	require.NoError(t, err)

	result, err := svc.ListView(ctx, attendance.ListQuery{
		StartDate: "2024-02-12",
		EndDate:   "2024-02-15",
	})
	require.NoError(t, err)

	// Row order follows the employee list; cell order follows the range.
	require.Len(t, result.Matrix, 3)
	assert.Equal(t, "Alice Anders", result.Matrix[0].Employee.FullName)
	require.Len(t, result.Matrix[0].Days, 4)
	require.NotNil(t, result.Matrix[0].Days[1].Attendance)
	assert.Equal(t, "present", result.Matrix[0].Days[1].Attendance.Status)
	assert.Nil(t, result.Matrix[0].Days[2].Attendance)
	require.NotNil(t, result.Matrix[1].Days[1].Attendance)
	assert.Equal(t, "absent", result.Matrix[1].Days[1].Attendance.Status)

	require.Len(t, result.DailyStats, 4)
	feb13 := result.DailyStats[1]
	assert.Equal(t, 2, feb13.Total)
	assert.Equal(t, 1, feb13.Present)
	assert.Equal(t, 1, feb13.Absent)
	assert.False(t, feb13.IsNonWorking)

	feb14 := result.DailyStats[2]
	assert.Equal(t, 0, feb14.Total)
	assert.True(t, feb14.IsNonWorking)

	// The holiday shows up on the date descriptors too.
	assert.True(t, result.Dates[2].IsHoliday)
	assert.False(t, result.Dates[2].IsWeekend)
}

func TestListViewCalendarsCoverEndMonthAndPredecessor(t *testing.T) {
	svc, _ := newTestService(date("2024-03-10"), testEmployees(), nil)

	result, err := svc.ListView(context.Background(), attendance.ListQuery{Preset: "thismonth"})
	require.NoError(t, err)

	require.Len(t, result.Calendars, 2)
	assert.Equal(t, 2, result.Calendars[0].Month)
	assert.Equal(t, "February", result.Calendars[0].MonthName)
	assert.Equal(t, 3, result.Calendars[1].Month)
	assert.Equal(t, 2024, result.Calendars[1].Year)

	// Each week is a full seven slots.
	for _, cal := range result.Calendars {
		for _, week := range cal.Weeks {
			assert.Len(t, week, 7)
		}
	}
}

// ===== CALENDAR =====

func TestCalendarCentersSixMonthsAcrossYearBoundary(t *testing.T) {
	svc, _ := newTestService(date("2024-02-15"), testEmployees(), nil)

	result, err := svc.Calendar(context.Background(), attendance.CalendarQuery{
		Month: "1", Year: "2024",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Month)
	assert.Equal(t, 2024, result.Year)
	require.Len(t, result.Months, 6)
	// October 2023 through March 2024.
	assert.Equal(t, 10, result.Months[0].Month)
	assert.Equal(t, 2023, result.Months[0].Year)
	assert.Equal(t, 3, result.Months[5].Month)
	assert.Equal(t, 2024, result.Months[5].Year)
}

func TestCalendarResolvesRecurringHolidaysPerYear(t *testing.T) {
	holidays := []holiday.Holiday{
		{ID: "hol-1", Name: "New Year", Date: date("2020-01-01"), IsRecurring: true},
		{ID: "hol-2", Name: "Launch Day", Date: date("2023-11-20")},
	}
	svc, _ := newTestService(date("2024-02-15"), testEmployees(), holidays)

	result, err := svc.Calendar(context.Background(), attendance.CalendarQuery{
		Month: "1", Year: "2024",
	})
	require.NoError(t, err)

	byDate := make(map[string]string)
	for _, h := range result.Holidays {
		byDate[h.Date] = h.Name
	}
	// The recurring holiday lands on the window's own year; the exact-date
	// one appears only in its stored year.
	assert.Equal(t, "New Year", byDate["2024-01-01"])
	assert.Equal(t, "Launch Day", byDate["2023-11-20"])
	assert.NotContains(t, byDate, "2020-01-01")
}

func TestCalendarMalformedInputMeansCurrentMonth(t *testing.T) {
	svc, _ := newTestService(date("2024-02-15"), testEmployees(), nil)

	result, err := svc.Calendar(context.Background(), attendance.CalendarQuery{
		Month: "13", Year: "2024",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Month)
	assert.Equal(t, 2024, result.Year)
}

// ===== MARK PAGE =====

func TestMarkPageWeekStripAndLocks(t *testing.T) {
	holidays := []holiday.Holiday{
		{ID: "hol-1", Name: "Founders Day", Date: date("2024-02-14")},
	}
	employees := []employee.Employee{
		{ID: "emp-a", FirstName: "Alice", LastName: "Anders", HireDate: date("2023-01-09")},
		// Hired within the last 30 days and after the selected date.
		{ID: "emp-d", FirstName: "Dan", LastName: "Diaz", HireDate: date("2024-02-14")},
	}
	svc, repo := newTestService(date("2024-02-15"), employees, holidays)
	ctx := context.Background()

	_, err := repo.Create(ctx, attendance.Attendance{EmployeeID: "emp-a", Date: date("2024-02-13"), Status: attendance.StatusPresent})
	require.NoError(t, err)

	result, err := svc.MarkPage(ctx, "2024-02-13")
	require.NoError(t, err)

	assert.Equal(t, "2024-02-13", result.SelectedDate)
	assert.Equal(t, "2024-02-15", result.Today)
	assert.True(t, result.IsWorkingDay)
	assert.Equal(t, "February", result.MonthName)
	assert.Equal(t, 2024, result.Year)

	require.Len(t, result.Employees, 2)
	require.NotNil(t, result.Employees[0].Attendance)
	assert.Equal(t, "present", result.Employees[0].Attendance.Status)
	assert.False(t, result.Employees[0].IsNew)
	assert.False(t, result.Employees[0].IsLocked)
	assert.Nil(t, result.Employees[1].Attendance)
	assert.True(t, result.Employees[1].IsNew)
	assert.True(t, result.Employees[1].IsLocked)

	// Monday through Sunday of the current week.
	require.Len(t, result.Week, 7)
	assert.Equal(t, "2024-02-12", result.Week[0].Date)
	assert.Equal(t, "2024-02-18", result.Week[6].Date)
	assert.True(t, result.Week[1].IsSelected)
	assert.True(t, result.Week[3].IsToday)
	assert.True(t, result.Week[4].IsFuture)
	assert.True(t, result.Week[5].IsWeekend)

	holidayDay := result.Week[2]
	assert.True(t, holidayDay.IsHoliday)
	require.NotNil(t, holidayDay.HolidayName)
	assert.Equal(t, "Founders Day", *holidayDay.HolidayName)
	assert.False(t, holidayDay.IsWorking)
}

func TestMarkPageUnparseableDateMeansToday(t *testing.T) {
	svc, _ := newTestService(date("2024-02-15"), testEmployees(), nil)

	result, err := svc.MarkPage(context.Background(), "13/02/2024")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-15", result.SelectedDate)

	result, err = svc.MarkPage(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-15", result.SelectedDate)
}

func TestMarkPageNonWorkingSelectedDate(t *testing.T) {
	svc, _ := newTestService(date("2024-02-15"), testEmployees(), nil)

	// 2024-02-10 is a Saturday.
	result, err := svc.MarkPage(context.Background(), "2024-02-10")
	require.NoError(t, err)
	assert.False(t, result.IsWorkingDay)
}
