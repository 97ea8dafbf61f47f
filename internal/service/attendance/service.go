package attendance

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/staffsync/staffsync-backend-go/internal/domain/attendance"
	"github.com/staffsync/staffsync-backend-go/internal/domain/employee"
	"github.com/staffsync/staffsync-backend-go/internal/domain/holiday"
	"github.com/staffsync/staffsync-backend-go/internal/pkg/daterange"
	"github.com/staffsync/staffsync-backend-go/internal/service/workday"
)

// newEmployeeDays is the window after hiring during which an employee is
// flagged as new on the mark page.
const newEmployeeDays = 30

type attendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	holidayRepo    holiday.HolidayRepository
	classifier     *workday.Classifier
	loc            *time.Location
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.HolidayRepository,
	classifier *workday.Classifier,
	loc *time.Location,
) attendance.AttendanceService {
	return &attendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		holidayRepo:    holidayRepo,
		classifier:     classifier,
		loc:            loc,
		now:            time.Now,
	}
}

// today reads the clock once per operation.
func (s *attendanceServiceImpl) today() time.Time {
	return daterange.DateOf(s.now().In(s.loc))
}

// ========================================
// LIST VIEW
// ========================================

func (s *attendanceServiceImpl) ListView(ctx context.Context, q attendance.ListQuery) (attendance.ListViewResponse, error) {
	today := s.today()
	rng := s.resolveRange(q, today)

	holidays, err := s.holidayRepo.List(ctx)
	if err != nil {
		return attendance.ListViewResponse{}, fmt.Errorf("failed to load holidays: %w", err)
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return attendance.ListViewResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	records, err := s.attendanceRepo.ListRange(ctx, rng.Start, rng.End)
	if err != nil {
		return attendance.ListViewResponse{}, fmt.Errorf("failed to load attendance: %w", err)
	}

	days := rng.Days()
	dates := make([]attendance.DateInfo, 0, len(days))
	nonWorking := make(map[string]bool, len(days))
	for _, d := range days {
		key := daterange.Format(d)
		weekend := workday.IsWeekend(d)
		h := matchHoliday(holidays, d)
		nonWorking[key] = weekend || h != nil
		dates = append(dates, attendance.DateInfo{
			Date:         key,
			Weekday:      d.Weekday().String(),
			IsToday:      d.Equal(today),
			IsWeekend:    weekend,
			IsHoliday:    h != nil,
			IsNonWorking: nonWorking[key],
		})
	}

	return attendance.ListViewResponse{
		StartDate:      daterange.Format(rng.Start),
		EndDate:        daterange.Format(rng.End),
		Today:          daterange.Format(today),
		Dates:          dates,
		Matrix:         buildAttendanceMatrix(employees, days, records, nonWorking),
		DailyStats:     buildDailyStats(days, records, nonWorking),
		Calendars:      buildCalendars(rng.End),
		Presets:        presetOptions(),
		SelectedPreset: detectPreset(rng, today),
		HasEmployees:   len(employees) > 0,
	}, nil
}

// resolveRange turns the query into concrete bounds. Preset names win over
// explicit dates; malformed or missing input falls back to the current
// month to date, and swapped explicit bounds are reordered rather than
// rejected.
func (s *attendanceServiceImpl) resolveRange(q attendance.ListQuery, today time.Time) daterange.Range {
	if q.Preset != "" {
		for _, name := range daterange.Presets() {
			if name == q.Preset {
				return daterange.ResolvePreset(name, today)
			}
		}
	}

	if q.StartDate != "" && q.EndDate != "" {
		start, errStart := daterange.ParseDate(q.StartDate)
		end, errEnd := daterange.ParseDate(q.EndDate)
		if errStart == nil && errEnd == nil {
			if start.After(end) {
				start, end = end, start
			}
			if daterange.Validate(start, end, today) == nil {
				return daterange.Range{Start: start, End: end}
			}
		}
	}

	return daterange.ResolvePreset("thismonth", today)
}

// detectPreset reports which preset, if any, produces exactly this range.
func detectPreset(rng daterange.Range, today time.Time) *string {
	for _, name := range daterange.Presets() {
		if r := daterange.ResolvePreset(name, today); r.Start.Equal(rng.Start) && r.End.Equal(rng.End) {
			preset := name
			return &preset
		}
	}
	return nil
}

// matchHoliday returns the holiday applying on d, preferring an exact-date
// match over a recurring month/day match. Holidays arrive ordered by date,
// keeping the recurring fallback stable.
func matchHoliday(holidays []holiday.Holiday, d time.Time) *holiday.Holiday {
	var recurring *holiday.Holiday
	for i := range holidays {
		h := holidays[i]
		if !h.Matches(d) {
			continue
		}
		if !h.IsRecurring {
			return &h
		}
		if recurring == nil {
			recurring = &h
		}
	}
	return recurring
}

// buildAttendanceMatrix assembles one row per employee with a cell for
// every date in the range. Cell order follows days; row order follows the
// employee list.
func buildAttendanceMatrix(
	employees []employee.Employee,
	days []time.Time,
	records []attendance.Attendance,
	nonWorking map[string]bool,
) []attendance.MatrixRow {
	byEmployeeDate := make(map[string]map[string]attendance.Attendance, len(employees))
	for _, rec := range records {
		key := daterange.Format(rec.Date)
		if byEmployeeDate[rec.EmployeeID] == nil {
			byEmployeeDate[rec.EmployeeID] = make(map[string]attendance.Attendance)
		}
		byEmployeeDate[rec.EmployeeID][key] = rec
	}

	matrix := make([]attendance.MatrixRow, 0, len(employees))
	for _, e := range employees {
		cells := make([]attendance.DayCell, 0, len(days))
		for _, d := range days {
			key := daterange.Format(d)
			cell := attendance.DayCell{Date: key, IsNonWorking: nonWorking[key]}
			if rec, ok := byEmployeeDate[e.ID][key]; ok {
				resp := toAttendanceResponse(rec)
				cell.Attendance = &resp
			}
			cells = append(cells, cell)
		}
		matrix = append(matrix, attendance.MatrixRow{
			Employee: attendance.EmployeeSummary{
				ID:             e.ID,
				FullName:       e.FullName(),
				DepartmentName: e.DepartmentName,
			},
			Days: cells,
		})
	}
	return matrix
}

// buildDailyStats aggregates per-date totals over the range.
func buildDailyStats(
	days []time.Time,
	records []attendance.Attendance,
	nonWorking map[string]bool,
) []attendance.DailyStat {
	present := make(map[string]int, len(days))
	absent := make(map[string]int, len(days))
	for _, rec := range records {
		key := daterange.Format(rec.Date)
		switch rec.Status {
		case attendance.StatusPresent:
			present[key]++
		case attendance.StatusAbsent:
			absent[key]++
		}
	}

	stats := make([]attendance.DailyStat, 0, len(days))
	for _, d := range days {
		key := daterange.Format(d)
		stats = append(stats, attendance.DailyStat{
			Date:         key,
			Weekday:      d.Weekday().String(),
			Total:        present[key] + absent[key],
			Present:      present[key],
			Absent:       absent[key],
			IsNonWorking: nonWorking[key],
		})
	}
	return stats
}

// buildCalendars returns grids for the month the range ends in and the
// month before it.
func buildCalendars(end time.Time) []attendance.MonthCalendar {
	endMonth := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	prevMonth := endMonth.AddDate(0, -1, 0)

	calendars := make([]attendance.MonthCalendar, 0, 2)
	for _, m := range []time.Time{prevMonth, endMonth} {
		grid := daterange.MonthGrid(m.Month(), m.Year())
		weeks := make([][]*string, 0, len(grid))
		for _, week := range grid {
			row := make([]*string, len(week))
			for i, day := range week {
				if day != nil {
					formatted := daterange.Format(*day)
					row[i] = &formatted
				}
			}
			weeks = append(weeks, row)
		}
		calendars = append(calendars, attendance.MonthCalendar{
			Month:     int(m.Month()),
			Year:      m.Year(),
			MonthName: m.Month().String(),
			Weeks:     weeks,
		})
	}
	return calendars
}

var presetLabels = map[string]string{
	"today":      "Today",
	"yesterday":  "Yesterday",
	"last7days":  "Last 7 days",
	"last30days": "Last 30 days",
	"last90days": "Last 90 days",
	"thisweek":   "This week",
	"lastweek":   "Last week",
	"thismonth":  "This month",
	"lastmonth":  "Last month",
	"thisyear":   "This year",
	"lastyear":   "Last year",
}

func presetOptions() []attendance.PresetOption {
	names := daterange.Presets()
	options := make([]attendance.PresetOption, 0, len(names))
	for _, name := range names {
		options = append(options, attendance.PresetOption{Value: name, Label: presetLabels[name]})
	}
	return options
}

// ========================================
// MUTATIONS
// ========================================

func (s *attendanceServiceImpl) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, err := daterange.ParseDate(req.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("invalid date: %w", err)
	}
	if date.After(s.today()) {
		return attendance.AttendanceResponse{}, attendance.ErrFutureDate
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	reason, notWorking, err := s.classifier.NonWorkingReason(ctx, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to classify date: %w", err)
	}
	if notWorking {
		return attendance.AttendanceResponse{}, fmt.Errorf("%w: %s", attendance.ErrNonWorkingDay, reason)
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     attendance.Status(req.Status),
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toAttendanceResponse(created), nil
}

func (s *attendanceServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.attendanceRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.attendanceRepo.Delete(ctx, id)
}

func (s *attendanceServiceImpl) BulkMark(ctx context.Context, req attendance.BulkMarkRequest) (attendance.BulkMarkResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.BulkMarkResponse{}, err
	}

	date, err := daterange.ParseDate(req.Date)
	if err != nil {
		return attendance.BulkMarkResponse{}, fmt.Errorf("invalid date: %w", err)
	}
	if date.After(s.today()) {
		return attendance.BulkMarkResponse{}, attendance.ErrFutureDate
	}

	// The non-working check runs once, before any row is written.
	reason, notWorking, err := s.classifier.NonWorkingReason(ctx, date)
	if err != nil {
		return attendance.BulkMarkResponse{}, fmt.Errorf("failed to classify date: %w", err)
	}
	if notWorking {
		return attendance.BulkMarkResponse{}, fmt.Errorf("%w: %s", attendance.ErrNonWorkingDay, reason)
	}

	if len(req.Statuses) == 0 {
		return attendance.BulkMarkResponse{}, attendance.ErrNoStatusesSubmitted
	}

	// Walk the employee list rather than the request map so entries are
	// written in a stable order and unknown ids are dropped.
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return attendance.BulkMarkResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	entries := make([]attendance.Attendance, 0, len(req.Statuses))
	for _, e := range employees {
		status, ok := req.Statuses[e.ID]
		if !ok {
			continue
		}
		entries = append(entries, attendance.Attendance{
			EmployeeID: e.ID,
			Date:       date,
			Status:     attendance.Status(status),
		})
	}
	if len(entries) == 0 {
		return attendance.BulkMarkResponse{}, attendance.ErrNoStatusesSubmitted
	}

	saved, err := s.attendanceRepo.ReplaceForDate(ctx, date, entries)
	if err != nil {
		return attendance.BulkMarkResponse{}, fmt.Errorf("failed to save attendance: %w", err)
	}

	return attendance.BulkMarkResponse{
		Date:       daterange.Format(date),
		SavedCount: saved,
	}, nil
}

// ========================================
// MARK PAGE
// ========================================

func (s *attendanceServiceImpl) MarkPage(ctx context.Context, dateStr string) (attendance.MarkPageResponse, error) {
	today := s.today()

	// The date is a display input: anything unparseable means today.
	selected := today
	if dateStr != "" {
		if d, err := daterange.ParseDate(dateStr); err == nil {
			selected = d
		}
	}

	holidays, err := s.holidayRepo.List(ctx)
	if err != nil {
		return attendance.MarkPageResponse{}, fmt.Errorf("failed to load holidays: %w", err)
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return attendance.MarkPageResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	records, err := s.attendanceRepo.ListByDate(ctx, selected)
	if err != nil {
		return attendance.MarkPageResponse{}, fmt.Errorf("failed to load attendance: %w", err)
	}
	byEmployee := make(map[string]attendance.Attendance, len(records))
	for _, rec := range records {
		byEmployee[rec.EmployeeID] = rec
	}

	rows := make([]attendance.MarkEmployee, 0, len(employees))
	for _, e := range employees {
		row := attendance.MarkEmployee{
			Employee: attendance.EmployeeSummary{
				ID:             e.ID,
				FullName:       e.FullName(),
				DepartmentName: e.DepartmentName,
			},
			IsNew: daterange.SpanDays(e.HireDate, today) <= newEmployeeDays &&
				!e.HireDate.After(today),
			// Employees hired after the selected date cannot be marked.
			IsLocked: daterange.DateOf(e.HireDate).After(selected),
		}
		if rec, ok := byEmployee[e.ID]; ok {
			resp := toAttendanceResponse(rec)
			row.Attendance = &resp
		}
		rows = append(rows, row)
	}

	// Full Monday-to-Sunday strip for the current week.
	monday := today.AddDate(0, 0, -((int(today.Weekday()) + 6) % 7))
	week := make([]attendance.WeekDay, 0, 7)
	for i := 0; i < 7; i++ {
		d := monday.AddDate(0, 0, i)
		weekend := workday.IsWeekend(d)
		h := matchHoliday(holidays, d)
		wd := attendance.WeekDay{
			Date:       daterange.Format(d),
			Day:        d.Day(),
			IsToday:    d.Equal(today),
			IsSelected: d.Equal(selected),
			IsFuture:   d.After(today),
			IsWeekend:  weekend,
			IsHoliday:  h != nil,
			IsWorking:  !weekend && h == nil,
		}
		if h != nil {
			wd.HolidayName = &h.Name
		}
		week = append(week, wd)
	}

	selectedWeekend := workday.IsWeekend(selected)
	selectedHoliday := matchHoliday(holidays, selected)

	return attendance.MarkPageResponse{
		SelectedDate: daterange.Format(selected),
		Today:        daterange.Format(today),
		IsWorkingDay: !selectedWeekend && selectedHoliday == nil,
		Employees:    rows,
		Week:         week,
		MonthName:    selected.Month().String(),
		Year:         selected.Year(),
	}, nil
}

// ========================================
// CALENDAR
// ========================================

// calendarMonthCount is how many consecutive months the calendar view
// spans, centered on the selected month.
const calendarMonthCount = 6

func (s *attendanceServiceImpl) Calendar(ctx context.Context, q attendance.CalendarQuery) (attendance.CalendarResponse, error) {
	today := s.today()

	// Display inputs; anything out of range means the current month.
	centerMonth := today.Month()
	centerYear := today.Year()
	if m, err := strconv.Atoi(q.Month); err == nil && m >= 1 && m <= 12 {
		if y, err := strconv.Atoi(q.Year); err == nil && y >= 1 && y <= 9999 {
			centerMonth = time.Month(m)
			centerYear = y
		}
	}

	holidays, err := s.holidayRepo.List(ctx)
	if err != nil {
		return attendance.CalendarResponse{}, fmt.Errorf("failed to load holidays: %w", err)
	}

	window := daterange.CenteredMonths(centerMonth, centerYear, calendarMonthCount)
	months := make([]attendance.MonthCalendar, 0, len(window))
	var resolved []attendance.CalendarHoliday
	for _, ym := range window {
		grid := daterange.MonthGrid(ym.Month, ym.Year)
		weeks := make([][]*string, 0, len(grid))
		for _, week := range grid {
			row := make([]*string, len(week))
			for i, day := range week {
				if day != nil {
					formatted := daterange.Format(*day)
					row[i] = &formatted
				}
			}
			weeks = append(weeks, row)
		}
		months = append(months, attendance.MonthCalendar{
			Month:     int(ym.Month),
			Year:      ym.Year,
			MonthName: ym.Month.String(),
			Weeks:     weeks,
		})

		// Recurring holidays land on this window year; exact-date ones
		// only when the year matches.
		for _, h := range holidays {
			if h.Date.Month() != ym.Month {
				continue
			}
			if !h.IsRecurring && h.Date.Year() != ym.Year {
				continue
			}
			d := time.Date(ym.Year, ym.Month, h.Date.Day(), 0, 0, 0, 0, time.UTC)
			resolved = append(resolved, attendance.CalendarHoliday{
				Date:        daterange.Format(d),
				Name:        h.Name,
				IsRecurring: h.IsRecurring,
			})
		}
	}

	return attendance.CalendarResponse{
		Month:    int(centerMonth),
		Year:     centerYear,
		Months:   months,
		Holidays: resolved,
	}, nil
}

func toAttendanceResponse(a attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Date:         daterange.Format(a.Date),
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
	}
}
