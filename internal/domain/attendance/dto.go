package attendance

import (
	"github.com/staffsync/staffsync-backend-go/internal/pkg/validator"
)

// ========================================
// REQUESTS
// ========================================

type CreateAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !Status(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be present or absent",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkMarkRequest replaces attendance for every employee listed in Statuses
// on a single date. Employees absent from the map are left untouched.
type BulkMarkRequest struct {
	Date     string            `json:"date"`
	Statuses map[string]string `json:"statuses"` // employee id -> present|absent
}

func (r *BulkMarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	for id, status := range r.Statuses {
		if !Status(status).IsValid() {
			errs = append(errs, validator.ValidationError{
				Field:   "statuses." + id,
				Message: "status must be present or absent",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListQuery selects the attendance list range: either a preset keyword or
// explicit bounds. Both are advisory display inputs; malformed values fall
// back to current-month-to-date instead of erroring.
type ListQuery struct {
	Preset    string
	StartDate string
	EndDate   string
}

// ========================================
// RESPONSES
// ========================================

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}

// DateInfo describes one day of the selected range for presentation.
type DateInfo struct {
	Date         string `json:"date"`
	Weekday      string `json:"weekday"`
	IsToday      bool   `json:"is_today"`
	IsWeekend    bool   `json:"is_weekend"`
	IsHoliday    bool   `json:"is_holiday"`
	IsNonWorking bool   `json:"is_non_working"`
}

type EmployeeSummary struct {
	ID             string  `json:"id"`
	FullName       string  `json:"full_name"`
	DepartmentName *string `json:"department_name,omitempty"`
}

// MatrixRow is one employee's attendance over every date in the range.
type MatrixRow struct {
	Employee EmployeeSummary `json:"employee"`
	Days     []DayCell       `json:"days"`
}

type DayCell struct {
	Date         string              `json:"date"`
	Attendance   *AttendanceResponse `json:"attendance,omitempty"`
	IsNonWorking bool                `json:"is_non_working"`
}

type DailyStat struct {
	Date         string `json:"date"`
	Weekday      string `json:"weekday"`
	Total        int    `json:"total"`
	Present      int    `json:"present"`
	Absent       int    `json:"absent"`
	IsNonWorking bool   `json:"is_non_working"`
}

// MonthCalendar is a Monday-aligned month grid; nil slots pad the first and
// last weeks.
type MonthCalendar struct {
	Month     int         `json:"month"`
	Year      int         `json:"year"`
	MonthName string      `json:"month_name"`
	Weeks     [][]*string `json:"weeks"`
}

// CalendarQuery selects the center month of the calendar view. Both values
// are display inputs; malformed ones fall back to the current month.
type CalendarQuery struct {
	Month string
	Year  string
}

// CalendarHoliday is a holiday resolved onto a concrete date within the
// calendar window; recurring holidays appear once per matching year.
type CalendarHoliday struct {
	Date        string `json:"date"`
	Name        string `json:"name"`
	IsRecurring bool   `json:"is_recurring"`
}

type CalendarResponse struct {
	Month    int               `json:"month"`
	Year     int               `json:"year"`
	Months   []MonthCalendar   `json:"months"`
	Holidays []CalendarHoliday `json:"holidays"`
}

type PresetOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type ListViewResponse struct {
	StartDate      string          `json:"start_date"`
	EndDate        string          `json:"end_date"`
	Today          string          `json:"today"`
	Dates          []DateInfo      `json:"dates"`
	Matrix         []MatrixRow     `json:"matrix"`
	DailyStats     []DailyStat     `json:"daily_stats"`
	Calendars      []MonthCalendar `json:"calendars"`
	Presets        []PresetOption  `json:"presets"`
	SelectedPreset *string         `json:"selected_preset,omitempty"`
	HasEmployees   bool            `json:"has_employees"`
}

type BulkMarkResponse struct {
	Date       string `json:"date"`
	SavedCount int    `json:"saved_count"`
}

// MarkEmployee is one row of the bulk mark page: the employee, any existing
// record for the selected date, and the lock state.
type MarkEmployee struct {
	Employee   EmployeeSummary     `json:"employee"`
	Attendance *AttendanceResponse `json:"attendance,omitempty"`
	IsNew      bool                `json:"is_new"`
	IsLocked   bool                `json:"is_locked"`
}

// WeekDay describes one day of the current week's date strip.
type WeekDay struct {
	Date        string  `json:"date"`
	Day         int     `json:"day"`
	IsToday     bool    `json:"is_today"`
	IsSelected  bool    `json:"is_selected"`
	IsFuture    bool    `json:"is_future"`
	IsWeekend   bool    `json:"is_weekend"`
	IsHoliday   bool    `json:"is_holiday"`
	IsWorking   bool    `json:"is_working"`
	HolidayName *string `json:"holiday_name,omitempty"`
}

type MarkPageResponse struct {
	SelectedDate string         `json:"selected_date"`
	Today        string         `json:"today"`
	IsWorkingDay bool           `json:"is_working_day"`
	Employees    []MarkEmployee `json:"employees"`
	Week         []WeekDay      `json:"week"`
	MonthName    string         `json:"month_name"`
	Year         int            `json:"year"`
}
