package dashboard

// OverviewResponse is the combined response for the dashboard endpoint.
type OverviewResponse struct {
	TotalEmployees        int64             `json:"total_employees"`
	Today                 string            `json:"today"`
	TodayTotal            int64             `json:"today_total"`
	TodayPresent          int64             `json:"today_present"`
	TodayAbsent           int64             `json:"today_absent"`
	TodayPercentage       float64           `json:"today_percentage"`
	RecentAttendanceCount int64             `json:"recent_attendance_count"` // records since Monday
	DepartmentStats       []DepartmentStats `json:"department_stats"`
	WeekAttendance        []DayStats        `json:"week_attendance"` // trailing 7 days, oldest first
}

type DepartmentStats struct {
	Name          string `json:"name"`
	EmployeeCount int64  `json:"employee_count"`
	TodayPresent  int64  `json:"today_present"`
}

type DayStats struct {
	Date    string `json:"date"`
	Total   int64  `json:"total"`
	Present int64  `json:"present"`
	Absent  int64  `json:"absent"`
}
