package dashboard

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/staffsync/staffsync-backend-go/internal/domain/dashboard"
	"github.com/staffsync/staffsync-backend-go/internal/pkg/daterange"
)

type dashboardServiceImpl struct {
	dashboardRepo dashboard.DashboardRepository
	loc           *time.Location
	now           func() time.Time
}

func NewDashboardService(dashboardRepo dashboard.DashboardRepository, loc *time.Location) dashboard.DashboardService {
	return &dashboardServiceImpl{
		dashboardRepo: dashboardRepo,
		loc:           loc,
		now:           time.Now,
	}
}

func (s *dashboardServiceImpl) Overview(ctx context.Context) (dashboard.OverviewResponse, error) {
	today := daterange.DateOf(s.now().In(s.loc))

	totalEmployees, err := s.dashboardRepo.CountEmployees(ctx)
	if err != nil {
		return dashboard.OverviewResponse{}, fmt.Errorf("failed to count employees: %w", err)
	}

	// Trailing seven days including today, one query covering the whole
	// window.
	weekStart := today.AddDate(0, 0, -6)
	counts, err := s.dashboardRepo.GetDailyCounts(ctx, weekStart, today)
	if err != nil {
		return dashboard.OverviewResponse{}, fmt.Errorf("failed to load daily counts: %w", err)
	}

	byDate := make(map[string]dashboard.DailyCount, len(counts))
	for _, c := range counts {
		byDate[daterange.Format(c.Date)] = c
	}

	week := make([]dashboard.DayStats, 0, 7)
	for d := weekStart; !d.After(today); d = d.AddDate(0, 0, 1) {
		key := daterange.Format(d)
		c := byDate[key] // zero value covers dates with no records
		week = append(week, dashboard.DayStats{
			Date:    key,
			Total:   c.Total,
			Present: c.Present,
			Absent:  c.Absent,
		})
	}

	todayStats := byDate[daterange.Format(today)]
	var percentage float64
	if todayStats.Total > 0 {
		percentage = math.Round(float64(todayStats.Present)/float64(todayStats.Total)*1000) / 10
	}

	// Records since the start of the current Monday-based week.
	currentWeekStart := today.AddDate(0, 0, -((int(today.Weekday()) + 6) % 7))
	recentCount, err := s.dashboardRepo.CountAttendanceSince(ctx, currentWeekStart)
	if err != nil {
		return dashboard.OverviewResponse{}, fmt.Errorf("failed to count recent attendance: %w", err)
	}

	deptStats, err := s.dashboardRepo.GetDepartmentStats(ctx, today)
	if err != nil {
		return dashboard.OverviewResponse{}, fmt.Errorf("failed to load department stats: %w", err)
	}

	return dashboard.OverviewResponse{
		TotalEmployees:        totalEmployees,
		Today:                 daterange.Format(today),
		TodayTotal:            todayStats.Total,
		TodayPresent:          todayStats.Present,
		TodayAbsent:           todayStats.Absent,
		TodayPercentage:       percentage,
		RecentAttendanceCount: recentCount,
		DepartmentStats:       deptStats,
		WeekAttendance:        week,
	}, nil
}
