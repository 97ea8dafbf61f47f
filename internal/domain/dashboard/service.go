package dashboard

import "context"

type DashboardService interface {
	// Overview aggregates the dashboard counters for the current date.
	Overview(ctx context.Context) (OverviewResponse, error)
}
