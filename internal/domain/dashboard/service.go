package dashboard

import "context"

type DashboardService interface {
	GetDashboardStats(ctx context.Context) (Stats, error)
	GetOverview(ctx context.Context) (Overview, error)
}
