package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// Stats returns the console landing-page counters and recent check-ins.
	Stats(ctx context.Context) (StatsResponse, error)
}
