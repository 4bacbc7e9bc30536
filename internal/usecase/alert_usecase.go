package usecase

import (
	"context"
	"time"

	"fleetalert/internal/domain/entity"
)

// AlertUsecase defines the dashboard view of compliance alerts
type AlertUsecase interface {
	// GetDashboardAlerts returns the top ranked alerts for ref, the untruncated total and counts by urgency.
	// A zero ref means today in the configured time zone.
	// When the fleet cannot be fetched the board is empty and marked Degraded instead of failing.
	GetDashboardAlerts(ctx context.Context, ref time.Time) (*entity.AlertBoard, error)
}
