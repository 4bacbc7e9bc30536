package service

import (
	"time"

	"fleetalert/internal/domain/entity"
)

// Delivery outcomes recorded per subscription.
const (
	DeliveryOutcomeSucceeded = "succeeded"
	DeliveryOutcomePruned    = "pruned"
	DeliveryOutcomeFailed    = "failed"
)

// Metrics records alert engine activity.
type Metrics interface {
	ObserveDelivery(outcome string)
	ObserveRun(report *entity.RunReport, err error, duration time.Duration)
	SetActiveAlerts(summary entity.AlertSummary)
	IncDashboardCache(hit bool)
}
