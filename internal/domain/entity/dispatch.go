// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PushMessage is the single rendered notification sent to every subscription in a run.
type PushMessage struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Tag   string            `json:"tag,omitempty"`
	Data  map[string]string `json:"data,omitempty"`
}

// DispatchReport summarizes one dispatch pass over a subscription snapshot.
type DispatchReport struct {
	Attempted     int          `json:"attempted"`
	Succeeded     int          `json:"succeeded"`
	PrunedInvalid int          `json:"pruned_invalid"`
	OtherFailures int          `json:"other_failures"`
	Message       *PushMessage `json:"message,omitempty"`
	Alerts        []AlertEvent `json:"-"`
}

// AlertDetail is the non-identifying projection of an alert reported by the trigger surface.
type AlertDetail struct {
	VehicleID uuid.UUID      `json:"vehicleId"`
	Kind      ComplianceKind `json:"kind"`
	Category  AlertCategory  `json:"category"`
	DayOffset int            `json:"dayOffset"`
	Urgency   Urgency        `json:"urgency"`
}

// NewAlertDetail projects an alert into its reportable form.
func NewAlertDetail(event AlertEvent) AlertDetail {
	return AlertDetail{
		VehicleID: event.VehicleID,
		Kind:      event.Kind,
		Category:  event.Category,
		DayOffset: event.DayOffset,
		Urgency:   event.Urgency,
	}
}

// RunReport is the structured outcome of a scheduled run.
type RunReport struct {
	ReferenceDate      time.Time     `json:"referenceDate"`
	Sent               int           `json:"sent"`
	TotalSubscriptions int           `json:"totalSubscriptions"`
	AlertsCount        int           `json:"alertsCount"`
	Pruned             int           `json:"pruned"`
	Failed             int           `json:"failed"`
	Summary            AlertSummary  `json:"summary"`
	Details            []AlertDetail `json:"details"`
	Duration           time.Duration `json:"-"`
}
