// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertEvent is a derived, ephemeral compliance alert. It is recomputed on
// every evaluation pass and identified only by (VehicleID, Kind, Category).
type AlertEvent struct {
	VehicleID   uuid.UUID      `json:"vehicle_id"`
	VehicleName string         `json:"vehicle_name"`
	Plate       string         `json:"plate,omitempty"`
	Kind        ComplianceKind `json:"kind"`
	Category    AlertCategory  `json:"category"`
	DueOn       time.Time      `json:"due_on"`     // Expiration or appointment date.
	DayOffset   int            `json:"day_offset"` // DueOn minus reference date, in days.
	Urgency     Urgency        `json:"urgency"`
}

// VehicleLabel returns the vehicle name followed by the plate when one is known.
func (e AlertEvent) VehicleLabel() string {
	if e.Plate == "" {
		return e.VehicleName
	}

	return e.VehicleName + " (" + e.Plate + ")"
}

// IsAppointment reports whether the event stems from a scheduled renewal.
func (e AlertEvent) IsAppointment() bool {
	return e.Category == AlertCategoryAppointment
}

// AlertSummary counts alerts by urgency for dashboard badges.
type AlertSummary struct {
	Expired   int `json:"expired"`
	DueToday  int `json:"due_today"`
	Upcoming  int `json:"upcoming"`
	Scheduled int `json:"scheduled"`
	Total     int `json:"total"`
}

// AlertPage is a bounded slice of ranked alerts plus the untruncated total.
type AlertPage struct {
	Alerts []AlertEvent `json:"alerts"`
	Total  int          `json:"total"`
}

// Remaining returns how many alerts were cut from the page.
func (p AlertPage) Remaining() int {
	return max(p.Total-len(p.Alerts), 0)
}

// AlertBoard is what the dashboard renders: top alerts, counts and the date they were computed for.
type AlertBoard struct {
	ReferenceDate time.Time    `json:"reference_date"`
	Alerts        []AlertEvent `json:"alerts"`
	Total         int          `json:"total"`
	Remaining     int          `json:"remaining"`
	Summary       AlertSummary `json:"summary"`
	Degraded      bool         `json:"degraded"` // Set when the fleet could not be fetched.
}
