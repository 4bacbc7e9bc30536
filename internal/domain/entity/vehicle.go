// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// VehicleStatus is the operational status of a fleet unit.
type VehicleStatus string

const (
	VehicleStatusActive         VehicleStatus = "active"
	VehicleStatusInMaintenance  VehicleStatus = "in_maintenance"
	VehicleStatusDecommissioned VehicleStatus = "decommissioned"
)

// IsTerminal reports whether the vehicle left service for good.
func (s VehicleStatus) IsTerminal() bool {
	return s == VehicleStatusDecommissioned
}

// ComplianceField is a tracked deadline with its optional renewal appointment.
// Both dates are calendar dates (midnight UTC); nil means "not tracked".
type ComplianceField struct {
	ExpiresOn   *time.Time `json:"expires_on,omitempty"`
	ScheduledOn *time.Time `json:"scheduled_on,omitempty"`
}

// IsTracked reports whether any date is set on the field.
func (f ComplianceField) IsTracked() bool {
	return f.ExpiresOn != nil || f.ScheduledOn != nil
}

// VehicleRecord is the read-only view of a vehicle consumed by the alert engine.
type VehicleRecord struct {
	ID         uuid.UUID                          `json:"id"`         // The Global Unique Identifier (GUID) for the vehicle.
	Name       string                             `json:"name"`       // Display name, e.g. "Truck 12".
	Plate      string                             `json:"plate"`      // License plate, empty when unknown.
	Status     VehicleStatus                      `json:"status"`     // Operational status.
	Compliance map[ComplianceKind]ComplianceField `json:"compliance"` // Tracked compliance fields keyed by kind.
	UpdatedAt  time.Time                          `json:"updated_at"` // Timestamp of the last modification.
}

// Field returns the compliance field for kind, zero value when absent.
func (v *VehicleRecord) Field(kind ComplianceKind) ComplianceField {
	if v == nil || v.Compliance == nil {
		return ComplianceField{}
	}

	return v.Compliance[kind]
}
