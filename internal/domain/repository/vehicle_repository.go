// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"fleetalert/internal/domain/entity"
	"fleetalert/internal/errors"
)

// ErrVehicleRecordInvalid is returned when a stored vehicle row cannot be mapped to a VehicleRecord.
var ErrVehicleRecordInvalid = errors.New("vehicle record invalid")

// VehicleRepository is the read-only vehicle query gateway used by the alert engine.
type VehicleRepository interface {
	// ListActiveVehicles retrieves every vehicle that is not decommissioned.
	ListActiveVehicles(ctx context.Context) ([]*entity.VehicleRecord, error)
}
