package postgres

import (
	"testing"
	"time"

	"fleetalert/internal/domain/entity"
	"fleetalert/internal/domain/repository"
	"fleetalert/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestToVehicleDomain(t *testing.T) {
	id := uuid.New()
	plate := " AB123CD "
	buenosAires := time.FixedZone("ART", -3*60*60)

	vehicleM := &model.VehicleModel{
		ID:                  id,
		Name:                "Truck 12",
		Plate:               &plate,
		Status:              "ACTIVE",
		InsuranceExpiration: timePtr(time.Date(2024, 6, 10, 21, 30, 0, 0, buenosAires)),
		VTVAppointment:      timePtr(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
	}

	vehicle, err := toVehicleDomain(vehicleM)
	require.NoError(t, err)

	assert.Equal(t, id, vehicle.ID)
	assert.Equal(t, "AB123CD", vehicle.Plate)
	assert.Equal(t, entity.VehicleStatusActive, vehicle.Status)
	require.Len(t, vehicle.Compliance, 2)

	insurance := vehicle.Field(entity.ComplianceInsurance)
	require.NotNil(t, insurance.ExpiresOn)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), *insurance.ExpiresOn)
	assert.Nil(t, insurance.ScheduledOn)

	inspection := vehicle.Field(entity.ComplianceTechnicalInspection)
	assert.Nil(t, inspection.ExpiresOn)
	require.NotNil(t, inspection.ScheduledOn)

	_, tracked := vehicle.Compliance[entity.ComplianceRegistrationTax]
	assert.False(t, tracked)
}

func TestToVehicleDomain_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input *model.VehicleModel
	}{
		{name: "nil row", input: nil},
		{name: "blank name", input: &model.VehicleModel{Name: "  ", Status: "active"}},
		{name: "unknown status", input: &model.VehicleModel{Name: "Van", Status: "sold"}},
		{name: "decommissioned", input: &model.VehicleModel{Name: "Van", Status: "decommissioned"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vehicle, err := toVehicleDomain(tt.input)
			assert.Nil(t, vehicle)
			assert.ErrorIs(t, err, repository.ErrVehicleRecordInvalid)
		})
	}
}
