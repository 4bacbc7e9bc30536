package postgres

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"fleetalert/internal/domain/alert"
	"fleetalert/internal/domain/entity"
	domainerrors "fleetalert/internal/domain/errors"
	"fleetalert/internal/domain/repository"
	"fleetalert/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// vehicleRepository implements the repository.VehicleRepository interface.
type vehicleRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewVehicleRepository is the constructor for vehicleRepository.
func NewVehicleRepository(db *gorm.DB, logger *slog.Logger) repository.VehicleRepository {
	return &vehicleRepository{
		db:     db,
		logger: logger,
	}
}

// ListActiveVehicles retrieves every vehicle that has not been decommissioned (excluding soft-deleted).
// Rows that cannot be mapped to a VehicleRecord are skipped and logged.
func (repo *vehicleRepository) ListActiveVehicles(ctx context.Context) ([]*entity.VehicleRecord, error) {
	var vehicleModels []*model.VehicleModel

	if err := repo.db.WithContext(ctx).
		Where("status <> ?", string(entity.VehicleStatusDecommissioned)).
		Order("id ASC").
		Find(&vehicleModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list active vehicles")
	}

	vehicles := make([]*entity.VehicleRecord, 0, len(vehicleModels))
	for _, vehicleM := range vehicleModels {
		vehicle, err := toVehicleDomain(vehicleM)
		if err != nil {
			repo.logger.WarnContext(ctx, "Skipping invalid vehicle row",
				slog.String("vehicleID", vehicleM.ID.String()),
				slog.Any("error", err),
			)

			continue
		}
		vehicles = append(vehicles, vehicle)
	}

	return vehicles, nil
}

// toVehicleDomain converts a vehicle row into the strict VehicleRecord consumed by the alert engine.
func toVehicleDomain(data *model.VehicleModel) (*entity.VehicleRecord, error) {
	if data == nil {
		return nil, repository.ErrVehicleRecordInvalid
	}

	name := strings.TrimSpace(data.Name)
	if name == "" {
		return nil, errors.Wrap(repository.ErrVehicleRecordInvalid, "missing name")
	}

	status := entity.VehicleStatus(strings.ToLower(strings.TrimSpace(data.Status)))
	switch status {
	case entity.VehicleStatusActive, entity.VehicleStatusInMaintenance:
	case entity.VehicleStatusDecommissioned:
		return nil, errors.Wrap(repository.ErrVehicleRecordInvalid, "decommissioned vehicle")
	default:
		return nil, errors.Wrapf(repository.ErrVehicleRecordInvalid, "unknown status %q", data.Status)
	}

	vehicle := &entity.VehicleRecord{
		ID:         data.ID,
		Name:       name,
		Status:     status,
		Compliance: make(map[entity.ComplianceKind]entity.ComplianceField, len(entity.ComplianceKinds())),
		UpdatedAt:  data.UpdatedAt,
	}
	if data.Plate != nil {
		vehicle.Plate = strings.TrimSpace(*data.Plate)
	}

	fields := map[entity.ComplianceKind]entity.ComplianceField{
		entity.ComplianceInsurance:           complianceField(data.InsuranceExpiration, data.InsuranceAppointment),
		entity.ComplianceTechnicalInspection: complianceField(data.VTVExpiration, data.VTVAppointment),
		entity.ComplianceRegistrationTax:     complianceField(data.RegistrationTaxExpiration, data.RegistrationTaxAppointment),
	}
	for kind, field := range fields {
		if field.IsTracked() {
			vehicle.Compliance[kind] = field
		}
	}

	return vehicle, nil
}

func complianceField(expiresOn, scheduledOn *time.Time) entity.ComplianceField {
	return entity.ComplianceField{
		ExpiresOn:   calendarDate(expiresOn),
		ScheduledOn: calendarDate(scheduledOn),
	}
}

func calendarDate(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	date := alert.DateOf(*t)

	return &date
}
