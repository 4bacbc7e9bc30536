package alert

import (
	"time"

	"fleetalert/internal/domain/entity"
)

// Classify maps a day offset to its urgency. It is the only place urgency is derived.
func Classify(offset int) entity.Urgency {
	switch {
	case offset < 0:
		return entity.UrgencyExpired
	case offset == 0:
		return entity.UrgencyDueToday
	default:
		return entity.UrgencyUpcoming
	}
}

// Evaluate derives the alerts of a single vehicle at ref.
//
// An expiration event is emitted when the offset is at most the kind's threshold,
// with no lower bound, so overdue deadlines keep alerting. An appointment event is
// emitted when the scheduled renewal falls exactly thresholds.Appointment days after ref
// (the reference date itself with the default of 0). Callers exclude decommissioned
// vehicles before calling.
func Evaluate(vehicle *entity.VehicleRecord, ref time.Time, thresholds entity.Thresholds) []entity.AlertEvent {
	if vehicle == nil {
		return nil
	}

	var events []entity.AlertEvent
	for _, kind := range entity.ComplianceKinds() {
		field := vehicle.Field(kind)

		if field.ExpiresOn != nil {
			offset := DayOffset(*field.ExpiresOn, ref)
			if offset <= thresholds.For(kind) {
				events = append(events, newEvent(vehicle, kind, entity.AlertCategoryExpiration, *field.ExpiresOn, offset, Classify(offset)))
			}
		}

		if field.ScheduledOn != nil {
			offset := DayOffset(*field.ScheduledOn, ref)
			if offset == thresholds.Appointment {
				events = append(events, newEvent(vehicle, kind, entity.AlertCategoryAppointment, *field.ScheduledOn, offset, entity.UrgencyScheduled))
			}
		}
	}

	return events
}

func newEvent(vehicle *entity.VehicleRecord, kind entity.ComplianceKind, category entity.AlertCategory, due time.Time, offset int, urgency entity.Urgency) entity.AlertEvent {
	return entity.AlertEvent{
		VehicleID:   vehicle.ID,
		VehicleName: vehicle.Name,
		Plate:       vehicle.Plate,
		Kind:        kind,
		Category:    category,
		DueOn:       DateOf(due),
		DayOffset:   offset,
		Urgency:     urgency,
	}
}
