package alert

import (
	"bytes"
	"cmp"
	"slices"
	"time"

	"fleetalert/internal/domain/entity"

	"github.com/google/uuid"
)

type eventKey struct {
	vehicleID uuid.UUID
	kind      entity.ComplianceKind
	category  entity.AlertCategory
}

// Aggregate evaluates every vehicle at ref and returns the ranked, deduplicated alerts.
// Vehicles are never modified.
func Aggregate(vehicles []*entity.VehicleRecord, ref time.Time, thresholds entity.Thresholds) []entity.AlertEvent {
	seen := make(map[eventKey]struct{})
	events := make([]entity.AlertEvent, 0)

	for _, vehicle := range vehicles {
		for _, event := range Evaluate(vehicle, ref, thresholds) {
			key := eventKey{vehicleID: event.VehicleID, kind: event.Kind, category: event.Category}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			events = append(events, event)
		}
	}

	Rank(events)

	return events
}

// Rank sorts events in place: most overdue first, then by vehicle id, kind and category.
func Rank(events []entity.AlertEvent) {
	slices.SortStableFunc(events, compareEvents)
}

func compareEvents(a, b entity.AlertEvent) int {
	if c := cmp.Compare(a.DayOffset, b.DayOffset); c != 0 {
		return c
	}
	if c := bytes.Compare(a.VehicleID[:], b.VehicleID[:]); c != 0 {
		return c
	}
	if c := cmp.Compare(kindOrder(a.Kind), kindOrder(b.Kind)); c != 0 {
		return c
	}

	return cmp.Compare(categoryOrder(a.Category), categoryOrder(b.Category))
}

func kindOrder(kind entity.ComplianceKind) int {
	return slices.Index(entity.ComplianceKinds(), kind)
}

func categoryOrder(category entity.AlertCategory) int {
	if category == entity.AlertCategoryAppointment {
		return 1
	}

	return 0
}

// Top keeps the first n ranked events and reports the untruncated total.
// n <= 0 disables truncation.
func Top(events []entity.AlertEvent, n int) entity.AlertPage {
	total := len(events)
	if n <= 0 || n >= total {
		return entity.AlertPage{Alerts: slices.Clone(events), Total: total}
	}

	return entity.AlertPage{Alerts: slices.Clone(events[:n]), Total: total}
}

// Summarize counts events by urgency.
func Summarize(events []entity.AlertEvent) entity.AlertSummary {
	var summary entity.AlertSummary
	for _, event := range events {
		switch event.Urgency {
		case entity.UrgencyExpired:
			summary.Expired++
		case entity.UrgencyDueToday:
			summary.DueToday++
		case entity.UrgencyUpcoming:
			summary.Upcoming++
		case entity.UrgencyScheduled:
			summary.Scheduled++
		}
	}
	summary.Total = len(events)

	return summary
}
