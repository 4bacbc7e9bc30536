// Package entity contains the core business objects of the project.
package entity

// ComplianceKind identifies a tracked regulatory deadline on a vehicle.
type ComplianceKind string

const (
	// ComplianceInsurance is the vehicle insurance policy.
	ComplianceInsurance ComplianceKind = "insurance"
	// ComplianceTechnicalInspection is the periodic technical inspection (VTV).
	ComplianceTechnicalInspection ComplianceKind = "technical_inspection"
	// ComplianceRegistrationTax is the registration/road tax (patente).
	ComplianceRegistrationTax ComplianceKind = "registration_tax"
)

// ComplianceKinds lists every kind in evaluation order.
func ComplianceKinds() []ComplianceKind {
	return []ComplianceKind{
		ComplianceInsurance,
		ComplianceTechnicalInspection,
		ComplianceRegistrationTax,
	}
}

// String returns the string representation of the ComplianceKind.
func (k ComplianceKind) String() string {
	return string(k)
}

// IsValid checks if the ComplianceKind is a known value.
func (k ComplianceKind) IsValid() bool {
	switch k {
	case ComplianceInsurance, ComplianceTechnicalInspection, ComplianceRegistrationTax:
		return true
	default:
		return false
	}
}

// Label returns the human readable name used in push messages.
func (k ComplianceKind) Label() string {
	switch k {
	case ComplianceInsurance:
		return "Insurance"
	case ComplianceTechnicalInspection:
		return "Technical inspection"
	case ComplianceRegistrationTax:
		return "Registration tax"
	default:
		return string(k)
	}
}

// AlertCategory distinguishes bare expirations from scheduled renewal appointments.
type AlertCategory string

const (
	AlertCategoryExpiration  AlertCategory = "expiration"
	AlertCategoryAppointment AlertCategory = "appointment"
)

// Urgency classifies an alert by its day offset.
type Urgency string

const (
	// UrgencyExpired means the deadline already passed (offset < 0).
	UrgencyExpired Urgency = "expired"
	// UrgencyDueToday means the deadline is the reference date (offset == 0).
	UrgencyDueToday Urgency = "due_today"
	// UrgencyUpcoming means the deadline is ahead but inside the alerting window.
	UrgencyUpcoming Urgency = "upcoming"
	// UrgencyScheduled is used for renewal appointments only.
	UrgencyScheduled Urgency = "scheduled"
)

// String returns the string representation of the Urgency.
func (u Urgency) String() string {
	return string(u)
}
