// Package entity contains the core business objects of the project.
package entity

import "fleetalert/internal/errors"

const (
	DefaultInsuranceThresholdDays           = 15
	DefaultTechnicalInspectionThresholdDays = 30
	DefaultRegistrationTaxThresholdDays     = 10
	DefaultAppointmentLeadDays              = 0
)

// Thresholds holds the alerting window, in days, per compliance kind.
// Appointment is the lead time of appointment reminders: an appointment event
// is emitted only when the scheduled date is exactly Appointment days ahead.
type Thresholds struct {
	Insurance           int `json:"insurance" yaml:"insurance" validate:"gte=0"`
	TechnicalInspection int `json:"technicalInspection" yaml:"technicalInspection" validate:"gte=0"`
	RegistrationTax     int `json:"registrationTax" yaml:"registrationTax" validate:"gte=0"`
	Appointment         int `json:"appointment" yaml:"appointment" validate:"gte=0"`
}

// DefaultThresholds returns the thresholds used when nothing is configured.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Insurance:           DefaultInsuranceThresholdDays,
		TechnicalInspection: DefaultTechnicalInspectionThresholdDays,
		RegistrationTax:     DefaultRegistrationTaxThresholdDays,
		Appointment:         DefaultAppointmentLeadDays,
	}
}

// For returns the expiration threshold of kind.
func (t Thresholds) For(kind ComplianceKind) int {
	switch kind {
	case ComplianceInsurance:
		return t.Insurance
	case ComplianceTechnicalInspection:
		return t.TechnicalInspection
	case ComplianceRegistrationTax:
		return t.RegistrationTax
	default:
		return 0
	}
}

// Validate rejects negative windows.
func (t Thresholds) Validate() error {
	for _, kind := range ComplianceKinds() {
		if t.For(kind) < 0 {
			return errors.Errorf("threshold for %s must not be negative", kind)
		}
	}
	if t.Appointment < 0 {
		return errors.New("appointment lead days must not be negative")
	}

	return nil
}
