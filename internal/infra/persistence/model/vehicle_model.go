package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VehicleModel is the GORM-specific struct for the 'vehicles' table.
// Only the columns read by the alert engine are mapped.
type VehicleModel struct {
	ID                         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name                       string     `gorm:"type:varchar(255);not null"`
	Plate                      *string    `gorm:"type:varchar(32)"`
	Status                     string     `gorm:"type:varchar(32);not null;default:'active';index"`
	InsuranceExpiration        *time.Time `gorm:"type:date"`
	InsuranceAppointment       *time.Time `gorm:"type:date"`
	VTVExpiration              *time.Time `gorm:"column:vtv_expiration;type:date"`
	VTVAppointment             *time.Time `gorm:"column:vtv_appointment;type:date"`
	RegistrationTaxExpiration  *time.Time `gorm:"type:date"`
	RegistrationTaxAppointment *time.Time `gorm:"type:date"`
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
	DeletedAt                  gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (VehicleModel) TableName() string {
	return "vehicles"
}
