package entity

import (
	"time"

	"github.com/google/uuid"
)

// Medication frequency values offered by the portal
const (
	FrequencyOnceDaily  = "once_daily"
	FrequencyTwiceDaily = "twice_daily"
	FrequencyThreeDaily = "three_times_daily"
	FrequencyWeekly     = "weekly"
	FrequencyAsNeeded   = "as_needed"
)

// Medication represents a medication tracked by a patient, optionally
// prescribed by a doctor
type Medication struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID       *uuid.UUID `gorm:"type:uuid;index" json:"doctor_id,omitempty"`
	MedicationName string     `gorm:"type:varchar(255);not null" json:"medication_name"`
	Dosage         string     `gorm:"type:varchar(100)" json:"dosage,omitempty"`
	Frequency      string     `gorm:"type:varchar(50);not null;default:'once_daily'" json:"frequency"`
	Notes          string     `gorm:"type:text" json:"notes,omitempty"`
	StartDate      time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate        *time.Time `gorm:"type:date" json:"end_date,omitempty"`
	IsActive       bool       `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Medication) TableName() string {
	return "medications"
}
