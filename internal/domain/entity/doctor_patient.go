package entity

import (
	"time"

	"github.com/google/uuid"
)

// DoctorPatient links a doctor to a patient under their care. Doctors can
// only read the family history and risk assessment of assigned patients.
type DoctorPatient struct {
	DoctorID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"doctor_id"`
	PatientID uuid.UUID `gorm:"type:uuid;primaryKey" json:"patient_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Doctor  DoctorProfile  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (DoctorPatient) TableName() string {
	return "doctor_patients"
}
