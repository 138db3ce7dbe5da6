package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateMedicationRequest struct {
	MedicationName string `json:"medication_name" validate:"required,min=2,max=255"`
	Dosage         string `json:"dosage" validate:"omitempty,max=100"`
	Frequency      string `json:"frequency" validate:"required,oneof=once_daily twice_daily three_times_daily weekly as_needed"`
	Notes          string `json:"notes" validate:"omitempty"`
	StartDate      string `json:"start_date" validate:"required"` // Format: YYYY-MM-DD
	EndDate        string `json:"end_date" validate:"omitempty"`  // Format: YYYY-MM-DD
}

type UpdateMedicationRequest struct {
	MedicationName string `json:"medication_name" validate:"omitempty,min=2,max=255"`
	Dosage         string `json:"dosage" validate:"omitempty,max=100"`
	Frequency      string `json:"frequency" validate:"omitempty,oneof=once_daily twice_daily three_times_daily weekly as_needed"`
	Notes          string `json:"notes" validate:"omitempty"`
	StartDate      string `json:"start_date" validate:"omitempty"` // Format: YYYY-MM-DD
	EndDate        string `json:"end_date" validate:"omitempty"`   // Format: YYYY-MM-DD
	IsActive       *bool  `json:"is_active" validate:"omitempty"`
}

// PrescribeMedicationRequest lets a doctor prescribe for an assigned patient
type PrescribeMedicationRequest struct {
	PatientID      uuid.UUID `json:"patient_id" validate:"required"`
	MedicationName string    `json:"medication_name" validate:"required,min=2,max=255"`
	Dosage         string    `json:"dosage" validate:"omitempty,max=100"`
	Frequency      string    `json:"frequency" validate:"required,oneof=once_daily twice_daily three_times_daily weekly as_needed"`
	Notes          string    `json:"notes" validate:"omitempty"`
	StartDate      string    `json:"start_date" validate:"required"` // Format: YYYY-MM-DD
	EndDate        string    `json:"end_date" validate:"omitempty"`  // Format: YYYY-MM-DD
}

// Response DTOs

type MedicationResponse struct {
	ID             uuid.UUID  `json:"id"`
	PatientID      uuid.UUID  `json:"patient_id"`
	DoctorID       *uuid.UUID `json:"doctor_id,omitempty"`
	MedicationName string     `json:"medication_name"`
	Dosage         string     `json:"dosage,omitempty"`
	Frequency      string     `json:"frequency"`
	Notes          string     `json:"notes,omitempty"`
	StartDate      string     `json:"start_date"`
	EndDate        string     `json:"end_date,omitempty"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type MedicationListResponse struct {
	Medications []MedicationResponse `json:"medications"`
	Total       int                  `json:"total"`
}
