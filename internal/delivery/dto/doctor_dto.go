package dto

import "github.com/google/uuid"

// Request DTOs

// AssignPatientRequest links a patient to a doctor's care
type AssignPatientRequest struct {
	DoctorID  uuid.UUID `json:"doctor_id" validate:"required"`
	PatientID uuid.UUID `json:"patient_id" validate:"required"`
}

// Response DTOs

// DoctorProfileResponse represents doctor profile data in responses
type DoctorProfileResponse struct {
	UserID         uuid.UUID `json:"user_id"`
	LicenseNumber  string    `json:"license_number"`
	Specialization string    `json:"specialization"`
	ClinicName     string    `json:"clinic_name,omitempty"`
	Biography      string    `json:"biography,omitempty"`
}

// DoctorResponse represents a doctor user with profile data
type DoctorResponse struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	LicenseNumber  string    `json:"license_number"`
	Specialization string    `json:"specialization"`
	ClinicName     string    `json:"clinic_name,omitempty"`
	Biography      string    `json:"biography,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
