package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateFamilyMemberRequest struct {
	FullName     string   `json:"full_name" validate:"required,min=2,max=255"`
	Relationship string   `json:"relationship" validate:"omitempty,max=50"`
	Age          *int     `json:"age" validate:"omitempty,min=0,max=150"`
	HealthStatus string   `json:"health_status" validate:"omitempty,max=50"`
	Conditions   []string `json:"conditions" validate:"omitempty,dive,min=1"`
	DiagnosisAge *int     `json:"diagnosis_age" validate:"omitempty,min=0,max=150"`
	MedicalNotes string   `json:"medical_notes" validate:"omitempty"`
}

type UpdateFamilyMemberRequest struct {
	FullName     string   `json:"full_name" validate:"omitempty,min=2,max=255"`
	Relationship string   `json:"relationship" validate:"omitempty,max=50"`
	Age          *int     `json:"age" validate:"omitempty,min=0,max=150"`
	HealthStatus string   `json:"health_status" validate:"omitempty,max=50"`
	Conditions   []string `json:"conditions" validate:"omitempty,dive,min=1"`
	DiagnosisAge *int     `json:"diagnosis_age" validate:"omitempty,min=0,max=150"`
	MedicalNotes string   `json:"medical_notes" validate:"omitempty"`
}

// Response DTOs

type FamilyMemberResponse struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"full_name"`
	Relationship string    `json:"relationship,omitempty"`
	Age          *int      `json:"age,omitempty"`
	HealthStatus string    `json:"health_status,omitempty"`
	Conditions   []string  `json:"conditions,omitempty"`
	DiagnosisAge *int      `json:"diagnosis_age,omitempty"`
	MedicalNotes string    `json:"medical_notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type FamilyMemberListResponse struct {
	Members []FamilyMemberResponse `json:"members"`
	Total   int                    `json:"total"`
}
