package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateHealthRecordRequest struct {
	RecordType     string                 `json:"record_type" validate:"required,oneof=note risk_assessment diagnosis vital"`
	RiskLevel      string                 `json:"risk_level" validate:"omitempty,oneof=none low moderate high"`
	Notes          string                 `json:"notes" validate:"omitempty"`
	IsChronic      bool                   `json:"is_chronic"`
	StructuredData map[string]interface{} `json:"structured_data" validate:"omitempty"`
}

type UpdateHealthRecordRequest struct {
	RecordType     string                 `json:"record_type" validate:"omitempty,oneof=note risk_assessment diagnosis vital"`
	RiskLevel      string                 `json:"risk_level" validate:"omitempty,oneof=none low moderate high"`
	Notes          string                 `json:"notes" validate:"omitempty"`
	IsChronic      *bool                  `json:"is_chronic" validate:"omitempty"`
	StructuredData map[string]interface{} `json:"structured_data" validate:"omitempty"`
}

// Response DTOs

type HealthRecordResponse struct {
	ID             uuid.UUID              `json:"id"`
	RecordType     string                 `json:"record_type"`
	RiskLevel      string                 `json:"risk_level"`
	Notes          string                 `json:"notes,omitempty"`
	IsChronic      bool                   `json:"is_chronic"`
	StructuredData map[string]interface{} `json:"structured_data,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

type HealthRecordListResponse struct {
	Records []HealthRecordResponse `json:"records"`
	Total   int                    `json:"total"`
}
