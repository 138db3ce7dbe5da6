package entity

import (
	"time"

	"github.com/google/uuid"
)

// RecordType represents the kind of personal health record
type RecordType string

const (
	RecordTypeNote           RecordType = "note"
	RecordTypeRiskAssessment RecordType = "risk_assessment"
	RecordTypeDiagnosis      RecordType = "diagnosis"
	RecordTypeVital          RecordType = "vital"
)

// RiskLevel represents the self-reported risk level on a health record
type RiskLevel string

const (
	RiskLevelNone     RiskLevel = "none"
	RiskLevelLow      RiskLevel = "low"
	RiskLevelModerate RiskLevel = "moderate"
	RiskLevelHigh     RiskLevel = "high"
)

// PersonalHealthRecord represents a patient-owned health record entry
type PersonalHealthRecord struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	RecordType     RecordType `gorm:"type:varchar(30);not null;default:'note';index" json:"record_type"`
	RiskLevel      RiskLevel  `gorm:"type:varchar(20);not null;default:'none'" json:"risk_level"`
	Notes          string     `gorm:"type:text" json:"notes,omitempty"`
	IsChronic      bool       `gorm:"not null;default:false;index" json:"is_chronic"`
	StructuredData JSON       `gorm:"type:jsonb" json:"structured_data,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (PersonalHealthRecord) TableName() string {
	return "personal_health_records"
}
