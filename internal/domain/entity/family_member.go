package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// HealthStatus is the canonical tri-state health status of a family member
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusAtRisk    HealthStatus = "at_risk"
	HealthStatusDiagnosed HealthStatus = "diagnosed"
	HealthStatusUnknown   HealthStatus = ""
)

// ParseHealthStatus canonicalizes the health status spellings found in
// imported family data ("At Risk", "at-risk", "no condition", ...).
// Unrecognized values map to HealthStatusUnknown rather than an error.
func ParseHealthStatus(s string) HealthStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "healthy", "no condition":
		return HealthStatusHealthy
	case "at_risk", "at-risk", "at risk":
		return HealthStatusAtRisk
	case "diagnosed":
		return HealthStatusDiagnosed
	default:
		return HealthStatusUnknown
	}
}

// FamilyMember represents one relative in a patient's family health tree
type FamilyMember struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	FullName     string     `gorm:"type:varchar(255);not null" json:"full_name"`
	Relationship string     `gorm:"type:varchar(50)" json:"relationship,omitempty"`
	Age          *int       `gorm:"type:int" json:"age,omitempty"`
	HealthStatus string     `gorm:"type:varchar(50);index" json:"health_status,omitempty"`
	Conditions   StringList `gorm:"type:jsonb" json:"conditions,omitempty"`
	DiagnosisAge *int       `gorm:"type:int" json:"diagnosis_age,omitempty"`
	MedicalNotes string     `gorm:"type:text" json:"medical_notes,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (FamilyMember) TableName() string {
	return "family_members"
}

// Status returns the canonical health status of the member
func (m *FamilyMember) Status() HealthStatus {
	return ParseHealthStatus(m.HealthStatus)
}

// IsDiagnosed checks if the member has a confirmed diagnosis
func (m *FamilyMember) IsDiagnosed() bool {
	return m.Status() == HealthStatusDiagnosed
}

// HasKnownConditions checks if the member has at least one recorded condition
func (m *FamilyMember) HasKnownConditions() bool {
	return len(m.Conditions) > 0
}

// HasCondition checks whether the member has the named condition, either as a
// structured list entry or mentioned in the free-text medical notes. Matching
// is case-insensitive; absent fields simply don't match.
func (m *FamilyMember) HasCondition(name string) bool {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return false
	}
	for _, c := range m.Conditions {
		if strings.ToLower(strings.TrimSpace(c)) == needle {
			return true
		}
	}
	return strings.Contains(strings.ToLower(m.MedicalNotes), needle)
}

// MentionsCondition checks whether the keyword appears anywhere in the
// member's status, conditions or notes. Used for the lenient keyword
// detection of the tracked hereditary condition.
func (m *FamilyMember) MentionsCondition(keyword string) bool {
	needle := strings.ToLower(strings.TrimSpace(keyword))
	if needle == "" {
		return false
	}
	if strings.Contains(strings.ToLower(m.HealthStatus), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(m.MedicalNotes), needle) {
		return true
	}
	for _, c := range m.Conditions {
		if strings.Contains(strings.ToLower(c), needle) {
			return true
		}
	}
	return false
}
