package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertPriority represents how urgent an alert is
type AlertPriority string

const (
	AlertPriorityHigh     AlertPriority = "high"
	AlertPriorityModerate AlertPriority = "moderate"
	AlertPriorityLow      AlertPriority = "low"
)

// Alert category keys. At most one alert per category may exist per user,
// enforced by the unique index on (user_id, alert_type).
const (
	AlertTypeHighRiskFamily       = "high_risk_family"
	AlertTypeFamilyDiagnosed      = "family_diagnosed"
	AlertTypeScreeningRecommended = "screening_recommended"
	AlertTypeGeneticCounseling    = "genetic_counseling"
	AlertTypeAddFamilyMembers     = "add_family_members"
	AlertTypeMedicationReminder   = "medication_reminder"
	AlertTypeAnnualCheckup        = "annual_checkup"
	AlertTypeLifestyleTips        = "lifestyle_tips"
	AlertTypeCholesterolRisk      = "cholesterol_risk"
	AlertTypeDiabetesRisk         = "diabetes_risk"
	AlertTypeHypertensionRisk     = "hypertension_risk"
	AlertTypeWelcome              = "welcome"
)

// Alert represents a generated health notification for a user.
// Alerts are created only by the alert generator; users can mark them
// read or delete them but never edit the content.
type Alert struct {
	ID             uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:uniq_alerts_user_alert_type" json:"user_id"`
	AlertType      string        `gorm:"type:varchar(50);not null;uniqueIndex:uniq_alerts_user_alert_type" json:"alert_type"`
	Title          string        `gorm:"type:varchar(255);not null" json:"title"`
	Message        string        `gorm:"type:text;not null" json:"message"`
	Recommendation string        `gorm:"type:text" json:"recommendation,omitempty"`
	Priority       AlertPriority `gorm:"type:varchar(20);not null;default:'moderate';index" json:"priority"`
	IsRead         bool          `gorm:"not null;default:false;index" json:"is_read"`
	ReadAt         *time.Time    `json:"read_at,omitempty"`
	Link           string        `gorm:"type:varchar(255)" json:"link,omitempty"`
	CreatedAt      time.Time     `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Alert) TableName() string {
	return "alerts"
}

// MarkRead flags the alert as read at the given time
func (a *Alert) MarkRead(at time.Time) {
	a.IsRead = true
	a.ReadAt = &at
}
