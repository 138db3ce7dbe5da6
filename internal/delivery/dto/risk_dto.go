package dto

// Response DTOs

// RiskAssessmentResponse is the derived risk assessment for a patient's
// family tree. It is never persisted; every request recomputes it.
type RiskAssessmentResponse struct {
	Level           string   `json:"level"`
	Severity        string   `json:"severity"`
	Message         string   `json:"message"`
	ScorePercent    int      `json:"score_percent"`
	Recommendations []string `json:"recommendations"`

	DiagnosedCount  int `json:"diagnosed_count"`
	EarlyOnsetCount int `json:"early_onset_count"`
	AtRiskCount     int `json:"at_risk_count"`
	HealthyCount    int `json:"healthy_count"`
	TotalMembers    int `json:"total_members"`
}
