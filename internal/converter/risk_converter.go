package converter

import (
	"sillah/internal/delivery/dto"
	"sillah/internal/domain/risk"
)

// RiskAssessmentToResponse converts a risk.Assessment to RiskAssessmentResponse DTO
func RiskAssessmentToResponse(assessment *risk.Assessment) *dto.RiskAssessmentResponse {
	if assessment == nil {
		return nil
	}

	return &dto.RiskAssessmentResponse{
		Level:           assessment.Level,
		Severity:        string(assessment.Severity),
		Message:         assessment.Message,
		ScorePercent:    assessment.ScorePercent,
		Recommendations: assessment.Recommendations,
		DiagnosedCount:  assessment.DiagnosedCount,
		EarlyOnsetCount: assessment.EarlyOnsetCount,
		AtRiskCount:     assessment.AtRiskCount,
		HealthyCount:    assessment.HealthyCount,
		TotalMembers:    assessment.TotalMembers,
	}
}
