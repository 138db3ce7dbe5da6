package alertgen

import (
	"fmt"
	"strings"

	"sillah/internal/domain/entity"
)

// rule is one row of the alert rule table. Rules are independent: all of
// them are evaluated on every run, in the order listed below.
type rule struct {
	alertType string
	when      func(s *stats) bool
	build     func(s *stats) entity.Alert
}

var rules = []rule{
	{
		alertType: entity.AlertTypeHighRiskFamily,
		when:      func(s *stats) bool { return s.atRiskMembers >= 2 },
		build: func(s *stats) entity.Alert {
			return entity.Alert{
				Title:          "High Hereditary Risk Detected",
				Message:        fmt.Sprintf(`You have %d family members identified as "At Risk" for hereditary conditions. This increases your personal risk for similar health issues.`, s.atRiskMembers),
				Recommendation: "Schedule a comprehensive health screening and genetic counseling session to assess your personal risk factors.",
				Priority:       entity.AlertPriorityHigh,
				Link:           "/risk-assessment",
			}
		},
	},
	{
		alertType: entity.AlertTypeFamilyDiagnosed,
		when:      func(s *stats) bool { return s.diagnosedMembers >= 1 },
		build: func(s *stats) entity.Alert {
			return entity.Alert{
				Title:          "Family Members with Hereditary Conditions",
				Message:        fmt.Sprintf("%d family member(s) have been diagnosed with hereditary conditions including: %s.", s.diagnosedMembers, conditionSummary(s.conditions)),
				Recommendation: "Review your family health tree and discuss these conditions with your doctor during your next checkup.",
				Priority:       entity.AlertPriorityHigh,
				Link:           "/family-tree",
			}
		},
	},
	{
		alertType: entity.AlertTypeScreeningRecommended,
		when:      func(s *stats) bool { return s.atRiskMembers >= 1 },
		build: func(s *stats) entity.Alert {
			return entity.Alert{
				Title:          "Health Screening Recommended",
				Message:        "Based on your family health history, we recommend scheduling regular health screenings to monitor for early signs of hereditary conditions.",
				Recommendation: "Book a comprehensive health checkup with a general practitioner. Include cardiovascular screening, blood work, and genetic counseling if available.",
				Priority:       entity.AlertPriorityHigh,
				Link:           "/clinics",
			}
		},
	},
	{
		alertType: entity.AlertTypeGeneticCounseling,
		when:      func(s *stats) bool { return s.diagnosedMembers >= 2 },
		build: func(s *stats) entity.Alert {
			return entity.Alert{
				Title:          "Genetic Counseling Recommended",
				Message:        "Multiple family members with hereditary conditions suggest a strong genetic component. Genetic counseling can help you understand your personal risk.",
				Recommendation: "Schedule an appointment with a genetic counselor to discuss family planning and preventive measures.",
				Priority:       entity.AlertPriorityHigh,
				Link:           "/clinics",
			}
		},
	},
	{
		alertType: entity.AlertTypeAddFamilyMembers,
		when:      func(s *stats) bool { return s.totalMembers < 3 },
		build: func(s *stats) entity.Alert {
			return entity.Alert{
				Title:          "Complete Your Family Health Tree",
				Message:        "Adding more family members helps us provide more accurate risk assessments. Try to include at least 3 generations (parents, grandparents, siblings).",
				Recommendation: "Add more family members to your health tree, including their ages, relationships, and any known health conditions.",
				Priority:       entity.AlertPriorityModerate,
				Link:           "/family-tree",
			}
		},
	},
	{
		alertType: entity.AlertTypeMedicationReminder,
		when:      func(s *stats) bool { return s.chronicRecords >= 1 },
		build: func(s *stats) entity.Alert {
			return entity.Alert{
				Title:          "Medication Adherence Reminder",
				Message:        fmt.Sprintf("You have %d chronic condition(s) requiring ongoing medication. Regular medication adherence is crucial for managing these conditions.", s.chronicRecords),
				Recommendation: "Set daily medication reminders and track your doses. Consult your doctor if you experience any side effects.",
				Priority:       entity.AlertPriorityHigh,
				Link:           "/my-health",
			}
		},
	},
	{
		alertType: entity.AlertTypeAnnualCheckup,
		when:      func(s *stats) bool { return true },
		build: func(s *stats) entity.Alert {
			return entity.Alert{
				Title:          "Annual Health Checkup Due",
				Message:        "It's important to schedule regular health checkups, especially with your family history of hereditary conditions.",
				Recommendation: "Book your annual health checkup. This should include blood pressure, cholesterol screening, and diabetes tests.",
				Priority:       entity.AlertPriorityModerate,
				Link:           "/appointments",
			}
		},
	},
	{
		alertType: entity.AlertTypeLifestyleTips,
		when:      func(s *stats) bool { return s.atRiskMembers >= 1 },
		build: func(s *stats) entity.Alert {
			return entity.Alert{
				Title:          "Preventive Health Tips",
				Message:        "Given your family health history, lifestyle modifications can significantly reduce your risk of developing hereditary conditions.",
				Recommendation: "Focus on: regular exercise (30 min/day), balanced diet, stress management, adequate sleep, and avoiding smoking/excessive alcohol.",
				Priority:       entity.AlertPriorityModerate,
				Link:           "/awareness-hub",
			}
		},
	},
	{
		alertType: entity.AlertTypeCholesterolRisk,
		when:      func(s *stats) bool { return s.anyWithCondition("High Cholesterol") },
		build: func(s *stats) entity.Alert {
			return entity.Alert{
				Title:          "Cholesterol Screening Recommended",
				Message:        "Family history of high cholesterol increases your risk. Early detection and management can prevent cardiovascular disease.",
				Recommendation: "Get a lipid panel blood test to check your cholesterol levels. If elevated, discuss diet changes and treatment options with your doctor.",
				Priority:       entity.AlertPriorityHigh,
				Link:           "/clinics",
			}
		},
	},
	{
		alertType: entity.AlertTypeDiabetesRisk,
		when:      func(s *stats) bool { return s.anyWithCondition("Type 2 Diabetes") },
		build: func(s *stats) entity.Alert {
			return entity.Alert{
				Title:          "Diabetes Risk Alert",
				Message:        "Family history of Type 2 Diabetes significantly increases your risk. Prevention and early detection are key.",
				Recommendation: "Get an HbA1c or fasting glucose test. Maintain healthy weight, exercise regularly, and monitor your blood sugar levels.",
				Priority:       entity.AlertPriorityHigh,
				Link:           "/clinics",
			}
		},
	},
	{
		alertType: entity.AlertTypeHypertensionRisk,
		when:      func(s *stats) bool { return s.anyWithCondition("Hypertension (High Blood Pressure)") },
		build: func(s *stats) entity.Alert {
			return entity.Alert{
				Title:          "Blood Pressure Monitoring Needed",
				Message:        "Family history of hypertension puts you at increased risk for high blood pressure and heart disease.",
				Recommendation: "Monitor your blood pressure regularly. Reduce salt intake, maintain healthy weight, and exercise regularly.",
				Priority:       entity.AlertPriorityHigh,
				Link:           "/clinics",
			}
		},
	},
	{
		alertType: entity.AlertTypeWelcome,
		when:      func(s *stats) bool { return s.totalMembers == 0 },
		build: func(s *stats) entity.Alert {
			return entity.Alert{
				Title:          "Welcome to Sillah",
				Message:        "Thank you for joining Sillah, your family health management system. Start by adding family members to build your health tree and identify potential hereditary risks.",
				Recommendation: "Add at least 3 family members (parents, siblings, grandparents) to get a comprehensive risk assessment.",
				Priority:       entity.AlertPriorityModerate,
				Link:           "/family-tree",
			}
		},
	},
}

// conditionSummary lists up to three distinct condition names, with an
// ellipsis when more exist
func conditionSummary(conditions []string) string {
	if len(conditions) == 0 {
		return "unspecified conditions"
	}
	shown := conditions
	suffix := ""
	if len(conditions) > 3 {
		shown = conditions[:3]
		suffix = "..."
	}
	return strings.Join(shown, ", ") + suffix
}
