package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHealthStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected HealthStatus
	}{
		{"healthy", HealthStatusHealthy},
		{"Healthy", HealthStatusHealthy},
		{"no condition", HealthStatusHealthy},
		{"at_risk", HealthStatusAtRisk},
		{"at-risk", HealthStatusAtRisk},
		{"At Risk", HealthStatusAtRisk},
		{"  at risk  ", HealthStatusAtRisk},
		{"diagnosed", HealthStatusDiagnosed},
		{"DIAGNOSED", HealthStatusDiagnosed},
		{"", HealthStatusUnknown},
		{"deceased", HealthStatusUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseHealthStatus(tt.input), "input %q", tt.input)
	}
}

func TestFamilyMemberHasCondition(t *testing.T) {
	m := FamilyMember{
		Conditions:   StringList{"High Cholesterol", "Asthma"},
		MedicalNotes: "Also treated for hypertension (high blood pressure) since 2020",
	}

	assert.True(t, m.HasCondition("High Cholesterol"))
	assert.True(t, m.HasCondition("high cholesterol"))
	assert.True(t, m.HasCondition("Hypertension (High Blood Pressure)"), "matched from the notes")
	assert.False(t, m.HasCondition("Type 2 Diabetes"))
	assert.False(t, m.HasCondition(""))
}

func TestFamilyMemberMentionsCondition(t *testing.T) {
	m := FamilyMember{
		HealthStatus: "diagnosed with SCD",
		Conditions:   StringList{"Sickle Cell Disease"},
		MedicalNotes: "Regular transfusions",
	}

	assert.True(t, m.MentionsCondition("scd"))
	assert.True(t, m.MentionsCondition("sickle cell"))
	assert.True(t, m.MentionsCondition("transfusions"))
	assert.False(t, m.MentionsCondition("diabetes"))
	assert.False(t, m.MentionsCondition(""))
}

func TestFamilyMemberDiagnosedHelpers(t *testing.T) {
	diagnosed := FamilyMember{HealthStatus: "diagnosed"}
	assert.True(t, diagnosed.IsDiagnosed())

	healthy := FamilyMember{HealthStatus: "healthy", Conditions: StringList{"Asthma"}}
	assert.False(t, healthy.IsDiagnosed())
	assert.True(t, healthy.HasKnownConditions())

	empty := FamilyMember{}
	assert.False(t, empty.IsDiagnosed())
	assert.False(t, empty.HasKnownConditions())
}
