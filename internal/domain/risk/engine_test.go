package risk

import (
	"testing"

	"sillah/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func member(status string) entity.FamilyMember {
	return entity.FamilyMember{FullName: "Member", HealthStatus: status}
}

func TestAssessNoFamilyData(t *testing.T) {
	a, err := Assess(nil)
	assert.Nil(t, a)
	assert.ErrorIs(t, err, ErrNoFamilyData)

	a, err = Assess([]entity.FamilyMember{})
	assert.Nil(t, a)
	assert.ErrorIs(t, err, ErrNoFamilyData)
}

func TestAssessAllHealthy(t *testing.T) {
	a, err := Assess([]entity.FamilyMember{member("healthy"), member("no condition")})
	require.NoError(t, err)

	assert.Equal(t, "Low Risk", a.Level)
	assert.Equal(t, SeverityLow, a.Severity)
	assert.Equal(t, 0, a.ScorePercent)
	assert.Equal(t, 2, a.HealthyCount)
	assert.Equal(t, 2, a.TotalMembers)
	assert.NotEmpty(t, a.Recommendations)
}

func TestAssessTwoDiagnosedIsCritical(t *testing.T) {
	a, err := Assess([]entity.FamilyMember{member("diagnosed"), member("diagnosed")})
	require.NoError(t, err)

	assert.Equal(t, "High Risk", a.Level)
	assert.Equal(t, SeverityCritical, a.Severity)
	assert.Equal(t, 2, a.DiagnosedCount)
	assert.Equal(t, 0, a.EarlyOnsetCount)
	// 2*50 out of 2*100
	assert.Equal(t, 50, a.ScorePercent)
	assert.Contains(t, a.Message, "2 family member(s) diagnosed")
}

func TestAssessEarlyOnsetBoundary(t *testing.T) {
	early := member("diagnosed")
	early.DiagnosisAge = intPtr(49)

	a, err := Assess([]entity.FamilyMember{early})
	require.NoError(t, err)
	assert.Equal(t, SeverityCritical, a.Severity)
	assert.Equal(t, 1, a.EarlyOnsetCount)
	// 50 + 30 out of 100
	assert.Equal(t, 80, a.ScorePercent)
	assert.Contains(t, a.Message, "early-onset")

	// Diagnosed at exactly the cutoff is not early onset
	late := member("diagnosed")
	late.DiagnosisAge = intPtr(50)

	a, err = Assess([]entity.FamilyMember{late})
	require.NoError(t, err)
	assert.Equal(t, SeverityModerate, a.Severity)
	assert.Equal(t, 0, a.EarlyOnsetCount)
	assert.Equal(t, 50, a.ScorePercent)
}

func TestAssessSingleDiagnosedIsModerate(t *testing.T) {
	a, err := Assess([]entity.FamilyMember{member("diagnosed"), member("healthy")})
	require.NoError(t, err)

	assert.Equal(t, "Moderate Risk", a.Level)
	assert.Equal(t, SeverityModerate, a.Severity)
	assert.Contains(t, a.Message, "1 diagnosed case")
	// 50 out of 200
	assert.Equal(t, 25, a.ScorePercent)
}

func TestAssessAtRiskTiers(t *testing.T) {
	a, err := Assess([]entity.FamilyMember{member("at_risk"), member("healthy")})
	require.NoError(t, err)
	assert.Equal(t, "Low-Moderate Risk", a.Level)
	assert.Equal(t, SeverityLowModerate, a.Severity)
	assert.Equal(t, 1, a.AtRiskCount)
	// 20 out of 200
	assert.Equal(t, 10, a.ScorePercent)

	a, err = Assess([]entity.FamilyMember{member("at_risk"), member("at_risk")})
	require.NoError(t, err)
	assert.Equal(t, "Moderate Risk", a.Level)
	assert.Equal(t, SeverityModerate, a.Severity)
	assert.Equal(t, 2, a.AtRiskCount)
	assert.Contains(t, a.Message, "2 family member(s) at risk")
}

func TestAssessStatusSpellings(t *testing.T) {
	for _, spelling := range []string{"at_risk", "at-risk", "At Risk"} {
		a, err := Assess([]entity.FamilyMember{member(spelling)})
		require.NoError(t, err)
		assert.Equal(t, 1, a.AtRiskCount, "spelling %q", spelling)
	}
}

func TestAssessUnknownStatusCountsInDenominator(t *testing.T) {
	a, err := Assess([]entity.FamilyMember{member("diagnosed"), member("deceased?")})
	require.NoError(t, err)

	assert.Equal(t, 1, a.DiagnosedCount)
	assert.Equal(t, 0, a.HealthyCount)
	assert.Equal(t, 2, a.TotalMembers)
	// 50 out of 200, the unknown member still dilutes the score
	assert.Equal(t, 25, a.ScorePercent)
}

func TestAssessKeywordDetection(t *testing.T) {
	m := member("healthy")
	m.MedicalNotes = "History of Sickle Cell trait on maternal side"

	a, err := Assess([]entity.FamilyMember{m})
	require.NoError(t, err)
	assert.Equal(t, 1, a.DiagnosedCount, "keyword in notes counts as diagnosed")

	m2 := member("healthy")
	m2.Conditions = entity.StringList{"SCD"}

	a, err = Assess([]entity.FamilyMember{m2})
	require.NoError(t, err)
	assert.Equal(t, 1, a.DiagnosedCount, "keyword in conditions counts as diagnosed")
}

func TestRecommendationsMatchSeverity(t *testing.T) {
	for _, sev := range []Severity{SeverityLow, SeverityLowModerate, SeverityModerate, SeverityCritical} {
		assert.NotEmpty(t, RecommendationsFor(sev), "severity %q", sev)
	}
}
