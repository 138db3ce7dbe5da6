package alertgen

import (
	"testing"

	"sillah/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alertTypes(alerts []entity.Alert) []string {
	types := make([]string, 0, len(alerts))
	for i := range alerts {
		types = append(types, alerts[i].AlertType)
	}
	return types
}

func TestGenerateNewUserNoData(t *testing.T) {
	userID := uuid.New()

	alerts := Generate(userID, nil, nil, nil)

	assert.Equal(t, []string{
		entity.AlertTypeAddFamilyMembers,
		entity.AlertTypeAnnualCheckup,
		entity.AlertTypeWelcome,
	}, alertTypes(alerts))

	for i := range alerts {
		assert.Equal(t, userID, alerts[i].UserID)
		assert.NotEmpty(t, alerts[i].Title)
		assert.NotEmpty(t, alerts[i].Message)
		assert.NotEmpty(t, alerts[i].Priority)
	}
}

func TestGenerateDiagnosedFamily(t *testing.T) {
	members := []entity.FamilyMember{
		{FullName: "Father", HealthStatus: "diagnosed", Conditions: entity.StringList{"Type 2 Diabetes"}},
	}

	alerts := Generate(uuid.New(), members, nil, nil)
	types := alertTypes(alerts)

	assert.Contains(t, types, entity.AlertTypeFamilyDiagnosed)
	assert.Contains(t, types, entity.AlertTypeDiabetesRisk)
	assert.Contains(t, types, entity.AlertTypeAddFamilyMembers)
	assert.Contains(t, types, entity.AlertTypeAnnualCheckup)
	assert.NotContains(t, types, entity.AlertTypeWelcome)
	assert.NotContains(t, types, entity.AlertTypeGeneticCounseling)

	for i := range alerts {
		if alerts[i].AlertType == entity.AlertTypeFamilyDiagnosed {
			assert.Contains(t, alerts[i].Message, "Type 2 Diabetes")
		}
	}
}

func TestGenerateMultipleAtRisk(t *testing.T) {
	members := []entity.FamilyMember{
		{FullName: "Mother", HealthStatus: "at_risk"},
		{FullName: "Brother", HealthStatus: "at_risk"},
		{FullName: "Sister", HealthStatus: "healthy"},
	}

	types := alertTypes(Generate(uuid.New(), members, nil, nil))

	assert.Contains(t, types, entity.AlertTypeHighRiskFamily)
	assert.Contains(t, types, entity.AlertTypeScreeningRecommended)
	assert.Contains(t, types, entity.AlertTypeLifestyleTips)
	// three members on record, the tree is considered complete enough
	assert.NotContains(t, types, entity.AlertTypeAddFamilyMembers)
}

func TestGenerateGeneticCounseling(t *testing.T) {
	members := []entity.FamilyMember{
		{FullName: "Father", HealthStatus: "diagnosed"},
		{FullName: "Uncle", Conditions: entity.StringList{"Hypertension (High Blood Pressure)"}},
	}

	types := alertTypes(Generate(uuid.New(), members, nil, nil))

	assert.Contains(t, types, entity.AlertTypeGeneticCounseling)
	assert.Contains(t, types, entity.AlertTypeHypertensionRisk)
}

func TestGenerateChronicRecord(t *testing.T) {
	records := []entity.PersonalHealthRecord{
		{RecordType: entity.RecordTypeDiagnosis, IsChronic: true},
		{RecordType: entity.RecordTypeNote, IsChronic: false},
	}

	alerts := Generate(uuid.New(), nil, records, nil)
	types := alertTypes(alerts)

	assert.Contains(t, types, entity.AlertTypeMedicationReminder)
	for i := range alerts {
		if alerts[i].AlertType == entity.AlertTypeMedicationReminder {
			assert.Contains(t, alerts[i].Message, "1 chronic condition(s)")
		}
	}
}

func TestGenerateConditionRules(t *testing.T) {
	members := []entity.FamilyMember{
		{FullName: "Father", Conditions: entity.StringList{"High Cholesterol"}},
		{FullName: "Mother", MedicalNotes: "Diagnosed with hypertension (high blood pressure) in 2019"},
	}

	types := alertTypes(Generate(uuid.New(), members, nil, nil))

	assert.Contains(t, types, entity.AlertTypeCholesterolRisk)
	assert.Contains(t, types, entity.AlertTypeHypertensionRisk)
	assert.NotContains(t, types, entity.AlertTypeDiabetesRisk)
}

func TestGenerateSkipsExistingCategories(t *testing.T) {
	existing := map[string]struct{}{
		entity.AlertTypeAnnualCheckup: {},
		entity.AlertTypeWelcome:       {},
	}

	types := alertTypes(Generate(uuid.New(), nil, nil, existing))

	assert.Equal(t, []string{entity.AlertTypeAddFamilyMembers}, types)
}

func TestGenerateIsIdempotent(t *testing.T) {
	members := []entity.FamilyMember{
		{FullName: "Father", HealthStatus: "diagnosed", Conditions: entity.StringList{"High Cholesterol"}},
		{FullName: "Mother", HealthStatus: "at_risk"},
	}
	records := []entity.PersonalHealthRecord{{IsChronic: true}}
	userID := uuid.New()

	first := Generate(userID, members, records, nil)
	require.NotEmpty(t, first)

	second := Generate(userID, members, records, Categories(first))
	assert.Empty(t, second)
}

func TestCategories(t *testing.T) {
	alerts := []entity.Alert{
		{AlertType: entity.AlertTypeWelcome},
		{AlertType: entity.AlertTypeAnnualCheckup},
		{AlertType: entity.AlertTypeWelcome},
	}

	set := Categories(alerts)
	assert.Len(t, set, 2)
	assert.Contains(t, set, entity.AlertTypeWelcome)
	assert.Contains(t, set, entity.AlertTypeAnnualCheckup)
}
