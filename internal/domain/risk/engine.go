// Package risk computes a patient's hereditary risk assessment from their
// family health tree. The engine is a pure function over family member
// records: no I/O, deterministic, safe for concurrent use.
package risk

import (
	"errors"
	"fmt"
	"math"

	"sillah/internal/domain/entity"
)

// ErrNoFamilyData is returned when there are no family members to assess.
// Callers must surface this as an "insufficient data" state, never as Low
// Risk: an empty tree says nothing about the patient's actual risk.
var ErrNoFamilyData = errors.New("no family history data to assess")

// Severity is the machine key for a risk tier, ordered by increasing severity
type Severity string

const (
	SeverityLow         Severity = "low"
	SeverityLowModerate Severity = "low-moderate"
	SeverityModerate    Severity = "moderate"
	SeverityCritical    Severity = "critical"
)

// earlyOnsetAgeCutoff: a diagnosis strictly before this age counts as early
// onset. A member diagnosed at exactly 50 is NOT early onset.
const earlyOnsetAgeCutoff = 50

// conditionKeywords are the lenient text markers for the tracked hereditary
// condition, matched case-insensitively against status, conditions and notes.
var conditionKeywords = []string{"scd", "sickle cell"}

// Assessment is the derived result of a risk computation. It is computed on
// demand and never persisted.
type Assessment struct {
	Level           string   `json:"level"`
	Severity        Severity `json:"severity"`
	Message         string   `json:"message"`
	ScorePercent    int      `json:"score_percent"`
	Recommendations []string `json:"recommendations"`

	DiagnosedCount  int `json:"diagnosed_count"`
	EarlyOnsetCount int `json:"early_onset_count"`
	AtRiskCount     int `json:"at_risk_count"`
	HealthyCount    int `json:"healthy_count"`
	TotalMembers    int `json:"total_members"`
}

// hasTrackedCondition reports whether the member counts as diagnosed with the
// tracked hereditary condition: a diagnosed status, a structured condition
// entry, or a keyword mention in status/notes.
func hasTrackedCondition(m *entity.FamilyMember) bool {
	if m.IsDiagnosed() {
		return true
	}
	for _, kw := range conditionKeywords {
		if m.MentionsCondition(kw) {
			return true
		}
	}
	return false
}

// Assess computes the risk assessment for a complete list of family members.
// Returns ErrNoFamilyData for an empty list.
func Assess(members []entity.FamilyMember) (*Assessment, error) {
	if len(members) == 0 {
		return nil, ErrNoFamilyData
	}

	var diagnosed, earlyOnset, atRisk, healthy int
	for i := range members {
		m := &members[i]
		switch {
		case hasTrackedCondition(m):
			diagnosed++
			if m.DiagnosisAge != nil && *m.DiagnosisAge < earlyOnsetAgeCutoff {
				earlyOnset++
			}
		case m.Status() == entity.HealthStatusAtRisk:
			atRisk++
		case m.Status() == entity.HealthStatusHealthy:
			healthy++
		}
		// Unrecognized statuses fall in no bucket but still count in the
		// score denominator via len(members).
	}

	a := &Assessment{
		DiagnosedCount:  diagnosed,
		EarlyOnsetCount: earlyOnset,
		AtRiskCount:     atRisk,
		HealthyCount:    healthy,
		TotalMembers:    len(members),
	}

	// Tier priority matters: categories overlap and the first match wins.
	switch {
	case diagnosed >= 2 || earlyOnset >= 1:
		a.Level = "High Risk"
		a.Severity = SeverityCritical
		earlyNote := ""
		if earlyOnset > 0 {
			earlyNote = "Including early-onset cases. "
		}
		a.Message = fmt.Sprintf("%d family member(s) diagnosed with SCD. %sImmediate screening recommended.", diagnosed, earlyNote)
	case diagnosed == 1 || atRisk >= 2:
		a.Level = "Moderate Risk"
		a.Severity = SeverityModerate
		diagnosedNote := ""
		if diagnosed == 1 {
			diagnosedNote = "1 diagnosed case and "
		}
		a.Message = fmt.Sprintf("%s%d family member(s) at risk. Regular monitoring advised.", diagnosedNote, atRisk)
	case atRisk == 1:
		a.Level = "Low-Moderate Risk"
		a.Severity = SeverityLowModerate
		a.Message = "1 family member at risk. Stay vigilant with regular checkups."
	default:
		a.Level = "Low Risk"
		a.Severity = SeverityLow
		a.Message = "No immediate hereditary risk detected. Continue healthy lifestyle habits."
	}

	a.ScorePercent = scorePercent(diagnosed, earlyOnset, atRisk, len(members))
	a.Recommendations = RecommendationsFor(a.Severity)

	return a, nil
}

// scorePercent computes the weighted risk percentage. Early-onset members are
// deliberately counted twice (once as diagnosed, again with the early-onset
// weight) to keep scores compatible with the existing assessments.
func scorePercent(diagnosed, earlyOnset, atRisk, total int) int {
	score := diagnosed*50 + earlyOnset*30 + atRisk*20
	maxScore := total * 100
	pct := int(math.Round(float64(score) / float64(maxScore) * 100))
	if pct > 100 {
		pct = 100
	}
	return pct
}
