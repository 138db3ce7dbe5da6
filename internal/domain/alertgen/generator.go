// Package alertgen derives health alerts from a user's family history and
// personal health records. The generator is a pure rule evaluator: the
// already-issued categories are an explicit input and persistence is left to
// the caller, so the rules can be tested without a database.
package alertgen

import (
	"strings"

	"sillah/internal/domain/entity"

	"github.com/google/uuid"
)

// stats holds the counts every rule condition is expressed against,
// computed once per run.
type stats struct {
	totalMembers     int
	atRiskMembers    int
	diagnosedMembers int
	chronicRecords   int
	conditions       []string // distinct condition names, first-seen order
	members          []entity.FamilyMember
}

func collect(members []entity.FamilyMember, records []entity.PersonalHealthRecord) *stats {
	s := &stats{
		totalMembers: len(members),
		members:      members,
	}

	seen := make(map[string]struct{})
	for i := range members {
		m := &members[i]
		if m.Status() == entity.HealthStatusAtRisk {
			s.atRiskMembers++
		}
		// "Diagnosed" for alerting purposes: explicit diagnosed status or at
		// least one recorded condition.
		if m.IsDiagnosed() || m.HasKnownConditions() {
			s.diagnosedMembers++
		}
		for _, c := range m.Conditions {
			key := strings.ToLower(strings.TrimSpace(c))
			if key == "" {
				continue
			}
			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				s.conditions = append(s.conditions, strings.TrimSpace(c))
			}
		}
	}

	for i := range records {
		if records[i].IsChronic {
			s.chronicRecords++
		}
	}

	return s
}

// anyWithCondition reports whether any family member has the named condition
func (s *stats) anyWithCondition(name string) bool {
	for i := range s.members {
		if s.members[i].HasCondition(name) {
			return true
		}
	}
	return false
}

// Generate evaluates every alert rule against the user's data and returns the
// alerts to insert, in rule order. Categories already present in existing are
// skipped, which makes the generator idempotent: feeding the produced
// categories back in yields an empty result. Empty or nil inputs are valid;
// every rule simply evaluates against zero counts.
func Generate(userID uuid.UUID, members []entity.FamilyMember, records []entity.PersonalHealthRecord, existing map[string]struct{}) []entity.Alert {
	s := collect(members, records)

	var alerts []entity.Alert
	for _, r := range rules {
		if _, ok := existing[r.alertType]; ok {
			continue
		}
		if !r.when(s) {
			continue
		}
		alert := r.build(s)
		alert.UserID = userID
		alert.AlertType = r.alertType
		alerts = append(alerts, alert)
	}

	return alerts
}

// Categories returns the set of alert types present in the given alerts,
// in the shape Generate expects for its existing parameter.
func Categories(alerts []entity.Alert) map[string]struct{} {
	set := make(map[string]struct{}, len(alerts))
	for i := range alerts {
		set[alerts[i].AlertType] = struct{}{}
	}
	return set
}
