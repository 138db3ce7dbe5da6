package risk

// Static advisory text per severity tier. Each tier carries exactly five
// recommendations, ranked most important first.
var recommendations = map[Severity][]string{
	SeverityCritical: {
		"Schedule a comprehensive cardiac screening within the next 2 weeks",
		"Consult with a genetic counselor for family planning guidance",
		"Begin regular cardiovascular health monitoring (every 3-6 months)",
		"Share your complete family health history with all healthcare providers",
		"Consider genetic testing for all immediate family members",
	},
	SeverityModerate: {
		"Schedule a preventive cardiac screening within the next 3 months",
		"Discuss family history in detail with your primary care physician",
		"Monitor for early warning signs (chest pain, shortness of breath)",
		"Maintain a heart-healthy diet and regular exercise routine",
		"Keep detailed records of family health history",
	},
	SeverityLowModerate: {
		"Schedule annual cardiac checkups",
		"Track and update family health history regularly",
		"Maintain healthy lifestyle habits (diet, exercise, no smoking)",
		"Stay informed about SCD symptoms and warning signs",
		"Consider preventive genetic counseling if planning a family",
	},
	SeverityLow: {
		"Continue with routine annual health checkups",
		"Maintain a healthy lifestyle with balanced diet and exercise",
		"Keep family health history updated in the Sillah app",
		"Stay educated about hereditary health conditions",
		"Monitor any new symptoms and report to your doctor",
	},
}

// RecommendationsFor returns the fixed recommendation list for a severity
func RecommendationsFor(s Severity) []string {
	recs, ok := recommendations[s]
	if !ok {
		recs = recommendations[SeverityLow]
	}
	out := make([]string, len(recs))
	copy(out, recs)
	return out
}
