package intake

// Question pairs a stable narrative question ID with its display label.
type Question struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var abbrevQuestions = []Question{
	{ID: "aq1", Label: "Case Summary"},
	{ID: "aq2", Label: "SNF Team Discharge Timing"},
	{ID: "aq3", Label: "Requirements for Safe Discharge"},
	{ID: "aq4", Label: "Estimated Discharge Date"},
	{ID: "aq5", Label: "Alignment Across Stakeholders"},
	{ID: "aq6", Label: "SNF Discharge Conditions"},
	{ID: "aq7", Label: "HHA Involvement"},
	{ID: "aq8", Label: "Information Shared with HHA"},
}

var generalQuestions = []Question{
	{ID: "gq1", Label: "Case Summary"},
	{ID: "gq2", Label: "SNF Team Timing"},
	{ID: "gq3", Label: "Requirements for Safe Next Step"},
	{ID: "gq4", Label: "Estimated Timing for Leaving SNF"},
	{ID: "gq5", Label: "Alignment Across Stakeholders"},
	{ID: "gq6", Label: "SNF Conditions for Transition"},
	{ID: "gq7", Label: "Outcome"},
	{ID: "gq8", Label: "Early Signs"},
	{ID: "gq9", Label: "Learning"},
}

var fullQuestions = []Question{
	{ID: "q6", Label: "Case Summary"},
	{ID: "q7", Label: "Referral Source and Expectation"},
	{ID: "q8", Label: "Upstream Path to SNF"},
	{ID: "q9", Label: "Expected Length of Stay at Admission"},
	{ID: "q10", Label: "Initial Assessment"},
	{ID: "q11", Label: "Early Home Feasibility"},
	{ID: "q12", Label: "Key SNF Roles and People"},
	{ID: "q13", Label: "Patient Response"},
	{ID: "q14", Label: "Patient/Family Goals"},
	{ID: "q15", Label: "SNF Discharge Timing Over Time"},
	{ID: "q16", Label: "Requirements for Safe Discharge"},
	{ID: "q17", Label: "Services Discussion and Agreement"},
	{ID: "q18", Label: "HHA Involvement and Handoff"},
	{ID: "q19", Label: "Information Shared with HHA"},
	{ID: "q20", Label: "Estimated Discharge Date and Reasoning"},
	{ID: "q21", Label: "Alignment Across Stakeholders"},
	{ID: "q22", Label: "SNF Discharge Conditions"},
	{ID: "q23", Label: "Plan for First 24-48 Hours"},
	{ID: "q25", Label: "Transition SNF to Home Overall"},
	{ID: "q26", Label: "Handoff Completion and Gaps"},
	{ID: "q27", Label: "24-Hour Follow-up Contact"},
	{ID: "q28", Label: "Initial At-Home Status"},
}

var catalogs = map[FormKind][]Question{
	KindAbbreviated:        abbrevQuestions,
	KindAbbreviatedGeneral: generalQuestions,
	KindFull:               fullQuestions,
}

// Questions returns the ordered narrative question set for a form kind.
// Follow-on kinds resolve to their base catalog.
func Questions(kind FormKind) []Question {
	return catalogs[kind.Base()]
}

// Label resolves a question ID to its display label within a form kind.
// Returns the ID itself when unknown so renderers never drop a question.
func Label(kind FormKind, id string) string {
	for _, q := range Questions(kind) {
		if q.ID == id {
			return q.Label
		}
	}
	return id
}

var defaultSections = map[string]string{
	"A": "Reasoning Trace",
	"B": "Discharge Timing Dynamics",
	"C": "SNF Patient State Transitions, Incentives, and Navigator Time Allocation",
}

var generalSections = map[string]string{
	"A": "Reasoning Trace",
	"B": "Early Warning Signals (LT vs Hospital)",
	"C": "Decision Points & Triggers",
}

// SectionTitle returns the display title for a follow-up question section
// letter under the given form kind.
func SectionTitle(kind FormKind, letter string) string {
	if kind.Base() == KindAbbreviatedGeneral {
		if title, ok := generalSections[letter]; ok {
			return title
		}
	}
	if title, ok := defaultSections[letter]; ok {
		return title
	}
	return letter
}
