package types

// Action priorities, ordered high to low.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// TailoringAction is one concrete, prioritized suggested resume edit
// addressing a specific gap or partial match.
type TailoringAction struct {
	ActionType string `json:"action_type"` // add_bullet, add_skill, add_keyword
	Section    string `json:"section"`
	Priority   string `json:"priority"` // high, medium, low
	Suggestion string `json:"suggestion"`

	// Example holds templated example text where applicable.
	Example string `json:"example,omitempty"`

	// AddressesRequirement names the requirement text this action helps with.
	AddressesRequirement string `json:"addresses_requirement,omitempty"`
}

// TailoringPlan is the complete set of suggested edits for one job,
// derived from a FitAnalysis.
type TailoringPlan struct {
	JobTitle string `json:"job_title"`
	Company  string `json:"company"`

	CurrentScore   float64 `json:"current_score"`
	ProjectedScore float64 `json:"projected_score"`

	Actions []TailoringAction `json:"actions"`

	KeywordsToAdd []string `json:"keywords_to_add,omitempty"`

	CoverLetterPoints []string `json:"cover_letter_points,omitempty"`
}
