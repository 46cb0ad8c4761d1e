package types

// MatchStrength is the ordered tier assigned to a single requirement match.
type MatchStrength string

const (
	// StrengthStrong means the resume clearly meets or exceeds the requirement
	StrengthStrong MatchStrength = "strong"
	// StrengthMatch means the requirement is met
	StrengthMatch MatchStrength = "match"
	// StrengthPartial means the requirement is partially met
	StrengthPartial MatchStrength = "partial"
	// StrengthWeak means the resume is only tangentially related
	StrengthWeak MatchStrength = "weak"
	// StrengthGap means the requirement is not met
	StrengthGap MatchStrength = "gap"
)

// strengthRank orders tiers from gap (0) to strong (4) for comparisons.
var strengthRank = map[MatchStrength]int{
	StrengthGap:     0,
	StrengthWeak:    1,
	StrengthPartial: 2,
	StrengthMatch:   3,
	StrengthStrong:  4,
}

// Validate checks that the strength is one of the closed set.
func (s MatchStrength) Validate() error {
	if _, ok := strengthRank[s]; !ok {
		return &InvalidEnumError{Field: "strength", Value: string(s)}
	}
	return nil
}

// Rank returns the tier's position in the gap-to-strong ordering.
func (s MatchStrength) Rank() int {
	return strengthRank[s]
}

// Match is the matcher's verdict for one requirement against one resume.
// Matches live only inside a FitAnalysis snapshot; they are never stored
// as standalone entities.
type Match struct {
	Requirement Requirement   `json:"requirement"`
	Strength    MatchStrength `json:"strength"`

	// Evidence holds literal resume strings supporting the match.
	Evidence []string `json:"evidence,omitempty"`

	Explanation string `json:"explanation,omitempty"`

	// Suggestion is set for partial and gap matches that have a concrete fix.
	Suggestion string `json:"suggestion,omitempty"`

	// Confidence reflects how mechanically verifiable this category is.
	Confidence float64 `json:"confidence"`
}

// FitAnalysis is the aggregate result of analyzing one resume against one
// job posting. It is immutable once computed; downstream consumers only read it.
type FitAnalysis struct {
	MatchScore float64 `json:"match_score"`
	MatchLabel string  `json:"match_label"`

	ShouldApply    bool   `json:"should_apply"`
	Recommendation string `json:"recommendation"`

	Matches []Match `json:"matches"`

	StrongMatches  int `json:"strong_matches"`
	MatchCount     int `json:"matches_count"`
	PartialMatches int `json:"partial_matches"`
	Gaps           int `json:"gaps"`

	// Dealbreakers lists the texts of dealbreaker requirements whose match is a gap.
	Dealbreakers []string `json:"dealbreakers,omitempty"`

	TopSuggestions  []string `json:"top_suggestions,omitempty"`
	MissingKeywords []string `json:"missing_keywords,omitempty"`
}
