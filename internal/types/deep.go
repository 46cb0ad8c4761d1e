package types

// GapSeverity ranks how badly an identified gap hurts an application.
type GapSeverity string

const (
	// SeverityCritical marks a likely auto-reject
	SeverityCritical GapSeverity = "critical"
	// SeveritySignificant marks a major but addressable concern
	SeveritySignificant GapSeverity = "significant"
	// SeverityModerate marks a notable gap that won't reject alone
	SeverityModerate GapSeverity = "moderate"
	// SeverityMinor marks a nice-to-have gap
	SeverityMinor GapSeverity = "minor"
)

// Validate checks that the severity is one of the closed set.
func (s GapSeverity) Validate() error {
	switch s {
	case SeverityCritical, SeveritySignificant, SeverityModerate, SeverityMinor:
		return nil
	}
	return &InvalidEnumError{Field: "severity", Value: string(s)}
}

// DetailedGap is one gap surfaced by deep analysis, with bridging guidance.
// IDs are positional (gap_1, gap_2, ...) within a single analysis.
type DetailedGap struct {
	GapID               string      `json:"gap_id"`
	Category            string      `json:"category"`
	Severity            GapSeverity `json:"severity"`
	RequirementText     string      `json:"requirement_text"`
	YourLevel           string      `json:"your_level"`
	RequiredLevel       string      `json:"required_level"`
	GapDescription      string      `json:"gap_description"`
	ImpactOnApplication string      `json:"impact_on_application"`
	BridgingStrategies  []string    `json:"bridging_strategies,omitempty"`
	TimeToBridge        string      `json:"time_to_bridge,omitempty"`
	TransferableSkills  []string    `json:"transferable_skills,omitempty"`
	TalkingPoints       []string    `json:"talking_points,omitempty"`
}

// StrengthHighlight is one standout strength surfaced by deep analysis.
type StrengthHighlight struct {
	StrengthID           string   `json:"strength_id"`
	Category             string   `json:"category"`
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	Evidence             []string `json:"evidence,omitempty"`
	CompetitiveAdvantage string   `json:"competitive_advantage"`
	HowToLeverage        string   `json:"how_to_leverage"`
}

// DeepAnalysis is the enriched fit analysis produced by the LLM layer, or
// by the rule-based fallback when no LLM is available. Both paths produce
// the same shape so consumers need no branching.
type DeepAnalysis struct {
	OverallScore    float64 `json:"overall_score"`
	ConfidenceScore float64 `json:"confidence_score"`
	FitTier         string  `json:"fit_tier"` // Excellent, Strong, Good, Stretch, Long Shot

	ExecutiveSummary string `json:"executive_summary"`
	KeyVerdict       string `json:"key_verdict"`

	Gaps      []DetailedGap       `json:"gaps,omitempty"`
	Strengths []StrengthHighlight `json:"strengths,omitempty"`

	CategoryScores map[string]int `json:"category_scores,omitempty"`

	ApplicationStrategy string   `json:"application_strategy,omitempty"`
	CoverLetterFocus    []string `json:"cover_letter_focus,omitempty"`
	InterviewPrep       []string `json:"interview_prep,omitempty"`
	QuestionsToAsk      []string `json:"questions_to_ask,omitempty"`

	RejectionRisk        string   `json:"rejection_risk,omitempty"` // Low, Medium, High
	RejectionReasons     []string `json:"rejection_reasons,omitempty"`
	MitigationStrategies []string `json:"mitigation_strategies,omitempty"`

	CompetitivePosition string   `json:"competitive_position,omitempty"`
	Differentiators     []string `json:"differentiators,omitempty"`
}
