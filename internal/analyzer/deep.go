// Package analyzer provides the optional LLM-backed deep fit analysis with
// a rule-based fallback. The fallback produces the same DeepAnalysis shape,
// so callers never branch on which path ran.
package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/Kcheesee/JApplication-Tracker/internal/llm"
	"github.com/Kcheesee/JApplication-Tracker/internal/types"
)

// DeepAnalyzer runs LLM-backed fit analysis. A nil client is valid and
// routes every call to the rule-based fallback.
type DeepAnalyzer struct {
	client llm.Client
}

// NewDeepAnalyzer creates an analyzer. client may be nil.
func NewDeepAnalyzer(client llm.Client) *DeepAnalyzer {
	return &DeepAnalyzer{client: client}
}

// AnalyzeDeep performs deep fit analysis of a resume against a job posting.
// When the LLM is unavailable or the call fails, it degrades to the
// rule-based fallback rather than returning an error.
func (a *DeepAnalyzer) AnalyzeDeep(ctx context.Context, resume *types.ResumeData, job *types.JobPosting) *types.DeepAnalysis {
	if a.client == nil {
		return fallbackAnalysis(resume, job)
	}

	prompt := buildAnalysisPrompt(resume, job)

	raw, err := a.client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		log.Printf("[ANALYZER] LLM analysis failed, using fallback: %v", err)
		return fallbackAnalysis(resume, job)
	}

	analysis, err := parseResponse(raw)
	if err != nil {
		log.Printf("[ANALYZER] failed to parse LLM response, using fallback: %v", err)
		return fallbackAnalysis(resume, job)
	}

	return analysis
}

// llmResponse mirrors the JSON shape requested from the model. Scores come
// back on a 0-100 scale and are normalized on parse.
type llmResponse struct {
	OverallScore    float64 `json:"overall_score"`
	ConfidenceScore float64 `json:"confidence_score"`
	FitTier         string  `json:"fit_tier"`

	ExecutiveSummary string `json:"executive_summary"`
	KeyVerdict       string `json:"key_verdict"`

	CategoryScores map[string]int `json:"category_scores"`

	Gaps []struct {
		Category            string   `json:"category"`
		Severity            string   `json:"severity"`
		RequirementText     string   `json:"requirement_text"`
		YourLevel           string   `json:"your_level"`
		RequiredLevel       string   `json:"required_level"`
		GapDescription      string   `json:"gap_description"`
		ImpactOnApplication string   `json:"impact_on_application"`
		BridgingStrategies  []string `json:"bridging_strategies"`
		TimeToBridge        string   `json:"time_to_bridge"`
		TransferableSkills  []string `json:"transferable_skills"`
		TalkingPoints       []string `json:"talking_points"`
	} `json:"gaps"`

	Strengths []struct {
		Category             string   `json:"category"`
		Title                string   `json:"title"`
		Description          string   `json:"description"`
		Evidence             []string `json:"evidence"`
		CompetitiveAdvantage string   `json:"competitive_advantage"`
		HowToLeverage        string   `json:"how_to_leverage"`
	} `json:"strengths"`

	ApplicationStrategy string   `json:"application_strategy"`
	CoverLetterFocus    []string `json:"cover_letter_focus"`
	InterviewPrep       []string `json:"interview_prep"`
	QuestionsToAsk      []string `json:"questions_to_ask"`

	RejectionRisk        string   `json:"rejection_risk"`
	RejectionReasons     []string `json:"rejection_reasons"`
	MitigationStrategies []string `json:"mitigation_strategies"`

	CompetitivePosition string   `json:"competitive_position"`
	Differentiators     []string `json:"differentiators"`
}

func parseResponse(raw string) (*types.DeepAnalysis, error) {
	var resp llmResponse
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse analysis JSON: %w", err)
	}

	gaps := make([]types.DetailedGap, 0, len(resp.Gaps))
	for i, g := range resp.Gaps {
		severity := types.GapSeverity(g.Severity)
		if severity.Validate() != nil {
			severity = types.SeverityModerate
		}
		gaps = append(gaps, types.DetailedGap{
			GapID:               gapID(i),
			Category:            g.Category,
			Severity:            severity,
			RequirementText:     g.RequirementText,
			YourLevel:           orDefault(g.YourLevel, "Not specified"),
			RequiredLevel:       orDefault(g.RequiredLevel, "Not specified"),
			GapDescription:      g.GapDescription,
			ImpactOnApplication: g.ImpactOnApplication,
			BridgingStrategies:  g.BridgingStrategies,
			TimeToBridge:        g.TimeToBridge,
			TransferableSkills:  g.TransferableSkills,
			TalkingPoints:       g.TalkingPoints,
		})
	}

	strengths := make([]types.StrengthHighlight, 0, len(resp.Strengths))
	for i, s := range resp.Strengths {
		strengths = append(strengths, types.StrengthHighlight{
			StrengthID:           strengthID(i),
			Category:             orDefault(s.Category, "general"),
			Title:                s.Title,
			Description:          s.Description,
			Evidence:             s.Evidence,
			CompetitiveAdvantage: s.CompetitiveAdvantage,
			HowToLeverage:        s.HowToLeverage,
		})
	}

	confidence := resp.ConfidenceScore
	if confidence == 0 {
		confidence = 70
	}

	return &types.DeepAnalysis{
		OverallScore:         resp.OverallScore / 100,
		ConfidenceScore:      confidence / 100,
		FitTier:              orDefault(resp.FitTier, "Unknown"),
		ExecutiveSummary:     resp.ExecutiveSummary,
		KeyVerdict:           resp.KeyVerdict,
		Gaps:                 gaps,
		Strengths:            strengths,
		CategoryScores:       resp.CategoryScores,
		ApplicationStrategy:  resp.ApplicationStrategy,
		CoverLetterFocus:     resp.CoverLetterFocus,
		InterviewPrep:        resp.InterviewPrep,
		QuestionsToAsk:       resp.QuestionsToAsk,
		RejectionRisk:        orDefault(resp.RejectionRisk, "Medium"),
		RejectionReasons:     resp.RejectionReasons,
		MitigationStrategies: resp.MitigationStrategies,
		CompetitivePosition:  resp.CompetitivePosition,
		Differentiators:      resp.Differentiators,
	}, nil
}

// gapID derives the ID from list position, so analyses are reproducible and
// the analyzer stays stateless across concurrent calls.
func gapID(index int) string {
	return fmt.Sprintf("gap_%d", index+1)
}

func strengthID(index int) string {
	return fmt.Sprintf("str_%d", index+1)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
