// Package scoring aggregates per-requirement matches into a single fit
// analysis: an overall score, a label, an apply verdict, and the supporting
// breakdown.
package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Kcheesee/JApplication-Tracker/internal/types"
)

// strengthScores maps each tier to its base contribution before confidence
// and requirement weighting are applied.
var strengthScores = map[types.MatchStrength]float64{
	types.StrengthStrong:  1.0,
	types.StrengthMatch:   0.85,
	types.StrengthPartial: 0.5,
	types.StrengthWeak:    0.25,
	types.StrengthGap:     0.0,
}

const (
	requiredWeight  = 2.0
	preferredWeight = 1.0

	maxSuggestions     = 5
	maxMissingKeywords = 10
)

// CalculateScore returns the weighted average of all match contributions.
// Each contribution is base score times confidence; required requirements
// weigh double. An empty match list scores 0.0 rather than erroring.
func CalculateScore(matches []types.Match) float64 {
	if len(matches) == 0 {
		return 0.0
	}

	var weightedScore, totalWeight float64
	for _, m := range matches {
		weight := preferredWeight
		if m.Requirement.RequirementType == types.TypeRequired {
			weight = requiredWeight
		}
		weightedScore += strengthScores[m.Strength] * m.Confidence * weight
		totalWeight += weight
	}

	if totalWeight == 0 {
		return 0.0
	}
	return weightedScore / totalWeight
}

// ScoreToLabel converts a score to its display band.
func ScoreToLabel(score float64) string {
	switch {
	case score >= 0.85:
		return "Strong Match"
	case score >= 0.7:
		return "Good Match"
	case score >= 0.5:
		return "Moderate Match"
	case score >= 0.3:
		return "Weak Match"
	default:
		return "Poor Fit"
	}
}

// checkDealbreakers returns the texts of dealbreaker requirements whose
// match came back as a gap. Any entry here vetoes the apply recommendation.
func checkDealbreakers(matches []types.Match) []string {
	var dealbreakers []string
	for _, m := range matches {
		if m.Requirement.IsDealbreaker && m.Strength == types.StrengthGap {
			dealbreakers = append(dealbreakers, m.Requirement.Text)
		}
	}
	return dealbreakers
}

// generateSuggestions collects suggestions from gap and partial matches,
// required before preferred and gaps before partials, bounded for display.
func generateSuggestions(matches []types.Match) []string {
	ordered := make([]types.Match, len(matches))
	copy(ordered, matches)

	sort.SliceStable(ordered, func(i, j int) bool {
		iRequired := ordered[i].Requirement.RequirementType == types.TypeRequired
		jRequired := ordered[j].Requirement.RequirementType == types.TypeRequired
		if iRequired != jRequired {
			return iRequired
		}
		iGap := ordered[i].Strength == types.StrengthGap
		jGap := ordered[j].Strength == types.StrengthGap
		if iGap != jGap {
			return iGap
		}
		iPartial := ordered[i].Strength == types.StrengthPartial
		jPartial := ordered[j].Strength == types.StrengthPartial
		if iPartial != jPartial {
			return iPartial
		}
		return false
	})

	var suggestions []string
	for _, m := range ordered {
		if m.Suggestion == "" {
			continue
		}
		if m.Strength != types.StrengthGap && m.Strength != types.StrengthPartial {
			continue
		}
		suggestions = append(suggestions, m.Suggestion)
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// findMissingKeywords scans summary, technical skills, and experience
// bullets for each requirement keyword and returns the absent ones in
// first-seen order, bounded.
func findMissingKeywords(resume *types.ResumeData, requirements []types.Requirement) []string {
	var b strings.Builder
	b.WriteString(resume.Summary)
	b.WriteString(" ")
	b.WriteString(strings.Join(resume.TechnicalSkills, " "))
	b.WriteString(" ")
	for _, exp := range resume.Experiences {
		b.WriteString(strings.Join(exp.Bullets, " "))
		b.WriteString(" ")
	}
	resumeText := strings.ToLower(b.String())

	seen := make(map[string]bool)
	var missing []string
	for _, req := range requirements {
		for _, kw := range req.Keywords {
			if seen[kw] || strings.Contains(resumeText, strings.ToLower(kw)) {
				continue
			}
			seen[kw] = true
			missing = append(missing, kw)
		}
	}

	if len(missing) > maxMissingKeywords {
		missing = missing[:maxMissingKeywords]
	}
	return missing
}

// generateRecommendation picks the message for the score band. Dealbreakers
// override whatever the score says.
func generateRecommendation(score float64, dealbreakers []string) string {
	if len(dealbreakers) > 0 {
		return fmt.Sprintf(
			"CAUTION: Dealbreaker requirements not met: %s. Apply only if you can address these.",
			strings.Join(dealbreakers, ", "))
	}

	switch {
	case score >= 0.85:
		return "STRONG FIT: Your background aligns well. Apply with confidence."
	case score >= 0.7:
		return "GOOD FIT: Solid match with minor gaps. Apply and address gaps in cover letter."
	case score >= 0.5:
		return "MODERATE FIT: You meet core requirements but have notable gaps. Apply if you can make a compelling case for transferable skills."
	case score >= 0.3:
		return "STRETCH: Significant gaps exist. Consider if this is worth your time, or use as a growth target."
	default:
		return "NOT RECOMMENDED: Major misalignment with requirements. Focus energy elsewhere."
	}
}
