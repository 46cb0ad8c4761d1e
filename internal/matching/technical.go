package matching

import (
	"fmt"
	"strings"

	"github.com/Kcheesee/JApplication-Tracker/internal/types"
)

// matchTechnical searches each requirement keyword against the resume's
// skill strings and, failing that, the summary/bullets/projects narrative.
// Keywords match by substring containment, so "java" is satisfied by a
// "JavaScript" skill entry. That is a known false-positive source kept for
// predictability; fixing it would need word-boundary matching everywhere.
func matchTechnical(resume *types.ResumeData, req types.Requirement) types.Match {
	skills := make([]string, len(resume.TechnicalSkills))
	for i, s := range resume.TechnicalSkills {
		skills[i] = strings.ToLower(s)
	}
	narrative := narrativeText(resume)

	var matched []string
	for _, kw := range req.Keywords {
		kwLower := strings.ToLower(kw)
		if inAnySkill(kwLower, skills) || strings.Contains(narrative, kwLower) {
			matched = append(matched, kw)
		}
	}

	switch {
	case len(req.Keywords) > 0 && len(matched) == len(req.Keywords):
		return types.Match{
			Requirement: req,
			Strength:    types.StrengthStrong,
			Evidence:    matched,
			Explanation: fmt.Sprintf("All keywords found: %s", strings.Join(matched, ", ")),
			Confidence:  0.9,
		}
	case len(matched) > 0:
		missing := missingKeywords(req.Keywords, matched)
		return types.Match{
			Requirement: req,
			Strength:    types.StrengthPartial,
			Evidence:    matched,
			Explanation: fmt.Sprintf("Partial match: found %s, missing %s",
				strings.Join(matched, ", "), strings.Join(missing, ", ")),
			Suggestion: fmt.Sprintf("Add %s to skills section if you have this experience",
				strings.Join(missing, ", ")),
			Confidence: 0.8,
		}
	default:
		return types.Match{
			Requirement: req,
			Strength:    types.StrengthGap,
			Explanation: fmt.Sprintf("Keywords not found: %s", strings.Join(req.Keywords, ", ")),
			Suggestion:  "Consider adding relevant experience or noting transferable skills",
			Confidence:  0.85,
		}
	}
}

func inAnySkill(keyword string, skillsLower []string) bool {
	for _, skill := range skillsLower {
		if strings.Contains(skill, keyword) {
			return true
		}
	}
	return false
}

// missingKeywords returns the keywords not present in matched, preserving
// requirement order.
func missingKeywords(keywords, matched []string) []string {
	seen := make(map[string]bool, len(matched))
	for _, kw := range matched {
		seen[kw] = true
	}
	var missing []string
	for _, kw := range keywords {
		if !seen[kw] {
			missing = append(missing, kw)
		}
	}
	return missing
}
