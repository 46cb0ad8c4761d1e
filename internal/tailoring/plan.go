// Package tailoring turns a fit analysis into a prioritized list of
// concrete resume edits and a projected post-edit score.
package tailoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Kcheesee/JApplication-Tracker/internal/types"
)

const (
	maxKeywordsToAdd   = 5
	maxCoverPoints     = 3
	maxScoringActions  = 5
	highPriorityBoost  = 0.05
	otherPriorityBoost = 0.02
)

// BuildPlan derives tailoring actions from the gaps and partial matches of
// an analysis. At most one action is produced per match; matches with no
// applicable rule yield nothing.
func BuildPlan(resume *types.ResumeData, job *types.JobPosting, analysis *types.FitAnalysis) *types.TailoringPlan {
	var actions []types.TailoringAction
	for _, m := range analysis.Matches {
		if m.Strength != types.StrengthGap && m.Strength != types.StrengthPartial && m.Strength != types.StrengthWeak {
			continue
		}
		if action, ok := createAction(m); ok {
			actions = append(actions, action)
		}
	}

	sort.SliceStable(actions, func(i, j int) bool {
		return priorityRank(actions[i].Priority) < priorityRank(actions[j].Priority)
	})

	keywords := analysis.MissingKeywords
	if len(keywords) > maxKeywordsToAdd {
		keywords = keywords[:maxKeywordsToAdd]
	}

	return &types.TailoringPlan{
		JobTitle:          job.Title,
		Company:           job.Company,
		CurrentScore:      analysis.MatchScore,
		ProjectedScore:    projectScore(analysis.MatchScore, actions),
		Actions:           actions,
		KeywordsToAdd:     keywords,
		CoverLetterPoints: coverLetterPoints(analysis),
	}
}

// createAction maps one gap/partial/weak match to its edit rule.
func createAction(m types.Match) (types.TailoringAction, bool) {
	req := m.Requirement

	switch {
	case req.Category == types.CategoryTechnicalSkills && m.Strength == types.StrengthGap:
		return types.TailoringAction{
			ActionType:           "add_skill",
			Section:              "Technical Skills",
			Priority:             types.PriorityHigh,
			Suggestion:           fmt.Sprintf("Add %s to skills if you have any experience", strings.Join(req.Keywords, ", ")),
			AddressesRequirement: req.Text,
		}, true

	case req.Category == types.CategoryExperience && m.Strength == types.StrengthPartial:
		return types.TailoringAction{
			ActionType:           "add_bullet",
			Section:              "Experience",
			Priority:             types.PriorityHigh,
			Suggestion:           fmt.Sprintf("Add a bullet demonstrating: %s", req.Text),
			Example:              bulletExample(req),
			AddressesRequirement: req.Text,
		}, true

	case req.Category == types.CategoryTechnicalSkills && m.Strength == types.StrengthPartial:
		missing := subtract(req.Keywords, m.Evidence)
		if len(missing) == 0 {
			return types.TailoringAction{}, false
		}
		return types.TailoringAction{
			ActionType:           "add_keyword",
			Section:              "Experience bullets",
			Priority:             types.PriorityMedium,
			Suggestion:           fmt.Sprintf("Incorporate these keywords into existing bullets: %s", strings.Join(missing, ", ")),
			AddressesRequirement: req.Text,
		}, true

	case req.Category == types.CategoryEducation && m.Strength == types.StrengthGap:
		return types.TailoringAction{
			ActionType:           "add_skill",
			Section:              "Education",
			Priority:             types.PriorityMedium,
			Suggestion:           "Add education details or relevant certifications",
			AddressesRequirement: req.Text,
		}, true

	case req.Category == types.CategorySoftSkills &&
		(m.Strength == types.StrengthGap || m.Strength == types.StrengthWeak):
		return types.TailoringAction{
			ActionType:           "add_bullet",
			Section:              "Experience",
			Priority:             types.PriorityLow,
			Suggestion:           fmt.Sprintf("Demonstrate '%s' in experience bullets with specific examples", req.Text),
			AddressesRequirement: req.Text,
		}, true
	}

	return types.TailoringAction{}, false
}

// bulletExample builds a templated example bullet from the requirement's
// first two keywords, or a generic placeholder when it has none.
func bulletExample(req types.Requirement) string {
	if len(req.Keywords) > 0 {
		kws := req.Keywords
		if len(kws) > 2 {
			kws = kws[:2]
		}
		return fmt.Sprintf(
			"• [Action verb] + [specific achievement] using %s, resulting in [measurable outcome]",
			strings.Join(kws, " and "))
	}
	return "• [Action verb] + [specific achievement] demonstrating [relevant skill], resulting in [measurable outcome]"
}

// coverLetterPoints covers required requirements whose match is a hard gap.
func coverLetterPoints(analysis *types.FitAnalysis) []string {
	var points []string
	for _, m := range analysis.Matches {
		if m.Strength != types.StrengthGap || m.Requirement.RequirementType != types.TypeRequired {
			continue
		}
		points = append(points, fmt.Sprintf(
			"Address gap in: %s - Explain transferable skills or rapid learning ability",
			m.Requirement.Text))
		if len(points) == maxCoverPoints {
			break
		}
	}
	return points
}

// projectScore estimates the score after edits: high-priority actions are
// worth 0.05 each and the rest 0.02, counting only the first five, capped
// at 1.0.
func projectScore(current float64, actions []types.TailoringAction) float64 {
	improvement := 0.0
	for i, a := range actions {
		if i == maxScoringActions {
			break
		}
		if a.Priority == types.PriorityHigh {
			improvement += highPriorityBoost
		} else {
			improvement += otherPriorityBoost
		}
	}
	projected := current + improvement
	if projected > 1.0 {
		return 1.0
	}
	return projected
}

func priorityRank(p string) int {
	switch p {
	case types.PriorityHigh:
		return 0
	case types.PriorityMedium:
		return 1
	default:
		return 2
	}
}

// subtract returns the elements of all not present in remove, order kept.
func subtract(all, remove []string) []string {
	removed := make(map[string]bool, len(remove))
	for _, s := range remove {
		removed[s] = true
	}
	var out []string
	for _, s := range all {
		if !removed[s] {
			out = append(out, s)
		}
	}
	return out
}
