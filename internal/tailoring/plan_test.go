package tailoring

import (
	"testing"

	"github.com/Kcheesee/JApplication-Tracker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gapMatch(category types.RequirementCategory, reqType types.RequirementType, keywords ...string) types.Match {
	return types.Match{
		Requirement: types.Requirement{
			Text:            "requirement text",
			Category:        category,
			RequirementType: reqType,
			Keywords:        keywords,
		},
		Strength: types.StrengthGap,
	}
}

func TestBuildPlan_TechnicalGapBecomesHighPrioritySkillAdd(t *testing.T) {
	analysis := &types.FitAnalysis{
		MatchScore: 0.6,
		Matches:    []types.Match{gapMatch(types.CategoryTechnicalSkills, types.TypeRequired, "aws", "terraform")},
	}

	plan := BuildPlan(&types.ResumeData{}, &types.JobPosting{Title: "SRE", Company: "Acme"}, analysis)

	require.Len(t, plan.Actions, 1)
	action := plan.Actions[0]
	assert.Equal(t, "add_skill", action.ActionType)
	assert.Equal(t, "Technical Skills", action.Section)
	assert.Equal(t, types.PriorityHigh, action.Priority)
	assert.Contains(t, action.Suggestion, "aws, terraform")
}

func TestBuildPlan_ExperiencePartialGetsExampleBullet(t *testing.T) {
	m := types.Match{
		Requirement: types.Requirement{
			Text:            "5+ years building APIs",
			Category:        types.CategoryExperience,
			RequirementType: types.TypeRequired,
			Keywords:        []string{"api", "rest", "grpc"},
		},
		Strength: types.StrengthPartial,
	}
	analysis := &types.FitAnalysis{MatchScore: 0.5, Matches: []types.Match{m}}

	plan := BuildPlan(&types.ResumeData{}, &types.JobPosting{}, analysis)

	require.Len(t, plan.Actions, 1)
	assert.Equal(t, "add_bullet", plan.Actions[0].ActionType)
	// Example uses only the first two keywords.
	assert.Contains(t, plan.Actions[0].Example, "api and rest")
	assert.NotContains(t, plan.Actions[0].Example, "grpc")
}

func TestBuildPlan_TechnicalPartialIncorporatesMissingKeywords(t *testing.T) {
	m := types.Match{
		Requirement: types.Requirement{
			Text:     "AWS and Docker",
			Category: types.CategoryTechnicalSkills,
			Keywords: []string{"aws", "docker"},
		},
		Strength: types.StrengthPartial,
		Evidence: []string{"docker"},
	}
	analysis := &types.FitAnalysis{Matches: []types.Match{m}}

	plan := BuildPlan(&types.ResumeData{}, &types.JobPosting{}, analysis)

	require.Len(t, plan.Actions, 1)
	assert.Equal(t, "add_keyword", plan.Actions[0].ActionType)
	assert.Equal(t, types.PriorityMedium, plan.Actions[0].Priority)
	assert.Contains(t, plan.Actions[0].Suggestion, "aws")
	assert.NotContains(t, plan.Actions[0].Suggestion, "docker")
}

func TestBuildPlan_SoftSkillWeakIsLowPriority(t *testing.T) {
	m := types.Match{
		Requirement: types.Requirement{
			Text:     "Strong presentation skills",
			Category: types.CategorySoftSkills,
		},
		Strength: types.StrengthWeak,
	}
	analysis := &types.FitAnalysis{Matches: []types.Match{m}}

	plan := BuildPlan(&types.ResumeData{}, &types.JobPosting{}, analysis)

	require.Len(t, plan.Actions, 1)
	assert.Equal(t, types.PriorityLow, plan.Actions[0].Priority)
}

func TestBuildPlan_ActionsSortedByPriority(t *testing.T) {
	analysis := &types.FitAnalysis{
		Matches: []types.Match{
			{
				Requirement: types.Requirement{Text: "soft", Category: types.CategorySoftSkills},
				Strength:    types.StrengthWeak,
			},
			gapMatch(types.CategoryEducation, types.TypeRequired),
			gapMatch(types.CategoryTechnicalSkills, types.TypeRequired, "go"),
		},
	}

	plan := BuildPlan(&types.ResumeData{}, &types.JobPosting{}, analysis)

	require.Len(t, plan.Actions, 3)
	assert.Equal(t, types.PriorityHigh, plan.Actions[0].Priority)
	assert.Equal(t, types.PriorityMedium, plan.Actions[1].Priority)
	assert.Equal(t, types.PriorityLow, plan.Actions[2].Priority)
}

func TestBuildPlan_CoverPointsOnlyForRequiredGaps(t *testing.T) {
	analysis := &types.FitAnalysis{
		Matches: []types.Match{
			gapMatch(types.CategoryTechnicalSkills, types.TypeRequired, "rust"),
			gapMatch(types.CategoryTechnicalSkills, types.TypePreferred, "scala"),
		},
	}

	plan := BuildPlan(&types.ResumeData{}, &types.JobPosting{}, analysis)

	require.Len(t, plan.CoverLetterPoints, 1)
	assert.Contains(t, plan.CoverLetterPoints[0], "Address gap in")
}

func TestBuildPlan_CoverPointsBoundedToThree(t *testing.T) {
	analysis := &types.FitAnalysis{
		Matches: []types.Match{
			gapMatch(types.CategoryTechnicalSkills, types.TypeRequired, "a"),
			gapMatch(types.CategoryTechnicalSkills, types.TypeRequired, "b"),
			gapMatch(types.CategoryTechnicalSkills, types.TypeRequired, "c"),
			gapMatch(types.CategoryTechnicalSkills, types.TypeRequired, "d"),
		},
	}

	plan := BuildPlan(&types.ResumeData{}, &types.JobPosting{}, analysis)

	assert.Len(t, plan.CoverLetterPoints, 3)
}

func TestProjectScore_HighAndOtherBoosts(t *testing.T) {
	actions := []types.TailoringAction{
		{Priority: types.PriorityHigh},
		{Priority: types.PriorityMedium},
		{Priority: types.PriorityLow},
	}

	assert.InDelta(t, 0.5+0.05+0.02+0.02, projectScore(0.5, actions), 0.001)
}

func TestProjectScore_OnlyFirstFiveActionsCount(t *testing.T) {
	actions := make([]types.TailoringAction, 8)
	for i := range actions {
		actions[i] = types.TailoringAction{Priority: types.PriorityHigh}
	}

	assert.InDelta(t, 0.5+5*0.05, projectScore(0.5, actions), 0.001)
}

func TestProjectScore_CappedAtOne(t *testing.T) {
	actions := []types.TailoringAction{
		{Priority: types.PriorityHigh},
		{Priority: types.PriorityHigh},
	}

	assert.Equal(t, 1.0, projectScore(0.95, actions))
}

func TestBuildPlan_KeywordsToAddBounded(t *testing.T) {
	analysis := &types.FitAnalysis{
		MissingKeywords: []string{"a", "b", "c", "d", "e", "f", "g"},
	}

	plan := BuildPlan(&types.ResumeData{}, &types.JobPosting{}, analysis)

	assert.Len(t, plan.KeywordsToAdd, 5)
}

func TestBuildPlan_NoActionsForStrongAnalysis(t *testing.T) {
	analysis := &types.FitAnalysis{
		MatchScore: 0.9,
		Matches: []types.Match{
			{Requirement: types.Requirement{Category: types.CategoryTechnicalSkills}, Strength: types.StrengthStrong},
		},
	}

	plan := BuildPlan(&types.ResumeData{}, &types.JobPosting{}, analysis)

	assert.Empty(t, plan.Actions)
	assert.Equal(t, analysis.MatchScore, plan.ProjectedScore)
}
