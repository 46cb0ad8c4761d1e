package scoring

import (
	"testing"

	"github.com/Kcheesee/JApplication-Tracker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkMatch(strength types.MatchStrength, reqType types.RequirementType, confidence float64) types.Match {
	return types.Match{
		Requirement: types.Requirement{
			Text:            "some requirement",
			Category:        types.CategoryDomain,
			RequirementType: reqType,
		},
		Strength:   strength,
		Confidence: confidence,
	}
}

func TestCalculateScore_Empty(t *testing.T) {
	assert.Equal(t, 0.0, CalculateScore(nil))
}

func TestCalculateScore_SingleStrong(t *testing.T) {
	matches := []types.Match{mkMatch(types.StrengthStrong, types.TypeRequired, 1.0)}

	assert.InDelta(t, 1.0, CalculateScore(matches), 0.001)
}

func TestCalculateScore_ConfidenceScales(t *testing.T) {
	matches := []types.Match{mkMatch(types.StrengthStrong, types.TypeRequired, 0.9)}

	assert.InDelta(t, 0.9, CalculateScore(matches), 0.001)
}

func TestCalculateScore_RequiredWeighsDouble(t *testing.T) {
	// One strong required + one gap preferred vs one strong preferred + one
	// gap required: the required variant pulls the average twice as hard.
	requiredStrong := []types.Match{
		mkMatch(types.StrengthStrong, types.TypeRequired, 1.0),
		mkMatch(types.StrengthGap, types.TypePreferred, 1.0),
	}
	preferredStrong := []types.Match{
		mkMatch(types.StrengthStrong, types.TypePreferred, 1.0),
		mkMatch(types.StrengthGap, types.TypeRequired, 1.0),
	}

	assert.InDelta(t, 2.0/3.0, CalculateScore(requiredStrong), 0.001)
	assert.InDelta(t, 1.0/3.0, CalculateScore(preferredStrong), 0.001)
}

func TestCalculateScore_MonotonicInStrength(t *testing.T) {
	tiers := []types.MatchStrength{
		types.StrengthGap,
		types.StrengthWeak,
		types.StrengthPartial,
		types.StrengthMatch,
		types.StrengthStrong,
	}

	base := []types.Match{
		mkMatch(types.StrengthMatch, types.TypeRequired, 0.9),
		mkMatch(types.StrengthPartial, types.TypePreferred, 0.8),
	}

	prev := -1.0
	for _, tier := range tiers {
		matches := append([]types.Match{mkMatch(tier, types.TypeRequired, 0.9)}, base...)
		score := CalculateScore(matches)
		assert.GreaterOrEqual(t, score, prev, "tier %s decreased the score", tier)
		prev = score
	}
}

func TestScoreToLabel_Bands(t *testing.T) {
	assert.Equal(t, "Strong Match", ScoreToLabel(0.85))
	assert.Equal(t, "Strong Match", ScoreToLabel(0.99))
	assert.Equal(t, "Good Match", ScoreToLabel(0.7))
	assert.Equal(t, "Good Match", ScoreToLabel(0.84))
	assert.Equal(t, "Moderate Match", ScoreToLabel(0.5))
	assert.Equal(t, "Weak Match", ScoreToLabel(0.3))
	assert.Equal(t, "Poor Fit", ScoreToLabel(0.29))
	assert.Equal(t, "Poor Fit", ScoreToLabel(0.0))
}

func TestGenerateSuggestions_OrderAndBound(t *testing.T) {
	preferredPartial := mkMatch(types.StrengthPartial, types.TypePreferred, 0.8)
	preferredPartial.Suggestion = "preferred partial"
	requiredPartial := mkMatch(types.StrengthPartial, types.TypeRequired, 0.8)
	requiredPartial.Suggestion = "required partial"
	requiredGap := mkMatch(types.StrengthGap, types.TypeRequired, 0.9)
	requiredGap.Suggestion = "required gap"
	strongNoSuggestion := mkMatch(types.StrengthStrong, types.TypeRequired, 0.9)

	suggestions := generateSuggestions([]types.Match{
		preferredPartial, requiredPartial, strongNoSuggestion, requiredGap,
	})

	assert.Equal(t, []string{"required gap", "required partial", "preferred partial"}, suggestions)
}

func TestGenerateRecommendation_DealbreakerOverridesScore(t *testing.T) {
	rec := generateRecommendation(0.95, []string{"Security clearance required"})

	assert.Contains(t, rec, "CAUTION")
	assert.Contains(t, rec, "Security clearance required")
}

func TestFindMissingKeywords_FirstSeenOrderDeduped(t *testing.T) {
	resume := &types.ResumeData{
		Summary:         "Backend engineer",
		TechnicalSkills: []string{"Python"},
	}
	requirements := []types.Requirement{
		{Keywords: []string{"python", "aws"}},
		{Keywords: []string{"aws", "terraform"}},
	}

	missing := findMissingKeywords(resume, requirements)

	assert.Equal(t, []string{"aws", "terraform"}, missing)
}

func TestAnalyzeFit_StrongCandidate(t *testing.T) {
	five := 5
	resume := &types.ResumeData{
		Name:                 "Sam Candidate",
		TotalYearsExperience: 8,
		TechnicalSkills:      []string{"Python", "FastAPI", "PostgreSQL", "Docker"},
	}
	job := &types.JobPosting{
		Title:   "Backend Engineer",
		Company: "Acme",
		Requirements: []types.Requirement{
			{
				Text:            "5+ years of Python development experience",
				Category:        types.CategoryExperience,
				RequirementType: types.TypeRequired,
				YearsExperience: &five,
				Keywords:        []string{"python"},
			},
			{
				Text:            "FastAPI experience",
				Category:        types.CategoryTechnicalSkills,
				RequirementType: types.TypeRequired,
				Keywords:        []string{"fastapi"},
			},
			{
				Text:            "AWS and Docker",
				Category:        types.CategoryTechnicalSkills,
				RequirementType: types.TypeRequired,
				Keywords:        []string{"aws", "docker"},
			},
		},
	}

	analysis := AnalyzeFit(resume, job)

	assert.GreaterOrEqual(t, analysis.MatchScore, 0.7)
	assert.Contains(t, []string{"Strong Match", "Good Match"}, analysis.MatchLabel)
	assert.True(t, analysis.ShouldApply)
	assert.Equal(t, 2, analysis.StrongMatches)
	assert.Equal(t, 1, analysis.PartialMatches)
	assert.Contains(t, analysis.MissingKeywords, "aws")
}

func TestAnalyzeFit_DealbreakerVetoesApply(t *testing.T) {
	five := 5
	resume := &types.ResumeData{
		TotalYearsExperience: 10,
		TechnicalSkills:      []string{"Python"},
	}
	job := &types.JobPosting{
		Requirements: []types.Requirement{
			{
				Text:            "5+ years Python",
				Category:        types.CategoryExperience,
				RequirementType: types.TypeRequired,
				YearsExperience: &five,
			},
			{
				Text:            "Active security clearance required",
				Category:        types.CategoryLogistics,
				RequirementType: types.TypeRequired,
				IsDealbreaker:   true,
			},
		},
	}

	analysis := AnalyzeFit(resume, job)

	assert.False(t, analysis.ShouldApply)
	require.Len(t, analysis.Dealbreakers, 1)
	assert.Contains(t, analysis.Recommendation, "CAUTION")
}

func TestAnalyzeFit_NoRequirements(t *testing.T) {
	analysis := AnalyzeFit(&types.ResumeData{}, &types.JobPosting{})

	assert.Equal(t, 0.0, analysis.MatchScore)
	assert.False(t, analysis.ShouldApply)
	assert.Equal(t, "Poor Fit", analysis.MatchLabel)
}
