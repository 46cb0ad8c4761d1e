package scoring

import (
	"github.com/Kcheesee/JApplication-Tracker/internal/matching"
	"github.com/Kcheesee/JApplication-Tracker/internal/types"
)

// shouldApplyThreshold is the minimum score for an apply recommendation.
const shouldApplyThreshold = 0.5

// AnalyzeFit matches every requirement of the posting against the resume
// and aggregates the verdicts into a FitAnalysis. It always produces a
// best-effort result; missing resume fields degrade individual matches, not
// the analysis itself.
func AnalyzeFit(resume *types.ResumeData, job *types.JobPosting) *types.FitAnalysis {
	matches := matching.MatchAll(resume, job.Requirements)

	score := CalculateScore(matches)
	dealbreakers := checkDealbreakers(matches)

	var strong, matchCount, partial, gaps int
	for _, m := range matches {
		switch m.Strength {
		case types.StrengthStrong:
			strong++
		case types.StrengthMatch:
			matchCount++
		case types.StrengthPartial:
			partial++
		case types.StrengthGap:
			gaps++
		}
	}

	return &types.FitAnalysis{
		MatchScore:      score,
		MatchLabel:      ScoreToLabel(score),
		ShouldApply:     score >= shouldApplyThreshold && len(dealbreakers) == 0,
		Recommendation:  generateRecommendation(score, dealbreakers),
		Matches:         matches,
		StrongMatches:   strong,
		MatchCount:      matchCount,
		PartialMatches:  partial,
		Gaps:            gaps,
		Dealbreakers:    dealbreakers,
		TopSuggestions:  generateSuggestions(matches),
		MissingKeywords: findMissingKeywords(resume, job.Requirements),
	}
}
