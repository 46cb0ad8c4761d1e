package matching

import (
	"fmt"

	"github.com/Kcheesee/JApplication-Tracker/internal/types"
)

// matchExperience compares explicit year counts when the requirement carries
// one. Meeting the count by a margin of 2+ years is strong, meeting it is a
// match, falling one year short is partial, anything further is a gap. A
// requirement without a year count falls back to keyword matching.
func matchExperience(resume *types.ResumeData, req types.Requirement) types.Match {
	if req.YearsExperience == nil {
		return keywordMatch(resume, req)
	}

	have := resume.TotalYearsExperience
	want := *req.YearsExperience

	switch {
	case have >= want:
		strength := types.StrengthMatch
		if have >= want+2 {
			strength = types.StrengthStrong
		}
		return types.Match{
			Requirement: req,
			Strength:    strength,
			Evidence:    []string{fmt.Sprintf("%d years of experience", have)},
			Explanation: fmt.Sprintf("Resume shows %d years, requirement is %d+", have, want),
			Confidence:  0.95,
		}
	case have >= want-1:
		return types.Match{
			Requirement: req,
			Strength:    types.StrengthPartial,
			Evidence:    []string{fmt.Sprintf("%d years of experience", have)},
			Explanation: fmt.Sprintf("Slightly under requirement (%d vs %d+)", have, want),
			Suggestion:  "Emphasize depth of experience and accelerated growth",
			Confidence:  0.85,
		}
	default:
		return types.Match{
			Requirement: req,
			Strength:    types.StrengthGap,
			Explanation: fmt.Sprintf("Gap: %d years vs %d+ required", have, want),
			Suggestion:  "Address in cover letter if applying - focus on quality over quantity",
			Confidence:  0.9,
		}
	}
}
