package matching

import (
	"strings"

	"github.com/Kcheesee/JApplication-Tracker/internal/types"
)

// matchSoftSkills prefers evidence of the skill demonstrated in experience
// bullets over a bare mention in the soft-skill list. Bullets give a match
// at higher confidence, a listed skill still matches at lower confidence,
// and an unmentioned skill is weak, never a hard gap.
func matchSoftSkills(resume *types.ResumeData, req types.Requirement) types.Match {
	keywordsLower := make([]string, len(req.Keywords))
	for i, kw := range req.Keywords {
		keywordsLower[i] = strings.ToLower(kw)
	}

	var listed []string
	for _, skill := range resume.SoftSkills {
		skillLower := strings.ToLower(skill)
		for _, kw := range keywordsLower {
			if strings.Contains(skillLower, kw) {
				listed = append(listed, skillLower)
				break
			}
		}
	}

	bullets := bulletsText(resume)
	inBullets := false
	for _, kw := range keywordsLower {
		if strings.Contains(bullets, kw) {
			inBullets = true
			break
		}
	}

	switch {
	case inBullets:
		evidence := listed
		if len(evidence) == 0 {
			evidence = []string{"Demonstrated in experience"}
		}
		return types.Match{
			Requirement: req,
			Strength:    types.StrengthMatch,
			Evidence:    evidence,
			Explanation: "Soft skill evidenced in experience",
			Confidence:  0.75,
		}
	case len(listed) > 0:
		return types.Match{
			Requirement: req,
			Strength:    types.StrengthMatch,
			Evidence:    listed,
			Confidence:  0.7,
		}
	default:
		return types.Match{
			Requirement: req,
			Strength:    types.StrengthWeak,
			Explanation: "Soft skill not explicitly mentioned",
			Suggestion:  "Demonstrate this skill in experience bullets",
			Confidence:  0.6,
		}
	}
}
