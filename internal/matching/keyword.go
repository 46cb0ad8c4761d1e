package matching

import (
	"strings"

	"github.com/Kcheesee/JApplication-Tracker/internal/types"
)

// keywordMatch is the fallback strategy for domain requirements and for
// experience requirements without an explicit year count. It searches the
// widest resume blob and never reports better than match or worse than weak,
// reflecting the low precision of a bare keyword scan.
func keywordMatch(resume *types.ResumeData, req types.Requirement) types.Match {
	text := fullResumeText(resume)

	var found []string
	for _, kw := range req.Keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			found = append(found, kw)
		}
	}

	switch {
	case len(req.Keywords) > 0 && len(found) == len(req.Keywords):
		return types.Match{
			Requirement: req,
			Strength:    types.StrengthMatch,
			Evidence:    req.Keywords,
			Confidence:  0.7,
		}
	case len(found) > 0:
		return types.Match{
			Requirement: req,
			Strength:    types.StrengthPartial,
			Evidence:    found,
			Confidence:  0.6,
		}
	default:
		return types.Match{
			Requirement: req,
			Strength:    types.StrengthWeak,
			Confidence:  0.5,
		}
	}
}
