// Package matching computes per-requirement match verdicts against a
// structured resume. Each category has its own strategy; everything is
// literal, case-insensitive substring matching over resume text, so a
// verdict is always produced and never an error.
package matching

import "github.com/Kcheesee/JApplication-Tracker/internal/types"

// MatchRequirement dispatches to the category strategy and returns the
// verdict for one requirement. The category enum is closed and validated at
// construction, so the switch covers every value; the default arm only
// guards against values that bypassed validation and treats them like
// domain requirements.
func MatchRequirement(resume *types.ResumeData, req types.Requirement) types.Match {
	switch req.Category {
	case types.CategoryExperience:
		return matchExperience(resume, req)
	case types.CategoryTechnicalSkills:
		return matchTechnical(resume, req)
	case types.CategoryEducation:
		return matchEducation(resume, req)
	case types.CategorySoftSkills:
		return matchSoftSkills(resume, req)
	case types.CategoryLogistics:
		return matchLogistics(resume, req)
	case types.CategoryDomain:
		return keywordMatch(resume, req)
	default:
		return keywordMatch(resume, req)
	}
}

// MatchAll returns one verdict per requirement, in requirement order.
func MatchAll(resume *types.ResumeData, requirements []types.Requirement) []types.Match {
	matches := make([]types.Match, 0, len(requirements))
	for _, req := range requirements {
		matches = append(matches, MatchRequirement(resume, req))
	}
	return matches
}
