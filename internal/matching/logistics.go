package matching

import (
	"strings"

	"github.com/Kcheesee/JApplication-Tracker/internal/types"
)

// matchLogistics can only verify clearance mentions against certifications.
// Every other logistics requirement (location, travel, visa) needs human
// confirmation, so it returns partial at low confidence.
func matchLogistics(resume *types.ResumeData, req types.Requirement) types.Match {
	reqLower := strings.ToLower(req.Text)

	if strings.Contains(reqLower, "clearance") {
		certs := strings.ToLower(strings.Join(resume.Certifications, " "))
		if strings.Contains(certs, "clearance") {
			return types.Match{
				Requirement: req,
				Strength:    types.StrengthMatch,
				Evidence:    []string{"Clearance noted in resume"},
				Confidence:  0.9,
			}
		}
		return types.Match{
			Requirement: req,
			Strength:    types.StrengthGap,
			Explanation: "Security clearance required but not found on resume",
			Suggestion:  "Add clearance status if you have one, or note eligibility",
			Confidence:  0.85,
		}
	}

	return types.Match{
		Requirement: req,
		Strength:    types.StrengthPartial,
		Explanation: "Location/logistics requirement - verify compatibility",
		Suggestion:  "Confirm you can meet location/logistics requirements",
		Confidence:  0.5,
	}
}
