package matching

import (
	"strings"

	"github.com/Kcheesee/JApplication-Tracker/internal/types"
)

// degreeMarkers are the level indicators that satisfy an education
// requirement when found in any degree+school string.
var degreeMarkers = []string{"bachelor", "bs", "b.s.", "master", "ms", "m.s."}

// matchEducation is a coarse check: any education entry naming a recognized
// degree level satisfies the requirement. Field of study is not compared.
func matchEducation(resume *types.ResumeData, req types.Requirement) types.Match {
	if len(resume.Education) > 0 {
		var b strings.Builder
		for _, ed := range resume.Education {
			b.WriteString(ed.Degree)
			b.WriteString(" ")
			b.WriteString(ed.School)
			b.WriteString(" ")
		}
		degreeText := strings.ToLower(b.String())

		for _, marker := range degreeMarkers {
			if strings.Contains(degreeText, marker) {
				evidence := resume.Education[0].Degree
				if evidence == "" {
					evidence = "Degree"
				}
				return types.Match{
					Requirement: req,
					Strength:    types.StrengthMatch,
					Evidence:    []string{evidence},
					Explanation: "Education requirement met",
					Confidence:  0.9,
				}
			}
		}
	}

	return types.Match{
		Requirement: req,
		Strength:    types.StrengthGap,
		Explanation: "No matching education found",
		Suggestion:  "Add education details if you have relevant degree",
		Confidence:  0.8,
	}
}
