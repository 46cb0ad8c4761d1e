// Package extraction turns raw job posting lines into typed requirements.
// Classification is purely heuristic and ordering-sensitive; ambiguous lines
// are silently dropped rather than mis-tagged, trading recall for precision.
package extraction

import (
	"strconv"
	"strings"

	"github.com/Kcheesee/JApplication-Tracker/internal/types"
)

// minLineLength is the shortest line that can carry a requirement.
const minLineLength = 10

// ClassifyLine turns one line of posting text into a typed Requirement.
// It returns ok=false when the line is noise: headers, duty lists, mission
// statements, metadata, or anything too short or too long to be a
// requirement. Rejection is expected and frequent, not an error.
func ClassifyLine(line string) (*types.Requirement, bool) {
	cleaned := strings.TrimSpace(line)
	if len(cleaned) < minLineLength {
		return nil, false
	}

	// Strip a single leading bullet or list number; "5+" must survive.
	cleaned = bulletPrefixPattern.ReplaceAllString(cleaned, "")
	cleaned = numberedPrefixPattern.ReplaceAllString(cleaned, "")
	if len(cleaned) < minLineLength {
		return nil, false
	}

	li := newLineInfo(cleaned)
	if _, dropped := rejectLine(li); dropped {
		return nil, false
	}

	years := extractYears(li.lower)
	category := categorize(li.lower, years != nil)
	req := &types.Requirement{
		Text:            cleaned,
		Category:        category,
		RequirementType: detectRequirementType(li.lower),
		Keywords:        extractKeywords(li.lower),
		YearsExperience: years,
		IsDealbreaker:   isDealbreaker(category, li.lower),
	}
	return req, true
}

// categorize assigns the first matching category in fixed priority order:
// logistics, education, experience-with-years, technical, soft skills,
// experience, then domain as the default. The order runs most-specific to
// most-general. A line carrying an explicit year count ("5+ years of
// Python") is an experience requirement even when it names a technology;
// the year comparison is the stronger signal.
func categorize(lower string, hasYears bool) types.RequirementCategory {
	switch {
	case containsAny(lower, logisticsIndicators):
		return types.CategoryLogistics
	case containsAny(lower, educationIndicators):
		return types.CategoryEducation
	case hasYears:
		return types.CategoryExperience
	case containsAny(lower, technicalIndicators):
		// "experience with Python" is still a technical skill requirement.
		return types.CategoryTechnicalSkills
	case containsAny(lower, softSkillIndicators) &&
		!strings.Contains(lower, "year") && !strings.Contains(lower, "experience"):
		return types.CategorySoftSkills
	case containsAny(lower, experienceIndicators):
		return types.CategoryExperience
	default:
		return types.CategoryDomain
	}
}

// detectRequirementType returns preferred when any preference signal is
// present; unmarked requirements default to required.
func detectRequirementType(lower string) types.RequirementType {
	if containsAny(lower, preferenceSignals) {
		return types.TypePreferred
	}
	return types.TypeRequired
}

// extractYears parses a year count from the line, trying each pattern in
// order and returning the first captured integer.
func extractYears(lower string) *int {
	for _, pattern := range yearsPatterns {
		m := pattern.FindStringSubmatch(lower)
		if len(m) < 2 {
			continue
		}
		years, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		return &years
	}
	return nil
}

// extractKeywords returns the known tech/domain terms present in the line,
// in vocabulary order, without duplicates.
func extractKeywords(lower string) []string {
	var found []string
	for _, kw := range techKeywords {
		if strings.Contains(lower, kw) {
			found = append(found, kw)
		}
	}
	return found
}

// isDealbreaker is true only for logistics requirements that mention a
// clearance or a hard location constraint.
func isDealbreaker(category types.RequirementCategory, lower string) bool {
	if category != types.CategoryLogistics {
		return false
	}
	return strings.Contains(lower, "clearance") || strings.Contains(lower, "must be located")
}
