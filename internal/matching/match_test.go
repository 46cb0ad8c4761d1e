package matching

import (
	"testing"

	"github.com/Kcheesee/JApplication-Tracker/internal/types"
	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int { return &n }

func yearsReq(years int) types.Requirement {
	return types.Requirement{
		Text:            "5+ years of experience",
		Category:        types.CategoryExperience,
		RequirementType: types.TypeRequired,
		YearsExperience: intPtr(years),
	}
}

func TestMatchExperience_ExceedsByTwo_Strong(t *testing.T) {
	resume := &types.ResumeData{TotalYearsExperience: 7}

	m := MatchRequirement(resume, yearsReq(5))

	assert.Equal(t, types.StrengthStrong, m.Strength)
	assert.InDelta(t, 0.95, m.Confidence, 0.001)
	assert.Contains(t, m.Evidence, "7 years of experience")
}

func TestMatchExperience_MeetsExactly_Match(t *testing.T) {
	resume := &types.ResumeData{TotalYearsExperience: 5}

	m := MatchRequirement(resume, yearsReq(5))

	assert.Equal(t, types.StrengthMatch, m.Strength)
	assert.InDelta(t, 0.95, m.Confidence, 0.001)
}

func TestMatchExperience_OneYearShort_Partial(t *testing.T) {
	resume := &types.ResumeData{TotalYearsExperience: 4}

	m := MatchRequirement(resume, yearsReq(5))

	assert.Equal(t, types.StrengthPartial, m.Strength)
	assert.NotEmpty(t, m.Suggestion)
	assert.InDelta(t, 0.85, m.Confidence, 0.001)
}

func TestMatchExperience_TwoYearsShort_Gap(t *testing.T) {
	resume := &types.ResumeData{TotalYearsExperience: 3}

	m := MatchRequirement(resume, yearsReq(5))

	assert.Equal(t, types.StrengthGap, m.Strength)
	assert.NotEmpty(t, m.Suggestion)
	assert.InDelta(t, 0.9, m.Confidence, 0.001)
}

func TestMatchExperience_NoYearCount_FallsBackToKeywords(t *testing.T) {
	resume := &types.ResumeData{Summary: "Platform engineer focused on fintech infrastructure"}
	req := types.Requirement{
		Text:            "Experience in fintech",
		Category:        types.CategoryExperience,
		RequirementType: types.TypeRequired,
		Keywords:        []string{"fintech"},
	}

	m := MatchRequirement(resume, req)

	assert.Equal(t, types.StrengthMatch, m.Strength)
	assert.InDelta(t, 0.7, m.Confidence, 0.001)
}

func TestMatchTechnical_AllKeywordsInSkills_Strong(t *testing.T) {
	resume := &types.ResumeData{TechnicalSkills: []string{"Python", "FastAPI"}}
	req := types.Requirement{
		Text:     "Experience with Python and FastAPI",
		Category: types.CategoryTechnicalSkills,
		Keywords: []string{"python", "fastapi"},
	}

	m := MatchRequirement(resume, req)

	assert.Equal(t, types.StrengthStrong, m.Strength)
	assert.ElementsMatch(t, []string{"python", "fastapi"}, m.Evidence)
	assert.InDelta(t, 0.9, m.Confidence, 0.001)
}

func TestMatchTechnical_SubstringSkillMatch(t *testing.T) {
	// "java" is satisfied by a JavaScript skill entry; substring semantics
	// are intentional.
	resume := &types.ResumeData{TechnicalSkills: []string{"JavaScript"}}
	req := types.Requirement{
		Text:     "Java experience",
		Category: types.CategoryTechnicalSkills,
		Keywords: []string{"java"},
	}

	m := MatchRequirement(resume, req)

	assert.Equal(t, types.StrengthStrong, m.Strength)
}

func TestMatchTechnical_FoundInBullets(t *testing.T) {
	resume := &types.ResumeData{
		Experiences: []types.Experience{
			{Title: "Engineer", Bullets: []string{"Migrated workloads to Kubernetes on AWS"}},
		},
	}
	req := types.Requirement{
		Text:     "Kubernetes experience",
		Category: types.CategoryTechnicalSkills,
		Keywords: []string{"kubernetes"},
	}

	m := MatchRequirement(resume, req)

	assert.Equal(t, types.StrengthStrong, m.Strength)
}

func TestMatchTechnical_SomeKeywords_Partial(t *testing.T) {
	resume := &types.ResumeData{TechnicalSkills: []string{"Docker"}}
	req := types.Requirement{
		Text:     "AWS and Docker",
		Category: types.CategoryTechnicalSkills,
		Keywords: []string{"aws", "docker"},
	}

	m := MatchRequirement(resume, req)

	assert.Equal(t, types.StrengthPartial, m.Strength)
	assert.Contains(t, m.Suggestion, "aws")
	assert.InDelta(t, 0.8, m.Confidence, 0.001)
}

func TestMatchTechnical_NoKeywords_Gap(t *testing.T) {
	resume := &types.ResumeData{TechnicalSkills: []string{"Excel"}}
	req := types.Requirement{
		Text:     "Rust experience",
		Category: types.CategoryTechnicalSkills,
		Keywords: []string{"rust"},
	}

	m := MatchRequirement(resume, req)

	assert.Equal(t, types.StrengthGap, m.Strength)
	assert.NotEmpty(t, m.Suggestion)
	assert.InDelta(t, 0.85, m.Confidence, 0.001)
}

func TestMatchEducation_DegreeMarker_Match(t *testing.T) {
	resume := &types.ResumeData{
		Education: []types.Education{
			{Degree: "Bachelor of Science in Computer Science", School: "State University"},
		},
	}
	req := types.Requirement{Text: "Bachelor's degree required", Category: types.CategoryEducation}

	m := MatchRequirement(resume, req)

	assert.Equal(t, types.StrengthMatch, m.Strength)
	assert.Equal(t, []string{"Bachelor of Science in Computer Science"}, m.Evidence)
}

func TestMatchEducation_NoDegreeMarker_Gap(t *testing.T) {
	resume := &types.ResumeData{
		Education: []types.Education{{Degree: "Bootcamp Certificate", School: "Code Academy"}},
	}
	req := types.Requirement{Text: "Bachelor's degree required", Category: types.CategoryEducation}

	m := MatchRequirement(resume, req)

	assert.Equal(t, types.StrengthGap, m.Strength)
}

func TestMatchEducation_NoEducation_Gap(t *testing.T) {
	resume := &types.ResumeData{}
	req := types.Requirement{Text: "Bachelor's degree required", Category: types.CategoryEducation}

	m := MatchRequirement(resume, req)

	assert.Equal(t, types.StrengthGap, m.Strength)
	assert.NotEmpty(t, m.Suggestion)
}

func TestMatchSoftSkills_EvidencedInBullets(t *testing.T) {
	resume := &types.ResumeData{
		Experiences: []types.Experience{
			{Bullets: []string{"Led cross-team communication during a major incident"}},
		},
	}
	req := types.Requirement{
		Text:     "Strong communication skills",
		Category: types.CategorySoftSkills,
		Keywords: []string{"communication"},
	}

	m := MatchRequirement(resume, req)

	assert.Equal(t, types.StrengthMatch, m.Strength)
	assert.InDelta(t, 0.75, m.Confidence, 0.001)
}

func TestMatchSoftSkills_ListedOnly(t *testing.T) {
	resume := &types.ResumeData{SoftSkills: []string{"Communication", "Mentoring"}}
	req := types.Requirement{
		Text:     "Strong communication skills",
		Category: types.CategorySoftSkills,
		Keywords: []string{"communication"},
	}

	m := MatchRequirement(resume, req)

	assert.Equal(t, types.StrengthMatch, m.Strength)
	assert.InDelta(t, 0.7, m.Confidence, 0.001)
}

func TestMatchSoftSkills_NotMentioned_Weak(t *testing.T) {
	resume := &types.ResumeData{}
	req := types.Requirement{
		Text:     "Public speaking ability",
		Category: types.CategorySoftSkills,
		Keywords: []string{"presentation"},
	}

	m := MatchRequirement(resume, req)

	assert.Equal(t, types.StrengthWeak, m.Strength)
	assert.NotEmpty(t, m.Suggestion)
	assert.InDelta(t, 0.6, m.Confidence, 0.001)
}

func TestMatchLogistics_ClearanceOnResume_Match(t *testing.T) {
	resume := &types.ResumeData{Certifications: []string{"Active Secret Clearance"}}
	req := types.Requirement{
		Text:          "Security clearance required",
		Category:      types.CategoryLogistics,
		IsDealbreaker: true,
	}

	m := MatchRequirement(resume, req)

	assert.Equal(t, types.StrengthMatch, m.Strength)
	assert.InDelta(t, 0.9, m.Confidence, 0.001)
}

func TestMatchLogistics_ClearanceMissing_Gap(t *testing.T) {
	resume := &types.ResumeData{}
	req := types.Requirement{
		Text:          "Security clearance required",
		Category:      types.CategoryLogistics,
		IsDealbreaker: true,
	}

	m := MatchRequirement(resume, req)

	assert.Equal(t, types.StrengthGap, m.Strength)
}

func TestMatchLogistics_LocationAlwaysPartial(t *testing.T) {
	resume := &types.ResumeData{Location: "Austin, TX"}
	req := types.Requirement{
		Text:     "Hybrid, 3 days per week onsite in Austin",
		Category: types.CategoryLogistics,
	}

	m := MatchRequirement(resume, req)

	assert.Equal(t, types.StrengthPartial, m.Strength)
	assert.InDelta(t, 0.5, m.Confidence, 0.001)
}

func TestMatchDomain_AllKeywords_Match(t *testing.T) {
	resume := &types.ResumeData{
		Experiences: []types.Experience{{Title: "Engineer", Company: "HealthTech Inc"}},
	}
	req := types.Requirement{
		Text:     "Healthtech industry familiarity",
		Category: types.CategoryDomain,
		Keywords: []string{"healthtech"},
	}

	m := MatchRequirement(resume, req)

	assert.Equal(t, types.StrengthMatch, m.Strength)
	assert.InDelta(t, 0.7, m.Confidence, 0.001)
}

func TestMatchDomain_NoKeywords_Weak(t *testing.T) {
	resume := &types.ResumeData{}
	req := types.Requirement{Text: "Familiarity with insurance claims", Category: types.CategoryDomain}

	m := MatchRequirement(resume, req)

	assert.Equal(t, types.StrengthWeak, m.Strength)
	assert.InDelta(t, 0.5, m.Confidence, 0.001)
}

func TestMatchAll_OneVerdictPerRequirement(t *testing.T) {
	resume := &types.ResumeData{TotalYearsExperience: 8, TechnicalSkills: []string{"Go"}}
	requirements := []types.Requirement{
		yearsReq(5),
		{Text: "Go experience", Category: types.CategoryTechnicalSkills, Keywords: []string{"golang"}},
	}

	matches := MatchAll(resume, requirements)

	assert.Len(t, matches, 2)
	assert.Equal(t, requirements[0].Text, matches[0].Requirement.Text)
}
