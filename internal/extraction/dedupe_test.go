package extraction

import (
	"testing"

	"github.com/Kcheesee/JApplication-Tracker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reqs(texts ...string) []types.Requirement {
	out := make([]types.Requirement, len(texts))
	for i, txt := range texts {
		out[i] = types.Requirement{Text: txt, Category: types.CategoryDomain, RequirementType: types.TypeRequired}
	}
	return out
}

func TestDedupe_CaseOnlyDifference(t *testing.T) {
	unique := Dedupe(reqs("Python experience", "python experience"))

	require.Len(t, unique, 1)
	assert.Equal(t, "Python experience", unique[0].Text)
}

func TestDedupe_WhitespaceCollapsed(t *testing.T) {
	unique := Dedupe(reqs("Python   experience", "Python experience", "Python\texperience"))

	assert.Len(t, unique, 1)
}

func TestDedupe_PreservesOrder(t *testing.T) {
	unique := Dedupe(reqs("aws experience", "python experience", "AWS experience", "sql experience"))

	require.Len(t, unique, 3)
	assert.Equal(t, "aws experience", unique[0].Text)
	assert.Equal(t, "python experience", unique[1].Text)
	assert.Equal(t, "sql experience", unique[2].Text)
}

func TestDedupe_Idempotent(t *testing.T) {
	input := reqs("go experience", "Go experience", "sql experience")

	once := Dedupe(input)
	twice := Dedupe(once)

	assert.Equal(t, once, twice)
}

func TestDedupe_Empty(t *testing.T) {
	assert.Empty(t, Dedupe(nil))
}

func TestExtractRequirements_FullPosting(t *testing.T) {
	posting := &types.JobPosting{
		Title:   "Backend Engineer",
		Company: "Acme",
		Qualifications: []string{
			"Requirements",
			"5+ years of Python development experience",
			"- Experience with PostgreSQL and Redis",
			"Experience with PostgreSQL and Redis",
			"Excellent communication skills across teams",
			"Build and ship customer-facing features",
			"$160,000 - $190,000",
		},
	}

	requirements := ExtractRequirements(posting)

	require.Len(t, requirements, 3)
	assert.Equal(t, types.CategoryExperience, requirements[0].Category)
	assert.Equal(t, types.CategoryTechnicalSkills, requirements[1].Category)
	assert.Equal(t, types.CategorySoftSkills, requirements[2].Category)
}

func TestExtractRequirements_FallsBackToDescription(t *testing.T) {
	posting := &types.JobPosting{
		Description: "About the role\n3+ years experience with Go and Kubernetes\nJoin us on our mission to change everything",
	}

	requirements := ExtractRequirements(posting)

	require.Len(t, requirements, 1)
	require.NotNil(t, requirements[0].YearsExperience)
	assert.Equal(t, 3, *requirements[0].YearsExperience)
}
