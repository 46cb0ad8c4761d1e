package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kcheesee/JApplication-Tracker/internal/scoring"
	"github.com/Kcheesee/JApplication-Tracker/internal/tailoring"
	"github.com/Kcheesee/JApplication-Tracker/internal/types"
)

func analysisFixture(t *testing.T) (*types.FitAnalysis, *types.JobPosting, *types.ResumeData) {
	t.Helper()
	resume := &types.ResumeData{
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		TechnicalSkills: []string{"Python"},
	}
	job := &types.JobPosting{
		Title:   "Backend Engineer",
		Company: "Acme",
		Requirements: []types.Requirement{
			{Text: "Experience with Python and Docker", Category: types.CategoryTechnicalSkills, RequirementType: types.TypeRequired, Keywords: []string{"python", "docker"}},
		},
	}
	return scoring.AnalyzeFit(resume, job), job, resume
}

func TestValidateFitAnalysis_EngineOutputPasses(t *testing.T) {
	fit, _, _ := analysisFixture(t)

	assert.NoError(t, ValidateValue("fit", fit))
}

func TestValidateTailoringPlan_EngineOutputPasses(t *testing.T) {
	fit, job, resume := analysisFixture(t)
	plan := tailoring.BuildPlan(resume, job, fit)

	assert.NoError(t, ValidateValue("plan", plan))
}

func TestValidateFitAnalysis_BadLabelFails(t *testing.T) {
	fit, _, _ := analysisFixture(t)
	doc, err := json.Marshal(fit)
	require.NoError(t, err)

	var loose map[string]any
	require.NoError(t, json.Unmarshal(doc, &loose))
	loose["match_label"] = "Amazing Match"
	doc, err = json.Marshal(loose)
	require.NoError(t, err)

	err = ValidateFitAnalysis(doc)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateFitAnalysis_MissingFieldFails(t *testing.T) {
	err := ValidateFitAnalysis([]byte(`{"match_score": 0.5}`))

	require.Error(t, err)
	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateFitAnalysis_ScoreOutOfRangeFails(t *testing.T) {
	fit, _, _ := analysisFixture(t)
	doc, err := json.Marshal(fit)
	require.NoError(t, err)

	var loose map[string]any
	require.NoError(t, json.Unmarshal(doc, &loose))
	loose["match_score"] = 1.5
	doc, err = json.Marshal(loose)
	require.NoError(t, err)

	assert.Error(t, ValidateFitAnalysis(doc))
}

func TestValidateValue_UnknownKind(t *testing.T) {
	err := ValidateValue("mystery", map[string]any{})

	assert.Error(t, err)
}
