package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequirementCategory_ValidateAccepted(t *testing.T) {
	categories := []RequirementCategory{
		CategoryExperience,
		CategoryTechnicalSkills,
		CategorySoftSkills,
		CategoryEducation,
		CategoryDomain,
		CategoryLogistics,
	}

	for _, c := range categories {
		assert.NoError(t, c.Validate(), "category %q should validate", c)
	}
}

func TestRequirementCategory_ValidateRejected(t *testing.T) {
	err := RequirementCategory("management").Validate()

	require.Error(t, err)
	var enumErr *InvalidEnumError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "category", enumErr.Field)
	assert.Equal(t, "management", enumErr.Value)
}

func TestRequirementType_ValidateAccepted(t *testing.T) {
	for _, rt := range []RequirementType{TypeRequired, TypePreferred, TypeNiceToHave} {
		assert.NoError(t, rt.Validate())
	}
}

func TestRequirementType_ValidateRejected(t *testing.T) {
	err := RequirementType("mandatory").Validate()

	require.Error(t, err)
	var enumErr *InvalidEnumError
	assert.ErrorAs(t, err, &enumErr)
}

func TestNewRequirement_RejectsInvalidCategory(t *testing.T) {
	req, err := NewRequirement("5+ years of Python", "invalid", TypeRequired)

	assert.Nil(t, req)
	assert.Error(t, err)
}

func TestNewRequirement_RejectsInvalidType(t *testing.T) {
	req, err := NewRequirement("5+ years of Python", CategoryExperience, "maybe")

	assert.Nil(t, req)
	assert.Error(t, err)
}

func TestNewRequirement_Valid(t *testing.T) {
	req, err := NewRequirement("5+ years of Python", CategoryExperience, TypeRequired)

	require.NoError(t, err)
	assert.Equal(t, "5+ years of Python", req.Text)
	assert.Equal(t, CategoryExperience, req.Category)
	assert.Equal(t, TypeRequired, req.RequirementType)
}

func TestMatchStrength_RankOrdering(t *testing.T) {
	assert.Greater(t, StrengthStrong.Rank(), StrengthMatch.Rank())
	assert.Greater(t, StrengthMatch.Rank(), StrengthPartial.Rank())
	assert.Greater(t, StrengthPartial.Rank(), StrengthWeak.Rank())
	assert.Greater(t, StrengthWeak.Rank(), StrengthGap.Rank())
}

func TestMatchStrength_ValidateRejected(t *testing.T) {
	assert.Error(t, MatchStrength("excellent").Validate())
	assert.NoError(t, StrengthPartial.Validate())
}
