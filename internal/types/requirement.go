// Package types provides type definitions for structured data used throughout the job application tracker.
//
//nolint:revive // types is a standard Go package name pattern
package types

// RequirementCategory classifies what kind of expectation a requirement expresses.
// The set is closed; values outside it are rejected at construction time.
type RequirementCategory string

const (
	// CategoryExperience covers years, industry, and role-type requirements
	CategoryExperience RequirementCategory = "experience"
	// CategoryTechnicalSkills covers languages, tools, and platforms
	CategoryTechnicalSkills RequirementCategory = "technical_skills"
	// CategorySoftSkills covers communication, leadership, and similar
	CategorySoftSkills RequirementCategory = "soft_skills"
	// CategoryEducation covers degrees and certifications
	CategoryEducation RequirementCategory = "education"
	// CategoryDomain covers industry knowledge
	CategoryDomain RequirementCategory = "domain"
	// CategoryLogistics covers location, travel, visa, and clearance
	CategoryLogistics RequirementCategory = "logistics"
)

// Validate checks that the category is one of the closed set.
func (c RequirementCategory) Validate() error {
	switch c {
	case CategoryExperience, CategoryTechnicalSkills, CategorySoftSkills,
		CategoryEducation, CategoryDomain, CategoryLogistics:
		return nil
	}
	return &InvalidEnumError{Field: "category", Value: string(c)}
}

// RequirementType marks how firmly a posting demands a requirement.
type RequirementType string

const (
	// TypeRequired marks a hard requirement; unmarked requirements default here
	TypeRequired RequirementType = "required"
	// TypePreferred marks a requirement carrying a preference signal
	TypePreferred RequirementType = "preferred"
	// TypeNiceToHave is part of the closed set but is never emitted by the
	// classifier, which collapses everything below "required" into "preferred".
	TypeNiceToHave RequirementType = "nice_to_have"
)

// Validate checks that the requirement type is one of the closed set.
func (t RequirementType) Validate() error {
	switch t {
	case TypeRequired, TypePreferred, TypeNiceToHave:
		return nil
	}
	return &InvalidEnumError{Field: "requirement_type", Value: string(t)}
}

// Requirement is one atomic expectation extracted from a job posting.
type Requirement struct {
	Text            string              `json:"text"`
	Category        RequirementCategory `json:"category"`
	RequirementType RequirementType     `json:"requirement_type"`
	Keywords        []string            `json:"keywords,omitempty"`
	YearsExperience *int                `json:"years_experience,omitempty"`
	IsDealbreaker   bool                `json:"is_dealbreaker,omitempty"`
}

// NewRequirement constructs a Requirement, rejecting enum values outside the
// closed sets. Downstream scoring assumes the enums are closed, so invalid
// values must not survive past this boundary.
func NewRequirement(text string, category RequirementCategory, reqType RequirementType) (*Requirement, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}
	if err := reqType.Validate(); err != nil {
		return nil, err
	}
	return &Requirement{
		Text:            text,
		Category:        category,
		RequirementType: reqType,
	}, nil
}
