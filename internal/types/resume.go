package types

// ResumeData is the structured candidate profile used for matching.
// It is treated as immutable input; the analysis engine never mutates it.
// Missing lists behave as empty and missing scalars as zero values.
type ResumeData struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Location string `json:"location,omitempty"`

	Summary string `json:"summary,omitempty"`

	Experiences []Experience `json:"experiences,omitempty"`

	TechnicalSkills []string `json:"technical_skills,omitempty"`
	SoftSkills      []string `json:"soft_skills,omitempty"`

	Education []Education `json:"education,omitempty"`
	Projects  []Project   `json:"projects,omitempty"`

	Certifications []string `json:"certifications,omitempty"`

	TotalYearsExperience int      `json:"total_years_experience,omitempty"`
	Industries           []string `json:"industries,omitempty"`
}

// Experience is a single work history entry.
type Experience struct {
	Title   string   `json:"title"`
	Company string   `json:"company"`
	Start   string   `json:"start,omitempty"`
	End     string   `json:"end,omitempty"`
	Bullets []string `json:"bullets,omitempty"`
}

// Education is a single education record.
type Education struct {
	Degree string `json:"degree"`
	School string `json:"school"`
	Year   string `json:"year,omitempty"`
	GPA    string `json:"gpa,omitempty"`
}

// Project is a single project record.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
}
