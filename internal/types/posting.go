package types

import "strings"

// JobPosting is the structured representation of one job posting, as produced
// by the HTML ingestion layer and enriched with extracted requirements.
type JobPosting struct {
	URL      string `json:"url,omitempty"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location,omitempty"`

	Requirements []Requirement `json:"requirements,omitempty"`

	// Raw sections kept for reference and for fallback line extraction.
	Description      string   `json:"description,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Qualifications   []string `json:"qualifications,omitempty"`
	Benefits         []string `json:"benefits,omitempty"`

	SalaryRange    string `json:"salary_range,omitempty"`
	EmploymentType string `json:"employment_type,omitempty"`
	RemotePolicy   string `json:"remote_policy,omitempty"`

	ParseConfidence float64  `json:"parse_confidence,omitempty"`
	ParseWarnings   []string `json:"parse_warnings,omitempty"`
}

// CandidateLines returns the lines the classifier should consider, preferring
// the structured qualifications list and falling back to the raw description.
func (p *JobPosting) CandidateLines() []string {
	if len(p.Qualifications) > 0 {
		return p.Qualifications
	}
	if p.Description == "" {
		return nil
	}
	return strings.Split(p.Description, "\n")
}
