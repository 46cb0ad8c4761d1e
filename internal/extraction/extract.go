package extraction

import "github.com/Kcheesee/JApplication-Tracker/internal/types"

// ExtractRequirements classifies every candidate line of a posting and
// returns the deduplicated requirement list. Lines the classifier rejects
// are dropped silently.
func ExtractRequirements(posting *types.JobPosting) []types.Requirement {
	lines := posting.CandidateLines()

	requirements := make([]types.Requirement, 0, len(lines))
	for _, line := range lines {
		if req, ok := ClassifyLine(line); ok {
			requirements = append(requirements, *req)
		}
	}

	return Dedupe(requirements)
}
