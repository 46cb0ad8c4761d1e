package analyzer

import (
	"fmt"
	"strings"

	"github.com/Kcheesee/JApplication-Tracker/internal/types"
)

// maxFallbackGaps bounds the gap list in the rule-based path.
const maxFallbackGaps = 5

// fallbackAnalysis is the rule-based substitute used when no LLM is
// configured or the call fails. It scores by the fraction of requirements
// with at least one keyword found in the resume text.
func fallbackAnalysis(resume *types.ResumeData, job *types.JobPosting) *types.DeepAnalysis {
	resumeText := fallbackResumeText(resume)

	matched := 0
	var gaps []types.DetailedGap
	for _, req := range job.Requirements {
		if anyKeywordIn(resumeText, req.Keywords) {
			matched++
			continue
		}
		kws := strings.Join(req.Keywords, ", ")
		if kws == "" {
			kws = "N/A"
		}
		gaps = append(gaps, types.DetailedGap{
			GapID:               gapID(len(gaps)),
			Category:            string(types.CategoryTechnicalSkills),
			Severity:            types.SeverityModerate,
			RequirementText:     req.Text,
			YourLevel:           "Not demonstrated",
			RequiredLevel:       "Required",
			GapDescription:      fmt.Sprintf("Keywords not found: %s", kws),
			ImpactOnApplication: "May reduce match score",
			BridgingStrategies:  []string{"Add relevant experience to resume", "Address in cover letter"},
		})
	}

	score := 0.5
	if len(job.Requirements) > 0 {
		score = float64(matched) / float64(len(job.Requirements))
	}

	verdict := "Significant gaps exist - apply strategically."
	risk := "High"
	if score >= 0.5 {
		verdict = "Consider applying with targeted resume improvements."
		risk = "Medium"
	}

	var rejectionReasons []string
	if len(gaps) > 0 {
		rejectionReasons = []string{"Missing required skills"}
	}
	if len(gaps) > maxFallbackGaps {
		gaps = gaps[:maxFallbackGaps]
	}

	return &types.DeepAnalysis{
		OverallScore:    score,
		ConfidenceScore: 0.6,
		FitTier:         fitTier(score),
		ExecutiveSummary: fmt.Sprintf(
			"Based on keyword analysis, you match %d of %d requirements.",
			matched, len(job.Requirements)),
		KeyVerdict: verdict,
		Gaps:       gaps,
		CategoryScores: map[string]int{
			"technical_skills": int(score * 100),
			"experience_level": 50,
			"domain_expertise": 50,
			"leadership":       50,
			"education":        70,
			"culture_fit":      60,
		},
		ApplicationStrategy:  "Focus on highlighting matching skills and addressing key gaps in your cover letter.",
		CoverLetterFocus:     []string{"Highlight relevant technical skills", "Address experience gaps proactively"},
		InterviewPrep:        []string{"Prepare examples for each matched skill", "Practice explaining transferable skills"},
		QuestionsToAsk:       []string{"What does success look like in this role?"},
		RejectionRisk:        risk,
		RejectionReasons:     rejectionReasons,
		MitigationStrategies: []string{"Customize resume for this role"},
		CompetitivePosition:  "Average applicant position based on keyword matching.",
	}
}

func fitTier(score float64) string {
	switch {
	case score >= 0.85:
		return "Excellent"
	case score >= 0.70:
		return "Strong"
	case score >= 0.50:
		return "Good"
	case score >= 0.30:
		return "Stretch"
	default:
		return "Long Shot"
	}
}

func fallbackResumeText(resume *types.ResumeData) string {
	var b strings.Builder
	b.WriteString(resume.Summary)
	b.WriteString(" ")
	b.WriteString(strings.Join(resume.TechnicalSkills, " "))
	b.WriteString(" ")
	b.WriteString(strings.Join(resume.SoftSkills, " "))
	b.WriteString(" ")
	for _, exp := range resume.Experiences {
		b.WriteString(exp.Title)
		b.WriteString(" ")
		b.WriteString(exp.Company)
		b.WriteString(" ")
		b.WriteString(strings.Join(exp.Bullets, " "))
		b.WriteString(" ")
	}
	return strings.ToLower(b.String())
}

func anyKeywordIn(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
