package analyzer

import (
	"fmt"
	"strings"

	"github.com/Kcheesee/JApplication-Tracker/internal/types"
)

// maxDescriptionChars bounds how much raw posting text goes into the prompt.
const maxDescriptionChars = 3000

func buildAnalysisPrompt(resume *types.ResumeData, job *types.JobPosting) string {
	return fmt.Sprintf(`You are an expert career advisor and technical recruiter. Analyze how well this candidate fits the job and provide detailed, actionable insights.

## CANDIDATE RESUME
%s

## JOB POSTING
%s

## ANALYSIS INSTRUCTIONS
Provide a comprehensive fit analysis in JSON format with the following structure:

{
    "overall_score": <0-100 integer>,
    "confidence_score": <0-100 integer representing how confident you are in this analysis>,
    "fit_tier": "<Excellent|Strong|Good|Stretch|Long Shot>",

    "executive_summary": "<2-3 sentence summary of fit>",
    "key_verdict": "<One compelling sentence: should they apply?>",

    "category_scores": {
        "technical_skills": <0-100>,
        "experience_level": <0-100>,
        "domain_expertise": <0-100>,
        "leadership": <0-100>,
        "education": <0-100>,
        "culture_fit": <0-100>
    },

    "gaps": [
        {
            "category": "<years_experience|technical_skills|domain_expertise|leadership|education|certifications|soft_skills|industry_knowledge|tools_platforms>",
            "severity": "<critical|significant|moderate|minor>",
            "requirement_text": "<what the job requires>",
            "your_level": "<candidate's current level>",
            "required_level": "<job's required level>",
            "gap_description": "<clear explanation of the gap>",
            "impact_on_application": "<how this affects their chances>",
            "bridging_strategies": ["<specific action 1>", "<specific action 2>"],
            "time_to_bridge": "<realistic timeline if applicable>",
            "transferable_skills": ["<relevant skill that partially bridges gap>"],
            "talking_points": ["<how to address in interview>"]
        }
    ],

    "strengths": [
        {
            "category": "<category>",
            "title": "<brief title>",
            "description": "<what makes this strong>",
            "evidence": ["<specific evidence from resume>"],
            "competitive_advantage": "<why this matters for this role>",
            "how_to_leverage": "<how to highlight in application>"
        }
    ],

    "application_strategy": "<paragraph on best approach to application>",
    "cover_letter_focus": ["<key point 1>", "<key point 2>", "<key point 3>"],
    "interview_prep": ["<topic to prepare>", "<topic to prepare>"],
    "questions_to_ask": ["<insightful question for interviewer>"],

    "rejection_risk": "<Low|Medium|High>",
    "rejection_reasons": ["<likely concern 1>", "<likely concern 2>"],
    "mitigation_strategies": ["<how to address concern 1>"],

    "competitive_position": "<paragraph on how they compare to typical applicants>",
    "differentiators": ["<unique selling point 1>", "<unique selling point 2>"]
}

Be specific, honest, and actionable. Don't sugarcoat gaps but always provide constructive paths forward.`,
		formatResume(resume), formatJob(job))
}

func formatResume(resume *types.ResumeData) string {
	var sections []string

	sections = append(sections,
		fmt.Sprintf("Name: %s", resume.Name),
		fmt.Sprintf("Location: %s", resume.Location),
		fmt.Sprintf("Total Experience: %d years", resume.TotalYearsExperience))

	if resume.Summary != "" {
		sections = append(sections, fmt.Sprintf("\nSummary:\n%s", resume.Summary))
	}
	if len(resume.TechnicalSkills) > 0 {
		sections = append(sections, fmt.Sprintf("\nTechnical Skills:\n%s", strings.Join(resume.TechnicalSkills, ", ")))
	}
	if len(resume.SoftSkills) > 0 {
		sections = append(sections, fmt.Sprintf("\nSoft Skills:\n%s", strings.Join(resume.SoftSkills, ", ")))
	}

	if len(resume.Experiences) > 0 {
		sections = append(sections, "\nWork Experience:")
		for _, exp := range resume.Experiences {
			end := exp.End
			if end == "" {
				end = "Present"
			}
			sections = append(sections, fmt.Sprintf("\n%s at %s (%s - %s)", exp.Title, exp.Company, exp.Start, end))
			for _, bullet := range exp.Bullets {
				sections = append(sections, fmt.Sprintf("  - %s", bullet))
			}
		}
	}

	if len(resume.Education) > 0 {
		sections = append(sections, "\nEducation:")
		for _, edu := range resume.Education {
			sections = append(sections, fmt.Sprintf("  - %s from %s (%s)", edu.Degree, edu.School, edu.Year))
		}
	}

	if len(resume.Projects) > 0 {
		sections = append(sections, "\nProjects:")
		for _, proj := range resume.Projects {
			sections = append(sections, fmt.Sprintf("  - %s: %s", proj.Name, proj.Description))
			if len(proj.Technologies) > 0 {
				sections = append(sections, fmt.Sprintf("    Technologies: %s", strings.Join(proj.Technologies, ", ")))
			}
		}
	}

	if len(resume.Certifications) > 0 {
		sections = append(sections, fmt.Sprintf("\nCertifications:\n%s", strings.Join(resume.Certifications, ", ")))
	}

	return strings.Join(sections, "\n")
}

func formatJob(job *types.JobPosting) string {
	var sections []string

	sections = append(sections,
		fmt.Sprintf("Title: %s", job.Title),
		fmt.Sprintf("Company: %s", job.Company),
		fmt.Sprintf("Location: %s", job.Location))

	if len(job.Requirements) > 0 {
		sections = append(sections, "\nRequirements:")
		for _, req := range job.Requirements {
			sections = append(sections, fmt.Sprintf("  - [%s] %s",
				strings.ToUpper(string(req.RequirementType)), req.Text))
		}
	}

	if job.Description != "" {
		desc := job.Description
		if len(desc) > maxDescriptionChars {
			desc = desc[:maxDescriptionChars]
		}
		sections = append(sections, fmt.Sprintf("\nFull Description:\n%s", desc))
	}

	return strings.Join(sections, "\n")
}
