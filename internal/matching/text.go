package matching

import (
	"strings"

	"github.com/Kcheesee/JApplication-Tracker/internal/types"
)

// bulletsText joins every experience bullet into one lowercased blob.
func bulletsText(resume *types.ResumeData) string {
	var b strings.Builder
	for _, exp := range resume.Experiences {
		for _, bullet := range exp.Bullets {
			b.WriteString(bullet)
			b.WriteString(" ")
		}
	}
	return strings.ToLower(b.String())
}

// narrativeText is the summary plus experience bullets plus project
// descriptions and technologies, lowercased. Used by the technical matcher
// as the second place to look after the skills list.
func narrativeText(resume *types.ResumeData) string {
	var b strings.Builder
	b.WriteString(resume.Summary)
	b.WriteString(" ")
	for _, exp := range resume.Experiences {
		for _, bullet := range exp.Bullets {
			b.WriteString(bullet)
			b.WriteString(" ")
		}
	}
	for _, p := range resume.Projects {
		b.WriteString(p.Description)
		b.WriteString(" ")
		b.WriteString(strings.Join(p.Technologies, " "))
		b.WriteString(" ")
	}
	return strings.ToLower(b.String())
}

// fullResumeText is the widest searchable blob: summary, experience titles,
// companies and bullets, project names and descriptions. Lowercased.
func fullResumeText(resume *types.ResumeData) string {
	var b strings.Builder
	b.WriteString(resume.Summary)
	b.WriteString(" ")
	for _, exp := range resume.Experiences {
		b.WriteString(exp.Title)
		b.WriteString(" ")
		b.WriteString(exp.Company)
		b.WriteString(" ")
		for _, bullet := range exp.Bullets {
			b.WriteString(bullet)
			b.WriteString(" ")
		}
	}
	for _, p := range resume.Projects {
		b.WriteString(p.Name)
		b.WriteString(" ")
		b.WriteString(p.Description)
		b.WriteString(" ")
	}
	return strings.ToLower(b.String())
}
