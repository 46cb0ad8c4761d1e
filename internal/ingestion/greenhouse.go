package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Kcheesee/JApplication-Tracker/internal/types"
)

// sectionHeadingKeywords mark a Greenhouse section as requirement-bearing.
var sectionHeadingKeywords = []string{
	"requirement", "qualification", "looking for", "you", "must have",
}

// parseGreenhouse parses the Greenhouse ATS markup. Qualifications come
// from list items inside sections whose heading looks requirement-like.
func parseGreenhouse(html string) (*types.JobPosting, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	title := firstText(doc, ".app-title", "h1")
	company := firstText(doc, ".company-name", `[class*="company"]`)
	location := firstText(doc, ".location", `[class*="location"]`)

	var qualifications []string
	doc.Find(".section").Each(func(_ int, section *goquery.Selection) {
		heading := strings.ToLower(strings.TrimSpace(section.Find("h2, h3").First().Text()))
		if heading == "" {
			return
		}
		for _, kw := range sectionHeadingKeywords {
			if strings.Contains(heading, kw) {
				section.Find("li").Each(func(_ int, item *goquery.Selection) {
					qualifications = append(qualifications, strings.TrimSpace(item.Text()))
				})
				return
			}
		}
	})

	description := strings.Join(strings.Fields(doc.Text()), " ")
	if len(description) > maxDescriptionLength {
		description = description[:maxDescriptionLength]
	}

	confidence := 0.5
	if len(qualifications) > 0 {
		confidence = 0.8
	}

	return &types.JobPosting{
		Title:           orUnknown(title),
		Company:         orUnknown(company),
		Location:        orUnknown(location),
		Qualifications:  qualifications,
		Description:     description,
		ParseConfidence: confidence,
	}, nil
}
