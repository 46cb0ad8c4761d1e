package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Kcheesee/JApplication-Tracker/internal/types"
)

// parseLever parses the Lever ATS markup. Lever postings put the title in
// the posting headline and group requirement bullets under
// .posting-requirements lists.
func parseLever(html string) (*types.JobPosting, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	title := firstText(doc, ".posting-headline h2", "h2", "h1")
	location := firstText(doc, ".posting-categories .location", ".location", `[class*="location"]`)
	company := firstText(doc, ".company-name", `[class*="company"]`)
	if company == "" {
		// Lever pages usually carry the company only in the logo alt text.
		if alt, ok := doc.Find(".main-header-logo img").Attr("alt"); ok {
			company = strings.TrimSuffix(strings.TrimSpace(alt), " logo")
		}
	}

	var qualifications []string
	doc.Find(".posting-requirements li").Each(func(_ int, item *goquery.Selection) {
		qualifications = append(qualifications, strings.TrimSpace(item.Text()))
	})
	if len(qualifications) == 0 {
		// Older Lever layouts keep everything in .section-wrapper lists.
		doc.Find(".section-wrapper ul li").Each(func(_ int, item *goquery.Selection) {
			qualifications = append(qualifications, strings.TrimSpace(item.Text()))
		})
	}

	description := strings.TrimSpace(doc.Find(".posting-description, .section-wrapper").First().Text())
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
