package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Kcheesee/JApplication-Tracker/internal/types"
)

// maxDescriptionLength bounds the raw description kept on a posting.
const maxDescriptionLength = 1000

// parseGeneric is the fallback parser for unrecognized boards. It tries a
// ladder of common selectors for each field and settles for a bulleted list
// of more than two items as the qualifications.
func parseGeneric(html string) (*types.JobPosting, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	title := firstText(doc, "h1", ".job-title", ".title", "title")
	company := firstText(doc, ".company", ".company-name", `[class*="company"]`)
	location := firstText(doc, ".location", `[class*="location"]`)

	var qualifications []string
	for _, selector := range []string{".requirements ul li", ".qualifications ul li", "ul li"} {
		items := doc.Find(selector)
		if items.Length() > 2 {
			items.Each(func(_ int, s *goquery.Selection) {
				qualifications = append(qualifications, strings.TrimSpace(s.Text()))
			})
			break
		}
	}

	description := strings.TrimSpace(doc.Find(`.description, [class*="description"]`).First().Text())
	if len(description) > maxDescriptionLength {
		description = description[:maxDescriptionLength]
	}

	return &types.JobPosting{
		Title:           orUnknown(title),
		Company:         orUnknown(company),
		Location:        orUnknown(location),
		Qualifications:  qualifications,
		Description:     description,
		ParseConfidence: 0.6,
	}, nil
}

// firstText returns the trimmed text of the first selector that matches.
func firstText(doc *goquery.Document, selectors ...string) string {
	for _, selector := range selectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			return strings.TrimSpace(sel.First().Text())
		}
	}
	return ""
}
