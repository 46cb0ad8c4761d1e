// Package ingestion turns raw job board HTML into a structured JobPosting.
// Board-specific parsers know each platform's markup; the generic parser is
// a best-effort fallback. Extraction of typed requirements happens after
// parsing, over the qualification lines collected here.
package ingestion

import (
	"github.com/Kcheesee/JApplication-Tracker/internal/extraction"
	"github.com/Kcheesee/JApplication-Tracker/internal/fetch"
	"github.com/Kcheesee/JApplication-Tracker/internal/types"
)

// ParsePosting parses posting HTML with the parser matching the URL's
// platform, then runs requirement extraction over the candidate lines.
// Parsing never fails outright; thin or unrecognized markup just yields a
// low-confidence posting with warnings.
func ParsePosting(url, html string) (*types.JobPosting, error) {
	var posting *types.JobPosting
	var err error

	switch fetch.DetectPlatform(url) {
	case fetch.PlatformGreenhouse:
		posting, err = parseGreenhouse(html)
	case fetch.PlatformLever:
		posting, err = parseLever(html)
	default:
		posting, err = parseGeneric(html)
	}
	if err != nil {
		return nil, err
	}

	posting.URL = url
	posting.Requirements = extraction.ExtractRequirements(posting)

	if posting.Title == "Unknown" {
		posting.ParseWarnings = append(posting.ParseWarnings, "could not determine job title")
	}
	if posting.Company == "Unknown" {
		posting.ParseWarnings = append(posting.ParseWarnings, "could not determine company name")
	}
	if len(posting.Requirements) == 0 {
		posting.ParseWarnings = append(posting.ParseWarnings, "no requirements extracted")
	}

	return posting, nil
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
