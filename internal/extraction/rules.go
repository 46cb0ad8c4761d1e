package extraction

import "strings"

// lineInfo carries one cleaned candidate line plus the signals the reject
// rules share, computed once.
type lineInfo struct {
	text      string // cleaned line, original casing
	lower     string
	hasSignal bool // any requirement-signal phrase present
	hasTech   bool // any tech-vocabulary keyword present
}

func newLineInfo(cleaned string) lineInfo {
	lower := strings.ToLower(cleaned)
	return lineInfo{
		text:      cleaned,
		lower:     lower,
		hasSignal: containsAny(lower, requirementSignals),
		hasTech:   containsAny(lower, techKeywords),
	}
}

// rejectRule is one named noise filter. Rules run in order and the first
// hit drops the line; the order is load-bearing and mirrors the list below.
type rejectRule struct {
	name   string
	reject func(li lineInfo) bool
}

// rejectRules is the full noise-filter pipeline, in priority order.
// Keeping it as data makes the ordering visible and testable instead of
// being buried in control flow.
var rejectRules = []rejectRule{
	{name: "section-header", reject: isSectionHeader},
	{name: "intro-header", reject: isIntroHeader},
	{name: "metadata", reject: isMetadata},
	{name: "job-title", reject: looksLikeJobTitle},
	{name: "responsibility", reject: isResponsibility},
	{name: "location-line", reject: isLocationLine},
	{name: "too-long", reject: isTooLong},
	{name: "descriptive-prose", reject: isDescriptiveProse},
	{name: "non-requirement", reject: isNonRequirement},
}

// rejectLine reports whether any rule drops the line, and which.
func rejectLine(li lineInfo) (string, bool) {
	for _, rule := range rejectRules {
		if rule.reject(li) {
			return rule.name, true
		}
	}
	return "", false
}

func isSectionHeader(li lineInfo) bool {
	for _, header := range sectionHeaders {
		if li.lower == header || strings.HasPrefix(li.lower, header+":") {
			return true
		}
	}
	return false
}

func isIntroHeader(li lineInfo) bool {
	for _, intro := range introHeaders {
		if strings.HasPrefix(li.lower, intro) {
			return true
		}
	}
	return false
}

func isMetadata(li lineInfo) bool {
	for _, pattern := range metadataPatterns {
		if pattern.MatchString(li.lower) {
			return true
		}
	}
	return false
}

// looksLikeJobTitle drops short role-name lines ("Senior Backend Engineer")
// that carry no expectation of the candidate.
func looksLikeJobTitle(li lineInfo) bool {
	if len(li.text) >= 60 {
		return false
	}
	if !containsAny(li.lower, roleKeywords) {
		return false
	}
	for _, w := range []string{"experience", "year", "degree", "knowledge"} {
		if strings.Contains(li.lower, w) {
			return false
		}
	}
	return true
}

// isResponsibility drops duty lines led by an action verb ("Build and ship
// features...") unless they also state an explicit skill need.
func isResponsibility(li lineInfo) bool {
	firstWord, _, _ := strings.Cut(li.lower, " ")
	verbLed := false
	for _, stem := range responsibilityStems {
		if strings.HasPrefix(firstWord, stem) {
			verbLed = true
			break
		}
	}
	if !verbLed {
		return false
	}
	return !containsAny(li.lower, skillNeedPhrases)
}

func isLocationLine(li lineInfo) bool {
	return cityStatePattern.MatchString(li.text)
}

func isTooLong(li lineInfo) bool {
	return len(li.text) > 400
}

// isDescriptiveProse drops long paragraphs with no requirement signal and no
// tech keyword; those are almost always company blurbs.
func isDescriptiveProse(li lineInfo) bool {
	return len(li.text) > 150 && !li.hasSignal && !li.hasTech
}

func isNonRequirement(li lineInfo) bool {
	if li.hasSignal {
		return false
	}
	if companyIntroPattern.MatchString(li.lower) {
		return true
	}
	return containsAny(li.lower, nonRequirementPhrases)
}

// containsAny reports whether any of the phrases occurs as a substring of s.
func containsAny(s string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(s, phrase) {
			return true
		}
	}
	return false
}
