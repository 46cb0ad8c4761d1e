package extraction

import (
	"regexp"
	"strings"

	"github.com/Kcheesee/JApplication-Tracker/internal/types"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Dedupe removes duplicate requirements, keeping the first occurrence and
// preserving order. Two requirements are duplicates when their lowercased,
// whitespace-collapsed texts are equal.
func Dedupe(requirements []types.Requirement) []types.Requirement {
	seen := make(map[string]bool, len(requirements))
	unique := make([]types.Requirement, 0, len(requirements))

	for _, req := range requirements {
		key := dedupeKey(req.Text)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, req)
	}

	return unique
}

func dedupeKey(text string) string {
	key := strings.ToLower(strings.TrimSpace(text))
	return whitespaceRun.ReplaceAllString(key, " ")
}
