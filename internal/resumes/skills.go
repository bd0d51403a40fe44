package resumes

import "strings"

// SplitSkills normalizes a free-text comma-separated skills string into an
// ordered list: split on commas, trim whitespace, drop empty entries.
func SplitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}
