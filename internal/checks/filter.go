package checks

import (
	"path/filepath"
	"strings"
)

// FilterByName filters checks by name pattern using wildcard matching.
// Supports patterns like "Status*" or "*CORS*"; a pattern without
// wildcards matches as a substring.
func FilterByName(suite []Check, pattern string) []Check {
	if pattern == "" {
		return suite
	}

	var filtered []Check
	for _, check := range suite {
		if matchesPattern(check.Name(), pattern) {
			filtered = append(filtered, check)
		}
	}
	return filtered
}

func matchesPattern(name, pattern string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	// Fall back to substring matching on the non-wildcard parts, so
	// patterns like "*Status*" still match "Status Create".
	if strings.Contains(pattern, "*") {
		hasNonEmptyPart := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			hasNonEmptyPart = true
			if !strings.Contains(name, part) {
				return false
			}
		}
		return hasNonEmptyPart
	}

	if !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}
	return false
}
