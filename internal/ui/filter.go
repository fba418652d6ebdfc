package ui

import (
	"path/filepath"
	"strings"
)

// MatchName reports whether an ad name matches pattern.
// Supports patterns like "Ad*" or "*promo*"; a pattern without wildcards
// matches as a substring. An empty pattern matches everything.
func MatchName(pattern, name string) bool {
	if pattern == "" {
		return true
	}

	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// Fall back to checking every non-wildcard part is present
	hasPart := false
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		hasPart = true
		if strings.Contains(part, "?") || !strings.Contains(name, part) {
			return false
		}
	}
	return hasPart
}
