package discovery

import (
	"path/filepath"
	"strings"
)

// Filter matches test names against wildcard patterns such as "login*" or "*checkout*"
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// Match reports whether a single test name matches pattern. An empty pattern matches everything.
func (f *Filter) Match(name, pattern string) bool {
	if pattern == "" {
		return true
	}

	// Try to match using filepath.Match (supports * and ? wildcards)
	matched, err := filepath.Match(pattern, name)
	if err == nil && matched {
		return true
	}

	// If pattern contains wildcards but filepath.Match didn't match,
	// try a more flexible match where every literal part must appear
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

	// If no wildcards, do a simple contains check
	if !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}

	return false
}
