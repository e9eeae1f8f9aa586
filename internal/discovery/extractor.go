package discovery

import (
	"strings"

	"hlh/internal/config"
	"hlh/internal/domain"
)

// Extractor extracts test names from log filenames
type Extractor struct {
	noTestName string
}

// NewExtractor creates a new Extractor that treats noTestName as "recorded outside of any test"
func NewExtractor(noTestName string) *Extractor {
	return &Extractor{noTestName: noTestName}
}

// ExtractTestName returns the part of filename between the first and the last
// separator. It reports false when there are fewer than two separators or
// when nothing sits between them.
//
//	req_login_001.log -> login
//	a_b_c_d.log       -> b_c
func ExtractTestName(filename string) (string, bool) {
	first := strings.Index(filename, config.NameSeparator)
	if first < 0 {
		return "", false
	}
	last := strings.LastIndex(filename, config.NameSeparator)

	start := first + len(config.NameSeparator)
	if start >= last {
		return "", false
	}
	return filename[start:last], true
}

// Classify extracts the test name from filename and tells whether it is usable
func (e *Extractor) Classify(filename string) domain.Match {
	name, ok := ExtractTestName(filename)
	if !ok {
		return domain.Match{Kind: domain.MatchNone}
	}
	if name == e.noTestName {
		return domain.Match{Kind: domain.MatchExcluded, Name: name}
	}
	return domain.Match{Kind: domain.MatchFound, Name: name}
}
