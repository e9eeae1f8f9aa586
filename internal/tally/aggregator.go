package tally

import (
	"sort"

	"hlh/internal/config"
	"hlh/internal/discovery"
	"hlh/internal/domain"
)

// Aggregator counts log files per test name
type Aggregator struct {
	extractor *discovery.Extractor
	filter    *discovery.Filter
	pattern   string
	counts    map[string]int
	observers []func(domain.LogFile, domain.Match)
}

// NewAggregator creates a new Aggregator. Only test names matching pattern
// are counted; an empty pattern counts every name.
func NewAggregator(extractor *discovery.Extractor, filter *discovery.Filter, pattern string) *Aggregator {
	return &Aggregator{
		extractor: extractor,
		filter:    filter,
		pattern:   pattern,
		counts:    make(map[string]int),
	}
}

// Observe registers fn to be called for every file passed to Add
func (a *Aggregator) Observe(fn func(domain.LogFile, domain.Match)) {
	a.observers = append(a.observers, fn)
}

// Add classifies a single file and counts it when it carries a usable test name
func (a *Aggregator) Add(file domain.LogFile) {
	match := a.extractor.Classify(file.Name)
	for _, fn := range a.observers {
		fn(file, match)
	}

	if match.Kind != domain.MatchFound {
		return
	}
	if a.filter != nil && !a.filter.Match(match.Name, a.pattern) {
		return
	}
	a.counts[match.Name]++
}

// Result returns the tally as rows in the given order (config.SortByName or config.SortByCount)
func (a *Aggregator) Result(order string) domain.TestList {
	rows := make([]domain.TestRow, 0, len(a.counts))
	for name, count := range a.counts {
		rows = append(rows, domain.TestRow{TestName: name, FoundCount: count})
	}

	sort.Slice(rows, func(i, j int) bool {
		if order == config.SortByCount && rows[i].FoundCount != rows[j].FoundCount {
			return rows[i].FoundCount > rows[j].FoundCount
		}
		return rows[i].TestName < rows[j].TestName
	})

	return domain.TestList{Rows: rows, Total: len(rows)}
}
