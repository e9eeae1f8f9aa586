// Package tally turns a walk over the log tree into per-test results.
package tally

import (
	"fmt"

	"hlh/internal/discovery"
	"hlh/internal/domain"
)

// Walker yields the log files below a root
type Walker interface {
	Walk(root string, fn func(domain.LogFile) error) error
}

// List walks root and counts log files per test name
func List(walker Walker, root string, agg *Aggregator, order string) (domain.TestList, error) {
	if err := walker.Walk(root, func(f domain.LogFile) error {
		agg.Add(f)
		return nil
	}); err != nil {
		return domain.TestList{}, fmt.Errorf("scan %s: %w", root, err)
	}
	return agg.Result(order), nil
}

// Collect walks root and gathers the content of the log files for one test
func Collect(walker Walker, root string, col *Collector) (domain.TestContents, error) {
	if err := walker.Walk(root, func(f domain.LogFile) error {
		col.Add(f)
		return nil
	}); err != nil {
		return domain.TestContents{}, fmt.Errorf("scan %s: %w", root, err)
	}
	return col.Result(), nil
}

var _ Walker = (*discovery.Scanner)(nil)
