package config

const (
	// DefaultInPath is the default root of the log tree
	DefaultInPath = "."
	// DefaultSortOrder is the default row order for list-tests
	DefaultSortOrder = SortByName
	// NoTestSentinel is the test name used by log files recorded outside of any test
	NoTestSentinel = "no-test"
	// NameSeparator delimits the test name inside a log filename
	NameSeparator = "_"
	// DefaultOutFileMode is the permission used for the cat-test output file
	DefaultOutFileMode = 0644
)

// Row orders accepted by --sort
const (
	SortByName  = "name"
	SortByCount = "count"
)

// DefaultPathsToIgnore are the default directories to skip when scanning for logs
var DefaultPathsToIgnore = []string{}
