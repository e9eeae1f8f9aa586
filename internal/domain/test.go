package domain

// LogFile represents a regular file found while walking the log tree
type LogFile struct {
	Path string // Full path to the file
	Name string // Just the filename
}

// MatchKind tells what the name extractor made of a filename
type MatchKind int

const (
	// MatchNone means the filename carries no test name
	MatchNone MatchKind = iota
	// MatchExcluded means the filename carries the "no test" sentinel
	MatchExcluded
	// MatchFound means the filename carries a usable test name
	MatchFound
)

func (k MatchKind) String() string {
	switch k {
	case MatchExcluded:
		return "excluded"
	case MatchFound:
		return "found"
	default:
		return "none"
	}
}

// Match is the result of extracting a test name from a filename
type Match struct {
	Kind MatchKind
	Name string // Extracted name, empty for MatchNone
}

// TestContent is the content of a single log file collected for a test
type TestContent struct {
	Path    string // Full path, unique within a run
	Name    string // Filename shown in output
	Content string
}

// SkippedFile is a matching file that could not be collected
type SkippedFile struct {
	Path   string
	Reason string
}
