package cli

import "hlh/internal/config"

// Flags holds command-line flags
type Flags struct {
	InPath      string
	JSON        bool
	NameFilter  string
	SortOrder   string
	TestName    string
	OutFile     string
	Interactive bool
	SkipHidden  bool
	Ignore      []string
	NoProgress  bool
	NoColor     bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		InPath:      f.InPath,
		JSON:        f.JSON,
		NameFilter:  f.NameFilter,
		SortOrder:   f.SortOrder,
		TestName:    f.TestName,
		OutFile:     f.OutFile,
		Interactive: f.Interactive,
		SkipHidden:  f.SkipHidden,
		Ignore:      f.Ignore,
		NoProgress:  f.NoProgress,
	}
}
