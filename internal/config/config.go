package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Scan settings
	InPath        string
	PathsToIgnore []string
	SkipHidden    bool

	// Test name settings
	NoTestName string

	// Output settings
	SortOrder string

	// Command flags
	Flags Flags
}

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
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		InPath:     DefaultInPath,
		NoTestName: NoTestSentinel,
		SortOrder:  DefaultSortOrder,
	}
	// Copy default paths to ignore
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// Apply validates the flags and derives the config from the defaults plus the flags.
// Applying the same flags twice gives the same config.
func (c *Config) Apply(flags Flags) error {
	if strings.TrimSpace(flags.InPath) == "" {
		return errors.New("in-path must not be empty")
	}

	sortOrder := DefaultSortOrder
	switch flags.SortOrder {
	case "":
	case SortByName, SortByCount:
		sortOrder = flags.SortOrder
	default:
		return fmt.Errorf("invalid sort order %q (want %q or %q)", flags.SortOrder, SortByName, SortByCount)
	}

	c.Flags = flags
	c.InPath = flags.InPath
	c.SkipHidden = flags.SkipHidden
	c.SortOrder = sortOrder
	c.PathsToIgnore = make([]string, 0, len(DefaultPathsToIgnore)+len(flags.Ignore))
	c.PathsToIgnore = append(c.PathsToIgnore, DefaultPathsToIgnore...)
	c.PathsToIgnore = append(c.PathsToIgnore, flags.Ignore...)

	return nil
}

// GetInPath returns the cleaned root of the log tree
func (c *Config) GetInPath() string {
	return filepath.Clean(c.InPath)
}

// GetOutFile returns the cat-test output file as an absolute path, or "" when output goes to stdout
func (c *Config) GetOutFile() string {
	if c.Flags.OutFile == "" {
		return ""
	}
	if abs, err := filepath.Abs(c.Flags.OutFile); err == nil {
		return abs
	}
	return c.Flags.OutFile
}

// ShowProgress reports whether the scan progress bar should be drawn
func (c *Config) ShowProgress() bool {
	return !c.Flags.NoProgress && !c.Flags.JSON
}
