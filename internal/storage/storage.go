package storage

import (
	"hlh/internal/config"
	"hlh/internal/domain"
)

// Storage persists the log files collected for a test (the cat-test --out-file dump).
type Storage interface {
	// Save writes contents and returns the path it was written to.
	Save(contents domain.TestContents) (string, error)
}

// DumpStorage stores collected contents as one text file at the configured output path.
type DumpStorage struct {
	cfg *config.Config
}

// NewDumpStorage returns a Storage that writes the config's output file.
func NewDumpStorage(cfg *config.Config) *DumpStorage {
	return &DumpStorage{cfg: cfg}
}
