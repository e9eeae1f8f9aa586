package storage

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"hlh/internal/config"
	"hlh/internal/domain"
)

// ErrNoOutFile is returned by Save when no output file is configured
var ErrNoOutFile = errors.New("no output file configured")

// FormatDump renders contents as consecutive "Test:/Content:" sections
func FormatDump(contents domain.TestContents) []byte {
	var buf bytes.Buffer
	for _, file := range contents.Files {
		fmt.Fprintf(&buf, "Test: %s\nContent:\n%s\n\n", file.Name, file.Content)
	}
	return buf.Bytes()
}

// Save writes the collected contents to the configured output file.
func (s *DumpStorage) Save(contents domain.TestContents) (string, error) {
	path := s.cfg.GetOutFile()
	if path == "" {
		return "", ErrNoOutFile
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, FormatDump(contents), config.DefaultOutFileMode); err != nil {
		return "", fmt.Errorf("write output file: %w", err)
	}
	return path, nil
}
