package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"hlh/internal/domain"
)

// ErrRootUnreadable is returned when the scan root does not exist or cannot be opened
var ErrRootUnreadable = errors.New("log path is not readable")

// Scanner walks a directory tree and yields every regular file in it
type Scanner struct {
	skipDirs   map[string]bool
	skipHidden bool

	// OnError is called for entries below the root that cannot be read.
	// The entry is skipped and the walk goes on.
	OnError func(path string, err error)
}

// NewScanner creates a new Scanner with the given directories to skip
func NewScanner(skipDirs []string, skipHidden bool) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{skipDirs: skipMap, skipHidden: skipHidden}
}

// Walk calls fn for every regular file under root. A symlinked root is
// followed; symlinks below it are neither followed nor yielded. An error
// returned by fn stops the walk.
func (s *Scanner) Walk(root string, fn func(domain.LogFile) error) error {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRootUnreadable, root, err)
	}

	// WalkDir lstats its root; the trailing separator makes that resolve
	// a symlinked directory while child paths still start with root.
	walkRoot := root
	if info.IsDir() && !strings.HasSuffix(walkRoot, string(filepath.Separator)) {
		walkRoot += string(filepath.Separator)
	}

	return filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == walkRoot {
				return fmt.Errorf("%w: %s: %w", ErrRootUnreadable, root, err)
			}
			s.reportError(path, err)
			return nil
		}

		if d.IsDir() {
			if path == walkRoot {
				return nil
			}
			name := d.Name()
			if s.skipHidden && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if s.skipDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		return fn(domain.LogFile{Path: path, Name: d.Name()})
	})
}

func (s *Scanner) reportError(path string, err error) {
	if s.OnError != nil {
		s.OnError(path, err)
	}
}
