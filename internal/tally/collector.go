package tally

import (
	"fmt"
	"os"
	"sort"
	"unicode/utf8"

	"hlh/internal/discovery"
	"hlh/internal/domain"
)

// Collector gathers the content of every log file recorded for one test
type Collector struct {
	extractor *discovery.Extractor
	target    string
	files     map[string]domain.TestContent
	byName    map[string][]string
	skipped   []domain.SkippedFile

	// OnSkip is called when a matching file cannot be read or is not text
	OnSkip func(domain.SkippedFile)
	// OnDuplicate is called when a matching filename shows up under another path
	OnDuplicate func(name string, paths []string)

	readFile func(string) ([]byte, error)
}

// NewCollector creates a new Collector for the test named target
func NewCollector(extractor *discovery.Extractor, target string) *Collector {
	return &Collector{
		extractor: extractor,
		target:    target,
		files:     make(map[string]domain.TestContent),
		byName:    make(map[string][]string),
		readFile:  os.ReadFile,
	}
}

// Add reads file when its test name equals the target
func (c *Collector) Add(file domain.LogFile) {
	match := c.extractor.Classify(file.Name)
	if match.Kind == domain.MatchNone || match.Name != c.target {
		return
	}
	if _, seen := c.files[file.Path]; seen {
		return
	}

	data, err := c.readFile(file.Path)
	if err != nil {
		c.skip(file.Path, fmt.Sprintf("read failed: %v", err))
		return
	}
	if !utf8.Valid(data) {
		c.skip(file.Path, "content is not valid UTF-8 text")
		return
	}

	c.files[file.Path] = domain.TestContent{Path: file.Path, Name: file.Name, Content: string(data)}
	c.byName[file.Name] = append(c.byName[file.Name], file.Path)
	if paths := c.byName[file.Name]; len(paths) > 1 && c.OnDuplicate != nil {
		c.OnDuplicate(file.Name, paths)
	}
}

func (c *Collector) skip(path, reason string) {
	skipped := domain.SkippedFile{Path: path, Reason: reason}
	c.skipped = append(c.skipped, skipped)
	if c.OnSkip != nil {
		c.OnSkip(skipped)
	}
}

// Len returns the number of collected files
func (c *Collector) Len() int {
	return len(c.files)
}

// Result returns the collected files sorted by filename, then by path
func (c *Collector) Result() domain.TestContents {
	files := make([]domain.TestContent, 0, len(c.files))
	for _, f := range c.files {
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool {
		if files[i].Name != files[j].Name {
			return files[i].Name < files[j].Name
		}
		return files[i].Path < files[j].Path
	})

	skipped := make([]domain.SkippedFile, len(c.skipped))
	copy(skipped, c.skipped)

	return domain.TestContents{TestName: c.target, Files: files, Skipped: skipped}
}
