package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hlh/internal/config"
	"hlh/internal/discovery"
	"hlh/internal/domain"
	"hlh/internal/storage"
	"hlh/internal/tally"
	"hlh/internal/ui"
)

// CatCommand handles the cat-test command
type CatCommand struct {
	config    *config.Config
	extractor *discovery.Extractor
	storage   storage.Storage
	viewer    ui.Viewer
}

// NewCatCommand creates a new CatCommand
func NewCatCommand(
	cfg *config.Config,
	extractor *discovery.Extractor,
	st storage.Storage,
	viewer ui.Viewer,
) *CatCommand {
	return &CatCommand{
		config:    cfg,
		extractor: extractor,
		storage:   st,
		viewer:    viewer,
	}
}

// Execute runs the command
func (cc *CatCommand) Execute(cmd *cobra.Command, args []string) error {
	logger := ui.NewLogger(cmd.ErrOrStderr())
	scanner := newScanner(cc.config, logger)

	testName := cc.config.Flags.TestName
	collector := tally.NewCollector(cc.extractor, testName)
	collector.OnSkip = func(s domain.SkippedFile) {
		logger.Warnf("skipping %s: %s", s.Path, s.Reason)
	}
	collector.OnDuplicate = func(name string, paths []string) {
		logger.Warnf("%s found in %d places: %s", name, len(paths), strings.Join(paths, ", "))
	}

	contents, err := tally.Collect(scanner, cc.config.GetInPath(), collector)
	if err != nil {
		return err
	}

	if cc.config.Flags.Interactive {
		return cc.viewer.View(&contents)
	}

	if collector.Len() == 0 {
		logger.Infof("No log files found for test %q", testName)
	}

	if cc.config.GetOutFile() != "" {
		path, err := cc.storage.Save(contents)
		if err != nil {
			return fmt.Errorf("unable to write to output file: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Extracted data written to %s\n", path)
		return nil
	}

	return ui.NewFormatter(cmd.OutOrStdout()).PrintTestContents(contents)
}
