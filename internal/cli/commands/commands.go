package commands

import (
	"hlh/internal/cli"
	"hlh/internal/config"
	"hlh/internal/discovery"
	"hlh/internal/storage"
	"hlh/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	List *ListCommand
	Cat  *CatCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	extractor := discovery.NewExtractor(cfg.NoTestName)
	filter := discovery.NewFilter()
	dumpStorage := storage.NewDumpStorage(cfg)
	browser := ui.NewContentBrowser()

	return &Commands{
		List: NewListCommand(cfg, extractor, filter),
		Cat:  NewCatCommand(cfg, extractor, dumpStorage, browser),
	}
}

// newScanner builds a scanner from the config as it stands after flag parsing
func newScanner(cfg *config.Config, logger *ui.Logger) *discovery.Scanner {
	scanner := discovery.NewScanner(cfg.PathsToIgnore, cfg.SkipHidden)
	scanner.OnError = func(path string, err error) {
		logger.Warnf("error reading entry: %v", err)
	}
	return scanner
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if flags.NoColor {
			color.NoColor = true
		}
		return nil
	}

	applyFlags := func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		return cfg.Apply(flags.ToConfigFlags())
	}

	// List command
	listCmd := &cobra.Command{
		Use:     "list-tests",
		Short:   "List test names found in log filenames",
		Long:    "Scan a log directory and count the log files recorded for each test name",
		Args:    cobra.NoArgs,
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.InPath, "in-path", "i", "", "Path to the folder containing the HTTP logs")
	listCmd.Flags().BoolVar(&flags.JSON, "json", false, "Print the result as JSON")
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Only count test names matching a pattern (supports wildcards, e.g., 'login*' or '*replication*')")
	listCmd.Flags().StringVar(&flags.SortOrder, "sort", config.DefaultSortOrder, "Row order: 'name' or 'count'")
	listCmd.Flags().BoolVar(&flags.NoProgress, "no-progress", false, "Do not draw the scan progress bar")
	addScanFlags(listCmd, flags)
	_ = listCmd.MarkFlagRequired("in-path")
	rootCmd.AddCommand(listCmd)

	// Cat command
	catCmd := &cobra.Command{
		Use:     "cat-test",
		Short:   "Print the log files recorded for a test",
		Long:    "Scan a log directory and print every log file whose test name matches exactly",
		Args:    cobra.NoArgs,
		RunE:    c.Cat.Execute,
		PreRunE: applyFlags,
	}
	catCmd.Flags().StringVarP(&flags.InPath, "in-path", "i", "", "Path to the folder containing the HTTP logs")
	catCmd.Flags().StringVarP(&flags.TestName, "test-name", "t", "", "Test name to extract (exact, case-sensitive)")
	catCmd.Flags().StringVarP(&flags.OutFile, "out-file", "o", "", "Write the logs to this file instead of stdout")
	catCmd.Flags().BoolVar(&flags.Interactive, "interactive", false, "Browse the logs in an interactive viewer")
	addScanFlags(catCmd, flags)
	_ = catCmd.MarkFlagRequired("in-path")
	_ = catCmd.MarkFlagRequired("test-name")
	catCmd.MarkFlagsMutuallyExclusive("out-file", "interactive")
	rootCmd.AddCommand(catCmd)
}

func addScanFlags(cmd *cobra.Command, flags *cli.Flags) {
	cmd.Flags().BoolVar(&flags.SkipHidden, "skip-hidden", false, "Skip hidden directories while scanning")
	cmd.Flags().StringSliceVar(&flags.Ignore, "ignore", nil, "Directory names to skip while scanning (repeatable)")
}
