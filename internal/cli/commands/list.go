package commands

import (
	"github.com/spf13/cobra"

	"hlh/internal/config"
	"hlh/internal/discovery"
	"hlh/internal/domain"
	"hlh/internal/tally"
	"hlh/internal/ui"
)

// ListCommand handles the list-tests command
type ListCommand struct {
	config    *config.Config
	extractor *discovery.Extractor
	filter    *discovery.Filter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	extractor *discovery.Extractor,
	filter *discovery.Filter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		extractor: extractor,
		filter:    filter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	logger := ui.NewLogger(cmd.ErrOrStderr())
	scanner := newScanner(lc.config, logger)
	agg := tally.NewAggregator(lc.extractor, lc.filter, lc.config.Flags.NameFilter)

	var progress *ui.ProgressBar
	if lc.config.ShowProgress() && ui.StderrIsTerminal() {
		progress = ui.NewProgressBar(-1)
		var found, excluded int
		agg.Observe(func(_ domain.LogFile, m domain.Match) {
			switch m.Kind {
			case domain.MatchFound:
				found++
			case domain.MatchExcluded:
				excluded++
			default:
				return
			}
			progress.Update(found, excluded)
		})
	}

	list, err := tally.List(scanner, lc.config.GetInPath(), agg, lc.config.SortOrder)
	if progress != nil {
		progress.Finish()
	}
	if err != nil {
		return err
	}

	formatter := ui.NewFormatter(cmd.OutOrStdout())
	if lc.config.Flags.JSON {
		return formatter.PrintTestJSON(list)
	}
	return formatter.PrintTestTable(list)
}
