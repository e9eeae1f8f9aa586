package main

import (
	"os"

	"hlh/internal/cli"
	"hlh/internal/cli/commands"
	"hlh/internal/config"
	"hlh/internal/ui"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		ui.NewLogger(os.Stderr).Errorf("%v", err)
		os.Exit(1)
	}
}

// newRootCmd wires list-tests and cat-test under the hlh root command.
// Flag values land in flags and are copied into cfg before each command runs.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "hlh",
		Short:   "HTTP log helper",
		Long:    `Inspect a tree of HTTP log files by the test name embedded in each filename (<prefix>_<test name>_<suffix>). List how many logs each test produced, or print every log recorded for one test.`,
		Version: version,
	}

	cfg := config.New()
	flags := &cli.Flags{}
	commands.NewCommands(cfg).Register(rootCmd, flags, cfg)

	return rootCmd
}
