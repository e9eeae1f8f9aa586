package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar shows how many log files have been matched so far
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a new progress bar on stderr. A negative count draws a spinner.
func NewProgressBar(count int) *ProgressBar {
	return newProgressBar(os.Stderr, count)
}

func newProgressBar(w io.Writer, count int) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(describe(0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

func describe(found, excluded int) string {
	return color.CyanString("Scanning for tests: ") +
		color.GreenString("[matched: %d", found) +
		" | " +
		color.YellowString("no-test: %d]", excluded)
}

// Update advances the bar to found+excluded files and refreshes the counters
func (p *ProgressBar) Update(found, excluded int) {
	p.bar.Describe(describe(found, excluded))
	p.bar.Set(found + excluded)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}
