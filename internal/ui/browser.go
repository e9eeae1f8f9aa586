package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"hlh/internal/domain"
)

// ContentBrowser displays collected log files in an interactive TUI
type ContentBrowser struct {
	app *tview.Application
}

// NewContentBrowser creates a new ContentBrowser
func NewContentBrowser() *ContentBrowser {
	return &ContentBrowser{}
}

// View displays the collected files: filenames on the left, content on the right
func (cb *ContentBrowser) View(contents *domain.TestContents) error {
	if len(contents.Files) == 0 {
		color.Yellow("No log files found for test %q", contents.TestName)
		return nil
	}

	cb.app = tview.NewApplication()
	if err := cb.app.SetRoot(cb.layout(contents), true).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func (cb *ContentBrowser) layout(contents *domain.TestContents) tview.Primitive {
	app := cb.app

	// Create list for collected files (left side)
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, file := range contents.Files {
		list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s", i+1, tview.Escape(file.Name)), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	// Path of the selected file
	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	// Raw content of the selected file
	contentView := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(true)

	contentContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(contentView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 2, 0, false).
		AddItem(contentContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(formatBrowserHeader(contents))

	updateDetails := func(index int) {
		if index < 0 || index >= len(contents.Files) {
			return
		}
		file := contents.Files[index]
		statsView.SetText(formatFileStats(file))
		contentView.SetText(tview.Escape(file.Content)).ScrollToBeginning()
	}

	list.SetChangedFunc(func(index int, _ string, _ string, _ rune) {
		updateDetails(index)
	})
	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(contentView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})
	contentView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	updateDetails(0)

	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)
}

// formatBrowserHeader formats the title line of the browser
func formatBrowserHeader(contents *domain.TestContents) string {
	return fmt.Sprintf(" Test %s (%d files) | Use ↑↓ to navigate, → to read, ← to go back, [yellow]q[white] to exit ",
		tview.Escape(contents.TestName), len(contents.Files))
}

// formatFileStats formats the path line shown above a file's content
func formatFileStats(file domain.TestContent) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("[cyan]path:[white] [yellow]%s[white]\n", tview.Escape(file.Path)))
	builder.WriteString(fmt.Sprintf("[cyan]size:[white] %d bytes, %d lines", len(file.Content), strings.Count(file.Content, "\n")+1))
	return builder.String()
}
