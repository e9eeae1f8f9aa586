package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"hlh/internal/domain"
)

const tableMargin = "  "

// Formatter formats and displays command output
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

// PrintTestTable prints the test list as a psql style table
//
//	   Found 2 tests:
//	   Test Name | Found Count
//	  -----------+-------------
//	   alpha     | 2
//	   beta      | 1
func (f *Formatter) PrintTestTable(list domain.TestList) error {
	headers := [2]string{"Test Name", "Found Count"}
	widths := [2]int{runewidth.StringWidth(headers[0]), runewidth.StringWidth(headers[1])}

	cells := make([][2]string, 0, len(list.Rows))
	for _, row := range list.Rows {
		cell := [2]string{row.TestName, strconv.Itoa(row.FoundCount)}
		for i := range cell {
			if w := runewidth.StringWidth(cell[i]); w > widths[i] {
				widths[i] = w
			}
		}
		cells = append(cells, cell)
	}

	var b strings.Builder
	b.WriteString(tableMargin + " " + color.GreenString("Found %d tests:", list.Total) + "\n")
	b.WriteString(formatRow(headers, widths))
	b.WriteString(tableMargin + strings.Repeat("-", widths[0]+2) + "+" + strings.Repeat("-", widths[1]+2) + "\n")
	for _, cell := range cells {
		b.WriteString(formatRow(cell, widths))
	}

	_, err := io.WriteString(f.out, b.String())
	return err
}

func formatRow(cell [2]string, widths [2]int) string {
	line := tableMargin + " " + runewidth.FillRight(cell[0], widths[0]) + " | " + cell[1]
	return strings.TrimRight(line, " ") + "\n"
}

// PrintTestJSON prints the test list as an indented JSON object
func (f *Formatter) PrintTestJSON(list domain.TestList) error {
	if list.Rows == nil {
		list.Rows = []domain.TestRow{}
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal test list: %w", err)
	}
	_, err = fmt.Fprintln(f.out, string(data))
	return err
}

// PrintTestContents prints every collected file as a delimited block
func (f *Formatter) PrintTestContents(contents domain.TestContents) error {
	marker := color.New(color.FgCyan)
	for _, file := range contents.Files {
		if _, err := marker.Fprintf(f.out, "-- %s --\n", file.Name); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(f.out, "\n%s\n\n", file.Content); err != nil {
			return err
		}
		if _, err := marker.Fprintf(f.out, "-- End of %s --\n", file.Name); err != nil {
			return err
		}
	}
	return nil
}
