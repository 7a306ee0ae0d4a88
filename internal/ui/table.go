package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// MaxColumnWidth caps a column so long descriptions do not blow out the table
const MaxColumnWidth = 60

// TableValidationError is returned when table data is invalid
type TableValidationError struct {
	Message string
}

func (e TableValidationError) Error() string {
	return e.Message
}

// ValidateTableData checks that all rows have as many cells as headers
func ValidateTableData(headers []string, rows [][]string) error {
	if len(headers) == 0 {
		return TableValidationError{Message: "table must have at least one header"}
	}
	for i, row := range rows {
		if len(row) != len(headers) {
			return TableValidationError{
				Message: fmt.Sprintf("row %d has %d columns, expected %d (matching headers)", i, len(row), len(headers)),
			}
		}
	}
	return nil
}

// columnWidths sizes each column to its widest cell plus padding,
// capped at MaxColumnWidth
func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(cell))
			}
		}
	}
	for i := range widths {
		widths[i] = min(widths[i]+2, MaxColumnWidth)
	}
	return widths
}

// RenderTable renders a static table with bubbles/table
func RenderTable(headers []string, rows [][]string) (string, error) {
	if err := ValidateTableData(headers, rows); err != nil {
		return "", err
	}

	widths := columnWidths(headers, rows)
	columns := make([]table.Column, len(headers))
	for i, h := range headers {
		columns[i] = table.Column{Title: h, Width: widths[i]}
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = row
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithFocused(false),
		// header plus its bottom border
		table.WithHeight(len(rows)+2),
	)
	t.SetStyles(tableStyles())

	return t.View(), nil
}

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorSecondary)
	// unfocused tables still style the cursor row; keep it plain
	s.Selected = lipgloss.NewStyle()
	s.Cell = s.Cell.Foreground(ColorText)
	return s
}
