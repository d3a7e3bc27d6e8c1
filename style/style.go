// Package style collects the lipgloss styles shared by the grid and
// its demos.
package style

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

var (
	TableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // Subtle warm grey border
	HlRowStyle       = lipgloss.NewStyle().Background(lipgloss.Color("235")) // Very subtle warm grey row
	MutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("246")) // Warm muted grey text
	UnStyle          = lipgloss.NewStyle()

	HeaderStyle       = lipgloss.NewStyle().Bold(true)
	CursorHeaderStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	SortHeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))

	PagerStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	PageButtonStyle  = lipgloss.NewStyle().Padding(0, 1)
	PageCurrentStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Reverse(true)
	PageCursorStyle  = lipgloss.NewStyle().Padding(0, 1).Underline(true)
)

// Sort indicator glyphs, shown only on the active sort column.
const (
	AscGlyph  = "↑"
	DescGlyph = "↓"
)

// CellPadding maps a grid density to horizontal cell padding.
func CellPadding(size string) int {
	switch size {
	case "small":
		return 0
	case "large":
		return 2
	}
	return 1
}

// RowStyler returns a StyleFunc that highlights the selected row.
func RowStyler(selectedRow int) func(row, col int) lipgloss.Style {
	return func(row, col int) lipgloss.Style {
		if row == selectedRow {
			return HlRowStyle
		}
		return UnStyle
	}
}

// StyleTable applies the shared border treatment: a single separator
// line under the header, nothing else.
func StyleTable(tbl *table.Table) {
	tbl.Border(lipgloss.Border{
		Top:         "─",
		Middle:      "─",
		MiddleLeft:  "─",
		MiddleRight: "─",
	}).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderStyle(TableBorderStyle)
}
