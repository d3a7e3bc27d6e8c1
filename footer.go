package gridlet

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"gridlet/style"
)

// RenderFooter renders the status line: the visible row range on the
// left, the grid's name on the right.
func RenderFooter(start, end, total int, name string, width int) string {

	left := fmt.Sprintf("rows %d-%d of %d", start+1, end, total)
	if total == 0 {
		left = "no rows"
	}
	right := name

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.MutedStyle.Render(left + strings.Repeat(" ", padding) + right)
}
