package gridlet

import tea "charm.land/bubbletea/v2"

// SetRowsMsg replaces the grid's rows wholesale. The current page is
// pinned onto the last valid page if the new set is smaller.
type SetRowsMsg[T any] struct {
	Rows []T
}

// SetRowsCmd returns a command carrying replacement rows.
func SetRowsCmd[T any](rows []T) tea.Cmd {
	return func() tea.Msg {
		return SetRowsMsg[T]{Rows: rows}
	}
}
