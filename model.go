package gridlet

import (
	"context"

	tea "charm.land/bubbletea/v2"

	nt "gridlet/entity"
)

// Model is the bubbletea model for one grid instance. Instances are
// independent; all state beyond Sort and Page is derived per render.
type Model[T any] struct {
	rows    []T
	columns []Column[T]

	state    State
	pageSize int
	size     Size
	scroll   Scroll
	name     string

	cursor   int // header cursor, render-order column index
	selected int // row within the visible page
	hscroll  int // first visible free column

	width  int
	height int

	ctx    context.Context
	logger nt.Logger
}

// New builds a grid over rows and columns. Rows are supplied wholesale
// and never mutated; replace them with a SetRowsMsg.
func New[T any](rows []T, columns []Column[T], opts ...Option[T]) Model[T] {

	mdl := Model[T]{
		rows:     rows,
		columns:  columns,
		state:    State{Sort: nt.Sort{Direction: nt.Asc}, Page: 1},
		pageSize: DefaultPageSize,
		size:     SizeMiddle,
		ctx:      context.Background(),
	}

	for _, opt := range opts {
		opt(&mdl)
	}

	// default missing widths so offsets and windows stay meaningful
	mdl.columns = make([]Column[T], len(columns))
	copy(mdl.columns, columns)
	for i := range mdl.columns {
		if mdl.columns[i].Width <= 0 {
			mdl.columns[i].Width = defaultWidth
		}
	}

	return mdl
}

func (mdl Model[T]) Init() tea.Cmd {
	return nil
}

func (mdl Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case SetRowsMsg[T]:
		return mdl.setRows(msg.Rows), nil

	case tea.WindowSizeMsg:
		mdl.width = msg.Width
		mdl.height = msg.Height
		return mdl, nil

	case tea.KeyPressMsg:
		return mdl.handleKey(msg)
	}

	return mdl, nil
}

// State exposes the current sort and page, mostly for callers wiring
// the grid into a larger model.
func (mdl Model[T]) State() State {
	return mdl.state
}

// unexported

func (mdl Model[T]) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {

	switch msg.String() {

	case "ctrl+c", "q", "esc":
		return mdl, tea.Quit

	case "left":
		if mdl.cursor > 0 {
			mdl.cursor--
		}

	case "right":
		if mdl.cursor < len(mdl.columns)-1 {
			mdl.cursor++
		}

	case "enter", "s":
		mdl = mdl.toggleSort()

	case "h":
		if mdl.hscroll > 0 {
			mdl.hscroll--
		}

	case "l":
		prt := partitionColumns(mdl.columns)
		if mdl.hscroll < len(prt.free)-1 {
			mdl.hscroll++
		}

	case "up", "k":
		if mdl.selected > 0 {
			mdl.selected--
		}

	case "down", "j":
		if mdl.selected < mdl.pageLen()-1 {
			mdl.selected++
		}

	case "n", "pgdown":
		mdl = mdl.goTo(mdl.state.Page + 1)

	case "p", "pgup":
		mdl = mdl.goTo(mdl.state.Page - 1)

	case "g":
		mdl = mdl.goTo(1)

	case "G":
		mdl = mdl.goTo(mdl.totalPages())

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		mdl = mdl.goTo(int(msg.String()[0] - '0'))
	}

	return mdl, nil
}

// toggleSort flips the sort on the cursored column and returns to the
// first page. Sortability gates the control here; a default sort on a
// non-sortable column still sorts.
func (mdl Model[T]) toggleSort() Model[T] {

	ordered := partitionColumns(mdl.columns).ordered()
	if mdl.cursor >= len(ordered) || !ordered[mdl.cursor].Sortable {
		return mdl
	}

	key := ordered[mdl.cursor].Key
	mdl.state = mdl.state.ToggleSort(key)
	mdl.selected = 0

	if mdl.logger != nil {
		mdl.logger.Info(mdl.ctx, "sort toggled",
			"key", key,
			"direction", string(mdl.state.Sort.Direction))
	}

	return mdl
}

// goTo moves to a page; landing on the current page is a no-op.
func (mdl Model[T]) goTo(page int) Model[T] {

	next := mdl.state.GoTo(page, mdl.totalPages())
	if next.Page == mdl.state.Page {
		return mdl
	}

	mdl.state = next
	mdl.selected = 0
	return mdl
}

// setRows replaces the data wholesale, pinning the page onto the last
// valid one when the row set shrinks.
func (mdl Model[T]) setRows(rows []T) Model[T] {

	mdl.rows = rows
	mdl.state = mdl.state.Clamp(totalPages(len(rows), mdl.pageSize))

	if mdl.selected >= mdl.pageLen() {
		mdl.selected = 0
	}

	return mdl
}

func (mdl Model[T]) totalPages() int {
	return totalPages(len(mdl.rows), mdl.pageSize)
}

// pageLen is the number of rows on the current page.
func (mdl Model[T]) pageLen() int {
	start, end := pageBounds(mdl.state.Page, mdl.pageSize, len(mdl.rows))
	return end - start
}

// pageRows derives the current page: the full row set sorted, then
// sliced. Everything the view shows flows through here.
func (mdl Model[T]) pageRows() (rows []T, start, end, total int) {
	sorted := sortRows(mdl.rows, mdl.state.Sort)
	total = totalPages(len(sorted), mdl.pageSize)
	start, end = pageBounds(mdl.state.Page, mdl.pageSize, len(sorted))
	rows = sorted[start:end]
	return
}
