package gridlet

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	nt "gridlet/entity"
	"gridlet/style"
)

const (
	headerHeight   = 2 // header row + separator line
	footerHeight   = 2 // pager line + footer line
	maxPageButtons = 9
	defaultWidth   = 10
)

// View derives everything from scratch each render: sort the full row
// set, slice the current page, partition the columns, and compose the
// three pinned segments with the pager and footer.
func (mdl Model[T]) View() tea.View {

	if mdl.width == 0 {
		return tea.NewView("Loading...")
	}

	rows, start, end, total := mdl.pageRows()

	grid := mdl.renderGrid(rows)
	gridLayer := lipgloss.NewLayer("grid", grid)

	canvas := lipgloss.NewCanvas(mdl.width, mdl.height)
	canvas.Compose(gridLayer)

	if total > 1 {
		pagerLayer := lipgloss.NewLayer("pager", mdl.renderPager(total)).
			Y(mdl.height - footerHeight)
		canvas.Compose(pagerLayer)
	}

	footer := RenderFooter(start, end, len(mdl.rows), mdl.name, mdl.gridWidth())
	footerLayer := lipgloss.NewLayer("footer", footer).Y(mdl.height - 1)
	canvas.Compose(footerLayer)

	view := tea.NewView(canvas)
	view.AltScreen = true
	return view
}

// unexported

// renderGrid renders the page's rows as up to three table segments:
// pinned-left, the horizontally scrolled free window, and pinned-right.
// Pinned segments hold their place while h/l slides the free window.
func (mdl Model[T]) renderGrid(rows []T) string {

	prt := partitionColumns(mdl.columns)

	avail := mdl.gridWidth() - groupWidth(prt.left) - groupWidth(prt.right)
	hs := mdl.hscroll
	if hs > len(prt.free)-1 {
		hs = len(prt.free) - 1
	}
	if hs < 0 {
		hs = 0
	}
	visFree := fitColumns(prt.free, hs, avail)

	vstart, vend := vWindow(mdl.selected, len(rows), mdl.bodyHeight())
	windowed := rows[vstart:vend]
	selected := mdl.selected - vstart

	var segments []string
	if len(prt.left) > 0 {
		segments = append(segments, mdl.renderSegment(prt.left, 0, windowed, selected))
	}
	if len(visFree) > 0 {
		segments = append(segments, mdl.renderSegment(visFree, len(prt.left)+hs, windowed, selected))
	}
	if len(prt.right) > 0 {
		segments = append(segments, mdl.renderSegment(prt.right, len(prt.left)+len(prt.free), windowed, selected))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, segments...)
}

// renderSegment renders one column group as a lipgloss table. base is
// the render-order index of the group's first column, used to place
// the header cursor.
func (mdl Model[T]) renderSegment(columns []Column[T], base int, rows []T, selected int) string {

	tbl := table.New()
	style.StyleTable(tbl)
	tbl.StyleFunc(style.RowStyler(selected))

	pad := style.CellPadding(string(mdl.size))

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = mdl.renderHeader(col, base+i, pad)
	}
	tbl.Headers(headers...)

	for _, row := range rows {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = padded(truncate(col.cell(row), col.Width), col.Width, pad)
		}
		tbl.Row(cells...)
	}

	return tbl.Render()
}

// renderHeader renders one header cell: the title, the sort indicator
// on the active sort column only, and a muted toggle hint on sortable
// columns. The cursored header is highlighted.
func (mdl Model[T]) renderHeader(col Column[T], idx, pad int) string {

	title := col.header()

	glyph := ""
	switch {
	case mdl.state.Sort.Active() && mdl.state.Sort.Key == col.Key:
		glyph = style.AscGlyph
		if mdl.state.Sort.Direction == nt.Desc {
			glyph = style.DescGlyph
		}
	case col.Sortable:
		glyph = "⇅"
	}

	room := col.Width
	if glyph != "" {
		room -= 2
	}
	text := padded(truncate(title, room), room, pad)

	hdr := style.HeaderStyle
	if idx == mdl.cursor {
		hdr = style.CursorHeaderStyle
	}

	out := hdr.Render(text)
	switch {
	case glyph == "":
	case glyph == "⇅":
		out += " " + style.MutedStyle.Render(glyph)
	default:
		out += " " + style.SortHeaderStyle.Render(glyph)
	}

	return out
}

// renderPager renders "Page X of Y" and one button per page, windowed
// around the current page when there are many. The current page's
// button is highlighted and pressing its number changes nothing.
func (mdl Model[T]) renderPager(total int) string {

	label := style.PagerStyle.Render(fmt.Sprintf("Page %d of %d", mdl.state.Page, total))

	first, last := pagerWindow(mdl.state.Page, total, maxPageButtons)

	var btns []string
	if first > 1 {
		btns = append(btns, style.PagerStyle.Render("…"))
	}
	for p := first; p <= last; p++ {
		btn := style.PageButtonStyle
		if p == mdl.state.Page {
			btn = style.PageCurrentStyle
		}
		btns = append(btns, btn.Render(strconv.Itoa(p)))
	}
	if last < total {
		btns = append(btns, style.PagerStyle.Render("…"))
	}

	return label + " " + strings.Join(btns, "")
}

// pagerWindow picks the button range to show, keeping the current
// page near the middle once total exceeds max.
func pagerWindow(page, total, max int) (first, last int) {
	if total <= max {
		return 1, total
	}

	first = page - max/2
	if first < 1 {
		first = 1
	}
	last = first + max - 1
	if last > total {
		last = total
		first = last - max + 1
	}
	return
}

// vWindow bounds the visible slice of the page to size rows, keeping
// the selection in view.
func vWindow(selected, count, size int) (start, end int) {
	if size <= 0 || size >= count {
		return 0, count
	}

	start = selected - size + 1
	if start < 0 {
		start = 0
	}
	end = start + size
	if end > count {
		end = count
	}
	return
}

func (mdl Model[T]) gridWidth() int {
	if mdl.scroll.X > 0 && mdl.scroll.X < mdl.width {
		return mdl.scroll.X
	}
	return mdl.width
}

func (mdl Model[T]) bodyHeight() int {
	if mdl.scroll.Y > 0 {
		return mdl.scroll.Y
	}
	return mdl.height - headerHeight - footerHeight
}

// fitColumns takes the free columns visible from first within avail
// width, walking the prefix-sum offsets of the remaining widths. At
// least one column shows even when it overflows.
func fitColumns[T any](columns []Column[T], first, avail int) []Column[T] {
	if first >= len(columns) {
		return nil
	}

	tail := columns[first:]
	offs := offsets(tail)

	n := 0
	for i, col := range tail {
		if offs[i]+col.Width > avail {
			break
		}
		n++
	}
	if n == 0 {
		n = 1
	}

	return tail[:n]
}

func padded(in string, width, pad int) string {
	return fmt.Sprintf("%*s%-*s", pad, "", width+pad, in)
}

func truncate(in string, width int) string {

	if width < 1 || len(in) <= width {
		return in
	}

	truncated := in[:width-1]
	ellipsis := style.MutedStyle.Render("…")
	return truncated + ellipsis
}
