package gridlet

import nt "gridlet/entity"

// State is the grid's transient UI state: the active sort and the
// current page. Transitions are pure, each returns the next state.
type State struct {
	Sort nt.Sort
	Page int
}

// ToggleSort activates a sort on key and resets to the first page.
func (st State) ToggleSort(key string) State {
	return State{
		Sort: st.Sort.Toggle(key),
		Page: 1,
	}
}

// GoTo moves to a page, pinned into [1, total].
func (st State) GoTo(page, total int) State {
	st.Page = clampPage(page, total)
	return st
}

// NextPage advances one page, stopping at the last.
func (st State) NextPage(total int) State {
	return st.GoTo(st.Page+1, total)
}

// PrevPage backs up one page, stopping at the first.
func (st State) PrevPage(total int) State {
	return st.GoTo(st.Page-1, total)
}

// Clamp pins the current page after the row set changes underneath,
// landing on the last valid page when the data shrinks.
func (st State) Clamp(total int) State {
	st.Page = clampPage(st.Page, total)
	return st
}
