package gridlet

import (
	"testing"

	nt "gridlet/entity"
)

type specimen struct {
	Id  int
	Age int
}

func hundredRows() []specimen {
	rows := make([]specimen, 100)
	for i := range rows {
		rows[i] = specimen{Id: i, Age: i + 1}
	}
	return rows
}

func specimenColumns() []Column[specimen] {
	return []Column[specimen]{
		{Key: "id", Title: "Id", Width: 4, Fixed: nt.PinLeft},
		{Key: "age", Title: "Age", Width: 6, Sortable: true},
	}
}

// cursorOn positions the header cursor over a key in render order.
func cursorOn[T any](mdl Model[T], key string) Model[T] {
	for i, col := range partitionColumns(mdl.columns).ordered() {
		if col.Key == key {
			mdl.cursor = i
			return mdl
		}
	}
	return mdl
}

// 100 rows sorted age ascending, ten per page: the first page shows
// ids 0-9; toggling the age header flips to descending, resets to
// page one, and shows ids 90-99.
func TestModel_SortThenPageScenario(t *testing.T) {
	t.Parallel()

	mdl := New(hundredRows(), specimenColumns(),
		WithDefaultSort[specimen]("age", nt.Asc))

	rows, _, _, total := mdl.pageRows()
	if total != 10 {
		t.Fatalf("total pages = %d, want 10", total)
	}
	for i, row := range rows {
		if row.Id != i {
			t.Fatalf("page 1 asc row %d id = %d, want %d", i, row.Id, i)
		}
	}

	mdl = mdl.goTo(4)
	mdl = cursorOn(mdl, "age")
	mdl = mdl.toggleSort()

	if got := mdl.State().Page; got != 1 {
		t.Fatalf("page after sort toggle = %d, want 1", got)
	}
	if got := mdl.State().Sort.Direction; got != nt.Desc {
		t.Fatalf("direction after toggle = %q, want desc", got)
	}

	rows, _, _, _ = mdl.pageRows()
	for i, row := range rows {
		want := 99 - i
		if row.Id != want {
			t.Fatalf("page 1 desc row %d id = %d, want %d", i, row.Id, want)
		}
	}
	if rows[0].Age != 100 || rows[9].Age != 91 {
		t.Fatalf("desc ages = %d..%d, want 100..91", rows[0].Age, rows[9].Age)
	}
}

func TestModel_ToggleIgnoresUnsortable(t *testing.T) {
	t.Parallel()

	mdl := New(hundredRows(), specimenColumns())
	mdl = cursorOn(mdl, "id") // pinned, not sortable
	mdl = mdl.toggleSort()

	if mdl.State().Sort.Active() {
		t.Fatalf("sort activated on unsortable column: %+v", mdl.State().Sort)
	}
}

// Sortability gates only the header control: a default sort on a
// non-sortable column still sorts.
func TestModel_DefaultSortUnsortableColumn(t *testing.T) {
	t.Parallel()

	mdl := New(hundredRows(), specimenColumns(),
		WithDefaultSort[specimen]("id", nt.Desc))

	rows, _, _, _ := mdl.pageRows()
	if rows[0].Id != 99 {
		t.Fatalf("first row id = %d, want 99", rows[0].Id)
	}
}

func TestModel_PageSizeZeroShowsAll(t *testing.T) {
	t.Parallel()

	mdl := New(hundredRows(), specimenColumns(),
		WithPageSize[specimen](0))

	rows, _, _, total := mdl.pageRows()
	if total != 1 {
		t.Fatalf("total pages = %d, want 1", total)
	}
	if len(rows) != 100 {
		t.Fatalf("visible rows = %d, want all 100", len(rows))
	}
}

func TestModel_GoToCurrentPageNoOp(t *testing.T) {
	t.Parallel()

	mdl := New(hundredRows(), specimenColumns())
	mdl = mdl.goTo(3)
	mdl.selected = 5

	mdl = mdl.goTo(3)
	if mdl.selected != 5 {
		t.Fatalf("selection reset by no-op page move: %d", mdl.selected)
	}

	mdl = mdl.goTo(4)
	if mdl.selected != 0 {
		t.Fatalf("selection kept across page move: %d", mdl.selected)
	}
}

// Replacing the rows with a smaller set pins the page onto the last
// valid one.
func TestModel_SetRowsClampsPage(t *testing.T) {
	t.Parallel()

	mdl := New(hundredRows(), specimenColumns())
	mdl = mdl.goTo(10)

	mdl = mdl.setRows(hundredRows()[:25])
	if got := mdl.State().Page; got != 3 {
		t.Fatalf("page after shrink = %d, want 3", got)
	}

	rows, _, _, total := mdl.pageRows()
	if total != 3 {
		t.Fatalf("total pages = %d, want 3", total)
	}
	if len(rows) != 5 {
		t.Fatalf("last page rows = %d, want 5", len(rows))
	}
}

func TestModel_DefaultsApplied(t *testing.T) {
	t.Parallel()

	mdl := New(hundredRows(), []Column[specimen]{{Key: "id"}})

	if mdl.pageSize != DefaultPageSize {
		t.Fatalf("page size = %d, want %d", mdl.pageSize, DefaultPageSize)
	}
	if mdl.size != SizeMiddle {
		t.Fatalf("size = %q, want middle", mdl.size)
	}
	if mdl.columns[0].Width != defaultWidth {
		t.Fatalf("zero width not defaulted: %d", mdl.columns[0].Width)
	}
}
