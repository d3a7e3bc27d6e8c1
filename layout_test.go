package gridlet

import (
	"os"
	"path/filepath"
	"testing"

	nt "gridlet/entity"
)

const sampleLayout = `
columns:
  - key: id
    title: Id
    width: 4
    fixed: left
  - key: age
    title: Age
    width: 6
    sortable: true
page_size: 0
size: small
sort:
  key: age
  direction: desc
`

func TestLoadLayout(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(path, []byte(sampleLayout), 0644); err != nil {
		t.Fatal(err)
	}

	layout, err := LoadLayout[specimen](path)
	if err != nil {
		t.Fatal(err)
	}

	if len(layout.Columns) != 2 {
		t.Fatalf("columns = %d, want 2", len(layout.Columns))
	}
	if got := layout.Columns[0].Fixed; got != nt.PinLeft {
		t.Fatalf("first column pin = %q, want left", got)
	}
	if !layout.Columns[1].Sortable {
		t.Fatal("age column not sortable")
	}

	mdl := New(hundredRows(), layout.Columns, layout.Options()...)

	if mdl.pageSize != 0 {
		t.Fatalf("explicit zero page size = %d, want 0 (paging off)", mdl.pageSize)
	}
	if mdl.size != SizeSmall {
		t.Fatalf("size = %q, want small", mdl.size)
	}

	rows, _, _, total := mdl.pageRows()
	if total != 1 {
		t.Fatalf("total pages = %d, want 1", total)
	}
	if rows[0].Age != 100 {
		t.Fatalf("first row age = %d, want 100 (desc)", rows[0].Age)
	}
}

func TestLoadLayout_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadLayout[specimen]("no/such/layout.yaml")
	if err == nil {
		t.Fatal("expected error for missing layout")
	}
}
