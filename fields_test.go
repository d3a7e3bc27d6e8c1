package gridlet

import (
	"testing"

	nt "gridlet/entity"
)

type gadget struct {
	Name     string
	PartNo   string `grid:"part"`
	internal int
}

func TestFieldValue_StructByName(t *testing.T) {
	t.Parallel()

	row := gadget{Name: "flange", PartNo: "F-100", internal: 3}

	if got := fieldValue(row, "name").String(); got != "flange" {
		t.Fatalf("name = %q", got)
	}
	if got := fieldValue(row, "Name").String(); got != "flange" {
		t.Fatalf("case-insensitive name = %q", got)
	}
}

func TestFieldValue_StructByTag(t *testing.T) {
	t.Parallel()

	row := gadget{PartNo: "F-100"}

	if got := fieldValue(row, "part").String(); got != "F-100" {
		t.Fatalf("tagged field = %q", got)
	}
	// the tag replaces the field name
	if got := fieldValue(row, "partno").String(); got != "" {
		t.Fatalf("untagged name resolved = %q, want empty", got)
	}
}

func TestFieldValue_Missing(t *testing.T) {
	t.Parallel()

	row := gadget{Name: "flange"}

	val := fieldValue(row, "nope")
	if val.Raw != nil {
		t.Fatalf("missing key raw = %v, want nil", val.Raw)
	}
	if got := val.String(); got != "" {
		t.Fatalf("missing key renders %q, want empty", got)
	}
	if got := fieldValue(row, "internal").String(); got != "" {
		t.Fatalf("unexported field resolved = %q, want empty", got)
	}
}

func TestFieldValue_Pointer(t *testing.T) {
	t.Parallel()

	row := &gadget{Name: "flange"}
	if got := fieldValue(row, "name").String(); got != "flange" {
		t.Fatalf("pointer row name = %q", got)
	}

	var nilRow *gadget
	if got := fieldValue(nilRow, "name").String(); got != "" {
		t.Fatalf("nil row renders %q, want empty", got)
	}
}

func TestFieldValue_Record(t *testing.T) {
	t.Parallel()

	row := nt.Record{"city": "Moab", "pop": 5321}

	if got := fieldValue(row, "city").String(); got != "Moab" {
		t.Fatalf("record city = %q", got)
	}
	if got, err := fieldValue(row, "pop").Int(); err != nil || got != 5321 {
		t.Fatalf("record pop = %d, %v", got, err)
	}
	if got := fieldValue(row, "nope").String(); got != "" {
		t.Fatalf("missing record key = %q, want empty", got)
	}
}

func TestFieldValue_PlainMap(t *testing.T) {
	t.Parallel()

	row := map[string]int{"age": 41}
	if got := fieldValue(row, "age").String(); got != "41" {
		t.Fatalf("map age = %q", got)
	}
}
