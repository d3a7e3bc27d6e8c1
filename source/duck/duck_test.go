package duck

import (
	"os"
	"path/filepath"
	"testing"

	_ "github.com/marcboeker/go-duckdb"
)

func loadSample(t *testing.T) *Duck {
	t.Helper()

	path := filepath.Join(t.TempDir(), "critters.csv")
	data := "name,legs\nnewt,4\nheron,2\nspider,8\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	dk, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(dk.Close)

	if err := dk.Load(path); err != nil {
		t.Fatal(err)
	}
	return dk
}

func TestDuck_LoadCsv(t *testing.T) {

	dk := loadSample(t)

	if got := dk.Name(); got != "critters.csv" {
		t.Fatalf("name = %q", got)
	}

	fields, err := dk.Fields()
	if err != nil {
		t.Fatal(err)
	}
	if len(fields) != 2 {
		t.Fatalf("fields = %d, want 2", len(fields))
	}
	if fields[0].Name != "name" || fields[1].Name != "legs" {
		t.Fatalf("field names = %v", fields)
	}
}

func TestDuck_Records(t *testing.T) {

	dk := loadSample(t)

	records, err := dk.Records()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}

	if got := records[0]["name"]; got != "newt" {
		t.Fatalf("first name = %v", got)
	}
	if got, ok := records[2]["legs"].(int64); !ok || got != 8 {
		t.Fatalf("spider legs = %v", records[2]["legs"])
	}
}
