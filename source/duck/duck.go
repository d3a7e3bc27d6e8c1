// Package duck loads data files into an in-memory DuckDB table and
// hands the rows to the grid as records. It is demo-side plumbing:
// the grid itself stays purely in-memory.
package duck

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	nt "gridlet/entity"
)

const tableName = "dataset"

// Field describes one column of a loaded file.
type Field struct {
	Name string
	Type string
}

// Duck wraps an in-memory DuckDB holding one loaded file.
type Duck struct {
	db     *sql.DB
	logger nt.Logger
	name   string
}

// New opens an in-memory database. The duckdb driver must be blank
// imported by the caller.
func New(lgr nt.Logger) (dk *Duck, err error) {

	db, err := sql.Open("duckdb", "")
	if err != nil {
		err = errors.Wrapf(err, "failed to open memo duck")
		return
	}

	dk = &Duck{
		db:     db,
		logger: lgr,
	}

	return
}

// Close releases the database.
func (dk *Duck) Close() {
	dk.db.Close()
}

// Name returns the base name of the loaded file.
func (dk *Duck) Name() string {
	return dk.name
}

// Load reads a csv or newline-delimited json file into the dataset
// table, sniffing the format from the extension.
func (dk *Duck) Load(path string) (err error) {

	reader := fmt.Sprintf("read_csv_auto('%s')", path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".ndjson", ".jsonl", ".log":
		reader = fmt.Sprintf("read_json_auto('%s', format='auto')", path)
	}

	create := fmt.Sprintf("CREATE TABLE %s AS SELECT * FROM %s", tableName, reader)
	_, err = dk.db.Exec(create)
	if err != nil {
		err = errors.Wrapf(err, "failed to load %s", path)
		return
	}

	dk.name = filepath.Base(path)
	return
}

// Fields returns the loaded file's column names and types in schema
// order.
func (dk *Duck) Fields() (fields []Field, err error) {

	rows, err := dk.db.Query(`
		SELECT column_name, data_type
		FROM information_schema.columns
		WHERE table_name = ?
		ORDER BY ordinal_position
	`, tableName)
	if err != nil {
		err = errors.Wrapf(err, "failed to query schema")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var field Field
		if err = rows.Scan(&field.Name, &field.Type); err != nil {
			err = errors.Wrapf(err, "failed to scan field")
			return
		}
		fields = append(fields, field)
	}

	err = errors.Wrapf(rows.Err(), "error iterating schema")
	return
}

// Records returns every loaded row keyed by field name.
func (dk *Duck) Records() (records []nt.Record, err error) {

	rows, err := dk.db.Query(fmt.Sprintf("SELECT * FROM %s", tableName))
	if err != nil {
		err = errors.Wrapf(err, "failed to query dataset")
		return
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		err = errors.Wrapf(err, "failed to get cols from query rows")
		return
	}

	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}

		if err = rows.Scan(ptrs...); err != nil {
			err = errors.Wrapf(err, "failed to scan row")
			return
		}

		record := nt.Record{}
		for i, col := range cols {
			record[col] = vals[i]
		}
		records = append(records, record)
	}

	err = errors.Wrapf(rows.Err(), "error iterating rows")
	return
}
