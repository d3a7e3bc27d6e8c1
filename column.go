package gridlet

import (
	"fmt"

	nt "gridlet/entity"
)

// Column describes one grid column bound to a field of the row type.
// Key names the field; duplicate keys across columns are fine and show
// the same field under different titles. Format is a time layout for
// time values and a printf verb otherwise. Render, when set, overrides
// the formatted field value with its own cell content.
type Column[T any] struct {
	Key      string `yaml:"key"`
	Title    string `yaml:"title"`
	Width    int    `yaml:"width"`
	Sortable bool   `yaml:"sortable,omitempty"`
	Fixed    nt.Pin `yaml:"fixed,omitempty"`
	Format   string `yaml:"format,omitempty"`

	Render func(val nt.Value, row T) string `yaml:"-"`
}

// cell resolves the column's display content for a row. A key that
// misses the row yields an empty cell rather than a failure.
func (col Column[T]) cell(row T) string {
	val := fieldValue(row, col.Key)

	if col.Render != nil {
		return col.Render(val, row)
	}
	return col.format(val)
}

// header is the displayed column title, falling back to the key.
func (col Column[T]) header() string {
	if col.Title != "" {
		return col.Title
	}
	return col.Key
}

// unexported

func (col Column[T]) format(val nt.Value) string {
	if col.Format == "" {
		return val.String()
	}

	t, err := val.Time()
	if err == nil {
		return t.Format(col.Format)
	}
	return fmt.Sprintf(col.Format, val.Raw)
}
