package entity

// Direction orders a sort ascending or descending.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Flip returns the opposite direction, treating anything that is not
// descending as ascending.
func (dir Direction) Flip() Direction {
	if dir == Desc {
		return Asc
	}
	return Desc
}

// Sort is the active sort state: the keyed field and a direction.
// An empty Key means no sort, preserve input order.
type Sort struct {
	Key       string    `yaml:"key,omitempty"`
	Direction Direction `yaml:"direction,omitempty"`
}

// Active reports whether a sort is applied.
func (srt Sort) Active() bool {
	return srt.Key != ""
}

// Toggle returns the sort state after activating key: the direction
// flips from whatever the state currently holds, switching columns
// included. There is no per-column remembered direction.
func (srt Sort) Toggle(key string) Sort {
	return Sort{
		Key:       key,
		Direction: srt.Direction.Flip(),
	}
}

// Pin fixes a column to an edge of the grid, keeping it visible while
// the free columns scroll horizontally.
type Pin string

const (
	PinNone  Pin = ""
	PinLeft  Pin = "left"
	PinRight Pin = "right"
)
