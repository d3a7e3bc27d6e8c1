// Package gridlet renders an interactive data grid for the terminal:
// client-side sorting, pagination, and pinned left/right columns over
// an in-memory slice of rows. The grid owns two pieces of transient
// state, the active sort and the current page; everything else is
// derived on each render.
package gridlet

import (
	"context"

	nt "gridlet/entity"
)

// DefaultPageSize applies when no page size option is given.
const DefaultPageSize = 10

// Size selects the visual density of the grid.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMiddle Size = "middle"
	SizeLarge  Size = "large"
)

// Scroll bounds the grid's scroll box in cells. Zero means size to
// the terminal window.
type Scroll struct {
	X int `yaml:"x,omitempty"`
	Y int `yaml:"y,omitempty"`
}

// Option configures a Model at construction.
type Option[T any] func(*Model[T])

// WithPageSize sets rows per page. Zero disables pagination and shows
// all rows on one page.
func WithPageSize[T any](size int) Option[T] {
	return func(mdl *Model[T]) {
		mdl.pageSize = size
	}
}

// WithDefaultSort applies an initial sort. Sortability of the named
// column gates only the header control, not the sort itself.
func WithDefaultSort[T any](key string, dir nt.Direction) Option[T] {
	return func(mdl *Model[T]) {
		mdl.state.Sort = nt.Sort{Key: key, Direction: dir}
	}
}

// WithSize sets the visual density, middle by default.
func WithSize[T any](size Size) Option[T] {
	return func(mdl *Model[T]) {
		mdl.size = size
	}
}

// WithScroll bounds the scroll box.
func WithScroll[T any](x, y int) Option[T] {
	return func(mdl *Model[T]) {
		mdl.scroll = Scroll{X: x, Y: y}
	}
}

// WithName labels the grid in the footer.
func WithName[T any](name string) Option[T] {
	return func(mdl *Model[T]) {
		mdl.name = name
	}
}

// WithLogger sets a contextual logger.
func WithLogger[T any](ctx context.Context, lgr nt.Logger) Option[T] {
	return func(mdl *Model[T]) {
		mdl.ctx = ctx
		mdl.logger = lgr
	}
}
