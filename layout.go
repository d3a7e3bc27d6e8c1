package gridlet

import (
	nt "gridlet/entity"
	"gridlet/util"
)

// Layout is the yaml-loadable presentation config for a grid: the
// column schema plus paging, density, scroll box, and default sort.
// Render hooks cannot come from yaml and are attached in code.
type Layout[T any] struct {
	Columns  []Column[T] `yaml:"columns"`
	PageSize *int        `yaml:"page_size,omitempty"`
	Size     Size        `yaml:"size,omitempty"`
	Scroll   Scroll      `yaml:"scroll,omitempty"`
	Sort     nt.Sort     `yaml:"sort,omitempty"`
}

// LoadLayout reads a layout from a yaml file.
func LoadLayout[T any](path string) (layout Layout[T], err error) {
	err = util.LoadConfig(&layout, path)
	return
}

// Options converts the layout into construction options. An absent
// page_size keeps the default; an explicit zero disables paging.
func (layout Layout[T]) Options() []Option[T] {

	var opts []Option[T]

	if layout.PageSize != nil {
		opts = append(opts, WithPageSize[T](*layout.PageSize))
	}
	if layout.Size != "" {
		opts = append(opts, WithSize[T](layout.Size))
	}
	if layout.Scroll.X > 0 || layout.Scroll.Y > 0 {
		opts = append(opts, WithScroll[T](layout.Scroll.X, layout.Scroll.Y))
	}
	if layout.Sort.Active() {
		dir := layout.Sort.Direction
		if dir == "" {
			dir = nt.Asc
		}
		opts = append(opts, WithDefaultSort[T](layout.Sort.Key, dir))
	}

	return opts
}
