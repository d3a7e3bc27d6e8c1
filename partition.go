package gridlet

import nt "gridlet/entity"

// partition holds the three ordered column groups of the grid. Render
// order is always left, free, right.
type partition[T any] struct {
	left  []Column[T]
	free  []Column[T]
	right []Column[T]
}

// partitionColumns splits columns into pinned-left, free, and
// pinned-right groups, preserving relative order within each. The
// right group is reversed so the later-declared right pin lands
// visually outermost.
func partitionColumns[T any](columns []Column[T]) partition[T] {

	var prt partition[T]
	for _, col := range columns {
		switch col.Fixed {
		case nt.PinLeft:
			prt.left = append(prt.left, col)
		case nt.PinRight:
			prt.right = append(prt.right, col)
		default:
			prt.free = append(prt.free, col)
		}
	}

	for i, j := 0, len(prt.right)-1; i < j; i, j = i+1, j-1 {
		prt.right[i], prt.right[j] = prt.right[j], prt.right[i]
	}

	return prt
}

// ordered returns all columns in render order.
func (prt partition[T]) ordered() []Column[T] {
	out := make([]Column[T], 0, len(prt.left)+len(prt.free)+len(prt.right))
	out = append(out, prt.left...)
	out = append(out, prt.free...)
	out = append(out, prt.right...)
	return out
}

// offsets returns each column's horizontal position within its group
// as the prefix sum of the widths before it. Pinned groups stack
// correctly even when their columns vary in width.
func offsets[T any](columns []Column[T]) []int {
	out := make([]int, len(columns))
	sum := 0
	for i, col := range columns {
		out[i] = sum
		sum += col.Width
	}
	return out
}

// groupWidth is the total cell width of a column group.
func groupWidth[T any](columns []Column[T]) int {
	sum := 0
	for _, col := range columns {
		sum += col.Width
	}
	return sum
}
